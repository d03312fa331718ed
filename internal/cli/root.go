// Package cli wires the paginator commands: pages (page-table math),
// slice (page a JSON array), browse (interactive TUI), and config.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/paginator/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Shared by the command implementations.

// NewRootCmd creates the root Cobra command for the paginator CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup,
// so tests can inject environment variables.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "paginator",
		Short:   "Pagination state engine CLI",
		Long:    "Paginator: compute page counts and item ranges, slice JSON datasets, and browse them interactively",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			cfg.ApplyEnv(lookupEnv)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			config.SetGlobalConfig(cfg)

			setupLogging(cmd, cfg)
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().
		String("config", "", "path to config file (default ~/.paginator/config.yaml)")
	cmd.AddCommand(NewPagesCmd(), NewSliceCmd(), NewBrowseCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Show page metadata for 500 items at 33 per page
  paginator pages --total-items 500 --per-page 33

  # List every page with its item range
  paginator pages --total-items 500 --per-page 33 --all

  # Emit page 3 of a JSON array
  paginator slice --input items.json --page 3 --per-page 50

  # Browse a dataset interactively
  paginator browse --input items.json

  # Browse 200 synthetic records
  paginator browse --generate 200

  # Initialize configuration
  paginator config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}
