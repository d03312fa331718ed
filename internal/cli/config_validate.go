package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/paginator/internal/config"
)

// NewConfigValidateCmd creates the config validate command: it loads the
// config file (default or --config) and checks it for out-of-domain values.
func NewConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration is invalid: %w", err)
			}

			cmd.Printf("Configuration is valid (per_page=%d, format=%s)\n",
				cfg.Defaults.PerPage, cfg.Defaults.Format)
			return nil
		},
	}
}
