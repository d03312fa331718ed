package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/paginator/internal/config"
	"github.com/rshade/paginator/internal/dataset"
	"github.com/rshade/paginator/internal/tui"
)

// defaultGenerateCount is the synthetic record count when neither --input
// nor --generate is given.
const defaultGenerateCount = 100

// ErrNotATerminal is returned when browse runs without an interactive
// terminal attached.
var ErrNotATerminal = errors.New("browse requires an interactive terminal")

// NewBrowseCmd creates the browse command: an interactive page-by-page
// view over a dataset.
func NewBrowseCmd() *cobra.Command {
	var (
		input    string
		generate int
		perPage  int
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse a dataset interactively, one page at a time",
		Example: `  # Browse a JSON array
  paginator browse --input items.json --per-page 20

  # Browse synthetic records
  paginator browse --generate 500`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return ErrNotATerminal
			}

			cfg := config.GetGlobalConfig()
			if perPage == 0 {
				perPage = cfg.Defaults.PerPage
			}

			var (
				records []dataset.Record
				err     error
			)
			if input != "" {
				records, err = dataset.LoadFile(input)
				if err != nil {
					return err
				}
			} else {
				if generate <= 0 {
					generate = defaultGenerateCount
				}
				records = dataset.Generate(generate)
			}

			logger.Debug().
				Int("records", len(records)).
				Int("per_page", perPage).
				Msg("starting browse view")

			program := tea.NewProgram(tui.NewBrowseModel(records, perPage), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("browse view failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "path to a JSON array file, or - for stdin")
	cmd.Flags().IntVar(&generate, "generate", 0, "browse N synthetic records instead of a file")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "items per page (default from config)")

	return cmd
}
