package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/paginator"
	"github.com/rshade/paginator/internal/config"
	"github.com/rshade/paginator/internal/dataset"
)

// sliceEnvelope is the --with-meta output shape: the page's records plus
// the engine snapshot that produced them.
type sliceEnvelope struct {
	Meta  paginator.Meta   `json:"meta"`
	Items []dataset.Record `json:"items"`
}

// NewSliceCmd creates the slice command: it reads a JSON array and emits
// the records of a single page.
func NewSliceCmd() *cobra.Command {
	var (
		input    string
		page     int
		perPage  int
		withMeta bool
	)

	cmd := &cobra.Command{
		Use:   "slice",
		Short: "Emit one page of a JSON array",
		Example: `  # Page 3 at 50 records per page
  paginator slice --input items.json --page 3 --per-page 50

  # Read from stdin, include pagination metadata
  cat items.json | paginator slice --input - --page 2 --with-meta`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if perPage == 0 {
				perPage = cfg.Defaults.PerPage
			}

			records, err := dataset.LoadFile(input)
			if err != nil {
				return err
			}

			state := paginator.NewSized(len(records), perPage)
			// Page 1 is the engine's starting position; only an explicit
			// jump needs validating. An empty dataset keeps page 1 with an
			// empty window.
			if page != state.Page() && !state.SetPage(page) {
				return fmt.Errorf("page %d is out of range (valid: 1-%d)", page, state.TotalPages())
			}

			items := dataset.Slice(records, state.ItemIndexStart(), state.ItemIndexEnd())
			logger.Debug().
				Int("records", len(records)).
				Int("page", state.Page()).
				Int("window", len(items)).
				Msg("sliced dataset")

			var payload any = items
			if withMeta {
				payload = sliceEnvelope{Meta: state.Meta(), Items: items}
			}
			data, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return fmt.Errorf("cannot marshal page: %w", err)
			}
			cmd.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "path to a JSON array file, or - for stdin")
	cmd.Flags().IntVar(&page, "page", 1, "1-based page to emit")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "items per page (default from config)")
	cmd.Flags().BoolVar(&withMeta, "with-meta", false, "wrap output with pagination metadata")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
