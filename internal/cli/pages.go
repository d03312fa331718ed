package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/paginator"
	"github.com/rshade/paginator/internal/config"
	"github.com/rshade/paginator/internal/render"
)

// NewPagesCmd creates the pages command: given sizing inputs it prints the
// derived page metadata, or with --all one row per page.
func NewPagesCmd() *cobra.Command {
	var (
		totalItems int
		perPage    int
		page       int
		all        bool
		format     string
	)

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Compute page counts and item ranges for a collection size",
		Example: `  # 500 items at 33 per page -> 16 pages, last page holds 5 items
  paginator pages --total-items 500 --per-page 33 --all

  # Metadata for page 3 as JSON
  paginator pages --total-items 500 --per-page 50 --page 3 --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if perPage == 0 {
				perPage = cfg.Defaults.PerPage
			}
			if format == "" {
				format = cfg.Defaults.Format
			}

			state := paginator.New()
			if err := state.SetTotalItems(totalItems); err != nil {
				return err
			}
			if err := state.SetItemsPerPage(perPage); err != nil {
				return err
			}
			if page > 0 && !state.SetPage(page) {
				return fmt.Errorf("page %d is out of range (valid: 1-%d)", page, state.TotalPages())
			}

			logger.Debug().
				Int("total_items", totalItems).
				Int("per_page", perPage).
				Int("total_pages", state.TotalPages()).
				Msg("computed page metadata")

			switch format {
			case config.FormatJSON:
				return writePagesJSON(cmd, state, all)
			case config.FormatTable:
				if all {
					cmd.Println(render.PageTable(totalItems, perPage))
				} else {
					cmd.Println(render.PageSummary(state.Meta(), 0))
				}
				return nil
			default:
				return fmt.Errorf("%w: got %q", config.ErrInvalidFormat, format)
			}
		},
	}

	cmd.Flags().IntVar(&totalItems, "total-items", 0, "total number of items in the collection")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "items per page (default from config)")
	cmd.Flags().IntVar(&page, "page", 0, "page to describe (default 1)")
	cmd.Flags().BoolVar(&all, "all", false, "list every page with its item range")
	cmd.Flags().StringVar(&format, "format", "", "output format: table or json (default from config)")
	_ = cmd.MarkFlagRequired("total-items")

	return cmd
}

// writePagesJSON emits the current page's metadata, or with all a snapshot
// per page, walking the engine through each page.
func writePagesJSON(cmd *cobra.Command, state *paginator.State, all bool) error {
	var payload any
	if all {
		metas := make([]paginator.Meta, 0, state.TotalPages())
		for p := 1; p <= state.TotalPages(); p++ {
			state.SetPage(p)
			metas = append(metas, state.Meta())
		}
		payload = metas
	} else {
		payload = state.Meta()
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal page metadata: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
