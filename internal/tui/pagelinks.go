package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/ansi"

	"github.com/rshade/paginator"
	"github.com/rshade/paginator/internal/render"
)

// linkWindow is the maximum number of numbered page links shown at once;
// the window slides to keep the current page near its center.
const linkWindow = 7

// PageLinks renders the page-link strip: first/prev markers, a sliding
// window of numbered links with the current page highlighted, and
// next/last markers. When the strip would overflow the available width it
// falls back to a compact "Page X of Y" label.
func PageLinks(state *paginator.State, width int) string {
	totalPages := state.TotalPages()
	if totalPages == 0 {
		return render.MutedStyle.Render("no pages")
	}

	current := state.Page()
	lo, hi := linkRange(current, totalPages)

	parts := make([]string, 0, linkWindow+4)
	parts = append(parts,
		marker("«", state.HasPrevious()),
		marker("‹", state.HasPrevious()))

	for page := lo; page <= hi; page++ {
		label := fmt.Sprintf("%d", page)
		if page == current {
			parts = append(parts, render.ActiveStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, render.ValueStyle.Render(label))
		}
	}

	parts = append(parts,
		marker("›", state.HasNext()),
		marker("»", state.HasNext()))

	strip := strings.Join(parts, " ")
	if width > 0 && ansi.PrintableRuneWidth(strip) > width {
		return render.LabelStyle.Render(fmt.Sprintf("Page %d of %d", current, totalPages))
	}
	return strip
}

// linkRange returns the inclusive window of page numbers to display,
// centered on current and clamped to [1, totalPages].
func linkRange(current, totalPages int) (int, int) {
	if totalPages <= linkWindow {
		return 1, totalPages
	}

	half := linkWindow / 2
	lo := current - half
	hi := current + half
	if lo < 1 {
		lo = 1
		hi = linkWindow
	}
	if hi > totalPages {
		hi = totalPages
		lo = totalPages - linkWindow + 1
	}
	return lo, hi
}

func marker(symbol string, enabled bool) string {
	if enabled {
		return render.ValueStyle.Render(symbol)
	}
	return render.MutedStyle.Render(symbol)
}
