// Package render produces the terminal output for page metadata: a boxed
// summary of the current page position and a per-page range table.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/paginator"
)

// printer is the locale-aware message printer for number formatting.
// English locale keeps thousand separators consistent across machines.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// defaultSummaryWidth is used when the caller has no terminal width.
const defaultSummaryWidth = 60

// PageSummary renders a boxed summary of the engine snapshot: current page,
// page count, and the item range the page covers.
func PageSummary(meta paginator.Meta, width int) string {
	if width <= 0 {
		width = defaultSummaryWidth
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Pagination"))
	b.WriteString("\n")

	writeField(&b, "Page", fmt.Sprintf("%s of %s",
		FormatNumber(meta.CurrentPage), FormatNumber(meta.TotalPages)))
	writeField(&b, "Items", fmt.Sprintf("%s total, %s per page",
		FormatNumber(meta.TotalItems), FormatNumber(meta.PageSize)))

	if meta.TotalPages > 0 {
		// Item range shown 1-based inclusive for humans; the engine's
		// bounds are a 0-based half-open window.
		writeField(&b, "Range", fmt.Sprintf("items %s–%s",
			FormatNumber(meta.ItemIndexStart+1), FormatNumber(meta.ItemIndexEnd)))
	} else {
		b.WriteString(MutedStyle.Render("paging disabled (set total items and page size)"))
		b.WriteString("\n")
	}

	nav := navHint(meta)
	if nav != "" {
		b.WriteString(MutedStyle.Render(nav))
		b.WriteString("\n")
	}

	return BoxStyle.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(LabelStyle.Render(label+": ") + ValueStyle.Render(value))
	b.WriteString("\n")
}

func navHint(meta paginator.Meta) string {
	switch {
	case meta.HasPrevious && meta.HasNext:
		return "previous and next pages available"
	case meta.HasNext:
		return "next page available"
	case meta.HasPrevious:
		return "previous page available"
	default:
		return ""
	}
}

// PageTable renders one row per page with its 1-based inclusive item range,
// driving a State through every page so the ranges come from the engine
// itself rather than parallel arithmetic.
func PageTable(totalItems, perPage int) string {
	state := paginator.NewSized(totalItems, perPage)
	totalPages := state.TotalPages()
	if totalPages == 0 {
		return MutedStyle.Render("No pages: total items and items per page must both be positive.")
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%6s  %12s  %s", "Page", "Items", "Range")))
	b.WriteString("\n")

	for page := 1; page <= totalPages; page++ {
		state.SetPage(page)
		start, end := state.ItemIndexStart(), state.ItemIndexEnd()
		b.WriteString(fmt.Sprintf("%6s  %12s  %s–%s\n",
			FormatNumber(page),
			FormatNumber(end-start),
			FormatNumber(start+1), FormatNumber(end)))
	}

	return strings.TrimRight(b.String(), "\n")
}
