// Package tui implements the interactive browse view: a Bubble Tea model
// that consumes the pagination engine, rendering the current page window
// and a page-link strip, and reacting to the engine's change notifications.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/paginator"
	"github.com/rshade/paginator/internal/dataset"
	"github.com/rshade/paginator/internal/render"
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	browseDefaultWidth  = 80
	browseDefaultHeight = 24
)

// keyMap defines the browse view keybindings.
type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/n", "next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/p", "prev page"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first page"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last page"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// eventLog accumulates engine notifications. It is shared by pointer so
// the engine's handlers keep working as Bubble Tea copies the model by
// value between updates.
type eventLog struct {
	pageChanges int
	last        paginator.PageChange
}

// BrowseModel is the Bubble Tea model for browsing a record collection one
// page at a time. All paging decisions are delegated to the engine; the
// model only translates keys into mutator calls and renders the result.
type BrowseModel struct {
	state   *paginator.State
	records []dataset.Record
	keys    keyMap
	events  *eventLog

	width    int
	height   int
	quitting bool
}

// NewBrowseModel builds a browse model over records with the given page
// size. It subscribes to the engine's page-change notifications to surface
// them in the status bar.
func NewBrowseModel(records []dataset.Record, perPage int) BrowseModel {
	state := paginator.NewSized(len(records), perPage)
	events := &eventLog{}
	state.OnPageChange(func(c paginator.PageChange) {
		events.pageChanges++
		events.last = c
	})

	return BrowseModel{
		state:   state,
		records: records,
		keys:    defaultKeyMap(),
		events:  events,
		width:   browseDefaultWidth,
		height:  browseDefaultHeight,
	}
}

// State exposes the underlying engine, mainly for tests.
func (m BrowseModel) State() *paginator.State { return m.state }

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.state.Teardown()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.state.NextPage()
		case key.Matches(msg, m.keys.Prev):
			m.state.PrevPage()
		case key.Matches(msg, m.keys.First):
			m.state.FirstPage()
		case key.Matches(msg, m.keys.Last):
			m.state.LastPageJump()
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(render.HeaderStyle.Render(fmt.Sprintf("Browsing %s records",
		render.FormatNumber(m.state.TotalItems()))))
	b.WriteString("\n\n")

	if m.state.TotalPages() == 0 {
		b.WriteString(render.MutedStyle.Render("Nothing to page over."))
		b.WriteString("\n")
	} else {
		start, end := m.state.ItemIndexStart(), m.state.ItemIndexEnd()
		for i, rec := range dataset.Slice(m.records, start, end) {
			b.WriteString(render.LabelStyle.Render(fmt.Sprintf("%5d ", start+i+1)))
			b.WriteString(render.ValueStyle.Render(dataset.Label(rec)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(PageLinks(m.state, m.width))
	b.WriteString("\n")
	b.WriteString(m.statusBar())
	b.WriteString("\n")
	b.WriteString(render.MutedStyle.Render("→/n next • ←/p prev • g first • G last • q quit"))

	return b.String()
}

// statusBar shows the current item window and the engine's notification
// traffic, demonstrating the observer contract end to end.
func (m BrowseModel) statusBar() string {
	meta := m.state.Meta()
	status := fmt.Sprintf("items %s–%s of %s",
		render.FormatNumber(meta.ItemIndexStart+1),
		render.FormatNumber(meta.ItemIndexEnd),
		render.FormatNumber(meta.TotalItems))

	if m.events.pageChanges > 0 {
		status += fmt.Sprintf(" • last change %d→%d (%s events)",
			m.events.last.Previous, m.events.last.Current,
			render.FormatNumber(m.events.pageChanges))
	}
	return render.LabelStyle.Render(status)
}
