package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"deresnet/internal/library"
	"deresnet/internal/research"
)

// LibraryPageModel is the searchable, filterable paper library.
type LibraryPageModel struct {
	search   textinput.Model
	viewport viewport.Model
	styles   Styles

	papers  []research.Paper
	tags    []string // TagAll plus distinct fixture tags
	tagIdx  int
	sortIdx int
	results []research.Paper

	width  int
	height int
}

// NewLibraryPageModel creates the library over the paper fixture.
func NewLibraryPageModel(papers []research.Paper, styles Styles) LibraryPageModel {
	ti := textinput.New()
	ti.Placeholder = "Search papers, authors, keywords..."
	ti.Prompt = "/ "
	ti.Focus()

	m := LibraryPageModel{
		search:   ti,
		viewport: viewport.New(80, 16),
		styles:   styles,
		papers:   papers,
		tags:     append([]string{library.TagAll}, library.AllTags(papers)...),
	}
	m.refresh()
	return m
}

// SetStyles swaps the color scheme.
func (m *LibraryPageModel) SetStyles(styles Styles) {
	m.styles = styles
	m.refresh()
}

// SetSize updates the layout.
func (m *LibraryPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.search.Width = w - 4
	m.viewport.Width = w
	m.viewport.Height = h - 4 // search line + filter line + hint
	m.refresh()
}

// Results returns the current filtered, sorted papers.
func (m LibraryPageModel) Results() []research.Paper {
	return m.results
}

// SelectedTag returns the active tag filter.
func (m LibraryPageModel) SelectedTag() string {
	return m.tags[m.tagIdx]
}

// SortKey returns the active ordering.
func (m LibraryPageModel) SortKey() library.SortKey {
	return library.SortKeys[m.sortIdx]
}

func (m *LibraryPageModel) refresh() {
	m.results = library.Search(m.papers, m.search.Value(), m.SelectedTag(), m.SortKey())
	m.updateContent()
}

func (m *LibraryPageModel) updateContent() {
	s := m.styles
	var sb strings.Builder

	sb.WriteString(s.Muted.Render(fmt.Sprintf("Showing %d papers", len(m.results))))
	sb.WriteString("\n\n")

	for _, p := range m.results {
		sb.WriteString(s.Bold.Render(p.Title) + " " + s.StatusBadge(string(p.Status)) + "\n")
		sb.WriteString(s.Muted.Render(fmt.Sprintf("%s · %s · %s",
			strings.Join(p.Authors, ", "), p.PublishedDate, p.Institution)) + "\n")
		sb.WriteString(s.Body.Render(p.Abstract) + "\n")
		sb.WriteString(s.Info.Render(strings.Join(p.Tags, " · ")) + "\n")
		line := fmt.Sprintf("%d citations · %d downloads", p.Citations, p.Downloads)
		if p.DOI != "" {
			line += " · DOI: " + p.DOI
		}
		sb.WriteString(s.Muted.Render(line) + "\n\n")
	}

	if len(m.results) == 0 {
		sb.WriteString(s.Bold.Render("No papers found") + "\n")
		sb.WriteString(s.Muted.Render("Try adjusting your search criteria or filters") + "\n")
	}

	m.viewport.SetContent(sb.String())
}

// Update handles messages. Typing feeds the search box; ctrl+t cycles the
// tag filter and ctrl+s the sort order so plain letters stay searchable.
func (m LibraryPageModel) Update(msg tea.Msg) (LibraryPageModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+t":
			m.tagIdx = (m.tagIdx + 1) % len(m.tags)
			m.refresh()
			return m, nil
		case "ctrl+s":
			m.sortIdx = (m.sortIdx + 1) % len(library.SortKeys)
			m.refresh()
			return m, nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)
	if m.search.Value() != before {
		m.refresh()
	}

	return m, tea.Batch(cmds...)
}

// View renders the page.
func (m LibraryPageModel) View() string {
	s := m.styles
	filters := fmt.Sprintf("Tag: %s   Sort: %s",
		s.TabActive.Render(m.SelectedTag()),
		s.TabActive.Render(m.SortKey().Label()))
	hint := s.Footer.Render("ctrl+t tag filter · ctrl+s sort · ↑/↓ scroll")
	return m.search.View() + "\n" + filters + "\n" + m.viewport.View() + "\n" + hint
}
