package ui

import tea "github.com/charmbracelet/bubbletea"

// PlaceholderPageModel renders the "coming soon" panel for the sections that
// only exist in the navigation (Analytics, Community, Settings).
type PlaceholderPageModel struct {
	title    string
	subtitle string
	styles   Styles
	width    int
	height   int
}

// NewPlaceholderPageModel creates a placeholder page.
func NewPlaceholderPageModel(title, subtitle string, styles Styles) PlaceholderPageModel {
	return PlaceholderPageModel{title: title, subtitle: subtitle, styles: styles}
}

// SetStyles swaps the color scheme.
func (m *PlaceholderPageModel) SetStyles(styles Styles) { m.styles = styles }

// SetSize records the available area.
func (m *PlaceholderPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Update ignores everything; there is nothing to interact with.
func (m PlaceholderPageModel) Update(tea.Msg) (PlaceholderPageModel, tea.Cmd) {
	return m, nil
}

// View renders the panel.
func (m PlaceholderPageModel) View() string {
	s := m.styles
	return s.Content.Render(
		s.Title.Render(m.title) + "\n" +
			s.Muted.Render("Coming soon - "+m.subtitle),
	)
}
