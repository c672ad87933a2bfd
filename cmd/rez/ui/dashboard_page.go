package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"deresnet/internal/dao"
	"deresnet/internal/research"
)

// DashboardPageModel renders the researcher's home view: stat cards, recent
// papers, and the active proposals.
type DashboardPageModel struct {
	viewport viewport.Model
	styles   Styles
	user     *research.User
	papers   []research.Paper
	props    []research.Proposal
	width    int
	height   int
}

// NewDashboardPageModel creates the dashboard over the given fixtures.
func NewDashboardPageModel(papers []research.Paper, props []research.Proposal, styles Styles) DashboardPageModel {
	vp := viewport.New(80, 20)
	m := DashboardPageModel{
		viewport: vp,
		styles:   styles,
		papers:   papers,
		props:    props,
	}
	m.UpdateContent()
	return m
}

// SetStyles swaps the color scheme.
func (m *DashboardPageModel) SetStyles(styles Styles) {
	m.styles = styles
	m.UpdateContent()
}

// SetUser points the dashboard at the logged-in user (nil when anonymous).
func (m *DashboardPageModel) SetUser(u *research.User) {
	m.user = u
	m.UpdateContent()
}

// SetSize updates the viewport dimensions.
func (m *DashboardPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
	m.UpdateContent()
}

// UpdateContent rebuilds the dashboard from current state.
func (m *DashboardPageModel) UpdateContent() {
	s := m.styles
	var sb strings.Builder

	name := "Researcher"
	balance := "0"
	if m.user != nil {
		name = m.user.Name
		balance = FormatInt(m.user.RezTokens)
	}

	sb.WriteString(s.Title.Render(fmt.Sprintf("Welcome back, %s!", name)) + "\n")
	sb.WriteString(s.Muted.Render("Continue your journey in decentralized research collaboration"))
	sb.WriteString("\n\n")

	stats := []struct {
		label, value, change string
	}{
		{"Published Papers", "12", "+2 this month"},
		{"Citations", "1,247", "+89 this month"},
		{"Collaborators", "34", "+5 this month"},
		{"REZ Tokens", balance, "+150 this week"},
	}
	var cards []string
	for _, st := range stats {
		cards = append(cards, s.Card.Render(
			s.Bold.Render(st.value)+"\n"+
				s.Muted.Render(st.label)+"\n"+
				s.Success.Render(st.change)))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	sb.WriteString("\n\n")

	sb.WriteString(s.Bold.Render("Recent Papers") + "\n")
	recent := m.papers
	if len(recent) > 3 {
		recent = recent[:3]
	}
	for _, p := range recent {
		sb.WriteString("  " + s.Body.Render(p.Title) + "\n")
		sb.WriteString("    " + s.Muted.Render(fmt.Sprintf("%s · %s", strings.Join(p.Authors, ", "), p.PublishedDate)) + "\n")
		sb.WriteString("    " + s.Muted.Render(fmt.Sprintf("%d citations · %d downloads", p.Citations, p.Downloads)) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(s.Bold.Render("Active Proposals") + "\n")
	for _, p := range dao.ByStatus(m.props, research.ProposalActive) {
		sb.WriteString("  " + s.Body.Render(p.Title) + "\n")
		sb.WriteString("    " + s.Muted.Render(fmt.Sprintf("%s total votes · %.0f%% support · ends %s",
			FormatInt(p.TotalVotes), p.Support()*100, p.EndDate)) + "\n")
	}

	m.viewport.SetContent(sb.String())
}

// Update handles messages.
func (m DashboardPageModel) Update(msg tea.Msg) (DashboardPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m DashboardPageModel) View() string {
	return m.viewport.View()
}
