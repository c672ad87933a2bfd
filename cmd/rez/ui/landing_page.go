package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// GetStartedMsg is emitted when the visitor accepts the landing page call to
// action. The shell performs the mock login and navigates to the dashboard.
type GetStartedMsg struct{}

type landingFeature struct {
	title       string
	description string
}

var landingFeatures = []landingFeature{
	{"Decentralized Publishing", "Publish research papers directly on-chain with immutable storage and transparent peer review."},
	{"DAO Governance", "Participate in research funding decisions and platform governance through democratic voting."},
	{"AI Research Assistant", "Get instant paper summaries, research insights, and discover related work with our AI companion."},
	{"Multi-Chain Bridge", "Seamlessly bridge tokens from Ethereum, Bitcoin, and other chains to participate in the ecosystem."},
	{"Secure & Transparent", "Built on Internet Computer Protocol ensuring security, transparency, and censorship resistance."},
	{"Global Community", "Connect with researchers worldwide in a truly decentralized academic network."},
}

type landingStat struct {
	label string
	value string
}

var landingStats = []landingStat{
	{"Research Papers", "10,000+"},
	{"Active Researchers", "5,000+"},
	{"Citations Generated", "50,000+"},
	{"REZ Tokens Distributed", "1M+"},
}

// LandingPageModel is the unauthenticated welcome screen.
type LandingPageModel struct {
	viewport viewport.Model
	styles   Styles
	width    int
	height   int
}

// NewLandingPageModel creates the landing page.
func NewLandingPageModel(styles Styles) LandingPageModel {
	vp := viewport.New(80, 20)
	m := LandingPageModel{viewport: vp, styles: styles, width: 80, height: 20}
	m.UpdateContent()
	return m
}

// SetStyles swaps the color scheme.
func (m *LandingPageModel) SetStyles(styles Styles) {
	m.styles = styles
	m.UpdateContent()
}

// SetSize updates the viewport dimensions.
func (m *LandingPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h - 2 // Reserve space for the footer hint
	m.UpdateContent()
}

// UpdateContent rebuilds the static landing copy.
func (m *LandingPageModel) UpdateContent() {
	s := m.styles
	var sb strings.Builder

	sb.WriteString(Logo(s))
	sb.WriteString("\n")
	sb.WriteString(s.Bold.Render("Decentralized Research Network"))
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render("Publish, review, and fund research on a network owned by researchers."))
	sb.WriteString("\n\n")

	var stats []string
	for _, st := range landingStats {
		stats = append(stats, s.Card.Render(s.Title.Render(st.value)+"\n"+s.Muted.Render(st.label)))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats...))
	sb.WriteString("\n\n")

	sb.WriteString(s.Bold.Render("Why DeResNet?"))
	sb.WriteString("\n")
	for _, f := range landingFeatures {
		sb.WriteString(fmt.Sprintf("  %s %s\n", s.Info.Render("•"), s.Bold.Render(f.title)))
		sb.WriteString("    " + s.Muted.Render(f.description) + "\n")
	}

	m.viewport.SetContent(sb.String())
}

// Update handles messages.
func (m LandingPageModel) Update(msg tea.Msg) (LandingPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			return m, func() tea.Msg { return GetStartedMsg{} }
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m LandingPageModel) View() string {
	hint := m.styles.Footer.Render("Press Enter to get started · q to quit")
	return m.viewport.View() + "\n" + hint
}
