package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"deresnet/cmd/rez/ui"
)

const sidebarWidth = 18

// View renders the full client frame.
func (m Model) View() string {
	if !m.ready {
		return "Loading DeResNet..."
	}
	if !m.sess.Authenticated() {
		return m.landing.View()
	}

	header := m.viewHeader()
	sidebar := m.viewSidebar()
	content := lipgloss.NewStyle().Padding(0, 1).Render(m.activePageView())
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	footer := m.viewFooter()

	return header + "\n" + body + "\n" + footer
}

func (m Model) viewHeader() string {
	s := m.styles
	mode := "light"
	if s.Theme.IsDark {
		mode = "dark"
	}
	left := "DeResNet"
	right := ""
	if u := m.sess.User(); u != nil {
		right = fmt.Sprintf("%s · %s REZ · %s", u.Name, ui.FormatInt(u.RezTokens), mode)
	}
	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return s.Header.Width(m.width).Render(left + strings.Repeat(" ", pad) + right)
}

func (m Model) viewSidebar() string {
	s := m.styles
	var lines []string
	for i, it := range navItems {
		label := fmt.Sprintf("%d %s", i+1, it.label)
		switch {
		case it.page == m.page:
			lines = append(lines, s.SidebarActive.Render(label))
		case m.focus == FocusMenu && i == m.menuIdx:
			lines = append(lines, s.SidebarItem.Underline(true).Render(label))
		default:
			lines = append(lines, s.SidebarItem.Render(label))
		}
	}
	return lipgloss.NewStyle().
		Width(sidebarWidth).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(s.Theme.Border).
		Render(strings.Join(lines, "\n"))
}

func (m Model) viewFooter() string {
	s := m.styles
	if m.focus == FocusMenu {
		return s.Footer.Render("j/k or 1-9 choose page · enter open · t theme · o logout · q quit")
	}
	return s.Footer.Render("esc menu · ctrl+c quit")
}

func (m Model) activePageView() string {
	switch m.page {
	case PagePapers:
		return m.library.View()
	case PageSubmit:
		return m.submit.View()
	case PageDAO:
		return m.dao.View()
	case PageChat:
		return m.chat.View()
	case PageBridge:
		return m.bridge.View()
	case PageAnalytics:
		return m.analytics.View()
	case PageCommunity:
		return m.community.View()
	case PageSettings:
		return m.settings.View()
	default:
		return m.dashboard.View()
	}
}

// Run starts the interactive client on the alternate screen.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running client: %w", err)
	}
	return nil
}
