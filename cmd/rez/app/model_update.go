package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"deresnet/cmd/rez/ui"
	"deresnet/internal/config"
	"deresnet/internal/research"
)

// Init starts the program; nothing is pending at boot.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update is the root message loop. Key events go to the focused component;
// everything else is broadcast so pages can finish their simulated async
// work even while another page is showing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case ui.GetStartedMsg:
		m.login()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.broadcast(msg)
}

// handleKey routes a key press by focus state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if !m.sess.Authenticated() {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.landing, cmd = m.landing.Update(msg)
		return m, cmd
	}

	if msg.String() == "esc" {
		if m.focus == FocusPage {
			m.focus = FocusMenu
		} else {
			m.focus = FocusPage
		}
		return m, nil
	}

	if m.focus == FocusMenu {
		return m.handleMenuKey(msg)
	}

	return m.updateActivePage(msg)
}

// handleMenuKey drives the sidebar. Plain letters are safe here because no
// text input is focused in menu mode.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case "down", "j":
		if m.menuIdx < len(navItems)-1 {
			m.menuIdx++
		}
	case "enter":
		m.Navigate(navItems[m.menuIdx].page)
		m.focus = FocusPage
	case "t":
		m.toggleTheme()
	case "o":
		m.logout()
	default:
		// Digits jump straight to the matching sidebar entry.
		if len(msg.String()) == 1 {
			if i := int(msg.String()[0] - '1'); i >= 0 && i < len(navItems) {
				m.menuIdx = i
				m.Navigate(navItems[i].page)
				m.focus = FocusPage
			}
		}
	}
	return m, nil
}

// updateActivePage forwards a key to the page being shown.
func (m Model) updateActivePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.page {
	case PagePapers:
		m.library, cmd = m.library.Update(msg)
	case PageSubmit:
		m.submit, cmd = m.submit.Update(msg)
	case PageDAO:
		m.dao, cmd = m.dao.Update(msg)
	case PageChat:
		m.chat, cmd = m.chat.Update(msg)
	case PageBridge:
		m.bridge, cmd = m.bridge.Update(msg)
	case PageAnalytics:
		m.analytics, cmd = m.analytics.Update(msg)
	case PageCommunity:
		m.community, cmd = m.community.Update(msg)
	case PageSettings:
		m.settings, cmd = m.settings.Update(msg)
	default:
		m.dashboard, cmd = m.dashboard.Update(msg)
	}
	return m, cmd
}

// broadcast delivers a non-key message to every page model. Pages ignore
// messages that are not theirs, so a pending bridge or chat reply lands even
// if the user has navigated away.
func (m Model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.library, cmd = m.library.Update(msg)
	cmds = append(cmds, cmd)
	m.submit, cmd = m.submit.Update(msg)
	cmds = append(cmds, cmd)
	m.dao, cmd = m.dao.Update(msg)
	cmds = append(cmds, cmd)
	m.chat, cmd = m.chat.Update(msg)
	cmds = append(cmds, cmd)
	m.bridge, cmd = m.bridge.Update(msg)
	cmds = append(cmds, cmd)
	m.dashboard, cmd = m.dashboard.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// login assigns the demo user to the session and lands on the dashboard.
func (m *Model) login() {
	u := research.DemoUser()
	m.sess.Login(u)
	m.dashboard.SetUser(m.sess.User())
	m.dao.SetUser(m.sess.User())
	m.page = PageDashboard
	m.focus = FocusPage
	m.logger.Info("logged in", zap.String("user", u.Name))
}

// logout clears the session; the landing page takes over on the next view.
func (m *Model) logout() {
	m.sess.Logout()
	m.dashboard.SetUser(nil)
	m.dao.SetUser(nil)
	m.logger.Info("logged out")
}

// toggleTheme flips light/dark, restyles every page, and records the
// preference.
func (m *Model) toggleTheme() {
	var mode config.ThemeMode
	if m.styles.Theme.IsDark {
		mode = config.ThemeLight
	} else {
		mode = config.ThemeDark
	}
	m.cfg.SetTheme(mode)
	if err := m.cfg.Save(); err != nil {
		m.logger.Warn("saving theme preference", zap.Error(err))
	}

	m.styles = ui.NewStyles(ui.ThemeForMode(mode))
	m.landing.SetStyles(m.styles)
	m.dashboard.SetStyles(m.styles)
	m.library.SetStyles(m.styles)
	m.submit.SetStyles(m.styles)
	m.dao.SetStyles(m.styles)
	m.chat.SetStyles(m.styles)
	m.bridge.SetStyles(m.styles)
	m.analytics.SetStyles(m.styles)
	m.community.SetStyles(m.styles)
	m.settings.SetStyles(m.styles)
}

// resize fits the chrome and every page into the new terminal size.
func (m *Model) resize(w, h int) {
	m.width = w
	m.height = h
	m.ready = true

	contentW := w - sidebarWidth - 4
	contentH := h - 4 // header + footer
	if contentW < 20 {
		contentW = 20
	}
	if contentH < 5 {
		contentH = 5
	}

	m.landing.SetSize(w, h-2)
	m.dashboard.SetSize(contentW, contentH)
	m.library.SetSize(contentW, contentH)
	m.submit.SetSize(contentW, contentH)
	m.dao.SetSize(contentW, contentH)
	m.chat.SetSize(contentW, contentH)
	m.bridge.SetSize(contentW, contentH)
	m.analytics.SetSize(contentW, contentH)
	m.community.SetSize(contentW, contentH)
	m.settings.SetSize(contentW, contentH)
}
