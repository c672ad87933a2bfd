package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/goleak"

	"deresnet/cmd/rez/ui"
	"deresnet/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return New(Options{
		Config: config.NewManager(t.TempDir()),
		Delay:  ui.Immediately,
	})
}

// step feeds one message through the root update loop.
func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	mm, cmd := m.Update(msg)
	return mm.(Model), cmd
}

// runCmd executes a command tree and returns every produced message.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loggedIn(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = step(t, m, ui.GetStartedMsg{})
	return m
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(m.View(), "Loading") {
		t.Error("view should show the loading line until the first resize")
	}
}

func TestLandingUntilLogin(t *testing.T) {
	m := newTestModel(t)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.Session().Authenticated() {
		t.Fatal("session should start anonymous")
	}
	if !strings.Contains(m.View(), "Press Enter to get started") {
		t.Error("anonymous view should be the landing page")
	}

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for _, msg := range runCmd(cmd) {
		m, _ = step(t, m, msg)
	}

	if !m.Session().Authenticated() {
		t.Fatal("enter on the landing page should log in")
	}
	if m.Page() != PageDashboard {
		t.Errorf("got page %v, want dashboard", m.Page())
	}
	if !strings.Contains(m.View(), "Dr. Sarah Chen") {
		t.Error("header should show the demo user")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := loggedIn(t)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != FocusMenu {
		t.Fatal("esc should focus the menu")
	}

	m, _ = step(t, m, keyRunes("4"))
	if m.Page() != PageDAO {
		t.Errorf("got page %v, want dao", m.Page())
	}
	if m.focus != FocusPage {
		t.Error("selecting a page should return focus to it")
	}
}

func TestMenuArrowSelection(t *testing.T) {
	m := loggedIn(t)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = step(t, m, keyRunes("j"))
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Page() != PagePapers {
		t.Errorf("got page %v, want papers", m.Page())
	}
}

func TestNavigateUnknownFallsBack(t *testing.T) {
	m := loggedIn(t)
	m.Navigate(Page("bogus"))

	if m.Page() != PageDashboard {
		t.Errorf("got page %v, want the dashboard fallback", m.Page())
	}
}

func TestLogout(t *testing.T) {
	m := loggedIn(t)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = step(t, m, keyRunes("o"))

	if m.Session().Authenticated() {
		t.Fatal("o in the menu should log out")
	}
	if !strings.Contains(m.View(), "Press Enter to get started") {
		t.Error("view should fall back to the landing page")
	}
}

func TestThemeToggle(t *testing.T) {
	m := loggedIn(t)
	before := m.styles.Theme.IsDark

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = step(t, m, keyRunes("t"))

	if m.styles.Theme.IsDark == before {
		t.Error("t in the menu should flip the theme")
	}
	want := config.ThemeDark
	if before {
		want = config.ThemeLight
	}
	if got := m.cfg.Get().Theme; got != want {
		t.Errorf("got saved theme %v, want %v", got, want)
	}
}

func TestPendingReplyLandsAfterNavigation(t *testing.T) {
	m := loggedIn(t)

	// Ask the assistant, then leave the page before the reply arrives.
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = step(t, m, keyRunes("5"))
	m, _ = step(t, m, keyRunes("what about blockchain?"))
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = step(t, m, keyRunes("1"))
	if m.Page() != PageDashboard {
		t.Fatalf("got page %v, want dashboard", m.Page())
	}

	for _, msg := range runCmd(cmd) {
		m, _ = step(t, m, msg)
	}
	if got := m.chat.Transcript().Len(); got != 3 {
		t.Errorf("transcript holds %d messages, want 3: the reply must land off-page", got)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	_, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("got %T, want tea.QuitMsg", msg)
	}
}

func TestSidebarListsAllSections(t *testing.T) {
	m := loggedIn(t)
	view := m.View()

	for _, it := range navItems {
		if !strings.Contains(view, it.label) {
			t.Errorf("sidebar missing %q", it.label)
		}
	}
}
