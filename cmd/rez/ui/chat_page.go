package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"deresnet/internal/assistant"
)

// assistantReplyMsg carries the canned response after the simulated
// thinking delay.
type assistantReplyMsg struct {
	content string
}

// ChatPageModel is the mock AI research assistant conversation.
type ChatPageModel struct {
	input    textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer
	styles   Styles

	transcript *assistant.Transcript
	isTyping   bool
	delay      DelayFunc

	width  int
	height int
}

// NewChatPageModel creates the chat page with a greeted transcript.
func NewChatPageModel(styles Styles) ChatPageModel {
	ta := textarea.New()
	ta.Placeholder = "Ask about research papers, methodologies, or request summaries..."
	ta.SetHeight(2)
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		renderer = nil // fall back to raw markdown
	}

	m := ChatPageModel{
		input:      ta,
		viewport:   viewport.New(80, 14),
		spinner:    sp,
		renderer:   renderer,
		styles:     styles,
		transcript: assistant.NewTranscript(),
		delay:      Defer,
	}
	m.UpdateContent()
	return m
}

// SetStyles swaps the color scheme.
func (m *ChatPageModel) SetStyles(styles Styles) {
	m.styles = styles
	m.spinner.Style = styles.Spinner
	m.UpdateContent()
}

// SetDelay replaces the async scheduler; tests inject Immediately.
func (m *ChatPageModel) SetDelay(d DelayFunc) { m.delay = d }

// Transcript exposes the conversation for inspection.
func (m ChatPageModel) Transcript() *assistant.Transcript { return m.transcript }

// SetSize updates the layout.
func (m *ChatPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.input.SetWidth(w - 2)
	m.viewport.Width = w
	m.viewport.Height = h - 5 // input + status + hint
	if r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(w-6, 20)),
	); err == nil {
		m.renderer = r
	}
	m.UpdateContent()
}

// renderMarkdown renders assistant markdown, falling back to the raw text.
func (m *ChatPageModel) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content
	}
	out, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}

// UpdateContent rebuilds the transcript view.
func (m *ChatPageModel) UpdateContent() {
	s := m.styles
	var sb strings.Builder

	for _, msg := range m.transcript.Messages() {
		stamp := s.Muted.Render(msg.Time.Format("15:04"))
		if msg.Role == assistant.RoleUser {
			sb.WriteString(s.UserBubble.Render("You") + " " + stamp + "\n")
			sb.WriteString(s.Body.Render(msg.Content) + "\n\n")
		} else {
			sb.WriteString(s.Badge.Render("Assistant") + " " + stamp + "\n")
			sb.WriteString(s.BotBubble.Render(m.renderMarkdown(msg.Content)) + "\n\n")
		}
	}

	if m.showQuickPrompts() {
		sb.WriteString(s.Bold.Render("Try asking about:") + "\n")
		for i, q := range assistant.QuickPrompts {
			sb.WriteString(s.Muted.Render(fmt.Sprintf("  [%d] %s", i+1, q)) + "\n")
		}
	}

	m.viewport.SetContent(sb.String())
	m.viewport.GotoBottom()
}

// showQuickPrompts reports whether the starter suggestions are offered: only
// while the transcript holds nothing but the greeting.
func (m ChatPageModel) showQuickPrompts() bool {
	return m.transcript.Len() == 1
}

// Update handles messages.
func (m ChatPageModel) Update(msg tea.Msg) (ChatPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case assistantReplyMsg:
		m.transcript.Append(assistant.RoleAssistant, msg.content)
		m.isTyping = false
		m.UpdateContent()
		return m, nil

	case spinner.TickMsg:
		if !m.isTyping {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.send(m.input.Value())
		case "1", "2", "3", "4":
			// Digits select a starter prompt only while the suggestions are
			// showing and nothing has been typed yet.
			if m.showQuickPrompts() && m.input.Value() == "" {
				idx := int(msg.String()[0] - '1')
				m.input.SetValue(assistant.QuickPrompts[idx])
				return m, nil
			}
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send appends the user message and schedules the canned reply. Empty input
// and in-flight replies are guard conditions, not errors: the action simply
// does not start.
func (m ChatPageModel) send(text string) (ChatPageModel, tea.Cmd) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || m.isTyping {
		return m, nil
	}

	m.transcript.Append(assistant.RoleUser, trimmed)
	m.input.Reset()
	m.isTyping = true
	m.UpdateContent()

	reply := m.delay(assistant.ResponseDelay, func() tea.Msg {
		return assistantReplyMsg{content: assistant.Respond(trimmed)}
	})
	return m, tea.Batch(reply, m.spinner.Tick)
}

// View renders the page.
func (m ChatPageModel) View() string {
	s := m.styles
	status := s.Footer.Render("enter send · ↑/↓ scroll")
	if m.isTyping {
		status = m.spinner.View() + s.Muted.Render(" Assistant is thinking...")
	}
	return m.viewport.View() + "\n" + m.input.View() + "\n" + status
}
