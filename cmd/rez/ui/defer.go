package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DelayFunc schedules a message to arrive after a simulated delay. Page
// models take one of these instead of calling tea.Tick directly so tests can
// resolve pending operations immediately. Every scheduled operation resolves
// exactly once and always succeeds; there is no cancellation.
type DelayFunc func(d time.Duration, fn func() tea.Msg) tea.Cmd

// Defer is the production DelayFunc: the message arrives after d.
func Defer(d time.Duration, fn func() tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return fn()
	})
}

// Immediately is a DelayFunc for tests: the message arrives on the next
// update with no real waiting.
func Immediately(_ time.Duration, fn func() tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return fn()
	}
}
