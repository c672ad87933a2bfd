// Package assistant implements the mock research assistant: a deterministic
// keyword-to-template dispatcher plus an append-only chat transcript. There
// is no model behind it; responses are canned markdown chosen by the first
// matching keyword rule.
package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single entry in the chat transcript.
type Message struct {
	ID      string
	Role    Role
	Content string
	Time    time.Time
}

// Greeting is the assistant's canned opening message.
const Greeting = "Hello! I'm DeResNet's AI research assistant. I can help you understand research papers, find similar works, generate summaries, and answer questions about any academic content. What would you like to explore today?"

// QuickPrompts are suggested starter questions shown while the transcript
// holds only the greeting.
var QuickPrompts = []string{
	"Summarize the latest quantum computing papers",
	"Find papers related to machine learning in climate science",
	"Explain the methodology in paper #1",
	"What are the current trends in blockchain research?",
}

// ResponseDelay is the simulated thinking time before a reply appears.
const ResponseDelay = 1500 * time.Millisecond

// Respond picks the canned reply for the input. Rules are checked in a fixed
// priority order, so an input matching several keywords always gets the
// earliest branch (e.g. "quantum" beats "blockchain").
func Respond(input string) string {
	lower := strings.ToLower(input)

	switch {
	case strings.Contains(lower, "quantum"):
		return quantumResponse
	case strings.Contains(lower, "climate") || strings.Contains(lower, "machine learning"):
		return climateResponse
	case strings.Contains(lower, "paper #1") || strings.Contains(lower, "methodology"):
		return methodologyResponse
	case strings.Contains(lower, "blockchain"):
		return blockchainResponse
	default:
		return fmt.Sprintf(fallbackResponse, input)
	}
}

// Transcript is an append-only ordered message sequence for one session.
type Transcript struct {
	messages []Message
}

// NewTranscript returns a transcript seeded with the assistant greeting.
func NewTranscript() *Transcript {
	t := &Transcript{}
	t.append(RoleAssistant, Greeting)
	return t
}

// Append adds a message and returns it.
func (t *Transcript) Append(role Role, content string) Message {
	return t.append(role, content)
}

func (t *Transcript) append(role Role, content string) Message {
	m := Message{
		ID:      uuid.NewString(),
		Role:    role,
		Content: content,
		Time:    time.Now(),
	}
	t.messages = append(t.messages, m)
	return m
}

// Messages returns the transcript in order. The slice must not be mutated.
func (t *Transcript) Messages() []Message {
	return t.messages
}

// Len returns the number of messages in the transcript.
func (t *Transcript) Len() int {
	return len(t.messages)
}
