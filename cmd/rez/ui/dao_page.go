package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"deresnet/internal/dao"
	"deresnet/internal/research"
)

// voteDelay is the simulated voting-transaction time.
const voteDelay = 1 * time.Second

// voteConfirmedMsg arrives after the simulated vote transaction settles.
type voteConfirmedMsg struct {
	proposalID string
	ballot     dao.Ballot
}

// DAOPageModel is the governance view: proposals bucketed by status, with
// session-local voting on the active tab.
type DAOPageModel struct {
	viewport viewport.Model
	progress progress.Model
	styles   Styles

	proposals []research.Proposal
	register  *dao.Register
	user      *research.User
	delay     DelayFunc

	tabIdx   int
	selected int
	status   string // confirmation line after a vote settles

	width  int
	height int
}

// NewDAOPageModel creates the governance page over the proposal fixture.
func NewDAOPageModel(proposals []research.Proposal, register *dao.Register, styles Styles) DAOPageModel {
	p := progress.New(progress.WithDefaultGradient())
	p.ShowPercentage = false
	m := DAOPageModel{
		viewport:  viewport.New(80, 16),
		progress:  p,
		styles:    styles,
		proposals: proposals,
		register:  register,
		delay:     Defer,
	}
	m.UpdateContent()
	return m
}

// SetStyles swaps the color scheme.
func (m *DAOPageModel) SetStyles(styles Styles) {
	m.styles = styles
	m.UpdateContent()
}

// SetUser points the page at the logged-in user (nil when anonymous).
func (m *DAOPageModel) SetUser(u *research.User) {
	m.user = u
	m.UpdateContent()
}

// SetDelay replaces the async scheduler; tests inject Immediately.
func (m *DAOPageModel) SetDelay(d DelayFunc) { m.delay = d }

// SetSize updates the layout.
func (m *DAOPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h - 4 // stats + tabs + hint
	m.progress.Width = min(w-8, 40)
	m.UpdateContent()
}

// CurrentTab returns the status bucket being shown.
func (m DAOPageModel) CurrentTab() research.ProposalStatus {
	return dao.Statuses[m.tabIdx]
}

func (m DAOPageModel) currentProposals() []research.Proposal {
	return dao.ByStatus(m.proposals, m.CurrentTab())
}

// UpdateContent rebuilds the proposal list for the current tab.
func (m *DAOPageModel) UpdateContent() {
	s := m.styles
	props := m.currentProposals()
	if m.selected >= len(props) {
		m.selected = 0
	}

	var sb strings.Builder
	for i, p := range props {
		cursor := "  "
		if i == m.selected {
			cursor = s.Info.Render("> ")
		}
		sb.WriteString(cursor + s.Bold.Render(p.Title) + " " +
			s.StatusBadge(string(p.Status)) + " " + s.BadgeMuted.Render(string(p.Type)) + "\n")
		sb.WriteString("  " + s.Body.Render(p.Description) + "\n")
		sb.WriteString("  " + s.Muted.Render(fmt.Sprintf("Proposed by %s · Ends %s · Min. %d REZ to vote",
			p.Proposer, p.EndDate, p.RequiredTokens)) + "\n")
		sb.WriteString("  " + s.Muted.Render(fmt.Sprintf("%s total votes · %.0f%% support",
			FormatInt(p.TotalVotes), p.Support()*100)) + "\n")
		sb.WriteString("  " + m.progress.ViewAs(p.Support()) + "\n")
		sb.WriteString("  " + s.Success.Render(fmt.Sprintf("%s for", FormatInt(p.VotesFor))) +
			s.Muted.Render("  ·  ") +
			s.Error.Render(fmt.Sprintf("%s against", FormatInt(p.VotesAgainst))) + "\n")

		if p.Status == research.ProposalActive {
			sb.WriteString("  " + m.voteLine(p) + "\n")
		}
		sb.WriteString("\n")
	}

	if len(props) == 0 {
		sb.WriteString(s.Bold.Render(fmt.Sprintf("No %s proposals", m.CurrentTab())) + "\n")
		sb.WriteString(s.Muted.Render("Check back later for new proposals to vote on") + "\n")
	}

	m.viewport.SetContent(sb.String())
}

// voteLine renders the voting control state for one active proposal.
func (m *DAOPageModel) voteLine(p research.Proposal) string {
	s := m.styles
	if b, voted := m.register.Choice(p.ID); voted {
		return s.Success.Render(fmt.Sprintf("Voted %s", b))
	}
	if m.user == nil {
		return s.Muted.Render("Login to vote")
	}
	if !dao.Eligible(m.user, p) {
		return s.Muted.Render(fmt.Sprintf("Need %d REZ", p.RequiredTokens))
	}
	return s.Info.Render("[f] Vote For  [a] Vote Against")
}

// Update handles messages.
func (m DAOPageModel) Update(msg tea.Msg) (DAOPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case voteConfirmedMsg:
		m.status = fmt.Sprintf("Vote submitted successfully! Your %s vote has been recorded.", msg.ballot)
		m.UpdateContent()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "shift+tab":
			m.tabIdx = (m.tabIdx + len(dao.Statuses) - 1) % len(dao.Statuses)
			m.selected = 0
			m.UpdateContent()
		case "right", "tab":
			m.tabIdx = (m.tabIdx + 1) % len(dao.Statuses)
			m.selected = 0
			m.UpdateContent()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.UpdateContent()
			}
		case "down", "j":
			if m.selected < len(m.currentProposals())-1 {
				m.selected++
				m.UpdateContent()
			}
		case "f":
			return m.castVote(dao.BallotFor)
		case "a":
			return m.castVote(dao.BallotAgainst)
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// castVote records the ballot for the selected proposal, if allowed. A
// repeat cast is a no-op: the register keeps the first choice and no second
// confirmation is scheduled.
func (m DAOPageModel) castVote(b dao.Ballot) (DAOPageModel, tea.Cmd) {
	props := m.currentProposals()
	if m.CurrentTab() != research.ProposalActive || m.selected >= len(props) {
		return m, nil
	}
	p := props[m.selected]
	if !dao.Eligible(m.user, p) {
		return m, nil
	}
	if !m.register.Cast(p.ID, b) {
		return m, nil
	}
	m.UpdateContent()
	id := p.ID
	return m, m.delay(voteDelay, func() tea.Msg {
		return voteConfirmedMsg{proposalID: id, ballot: b}
	})
}

// View renders the page.
func (m DAOPageModel) View() string {
	s := m.styles

	balance := "0"
	if m.user != nil {
		balance = FormatInt(m.user.RezTokens)
	}
	stats := fmt.Sprintf("REZ Balance: %s   Voting Power: %d   Proposals Voted: %d",
		s.Bold.Render(balance), dao.VotingPower(m.user), m.register.Count())

	var tabs []string
	for i, st := range dao.Statuses {
		label := fmt.Sprintf("%s (%d)", st, len(dao.ByStatus(m.proposals, st)))
		if i == m.tabIdx {
			tabs = append(tabs, s.TabActive.Render(label))
		} else {
			tabs = append(tabs, s.TabInactive.Render(label))
		}
	}

	out := stats + "\n" + strings.Join(tabs, " ") + "\n" + m.viewport.View()
	if m.status != "" {
		out += "\n" + s.Success.Render(m.status)
	} else {
		out += "\n" + s.Footer.Render("tab switch · j/k select · f/a vote")
	}
	return out
}
