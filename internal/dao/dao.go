// Package dao implements the governance view logic: partitioning proposals
// by status, vote eligibility checks, and the session-local vote register.
// Votes recorded here never mutate the proposal fixture tallies.
package dao

import "deresnet/internal/research"

// Ballot is the direction of a cast vote.
type Ballot string

const (
	BallotFor     Ballot = "for"
	BallotAgainst Ballot = "against"
)

// Statuses lists the proposal tabs in display order.
var Statuses = []research.ProposalStatus{
	research.ProposalActive,
	research.ProposalPassed,
	research.ProposalRejected,
}

// Partition splits proposals into status buckets. Every proposal lands in
// exactly one bucket; fixture order is preserved within each.
func Partition(proposals []research.Proposal) map[research.ProposalStatus][]research.Proposal {
	out := make(map[research.ProposalStatus][]research.Proposal, len(Statuses))
	for _, p := range proposals {
		out[p.Status] = append(out[p.Status], p)
	}
	return out
}

// ByStatus returns the proposals with the given status, in fixture order.
func ByStatus(proposals []research.Proposal, status research.ProposalStatus) []research.Proposal {
	var out []research.Proposal
	for _, p := range proposals {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// Eligible reports whether the user holds enough REZ to vote on the proposal.
// A nil user (anonymous session) is never eligible.
func Eligible(u *research.User, p research.Proposal) bool {
	return u != nil && u.RezTokens >= p.RequiredTokens
}

// VotingPower converts a REZ balance to governance voting power.
func VotingPower(u *research.User) int {
	if u == nil {
		return 0
	}
	return u.RezTokens / 100
}

// Register records at most one ballot per proposal for the current session.
// It is not safe for concurrent use; the TUI event loop is single-threaded.
type Register struct {
	choices map[string]Ballot
}

// NewRegister returns an empty vote register.
func NewRegister() *Register {
	return &Register{choices: make(map[string]Ballot)}
}

// Cast records a ballot for the proposal. It returns false without changing
// anything if a ballot was already recorded; the first cast wins for the
// rest of the session.
func (r *Register) Cast(proposalID string, b Ballot) bool {
	if _, voted := r.choices[proposalID]; voted {
		return false
	}
	r.choices[proposalID] = b
	return true
}

// Choice returns the recorded ballot for the proposal, if any.
func (r *Register) Choice(proposalID string) (Ballot, bool) {
	b, ok := r.choices[proposalID]
	return b, ok
}

// Count returns how many proposals have a recorded ballot.
func (r *Register) Count() int {
	return len(r.choices)
}
