// Package research defines the DeResNet domain entities and the static
// fixtures that stand in for a real data source. Records are immutable for
// the lifetime of a session; no view writes back into the fixtures.
package research

// PaperStatus is the review lifecycle state of a paper.
type PaperStatus string

const (
	PaperPublished   PaperStatus = "published"
	PaperUnderReview PaperStatus = "under-review"
	PaperDraft       PaperStatus = "draft"
)

// Paper is a single research paper record.
type Paper struct {
	ID            string
	Title         string
	Abstract      string
	Authors       []string
	Institution   string
	PublishedDate string // ISO date, sortable lexically
	Tags          []string
	Citations     int
	Downloads     int
	DOI           string // optional
	Status        PaperStatus
}

// HasTag reports whether the paper carries the given tag.
func (p Paper) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ProposalType classifies a DAO proposal.
type ProposalType string

const (
	ProposalGrant      ProposalType = "grant"
	ProposalReview     ProposalType = "review"
	ProposalGovernance ProposalType = "governance"
)

// ProposalStatus is the voting lifecycle state of a proposal.
type ProposalStatus string

const (
	ProposalActive   ProposalStatus = "active"
	ProposalPassed   ProposalStatus = "passed"
	ProposalRejected ProposalStatus = "rejected"
)

// Proposal is a DAO governance item with a vote tally.
type Proposal struct {
	ID             string
	Title          string
	Description    string
	Type           ProposalType
	Proposer       string
	VotesFor       int
	VotesAgainst   int
	TotalVotes     int
	EndDate        string
	Status         ProposalStatus
	RequiredTokens int // minimum REZ balance to vote
}

// Support returns the fraction of total votes cast in favor, in [0,1].
func (p Proposal) Support() float64 {
	if p.TotalVotes == 0 {
		return 0
	}
	return float64(p.VotesFor) / float64(p.TotalVotes)
}

// User is a platform member with a REZ token balance.
type User struct {
	ID          string
	Name        string
	Email       string
	Institution string
	Reputation  float64
	RezTokens   int
}
