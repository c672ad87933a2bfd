package dao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deresnet/internal/research"
)

func TestPartitionExhaustiveAndDisjoint(t *testing.T) {
	proposals := research.Proposals()
	buckets := Partition(proposals)

	total := 0
	seen := make(map[string]bool)
	for _, ps := range buckets {
		for _, p := range ps {
			assert.False(t, seen[p.ID], "proposal %s landed in two buckets", p.ID)
			seen[p.ID] = true
			total++
		}
	}
	assert.Equal(t, len(proposals), total, "every proposal must land in exactly one bucket")
}

func TestByStatus(t *testing.T) {
	proposals := research.Proposals()

	active := ByStatus(proposals, research.ProposalActive)
	require.Len(t, active, 1)
	assert.Equal(t, "1", active[0].ID)

	passed := ByStatus(proposals, research.ProposalPassed)
	require.Len(t, passed, 1)
	assert.Equal(t, "2", passed[0].ID)

	rejected := ByStatus(proposals, research.ProposalRejected)
	require.Len(t, rejected, 1)
	assert.Equal(t, "3", rejected[0].ID)
}

func TestFixtureTalliesConsistent(t *testing.T) {
	for _, p := range research.Proposals() {
		assert.Equal(t, p.TotalVotes, p.VotesFor+p.VotesAgainst,
			"proposal %s tallies disagree", p.ID)
	}
}

func TestEligible(t *testing.T) {
	p := research.Proposal{RequiredTokens: 100}

	assert.False(t, Eligible(nil, p), "anonymous session is never eligible")

	poor := &research.User{RezTokens: 99}
	assert.False(t, Eligible(poor, p))

	exact := &research.User{RezTokens: 100}
	assert.True(t, Eligible(exact, p), "threshold is inclusive")

	rich := &research.User{RezTokens: 2500}
	assert.True(t, Eligible(rich, p))
}

func TestVotingPower(t *testing.T) {
	assert.Equal(t, 0, VotingPower(nil))
	assert.Equal(t, 25, VotingPower(&research.User{RezTokens: 2500}))
	assert.Equal(t, 0, VotingPower(&research.User{RezTokens: 99}))
}

func TestRegisterFirstCastWins(t *testing.T) {
	r := NewRegister()

	assert.True(t, r.Cast("1", BallotFor))
	assert.False(t, r.Cast("1", BallotAgainst), "second cast must be rejected")

	b, voted := r.Choice("1")
	require.True(t, voted)
	assert.Equal(t, BallotFor, b, "first choice must survive the repeat cast")
	assert.Equal(t, 1, r.Count())
}

func TestRegisterIndependentProposals(t *testing.T) {
	r := NewRegister()

	assert.True(t, r.Cast("1", BallotFor))
	assert.True(t, r.Cast("2", BallotAgainst))
	assert.Equal(t, 2, r.Count())

	_, voted := r.Choice("3")
	assert.False(t, voted)
}
