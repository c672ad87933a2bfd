package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRate(t *testing.T) {
	assert.Equal(t, 1250.0, Rate("ETH", "REZ"))
	assert.Equal(t, 0.5, Rate("USDT", "REZ"))
	assert.Equal(t, 12.5, Rate("ICP", "REZ"))
	assert.Equal(t, 25000.0, Rate("BTC", "REZ"))
}

func TestRateUnlistedPairDefaultsToOne(t *testing.T) {
	assert.Equal(t, DefaultRate, Rate("BTC", "USDT"))
	assert.Equal(t, DefaultRate, Rate("REZ", "ETH"), "rates are directional")
}

func TestQuote(t *testing.T) {
	out, err := Quote("2", "ETH", "REZ")
	require.NoError(t, err)
	assert.Equal(t, "2500.00", out)

	out, err = Quote("0.5", "ICP", "REZ")
	require.NoError(t, err)
	assert.Equal(t, "6.25", out)

	out, err = Quote("100", "BTC", "USDT")
	require.NoError(t, err)
	assert.Equal(t, "100.00", out, "unlisted pair converts 1:1")
}

func TestQuoteEmptyAmount(t *testing.T) {
	out, err := Quote("", "ETH", "REZ")
	require.NoError(t, err)
	assert.Equal(t, "0", out)
}

func TestQuoteRejectsBadAmounts(t *testing.T) {
	_, err := Quote("abc", "ETH", "REZ")
	assert.Error(t, err)

	_, err = Quote("-1", "ETH", "REZ")
	assert.Error(t, err)

	_, err = Quote("0", "ETH", "REZ")
	assert.Error(t, err)
}

func TestDefaultSelection(t *testing.T) {
	sel := DefaultSelection()
	assert.Equal(t, "ethereum", sel.FromChain)
	assert.Equal(t, "icp", sel.ToChain)
	assert.Equal(t, "ETH", sel.FromToken)
	assert.Equal(t, "REZ", sel.ToToken)
}

func TestSwapPrefersREZDestination(t *testing.T) {
	sel := DefaultSelection().Swap()

	assert.Equal(t, "icp", sel.FromChain)
	assert.Equal(t, "ethereum", sel.ToChain)
	assert.Equal(t, "ICP", sel.FromToken, "new source takes the chain default")
	assert.Equal(t, "ETH", sel.ToToken, "ethereum lists no REZ so its default applies")

	// Swapping back restores an REZ destination on the IC side.
	back := sel.Swap()
	assert.Equal(t, "REZ", back.ToToken)
}

func TestTokensFor(t *testing.T) {
	assert.Equal(t, []string{"ETH", "USDT", "USDC", "DAI"}, TokensFor("ethereum"))
	assert.Equal(t, []string{"BTC"}, TokensFor("bitcoin"))
	assert.Empty(t, TokensFor("solana"))
}

func TestDefaultTokenMatchesChainSymbol(t *testing.T) {
	for _, c := range Chains {
		assert.Equal(t, c.Symbol, DefaultToken(c.ID), "chain %s", c.ID)
	}
	assert.Equal(t, "", DefaultToken("unknown"))
}

func TestNewReceipt(t *testing.T) {
	r, err := NewReceipt("2", DefaultSelection())
	require.NoError(t, err)

	assert.Equal(t, "2", r.Amount)
	assert.Equal(t, "2500.00", r.Output)
	assert.Regexp(t, `^0x[0-9a-f]{4}\.\.\.[0-9a-f]{4}$`, r.Hash)
	assert.Equal(t, "Successfully bridged 2 ETH to 2500.00 REZ!", r.String())
}

func TestNewReceiptRejectsBadAmount(t *testing.T) {
	_, err := NewReceipt("nope", DefaultSelection())
	assert.Error(t, err)
}

func TestRecentTransactions(t *testing.T) {
	txs := RecentTransactions()
	require.Len(t, txs, 3)
	assert.Equal(t, TxCompleted, txs[0].Status)
	assert.Equal(t, TxPending, txs[1].Status)
}
