// Package bridge implements the simulated cross-chain token bridge: chain
// and token catalogs, the exchange-rate table, quoting, and direction
// swapping. No balance is ever debited and no transfer occurs; submitting a
// bridge resolves to a receipt after a fixed delay.
package bridge

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Chain is a bridgeable network.
type Chain struct {
	ID     string
	Name   string
	Symbol string
}

// Chains lists the supported networks in display order.
var Chains = []Chain{
	{ID: "ethereum", Name: "Ethereum", Symbol: "ETH"},
	{ID: "icp", Name: "Internet Computer", Symbol: "ICP"},
	{ID: "bitcoin", Name: "Bitcoin", Symbol: "BTC"},
}

// chainTokens maps a chain ID to its token symbols, first symbol being the
// chain default.
var chainTokens = map[string][]string{
	"ethereum": {"ETH", "USDT", "USDC", "DAI"},
	"icp":      {"ICP", "REZ", "ckBTC", "ckETH"},
	"bitcoin":  {"BTC"},
}

// TokensFor returns the token symbols available on the chain.
func TokensFor(chainID string) []string {
	return chainTokens[chainID]
}

// Pair keys the rate table by explicit (from, to) symbols rather than a
// concatenated string, so a malformed key cannot silently mis-price a swap.
type Pair struct {
	From string
	To   string
}

// DefaultRate applies to any pair missing from the rate table.
const DefaultRate = 1.0

var rates = map[Pair]float64{
	{From: "ETH", To: "REZ"}:  1250,
	{From: "USDT", To: "REZ"}: 0.5,
	{From: "ICP", To: "REZ"}:  12.5,
	{From: "BTC", To: "REZ"}:  25000,
}

// Rate returns the exchange rate for the pair, or DefaultRate when the pair
// is unlisted.
func Rate(from, to string) float64 {
	if r, ok := rates[Pair{From: from, To: to}]; ok {
		return r
	}
	return DefaultRate
}

// Quote converts the raw amount input to the destination amount, formatted
// with two decimals. An empty amount quotes as "0"; a malformed or
// non-positive amount is an error.
func Quote(amount, from, to string) (string, error) {
	if amount == "" {
		return "0", nil
	}
	in, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return "", fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if in <= 0 {
		return "", fmt.Errorf("amount must be positive, got %v", in)
	}
	return strconv.FormatFloat(in*Rate(from, to), 'f', 2, 64), nil
}

// Selection is the bridge form's chain/token choices.
type Selection struct {
	FromChain string
	ToChain   string
	FromToken string
	ToToken   string
}

// DefaultSelection is the initial bridge setup: ETH on Ethereum into REZ on
// the Internet Computer.
func DefaultSelection() Selection {
	return Selection{
		FromChain: "ethereum",
		ToChain:   "icp",
		FromToken: "ETH",
		ToToken:   "REZ",
	}
}

// Swap exchanges the from/to chains and re-derives the token choices: the
// new source takes its chain default, the new destination prefers REZ when
// the chain lists it.
func (s Selection) Swap() Selection {
	out := Selection{
		FromChain: s.ToChain,
		ToChain:   s.FromChain,
	}
	out.FromToken = DefaultToken(out.FromChain)
	out.ToToken = PreferredDestination(out.ToChain)
	return out
}

// DefaultToken returns the first token listed for the chain.
func DefaultToken(chainID string) string {
	toks := TokensFor(chainID)
	if len(toks) == 0 {
		return ""
	}
	return toks[0]
}

// PreferredDestination returns REZ when the chain lists it, otherwise the
// chain default.
func PreferredDestination(chainID string) string {
	for _, t := range TokensFor(chainID) {
		if t == "REZ" {
			return "REZ"
		}
	}
	return DefaultToken(chainID)
}

// Display labels shown alongside the quote. The fee and ETA are cosmetic;
// nothing is charged and nothing settles.
const (
	FeeLabel           = "0.1%"
	EstimatedTimeLabel = "5-10 minutes"
)

// SwapDelay is the simulated settlement time for a bridge submission.
const SwapDelay = 3 * time.Second

// TxStatus is the display state of a bridge transaction.
type TxStatus string

const (
	TxCompleted TxStatus = "completed"
	TxPending   TxStatus = "pending"
)

// Transaction is a bridge history entry.
type Transaction struct {
	From   string
	To     string
	Amount string
	Status TxStatus
	Age    string
	Hash   string
}

// RecentTransactions returns the static bridge history shown under the form.
func RecentTransactions() []Transaction {
	return []Transaction{
		{From: "ETH", To: "REZ", Amount: "1.5", Status: TxCompleted, Age: "2 hours ago", Hash: "0x1234...5678"},
		{From: "USDT", To: "REZ", Amount: "100", Status: TxPending, Age: "5 minutes ago", Hash: "0x8765...4321"},
		{From: "ICP", To: "REZ", Amount: "50", Status: TxCompleted, Age: "1 day ago", Hash: "0x9876...1234"},
	}
}

// Receipt describes a completed (simulated) bridge submission.
type Receipt struct {
	Amount    string
	FromToken string
	ToToken   string
	Output    string
	Hash      string
}

// NewReceipt builds the confirmation for a submitted bridge. The hash is a
// random identifier in transaction-hash clothing.
func NewReceipt(amount string, sel Selection) (Receipt, error) {
	out, err := Quote(amount, sel.FromToken, sel.ToToken)
	if err != nil {
		return Receipt{}, err
	}
	id := uuid.NewString()
	return Receipt{
		Amount:    amount,
		FromToken: sel.FromToken,
		ToToken:   sel.ToToken,
		Output:    out,
		Hash:      "0x" + id[:4] + "..." + id[len(id)-4:],
	}, nil
}

// String renders the confirmation line shown after a bridge completes.
func (r Receipt) String() string {
	return fmt.Sprintf("Successfully bridged %s %s to %s %s!", r.Amount, r.FromToken, r.Output, r.ToToken)
}
