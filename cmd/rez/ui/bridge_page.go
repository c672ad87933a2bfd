package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"deresnet/internal/bridge"
)

// bridgeDoneMsg arrives after the simulated bridge transaction settles.
type bridgeDoneMsg struct {
	receipt bridge.Receipt
}

// BridgePageModel is the simulated multi-chain token bridge form.
type BridgePageModel struct {
	styles  Styles
	spinner spinner.Model

	sel        bridge.Selection
	amount     string
	isSwapping bool
	status     string
	delay      DelayFunc

	width  int
	height int
}

// NewBridgePageModel creates the bridge page with the default ETH-to-REZ
// selection.
func NewBridgePageModel(styles Styles) BridgePageModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner
	return BridgePageModel{
		styles:  styles,
		spinner: sp,
		sel:     bridge.DefaultSelection(),
		delay:   Defer,
	}
}

// SetStyles swaps the color scheme.
func (m *BridgePageModel) SetStyles(styles Styles) {
	m.styles = styles
	m.spinner.Style = styles.Spinner
}

// SetDelay replaces the async scheduler; tests inject Immediately.
func (m *BridgePageModel) SetDelay(d DelayFunc) { m.delay = d }

// SetSize records the available area.
func (m *BridgePageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Selection exposes the current chain/token choices.
func (m BridgePageModel) Selection() bridge.Selection { return m.sel }

// Amount exposes the raw amount input.
func (m BridgePageModel) Amount() string { return m.amount }

// Output returns the displayed destination amount for the current input.
func (m BridgePageModel) Output() string {
	out, err := bridge.Quote(m.amount, m.sel.FromToken, m.sel.ToToken)
	if err != nil {
		return "0"
	}
	return out
}

// CanSubmit reports whether the bridge action is enabled: a positive amount
// and no transaction in flight.
func (m BridgePageModel) CanSubmit() bool {
	if m.isSwapping || m.amount == "" {
		return false
	}
	_, err := bridge.Quote(m.amount, m.sel.FromToken, m.sel.ToToken)
	return err == nil
}

// cycleToken advances sym within the chain's token list.
func cycleToken(chainID, sym string) string {
	toks := bridge.TokensFor(chainID)
	for i, t := range toks {
		if t == sym {
			return toks[(i+1)%len(toks)]
		}
	}
	return bridge.DefaultToken(chainID)
}

// cycleChain returns the chain ID after id in the catalog, skipping other.
func cycleChain(id, other string) string {
	ids := make([]string, 0, len(bridge.Chains))
	for _, c := range bridge.Chains {
		ids = append(ids, c.ID)
	}
	cur := 0
	for i, cid := range ids {
		if cid == id {
			cur = i
			break
		}
	}
	for step := 1; step <= len(ids); step++ {
		next := ids[(cur+step)%len(ids)]
		if next != other {
			return next
		}
	}
	return id
}

// Update handles messages.
func (m BridgePageModel) Update(msg tea.Msg) (BridgePageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case bridgeDoneMsg:
		m.isSwapping = false
		m.status = msg.receipt.String()
		m.amount = ""
		return m, nil

	case spinner.TickMsg:
		if !m.isSwapping {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.isSwapping {
			return m, nil
		}
		key := msg.String()
		switch key {
		case "enter":
			return m.submit()
		case "s":
			m.sel = m.sel.Swap()
			return m, nil
		case "c":
			m.sel.FromChain = cycleChain(m.sel.FromChain, m.sel.ToChain)
			m.sel.FromToken = bridge.DefaultToken(m.sel.FromChain)
			return m, nil
		case "C":
			m.sel.ToChain = cycleChain(m.sel.ToChain, m.sel.FromChain)
			m.sel.ToToken = bridge.PreferredDestination(m.sel.ToChain)
			return m, nil
		case "t":
			m.sel.FromToken = cycleToken(m.sel.FromChain, m.sel.FromToken)
			return m, nil
		case "T":
			m.sel.ToToken = cycleToken(m.sel.ToChain, m.sel.ToToken)
			return m, nil
		case "backspace":
			if len(m.amount) > 0 {
				m.amount = m.amount[:len(m.amount)-1]
			}
			return m, nil
		}
		// Digits and a single decimal point build the amount.
		if len(key) == 1 && (key[0] >= '0' && key[0] <= '9' || key == ".") {
			if key == "." && strings.Contains(m.amount, ".") {
				return m, nil
			}
			m.amount += key
			m.status = ""
		}
	}
	return m, nil
}

// submit starts the simulated bridge transaction.
func (m BridgePageModel) submit() (BridgePageModel, tea.Cmd) {
	if !m.CanSubmit() {
		return m, nil
	}
	receipt, err := bridge.NewReceipt(m.amount, m.sel)
	if err != nil {
		return m, nil
	}
	m.isSwapping = true
	m.status = ""
	done := m.delay(bridge.SwapDelay, func() tea.Msg {
		return bridgeDoneMsg{receipt: receipt}
	})
	return m, tea.Batch(done, m.spinner.Tick)
}

func chainName(id string) string {
	for _, c := range bridge.Chains {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

// View renders the page.
func (m BridgePageModel) View() string {
	s := m.styles
	var sb strings.Builder

	sb.WriteString(s.Title.Render("Multi-Chain Token Bridge") + "\n")
	sb.WriteString(s.Muted.Render("Bridge tokens between different blockchains to participate in DeResNet") + "\n\n")

	amount := m.amount
	if amount == "" {
		amount = "0.00"
	}
	from := s.Card.Render(
		s.Muted.Render("From") + "\n" +
			s.Bold.Render(chainName(m.sel.FromChain)) + " · " + s.Info.Render(m.sel.FromToken) + "\n" +
			s.Bold.Render(amount))
	to := s.Card.Render(
		s.Muted.Render("To") + "\n" +
			s.Bold.Render(chainName(m.sel.ToChain)) + " · " + s.Info.Render(m.sel.ToToken) + "\n" +
			s.Bold.Render(m.Output()))
	sb.WriteString(from + "\n" + s.Info.Render("  ⇅ [s] swap direction") + "\n" + to + "\n\n")

	sb.WriteString(s.Muted.Render(fmt.Sprintf("Exchange Rate: 1 %s = %v %s",
		m.sel.FromToken, bridge.Rate(m.sel.FromToken, m.sel.ToToken), m.sel.ToToken)) + "\n")
	sb.WriteString(s.Muted.Render("Bridge Fee: "+bridge.FeeLabel+"   Estimated Time: "+bridge.EstimatedTimeLabel) + "\n\n")

	switch {
	case m.isSwapping:
		sb.WriteString(m.spinner.View() + s.Muted.Render(" Bridging...") + "\n")
	case m.status != "":
		sb.WriteString(s.Success.Render(m.status) + "\n")
	case m.CanSubmit():
		sb.WriteString(s.Info.Render("[enter] Bridge Tokens") + "\n")
	default:
		sb.WriteString(s.Muted.Render("Enter an amount to bridge") + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(s.Bold.Render("Recent Transactions") + "\n")
	for _, tx := range bridge.RecentTransactions() {
		sb.WriteString(fmt.Sprintf("  %s %s  %s  %s\n",
			s.Body.Render(tx.Amount+" "+tx.From+" → "+tx.To),
			s.StatusBadge(string(tx.Status)),
			s.Muted.Render(tx.Age),
			s.Info.Render(tx.Hash)))
	}
	sb.WriteString("\n" + s.Footer.Render("c/C cycle chains · t/T cycle tokens · s swap · enter bridge"))

	return sb.String()
}
