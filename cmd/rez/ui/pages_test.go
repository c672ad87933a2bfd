package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"deresnet/internal/assistant"
	"deresnet/internal/bridge"
	"deresnet/internal/dao"
	"deresnet/internal/research"
	"deresnet/internal/submit"
)

// runCmd executes a command tree and returns every produced message.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestLandingPageEnterEmitsGetStarted(t *testing.T) {
	m := NewLandingPageModel(DefaultStyles())

	_, cmd := m.Update(keyEnter())
	if cmd == nil {
		t.Fatal("enter should produce a command")
	}
	msgs := runCmd(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if _, ok := msgs[0].(GetStartedMsg); !ok {
		t.Fatalf("got %T, want GetStartedMsg", msgs[0])
	}
}

func TestLandingPageView(t *testing.T) {
	m := NewLandingPageModel(DefaultStyles())
	view := m.View()

	for _, want := range []string{"Decentralized Research Network", "Why DeResNet?", "Press Enter"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDashboardPageUser(t *testing.T) {
	m := NewDashboardPageModel(research.Papers(), research.Proposals(), DefaultStyles())
	m.SetSize(120, 40)

	if view := m.View(); !strings.Contains(view, "Welcome back, Researcher!") {
		t.Error("anonymous dashboard should greet the generic researcher")
	}

	u := research.DemoUser()
	m.SetUser(&u)
	view := m.View()
	if !strings.Contains(view, "Welcome back, Dr. Sarah Chen!") {
		t.Error("dashboard should greet the logged-in user")
	}
	if !strings.Contains(view, "2,500") {
		t.Error("dashboard should show the formatted REZ balance")
	}
}

func TestLibraryPageSearch(t *testing.T) {
	m := NewLibraryPageModel(research.Papers(), DefaultStyles())

	if got := len(m.Results()); got != 3 {
		t.Fatalf("got %d initial results, want 3", got)
	}
	if !strings.Contains(m.View(), "Showing 3 papers") {
		t.Error("view should report the result count")
	}

	m, _ = m.Update(keyRunes("quantum"))
	if got := len(m.Results()); got != 1 {
		t.Fatalf("got %d results for quantum, want 1", got)
	}
	if m.Results()[0].ID != "1" {
		t.Errorf("got paper %s, want 1", m.Results()[0].ID)
	}
}

func TestLibraryPageNoResults(t *testing.T) {
	m := NewLibraryPageModel(research.Papers(), DefaultStyles())
	m, _ = m.Update(keyRunes("zzzzz"))

	if !strings.Contains(m.View(), "No papers found") {
		t.Error("view should show the empty state")
	}
}

func TestLibraryPageCycleFilters(t *testing.T) {
	m := NewLibraryPageModel(research.Papers(), DefaultStyles())

	if m.SelectedTag() != "all" {
		t.Fatalf("got tag %q, want all", m.SelectedTag())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.SelectedTag() != "quantum computing" {
		t.Errorf("got tag %q, want quantum computing", m.SelectedTag())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.SortKey() != "citations" {
		t.Errorf("got sort %q, want citations", m.SortKey())
	}
}

func TestDAOPageVote(t *testing.T) {
	register := dao.NewRegister()
	m := NewDAOPageModel(research.Proposals(), register, DefaultStyles())
	m.SetDelay(Immediately)
	u := research.DemoUser()
	m.SetUser(&u)

	m, cmd := m.Update(keyRunes("f"))
	if cmd == nil {
		t.Fatal("eligible vote should schedule a confirmation")
	}
	if b, ok := register.Choice("1"); !ok || b != dao.BallotFor {
		t.Fatalf("register holds (%v, %v), want (for, true)", b, ok)
	}

	for _, msg := range runCmd(cmd) {
		m, _ = m.Update(msg)
	}
	if !strings.Contains(m.View(), "Vote submitted successfully!") {
		t.Error("view should confirm the recorded vote")
	}
}

func TestDAOPageRepeatVoteIgnored(t *testing.T) {
	register := dao.NewRegister()
	m := NewDAOPageModel(research.Proposals(), register, DefaultStyles())
	m.SetDelay(Immediately)
	u := research.DemoUser()
	m.SetUser(&u)

	m, _ = m.Update(keyRunes("f"))
	m, cmd := m.Update(keyRunes("a"))
	if cmd != nil {
		t.Error("repeat cast should not schedule a second confirmation")
	}
	if b, _ := register.Choice("1"); b != dao.BallotFor {
		t.Errorf("got ballot %v, want for", b)
	}
}

func TestDAOPageAnonymousCannotVote(t *testing.T) {
	register := dao.NewRegister()
	m := NewDAOPageModel(research.Proposals(), register, DefaultStyles())
	m.SetDelay(Immediately)

	m, cmd := m.Update(keyRunes("f"))
	if cmd != nil {
		t.Error("anonymous vote should be a no-op")
	}
	if register.Count() != 0 {
		t.Errorf("register holds %d votes, want 0", register.Count())
	}
	if !strings.Contains(m.View(), "Login to vote") {
		t.Error("view should prompt for login on active proposals")
	}
}

func TestDAOPageTabs(t *testing.T) {
	m := NewDAOPageModel(research.Proposals(), dao.NewRegister(), DefaultStyles())

	if m.CurrentTab() != research.ProposalActive {
		t.Fatalf("got tab %v, want active", m.CurrentTab())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.CurrentTab() != research.ProposalPassed {
		t.Errorf("got tab %v, want passed", m.CurrentTab())
	}
	if !strings.Contains(m.View(), "New Peer Review Standards Implementation") {
		t.Error("passed tab should list the passed proposal")
	}
}

func TestChatPageGreeting(t *testing.T) {
	m := NewChatPageModel(DefaultStyles())

	if m.Transcript().Len() != 1 {
		t.Fatalf("transcript holds %d messages, want the greeting only", m.Transcript().Len())
	}
	if !strings.Contains(m.View(), "Try asking about:") {
		t.Error("quick prompts should show alongside the greeting")
	}
}

func TestChatPageSendAndReply(t *testing.T) {
	m := NewChatPageModel(DefaultStyles())
	m.SetDelay(Immediately)

	m, _ = m.Update(keyRunes("tell me about quantum computing"))
	m, cmd := m.Update(keyEnter())
	if cmd == nil {
		t.Fatal("send should schedule the reply")
	}
	if m.Transcript().Len() != 2 {
		t.Fatalf("transcript holds %d messages, want greeting + user", m.Transcript().Len())
	}

	for _, msg := range runCmd(cmd) {
		m, _ = m.Update(msg)
	}
	if m.Transcript().Len() != 3 {
		t.Fatalf("transcript holds %d messages, want 3 after the reply", m.Transcript().Len())
	}
	last := m.Transcript().Messages()[2]
	if last.Role != assistant.RoleAssistant {
		t.Errorf("got role %v, want assistant", last.Role)
	}
	if last.Content != assistant.Respond("tell me about quantum computing") {
		t.Error("reply should be the canned quantum response")
	}
}

func TestChatPageEmptySendIgnored(t *testing.T) {
	m := NewChatPageModel(DefaultStyles())
	m.SetDelay(Immediately)

	m, cmd := m.Update(keyEnter())
	if cmd != nil {
		t.Error("empty input should not send")
	}
	if m.Transcript().Len() != 1 {
		t.Errorf("transcript holds %d messages, want 1", m.Transcript().Len())
	}
}

func TestChatPageQuickPromptDigit(t *testing.T) {
	m := NewChatPageModel(DefaultStyles())
	m.SetDelay(Immediately)

	m, _ = m.Update(keyRunes("2"))
	m, cmd := m.Update(keyEnter())
	if cmd == nil {
		t.Fatal("selected prompt should send")
	}
	if got := m.Transcript().Messages()[1].Content; got != assistant.QuickPrompts[1] {
		t.Errorf("got %q, want quick prompt 2", got)
	}
}

func TestBridgePageQuote(t *testing.T) {
	m := NewBridgePageModel(DefaultStyles())

	m, _ = m.Update(keyRunes("2"))
	if m.Amount() != "2" {
		t.Fatalf("got amount %q, want 2", m.Amount())
	}
	if m.Output() != "2500.00" {
		t.Errorf("got output %q, want 2500.00", m.Output())
	}
	if !m.CanSubmit() {
		t.Error("a positive amount should enable the bridge")
	}
}

func TestBridgePageSingleDecimalPoint(t *testing.T) {
	m := NewBridgePageModel(DefaultStyles())

	for _, k := range []string{"1", ".", "5", "."} {
		m, _ = m.Update(keyRunes(k))
	}
	if m.Amount() != "1.5" {
		t.Errorf("got amount %q, want 1.5", m.Amount())
	}
}

func TestBridgePageSubmit(t *testing.T) {
	m := NewBridgePageModel(DefaultStyles())
	m.SetDelay(Immediately)

	m, _ = m.Update(keyRunes("2"))
	m, cmd := m.Update(keyEnter())
	if cmd == nil {
		t.Fatal("submit should schedule the settlement")
	}
	for _, msg := range runCmd(cmd) {
		m, _ = m.Update(msg)
	}
	if !strings.Contains(m.View(), "Successfully bridged 2 ETH to 2500.00 REZ!") {
		t.Error("view should show the receipt confirmation")
	}
	if m.Amount() != "" {
		t.Errorf("amount should clear after settlement, got %q", m.Amount())
	}
}

func TestBridgePageSwap(t *testing.T) {
	m := NewBridgePageModel(DefaultStyles())

	m, _ = m.Update(keyRunes("s"))
	want := bridge.Selection{
		FromChain: "icp",
		ToChain:   "ethereum",
		FromToken: "ICP",
		ToToken:   "ETH",
	}
	if diff := cmp.Diff(want, m.Selection()); diff != "" {
		t.Errorf("selection mismatch after swap (-want +got):\n%s", diff)
	}
}

func TestBridgePageEmptyAmountCannotSubmit(t *testing.T) {
	m := NewBridgePageModel(DefaultStyles())

	m, cmd := m.Update(keyEnter())
	if cmd != nil {
		t.Error("empty amount should not bridge")
	}
	if m.CanSubmit() {
		t.Error("CanSubmit should be false with no amount")
	}
}

// fillForm types a minimal valid draft into the submission page.
func fillForm(t *testing.T, m SubmitPageModel) SubmitPageModel {
	t.Helper()
	tab := tea.KeyMsg{Type: tea.KeyTab}

	m, _ = m.Update(keyRunes("A Study of Things"))
	m, _ = m.Update(tab) // abstract
	m, _ = m.Update(keyRunes("We study things."))
	m, _ = m.Update(tab) // institution
	m, _ = m.Update(tab) // category
	m, _ = m.Update(tab) // doi
	m, _ = m.Update(tab) // file
	m, _ = m.Update(keyRunes("paper.pdf"))
	m, _ = m.Update(tab) // author 1
	m, _ = m.Update(keyRunes("Dr. Example"))
	return m
}

func TestSubmitPageFlow(t *testing.T) {
	m := NewSubmitPageModel(DefaultStyles())
	m.SetDelay(Immediately)

	m = fillForm(t, m)
	if !m.Form().CanSubmit() {
		t.Fatalf("draft should validate, got: %v", m.Form().Validate())
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("submit should schedule the confirmation")
	}
	for _, msg := range runCmd(cmd) {
		m, _ = m.Update(msg)
	}
	if !strings.Contains(m.View(), submit.Confirmation) {
		t.Error("view should show the submission confirmation")
	}
	if m.Form().Title != "" {
		t.Error("form should reset after submission")
	}
}

func TestSubmitPageInvalidDraftShowsReason(t *testing.T) {
	m := NewSubmitPageModel(DefaultStyles())
	m.SetDelay(Immediately)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("invalid draft should not submit")
	}
	if !strings.Contains(m.View(), "title is required") {
		t.Error("view should explain why the draft is blocked")
	}
}

func TestSubmitPageRejectsBadFile(t *testing.T) {
	m := NewSubmitPageModel(DefaultStyles())
	tab := tea.KeyMsg{Type: tea.KeyTab}

	for i := 0; i < 5; i++ { // focus the file field
		m, _ = m.Update(tab)
	}
	m, _ = m.Update(keyRunes("data.csv"))

	if m.Form().FileName != "" {
		t.Errorf("rejected file stuck: %q", m.Form().FileName)
	}
	if !strings.Contains(m.View(), "unsupported file type") {
		t.Error("view should show the extension error")
	}
}

func TestSubmitPageDynamicAuthors(t *testing.T) {
	m := NewSubmitPageModel(DefaultStyles())
	tab := tea.KeyMsg{Type: tea.KeyTab}

	for i := 0; i < 6; i++ { // focus author 1
		m, _ = m.Update(tab)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	if got := len(m.Form().Authors); got != 2 {
		t.Fatalf("got %d authors, want 2", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if got := len(m.Form().Authors); got != 1 {
		t.Fatalf("got %d authors after remove, want 1", got)
	}

	// The last entry stays put.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if got := len(m.Form().Authors); got != 1 {
		t.Errorf("got %d authors, the floor is 1", got)
	}
}

func TestPlaceholderPageView(t *testing.T) {
	m := NewPlaceholderPageModel("Analytics Dashboard", "Advanced research analytics and insights", DefaultStyles())
	view := m.View()

	if !strings.Contains(view, "Analytics Dashboard") {
		t.Error("view missing the title")
	}
	if !strings.Contains(view, "Coming soon - Advanced research analytics and insights") {
		t.Error("view missing the coming-soon line")
	}
}

func TestFormatInt(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{2500, "2,500"},
		{1234567, "1,234,567"},
		{-1250, "-1250"},
	}
	for _, tt := range tests {
		if got := FormatInt(tt.in); got != tt.want {
			t.Errorf("FormatInt(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStatusBadge(t *testing.T) {
	s := DefaultStyles()

	if !strings.Contains(s.StatusBadge("published"), "published") {
		t.Error("badge should carry the status text")
	}
	if !strings.Contains(s.StatusBadge("under-review"), "under-review") {
		t.Error("badge should carry the status text")
	}
}
