// Package app composes the DeResNet terminal client: the session, theme,
// and current-page state, the header and sidebar chrome, and routing of
// events to the page models.
package app

import (
	"go.uber.org/zap"

	"deresnet/cmd/rez/ui"
	"deresnet/internal/config"
	"deresnet/internal/dao"
	"deresnet/internal/research"
	"deresnet/internal/session"
)

// Page identifies which view fills the content area. The set is fixed;
// navigation overwrites the single current value with no history stack.
type Page string

const (
	PageDashboard Page = "dashboard"
	PagePapers    Page = "papers"
	PageSubmit    Page = "submit"
	PageDAO       Page = "dao"
	PageChat      Page = "ai-chat"
	PageBridge    Page = "bridge"
	PageAnalytics Page = "analytics"
	PageCommunity Page = "community"
	PageSettings  Page = "settings"
)

// navItem is one sidebar entry.
type navItem struct {
	page  Page
	label string
}

// navItems lists the sidebar in display order.
var navItems = []navItem{
	{PageDashboard, "Dashboard"},
	{PagePapers, "Papers"},
	{PageSubmit, "Submit Paper"},
	{PageDAO, "DAO Voting"},
	{PageChat, "AI Assistant"},
	{PageBridge, "Token Bridge"},
	{PageAnalytics, "Analytics"},
	{PageCommunity, "Community"},
	{PageSettings, "Settings"},
}

// Focus says whether keys drive the sidebar or the active page.
type Focus int

const (
	FocusPage Focus = iota
	FocusMenu
)

// Model is the root bubbletea model for the client.
type Model struct {
	styles ui.Styles
	logger *zap.Logger

	// Session-level holders, injected at composition time.
	sess     *session.Session
	register *dao.Register
	cfg      *config.Manager

	// Navigation state.
	page    Page
	focus   Focus
	menuIdx int

	// Page models.
	landing   ui.LandingPageModel
	dashboard ui.DashboardPageModel
	library   ui.LibraryPageModel
	submit    ui.SubmitPageModel
	dao       ui.DAOPageModel
	chat      ui.ChatPageModel
	bridge    ui.BridgePageModel
	analytics ui.PlaceholderPageModel
	community ui.PlaceholderPageModel
	settings  ui.PlaceholderPageModel

	width  int
	height int
	ready  bool
}

// Options configures the root model.
type Options struct {
	Config *config.Manager
	Logger *zap.Logger
	// Delay overrides the async scheduler on every page; tests pass
	// ui.Immediately.
	Delay ui.DelayFunc
}

// New builds the root model over the static fixtures.
func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Config == nil {
		opts.Config = config.NewManager("")
	}

	styles := ui.NewStyles(ui.ThemeForMode(opts.Config.Get().Theme))
	papers := research.Papers()
	proposals := research.Proposals()
	register := dao.NewRegister()

	m := Model{
		styles:    styles,
		logger:    opts.Logger,
		sess:      session.New(),
		register:  register,
		cfg:       opts.Config,
		page:      PageDashboard,
		landing:   ui.NewLandingPageModel(styles),
		dashboard: ui.NewDashboardPageModel(papers, proposals, styles),
		library:   ui.NewLibraryPageModel(papers, styles),
		submit:    ui.NewSubmitPageModel(styles),
		dao:       ui.NewDAOPageModel(proposals, register, styles),
		chat:      ui.NewChatPageModel(styles),
		bridge:    ui.NewBridgePageModel(styles),
		analytics: ui.NewPlaceholderPageModel("Analytics Dashboard", "Advanced research analytics and insights", styles),
		community: ui.NewPlaceholderPageModel("Research Community", "Connect with researchers worldwide", styles),
		settings:  ui.NewPlaceholderPageModel("Settings", "Customize your research experience", styles),
	}

	if opts.Delay != nil {
		m.submit.SetDelay(opts.Delay)
		m.dao.SetDelay(opts.Delay)
		m.chat.SetDelay(opts.Delay)
		m.bridge.SetDelay(opts.Delay)
	}
	return m
}

// Page returns the current page identifier.
func (m Model) Page() Page { return m.page }

// Session returns the injected auth holder.
func (m Model) Session() *session.Session { return m.sess }

// Navigate replaces the current page. Unknown identifiers fall back to the
// dashboard, mirroring the shell's default branch.
func (m *Model) Navigate(p Page) {
	for _, it := range navItems {
		if it.page == p {
			m.page = p
			return
		}
	}
	m.page = PageDashboard
}
