package app

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "trak/internal/modules/auth/dto"
	coursesdto "trak/internal/modules/courses/dto"
	dashdto "trak/internal/modules/dashboard/dto"
	"trak/internal/modules/dashboard/domain"
	logdto "trak/internal/modules/studylog/dto"
	apperrors "trak/internal/platform/errors"
	"trak/internal/ui/components"
	"trak/internal/ui/theme"
	analyticsview "trak/internal/ui/views/analytics"
	coursesview "trak/internal/ui/views/courses"
	dashboardview "trak/internal/ui/views/dashboard"
	loginview "trak/internal/ui/views/login"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type authPort interface {
	Admit(ctx context.Context) error
	Resolve(ctx context.Context) (authdto.SessionOutput, error)
	Login(ctx context.Context, input authdto.LoginInput) (authdto.SessionOutput, error)
	Signup(ctx context.Context, input authdto.SignupInput) (authdto.SessionOutput, error)
	Logout(ctx context.Context) error
	GoogleAuthURL() string
}

type dashboardPort interface {
	Summary(ctx context.Context) (dashdto.SummaryOutput, error)
	Checklist(ctx context.Context) ([]dashdto.ChecklistItemOutput, error)
	Activity(ctx context.Context) ([]dashdto.ActivityOutput, error)
	Series(ctx context.Context, rng string) ([]dashdto.SeriesPointOutput, error)
}

type coursesPort interface {
	List(ctx context.Context) ([]coursesdto.CourseOutput, error)
	Add(ctx context.Context, input coursesdto.AddInput) (coursesdto.AddOutput, error)
}

type studyLogPort interface {
	Toggle(name string) logdto.ToggleOutput
	IsSelected(name string) bool
	Selected() []string
	ClearSelection()
	Epoch() int
	Commit(ctx context.Context) (logdto.CommitOutput, error)
}

// ─── phases and tabs ─────────────────────────────────────────────────────────

type phase int

const (
	phaseGate phase = iota
	phaseLogin
	phaseMain
)

type tabID int

const (
	tabDashboard tabID = iota
	tabAnalytics
	tabCourses
	tabCount
)

var tabLabels = [tabCount]string{"Dashboard", "Analytics", "Courses"}

// ─── async messages ───────────────────────────────────────────────────────────

type gateMsg struct{ err error }

type resolvedMsg struct {
	session authdto.SessionOutput
	err     error
}

type loggedOutMsg struct{ err error }

type commitDoneMsg struct {
	out logdto.CommitOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Toggle  key.Binding
	Commit  key.Binding
	Refresh key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle course")),
		Commit:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "commit log")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Toggle, k.Commit},
		{k.Refresh},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the credential gate, tab
// routing, the global help overlay, and the command palette. All business
// logic is delegated to port interfaces; all rendering is delegated to
// sub-views.
type Model struct {
	auth     authPort
	courses  coursesPort
	studyLog studyLogPort

	dashView  dashboardview.Model
	chartView analyticsview.Model
	crsView   coursesview.Model
	login     loginview.Model

	phase     phase
	session   authdto.SessionOutput
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	spinner   spinner.Model
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	auth authPort,
	dash dashboardPort,
	courses coursesPort,
	studyLog studyLogPort,
) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		auth:      auth,
		courses:   courses,
		studyLog:  studyLog,
		dashView:  dashboardview.New(dashPortBridge{p: dash}, togglerBridge{p: studyLog}),
		chartView: analyticsview.New(seriesPortBridge{p: dash}),
		crsView:   coursesview.New(coursesPortBridge{p: courses}),
		login:     loginview.New(loginPortBridge{p: auth}),
		phase:     phaseGate,
		activeTab: tabDashboard,
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		spinner:   sp,
		status:    "checking credentials",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.gateCmd(), m.spinner.Tick)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case gateMsg:
		if msg.err != nil {
			return m.toLogin("")
		}
		m.status = "resolving profile"
		return m, m.resolveCmd()

	case resolvedMsg:
		if msg.err != nil {
			return m.toLogin("session expired, sign in again")
		}
		return m.toMain(msg.session)

	case loginview.LoggedInMsg:
		if msg.Err == nil {
			return m.toMain(msg.Session)
		}
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		return m, cmd

	case loggedOutMsg:
		return m.toLogin("signed out")

	case commitDoneMsg:
		if msg.err != nil {
			if m.isUnauthorized(msg.err) {
				return m, m.logoutCmd()
			}
			m.status = "log failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "logged " + strconv.Itoa(len(msg.out.CourseNames)) + " course(s)"
		// A committed log changes the summary, checklist, and activity; the
		// analytics window refreshes on its own cadence.
		cmd := m.dashView.Reload()
		return m, cmd

	case dashboardview.SummaryLoadedMsg:
		if m.isUnauthorized(msg.Err) {
			return m, m.logoutCmd()
		}
	case dashboardview.ChecklistLoadedMsg:
		if m.isUnauthorized(msg.Err) {
			return m, m.logoutCmd()
		}
	case dashboardview.ActivityLoadedMsg:
		if m.isUnauthorized(msg.Err) {
			return m, m.logoutCmd()
		}
	case analyticsview.SeriesLoadedMsg:
		if m.isUnauthorized(msg.Err) {
			return m, m.logoutCmd()
		}
	case coursesview.CoursesLoadedMsg:
		if m.isUnauthorized(msg.Err) {
			return m, m.logoutCmd()
		}
	case coursesview.CoursesAddedMsg:
		if m.isUnauthorized(msg.Err) {
			return m, m.logoutCmd()
		}
		if msg.Err == nil {
			// New enrollments appear on the checklist and in the analytics join.
			cmds = append(cmds, m.dashView.Reload(), m.chartView.Reload())
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case spinner.TickMsg:
		if m.phase == phaseGate {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		switch m.phase {
		case phaseGate:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil

		case phaseLogin:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.login, cmd = m.login.Update(msg)
			return m, cmd

		case phaseMain:
			if m.showHelp {
				if msg.String() == "?" || msg.String() == "esc" {
					m.showHelp = false
				}
				return m, nil
			}

			// Yield to the courses view while its add box has focus.
			if m.activeTab == tabCourses && m.crsView.Editing() {
				break
			}

			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "tab":
				m.activeTab = (m.activeTab + 1) % tabCount
			case "shift+tab":
				m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			case "?":
				m.showHelp = !m.showHelp
			case ":":
				cmds = append(cmds, m.palette.Open())
				return m, tea.Batch(cmds...)
			case "c":
				if m.activeTab == tabDashboard {
					return m, m.commitCmd()
				}
			}
		}
	}

	if m.phase == phaseLogin {
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Propagate the message to the active tab's sub-view.
	if m.phase == phaseMain {
		var tabCmd tea.Cmd
		switch m.activeTab {
		case tabDashboard:
			m.dashView, tabCmd = m.dashView.Update(msg)
		case tabAnalytics:
			m.chartView, tabCmd = m.chartView.Update(msg)
		case tabCourses:
			m.crsView, tabCmd = m.crsView.Update(msg)
		}
		cmds = append(cmds, tabCmd)
	}

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	switch m.phase {
	case phaseGate:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" "+m.status)
	case phaseLogin:
		return m.login.View()
	}

	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabDashboard:
		return m.dashView.View()
	case tabAnalytics:
		return m.chartView.View()
	case tabCourses:
		return m.crsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "trak  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if n := len(m.studyLog.Selected()); n > 0 {
		left = theme.Hot.Render("✓ "+strconv.Itoa(n)+" selected") + "  " + left
	}
	right := theme.Muted.Render(m.session.Username + "  ?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "log:commit":
		return m, m.commitCmd()

	case "log:clear":
		m.studyLog.ClearSelection()
		m.status = "selection cleared"
		return m, nil

	case "log:selected":
		selected := m.studyLog.Selected()
		if len(selected) == 0 {
			m.status = "nothing selected"
		} else {
			m.status = "selected: " + strings.Join(selected, ", ")
		}
		return m, nil

	case "range:7d", "range:30d", "range:90d":
		rng, err := domain.ParseRange(strings.TrimPrefix(parts[0], "range:"))
		if err != nil {
			m.status = "unknown range"
			return m, nil
		}
		m.activeTab = tabAnalytics
		m.status = "range set to " + string(rng)
		cmd := m.chartView.SetRange(rng)
		return m, cmd

	case "courses:add":
		raw := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		if raw == "" {
			m.status = "usage: courses:add <name[,name…]>"
			return m, nil
		}
		m.activeTab = tabCourses
		return m, m.addCoursesCmd(raw)

	case "refresh":
		m.status = "refreshing"
		cmd := tea.Batch(m.dashView.Reload(), m.chartView.Reload(), m.crsView.Reload())
		return m, cmd

	case "whoami":
		m.status = m.session.Username + " <" + m.session.Email + ">"
		return m, nil

	case "logout":
		return m, m.logoutCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) toLogin(status string) (tea.Model, tea.Cmd) {
	m.phase = phaseLogin
	m.session = authdto.SessionOutput{}
	if status != "" {
		m.status = status
	} else {
		m.status = "sign in"
	}
	m.login = loginview.New(loginPortBridge{p: m.auth})
	m.login, _ = m.login.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return m, m.login.Init()
}

func (m Model) toMain(session authdto.SessionOutput) (tea.Model, tea.Cmd) {
	m.phase = phaseMain
	m.session = session
	m.activeTab = tabDashboard
	m.status = "welcome back, " + session.Username
	m.propagateSize()
	return m, tea.Batch(m.dashView.Init(), m.chartView.Init(), m.crsView.Init())
}

func (m Model) isUnauthorized(err error) bool {
	return err != nil && errors.Is(err, apperrors.ErrUnauthorized)
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.dashView, _ = m.dashView.Update(sz)
	m.chartView, _ = m.chartView.Update(sz)
	m.crsView, _ = m.crsView.Update(sz)
	m.login, _ = m.login.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) gateCmd() tea.Cmd {
	return func() tea.Msg {
		return gateMsg{err: m.auth.Admit(context.Background())}
	}
}

func (m Model) resolveCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.auth.Resolve(context.Background())
		return resolvedMsg{session: session, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.auth.Logout(context.Background())}
	}
}

func (m Model) commitCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.studyLog.Commit(context.Background())
		return commitDoneMsg{out: out, err: err}
	}
}

func (m Model) addCoursesCmd(raw string) tea.Cmd {
	return func() tea.Msg {
		added, err := m.courses.Add(context.Background(), coursesdto.AddInput{Raw: raw})
		return coursesview.CoursesAddedMsg{Added: added, Err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type loginPortBridge struct{ p authPort }

func (b loginPortBridge) Login(ctx context.Context, input authdto.LoginInput) (authdto.SessionOutput, error) {
	return b.p.Login(ctx, input)
}
func (b loginPortBridge) Signup(ctx context.Context, input authdto.SignupInput) (authdto.SessionOutput, error) {
	return b.p.Signup(ctx, input)
}
func (b loginPortBridge) GoogleAuthURL() string { return b.p.GoogleAuthURL() }

type dashPortBridge struct{ p dashboardPort }

func (b dashPortBridge) Summary(ctx context.Context) (dashdto.SummaryOutput, error) {
	return b.p.Summary(ctx)
}
func (b dashPortBridge) Checklist(ctx context.Context) ([]dashdto.ChecklistItemOutput, error) {
	return b.p.Checklist(ctx)
}
func (b dashPortBridge) Activity(ctx context.Context) ([]dashdto.ActivityOutput, error) {
	return b.p.Activity(ctx)
}

type seriesPortBridge struct{ p dashboardPort }

func (b seriesPortBridge) Series(ctx context.Context, rng string) ([]dashdto.SeriesPointOutput, error) {
	return b.p.Series(ctx, rng)
}

type togglerBridge struct{ p studyLogPort }

func (b togglerBridge) Toggle(name string) (bool, int) {
	out := b.p.Toggle(name)
	return out.Selected, out.Count
}
func (b togglerBridge) IsSelected(name string) bool { return b.p.IsSelected(name) }

type coursesPortBridge struct{ p coursesPort }

func (b coursesPortBridge) List(ctx context.Context) ([]coursesdto.CourseOutput, error) {
	return b.p.List(ctx)
}
func (b coursesPortBridge) Add(ctx context.Context, raw string) (coursesdto.AddOutput, error) {
	return b.p.Add(ctx, coursesdto.AddInput{Raw: raw})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
