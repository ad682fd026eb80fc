package dashboard

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	dashdto "trak/internal/modules/dashboard/dto"
	"trak/internal/platform/datefmt"
	"trak/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type DashboardPort interface {
	Summary(ctx context.Context) (dashdto.SummaryOutput, error)
	Checklist(ctx context.Context) ([]dashdto.ChecklistItemOutput, error)
	Activity(ctx context.Context) ([]dashdto.ActivityOutput, error)
}

// Toggler is the pending-selection surface. Toggling is local state; the
// commit itself is driven by the app model.
type Toggler interface {
	Toggle(name string) (selected bool, count int)
	IsSelected(name string) bool
}

// ─── messages ────────────────────────────────────────────────────────────────

type SummaryLoadedMsg struct {
	Data dashdto.SummaryOutput
	Err  error
}

type ChecklistLoadedMsg struct {
	Items []dashdto.ChecklistItemOutput
	Err   error
}

type ActivityLoadedMsg struct {
	Items []dashdto.ActivityOutput
	Err   error
}

// ─── slice state ─────────────────────────────────────────────────────────────

type sliceStatus int

const (
	sliceLoading sliceStatus = iota
	sliceLoaded
	sliceFailed
)

// activityLimit caps the recent-activity pane.
const activityLimit = 10

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     DashboardPort
	selector Toggler

	summaryStatus sliceStatus
	summary       dashdto.SummaryOutput
	summaryErr    error

	checklistStatus sliceStatus
	checklist       []dashdto.ChecklistItemOutput
	checklistErr    error

	activityStatus sliceStatus
	activity       []dashdto.ActivityOutput
	activityErr    error

	cursor  int
	spinner spinner.Model
	width   int
	height  int
}

func New(port DashboardPort, selector Toggler) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:     port,
		selector: selector,
		spinner:  sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

// Reload refetches all three slices. Each fetch settles independently.
func (m *Model) Reload() tea.Cmd {
	m.summaryStatus = sliceLoading
	m.checklistStatus = sliceLoading
	m.activityStatus = sliceLoading
	return tea.Batch(m.loadSummaryCmd(), m.loadChecklistCmd(), m.loadActivityCmd())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case SummaryLoadedMsg:
		if msg.Err != nil {
			m.summaryStatus = sliceFailed
			m.summaryErr = msg.Err
		} else {
			m.summaryStatus = sliceLoaded
			m.summary = msg.Data
			m.summaryErr = nil
		}

	case ChecklistLoadedMsg:
		if msg.Err != nil {
			m.checklistStatus = sliceFailed
			m.checklistErr = msg.Err
		} else {
			m.checklistStatus = sliceLoaded
			m.checklist = msg.Items
			m.checklistErr = nil
			if m.cursor >= len(m.checklist) {
				m.cursor = 0
			}
		}

	case ActivityLoadedMsg:
		if msg.Err != nil {
			m.activityStatus = sliceFailed
			m.activityErr = msg.Err
		} else {
			m.activityStatus = sliceLoaded
			m.activity = msg.Items
			m.activityErr = nil
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.checklist)-1 {
				m.cursor++
			}
		case " ":
			if m.checklistStatus == sliceLoaded && m.cursor < len(m.checklist) {
				m.selector.Toggle(m.checklist[m.cursor].CourseName)
			}
		case "r":
			cmds = append(cmds, m.Reload())
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	cards := m.renderCards()
	cardsH := lipgloss.Height(cards)

	paneH := m.height - cardsH - 1
	if paneH < 3 {
		paneH = 3
	}
	leftW := m.width * 55 / 100
	rightW := m.width - leftW

	checklist := theme.Pane.Width(leftW - 2).Height(paneH - 2).
		Render(m.renderChecklist(paneH - 4))
	activity := theme.Pane.Width(rightW - 2).Height(paneH - 2).
		Render(m.renderActivity(paneH - 4))

	hint := theme.Muted.Render("space: toggle  c: commit  r: refresh  j/k: move")
	return lipgloss.JoinVertical(lipgloss.Left,
		cards,
		lipgloss.JoinHorizontal(lipgloss.Top, checklist, activity),
		hint,
	)
}

// ─── rendering ───────────────────────────────────────────────────────────────

func (m Model) renderCards() string {
	cardW := m.width/3 - 2
	if cardW < 14 {
		cardW = 14
	}
	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(cardW).
		Padding(0, 1)

	switch m.summaryStatus {
	case sliceLoading:
		return card.Width(m.width - 2).Render(m.spinner.View() + " Loading summary…")
	case sliceFailed:
		return card.Width(m.width - 2).Render(
			theme.Error.Render("summary unavailable: "+m.summaryErr.Error()) +
				theme.Muted.Render("  (r to retry)"))
	}

	mostStudied := theme.Muted.Render("None yet")
	if m.summary.MostStudied != nil {
		mostStudied = m.summary.MostStudied.Name +
			theme.Muted.Render(" ("+strconv.Itoa(m.summary.MostStudied.Days)+"d)")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		card.Render(theme.Muted.Render("Total study days")+"\n"+
			theme.Hot.Render(strconv.Itoa(m.summary.TotalStudyDays))),
		card.Render(theme.Muted.Render("Current streak")+"\n"+
			theme.Hot.Render(strconv.Itoa(m.summary.CurrentStreak))),
		card.Render(theme.Muted.Render("Most studied")+"\n"+mostStudied),
	)
}

func (m Model) renderChecklist(maxRows int) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Today's Checklist") + "\n")

	switch m.checklistStatus {
	case sliceLoading:
		sb.WriteString(m.spinner.View() + " Loading…")
		return sb.String()
	case sliceFailed:
		sb.WriteString(theme.Error.Render("checklist unavailable: " + m.checklistErr.Error()))
		sb.WriteString("\n" + theme.Muted.Render("r to retry"))
		return sb.String()
	}

	if len(m.checklist) == 0 {
		sb.WriteString(theme.Muted.Render("No courses yet. Add some on the Courses tab."))
		return sb.String()
	}

	now := time.Now().UTC()
	rows := len(m.checklist)
	if maxRows > 1 && rows > maxRows-1 {
		rows = maxRows - 1
	}
	for i := 0; i < rows; i++ {
		item := m.checklist[i]
		mark := "[ ]"
		if m.selector.IsSelected(item.CourseName) {
			mark = theme.Good.Render("[x]")
		}
		line := mark + " " + item.CourseName + "  " +
			theme.Muted.Render(datefmt.Checklist(item.LastStudiedAt, now))
		if i == m.cursor {
			line = theme.Hot.Render("› ") + line
		} else {
			line = "  " + line
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

func (m Model) renderActivity(maxRows int) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Recent Activity") + "\n")

	switch m.activityStatus {
	case sliceLoading:
		sb.WriteString(m.spinner.View() + " Loading…")
		return sb.String()
	case sliceFailed:
		sb.WriteString(theme.Error.Render("activity unavailable: " + m.activityErr.Error()))
		sb.WriteString("\n" + theme.Muted.Render("r to retry"))
		return sb.String()
	}

	if len(m.activity) == 0 {
		sb.WriteString(theme.Muted.Render("Nothing logged yet."))
		return sb.String()
	}

	now := time.Now().UTC()
	rows := len(m.activity)
	if rows > activityLimit {
		rows = activityLimit
	}
	if maxRows > 1 && rows > maxRows-1 {
		rows = maxRows - 1
	}
	for i := 0; i < rows; i++ {
		item := m.activity[i]
		sb.WriteString(theme.Good.Render("● ") + item.CourseName + "  " +
			theme.Muted.Render(datefmt.Activity(item.Date, now)) + "\n")
	}
	return sb.String()
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadSummaryCmd() tea.Cmd {
	return func() tea.Msg {
		data, err := m.port.Summary(context.Background())
		return SummaryLoadedMsg{Data: data, Err: err}
	}
}

func (m Model) loadChecklistCmd() tea.Cmd {
	return func() tea.Msg {
		items, err := m.port.Checklist(context.Background())
		return ChecklistLoadedMsg{Items: items, Err: err}
	}
}

func (m Model) loadActivityCmd() tea.Cmd {
	return func() tea.Msg {
		items, err := m.port.Activity(context.Background())
		return ActivityLoadedMsg{Items: items, Err: err}
	}
}
