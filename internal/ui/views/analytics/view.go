package analytics

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trak/internal/modules/dashboard/domain"
	dashdto "trak/internal/modules/dashboard/dto"
	"trak/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type SeriesPort interface {
	Series(ctx context.Context, rng string) ([]dashdto.SeriesPointOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// SeriesLoadedMsg carries the result for one range fetch. Responses apply in
// arrival order; a slower fetch for a previously selected range overwrites a
// faster one (last write wins).
type SeriesLoadedMsg struct {
	Range  string
	Points []dashdto.SeriesPointOutput
	Err    error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port SeriesPort

	rng     domain.Range
	points  []dashdto.SeriesPointOutput
	err     error
	loading bool
	spinner spinner.Model
	width   int
	height  int
}

func New(port SeriesPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		rng:     domain.DefaultRange,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(m.rng), m.spinner.Tick)
}

// Reload refetches the series for the current range.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	return m.loadCmd(m.rng)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case SeriesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.err = nil
			m.points = msg.Points
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		switch msg.String() {
		case "1":
			cmds = append(cmds, m.setRange(domain.Range7d))
		case "2":
			cmds = append(cmds, m.setRange(domain.Range30d))
		case "3":
			cmds = append(cmds, m.setRange(domain.Range90d))
		case "r":
			cmds = append(cmds, m.Reload())
		}
	}

	return m, tea.Batch(cmds...)
}

// SetRange switches the window and refetches. Exposed for palette commands.
func (m *Model) SetRange(rng domain.Range) tea.Cmd {
	return m.setRange(rng)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Study Days by Course") + "  " + m.renderRangeTabs() + "\n\n")

	switch {
	case m.loading:
		sb.WriteString(m.spinner.View() + " Loading analytics…")
	case m.err != nil:
		sb.WriteString(theme.Error.Render("analytics unavailable: " + m.err.Error()))
		sb.WriteString("\n" + theme.Muted.Render("r to retry"))
	case len(m.points) == 0:
		sb.WriteString(theme.Muted.Render("No courses enrolled."))
	default:
		sb.WriteString(m.renderBars())
	}

	sb.WriteString("\n\n" + theme.Muted.Render("1:7d  2:30d  3:90d  r: refresh"))
	return theme.Pane.Width(m.width - 2).Height(m.height - 2).Render(sb.String())
}

// ─── rendering ───────────────────────────────────────────────────────────────

func (m Model) renderRangeTabs() string {
	parts := make([]string, len(domain.Ranges))
	for i, r := range domain.Ranges {
		label := " " + string(r) + " "
		if r == m.rng {
			parts[i] = theme.Hot.Render(label)
		} else {
			parts[i] = theme.Muted.Render(label)
		}
	}
	return strings.Join(parts, theme.Muted.Render("│"))
}

func (m Model) renderBars() string {
	maxDays := 0
	labelW := 0
	for _, p := range m.points {
		if p.StudyDays > maxDays {
			maxDays = p.StudyDays
		}
		if len(p.CourseName) > labelW {
			labelW = len(p.CourseName)
		}
	}
	if labelW > 24 {
		labelW = 24
	}

	barSpace := m.width - labelW - 12
	if barSpace < 8 {
		barSpace = 8
	}

	var sb strings.Builder
	for _, p := range m.points {
		name := p.CourseName
		if len(name) > labelW {
			name = name[:labelW-1] + "…"
		}
		barLen := 0
		if maxDays > 0 {
			barLen = p.StudyDays * barSpace / maxDays
		}
		if p.StudyDays > 0 && barLen == 0 {
			barLen = 1
		}
		bar := theme.Good.Render(strings.Repeat("█", barLen))
		pad := strings.Repeat(" ", labelW-len(name))
		sb.WriteString(name + pad + "  " + bar + " " +
			theme.Muted.Render(strconv.Itoa(p.StudyDays)+"d") + "\n")
	}
	return sb.String()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) setRange(rng domain.Range) tea.Cmd {
	m.rng = rng
	m.loading = true
	return m.loadCmd(rng)
}

func (m Model) loadCmd(rng domain.Range) tea.Cmd {
	return func() tea.Msg {
		points, err := m.port.Series(context.Background(), string(rng))
		return SeriesLoadedMsg{Range: string(rng), Points: points, Err: err}
	}
}
