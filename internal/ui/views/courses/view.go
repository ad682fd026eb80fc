package courses

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	coursesdto "trak/internal/modules/courses/dto"
	"trak/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type CoursesPort interface {
	List(ctx context.Context) ([]coursesdto.CourseOutput, error)
	Add(ctx context.Context, raw string) (coursesdto.AddOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type CoursesLoadedMsg struct {
	Courses []coursesdto.CourseOutput
	Err     error
}

type CoursesAddedMsg struct {
	Added coursesdto.AddOutput
	Err   error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port CoursesPort

	courses []coursesdto.CourseOutput
	input   textarea.Model
	editing bool
	loading bool
	errText string
	notice  string
	spinner spinner.Model
	width   int
	height  int
}

func New(port CoursesPort) Model {
	ta := textarea.New()
	ta.Placeholder = "Math, Physics\nHistory"
	ta.SetHeight(4)
	ta.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		input:   ta,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// Reload refetches the enrollment list.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	return m.loadCmd()
}

// Editing reports whether the add box has focus, in which case global key
// bindings must yield to allow free typing.
func (m Model) Editing() bool { return m.editing }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(min(m.width-8, 60))

	case CoursesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
		} else {
			m.errText = ""
			m.courses = msg.Courses
		}

	case CoursesAddedMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.errText = ""
		m.notice = "added " + strconv.Itoa(len(msg.Added.Created)) + " course(s)"
		m.input.Reset()
		cmds = append(cmds, m.Reload())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.editing {
			switch msg.String() {
			case "esc":
				m.editing = false
				m.input.Blur()
				return m, nil
			case "ctrl+s":
				raw := m.input.Value()
				m.editing = false
				m.input.Blur()
				m.notice = ""
				return m, m.addCmd(raw)
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "a":
			m.editing = true
			m.notice = ""
			cmds = append(cmds, m.input.Focus())
		case "r":
			cmds = append(cmds, m.Reload())
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Courses") + "\n\n")

	switch {
	case m.loading:
		sb.WriteString(m.spinner.View() + " Loading courses…\n")
	case len(m.courses) == 0:
		sb.WriteString(theme.Muted.Render("No courses enrolled yet.") + "\n")
	default:
		for _, c := range m.courses {
			sb.WriteString(theme.Good.Render("● ") + c.Name + "\n")
		}
	}

	if m.editing {
		sb.WriteString("\n" + theme.Muted.Render("one per line, or comma separated") + "\n")
		sb.WriteString(m.input.View() + "\n")
		sb.WriteString(theme.Muted.Render("ctrl+s: save  esc: cancel"))
	} else {
		sb.WriteString("\n" + theme.Muted.Render("a: add courses  r: refresh"))
	}

	if m.errText != "" {
		sb.WriteString("\n" + theme.Error.Render(m.errText))
	}
	if m.notice != "" {
		sb.WriteString("\n" + theme.Good.Render(m.notice))
	}

	return theme.Pane.Width(m.width - 2).Height(m.height - 2).Render(sb.String())
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		courses, err := m.port.List(context.Background())
		return CoursesLoadedMsg{Courses: courses, Err: err}
	}
}

func (m Model) addCmd(raw string) tea.Cmd {
	return func() tea.Msg {
		added, err := m.port.Add(context.Background(), raw)
		return CoursesAddedMsg{Added: added, Err: err}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
