package login

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "trak/internal/modules/auth/dto"
	"trak/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AuthPort interface {
	Login(ctx context.Context, input authdto.LoginInput) (authdto.SessionOutput, error)
	Signup(ctx context.Context, input authdto.SignupInput) (authdto.SessionOutput, error)
	GoogleAuthURL() string
}

// ─── messages ────────────────────────────────────────────────────────────────

// LoggedInMsg bubbles up to the app model, which switches to the main view.
type LoggedInMsg struct {
	Session authdto.SessionOutput
	Err     error
}

// ─── form mode ───────────────────────────────────────────────────────────────

type formMode int

const (
	modeLogin formMode = iota
	modeSignup
)

const (
	fieldUsername = iota
	fieldEmail
	fieldPassword
	fieldCount
)

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port AuthPort

	mode       formMode
	inputs     [fieldCount]textinput.Model
	focused    int
	submitting bool
	errText    string
	notice     string
	width      int
	height     int
}

func New(port AuthPort) Model {
	var m Model
	m.port = port

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	m.inputs[fieldUsername] = username
	m.inputs[fieldEmail] = email
	m.inputs[fieldPassword] = password
	m.focused = fieldEmail
	return m
}

func (m Model) Init() tea.Cmd {
	return m.inputs[m.focused].Focus()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoggedInMsg:
		m.submitting = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			return m.focusNext(1)
		case "shift+tab", "up":
			return m.focusNext(-1)
		case "ctrl+t":
			m.toggleMode()
			return m, nil
		case "ctrl+g":
			m.notice = "open in a browser: " + m.port.GoogleAuthURL()
			return m, nil
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	title := "Sign in to Trak"
	action := "enter: sign in"
	toggle := "ctrl+t: create an account"
	if m.mode == modeSignup {
		title = "Create a Trak account"
		action = "enter: sign up"
		toggle = "ctrl+t: back to sign in"
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(title) + "\n\n")
	if m.mode == modeSignup {
		sb.WriteString(m.fieldView(fieldUsername) + "\n")
	}
	sb.WriteString(m.fieldView(fieldEmail) + "\n")
	sb.WriteString(m.fieldView(fieldPassword) + "\n\n")

	if m.submitting {
		sb.WriteString(theme.Muted.Render("signing in…") + "\n")
	}
	if m.errText != "" {
		sb.WriteString(theme.Error.Render(m.errText) + "\n")
	}
	if m.notice != "" {
		sb.WriteString(theme.Muted.Render(m.notice) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render(action+"  "+toggle+"  ctrl+g: google  ctrl+c: quit"))

	card := theme.Pane.Width(min(m.width-4, 60)).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) fieldView(idx int) string {
	label := [fieldCount]string{"user ", "email", "pass "}[idx]
	return theme.Muted.Render(label+" ") + m.inputs[idx].View()
}

func (m *Model) toggleMode() {
	if m.mode == modeLogin {
		m.mode = modeSignup
		m.focused = fieldUsername
	} else {
		m.mode = modeLogin
		m.focused = fieldEmail
	}
	m.errText = ""
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[m.focused].Focus()
}

func (m Model) focusNext(dir int) (Model, tea.Cmd) {
	first := fieldEmail
	if m.mode == modeSignup {
		first = fieldUsername
	}
	span := fieldCount - first
	m.inputs[m.focused].Blur()
	m.focused = first + ((m.focused-first+dir)+span)%span
	return m, m.inputs[m.focused].Focus()
}

func (m Model) submit() (Model, tea.Cmd) {
	m.errText = ""
	m.notice = ""
	m.submitting = true
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	password := m.inputs[fieldPassword].Value()

	if m.mode == modeSignup {
		username := strings.TrimSpace(m.inputs[fieldUsername].Value())
		return m, func() tea.Msg {
			session, err := m.port.Signup(context.Background(), authdto.SignupInput{
				Username: username,
				Email:    email,
				Password: password,
			})
			return LoggedInMsg{Session: session, Err: err}
		}
	}
	return m, func() tea.Msg {
		session, err := m.port.Login(context.Background(), authdto.LoginInput{
			Email:    email,
			Password: password,
		})
		return LoggedInMsg{Session: session, Err: err}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
