package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/FarahAbbdi/mission/internal/app"
)

// AuthModel is the login/signup wizard. Login asks email then password;
// signup adds name and password confirmation.
type AuthModel struct {
	app      *app.App
	isSignup bool
	width    int
	height   int

	inputs []textinput.Model
	focus  int

	validationErr string
	err           error
	completed     bool
	cancelled     bool
	submitting    bool

	SignedInID string
}

type authDoneMsg struct {
	userID string
	err    error
}

var (
	loginLabels  = []string{"Your Email", "Your Password"}
	signupLabels = []string{"Your Name", "Your Email", "Your Password", "Repeat Password"}
)

// NewAuthModel creates the wizard in login or signup mode.
func NewAuthModel(a *app.App, signup bool) AuthModel {
	labels := loginLabels
	if signup {
		labels = signupLabels
	}

	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 48
		inputs[i].CharLimit = 100
		inputs[i].Placeholder = "Enter " + strings.ToLower(labels[i])
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
		if strings.Contains(strings.ToLower(labels[i]), "password") {
			inputs[i].EchoMode = textinput.EchoPassword
		}
	}
	inputs[0].Focus()

	return AuthModel{app: a, isSignup: signup, inputs: inputs}
}

// Init initializes the model
func (m AuthModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AuthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case authDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.completed = true
		m.SignedInID = msg.userID
		return m, tea.Quit

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "tab", "down":
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
			return m, nil
		case "enter":
			if m.focus < len(m.inputs)-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *AuthModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[i].Focus()
}

// submit validates locally, then runs the auth call off the update loop.
func (m AuthModel) submit() (tea.Model, tea.Cmd) {
	m.validationErr = ""
	m.err = nil

	if m.isSignup {
		name := strings.TrimSpace(m.inputs[0].Value())
		email := strings.TrimSpace(m.inputs[1].Value())
		password := m.inputs[2].Value()
		confirm := m.inputs[3].Value()

		switch {
		case name == "":
			m.validationErr = "Name is required"
		case !strings.Contains(email, "@"):
			m.validationErr = "Please enter a valid email"
		case password == "":
			m.validationErr = "Password is required"
		case password != confirm:
			m.validationErr = "Passwords do not match"
		}
		if m.validationErr != "" {
			return m, nil
		}

		m.submitting = true
		a := m.app
		return m, func() tea.Msg {
			id, err := a.Auth.SignUp(email, password, name)
			return authDoneMsg{userID: id, err: err}
		}
	}

	email := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()
	if !strings.Contains(email, "@") {
		m.validationErr = "Please enter a valid email"
		return m, nil
	}
	if password == "" {
		m.validationErr = "Password is required"
		return m, nil
	}

	m.submitting = true
	a := m.app
	return m, func() tea.Msg {
		id, err := a.Auth.SignIn(email, password)
		return authDoneMsg{userID: id, err: err}
	}
}

// View renders the wizard
func (m AuthModel) View() string {
	title := "LOGIN"
	labels := loginLabels
	if m.isSignup {
		title = "SIGN UP"
		labels = signupLabels
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	activeLabel := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain))

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for i, label := range labels {
		style := labelStyle
		if i == m.focus {
			style = activeLabel
		}
		b.WriteString(style.Render(label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	if m.validationErr != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Render(m.validationErr))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Render("ERROR: " + m.err.Error()))
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString(labelStyle.Render("Working…"))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Render("enter: next/submit • tab: move • esc: cancel"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
