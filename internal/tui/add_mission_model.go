package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/FarahAbbdi/mission/internal/app"
	"github.com/FarahAbbdi/mission/internal/parser"
	"github.com/FarahAbbdi/mission/internal/status"
	"github.com/FarahAbbdi/mission/internal/store"
)

// missionStep is the current step in the creation wizard.
type missionStep int

const (
	stepName missionStep = iota
	stepStartDate
	stepEndDate
	stepDescription
	stepSave
)

// AddMissionModel is the interactive mission creation wizard.
type AddMissionModel struct {
	app    *app.App
	width  int
	height int

	currentStep missionStep
	inputs      []textinput.Model

	name        string
	startDate   string // normalized YYYY-MM-DD
	endDate     string
	description string

	validationErr string
	err           error
	completed     bool
	cancelled     bool

	createdName string
}

type missionSavedMsg struct {
	name string
	err  error
}

// NewAddMissionModel creates the wizard, optionally prefilled from flags.
func NewAddMissionModel(a *app.App, prefilled map[string]string) AddMissionModel {
	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[0].Placeholder = "Enter mission name... (required)"
	inputs[0].Focus()
	inputs[0].CharLimit = 200

	inputs[1].Placeholder = "Start: yyyy-mm-dd, dd/mm/yyyy, or today (required)"
	inputs[1].CharLimit = 20

	inputs[2].Placeholder = "End: yyyy-mm-dd, dd/mm/yyyy, 4 weeks (required)"
	inputs[2].CharLimit = 20

	inputs[3].Placeholder = "Description (Enter to skip)"
	inputs[3].CharLimit = 500

	m := AddMissionModel{app: a, inputs: inputs}

	if name, ok := prefilled["name"]; ok {
		m.inputs[0].SetValue(name)
	}
	if start, ok := prefilled["start"]; ok {
		m.inputs[1].SetValue(start)
	}
	if end, ok := prefilled["end"]; ok {
		m.inputs[2].SetValue(end)
	}
	if desc, ok := prefilled["description"]; ok {
		m.inputs[3].SetValue(desc)
	}

	return m
}

// Init initializes the model
func (m AddMissionModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AddMissionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case missionSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.currentStep = stepDescription
			return m, nil
		}
		m.completed = true
		m.createdName = msg.name
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			return m.advance()
		}
	}

	if int(m.currentStep) < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
		return m, cmd
	}
	return m, nil
}

// advance validates the current step and moves on; the last step saves.
func (m AddMissionModel) advance() (tea.Model, tea.Cmd) {
	m.validationErr = ""

	switch m.currentStep {
	case stepName:
		name := strings.TrimSpace(m.inputs[0].Value())
		if name == "" {
			m.validationErr = "Mission name is required"
			return m, nil
		}
		m.name = name

	case stepStartDate:
		date, err := parser.ParseDate(m.inputs[1].Value(), m.app.Today)
		if err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		m.startDate = date

	case stepEndDate:
		date, err := parser.ParseDate(m.inputs[2].Value(), m.app.Today)
		if err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		if status.Before(date, m.startDate) {
			m.validationErr = "End date cannot be before start date"
			return m, nil
		}
		m.endDate = date

	case stepDescription:
		m.description = strings.TrimSpace(m.inputs[3].Value())
		m.currentStep = stepSave
		return m, m.saveCmd()
	}

	m.currentStep++
	m.inputs[m.currentStep].Focus()
	return m, textinput.Blink
}

func (m AddMissionModel) saveCmd() tea.Cmd {
	a := m.app
	req := store.CreateMissionRequest{
		Name:        m.name,
		Description: m.description,
		StartDate:   m.startDate,
		EndDate:     m.endDate,
	}
	return func() tea.Msg {
		ownerID, err := a.Auth.CurrentUser()
		if err != nil {
			return missionSavedMsg{err: err}
		}
		req.OwnerID = ownerID
		mission, err := a.Store.CreateMission(req)
		if err != nil {
			return missionSavedMsg{err: err}
		}
		return missionSavedMsg{name: mission.Name}
	}
}

// View renders the wizard
func (m AddMissionModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	activeLabel := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain))

	labels := []string{"Mission Name", "Start Date", "End Date", "Description"}

	var b strings.Builder
	b.WriteString(titleStyle.Render("NEW MISSION"))
	b.WriteString("\n\n")

	for i, label := range labels {
		style := labelStyle
		if missionStep(i) == m.currentStep {
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
	if m.currentStep == stepSave {
		b.WriteString(labelStyle.Render("Saving…"))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Render("enter: next • esc: cancel"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
