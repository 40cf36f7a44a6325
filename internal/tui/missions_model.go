package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/FarahAbbdi/mission/internal/app"
	"github.com/FarahAbbdi/mission/internal/models"
	"github.com/FarahAbbdi/mission/internal/parser"
	"github.com/FarahAbbdi/mission/internal/status"
)

// MissionListModel renders the mission control page: the viewer's own
// missions and the ones they watch, grouped by derived status.
type MissionListModel struct {
	app   *app.App
	width int
	height int

	today    string
	loading  bool
	err      error
	viewerID string

	mine     []models.Mission
	watching []models.Mission
	counts   map[string][2]int

	rows     []missionRow
	selected int

	// Outcome for the command that ran the program.
	ChosenID string
	WantAdd  bool
}

// missionRow is one selectable line in the flattened section layout.
type missionRow struct {
	mission  models.Mission
	watching bool
}

type missionsLoadedMsg struct {
	viewerID string
	mine     []models.Mission
	watching []models.Mission
	counts   map[string][2]int
	err      error
}

// NewMissionListModel creates the list page model.
func NewMissionListModel(a *app.App) MissionListModel {
	return MissionListModel{
		app:     a,
		today:   a.Today(),
		loading: true,
		counts:  map[string][2]int{},
	}
}

// Init kicks off the initial load.
func (m MissionListModel) Init() tea.Cmd {
	return loadMissionsCmd(m.app, m.today)
}

// loadMissionsCmd runs the lazy expiry pass for the owner, then fetches
// both mission lists. The expiry write is best-effort: failure is logged
// and the fetch proceeds, so a stale active mission may still render.
func loadMissionsCmd(a *app.App, today string) tea.Cmd {
	return func() tea.Msg {
		viewerID, err := a.Auth.CurrentUser()
		if err != nil {
			return missionsLoadedMsg{err: err}
		}

		if err := a.Store.ExpireOverdue(viewerID, today); err != nil {
			a.Store.LogExpiryFailure(viewerID, err)
		}

		mine, err := a.Store.ListMissionsByOwner(viewerID)
		if err != nil {
			return missionsLoadedMsg{viewerID: viewerID, err: err}
		}

		watching, err := a.Store.ListMissionsWatching(viewerID)
		if err != nil {
			a.Log.Warn("watching list load failed", zap.Error(err))
			watching = nil
		}

		ids := make([]string, 0, len(mine)+len(watching))
		for _, ms := range mine {
			ids = append(ids, ms.ID)
		}
		for _, ms := range watching {
			ids = append(ids, ms.ID)
		}
		counts, err := a.Store.MilestoneCounts(ids)
		if err != nil {
			a.Log.Warn("milestone counts load failed", zap.Error(err))
			counts = map[string][2]int{}
		}

		return missionsLoadedMsg{
			viewerID: viewerID,
			mine:     mine,
			watching: watching,
			counts:   counts,
		}
	}
}

// Update handles messages
func (m MissionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case missionsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.viewerID = msg.viewerID
		m.mine = msg.mine
		m.watching = msg.watching
		m.counts = msg.counts
		m.rows = flattenMissionRows(m.mine, m.watching)
		if m.selected >= len(m.rows) {
			m.selected = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.rows)-1 {
				m.selected++
			}
			return m, nil
		case "r":
			m.loading = true
			m.today = m.app.Today()
			return m, loadMissionsCmd(m.app, m.today)
		case "n":
			m.WantAdd = true
			return m, tea.Quit
		case "enter":
			if len(m.rows) > 0 {
				m.ChosenID = m.rows[m.selected].mission.ID
				return m, tea.Quit
			}
			return m, nil
		}
	}

	return m, nil
}

// flattenMissionRows lays the sections out in render order so a single
// selection index can walk them.
func flattenMissionRows(mine, watching []models.Mission) []missionRow {
	var rows []missionRow
	for _, group := range groupByLabel(mine) {
		for _, ms := range group {
			rows = append(rows, missionRow{mission: ms})
		}
	}
	for _, group := range groupByLabel(watching) {
		for _, ms := range group {
			rows = append(rows, missionRow{mission: ms, watching: true})
		}
	}
	return rows
}

// groupByLabel orders missions ACTIVE, COMPLETED, UNSATISFIED.
func groupByLabel(missions []models.Mission) [][]models.Mission {
	groups := make([][]models.Mission, 3)
	for _, ms := range missions {
		switch status.MissionLabel(ms.Status) {
		case "COMPLETED":
			groups[1] = append(groups[1], ms)
		case "UNSATISFIED":
			groups[2] = append(groups[2], ms)
		default:
			groups[0] = append(groups[0], ms)
		}
	}
	return groups
}

// View renders the page
func (m MissionListModel) View() string {
	if m.loading {
		return loadingView("LOADING MISSIONS")
	}
	if m.err != nil {
		return errorView(m.err.Error())
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		Render("MISSION CONTROL")

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")

	cursor := 0
	b.WriteString(m.renderSections("MY MISSIONS", groupByLabel(m.mine), false, &cursor))
	b.WriteString(m.renderSections("WATCHING", groupByLabel(m.watching), true, &cursor))

	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Render("enter: open • n: new mission • r: reload • q: quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

var sectionLabels = [3]string{"ACTIVE", "COMPLETED", "UNSATISFIED"}

func (m MissionListModel) renderSections(title string, groups [][]models.Mission, watching bool, cursor *int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText))
	subStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	for i, group := range groups {
		b.WriteString(subStyle.Render("  " + sectionLabels[i]))
		b.WriteString("\n")
		if len(group) == 0 {
			label := "no " + strings.ToLower(sectionLabels[i]) + " missions yet"
			if watching {
				label = "no " + strings.ToLower(sectionLabels[i]) + " missions you're watching"
			}
			b.WriteString(emptyStyle.Render("    " + label))
			b.WriteString("\n")
			continue
		}
		for _, ms := range group {
			b.WriteString(m.renderMissionLine(ms, *cursor == m.selected))
			b.WriteString("\n")
			*cursor++
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (m MissionListModel) renderMissionLine(ms models.Mission, selected bool) string {
	c := m.counts[ms.ID]
	line := fmt.Sprintf("    %s  [%s]  %s  %d / %d milestones",
		ms.Name,
		status.MissionLabel(ms.Status),
		parser.FormatDateRange(ms.StartDate, ms.EndDate),
		c[0], c[1])

	if selected {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentMain)).
			Bold(true).
			Render("  > " + strings.TrimPrefix(line, "    "))
	}
	return line
}

// loadingView is the full-page loading state shared by the pages.
func loadingView(label string) string {
	return lipgloss.NewStyle().
		Padding(1, 2).
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Render(label + "…")
}

// errorView is the terminal error state with a back hint.
func errorView(msg string) string {
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorError)).
		Render("ERROR: " + msg)
	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Render("press q to go back")
	return lipgloss.NewStyle().Padding(1, 2).Render(body + "\n" + hint)
}
