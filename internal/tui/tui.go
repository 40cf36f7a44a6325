package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/FarahAbbdi/mission/internal/app"
)

// ListOutcome is what the list page resolved to when it exited.
type ListOutcome struct {
	ChosenID string
	WantAdd  bool
}

// RunMissionListTUI shows the mission control page and returns what the
// user picked, if anything.
func RunMissionListTUI(a *app.App) (ListOutcome, error) {
	p := tea.NewProgram(NewMissionListModel(a), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return ListOutcome{}, err
	}

	if m, ok := finalModel.(MissionListModel); ok {
		return ListOutcome{ChosenID: m.ChosenID, WantAdd: m.WantAdd}, nil
	}
	return ListOutcome{}, nil
}

// RunMissionDetailTUI shows one mission until the user backs out or the
// mission stops existing for them (deleted, stopped watching).
func RunMissionDetailTUI(a *app.App, missionID string) error {
	p := tea.NewProgram(NewDetailModel(a, missionID), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(DetailModel); ok {
		if m.Deleted {
			fmt.Println("Mission deleted.")
		}
		if m.StoppedWatching {
			fmt.Println("Stopped watching.")
		}
	}
	return nil
}

// RunAddMissionTUI starts the interactive mission creation wizard.
func RunAddMissionTUI(a *app.App, prefilled map[string]string) error {
	p := tea.NewProgram(NewAddMissionModel(a, prefilled), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AddMissionModel); ok {
		if m.cancelled {
			fmt.Println("Mission creation cancelled.")
		} else if m.completed {
			fmt.Printf("New mission %q created\n", m.createdName)
		} else if m.err != nil {
			fmt.Printf("Error: %v\n", m.err)
		}
	}
	return nil
}

// RunAuthTUI starts the login or signup wizard and reports whether a
// session was started.
func RunAuthTUI(a *app.App, signup bool) (bool, error) {
	p := tea.NewProgram(NewAuthModel(a, signup))
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(AuthModel); ok {
		if m.cancelled {
			fmt.Println("Cancelled.")
			return false, nil
		}
		if m.completed {
			return true, nil
		}
	}
	return false, nil
}
