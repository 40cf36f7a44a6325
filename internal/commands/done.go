package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FarahAbbdi/mission/internal/app"
	"github.com/FarahAbbdi/mission/internal/models"
	"github.com/FarahAbbdi/mission/internal/status"
	"github.com/FarahAbbdi/mission/internal/store"
)

var doneCmd = &cobra.Command{
	Use:   "done <mission-id>",
	Short: "Mark a mission as satisfied",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		ownerID, err := a.RequireUser()
		if err != nil {
			fmt.Println(err)
			return
		}

		mission, err := a.Store.GetMission(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if mission.OwnerID != ownerID {
			fmt.Println("Error: only the mission owner can complete it")
			return
		}
		if status.MissionLocked(mission.Status) {
			fmt.Printf("Mission %q is already %s\n", mission.Name, status.MissionLabel(mission.Status))
			return
		}

		if err := a.Store.SetMissionStatus(ownerID, mission.ID, models.MissionCompleted); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Mission %q marked completed\n", mission.Name)
	}),
}

var rmCmd = &cobra.Command{
	Use:   "rm <mission-id>",
	Short: "Delete a mission and everything in it",
	Long: `Delete a mission. Its milestones, their logs, and its watcher records
are removed with it.`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		ownerID, err := a.RequireUser()
		if err != nil {
			fmt.Println(err)
			return
		}

		if err := a.Store.DeleteMission(ownerID, args[0]); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				fmt.Printf("Error: mission %s not found\n", args[0])
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("Mission deleted.")
	}),
}
