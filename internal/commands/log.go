package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FarahAbbdi/mission/internal/app"
	"github.com/FarahAbbdi/mission/internal/status"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record and read progress logs",
}

var logAddCmd = &cobra.Command{
	Use:   "add <mission-id> <milestone-id> <text...>",
	Short: "Append a progress log to a milestone",
	Args:  cobra.MinimumNArgs(3),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		mission, err := requireOwnedMission(a, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if status.MissionLocked(mission.Status) {
			fmt.Printf("Error: mission %q is %s; logs can no longer be added\n",
				mission.Name, status.MissionLabel(mission.Status))
			return
		}

		// The milestone must belong to this mission.
		milestones, err := a.Store.ListMilestones(mission.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		found := false
		for _, ms := range milestones {
			if ms.ID == args[1] {
				found = true
				break
			}
		}
		if !found {
			fmt.Printf("Error: milestone %s not found in this mission\n", args[1])
			return
		}

		log, err := a.Store.CreateLog(args[1], strings.Join(args[2:], " "))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Logged: %s\n", log.Content)
	}),
}

var logListCmd = &cobra.Command{
	Use:   "ls <mission-id>",
	Short: "List all logs of a mission, grouped by milestone",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		mission, err := requireVisibleMission(a, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		milestones, err := a.Store.ListMilestones(mission.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		ids := make([]string, 0, len(milestones))
		for _, ms := range milestones {
			ids = append(ids, ms.ID)
		}
		logs, err := a.Store.ListLogsByMilestones(ids)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		empty := true
		for _, ms := range milestones {
			rows := logs[ms.ID]
			if len(rows) == 0 {
				continue
			}
			empty = false
			fmt.Println(ms.Name)
			for _, l := range rows {
				fmt.Printf("  %s  %s\n", l.CreatedAt.Format("2006-01-02 15:04"), l.Content)
			}
		}
		if empty {
			fmt.Println("No logs yet.")
		}
	}),
}

func init() {
	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logListCmd)
}
