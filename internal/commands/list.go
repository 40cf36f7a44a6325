package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FarahAbbdi/mission/internal/app"
	"github.com/FarahAbbdi/mission/internal/models"
	"github.com/FarahAbbdi/mission/internal/parser"
	"github.com/FarahAbbdi/mission/internal/status"
	"github.com/FarahAbbdi/mission/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List your missions and the ones you watch",
	Long: `List missions grouped by status. Active missions whose end date has
passed are marked expired before the list is fetched.`,
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		interactive, _ := cmd.Flags().GetBool("interactive")
		if interactive {
			runListTUI(a)
			return
		}

		viewerID, err := a.RequireUser()
		if err != nil {
			fmt.Println(err)
			return
		}

		today := a.Today()
		// Lazy expiry pass: best-effort, the fetch proceeds either way.
		if err := a.Store.ExpireOverdue(viewerID, today); err != nil {
			a.Store.LogExpiryFailure(viewerID, err)
		}

		mine, err := a.Store.ListMissionsByOwner(viewerID)
		if err != nil {
			fmt.Printf("Error fetching missions: %v\n", err)
			return
		}
		watching, err := a.Store.ListMissionsWatching(viewerID)
		if err != nil {
			// Secondary list: degrade to empty rather than fail the page.
			watching = nil
		}

		if len(mine) == 0 && len(watching) == 0 {
			fmt.Println("No missions found. Use 'mission add' to create your first mission.")
			return
		}

		printMissionTable("MY MISSIONS", mine)
		if len(watching) > 0 {
			fmt.Println()
			printMissionTable("WATCHING", watching)
		}
	}),
}

// runListTUI loops between the list page and whatever it opens until the
// user quits the list.
func runListTUI(a *app.App) {
	for {
		outcome, err := tui.RunMissionListTUI(a)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		switch {
		case outcome.WantAdd:
			if err := tui.RunAddMissionTUI(a, nil); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		case outcome.ChosenID != "":
			if err := tui.RunMissionDetailTUI(a, outcome.ChosenID); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		default:
			return
		}
	}
}

func printMissionTable(title string, missions []models.Mission) {
	fmt.Println(title)
	fmt.Printf("%-36s %-12s %-30s %s\n", "ID", "STATUS", "NAME", "DATES")
	fmt.Println(strings.Repeat("-", 100))
	for _, m := range missions {
		name := m.Name
		if len(name) > 28 {
			name = name[:25] + "..."
		}
		fmt.Printf("%-36s %-12s %-30s %s\n",
			m.ID,
			status.MissionLabel(m.Status),
			name,
			parser.FormatDateRange(m.StartDate, m.EndDate))
	}
}

func init() {
	listCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
}
