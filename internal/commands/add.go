package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FarahAbbdi/mission/internal/app"
	"github.com/FarahAbbdi/mission/internal/parser"
	"github.com/FarahAbbdi/mission/internal/store"
	"github.com/FarahAbbdi/mission/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [mission name]",
	Short: "Create a new mission",
	Long: `Create a new mission.

Modes:
  Interactive: mission add (no arguments)
  Quick: mission add "Launch new product" --start today --end "8 weeks"

Dates accept yyyy-mm-dd, dd/mm/yyyy, today, or relative offsets like
"3 days" and "4 weeks".`,
	Args: cobra.ArbitraryArgs,
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		if _, err := a.RequireUser(); err != nil {
			fmt.Println(err)
			return
		}

		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		description, _ := cmd.Flags().GetString("description")

		// Anything missing drops to the wizard with the rest prefilled.
		if len(args) == 0 || start == "" || end == "" {
			prefilled := make(map[string]string)
			if len(args) > 0 {
				prefilled["name"] = args[0]
			}
			if start != "" {
				prefilled["start"] = start
			}
			if end != "" {
				prefilled["end"] = end
			}
			if description != "" {
				prefilled["description"] = description
			}
			if err := tui.RunAddMissionTUI(a, prefilled); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		runDirectAdd(a, args[0], start, end, description)
	}),
}

// runDirectAdd creates the mission without the wizard.
func runDirectAdd(a *app.App, name, start, end, description string) {
	startDate, err := parser.ParseDate(start, a.Today)
	if err != nil {
		fmt.Printf("Error parsing start date: %v\n", err)
		return
	}
	endDate, err := parser.ParseDate(end, a.Today)
	if err != nil {
		fmt.Printf("Error parsing end date: %v\n", err)
		return
	}

	ownerID, err := a.RequireUser()
	if err != nil {
		fmt.Println(err)
		return
	}

	mission, err := a.Store.CreateMission(store.CreateMissionRequest{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		fmt.Printf("Error creating mission: %v\n", err)
		return
	}

	fmt.Printf("Created mission %q\n", mission.Name)
	fmt.Printf("  Dates: %s\n", parser.FormatDateRange(mission.StartDate, mission.EndDate))
	if mission.Description != "" {
		fmt.Printf("  Description: %s\n", mission.Description)
	}
	fmt.Printf("  ID: %s\n", mission.ID)
}

func init() {
	addCmd.Flags().StringP("start", "s", "", "Start date")
	addCmd.Flags().StringP("end", "e", "", "End date")
	addCmd.Flags().StringP("description", "d", "", "Mission description")
}
