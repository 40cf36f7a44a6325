package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FarahAbbdi/mission/internal/app"
	"github.com/FarahAbbdi/mission/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view <mission-id>",
	Short: "Open a mission's detail page",
	Long: `Open the detail page for one mission. Owners can manage milestones,
logs, and watchers; watchers get a read-only view with a stop-watching
control.`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		if _, err := a.RequireUser(); err != nil {
			fmt.Println(err)
			return
		}
		if err := tui.RunMissionDetailTUI(a, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}
