package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FarahAbbdi/mission/internal/app"
	"github.com/FarahAbbdi/mission/internal/models"
	"github.com/FarahAbbdi/mission/internal/store"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Manage who watches a mission",
}

var watchAddCmd = &cobra.Command{
	Use:   "add <mission-id> <email>",
	Short: "Add a watcher by email",
	Long: `Grant another user read visibility into your mission. The user must
already have an account.`,
	Args: cobra.ExactArgs(2),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		mission, err := requireOwnedMission(a, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		profile, err := a.Store.GetProfileByEmail(args[1])
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				fmt.Println("Error: no account with that email. This user must already have an account.")
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}
		if profile.ID == mission.OwnerID {
			fmt.Println("Error: you already own this mission")
			return
		}

		if err := a.Store.AddWatcher(mission.ID, profile.ID); err != nil {
			if errors.Is(err, store.ErrAlreadyWatching) {
				fmt.Println("That user is already watching this mission.")
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("%s is now watching %q\n", profile.DisplayName(), mission.Name)
	}),
}

var watchListCmd = &cobra.Command{
	Use:   "ls <mission-id>",
	Short: "List a mission's watchers",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		mission, err := requireOwnedMission(a, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		watchers, err := a.Store.ListWatchers(mission.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(watchers) == 0 {
			fmt.Println("No watchers yet.")
			return
		}

		ids := make([]string, 0, len(watchers))
		for _, w := range watchers {
			ids = append(ids, w.WatcherID)
		}
		profiles, err := a.Store.GetProfiles(ids)
		if err != nil {
			// Fall back to placeholder names.
			profiles = map[string]models.Profile{}
		}

		for _, w := range watchers {
			name := models.PlaceholderName(w.WatcherID)
			email := ""
			if p, ok := profiles[w.WatcherID]; ok {
				name = p.DisplayName()
				email = " <" + p.Email + ">"
			}
			fmt.Printf("  %s%s\n", name, email)
		}
	}),
}

var watchStopCmd = &cobra.Command{
	Use:   "stop <mission-id>",
	Short: "Stop watching a mission",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		viewerID, err := a.RequireUser()
		if err != nil {
			fmt.Println(err)
			return
		}

		if err := a.Store.RemoveWatcher(args[0], viewerID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				fmt.Println("You are not watching that mission.")
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("Stopped watching.")
	}),
}

func init() {
	watchCmd.AddCommand(watchAddCmd)
	watchCmd.AddCommand(watchListCmd)
	watchCmd.AddCommand(watchStopCmd)
}
