package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FarahAbbdi/mission/internal/app"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mission",
	Short: "A CLI for tracking missions, milestones, and progress logs",
	Long: `mission is a command-line mission control center: track your goals
("missions"), break them into milestones with deadlines and priorities,
log progress against each milestone, and share read-only visibility with
watchers.`,
}

// withApp constructs the app (config, store, session) for the duration of
// one command and tears it down after.
func withApp(fn func(a *app.App, cmd *cobra.Command, args []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		a, err := app.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer a.Close()
		fn(a, cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(milestoneCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
