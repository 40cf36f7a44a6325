package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FarahAbbdi/mission/internal/app"
	"github.com/FarahAbbdi/mission/internal/tui"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and start a session",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		ok, err := tui.RunAuthTUI(a, true)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if ok {
			fmt.Println("Account created. You are now logged in.")
		}
	}),
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and start a session",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		ok, err := tui.RunAuthTUI(a, false)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if ok {
			fmt.Println("Logged in.")
		}
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		if err := a.Auth.SignOut(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("Logged out.")
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		profile, err := a.Auth.CurrentProfile()
		if err != nil {
			fmt.Println("Not logged in. Run 'mission login' or 'mission signup'.")
			return
		}
		fmt.Printf("%s <%s>\n", profile.DisplayName(), profile.Email)
	}),
}
