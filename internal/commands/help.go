package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for mission",
	Long:  `Display detailed help for all mission commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
███╗   ███╗██╗███████╗███████╗██╗ ██████╗ ███╗   ██╗
████╗ ████║██║██╔════╝██╔════╝██║██╔═══██╗████╗  ██║
██╔████╔██║██║███████╗███████╗██║██║   ██║██╔██╗ ██║
██║╚██╔╝██║██║╚════██║╚════██║██║██║   ██║██║╚██╗██║
██║ ╚═╝ ██║██║███████║███████║██║╚██████╔╝██║ ╚████║
╚═╝     ╚═╝╚═╝╚══════╝╚══════╝╚═╝ ╚═════╝ ╚═╝  ╚═══╝

mission - CLI Mission Control

ACCOUNT:

  signup                  Create an account and sign in
  login                   Sign in to an existing account
  logout                  Clear the local session
  whoami                  Show the signed-in account

MISSIONS:

  add [name]              Create a mission with the interactive wizard
    -s, --start           Start date (yyyy-mm-dd, dd/mm/yyyy, today)
    -e, --end             End date (also accepts "4 weeks")
    -d, --description     Markdown description

  ls                      List your missions and the ones you watch
    -i, --interactive     Interactive UI (navigate, open, create)

  view <id>               Open a mission's detail view
  done <id>               Mark a mission completed (locks it)
  rm <id>                 Delete a mission and everything under it

MILESTONES:

  milestone add <mission> <text>   Add a milestone with smart parsing
    --due                 Deadline (yyyy-mm-dd, dd/mm/yyyy, "2 weeks")
    --priority            low|medium|high
    --notes               Additional notes

    Smart syntax:
      +high         Set priority inline
      due:2_weeks   Set deadline inline

  milestone ls <mission>           List milestones by bucket
  milestone done <mission> <id>    Mark a milestone done
  milestone undone <mission> <id>  Reopen a milestone
  milestone rm <mission> <id>      Delete a milestone and its logs

LOGS:

  log add <mission> <milestone> <text>   Record progress on a milestone
  log ls <mission>                       Show logs grouped by milestone

WATCHERS:

  watch add <mission> <email>      Grant someone read-only access
  watch ls <mission>               List a mission's watchers
  watch stop <mission>             Stop watching someone else's mission

  help                    Show this help
  version                 Show version information

Interactive views: ↑/↓ navigate, enter open, x toggle, d delete,
a add milestone, l add log, w add watcher, c complete, q quit.

`)
}
