package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FarahAbbdi/mission/internal/app"
	"github.com/FarahAbbdi/mission/internal/models"
	"github.com/FarahAbbdi/mission/internal/parser"
	"github.com/FarahAbbdi/mission/internal/status"
	"github.com/FarahAbbdi/mission/internal/store"
)

var milestoneCmd = &cobra.Command{
	Use:     "milestone",
	Aliases: []string{"ms"},
	Short:   "Manage a mission's milestones",
}

// requireOwnedMission loads the mission and checks the caller owns it.
func requireOwnedMission(a *app.App, missionID string) (*models.Mission, error) {
	ownerID, err := a.RequireUser()
	if err != nil {
		return nil, err
	}
	mission, err := a.Store.GetMission(missionID)
	if err != nil {
		return nil, err
	}
	if mission.OwnerID != ownerID {
		return nil, fmt.Errorf("only the mission owner can do that")
	}
	return mission, nil
}

// requireVisibleMission loads the mission for reads: the owner or any of
// its watchers.
func requireVisibleMission(a *app.App, missionID string) (*models.Mission, error) {
	viewerID, err := a.RequireUser()
	if err != nil {
		return nil, err
	}
	mission, err := a.Store.GetMission(missionID)
	if err != nil {
		return nil, err
	}
	if mission.OwnerID != viewerID {
		watching, err := a.Store.IsWatching(missionID, viewerID)
		if err != nil {
			return nil, err
		}
		if !watching {
			return nil, fmt.Errorf("mission %s: %w", missionID, store.ErrNotFound)
		}
	}
	return mission, nil
}

var milestoneAddCmd = &cobra.Command{
	Use:   "add <mission-id> <milestone description>",
	Short: "Add a milestone to a mission",
	Long: `Add a milestone. The description supports smart parsing:

  +priority   - low/medium/high or 1/2/3 (default medium)
  due:date    - deadline, e.g. due:2025-03-01 or due:2_weeks

Example:
  mission milestone add <id> "Recruit 10 beta testers +high due:2025-03-01"`,
	Args: cobra.MinimumNArgs(2),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		mission, err := requireOwnedMission(a, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if status.MissionLocked(mission.Status) {
			fmt.Printf("Error: mission %q is %s; milestones can no longer be added\n",
				mission.Name, status.MissionLabel(mission.Status))
			return
		}

		parsed := parser.ParseMilestone(strings.Join(args[1:], " "), a.Today)
		if len(parsed.Errors) > 0 {
			fmt.Printf("Error: %s\n", strings.Join(parsed.Errors, "; "))
			return
		}

		deadline := parsed.Deadline
		if flagDue, _ := cmd.Flags().GetString("due"); flagDue != "" {
			deadline, err = parser.ParseDate(flagDue, a.Today)
			if err != nil {
				fmt.Printf("Error parsing deadline: %v\n", err)
				return
			}
		}
		if deadline == "" {
			fmt.Println("Error: a deadline is required (due:<date> or --due)")
			return
		}

		priority := parsed.Priority
		if flagPriority, _ := cmd.Flags().GetString("priority"); flagPriority != "" {
			priority = parser.NormalizePriority(flagPriority)
		}
		notes, _ := cmd.Flags().GetString("notes")

		milestone, err := a.Store.CreateMilestone(store.CreateMilestoneRequest{
			MissionID: mission.ID,
			Name:      parsed.Name,
			Notes:     notes,
			Deadline:  deadline,
			Priority:  priority,
		})
		if err != nil {
			fmt.Printf("Error creating milestone: %v\n", err)
			return
		}

		fmt.Printf("Created milestone %q\n", milestone.Name)
		fmt.Printf("  Deadline: %s\n", parser.FormatDeadline(milestone.Deadline, a.Today()))
		fmt.Printf("  Priority: %s\n", milestone.Priority)
		fmt.Printf("  ID: %s\n", milestone.ID)
	}),
}

var milestoneListCmd = &cobra.Command{
	Use:   "ls <mission-id>",
	Short: "List a mission's milestones by bucket",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		mission, err := requireVisibleMission(a, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		milestones, err := a.Store.ListMilestones(mission.ID)
		if err != nil {
			fmt.Printf("Error fetching milestones: %v\n", err)
			return
		}

		today := a.Today()
		groups := status.GroupMilestones(milestones, status.MissionLocked(mission.Status), today)
		for _, b := range []status.Bucket{status.BucketActive, status.BucketCompleted, status.BucketUnsatisfied} {
			rows := groups[b]
			if len(rows) == 0 {
				continue
			}
			fmt.Println(b.Label())
			for _, ms := range rows {
				fmt.Printf("  %-36s %-8s %-30s %s\n",
					ms.ID, strings.ToUpper(ms.Priority), ms.Name,
					parser.FormatDeadline(ms.Deadline, today))
			}
		}
	}),
}

// setMilestoneStatus is shared by done and undone.
func setMilestoneStatus(a *app.App, missionID, milestoneID, newStatus string) {
	mission, err := requireOwnedMission(a, missionID)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if status.MissionLocked(mission.Status) {
		fmt.Printf("Error: mission %q is %s; its milestones are locked\n",
			mission.Name, status.MissionLabel(mission.Status))
		return
	}
	if err := a.Store.SetMilestoneStatus(mission.ID, milestoneID, newStatus); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Milestone marked %s\n", newStatus)
}

var milestoneDoneCmd = &cobra.Command{
	Use:   "done <mission-id> <milestone-id>",
	Short: "Mark a milestone as completed",
	Args:  cobra.ExactArgs(2),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		setMilestoneStatus(a, args[0], args[1], models.MilestoneCompleted)
	}),
}

var milestoneUndoneCmd = &cobra.Command{
	Use:   "undone <mission-id> <milestone-id>",
	Short: "Mark a completed milestone back to active",
	Args:  cobra.ExactArgs(2),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		setMilestoneStatus(a, args[0], args[1], models.MilestoneActive)
	}),
}

var milestoneRmCmd = &cobra.Command{
	Use:   "rm <mission-id> <milestone-id>",
	Short: "Delete a milestone and its logs",
	Args:  cobra.ExactArgs(2),
	Run: withApp(func(a *app.App, cmd *cobra.Command, args []string) {
		// Owners may delete milestones even on locked missions.
		mission, err := requireOwnedMission(a, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := a.Store.DeleteMilestone(mission.ID, args[1]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("Milestone deleted.")
	}),
}

func init() {
	milestoneAddCmd.Flags().StringP("due", "", "", "Deadline date")
	milestoneAddCmd.Flags().StringP("priority", "p", "", "Priority: low, medium, high, or 1-3")
	milestoneAddCmd.Flags().StringP("notes", "n", "", "Additional notes")

	milestoneCmd.AddCommand(milestoneAddCmd)
	milestoneCmd.AddCommand(milestoneListCmd)
	milestoneCmd.AddCommand(milestoneDoneCmd)
	milestoneCmd.AddCommand(milestoneUndoneCmd)
	milestoneCmd.AddCommand(milestoneRmCmd)
}
