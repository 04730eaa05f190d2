package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plume-labs/plume-cli/internal/core/domain"
	"github.com/plume-labs/plume-cli/internal/core/services"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Manage the run of show",
	Long:  `Add, remove and list the timeline events of a project.`,
}

var (
	eventTimeFlag     string
	eventDescFlag     string
	eventLocationFlag string
	eventOwnerFlag    string
)

var timelineAddCmd = &cobra.Command{
	Use:   "add <project-id>",
	Short: "Add a timeline event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := services.NewTimelineSession(store, notifier)
		if err := session.Open(cmd.Context(), args[0]); err != nil {
			return err
		}

		event := domain.NewEvent(eventTimeFlag, eventDescFlag)
		event.Location = eventLocationFlag
		event.Owner = eventOwnerFlag

		session.Mutate(func(t *domain.Timeline) {
			t.Events = append(t.Events, event)
		})

		if err := session.Submit(cmd.Context()); err != nil {
			return err
		}
		cmd.Printf("Added event %s at %s\n", event.ID, event.Time)
		return nil
	},
}

var timelineRemoveCmd = &cobra.Command{
	Use:   "remove <project-id> <event-id>",
	Short: "Remove a timeline event",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := services.NewTimelineSession(store, notifier)
		if err := session.Open(cmd.Context(), args[0]); err != nil {
			return err
		}

		var found bool
		session.Mutate(func(t *domain.Timeline) {
			for i, event := range t.Events {
				if event.ID == args[1] {
					t.Events = append(t.Events[:i], t.Events[i+1:]...)
					found = true
					return
				}
			}
		})
		if !found {
			session.Cancel()
			return fmt.Errorf("event %q: %w", args[1], domain.ErrNotFound)
		}

		return session.Submit(cmd.Context())
	},
}

var timelineListCmd = &cobra.Command{
	Use:   "list <project-id>",
	Short: "List timeline events",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := projectService.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("loading project: %w", err)
		}

		if len(project.Timeline.Events) == 0 {
			cmd.Println("No events yet.")
			return nil
		}

		for _, event := range project.Timeline.Events {
			line := fmt.Sprintf("%s  %s  %s", event.ID, event.Time, event.Description)
			if event.Location != "" {
				line += "  @ " + event.Location
			}
			cmd.Println(line)
		}
		return nil
	},
}

func init() {
	timelineAddCmd.Flags().StringVar(&eventTimeFlag, "time", "", "event time in HH:MM form (required)")
	timelineAddCmd.Flags().StringVar(&eventDescFlag, "desc", "", "what happens (required)")
	timelineAddCmd.Flags().StringVar(&eventLocationFlag, "location", "", "where the event takes place")
	timelineAddCmd.Flags().StringVar(&eventOwnerFlag, "owner", "", "who runs this part of the show")
	timelineAddCmd.MarkFlagRequired("time")
	timelineAddCmd.MarkFlagRequired("desc")

	timelineCmd.AddCommand(timelineAddCmd)
	timelineCmd.AddCommand(timelineRemoveCmd)
	timelineCmd.AddCommand(timelineListCmd)
	rootCmd.AddCommand(timelineCmd)
}
