package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plume-labs/plume-cli/internal/core/domain"
	"github.com/plume-labs/plume-cli/internal/core/services"
)

var photosCmd = &cobra.Command{
	Use:   "photos",
	Short: "Manage requested shots",
}

var (
	shotTitleFlag    string
	shotSubjectsFlag []string
	shotMomentFlag   string
	shotPriorityFlag string
)

var photosAddCmd = &cobra.Command{
	Use:   "add <project-id>",
	Short: "Add a shot request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := services.NewPhotosSession(store, notifier)
		if err := session.Open(cmd.Context(), args[0]); err != nil {
			return err
		}

		shot := domain.NewShotRequest(shotTitleFlag)
		shot.Subjects = shotSubjectsFlag
		shot.Moment = shotMomentFlag
		if shotPriorityFlag != "" {
			shot.Priority = domain.ShotPriority(shotPriorityFlag)
		}

		session.Mutate(func(p *domain.Photos) {
			p.Shots = append(p.Shots, shot)
		})

		if err := session.Submit(cmd.Context()); err != nil {
			return err
		}
		cmd.Printf("Added shot %q (%s)\n", shot.Title, shot.Priority)
		return nil
	},
}

var photosRemoveCmd = &cobra.Command{
	Use:   "remove <project-id> <shot-id>",
	Short: "Remove a shot request",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := services.NewPhotosSession(store, notifier)
		if err := session.Open(cmd.Context(), args[0]); err != nil {
			return err
		}

		var found bool
		session.Mutate(func(p *domain.Photos) {
			for i, shot := range p.Shots {
				if shot.ID == args[1] {
					p.Shots = append(p.Shots[:i], p.Shots[i+1:]...)
					found = true
					return
				}
			}
		})
		if !found {
			session.Cancel()
			return fmt.Errorf("shot %q: %w", args[1], domain.ErrNotFound)
		}

		return session.Submit(cmd.Context())
	},
}

var photosListCmd = &cobra.Command{
	Use:   "list <project-id>",
	Short: "List shot requests",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := projectService.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("loading project: %w", err)
		}

		if len(project.Photos.Shots) == 0 {
			cmd.Println("No shots yet.")
			return nil
		}

		for _, shot := range project.Photos.Shots {
			line := fmt.Sprintf("%s  [%s] %s", shot.ID, shot.Priority, shot.Title)
			if len(shot.Subjects) > 0 {
				line += "  (" + strings.Join(shot.Subjects, ", ") + ")"
			}
			cmd.Println(line)
		}
		return nil
	},
}

func init() {
	photosAddCmd.Flags().StringVar(&shotTitleFlag, "title", "", "shot title (required)")
	photosAddCmd.Flags().StringSliceVar(&shotSubjectsFlag, "subject", nil, "who should be in the frame (repeatable)")
	photosAddCmd.Flags().StringVar(&shotMomentFlag, "moment", "", "when during the day the shot happens")
	photosAddCmd.Flags().StringVar(&shotPriorityFlag, "priority", "", "shot priority: low, normal or high")
	photosAddCmd.MarkFlagRequired("title")

	photosCmd.AddCommand(photosAddCmd)
	photosCmd.AddCommand(photosRemoveCmd)
	photosCmd.AddCommand(photosListCmd)
	rootCmd.AddCommand(photosCmd)
}
