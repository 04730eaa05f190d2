package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plume-labs/plume-cli/internal/adapters/driving/tui"
	"github.com/plume-labs/plume-cli/internal/core/domain"
	"github.com/plume-labs/plume-cli/internal/core/services"
)

var (
	editNewFlag     bool
	editSectionFlag string
)

var editCmd = &cobra.Command{
	Use:   "edit [project-id]",
	Short: "Edit a section in a form",
	Long: `Open an interactive form for one section of a project.

--section essentials (the default) edits the essential info; --section
timeline adds one event to the run of show.

With --new, the essentials form starts from defaults and the project is
created when you save. Cancelling a --new form creates nothing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if store == nil {
			return errors.New("store not configured")
		}

		var app *tui.App
		switch editSectionFlag {
		case "", "essentials":
			session := services.NewEssentialsSession(store, notifier)
			switch {
			case editNewFlag:
				if err := session.OpenNew(defaultOwner()); err != nil {
					return err
				}
			case len(args) == 1:
				if err := session.Open(cmd.Context(), args[0]); err != nil {
					return err
				}
			default:
				return errors.New("a project-id argument is required unless --new is set")
			}
			app = tui.NewApp(session)

		case "timeline":
			if editNewFlag {
				return errors.New("--new only applies to the essentials form")
			}
			if len(args) != 1 {
				return errors.New("a project-id argument is required")
			}
			session := services.NewTimelineSession(store, notifier)
			if err := session.Open(cmd.Context(), args[0]); err != nil {
				return err
			}
			app = tui.NewTimelineApp(session)

		default:
			return fmt.Errorf("no form for section %q: %w", editSectionFlag, domain.ErrInvalidInput)
		}

		if err := app.Run(); err != nil {
			return err
		}

		if app.Cancelled() {
			cmd.Println("Edit cancelled, nothing saved.")
			return nil
		}
		if id := app.SavedProjectID(); id != "" && editNewFlag {
			cmd.Printf("Created project %s\n", id)
		}
		return nil
	},
}

func init() {
	editCmd.Flags().BoolVar(&editNewFlag, "new", false, "create a new project from the form")
	editCmd.Flags().StringVar(&editSectionFlag, "section", "essentials", "section to edit (essentials or timeline)")
	rootCmd.AddCommand(editCmd)
}
