package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plume-labs/plume-cli/internal/core/domain"
	"github.com/plume-labs/plume-cli/internal/core/services"
)

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "Manage the wedding party and vendors",
}

var (
	personNameFlag   string
	personRoleFlag   string
	personPhoneFlag  string
	personNotifyFlag string
)

var peopleAddCmd = &cobra.Command{
	Use:   "add <project-id>",
	Short: "Add a person",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := services.NewPeopleSession(store, notifier)
		if err := session.Open(cmd.Context(), args[0]); err != nil {
			return err
		}

		person := domain.NewPerson(personNameFlag, personRoleFlag)
		person.Phone = personPhoneFlag
		if personNotifyFlag != "" {
			person.Notify = domain.NotifyPreference(personNotifyFlag)
		}

		session.Mutate(func(p *domain.People) {
			p.Members = append(p.Members, person)
		})

		if err := session.Submit(cmd.Context()); err != nil {
			return err
		}
		cmd.Printf("Added %s (%s)\n", person.Name, person.Role)
		return nil
	},
}

var peopleRemoveCmd = &cobra.Command{
	Use:   "remove <project-id> <person-id>",
	Short: "Remove a person",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := services.NewPeopleSession(store, notifier)
		if err := session.Open(cmd.Context(), args[0]); err != nil {
			return err
		}

		var found bool
		session.Mutate(func(p *domain.People) {
			for i, member := range p.Members {
				if member.ID == args[1] {
					p.Members = append(p.Members[:i], p.Members[i+1:]...)
					found = true
					return
				}
			}
		})
		if !found {
			session.Cancel()
			return fmt.Errorf("person %q: %w", args[1], domain.ErrNotFound)
		}

		return session.Submit(cmd.Context())
	},
}

var peopleListCmd = &cobra.Command{
	Use:   "list <project-id>",
	Short: "List people",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := projectService.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("loading project: %w", err)
		}

		if len(project.People.Members) == 0 {
			cmd.Println("No people yet.")
			return nil
		}

		for _, member := range project.People.Members {
			cmd.Printf("%s  %-20s %-12s notify:%s\n", member.ID, member.Name, member.Role, member.Notify)
		}
		return nil
	},
}

func init() {
	peopleAddCmd.Flags().StringVar(&personNameFlag, "name", "", "person's name (required)")
	peopleAddCmd.Flags().StringVar(&personRoleFlag, "role", "", "what the person does (required)")
	peopleAddCmd.Flags().StringVar(&personPhoneFlag, "phone", "", "contact number")
	peopleAddCmd.Flags().StringVar(&personNotifyFlag, "notify", "", "notification preference: none, email or sms")
	peopleAddCmd.MarkFlagRequired("name")
	peopleAddCmd.MarkFlagRequired("role")

	peopleCmd.AddCommand(peopleAddCmd)
	peopleCmd.AddCommand(peopleRemoveCmd)
	peopleCmd.AddCommand(peopleListCmd)
	rootCmd.AddCommand(peopleCmd)
}
