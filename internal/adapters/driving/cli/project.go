package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plume-labs/plume-cli/internal/core/domain"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage wedding projects",
	Long:  `Create, list, inspect and delete wedding projects.`,
}

var projectOwnerFlag string

var projectCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project",
	Long:  `Create a new project with all sections set to their defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if projectService == nil {
			return errors.New("project service not configured")
		}

		owner := projectOwnerFlag
		if owner == "" {
			owner = defaultOwner()
		}

		project, err := projectService.Create(cmd.Context(), owner)
		if err != nil {
			return fmt.Errorf("creating project: %w", err)
		}

		cmd.Printf("Created project %s (owner: %s)\n", project.ID, project.OwnerID)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if projectService == nil {
			return errors.New("project service not configured")
		}

		projects, err := projectService.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing projects: %w", err)
		}

		if len(projects) == 0 {
			cmd.Println("No projects yet. Run 'plume project create' to start one.")
			return nil
		}

		for _, p := range projects {
			label := "(no names yet)"
			if p.Essentials.PartnerOne != "" || p.Essentials.PartnerTwo != "" {
				label = fmt.Sprintf("%s & %s", p.Essentials.PartnerOne, p.Essentials.PartnerTwo)
			}
			cmd.Printf("%s  %s  events:%d people:%d shots:%d\n",
				p.ID, label,
				p.RecordCount(domain.SectionTimeline),
				p.RecordCount(domain.SectionPeople),
				p.RecordCount(domain.SectionPhotos))
		}
		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show <project-id>",
	Short: "Show a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if projectService == nil {
			return errors.New("project service not configured")
		}

		project, err := projectService.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("loading project: %w", err)
		}

		cmd.Printf("Project:  %s\n", project.ID)
		cmd.Printf("Owner:    %s\n", project.OwnerID)
		cmd.Printf("Created:  %s\n", project.CreatedAt.Format("2006-01-02 15:04"))
		cmd.Printf("Updated:  %s\n", project.UpdatedAt.Format("2006-01-02 15:04"))
		cmd.Println()
		for _, name := range domain.AllSectionNames() {
			if name.Collection() {
				cmd.Printf("  %-12s %d records\n", name, project.RecordCount(name))
			} else {
				cmd.Printf("  %-12s %s\n", name, name.Description())
			}
		}
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <project-id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if projectService == nil {
			return errors.New("project service not configured")
		}

		if err := projectService.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("deleting project: %w", err)
		}

		cmd.Printf("Deleted project %s\n", args[0])
		return nil
	},
}

func init() {
	projectCreateCmd.Flags().StringVar(&projectOwnerFlag, "owner", "", "owner identifier (defaults to config)")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	rootCmd.AddCommand(projectCmd)
}
