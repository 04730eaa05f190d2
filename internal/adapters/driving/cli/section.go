package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plume-labs/plume-cli/internal/core/domain"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Inspect project sections",
	Long:  `Inspect the individual sections of a project.`,
}

var sectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available sections",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, name := range domain.AllSectionNames() {
			cmd.Printf("%-12s %s\n", name, name.Description())
		}
	},
}

var sectionShowCmd = &cobra.Command{
	Use:   "show <project-id> <section>",
	Short: "Show one section as JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if projectService == nil {
			return errors.New("project service not configured")
		}

		name := domain.SectionName(args[1])
		if !name.IsValid() {
			return fmt.Errorf("unknown section %q (try 'plume section list')", args[1])
		}

		project, err := projectService.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("loading project: %w", err)
		}

		section, err := project.Section(name)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(section, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding section: %w", err)
		}

		cmd.Println(string(data))
		return nil
	},
}

func init() {
	sectionCmd.AddCommand(sectionListCmd)
	sectionCmd.AddCommand(sectionShowCmd)
	rootCmd.AddCommand(sectionCmd)
}
