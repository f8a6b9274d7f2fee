package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

func newProjectCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectCreateCmd(s),
		newProjectListCmd(s),
		newProjectShowCmd(s),
		newProjectRenameCmd(s),
	)

	return cmd
}

func newProjectCreateCmd(s *session) *cobra.Command {
	var name, priority string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Args:  cobra.NoArgs,
		RunE: s.run(func(cmd *cobra.Command, _ []string) error {
			p, err := project.ParsePriority(priority)
			if err != nil {
				return err
			}
			res := s.svc.CreateProject(cmd.Context(), ports.CreateProjectCommand{Name: name, Priority: p})
			return printResult(s, cmd, res, func(p *project.Project) (any, string) {
				return dto.ToProjectResponse(p), fmt.Sprintf("Created project %s (%s)\n", p.Name(), p.ID())
			})
		}),
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&priority, "priority", project.PriorityMedium.String(), "Priority: low, medium or high")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects in creation order",
		Args:  cobra.NoArgs,
		RunE: s.run(func(cmd *cobra.Command, _ []string) error {
			res := s.svc.ListProjects(cmd.Context())
			return printResult(s, cmd, res, func(ps []*project.Project) (any, string) {
				return dto.ToProjectListResponse(ps), formatProjectList(ps)
			})
		}),
	}
}

func newProjectShowCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show a project and its items",
		Args:  cobra.ExactArgs(1),
		RunE: s.run(func(cmd *cobra.Command, args []string) error {
			res := s.svc.GetProject(cmd.Context(), args[0])
			return printResult(s, cmd, res, func(p *project.Project) (any, string) {
				return dto.ToProjectResponse(p), formatProject(p)
			})
		}),
	}
}

func newProjectRenameCmd(s *session) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "rename <project-id>",
		Short: "Rename a project",
		Args:  cobra.ExactArgs(1),
		RunE: s.run(func(cmd *cobra.Command, args []string) error {
			res := s.svc.RenameProject(cmd.Context(), ports.RenameProjectCommand{ProjectID: args[0], Name: name})
			return printResult(s, cmd, res, func(p *project.Project) (any, string) {
				return dto.ToRenameResponse(p), fmt.Sprintf("Renamed project %s to %s\n", p.ID(), p.Name())
			})
		}),
	}

	cmd.Flags().StringVar(&name, "name", "", "New project name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
