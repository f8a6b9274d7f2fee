package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

func newItemCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage a project's to-do items",
	}

	cmd.AddCommand(
		newItemAddCmd(s),
		newItemDoneCmd(s),
		newItemAssignCmd(s),
	)

	return cmd
}

func newItemAddCmd(s *session) *cobra.Command {
	var title, description, contributor string

	cmd := &cobra.Command{
		Use:   "add <project-id>",
		Short: "Add a to-do item to a project",
		Args:  cobra.ExactArgs(1),
		RunE: s.run(func(cmd *cobra.Command, args []string) error {
			add := ports.AddItemCommand{
				ProjectID:   args[0],
				Title:       title,
				Description: description,
			}
			if cmd.Flags().Changed("contributor") {
				add.ContributorID = &contributor
			}

			res := s.svc.AddItem(cmd.Context(), add)
			return printResult(s, cmd, res, func(r ports.ItemResult) (any, string) {
				return dto.ToItemResponse(r.Item), fmt.Sprintf("Added item %s to project %s\n", r.Item.ID, r.Project.ID())
			})
		}),
	}

	cmd.Flags().StringVar(&title, "title", "", "Item title")
	cmd.Flags().StringVar(&description, "description", "", "Item description")
	cmd.Flags().StringVar(&contributor, "contributor", "", "Contributor id")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newItemDoneCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "done <project-id> <item-id>",
		Short: "Mark a to-do item done",
		Args:  cobra.ExactArgs(2),
		RunE: s.run(func(cmd *cobra.Command, args []string) error {
			res := s.svc.CompleteItem(cmd.Context(), ports.CompleteItemCommand{ProjectID: args[0], ItemID: args[1]})
			return printResult(s, cmd, res, func(r ports.ItemResult) (any, string) {
				var b strings.Builder
				fmt.Fprintf(&b, "Completed item %s\n", r.Item.ID)
				if r.Project.Status() == project.StatusComplete {
					fmt.Fprintf(&b, "Project %s is complete\n", r.Project.ID())
				}
				return dto.ToProjectResponse(r.Project), b.String()
			})
		}),
	}
}

func newItemAssignCmd(s *session) *cobra.Command {
	var contributor string

	cmd := &cobra.Command{
		Use:   "assign <project-id> <item-id>",
		Short: "Assign a contributor to a to-do item",
		Args:  cobra.ExactArgs(2),
		RunE: s.run(func(cmd *cobra.Command, args []string) error {
			res := s.svc.AssignContributor(cmd.Context(), ports.AssignContributorCommand{
				ProjectID:     args[0],
				ItemID:        args[1],
				ContributorID: contributor,
			})
			return printResult(s, cmd, res, func(r ports.ItemResult) (any, string) {
				return dto.ToItemResponse(r.Item), fmt.Sprintf("Assigned %s to item %s\n", contributor, r.Item.ID)
			})
		}),
	}

	cmd.Flags().StringVar(&contributor, "contributor", "", "Contributor id")
	_ = cmd.MarkFlagRequired("contributor")

	return cmd
}
