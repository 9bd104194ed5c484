package commands

import (
	"io"
	"strings"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/spf13/cobra"
)

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage projects",
		Long:    "List, create, update and delete projects in the workspace",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	cmd.AddCommand(newProjectsCreateCommand())
	cmd.AddCommand(newProjectsUpdateCommand())
	cmd.AddCommand(newProjectsDeleteCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Projects().GetAll(cmd.Context())
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				rows := make([][]string, 0, len(resp.Projects))
				for _, project := range resp.Projects {
					rows = append(rows, []string{project.ProjectSlug, project.Name, string(project.Vertical), project.CreatedAt})
				}

				return renderList(w, []string{"Slug", "Name", "Vertical", "Created"}, rows, "No projects found")
			})
		},
	}
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_SLUG",
		Short: "Get project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Projects().Get(cmd.Context(), &mgmt.GetProjectRequest{ProjectSlug: args[0]})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderProject(w, &resp.Project)
			})
		},
	}
}

func newProjectsCreateCommand() *cobra.Command {
	var vertical, slug string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a project",
		Long:  "Create a project together with its live and test environments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verticalValue, err := parseVertical(vertical)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Projects().Create(cmd.Context(), &mgmt.CreateProjectRequest{
				Name:        args[0],
				Vertical:    verticalValue,
				ProjectSlug: slug,
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderProject(w, &resp.Project)
			})
		},
	}

	cmd.Flags().StringVar(&vertical, "vertical", string(mgmt.VerticalB2B), "project vertical (consumer, b2b)")
	cmd.Flags().StringVar(&slug, "slug", "", "project slug (assigned by the server when empty)")

	return cmd
}

func newProjectsUpdateCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "update PROJECT_SLUG",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !anyChanged(cmd, "name") {
				return constants.ErrNoUpdateFields
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Projects().Update(cmd.Context(), &mgmt.UpdateProjectRequest{
				ProjectSlug: args[0],
				Name:        changedString(cmd, "name", name),
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderProject(w, &resp.Project)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new project name")

	return cmd
}

func newProjectsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PROJECT_SLUG",
		Short: "Delete a project and all of its environments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Projects().Delete(cmd.Context(), &mgmt.DeleteProjectRequest{ProjectSlug: args[0]})
			if err != nil {
				return err
			}

			return writeAction(cmd, resp, "deleted", "project", args[0])
		},
	}
}

func renderProject(w io.Writer, project *mgmt.Project) error {
	return renderProperties(w, "Project: "+project.Name, [][]string{
		{"Slug", project.ProjectSlug},
		{"Name", project.Name},
		{"Vertical", string(project.Vertical)},
		{"Created", orNotAvailable(project.CreatedAt)},
	})
}

// parseVertical accepts the vertical case-insensitively. Values unknown to
// this client are passed through.
func parseVertical(value string) (mgmt.Vertical, error) {
	vertical := mgmt.Vertical(strings.ToUpper(strings.TrimSpace(value)))
	if vertical == "" {
		return "", constants.ErrInvalidVertical
	}

	return vertical, nil
}
