package commands

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

// NewRBACPolicyCommand creates the rbac-policy command group.
func NewRBACPolicyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rbac-policy",
		Aliases: []string{"rbac"},
		Short:   "Show the RBAC policy",
		Long:    "Show the role-based access control policy of an environment",
	}

	cmd.AddCommand(newRBACPolicyGetCommand())

	return cmd
}

func newRBACPolicyGetCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the RBAC policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.RBACPolicy().Get(cmd.Context(), scope.request())
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				policy := &resp.Policy

				rows := make([][]string, 0, len(policy.StytchResources)+len(policy.CustomResources))
				for _, resource := range policy.StytchResources {
					rows = append(rows, []string{"stytch", resource.ResourceID, joinOrNone(resource.AvailableActions)})
				}

				for _, resource := range policy.CustomResources {
					rows = append(rows, []string{"custom", resource.ResourceID, joinOrNone(resource.AvailableActions)})
				}

				err := renderList(w, []string{"Kind", "Resource", "Actions"}, rows, "No resources defined")
				if err != nil {
					return err
				}

				roles := make([][]string, 0, len(policy.CustomRoles))
				for _, role := range policy.CustomRoles {
					roles = append(roles, []string{role.RoleID, role.Description, strconv.Itoa(len(role.Permissions))})
				}

				_, _ = io.WriteString(w, "\n")

				err = renderList(w, []string{"Role", "Description", "Permissions"}, roles, "No custom roles defined")
				if err != nil {
					return err
				}

				scopes := make([][]string, 0, len(policy.CustomScopes))
				for _, customScope := range policy.CustomScopes {
					scopes = append(scopes, []string{customScope.Scope, customScope.Description, strconv.Itoa(len(customScope.Permissions))})
				}

				_, _ = io.WriteString(w, "\n")

				return renderList(w, []string{"Scope", "Description", "Permissions"}, scopes, "No custom scopes defined")
			})
		},
	}

	scope.register(cmd)

	return cmd
}
