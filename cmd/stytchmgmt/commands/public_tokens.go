package commands

import (
	"io"

	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/spf13/cobra"
)

// NewPublicTokensCommand creates the public-tokens command group.
func NewPublicTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "public-tokens",
		Aliases: []string{"public-token", "tokens"},
		Short:   "Manage public tokens",
		Long:    "List, create and delete the public tokens used by client-side SDKs",
	}

	cmd.AddCommand(newPublicTokensListCommand())
	cmd.AddCommand(newPublicTokensGetCommand())
	cmd.AddCommand(newPublicTokensCreateCommand())
	cmd.AddCommand(newPublicTokensDeleteCommand())

	return cmd
}

func newPublicTokensListCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List public tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.PublicTokens().GetAll(cmd.Context(), scope.request())
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				rows := make([][]string, 0, len(resp.PublicTokens))
				for _, token := range resp.PublicTokens {
					rows = append(rows, []string{token.PublicToken, orNotAvailable(token.CreatedAt)})
				}

				return renderList(w, []string{"Public Token", "Created"}, rows, "No public tokens found")
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func newPublicTokensGetCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "get PUBLIC_TOKEN",
		Short: "Get a public token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.PublicTokens().Get(cmd.Context(), &mgmt.PublicTokenRequest{
				ProjectSlug:     scope.projectSlug(),
				EnvironmentSlug: scope.environmentSlug(),
				PublicToken:     args[0],
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderPublicToken(w, &resp.PublicToken)
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func newPublicTokensCreateCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a public token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.PublicTokens().Create(cmd.Context(), scope.request())
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderPublicToken(w, &resp.PublicToken)
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func newPublicTokensDeleteCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "delete PUBLIC_TOKEN",
		Short: "Delete a public token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.PublicTokens().Delete(cmd.Context(), &mgmt.PublicTokenRequest{
				ProjectSlug:     scope.projectSlug(),
				EnvironmentSlug: scope.environmentSlug(),
				PublicToken:     args[0],
			})
			if err != nil {
				return err
			}

			return writeAction(cmd, resp, "deleted", "public token", args[0])
		},
	}

	scope.register(cmd)

	return cmd
}

func renderPublicToken(w io.Writer, token *mgmt.PublicToken) error {
	return renderProperties(w, "", [][]string{
		{"Public Token", token.PublicToken},
		{"Created", orNotAvailable(token.CreatedAt)},
	})
}
