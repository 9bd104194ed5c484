package commands

import (
	"fmt"
	"io"

	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/spf13/cobra"
)

// NewSecretsCommand creates the secrets command group.
func NewSecretsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "secrets",
		Aliases: []string{"secret"},
		Short:   "Manage environment secrets",
		Long:    "List, create and delete the API secrets of an environment",
	}

	cmd.AddCommand(newSecretsListCommand())
	cmd.AddCommand(newSecretsGetCommand())
	cmd.AddCommand(newSecretsCreateCommand())
	cmd.AddCommand(newSecretsDeleteCommand())

	return cmd
}

func newSecretsListCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List secrets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Secrets().GetAll(cmd.Context(), scope.request())
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				rows := make([][]string, 0, len(resp.Secrets))
				for _, secret := range resp.Secrets {
					rows = append(rows, []string{secret.SecretID, "..." + secret.LastFour, secret.CreatedAt, orNotAvailable(secret.UsedAt)})
				}

				return renderList(w, []string{"Secret ID", "Secret", "Created", "Last Used"}, rows, "No secrets found")
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func newSecretsGetCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "get SECRET_ID",
		Short: "Get a masked secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Secrets().Get(cmd.Context(), &mgmt.SecretRequest{
				ProjectSlug:     scope.projectSlug(),
				EnvironmentSlug: scope.environmentSlug(),
				SecretID:        args[0],
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderProperties(w, "", [][]string{
					{"Secret ID", resp.Secret.SecretID},
					{"Last Four", resp.Secret.LastFour},
					{"Created", orNotAvailable(resp.Secret.CreatedAt)},
					{"Last Used", orNotAvailable(resp.Secret.UsedAt)},
				})
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func newSecretsCreateCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a secret",
		Long:  "Create a secret. The full value is printed once and cannot be read again.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Secrets().Create(cmd.Context(), scope.request())
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				err := renderProperties(w, "", [][]string{
					{"Secret ID", resp.Secret.SecretID},
					{"Secret", resp.Secret.Secret},
					{"Created", orNotAvailable(resp.Secret.CreatedAt)},
				})
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(w, "\nStore this secret now. It will not be shown again.")

				return err
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func newSecretsDeleteCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "delete SECRET_ID",
		Short: "Delete a secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Secrets().Delete(cmd.Context(), &mgmt.SecretRequest{
				ProjectSlug:     scope.projectSlug(),
				EnvironmentSlug: scope.environmentSlug(),
				SecretID:        args[0],
			})
			if err != nil {
				return err
			}

			return writeAction(cmd, resp, "deleted", "secret", args[0])
		},
	}

	scope.register(cmd)

	return cmd
}
