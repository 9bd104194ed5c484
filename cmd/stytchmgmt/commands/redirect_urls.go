package commands

import (
	"io"
	"slices"
	"strings"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/spf13/cobra"
)

// NewRedirectURLsCommand creates the redirect-urls command group.
func NewRedirectURLsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "redirect-urls",
		Aliases: []string{"redirect-url", "redirects"},
		Short:   "Manage redirect URLs",
		Long:    "List, create, update and delete the redirect URLs of an environment",
	}

	cmd.AddCommand(newRedirectURLsListCommand())
	cmd.AddCommand(newRedirectURLsGetCommand())
	cmd.AddCommand(newRedirectURLsCreateCommand())
	cmd.AddCommand(newRedirectURLsUpdateCommand())
	cmd.AddCommand(newRedirectURLsDeleteCommand())

	return cmd
}

// redirectURLTypeFlags builds the valid types of a redirect URL.
type redirectURLTypeFlags struct {
	types                []string
	defaults             []string
	doNotPromoteDefaults bool
}

func (f *redirectURLTypeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.types, "type", nil, "flow the URL is valid for (login, signup, invite, reset_password, discovery), repeatable")
	cmd.Flags().StringSliceVar(&f.defaults, "default", nil, "flow the URL is the default for, repeatable")
	cmd.Flags().BoolVar(&f.doNotPromoteDefaults, "do-not-promote-defaults", false, "do not promote the URL to a default")
}

// validTypes merges --type and --default. A type given only as --default is
// included as a default.
func (f *redirectURLTypeFlags) validTypes() []mgmt.URLType {
	var (
		result []mgmt.URLType
		seen   []mgmt.RedirectURLType
	)

	add := func(value string, isDefault bool) {
		urlType := mgmt.RedirectURLType(strings.ToUpper(strings.TrimSpace(value)))
		if urlType == "" {
			return
		}

		index := slices.Index(seen, urlType)
		if index >= 0 {
			result[index].IsDefault = result[index].IsDefault || isDefault

			return
		}

		seen = append(seen, urlType)
		result = append(result, mgmt.URLType{Type: urlType, IsDefault: isDefault})
	}

	for _, value := range f.types {
		add(value, false)
	}

	for _, value := range f.defaults {
		add(value, true)
	}

	return result
}

func newRedirectURLsListCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List redirect URLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.RedirectURLs().GetAll(cmd.Context(), scope.request())
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				rows := make([][]string, 0, len(resp.RedirectURLs))
				for _, redirectURL := range resp.RedirectURLs {
					rows = append(rows, []string{redirectURL.URL, formatURLTypes(redirectURL.ValidTypes)})
				}

				return renderList(w, []string{"URL", "Valid Types"}, rows, "No redirect URLs found")
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func newRedirectURLsGetCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "get URL",
		Short: "Get a redirect URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.RedirectURLs().Get(cmd.Context(), &mgmt.RedirectURLRequest{
				ProjectSlug:     scope.projectSlug(),
				EnvironmentSlug: scope.environmentSlug(),
				URL:             args[0],
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderRedirectURL(w, &resp.RedirectURL)
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func newRedirectURLsCreateCommand() *cobra.Command {
	var (
		scope environmentFlags
		types redirectURLTypeFlags
	)

	cmd := &cobra.Command{
		Use:   "create URL",
		Short: "Create a redirect URL",
		Long:  "Create a redirect URL. Creating an existing URL adds the given types to it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.RedirectURLs().Create(cmd.Context(), &mgmt.CreateRedirectURLRequest{
				ProjectSlug:          scope.projectSlug(),
				EnvironmentSlug:      scope.environmentSlug(),
				URL:                  args[0],
				ValidTypes:           types.validTypes(),
				DoNotPromoteDefaults: types.doNotPromoteDefaults,
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderRedirectURL(w, &resp.RedirectURL)
			})
		},
	}

	scope.register(cmd)
	types.register(cmd)

	return cmd
}

func newRedirectURLsUpdateCommand() *cobra.Command {
	var (
		scope environmentFlags
		types redirectURLTypeFlags
	)

	cmd := &cobra.Command{
		Use:   "update URL",
		Short: "Replace the valid types of a redirect URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !anyChanged(cmd, "type", "default") {
				return constants.ErrNoUpdateFields
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.RedirectURLs().Update(cmd.Context(), &mgmt.UpdateRedirectURLRequest{
				ProjectSlug:          scope.projectSlug(),
				EnvironmentSlug:      scope.environmentSlug(),
				URL:                  args[0],
				ValidTypes:           types.validTypes(),
				DoNotPromoteDefaults: types.doNotPromoteDefaults,
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderRedirectURL(w, &resp.RedirectURL)
			})
		},
	}

	scope.register(cmd)
	types.register(cmd)

	return cmd
}

func newRedirectURLsDeleteCommand() *cobra.Command {
	var (
		scope                environmentFlags
		doNotPromoteDefaults bool
	)

	cmd := &cobra.Command{
		Use:   "delete URL",
		Short: "Delete a redirect URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.RedirectURLs().Delete(cmd.Context(), &mgmt.DeleteRedirectURLRequest{
				ProjectSlug:          scope.projectSlug(),
				EnvironmentSlug:      scope.environmentSlug(),
				URL:                  args[0],
				DoNotPromoteDefaults: doNotPromoteDefaults,
			})
			if err != nil {
				return err
			}

			return writeAction(cmd, resp, "deleted", "redirect URL", args[0])
		},
	}

	scope.register(cmd)
	cmd.Flags().BoolVar(&doNotPromoteDefaults, "do-not-promote-defaults", false, "do not promote another URL to a default")

	return cmd
}

func renderRedirectURL(w io.Writer, redirectURL *mgmt.RedirectURL) error {
	return renderProperties(w, "", [][]string{
		{"URL", redirectURL.URL},
		{"Valid Types", formatURLTypes(redirectURL.ValidTypes)},
	})
}

func formatURLTypes(types []mgmt.URLType) string {
	values := make([]string, 0, len(types))

	for _, urlType := range types {
		value := string(urlType.Type)
		if urlType.IsDefault {
			value += " (default)"
		}

		values = append(values, value)
	}

	return joinOrNone(values)
}
