package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/spf13/cobra"
)

// NewJWTTemplatesCommand creates the jwt-templates command group.
func NewJWTTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "jwt-templates",
		Aliases: []string{"jwt-template", "jwt"},
		Short:   "Manage JWT templates",
		Long:    "Show and replace the session and M2M JWT templates of an environment",
	}

	cmd.AddCommand(newJWTTemplatesGetCommand())
	cmd.AddCommand(newJWTTemplatesSetCommand())

	return cmd
}

func newJWTTemplatesGetCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "get TEMPLATE_TYPE",
		Short: "Show a JWT template (session, m2m)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.JWTTemplates().Get(cmd.Context(), &mgmt.GetJWTTemplateRequest{
				ProjectSlug:     scope.projectSlug(),
				EnvironmentSlug: scope.environmentSlug(),
				JWTTemplateType: parseJWTTemplateType(args[0]),
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderJWTTemplate(w, &resp.JWTTemplate)
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func newJWTTemplatesSetCommand() *cobra.Command {
	var (
		scope       environmentFlags
		content     string
		contentFile string
		audience    string
	)

	cmd := &cobra.Command{
		Use:   "set TEMPLATE_TYPE",
		Short: "Replace a JWT template (session, m2m)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateContent, err := readContent(content, contentFile)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.JWTTemplates().Set(cmd.Context(), &mgmt.SetJWTTemplateRequest{
				ProjectSlug:     scope.projectSlug(),
				EnvironmentSlug: scope.environmentSlug(),
				JWTTemplateType: parseJWTTemplateType(args[0]),
				TemplateContent: templateContent,
				CustomAudience:  audience,
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderJWTTemplate(w, &resp.JWTTemplate)
			})
		},
	}

	scope.register(cmd)
	cmd.Flags().StringVar(&content, "content", "", "template content")
	cmd.Flags().StringVar(&contentFile, "content-file", "", "read the template content from a file")
	cmd.Flags().StringVar(&audience, "audience", "", "custom audience")

	return cmd
}

// readContent returns inline content or the contents of file. Exactly one
// of them must be given.
func readContent(content, file string) (string, error) {
	switch {
	case content != "" && file != "":
		return "", fmt.Errorf("%w: --content and --content-file", constants.ErrConflictingFlags)
	case file != "":
		// #nosec G304
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read template file: %w", err)
		}

		return string(data), nil
	case content != "":
		return content, nil
	default:
		return "", constants.ErrTemplateContentRequired
	}
}

func parseJWTTemplateType(value string) mgmt.JWTTemplateType {
	return mgmt.JWTTemplateType(strings.ToUpper(strings.TrimSpace(value)))
}

func renderJWTTemplate(w io.Writer, template *mgmt.JWTTemplate) error {
	return renderProperties(w, "", [][]string{
		{"Type", string(template.JWTTemplateType)},
		{"Custom Audience", orNotAvailable(template.CustomAudience)},
		{"Content", template.TemplateContent},
	})
}
