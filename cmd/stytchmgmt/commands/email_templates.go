package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/spf13/cobra"
)

// NewEmailTemplatesCommand creates the email-templates command group.
func NewEmailTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "email-templates",
		Aliases: []string{"email-template"},
		Short:   "Manage email templates",
		Long:    "List and delete the email templates of a project and manage the default template per type",
	}

	cmd.AddCommand(newEmailTemplatesListCommand())
	cmd.AddCommand(newEmailTemplatesGetCommand())
	cmd.AddCommand(newEmailTemplatesDeleteCommand())
	cmd.AddCommand(newEmailTemplatesGetDefaultCommand())
	cmd.AddCommand(newEmailTemplatesSetDefaultCommand())
	cmd.AddCommand(newEmailTemplatesUnsetDefaultCommand())

	return cmd
}

func newEmailTemplatesListCommand() *cobra.Command {
	var scope projectFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List email templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.EmailTemplates().GetAll(cmd.Context(), &mgmt.GetAllEmailTemplatesRequest{
				ProjectSlug: scope.projectSlug(),
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				rows := make([][]string, 0, len(resp.EmailTemplates))
				for _, template := range resp.EmailTemplates {
					rows = append(rows, []string{template.TemplateID, template.Name, emailTemplateKind(&template)})
				}

				return renderList(w, []string{"Template ID", "Name", "Kind"}, rows, "No email templates found")
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func newEmailTemplatesGetCommand() *cobra.Command {
	var scope projectFlags

	cmd := &cobra.Command{
		Use:   "get TEMPLATE_ID",
		Short: "Get an email template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.EmailTemplates().Get(cmd.Context(), &mgmt.EmailTemplateRequest{
				ProjectSlug: scope.projectSlug(),
				TemplateID:  args[0],
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderEmailTemplate(w, &resp.EmailTemplate)
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func newEmailTemplatesDeleteCommand() *cobra.Command {
	var scope projectFlags

	cmd := &cobra.Command{
		Use:   "delete TEMPLATE_ID",
		Short: "Delete an email template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.EmailTemplates().Delete(cmd.Context(), &mgmt.EmailTemplateRequest{
				ProjectSlug: scope.projectSlug(),
				TemplateID:  args[0],
			})
			if err != nil {
				return err
			}

			return writeAction(cmd, resp, "deleted", "email template", args[0])
		},
	}

	scope.register(cmd)

	return cmd
}

func newEmailTemplatesGetDefaultCommand() *cobra.Command {
	var scope projectFlags

	cmd := &cobra.Command{
		Use:   "get-default TEMPLATE_TYPE",
		Short: "Show the default template for a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			templateType := parseEmailTemplateType(args[0])

			resp, err := client.EmailTemplates().GetDefault(cmd.Context(), &mgmt.DefaultEmailTemplateRequest{
				ProjectSlug:       scope.projectSlug(),
				EmailTemplateType: templateType,
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderProperties(w, "", [][]string{
					{"Template Type", string(templateType)},
					{"Default Template ID", orNotAvailable(resp.TemplateID)},
				})
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func newEmailTemplatesSetDefaultCommand() *cobra.Command {
	var scope projectFlags

	cmd := &cobra.Command{
		Use:   "set-default TEMPLATE_TYPE TEMPLATE_ID",
		Short: "Make a template the default for a type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			templateType := parseEmailTemplateType(args[0])

			resp, err := client.EmailTemplates().SetDefault(cmd.Context(), &mgmt.SetDefaultEmailTemplateRequest{
				ProjectSlug:       scope.projectSlug(),
				EmailTemplateType: templateType,
				TemplateID:        args[1],
			})
			if err != nil {
				return err
			}

			return writeAction(cmd, resp, "set default", string(templateType)+" template to", args[1])
		},
	}

	scope.register(cmd)

	return cmd
}

func newEmailTemplatesUnsetDefaultCommand() *cobra.Command {
	var scope projectFlags

	cmd := &cobra.Command{
		Use:   "unset-default TEMPLATE_TYPE",
		Short: "Remove the default template for a type",
		Long:  "Remove the default template for a type. The PREBUILT type cannot be unset.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			templateType := parseEmailTemplateType(args[0])

			resp, err := client.EmailTemplates().UnsetDefault(cmd.Context(), &mgmt.DefaultEmailTemplateRequest{
				ProjectSlug:       scope.projectSlug(),
				EmailTemplateType: templateType,
			})
			if err != nil {
				return err
			}

			return writeAction(cmd, resp, "unset default", "template for", string(templateType))
		},
	}

	scope.register(cmd)

	return cmd
}

func parseEmailTemplateType(value string) mgmt.EmailTemplateType {
	return mgmt.EmailTemplateType(strings.ToUpper(strings.TrimSpace(value)))
}

func emailTemplateKind(template *mgmt.EmailTemplate) string {
	switch {
	case template.CustomHTMLCustomization != nil:
		return "custom HTML"
	case template.PrebuiltCustomization != nil:
		return "prebuilt"
	default:
		return "unknown"
	}
}

func renderEmailTemplate(w io.Writer, template *mgmt.EmailTemplate) error {
	rows := [][]string{
		{"Template ID", template.TemplateID},
		{"Name", orNotAvailable(template.Name)},
		{"Kind", emailTemplateKind(template)},
	}

	if sender := template.SenderInformation; sender != nil {
		rows = append(rows,
			[]string{"From", fmt.Sprintf("%s <%s@%s>", sender.FromName, sender.FromLocalPart, sender.FromDomain)},
			[]string{"Reply To", fmt.Sprintf("%s <%s>", sender.ReplyToName, sender.ReplyToLocalPart)},
		)
	}

	if custom := template.CustomHTMLCustomization; custom != nil {
		rows = append(rows,
			[]string{"Template Type", string(custom.TemplateType)},
			[]string{"Subject", custom.Subject},
		)
	}

	if prebuilt := template.PrebuiltCustomization; prebuilt != nil {
		rows = append(rows,
			[]string{"Button Color", orNotAvailable(prebuilt.ButtonColor)},
			[]string{"Font Family", orNotAvailable(string(prebuilt.FontFamily))},
			[]string{"Text Alignment", orNotAvailable(string(prebuilt.TextAlignment))},
		)
	}

	return renderProperties(w, "", rows)
}
