package commands

import (
	"io"
	"strings"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/spf13/cobra"
)

// NewPasswordStrengthCommand creates the password-strength command group.
func NewPasswordStrengthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "password-strength",
		Aliases: []string{"passwords"},
		Short:   "Manage the password strength policy",
		Long:    "Show and change the password strength policy of an environment",
	}

	cmd.AddCommand(newPasswordStrengthGetCommand())
	cmd.AddCommand(newPasswordStrengthSetCommand())

	return cmd
}

func newPasswordStrengthGetCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the password strength policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.PasswordStrengthConfig().Get(cmd.Context(), scope.request())
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderPasswordStrength(w, &resp.PasswordStrengthConfig)
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func newPasswordStrengthSetCommand() *cobra.Command {
	var (
		scope                       environmentFlags
		policy                      string
		checkBreachOnCreation       bool
		checkBreachOnAuthentication bool
		validateOnAuthentication    bool
		ludsMinLength               int
		ludsMinComplexity           int
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the password strength policy",
		Long: `Change the password strength policy. The current policy is read first
and only the settings given as flags are changed before it is written back.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !anyChanged(cmd, "policy", "check-breach-on-creation", "check-breach-on-authentication",
				"validate-on-authentication", "luds-min-length", "luds-min-complexity") {
				return constants.ErrNoUpdateFields
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			current, err := client.PasswordStrengthConfig().Get(cmd.Context(), scope.request())
			if err != nil {
				return err
			}

			config := current.PasswordStrengthConfig

			if cmd.Flags().Changed("policy") {
				config.ValidationPolicy = parseValidationPolicy(policy)
			}

			if value := changedBool(cmd, "check-breach-on-creation", checkBreachOnCreation); value != nil {
				config.CheckBreachOnCreation = *value
			}

			if value := changedBool(cmd, "check-breach-on-authentication", checkBreachOnAuthentication); value != nil {
				config.CheckBreachOnAuthentication = *value
			}

			if value := changedBool(cmd, "validate-on-authentication", validateOnAuthentication); value != nil {
				config.ValidateOnAuthentication = *value
			}

			if value := changedInt(cmd, "luds-min-length", ludsMinLength); value != nil {
				config.LUDSMinPasswordLength = value
			}

			if value := changedInt(cmd, "luds-min-complexity", ludsMinComplexity); value != nil {
				config.LUDSMinPasswordComplexity = value
			}

			resp, err := client.PasswordStrengthConfig().Set(cmd.Context(), &mgmt.SetPasswordStrengthConfigRequest{
				ProjectSlug:            scope.projectSlug(),
				EnvironmentSlug:        scope.environmentSlug(),
				PasswordStrengthConfig: config,
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderPasswordStrength(w, &resp.PasswordStrengthConfig)
			})
		},
	}

	scope.register(cmd)
	cmd.Flags().StringVar(&policy, "policy", "", "validation policy (luds, zxcvbn)")
	cmd.Flags().BoolVar(&checkBreachOnCreation, "check-breach-on-creation", false, "check new passwords against known breaches")
	cmd.Flags().BoolVar(&checkBreachOnAuthentication, "check-breach-on-authentication", false, "check passwords against known breaches on login")
	cmd.Flags().BoolVar(&validateOnAuthentication, "validate-on-authentication", false, "require a reset when a password no longer meets the policy")
	cmd.Flags().IntVar(&ludsMinLength, "luds-min-length", 0, "minimum password length under the LUDS policy")
	cmd.Flags().IntVar(&ludsMinComplexity, "luds-min-complexity", 0, "minimum password complexity under the LUDS policy")

	return cmd
}

// parseValidationPolicy accepts luds and zxcvbn as short forms.
func parseValidationPolicy(value string) mgmt.ValidationPolicy {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "LUDS":
		return mgmt.ValidationPolicyLUDS
	case "ZXCVBN":
		return mgmt.ValidationPolicyZXCVBN
	default:
		return mgmt.ValidationPolicy(value)
	}
}

func renderPasswordStrength(w io.Writer, config *mgmt.PasswordStrengthConfig) error {
	return renderProperties(w, "", [][]string{
		{"Validation Policy", string(config.ValidationPolicy)},
		{"Check Breach On Creation", formatBool(config.CheckBreachOnCreation)},
		{"Check Breach On Authentication", formatBool(config.CheckBreachOnAuthentication)},
		{"Validate On Authentication", formatBool(config.ValidateOnAuthentication)},
		{"LUDS Min Length", formatIntPtr(config.LUDSMinPasswordLength)},
		{"LUDS Min Complexity", formatIntPtr(config.LUDSMinPasswordComplexity)},
	})
}
