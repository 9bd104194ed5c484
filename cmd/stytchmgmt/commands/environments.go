package commands

import (
	"io"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/spf13/cobra"
)

// Environment setting flags shared by create and update.
const (
	flagCrossOrgPasswords   = "cross-org-passwords"
	flagUserImpersonation   = "user-impersonation"
	flagZeroDowntimeURL     = "zero-downtime-session-migration-url"
	flagUserLockSelfServe   = "user-lock-self-serve"
	flagUserLockThreshold   = "user-lock-threshold"
	flagUserLockTTL         = "user-lock-ttl"
	flagIDPAuthorizationURL = "idp-authorization-url"
	flagIDPDynamicClientReg = "idp-dynamic-client-registration"
)

// NewEnvironmentsCommand creates the environments command group.
func NewEnvironmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "environments",
		Aliases: []string{"environment", "envs", "env"},
		Short:   "Manage environments",
		Long:    "List, create, update and delete the environments of a project",
	}

	cmd.AddCommand(newEnvironmentsListCommand())
	cmd.AddCommand(newEnvironmentsGetCommand())
	cmd.AddCommand(newEnvironmentsCreateCommand())
	cmd.AddCommand(newEnvironmentsUpdateCommand())
	cmd.AddCommand(newEnvironmentsDeleteCommand())
	cmd.AddCommand(newEnvironmentsMetricsCommand())

	return cmd
}

// environmentSettingsFlags holds the values of the environment setting flags.
type environmentSettingsFlags struct {
	crossOrgPasswords   bool
	userImpersonation   bool
	zeroDowntimeURL     string
	userLockSelfServe   bool
	userLockThreshold   int
	userLockTTL         int
	idpAuthorizationURL string
	idpDynamicClientReg bool
}

func (f *environmentSettingsFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.crossOrgPasswords, flagCrossOrgPasswords, false, "allow passwords to be shared across organizations")
	cmd.Flags().BoolVar(&f.userImpersonation, flagUserImpersonation, false, "enable user impersonation")
	cmd.Flags().StringVar(&f.zeroDowntimeURL, flagZeroDowntimeURL, "", "zero downtime session migration URL")
	cmd.Flags().BoolVar(&f.userLockSelfServe, flagUserLockSelfServe, false, "send locked out users an unlock magic link")
	cmd.Flags().IntVar(&f.userLockThreshold, flagUserLockThreshold, 0, "failed attempts before a user is locked")
	cmd.Flags().IntVar(&f.userLockTTL, flagUserLockTTL, 0, "lock duration in seconds")
	cmd.Flags().StringVar(&f.idpAuthorizationURL, flagIDPAuthorizationURL, "", "IdP authorization URL")
	cmd.Flags().BoolVar(&f.idpDynamicClientReg, flagIDPDynamicClientReg, false, "enable dynamic client registration")
}

func (f *environmentSettingsFlags) names() []string {
	return []string{
		flagCrossOrgPasswords,
		flagUserImpersonation,
		flagZeroDowntimeURL,
		flagUserLockSelfServe,
		flagUserLockThreshold,
		flagUserLockTTL,
		flagIDPAuthorizationURL,
		flagIDPDynamicClientReg,
	}
}

// settings returns only the settings whose flags were set.
func (f *environmentSettingsFlags) settings(cmd *cobra.Command) mgmt.EnvironmentSettings {
	return mgmt.EnvironmentSettings{
		CrossOrgPasswordsEnabled:            changedBool(cmd, flagCrossOrgPasswords, f.crossOrgPasswords),
		UserImpersonationEnabled:            changedBool(cmd, flagUserImpersonation, f.userImpersonation),
		ZeroDowntimeSessionMigrationURL:     changedString(cmd, flagZeroDowntimeURL, f.zeroDowntimeURL),
		UserLockSelfServeEnabled:            changedBool(cmd, flagUserLockSelfServe, f.userLockSelfServe),
		UserLockThreshold:                   changedInt(cmd, flagUserLockThreshold, f.userLockThreshold),
		UserLockTTL:                         changedInt(cmd, flagUserLockTTL, f.userLockTTL),
		IDPAuthorizationURL:                 changedString(cmd, flagIDPAuthorizationURL, f.idpAuthorizationURL),
		IDPDynamicClientRegistrationEnabled: changedBool(cmd, flagIDPDynamicClientReg, f.idpDynamicClientReg),
	}
}

func newEnvironmentsListCommand() *cobra.Command {
	var scope projectFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the environments of a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Environments().GetAll(cmd.Context(), &mgmt.GetAllEnvironmentsRequest{
				ProjectSlug: scope.projectSlug(),
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				rows := make([][]string, 0, len(resp.Environments))
				for _, env := range resp.Environments {
					rows = append(rows, []string{env.EnvironmentSlug, env.Name, string(env.Type), env.CreatedAt})
				}

				return renderList(w, []string{"Slug", "Name", "Type", "Created"}, rows, "No environments found")
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func newEnvironmentsGetCommand() *cobra.Command {
	var scope projectFlags

	cmd := &cobra.Command{
		Use:   "get ENVIRONMENT_SLUG",
		Short: "Get environment details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Environments().Get(cmd.Context(), &mgmt.EnvironmentRequest{
				ProjectSlug:     scope.projectSlug(),
				EnvironmentSlug: args[0],
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderEnvironment(w, &resp.Environment)
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func newEnvironmentsCreateCommand() *cobra.Command {
	var (
		scope    projectFlags
		settings environmentSettingsFlags
		envType  string
		slug     string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an environment",
		Long:  "Create an environment in a project. A live environment must exist before a test environment can be created.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Environments().Create(cmd.Context(), &mgmt.CreateEnvironmentRequest{
				ProjectSlug:         scope.projectSlug(),
				Name:                args[0],
				Type:                mgmt.EnvironmentType(strings.ToUpper(envType)),
				EnvironmentSlug:     slug,
				EnvironmentSettings: settings.settings(cmd),
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderEnvironment(w, &resp.Environment)
			})
		},
	}

	scope.register(cmd)
	settings.register(cmd)
	cmd.Flags().StringVar(&envType, "type", string(mgmt.EnvironmentTypeTest), "environment type (live, test)")
	cmd.Flags().StringVar(&slug, "slug", "", "environment slug (assigned by the server when empty)")

	return cmd
}

func newEnvironmentsUpdateCommand() *cobra.Command {
	var (
		scope    projectFlags
		settings environmentSettingsFlags
		name     string
	)

	cmd := &cobra.Command{
		Use:   "update ENVIRONMENT_SLUG",
		Short: "Update an environment",
		Long:  "Update an environment. Only the settings given as flags are changed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !anyChanged(cmd, append(settings.names(), "name")...) {
				return constants.ErrNoUpdateFields
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Environments().Update(cmd.Context(), &mgmt.UpdateEnvironmentRequest{
				ProjectSlug:         scope.projectSlug(),
				EnvironmentSlug:     args[0],
				Name:                changedString(cmd, "name", name),
				EnvironmentSettings: settings.settings(cmd),
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderEnvironment(w, &resp.Environment)
			})
		},
	}

	scope.register(cmd)
	settings.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "new environment name")

	return cmd
}

func newEnvironmentsDeleteCommand() *cobra.Command {
	var scope projectFlags

	cmd := &cobra.Command{
		Use:   "delete ENVIRONMENT_SLUG",
		Short: "Delete an environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Environments().Delete(cmd.Context(), &mgmt.EnvironmentRequest{
				ProjectSlug:     scope.projectSlug(),
				EnvironmentSlug: args[0],
			})
			if err != nil {
				return err
			}

			return writeAction(cmd, resp, "deleted", "environment", args[0])
		},
	}

	scope.register(cmd)

	return cmd
}

func newEnvironmentsMetricsCommand() *cobra.Command {
	var scope projectFlags

	cmd := &cobra.Command{
		Use:   "metrics ENVIRONMENT_SLUG",
		Short: "Show user, organization, member and M2M client counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Environments().GetMetrics(cmd.Context(), &mgmt.EnvironmentRequest{
				ProjectSlug:     scope.projectSlug(),
				EnvironmentSlug: args[0],
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderProperties(w, "Metrics: "+args[0], [][]string{
					{"Users", strconv.Itoa(resp.Metrics.UserCount)},
					{"Organizations", strconv.Itoa(resp.Metrics.OrganizationCount)},
					{"Members", strconv.Itoa(resp.Metrics.MemberCount)},
					{"M2M Clients", strconv.Itoa(resp.Metrics.M2MClientCount)},
				})
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func renderEnvironment(w io.Writer, env *mgmt.Environment) error {
	return renderProperties(w, "Environment: "+env.Name, [][]string{
		{"Slug", env.EnvironmentSlug},
		{"Project", env.ProjectSlug},
		{"Name", env.Name},
		{"Type", string(env.Type)},
		{"OAuth Callback ID", orNotAvailable(env.OAuthCallbackID)},
		{"Cross Org Passwords", formatBool(env.CrossOrgPasswordsEnabled)},
		{"User Impersonation", formatBool(env.UserImpersonationEnabled)},
		{"Session Migration URL", orNotAvailable(env.ZeroDowntimeSessionMigrationURL)},
		{"User Lock Self Serve", formatBool(env.UserLockSelfServeEnabled)},
		{"User Lock Threshold", strconv.Itoa(env.UserLockThreshold)},
		{"User Lock TTL", strconv.Itoa(env.UserLockTTL)},
		{"IdP Authorization URL", orNotAvailable(env.IDPAuthorizationURL)},
		{"IdP Dynamic Client Registration", formatBool(env.IDPDynamicClientRegistrationEnabled)},
		{"Created", orNotAvailable(env.CreatedAt)},
	})
}
