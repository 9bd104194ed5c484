package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/spf13/cobra"
)

// NewSDKCommand creates the sdk command group.
func NewSDKCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sdk",
		Short: "Show SDK configuration",
		Long:  "Show the frontend and mobile SDK configuration of an environment",
	}

	cmd.AddCommand(newSDKGetCommand())

	return cmd
}

func newSDKGetCommand() *cobra.Command {
	var (
		scope    environmentFlags
		vertical string
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the SDK configuration",
		Long:  "Show the SDK configuration. Use --output yaml or json for the full configuration.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			switch mgmt.Vertical(strings.ToUpper(vertical)) {
			case mgmt.VerticalConsumer:
				resp, err := client.SDK().GetConsumerConfig(cmd.Context(), scope.request())
				if err != nil {
					return err
				}

				return writeOutput(cmd, resp, func(w io.Writer) error {
					return renderProperties(w, "Consumer SDK", consumerSDKRows(&resp.Config))
				})
			case mgmt.VerticalB2B:
				resp, err := client.SDK().GetB2BConfig(cmd.Context(), scope.request())
				if err != nil {
					return err
				}

				return writeOutput(cmd, resp, func(w io.Writer) error {
					return renderProperties(w, "B2B SDK", b2bSDKRows(&resp.Config))
				})
			default:
				return fmt.Errorf("%w: %s", constants.ErrInvalidVertical, vertical)
			}
		},
	}

	scope.register(cmd)
	cmd.Flags().StringVar(&vertical, "vertical", "consumer", "project vertical (consumer, b2b)")

	return cmd
}

func consumerSDKRows(config *mgmt.ConsumerConfig) [][]string {
	var rows [][]string

	if basic := config.Basic; basic != nil {
		rows = append(rows,
			[]string{"Enabled", formatBool(basic.Enabled)},
			[]string{"Domains", joinOrNone(basic.Domains)},
			[]string{"Bundle IDs", joinOrNone(basic.BundleIDs)},
		)
	}

	rows = append(rows, sessionRows(config.Sessions)...)

	if config.MagicLinks != nil {
		rows = append(rows, []string{"Magic Links", formatBool(config.MagicLinks.LoginOrCreateEnabled || config.MagicLinks.SendEnabled)})
	}

	rows = appendPKCERow(rows, "OAuth", config.OAuth)

	if config.Passwords != nil {
		rows = append(rows, []string{"Passwords", formatBool(config.Passwords.Enabled)})
	}

	return append(rows, cookieAndDFPPARows(config.Cookies, config.DFPPA)...)
}

func b2bSDKRows(config *mgmt.B2BConfig) [][]string {
	var rows [][]string

	if basic := config.Basic; basic != nil {
		domains := make([]string, 0, len(basic.Domains))
		for _, domain := range basic.Domains {
			domains = append(domains, domain.Domain)
		}

		rows = append(rows,
			[]string{"Enabled", formatBool(basic.Enabled)},
			[]string{"Self Onboarding", formatBool(basic.AllowSelfOnboarding)},
			[]string{"Member Permissions", formatBool(basic.EnableMemberPermissions)},
			[]string{"Domains", joinOrNone(domains)},
			[]string{"Bundle IDs", joinOrNone(basic.BundleIDs)},
		)
	}

	rows = append(rows, sessionRows(config.Sessions)...)
	rows = appendPKCERow(rows, "Magic Links", config.MagicLinks)
	rows = appendPKCERow(rows, "OAuth", config.OAuth)
	rows = appendPKCERow(rows, "SSO", config.SSO)

	if config.Passwords != nil {
		rows = append(rows, []string{"Passwords", formatBool(config.Passwords.Enabled)})
	}

	return append(rows, cookieAndDFPPARows(config.Cookies, config.DFPPA)...)
}

func sessionRows(sessions *mgmt.SDKSessionsConfig) [][]string {
	if sessions == nil {
		return nil
	}

	return [][]string{{"Max Session Minutes", strconv.Itoa(sessions.MaxSessionDurationMinutes)}}
}

func appendPKCERow(rows [][]string, name string, config *mgmt.SDKPKCEConfig) [][]string {
	if config == nil {
		return rows
	}

	value := formatBool(config.Enabled)
	if config.PKCERequired {
		value += " (PKCE required)"
	}

	return append(rows, []string{name, value})
}

func cookieAndDFPPARows(cookies *mgmt.SDKCookiesConfig, dfppa *mgmt.SDKDFPPAConfig) [][]string {
	var rows [][]string

	if cookies != nil {
		rows = append(rows, []string{"HttpOnly Cookies", string(cookies.HTTPOnly)})
	}

	if dfppa != nil {
		rows = append(rows, []string{"DFPPA", fmt.Sprintf("%s (on challenge: %s)", dfppa.Enabled, orNotAvailable(string(dfppa.OnChallenge)))})
	}

	return rows
}
