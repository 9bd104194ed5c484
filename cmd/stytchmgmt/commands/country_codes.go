package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/spf13/cobra"
)

// Messaging channels with a country code allowlist.
const (
	channelSMS      = "sms"
	channelWhatsApp = "whatsapp"
)

// NewCountryCodesCommand creates the country-codes command group.
func NewCountryCodesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "country-codes",
		Aliases: []string{"country-code-allowlist"},
		Short:   "Manage the country code allowlists",
		Long:    "Show and replace the countries that may receive SMS or WhatsApp messages",
	}

	cmd.AddCommand(newCountryCodesGetCommand())
	cmd.AddCommand(newCountryCodesSetCommand())

	return cmd
}

func newCountryCodesGetCommand() *cobra.Command {
	var (
		scope   environmentFlags
		channel string
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the allowed country codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			get, err := countryCodeGetter(channel)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := get(client.CountryCodeAllowlist())(cmd.Context(), scope.request())
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderCountryCodes(w, channel, resp.CountryCodes)
			})
		},
	}

	scope.register(cmd)
	cmd.Flags().StringVar(&channel, "channel", channelSMS, "messaging channel (sms, whatsapp)")

	return cmd
}

func newCountryCodesSetCommand() *cobra.Command {
	var (
		scope   environmentFlags
		channel string
	)

	cmd := &cobra.Command{
		Use:   "set COUNTRY_CODE...",
		Short: "Replace the allowed country codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := countryCodeSetter(channel)
			if err != nil {
				return err
			}

			codes := make([]string, 0, len(args))
			for _, arg := range args {
				codes = append(codes, strings.ToUpper(strings.TrimSpace(arg)))
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := set(client.CountryCodeAllowlist())(cmd.Context(), &mgmt.SetCountryCodesRequest{
				ProjectSlug:     scope.projectSlug(),
				EnvironmentSlug: scope.environmentSlug(),
				CountryCodes:    codes,
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderCountryCodes(w, channel, resp.CountryCodes)
			})
		},
	}

	scope.register(cmd)
	cmd.Flags().StringVar(&channel, "channel", channelSMS, "messaging channel (sms, whatsapp)")

	return cmd
}

type countryCodeGetFunc func(ctx context.Context, request *mgmt.EnvironmentRequest) (*mgmt.CountryCodesResponse, error)

type countryCodeSetFunc func(ctx context.Context, request *mgmt.SetCountryCodesRequest) (*mgmt.CountryCodesResponse, error)

func countryCodeGetter(channel string) (func(mgmt.CountryCodeAllowlistClient) countryCodeGetFunc, error) {
	switch strings.ToLower(channel) {
	case channelSMS:
		return func(c mgmt.CountryCodeAllowlistClient) countryCodeGetFunc { return c.GetAllowedSMSCountryCodes }, nil
	case channelWhatsApp:
		return func(c mgmt.CountryCodeAllowlistClient) countryCodeGetFunc { return c.GetAllowedWhatsAppCountryCodes }, nil
	default:
		return nil, fmt.Errorf("%w: %s", constants.ErrInvalidChannel, channel)
	}
}

func countryCodeSetter(channel string) (func(mgmt.CountryCodeAllowlistClient) countryCodeSetFunc, error) {
	switch strings.ToLower(channel) {
	case channelSMS:
		return func(c mgmt.CountryCodeAllowlistClient) countryCodeSetFunc { return c.SetAllowedSMSCountryCodes }, nil
	case channelWhatsApp:
		return func(c mgmt.CountryCodeAllowlistClient) countryCodeSetFunc { return c.SetAllowedWhatsAppCountryCodes }, nil
	default:
		return nil, fmt.Errorf("%w: %s", constants.ErrInvalidChannel, channel)
	}
}

func renderCountryCodes(w io.Writer, channel string, codes []string) error {
	return renderProperties(w, "", [][]string{
		{"Channel", strings.ToLower(channel)},
		{"Country Codes", joinOrNone(codes)},
	})
}
