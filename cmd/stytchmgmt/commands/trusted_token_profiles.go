package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/spf13/cobra"
)

// NewTrustedTokenProfilesCommand creates the trusted-token-profiles command group.
func NewTrustedTokenProfilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "trusted-token-profiles",
		Aliases: []string{"trusted-token-profile", "ttp"},
		Short:   "Manage trusted token profiles",
		Long:    "List and delete trusted token profiles and manage their PEM files",
	}

	cmd.AddCommand(newTrustedTokenProfilesListCommand())
	cmd.AddCommand(newTrustedTokenProfilesGetCommand())
	cmd.AddCommand(newTrustedTokenProfilesDeleteCommand())
	cmd.AddCommand(newTrustedTokenProfilesGetPEMCommand())
	cmd.AddCommand(newTrustedTokenProfilesCreatePEMCommand())
	cmd.AddCommand(newTrustedTokenProfilesDeletePEMCommand())

	return cmd
}

func newTrustedTokenProfilesListCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trusted token profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.TrustedTokenProfiles().GetAll(cmd.Context(), scope.request())
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				rows := make([][]string, 0, len(resp.Profiles))
				for _, profile := range resp.Profiles {
					rows = append(rows, []string{profile.ProfileID, profile.Name, profile.Issuer, profile.Audience, string(profile.PublicKeyType)})
				}

				return renderList(w, []string{"Profile ID", "Name", "Issuer", "Audience", "Key Type"}, rows, "No trusted token profiles found")
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func newTrustedTokenProfilesGetCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "get PROFILE_ID",
		Short: "Get a trusted token profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.TrustedTokenProfiles().Get(cmd.Context(), &mgmt.TrustedTokenProfileRequest{
				ProjectSlug:     scope.projectSlug(),
				EnvironmentSlug: scope.environmentSlug(),
				ProfileID:       args[0],
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				profile := &resp.Profile

				pemFiles := make([]string, 0, len(profile.PEMFiles))
				for _, pemFile := range profile.PEMFiles {
					pemFiles = append(pemFiles, pemFile.PEMFileID)
				}

				return renderProperties(w, "Trusted Token Profile: "+profile.Name, [][]string{
					{"Profile ID", profile.ProfileID},
					{"Name", profile.Name},
					{"Issuer", profile.Issuer},
					{"Audience", profile.Audience},
					{"Key Type", string(profile.PublicKeyType)},
					{"JWKS URL", orNotAvailable(profile.JWKSURL)},
					{"JIT Provisioning", formatBool(profile.CanJITProvision)},
					{"Attribute Mappings", strconv.Itoa(len(profile.AttributeMapping))},
					{"PEM Files", joinOrNone(pemFiles)},
				})
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func newTrustedTokenProfilesDeleteCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "delete PROFILE_ID",
		Short: "Delete a trusted token profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.TrustedTokenProfiles().Delete(cmd.Context(), &mgmt.TrustedTokenProfileRequest{
				ProjectSlug:     scope.projectSlug(),
				EnvironmentSlug: scope.environmentSlug(),
				ProfileID:       args[0],
			})
			if err != nil {
				return err
			}

			return writeAction(cmd, resp, "deleted", "trusted token profile", args[0])
		},
	}

	scope.register(cmd)

	return cmd
}

func newTrustedTokenProfilesGetPEMCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "get-pem PROFILE_ID PEM_FILE_ID",
		Short: "Get a PEM file of a profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.TrustedTokenProfiles().GetPEMFile(cmd.Context(), &mgmt.PEMFileRequest{
				ProjectSlug:     scope.projectSlug(),
				EnvironmentSlug: scope.environmentSlug(),
				ProfileID:       args[0],
				PEMFileID:       args[1],
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderPEMFile(w, &resp.PEMFile)
			})
		},
	}

	scope.register(cmd)

	return cmd
}

func newTrustedTokenProfilesCreatePEMCommand() *cobra.Command {
	var (
		scope     environmentFlags
		publicKey string
		file      string
	)

	cmd := &cobra.Command{
		Use:   "create-pem PROFILE_ID",
		Short: "Attach a PEM encoded public key to a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := readPublicKey(publicKey, file)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.TrustedTokenProfiles().CreatePEMFile(cmd.Context(), &mgmt.CreatePEMFileRequest{
				ProjectSlug:     scope.projectSlug(),
				EnvironmentSlug: scope.environmentSlug(),
				ProfileID:       args[0],
				PublicKey:       key,
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				return renderPEMFile(w, &resp.PEMFile)
			})
		},
	}

	scope.register(cmd)
	cmd.Flags().StringVar(&publicKey, "public-key", "", "PEM encoded public key")
	cmd.Flags().StringVar(&file, "file", "", "read the PEM encoded public key from a file")

	return cmd
}

func newTrustedTokenProfilesDeletePEMCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "delete-pem PROFILE_ID PEM_FILE_ID",
		Short: "Delete a PEM file of a profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.TrustedTokenProfiles().DeletePEMFile(cmd.Context(), &mgmt.PEMFileRequest{
				ProjectSlug:     scope.projectSlug(),
				EnvironmentSlug: scope.environmentSlug(),
				ProfileID:       args[0],
				PEMFileID:       args[1],
			})
			if err != nil {
				return err
			}

			return writeAction(cmd, resp, "deleted", "PEM file", args[1])
		},
	}

	scope.register(cmd)

	return cmd
}

func readPublicKey(publicKey, file string) (string, error) {
	switch {
	case publicKey != "" && file != "":
		return "", fmt.Errorf("%w: --public-key and --file", constants.ErrConflictingFlags)
	case file != "":
		// #nosec G304
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read public key file: %w", err)
		}

		return string(data), nil
	case publicKey != "":
		return publicKey, nil
	default:
		return "", constants.ErrPublicKeyRequired
	}
}

func renderPEMFile(w io.Writer, pemFile *mgmt.PEMFile) error {
	return renderProperties(w, "", [][]string{
		{"PEM File ID", pemFile.PEMFileID},
		{"Public Key", pemFile.PublicKey},
	})
}
