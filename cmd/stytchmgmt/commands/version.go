package commands

import (
	"io"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/spf13/cobra"
)

// VersionInfo describes the CLI build.
type VersionInfo struct {
	Version       string `json:"version"        yaml:"version"`
	Commit        string `json:"commit"         yaml:"commit"`
	Built         string `json:"built"          yaml:"built"`
	ClientVersion string `json:"client_version" yaml:"client_version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the stytchmgmt CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Version:       version,
				Commit:        commit,
				Built:         date,
				ClientVersion: constants.Version,
			}

			return writeOutput(cmd, info, func(w io.Writer) error {
				return renderProperties(w, "", [][]string{
					{"Version", info.Version},
					{"Commit", info.Commit},
					{"Built", info.Built},
					{"Client Version", info.ClientVersion},
				})
			})
		},
	}
}
