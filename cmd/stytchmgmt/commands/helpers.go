package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmtclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	newClient    = mgmtclient.New
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

// Credentials holds the resolved workspace key.
type Credentials struct {
	WorkspaceKeyID     string
	WorkspaceKeySecret string
}

// ResolveCredentials returns the workspace key from flags, environment and
// config file. A missing secret is read with a hidden prompt when stdin is
// a terminal.
func ResolveCredentials() (*Credentials, error) {
	creds := &Credentials{
		WorkspaceKeyID:     strings.TrimSpace(viper.GetString(keyWorkspaceKeyID)),
		WorkspaceKeySecret: viper.GetString(keyWorkspaceKeySecret),
	}

	if creds.WorkspaceKeySecret != "" || creds.WorkspaceKeyID == "" {
		return creds, nil
	}

	stdin := int(os.Stdin.Fd())
	if !isTerminal(stdin) {
		return creds, nil
	}

	_, _ = fmt.Fprintf(os.Stderr, "Workspace key secret for %s: ", creds.WorkspaceKeyID)

	secret, err := readPassword(stdin)

	_, _ = fmt.Fprintln(os.Stderr)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrSecretPromptFailed, err)
	}

	creds.WorkspaceKeySecret = strings.TrimSpace(string(secret))

	return creds, nil
}

// CreateClient builds a management client from the resolved configuration.
func CreateClient() (mgmt.Client, error) {
	creds, err := ResolveCredentials()
	if err != nil {
		return nil, err
	}

	config := &mgmt.Config{
		WorkspaceKeyID:     creds.WorkspaceKeyID,
		WorkspaceKeySecret: creds.WorkspaceKeySecret,
		BaseURL:            viper.GetString(keyBaseURL),
		Timeout:            viper.GetDuration(keyTimeout),
	}

	if viper.GetBool(keyVerbose) {
		config.Logger = NewLogger(os.Stderr, true)
		config.Debug = true
	}

	return newClient(config)
}

// projectFlags selects a project. The config file "project" key is the default.
type projectFlags struct {
	project string
}

func (f *projectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.project, "project", "p", "", "project slug (default from config)")
}

func (f *projectFlags) projectSlug() string {
	if f.project != "" {
		return f.project
	}

	return viper.GetString(keyProject)
}

// environmentFlags selects an environment within a project.
type environmentFlags struct {
	projectFlags

	environment string
}

func (f *environmentFlags) register(cmd *cobra.Command) {
	f.projectFlags.register(cmd)
	cmd.Flags().StringVarP(&f.environment, "env", "e", "", "environment slug (default from config)")
}

func (f *environmentFlags) environmentSlug() string {
	if f.environment != "" {
		return f.environment
	}

	return viper.GetString(keyEnvironment)
}

func (f *environmentFlags) request() *mgmt.EnvironmentRequest {
	return &mgmt.EnvironmentRequest{
		ProjectSlug:     f.projectSlug(),
		EnvironmentSlug: f.environmentSlug(),
	}
}

// changedBool returns a pointer to value when the flag was set explicitly.
func changedBool(cmd *cobra.Command, name string, value bool) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return mgmt.Bool(value)
}

func changedString(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return mgmt.String(value)
}

func changedInt(cmd *cobra.Command, name string, value int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return mgmt.Int(value)
}

// anyChanged reports whether at least one of the named flags was set.
func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}

	return false
}

// PrintError writes err to w. API failures include the request id and the
// documentation URL reported by the server.
func PrintError(w io.Writer, err error) {
	var apiErr *mgmt.APIError
	if !errors.As(err, &apiErr) {
		_, _ = fmt.Fprintf(w, "Error: %v\n", err)

		return
	}

	message := apiErr.ErrorMessage
	if apiErr.ErrorType != "" {
		message = apiErr.ErrorType + ": " + message
	}

	_, _ = fmt.Fprintf(w, "Error: %s\n", message)
	_, _ = fmt.Fprintf(w, "Status: %d\n", apiErr.StatusCode)

	if apiErr.RequestID != "" {
		_, _ = fmt.Fprintf(w, "Request ID: %s\n", apiErr.RequestID)
	}

	if apiErr.ErrorURL != "" {
		_, _ = fmt.Fprintf(w, "Documentation: %s\n", apiErr.ErrorURL)
	}
}
