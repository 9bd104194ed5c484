package mgmtclient

import (
	"os"

	"github.com/fivetwenty-io/stytch-mgmt/internal/client"
	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
)

// New creates a new management API client. Configuration errors are
// returned as *mgmt.ConfigError with no client.
func New(config *mgmt.Config) (mgmt.Client, error) {
	c, err := client.New(config)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// NewWithCredentials creates a client for the production endpoint.
func NewWithCredentials(workspaceKeyID, workspaceKeySecret string) (mgmt.Client, error) {
	return New(&mgmt.Config{
		WorkspaceKeyID:     workspaceKeyID,
		WorkspaceKeySecret: workspaceKeySecret,
	})
}

// NewWithBaseURL creates a client for a custom https endpoint.
func NewWithBaseURL(baseURL, workspaceKeyID, workspaceKeySecret string) (mgmt.Client, error) {
	return New(&mgmt.Config{
		WorkspaceKeyID:     workspaceKeyID,
		WorkspaceKeySecret: workspaceKeySecret,
		BaseURL:            baseURL,
	})
}

// NewFromEnv creates a client from STYTCH_WORKSPACE_KEY_ID,
// STYTCH_WORKSPACE_KEY_SECRET and the optional STYTCH_BASE_URL.
func NewFromEnv() (mgmt.Client, error) {
	return New(&mgmt.Config{
		WorkspaceKeyID:     os.Getenv(constants.EnvWorkspaceKeyID),
		WorkspaceKeySecret: os.Getenv(constants.EnvWorkspaceKeySecret),
		BaseURL:            os.Getenv(constants.EnvBaseURL),
	})
}
