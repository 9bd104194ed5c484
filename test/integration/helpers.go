//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmtclient"
	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	WorkspaceKeyID     string
	WorkspaceKeySecret string
	BaseURL            string
	Verbose            bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		WorkspaceKeyID:     os.Getenv(constants.EnvWorkspaceKeyID),
		WorkspaceKeySecret: os.Getenv(constants.EnvWorkspaceKeySecret),
		BaseURL:            os.Getenv(constants.EnvBaseURL),
		Verbose:            os.Getenv("STYTCH_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test when no workspace key is configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.WorkspaceKeyID == "" || config.WorkspaceKeySecret == "" {
		t.Skipf("%s or %s not set, skipping integration test",
			constants.EnvWorkspaceKeyID, constants.EnvWorkspaceKeySecret)
	}
}

// NewClient creates a client for the configured workspace.
func (config *TestConfig) NewClient(t *testing.T) mgmt.Client {
	t.Helper()

	client, err := mgmtclient.New(&mgmt.Config{
		WorkspaceKeyID:     config.WorkspaceKeyID,
		WorkspaceKeySecret: config.WorkspaceKeySecret,
		BaseURL:            config.BaseURL,
		Debug:              config.Verbose,
		Logger:             testLogger{t: t},
	})
	require.NoError(t, err)

	return client
}

// GenerateTestName generates a unique name for test resources.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// CleanupProject deletes a project created by a test, logging failures.
func CleanupProject(t *testing.T, client mgmt.Client, projectSlug string) {
	t.Helper()

	_, err := client.Projects().Delete(context.Background(), &mgmt.DeleteProjectRequest{ProjectSlug: projectSlug})
	if err != nil && !mgmt.IsNotFound(err) {
		t.Logf("Warning: failed to delete project %s: %v", projectSlug, err)
	}
}

// testLogger writes client logs to the test log.
type testLogger struct {
	t *testing.T
}

func (l testLogger) Debug(msg string, fields map[string]interface{}) {
	l.t.Logf("DEBUG %s %v", msg, fields)
}

func (l testLogger) Info(msg string, fields map[string]interface{}) {
	l.t.Logf("INFO %s %v", msg, fields)
}

func (l testLogger) Warn(msg string, fields map[string]interface{}) {
	l.t.Logf("WARN %s %v", msg, fields)
}

func (l testLogger) Error(msg string, fields map[string]interface{}) {
	l.t.Logf("ERROR %s %v", msg, fields)
}
