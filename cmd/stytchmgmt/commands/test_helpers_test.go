package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmtclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	testKeyID     = "workspace-key-test-123"
	testKeySecret = "test-secret"
	testProject   = "project-test-123"
	testEnv       = "test"
	testRequestID = "request-id-test-abc"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// setupCLI isolates viper, the home directory and the STYTCH_* environment,
// and points the CLI at a TLS test server running handler. It returns the
// server URL.
func setupCLI(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("HOME", t.TempDir())
	t.Setenv("STYTCH_WORKSPACE_KEY_ID", "")
	t.Setenv("STYTCH_WORKSPACE_KEY_SECRET", "")
	t.Setenv("STYTCH_BASE_URL", "")
	t.Setenv("STYTCH_PROJECT", "")
	t.Setenv("STYTCH_ENVIRONMENT", "")
	t.Setenv("STYTCH_OUTPUT", "")

	server := httptest.NewTLSServer(handler)
	t.Cleanup(server.Close)

	originalNewClient := newClient
	originalIsTerminal := isTerminal

	newClient = func(config *mgmt.Config) (mgmt.Client, error) {
		config.HTTPClient = server.Client()

		return mgmtclient.New(config)
	}
	isTerminal = func(int) bool { return false }

	t.Cleanup(func() {
		newClient = originalNewClient
		isTerminal = originalIsTerminal
	})

	return server.URL
}

// setupCLIWithCredentials is setupCLI with credentials, base URL, project
// and environment taken from the environment.
func setupCLIWithCredentials(t *testing.T, handler http.HandlerFunc) {
	t.Helper()

	serverURL := setupCLI(t, handler)

	t.Setenv("STYTCH_WORKSPACE_KEY_ID", testKeyID)
	t.Setenv("STYTCH_WORKSPACE_KEY_SECRET", testKeySecret)
	t.Setenv("STYTCH_BASE_URL", serverURL)
	t.Setenv("STYTCH_PROJECT", testProject)
	t.Setenv("STYTCH_ENVIRONMENT", testEnv)
}

// executeCommand runs the root command with args and returns its stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	rootCmd := NewRootCommand("1.2.3", "abc123", "2026-01-01")
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := rootCmd.Execute()

	return stdout.String(), err
}

// jsonHandler answers every request with status and body after check.
func jsonHandler(t *testing.T, status int, body string, check func(r *http.Request)) http.HandlerFunc {
	t.Helper()

	return func(writer http.ResponseWriter, request *http.Request) {
		if check != nil {
			check(request)
		}

		writer.Header().Set("Content-Type", "application/json")
		writer.Header().Set("X-Request-Id", testRequestID)
		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(body))
	}
}

// failHandler fails the test when any request reaches the server.
func failHandler(t *testing.T) http.HandlerFunc {
	t.Helper()

	return func(_ http.ResponseWriter, request *http.Request) {
		t.Errorf("unexpected request %s %s", request.Method, request.URL.Path)
	}
}
