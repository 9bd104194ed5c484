package mgmtclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmtclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/projects/project-test-123", request.URL.Path)
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"project":{"project_slug":"project-test-123","name":"Test Project"}}`))
	}))
	defer server.Close()

	client, err := mgmtclient.New(&mgmt.Config{
		WorkspaceKeyID:     "key-id",
		WorkspaceKeySecret: "key-secret",
		BaseURL:            server.URL,
		HTTPClient:         server.Client(),
	})
	require.NoError(t, err)

	project, err := client.Projects().Get(context.Background(), &mgmt.GetProjectRequest{ProjectSlug: "project-test-123"})
	require.NoError(t, err)
	assert.Equal(t, "Test Project", project.Project.Name)
}

func TestNew_ConfigError(t *testing.T) {
	t.Parallel()

	client, err := mgmtclient.New(&mgmt.Config{WorkspaceKeyID: "key-id"})
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Equal(t, `Missing "workspace_key_secret" in config`, err.Error())
}

func TestNewWithCredentials(t *testing.T) {
	t.Parallel()

	client, err := mgmtclient.NewWithCredentials("key-id", "key-secret")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewWithBaseURL(t *testing.T) {
	t.Parallel()

	_, err := mgmtclient.NewWithBaseURL("http://insecure.example.com", "key-id", "key-secret")
	require.Error(t, err)
	assert.True(t, mgmt.IsConfigError(err))
	assert.Equal(t, "base_url must use HTTPS scheme", err.Error())
}

//nolint:paralleltest // t.Setenv cannot be used in parallel tests
func TestNewFromEnv(t *testing.T) {
	t.Setenv("STYTCH_WORKSPACE_KEY_ID", "key-id")
	t.Setenv("STYTCH_WORKSPACE_KEY_SECRET", "")
	t.Setenv("STYTCH_BASE_URL", "")

	_, err := mgmtclient.NewFromEnv()
	require.Error(t, err)
	assert.Equal(t, `Missing "workspace_key_secret" in config`, err.Error())

	t.Setenv("STYTCH_WORKSPACE_KEY_SECRET", "key-secret")

	client, err := mgmtclient.NewFromEnv()
	require.NoError(t, err)
	assert.NotNil(t, client)
}
