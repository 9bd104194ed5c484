//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProjectWorkflow_CompleteLifecycle creates a project and walks through
// the environment level resources before deleting it again.
func TestProjectWorkflow_CompleteLifecycle(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)
	ctx := context.Background()

	// 1. Create a project
	created, err := client.Projects().Create(ctx, &mgmt.CreateProjectRequest{
		Name:     GenerateTestName("workflow-project"),
		Vertical: mgmt.VerticalConsumer,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.Project.ProjectSlug)
	assert.NotEmpty(t, created.RequestID)

	projectSlug := created.Project.ProjectSlug

	defer CleanupProject(t, client, projectSlug)

	// 2. The project comes with environments
	environments, err := client.Environments().GetAll(ctx, &mgmt.GetAllEnvironmentsRequest{ProjectSlug: projectSlug})
	require.NoError(t, err)
	require.NotEmpty(t, environments.Environments)

	scope := &mgmt.EnvironmentRequest{
		ProjectSlug:     projectSlug,
		EnvironmentSlug: environments.Environments[0].EnvironmentSlug,
	}

	// 3. Secrets are only shown in full once
	secret, err := client.Secrets().Create(ctx, scope)
	require.NoError(t, err)
	require.NotEmpty(t, secret.Secret.Secret)

	masked, err := client.Secrets().Get(ctx, &mgmt.SecretRequest{
		ProjectSlug:     scope.ProjectSlug,
		EnvironmentSlug: scope.EnvironmentSlug,
		SecretID:        secret.Secret.SecretID,
	})
	require.NoError(t, err)
	assert.Equal(t, secret.Secret.SecretID, masked.Secret.SecretID)
	assert.NotEmpty(t, masked.Secret.LastFour)

	// 4. Public tokens
	token, err := client.PublicTokens().Create(ctx, scope)
	require.NoError(t, err)
	assert.NotEmpty(t, token.PublicToken.PublicToken)

	// 5. Redirect URLs
	const callback = "http://localhost:3000/authenticate"

	_, err = client.RedirectURLs().Create(ctx, &mgmt.CreateRedirectURLRequest{
		ProjectSlug:     scope.ProjectSlug,
		EnvironmentSlug: scope.EnvironmentSlug,
		URL:             callback,
		ValidTypes:      []mgmt.URLType{{Type: mgmt.RedirectURLTypeLogin, IsDefault: true}},
	})
	require.NoError(t, err)

	redirectURL, err := client.RedirectURLs().Get(ctx, &mgmt.RedirectURLRequest{
		ProjectSlug:     scope.ProjectSlug,
		EnvironmentSlug: scope.EnvironmentSlug,
		URL:             callback,
	})
	require.NoError(t, err)
	assert.Equal(t, callback, redirectURL.RedirectURL.URL)

	_, err = client.RedirectURLs().Delete(ctx, &mgmt.DeleteRedirectURLRequest{
		ProjectSlug:     scope.ProjectSlug,
		EnvironmentSlug: scope.EnvironmentSlug,
		URL:             callback,
	})
	require.NoError(t, err)

	// 6. Delete the project
	_, err = client.Projects().Delete(ctx, &mgmt.DeleteProjectRequest{ProjectSlug: projectSlug})
	require.NoError(t, err)

	_, err = client.Projects().Get(ctx, &mgmt.GetProjectRequest{ProjectSlug: projectSlug})
	assert.True(t, mgmt.IsNotFound(err))
}

// TestProjectWorkflow_InvalidCredentials checks that the API rejects an
// unknown workspace key.
func TestProjectWorkflow_InvalidCredentials(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	config.WorkspaceKeySecret = "invalid-secret"
	client := config.NewClient(t)

	_, err := client.Projects().GetAll(context.Background())
	require.Error(t, err)
	assert.True(t, mgmt.IsUnauthorized(err))
}
