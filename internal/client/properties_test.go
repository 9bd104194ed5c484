package client_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fivetwenty-io/stytch-mgmt/internal/client"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("project", func(t *testing.T) {
		t.Parallel()

		c := newFakeManagementServer(t)

		created, err := c.Projects().Create(ctx, &mgmt.CreateProjectRequest{
			Name:     "Test Project",
			Vertical: mgmt.VerticalB2B,
		})
		require.NoError(t, err)
		require.NotEmpty(t, created.Project.ProjectSlug)

		got, err := c.Projects().Get(ctx, &mgmt.GetProjectRequest{ProjectSlug: created.Project.ProjectSlug})
		require.NoError(t, err)
		assert.Equal(t, "Test Project", got.Project.Name)
		assert.Equal(t, mgmt.VerticalB2B, got.Project.Vertical)
		assert.Equal(t, 200, got.StatusCode)
		assert.NotEmpty(t, got.RequestID)
	})

	t.Run("environment", func(t *testing.T) {
		t.Parallel()

		c := newFakeManagementServer(t)

		project, err := c.Projects().Create(ctx, &mgmt.CreateProjectRequest{Name: "Envs", Vertical: mgmt.VerticalConsumer})
		require.NoError(t, err)

		created, err := c.Environments().Create(ctx, &mgmt.CreateEnvironmentRequest{
			ProjectSlug:     project.Project.ProjectSlug,
			Name:            "Staging",
			Type:            mgmt.EnvironmentTypeTest,
			EnvironmentSlug: "staging",
			EnvironmentSettings: mgmt.EnvironmentSettings{
				UserLockThreshold: mgmt.Int(5),
			},
		})
		require.NoError(t, err)

		got, err := c.Environments().Get(ctx, &mgmt.EnvironmentRequest{
			ProjectSlug:     project.Project.ProjectSlug,
			EnvironmentSlug: created.Environment.EnvironmentSlug,
		})
		require.NoError(t, err)
		assert.Equal(t, "Staging", got.Environment.Name)
		assert.Equal(t, mgmt.EnvironmentTypeTest, got.Environment.Type)
		assert.Equal(t, 5, got.Environment.UserLockThreshold)
	})

	t.Run("secret is masked after create", func(t *testing.T) {
		t.Parallel()

		c := newFakeManagementServer(t)

		project, err := c.Projects().Create(ctx, &mgmt.CreateProjectRequest{Name: "Secrets"})
		require.NoError(t, err)

		env := &mgmt.EnvironmentRequest{ProjectSlug: project.Project.ProjectSlug, EnvironmentSlug: "production"}

		created, err := c.Secrets().Create(ctx, env)
		require.NoError(t, err)
		require.NotEmpty(t, created.Secret.Secret)

		got, err := c.Secrets().Get(ctx, &mgmt.SecretRequest{
			ProjectSlug:     env.ProjectSlug,
			EnvironmentSlug: env.EnvironmentSlug,
			SecretID:        created.Secret.SecretID,
		})
		require.NoError(t, err)
		assert.Equal(t, created.Secret.SecretID, got.Secret.SecretID)
		assert.Equal(t, created.Secret.Secret[len(created.Secret.Secret)-4:], got.Secret.LastFour)
	})
}

func TestRedirectURLCreateIsUpsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := newFakeManagementServer(t)

	project, err := c.Projects().Create(ctx, &mgmt.CreateProjectRequest{Name: "Redirects"})
	require.NoError(t, err)

	const callback = "http://localhost:3000/authenticate?next=/home"

	for _, redirectType := range []mgmt.RedirectURLType{mgmt.RedirectURLTypeLogin, mgmt.RedirectURLTypeSignup} {
		_, err = c.RedirectURLs().Create(ctx, &mgmt.CreateRedirectURLRequest{
			ProjectSlug:     project.Project.ProjectSlug,
			EnvironmentSlug: "production",
			URL:             callback,
			ValidTypes:      []mgmt.URLType{{Type: redirectType, IsDefault: true}},
		})
		require.NoError(t, err)
	}

	got, err := c.RedirectURLs().Get(ctx, &mgmt.RedirectURLRequest{
		ProjectSlug:     project.Project.ProjectSlug,
		EnvironmentSlug: "production",
		URL:             callback,
	})
	require.NoError(t, err)
	assert.Equal(t, callback, got.RedirectURL.URL)

	types := make([]mgmt.RedirectURLType, 0, len(got.RedirectURL.ValidTypes))
	for _, validType := range got.RedirectURL.ValidTypes {
		types = append(types, validType.Type)
	}

	assert.ElementsMatch(t, []mgmt.RedirectURLType{mgmt.RedirectURLTypeLogin, mgmt.RedirectURLTypeSignup}, types)
}

func TestUpdatePreservesUnspecifiedFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := newFakeManagementServer(t)

	project, err := c.Projects().Create(ctx, &mgmt.CreateProjectRequest{Name: "Merge", Vertical: mgmt.VerticalB2B})
	require.NoError(t, err)

	_, err = c.Environments().Create(ctx, &mgmt.CreateEnvironmentRequest{
		ProjectSlug:     project.Project.ProjectSlug,
		Name:            "Original",
		EnvironmentSlug: "merge-env",
		EnvironmentSettings: mgmt.EnvironmentSettings{
			CrossOrgPasswordsEnabled: mgmt.Bool(true),
		},
	})
	require.NoError(t, err)

	updated, err := c.Environments().Update(ctx, &mgmt.UpdateEnvironmentRequest{
		ProjectSlug:     project.Project.ProjectSlug,
		EnvironmentSlug: "merge-env",
		Name:            mgmt.String("Renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Environment.Name)

	got, err := c.Environments().Get(ctx, &mgmt.EnvironmentRequest{
		ProjectSlug:     project.Project.ProjectSlug,
		EnvironmentSlug: "merge-env",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Environment.Name)
	assert.True(t, got.Environment.CrossOrgPasswordsEnabled)

	renamed, err := c.Projects().Update(ctx, &mgmt.UpdateProjectRequest{
		ProjectSlug: project.Project.ProjectSlug,
		Name:        mgmt.String("Merged"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Merged", renamed.Project.Name)
	assert.Equal(t, mgmt.VerticalB2B, renamed.Project.Vertical)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestDeleteThenGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name string
		run  func(*testing.T, *client.Client, string) error
	}{
		{
			name: "project",
			run: func(t *testing.T, c *client.Client, projectSlug string) error {
				t.Helper()

				_, err := c.Projects().Delete(ctx, &mgmt.DeleteProjectRequest{ProjectSlug: projectSlug})
				require.NoError(t, err)

				_, err = c.Projects().Get(ctx, &mgmt.GetProjectRequest{ProjectSlug: projectSlug})

				return err
			},
		},
		{
			name: "environment",
			run: func(t *testing.T, c *client.Client, projectSlug string) error {
				t.Helper()

				env := &mgmt.EnvironmentRequest{ProjectSlug: projectSlug, EnvironmentSlug: "production"}

				_, err := c.Environments().Delete(ctx, env)
				require.NoError(t, err)

				_, err = c.Environments().Get(ctx, env)

				return err
			},
		},
		{
			name: "secret",
			run: func(t *testing.T, c *client.Client, projectSlug string) error {
				t.Helper()

				created, err := c.Secrets().Create(ctx, &mgmt.EnvironmentRequest{ProjectSlug: projectSlug, EnvironmentSlug: "production"})
				require.NoError(t, err)

				secret := &mgmt.SecretRequest{ProjectSlug: projectSlug, EnvironmentSlug: "production", SecretID: created.Secret.SecretID}

				_, err = c.Secrets().Delete(ctx, secret)
				require.NoError(t, err)

				_, err = c.Secrets().Get(ctx, secret)

				return err
			},
		},
		{
			name: "redirect url",
			run: func(t *testing.T, c *client.Client, projectSlug string) error {
				t.Helper()

				_, err := c.RedirectURLs().Create(ctx, &mgmt.CreateRedirectURLRequest{
					ProjectSlug:     projectSlug,
					EnvironmentSlug: "production",
					URL:             "https://example.com/callback",
					ValidTypes:      []mgmt.URLType{{Type: mgmt.RedirectURLTypeLogin}},
				})
				require.NoError(t, err)

				_, err = c.RedirectURLs().Delete(ctx, &mgmt.DeleteRedirectURLRequest{
					ProjectSlug:          projectSlug,
					EnvironmentSlug:      "production",
					URL:                  "https://example.com/callback",
					DoNotPromoteDefaults: true,
				})
				require.NoError(t, err)

				_, err = c.RedirectURLs().Get(ctx, &mgmt.RedirectURLRequest{
					ProjectSlug:     projectSlug,
					EnvironmentSlug: "production",
					URL:             "https://example.com/callback",
				})

				return err
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newFakeManagementServer(t)

			project, err := c.Projects().Create(ctx, &mgmt.CreateProjectRequest{Name: "Delete " + tt.name})
			require.NoError(t, err)

			err = tt.run(t, c, project.Project.ProjectSlug)
			require.Error(t, err)
			assert.True(t, mgmt.IsNotFound(err))

			apiErr := &mgmt.APIError{}
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, 404, apiErr.StatusCode)
			assert.Equal(t, "not_found", apiErr.ErrorType)
			assert.NotEmpty(t, apiErr.RequestID)
		})
	}
}
