package client_test

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/stytch-mgmt/internal/client"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const envPath = "/v1/projects/" + testProject + "/environments/" + testEnv

var testEnvRequest = &mgmt.EnvironmentRequest{ProjectSlug: testProject, EnvironmentSlug: testEnv}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestProjectsClient(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []TestOperation{
		{
			Name: "create",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Projects().Create(ctx, &mgmt.CreateProjectRequest{Name: "Test Project", Vertical: mgmt.VerticalB2B})
			},
			ExpectedMethod: "POST",
			ExpectedPath:   "/v1/projects",
			ExpectedBody:   `{"name":"Test Project","vertical":"B2B"}`,
			Response:       `{"project":{"project_slug":"project-test-123","name":"Test Project","vertical":"B2B"}}`,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				response, ok := result.(*mgmt.CreateProjectResponse)
				require.True(t, ok)
				assert.Equal(t, testProject, response.Project.ProjectSlug)
				assert.Equal(t, 200, response.StatusCode)
			},
		},
		{
			Name: "get",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Projects().Get(ctx, &mgmt.GetProjectRequest{ProjectSlug: testProject})
			},
			ExpectedMethod: "GET",
			ExpectedPath:   "/v1/projects/" + testProject,
			Response:       `{"project":{"project_slug":"project-test-123","name":"Test Project"}}`,
		},
		{
			Name: "get all",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Projects().GetAll(ctx)
			},
			ExpectedMethod: "GET",
			ExpectedPath:   "/v1/projects",
			Response:       `{"projects":[{"project_slug":"a"},{"project_slug":"b"}]}`,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				response, ok := result.(*mgmt.GetAllProjectsResponse)
				require.True(t, ok)
				assert.Len(t, response.Projects, 2)
			},
		},
		{
			Name: "update sends only set fields",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Projects().Update(ctx, &mgmt.UpdateProjectRequest{ProjectSlug: testProject, Name: mgmt.String("Renamed")})
			},
			ExpectedMethod: "PATCH",
			ExpectedPath:   "/v1/projects/" + testProject,
			ExpectedBody:   `{"name":"Renamed"}`,
			Response:       `{"project":{"project_slug":"project-test-123","name":"Renamed"}}`,
		},
		{
			Name: "delete",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Projects().Delete(ctx, &mgmt.DeleteProjectRequest{ProjectSlug: testProject})
			},
			ExpectedMethod: "DELETE",
			ExpectedPath:   "/v1/projects/" + testProject,
			Response:       `{"status_code":200}`,
		},
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestEnvironmentsClient(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []TestOperation{
		{
			Name: "create",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Environments().Create(ctx, &mgmt.CreateEnvironmentRequest{
					ProjectSlug: testProject,
					Name:        "Staging",
					Type:        mgmt.EnvironmentTypeTest,
					EnvironmentSettings: mgmt.EnvironmentSettings{
						CrossOrgPasswordsEnabled: mgmt.Bool(true),
					},
				})
			},
			ExpectedMethod: "POST",
			ExpectedPath:   "/v1/projects/" + testProject + "/environments",
			ExpectedBody:   `{"name":"Staging","type":"TEST","cross_org_passwords_enabled":true}`,
			Response:       `{"environment":{"environment_slug":"staging","name":"Staging","cross_org_passwords_enabled":true}}`,
		},
		{
			Name: "get",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Environments().Get(ctx, testEnvRequest)
			},
			ExpectedMethod: "GET",
			ExpectedPath:   envPath,
			Response:       `{"environment":{"environment_slug":"test","user_lock_threshold":10,"user_lock_ttl":3600}}`,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				response, ok := result.(*mgmt.GetEnvironmentResponse)
				require.True(t, ok)
				assert.Equal(t, 10, response.Environment.UserLockThreshold)
				assert.Equal(t, 3600, response.Environment.UserLockTTL)
			},
		},
		{
			Name: "get all",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Environments().GetAll(ctx, &mgmt.GetAllEnvironmentsRequest{ProjectSlug: testProject})
			},
			ExpectedMethod: "GET",
			ExpectedPath:   "/v1/projects/" + testProject + "/environments",
			Response:       `{"environments":[]}`,
		},
		{
			Name: "update",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Environments().Update(ctx, &mgmt.UpdateEnvironmentRequest{
					ProjectSlug:     testProject,
					EnvironmentSlug: testEnv,
					Name:            mgmt.String("Renamed"),
					EnvironmentSettings: mgmt.EnvironmentSettings{
						UserLockTTL: mgmt.Int(600),
					},
				})
			},
			ExpectedMethod: "PATCH",
			ExpectedPath:   envPath,
			ExpectedBody:   `{"name":"Renamed","user_lock_ttl":600}`,
			Response:       `{"environment":{"environment_slug":"test","name":"Renamed"}}`,
		},
		{
			Name: "delete",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Environments().Delete(ctx, testEnvRequest)
			},
			ExpectedMethod: "DELETE",
			ExpectedPath:   envPath,
		},
		{
			Name: "metrics",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Environments().GetMetrics(ctx, testEnvRequest)
			},
			ExpectedMethod: "GET",
			ExpectedPath:   envPath + "/metrics",
			Response:       `{"metrics":{"user_count":12,"organization_count":0,"member_count":0,"m2m_client_count":3}}`,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				response, ok := result.(*mgmt.GetEnvironmentMetricsResponse)
				require.True(t, ok)
				assert.Equal(t, 12, response.Metrics.UserCount)
				assert.Equal(t, 3, response.Metrics.M2MClientCount)
			},
		},
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestSecretsAndPublicTokensClients(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []TestOperation{
		{
			Name: "secret create",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Secrets().Create(ctx, testEnvRequest)
			},
			ExpectedMethod: "POST",
			ExpectedPath:   envPath + "/secrets",
			ExpectedBody:   `{}`,
			Response:       `{"secret":{"secret_id":"secret-test-1","secret":"full-secret-value"}}`,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				response, ok := result.(*mgmt.CreateSecretResponse)
				require.True(t, ok)
				assert.Equal(t, "full-secret-value", response.Secret.Secret)
			},
		},
		{
			Name: "secret get",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Secrets().Get(ctx, &mgmt.SecretRequest{ProjectSlug: testProject, EnvironmentSlug: testEnv, SecretID: "secret-test-1"})
			},
			ExpectedMethod: "GET",
			ExpectedPath:   envPath + "/secrets/secret-test-1",
			Response:       `{"secret":{"secret_id":"secret-test-1","last_four":"alue"}}`,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				response, ok := result.(*mgmt.GetSecretResponse)
				require.True(t, ok)
				assert.Equal(t, "alue", response.Secret.LastFour)
			},
		},
		{
			Name: "secret get all",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Secrets().GetAll(ctx, testEnvRequest)
			},
			ExpectedMethod: "GET",
			ExpectedPath:   envPath + "/secrets",
			Response:       `{"secrets":[{"secret_id":"secret-test-1","last_four":"alue"}]}`,
		},
		{
			Name: "secret delete",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.Secrets().Delete(ctx, &mgmt.SecretRequest{ProjectSlug: testProject, EnvironmentSlug: testEnv, SecretID: "secret-test-1"})
			},
			ExpectedMethod: "DELETE",
			ExpectedPath:   envPath + "/secrets/secret-test-1",
		},
		{
			Name: "public token create",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.PublicTokens().Create(ctx, testEnvRequest)
			},
			ExpectedMethod: "POST",
			ExpectedPath:   envPath + "/public_tokens",
			ExpectedBody:   `{}`,
			Response:       `{"public_token":{"public_token":"public-token-test-1"}}`,
		},
		{
			Name: "public token get",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.PublicTokens().Get(ctx, &mgmt.PublicTokenRequest{ProjectSlug: testProject, EnvironmentSlug: testEnv, PublicToken: "public-token-test-1"})
			},
			ExpectedMethod: "GET",
			ExpectedPath:   envPath + "/public_tokens/public-token-test-1",
		},
		{
			Name: "public token get all",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.PublicTokens().GetAll(ctx, testEnvRequest)
			},
			ExpectedMethod: "GET",
			ExpectedPath:   envPath + "/public_tokens",
			Response:       `{"public_tokens":[]}`,
		},
		{
			Name: "public token delete",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.PublicTokens().Delete(ctx, &mgmt.PublicTokenRequest{ProjectSlug: testProject, EnvironmentSlug: testEnv, PublicToken: "public-token-test-1"})
			},
			ExpectedMethod: "DELETE",
			ExpectedPath:   envPath + "/public_tokens/public-token-test-1",
		},
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestRedirectURLsClient(t *testing.T) {
	t.Parallel()

	const (
		callback    = "https://example.com/callback?next=/a b"
		callbackKey = "/redirect_urls/https:%2F%2Fexample.com%2Fcallback%3Fnext=%2Fa%20b"
	)

	RunOperationTests(t, []TestOperation{
		{
			Name: "create",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.RedirectURLs().Create(ctx, &mgmt.CreateRedirectURLRequest{
					ProjectSlug:     testProject,
					EnvironmentSlug: testEnv,
					URL:             callback,
					ValidTypes:      []mgmt.URLType{{Type: mgmt.RedirectURLTypeLogin, IsDefault: true}},
				})
			},
			ExpectedMethod: "POST",
			ExpectedPath:   envPath + "/redirect_urls",
			ExpectedBody:   `{"url":"https://example.com/callback?next=/a b","valid_types":[{"is_default":true,"type":"LOGIN"}]}`,
			Response:       `{"redirect_url":{"url":"https://example.com/callback?next=/a b","valid_types":[{"is_default":true,"type":"LOGIN"}]}}`,
		},
		{
			Name: "create without promoting defaults",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.RedirectURLs().Create(ctx, &mgmt.CreateRedirectURLRequest{
					ProjectSlug:          testProject,
					EnvironmentSlug:      testEnv,
					URL:                  "https://example.com",
					DoNotPromoteDefaults: true,
				})
			},
			ExpectedMethod: "POST",
			ExpectedPath:   envPath + "/redirect_urls",
			ExpectedBody:   `{"url":"https://example.com","do_not_promote_defaults":true}`,
		},
		{
			Name: "get encodes the url",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.RedirectURLs().Get(ctx, &mgmt.RedirectURLRequest{ProjectSlug: testProject, EnvironmentSlug: testEnv, URL: callback})
			},
			ExpectedMethod: "GET",
			ExpectedPath:   envPath + callbackKey,
			Response:       `{"redirect_url":{"url":"https://example.com/callback?next=/a b","valid_types":[]}}`,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				response, ok := result.(*mgmt.RedirectURLResponse)
				require.True(t, ok)
				assert.Equal(t, callback, response.RedirectURL.URL)
			},
		},
		{
			Name: "get all",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.RedirectURLs().GetAll(ctx, testEnvRequest)
			},
			ExpectedMethod: "GET",
			ExpectedPath:   envPath + "/redirect_urls",
			Response:       `{"redirect_urls":[]}`,
		},
		{
			Name: "update",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.RedirectURLs().Update(ctx, &mgmt.UpdateRedirectURLRequest{
					ProjectSlug:     testProject,
					EnvironmentSlug: testEnv,
					URL:             callback,
					ValidTypes:      []mgmt.URLType{{Type: mgmt.RedirectURLTypeSignup}},
				})
			},
			ExpectedMethod: "PATCH",
			ExpectedPath:   envPath + callbackKey,
			ExpectedBody:   `{"valid_types":[{"is_default":false,"type":"SIGNUP"}]}`,
		},
		{
			Name: "delete",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.RedirectURLs().Delete(ctx, &mgmt.DeleteRedirectURLRequest{ProjectSlug: testProject, EnvironmentSlug: testEnv, URL: callback})
			},
			ExpectedMethod: "DELETE",
			ExpectedPath:   envPath + callbackKey,
		},
		{
			Name: "delete without promoting defaults",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.RedirectURLs().Delete(ctx, &mgmt.DeleteRedirectURLRequest{
					ProjectSlug:          testProject,
					EnvironmentSlug:      testEnv,
					URL:                  callback,
					DoNotPromoteDefaults: true,
				})
			},
			ExpectedMethod: "DELETE",
			ExpectedPath:   envPath + callbackKey,
			ExpectedQuery:  "do_not_promote_defaults=true",
		},
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestEmailTemplatesClient(t *testing.T) {
	t.Parallel()

	const templatesPath = "/v1/projects/" + testProject + "/email_templates"

	RunOperationTests(t, []TestOperation{
		{
			Name: "create",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.EmailTemplates().Create(ctx, &mgmt.CreateEmailTemplateRequest{
					ProjectSlug: testProject,
					EmailTemplate: mgmt.EmailTemplate{
						TemplateID: "welcome",
						Name:       "Welcome",
						PrebuiltCustomization: &mgmt.PrebuiltCustomization{
							ButtonColor: "#105ee9",
							FontFamily:  mgmt.FontFamilyArial,
						},
					},
				})
			},
			ExpectedMethod: "POST",
			ExpectedPath:   templatesPath,
			ExpectedBody:   `{"template_id":"welcome","name":"Welcome","prebuilt_customization":{"button_color":"#105ee9","font_family":"ARIAL"}}`,
			Response:       `{"email_template":{"template_id":"welcome","name":"Welcome"}}`,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				response, ok := result.(*mgmt.EmailTemplateResponse)
				require.True(t, ok)
				assert.Equal(t, "welcome", response.EmailTemplate.TemplateID)
			},
		},
		{
			Name: "get",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.EmailTemplates().Get(ctx, &mgmt.EmailTemplateRequest{ProjectSlug: testProject, TemplateID: "welcome"})
			},
			ExpectedMethod: "GET",
			ExpectedPath:   templatesPath + "/welcome",
		},
		{
			Name: "get all",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.EmailTemplates().GetAll(ctx, &mgmt.GetAllEmailTemplatesRequest{ProjectSlug: testProject})
			},
			ExpectedMethod: "GET",
			ExpectedPath:   templatesPath,
			Response:       `{"email_templates":[{"template_id":"welcome"}]}`,
		},
		{
			Name: "update",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.EmailTemplates().Update(ctx, &mgmt.UpdateEmailTemplateRequest{
					ProjectSlug: testProject,
					TemplateID:  "welcome",
					Name:        mgmt.String("Hello"),
				})
			},
			ExpectedMethod: "PATCH",
			ExpectedPath:   templatesPath + "/welcome",
			ExpectedBody:   `{"name":"Hello"}`,
		},
		{
			Name: "delete",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.EmailTemplates().Delete(ctx, &mgmt.EmailTemplateRequest{ProjectSlug: testProject, TemplateID: "welcome"})
			},
			ExpectedMethod: "DELETE",
			ExpectedPath:   templatesPath + "/welcome",
		},
		{
			Name: "set default",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.EmailTemplates().SetDefault(ctx, &mgmt.SetDefaultEmailTemplateRequest{
					ProjectSlug:       testProject,
					EmailTemplateType: mgmt.EmailTemplateTypeLogin,
					TemplateID:        "welcome",
				})
			},
			ExpectedMethod: "POST",
			ExpectedPath:   templatesPath + "/default/LOGIN",
			ExpectedBody:   `{"template_id":"welcome"}`,
		},
		{
			Name: "get default",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.EmailTemplates().GetDefault(ctx, &mgmt.DefaultEmailTemplateRequest{
					ProjectSlug:       testProject,
					EmailTemplateType: mgmt.EmailTemplateTypeOneTimePasscode,
				})
			},
			ExpectedMethod: "GET",
			ExpectedPath:   templatesPath + "/default/ONE_TIME_PASSCODE",
			Response:       `{"template_id":"welcome"}`,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				response, ok := result.(*mgmt.GetDefaultEmailTemplateResponse)
				require.True(t, ok)
				assert.Equal(t, "welcome", response.TemplateID)
			},
		},
		{
			Name: "unset default",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.EmailTemplates().UnsetDefault(ctx, &mgmt.DefaultEmailTemplateRequest{
					ProjectSlug:       testProject,
					EmailTemplateType: mgmt.EmailTemplateTypeLogin,
				})
			},
			ExpectedMethod: "DELETE",
			ExpectedPath:   templatesPath + "/default/LOGIN",
		},
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestPolicyClients(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []TestOperation{
		{
			Name: "jwt template get",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.JWTTemplates().Get(ctx, &mgmt.GetJWTTemplateRequest{
					ProjectSlug:     testProject,
					EnvironmentSlug: testEnv,
					JWTTemplateType: mgmt.JWTTemplateTypeSession,
				})
			},
			ExpectedMethod: "GET",
			ExpectedPath:   envPath + "/jwt_templates/SESSION",
			Response:       `{"jwt_template":{"template_content":"{\"role\":\"{{ user.trusted_metadata.role }}\"}","custom_audience":"","jwt_template_type":"SESSION"}}`,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				response, ok := result.(*mgmt.JWTTemplateResponse)
				require.True(t, ok)
				assert.Equal(t, mgmt.JWTTemplateTypeSession, response.JWTTemplate.JWTTemplateType)
			},
		},
		{
			Name: "jwt template set",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.JWTTemplates().Set(ctx, &mgmt.SetJWTTemplateRequest{
					ProjectSlug:     testProject,
					EnvironmentSlug: testEnv,
					JWTTemplateType: mgmt.JWTTemplateTypeM2M,
					TemplateContent: "{}",
					CustomAudience:  "my-audience",
				})
			},
			ExpectedMethod: "PUT",
			ExpectedPath:   envPath + "/jwt_templates/M2M",
			ExpectedBody:   `{"template_content":"{}","custom_audience":"my-audience"}`,
		},
		{
			Name: "password strength get",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.PasswordStrengthConfig().Get(ctx, testEnvRequest)
			},
			ExpectedMethod: "GET",
			ExpectedPath:   envPath + "/password_strength",
			Response:       `{"password_strength_config":{"validation_policy":"ValidationPolicyZXCVBN","check_breach_on_creation":true}}`,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				response, ok := result.(*mgmt.PasswordStrengthConfigResponse)
				require.True(t, ok)
				assert.Equal(t, mgmt.ValidationPolicyZXCVBN, response.PasswordStrengthConfig.ValidationPolicy)
				assert.Nil(t, response.PasswordStrengthConfig.LUDSMinPasswordLength)
			},
		},
		{
			Name: "password strength set",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.PasswordStrengthConfig().Set(ctx, &mgmt.SetPasswordStrengthConfigRequest{
					ProjectSlug:     testProject,
					EnvironmentSlug: testEnv,
					PasswordStrengthConfig: mgmt.PasswordStrengthConfig{
						CheckBreachOnCreation:     true,
						ValidationPolicy:          mgmt.ValidationPolicyLUDS,
						LUDSMinPasswordLength:     mgmt.Int(10),
						LUDSMinPasswordComplexity: mgmt.Int(3),
					},
				})
			},
			ExpectedMethod: "PUT",
			ExpectedPath:   envPath + "/password_strength",
			ExpectedBody: `{"check_breach_on_creation":true,"check_breach_on_authentication":false,"validate_on_authentication":false,` +
				`"validation_policy":"ValidationPolicyLUDS","luds_min_password_length":10,"luds_min_password_complexity":3}`,
		},
		{
			Name: "rbac policy get",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.RBACPolicy().Get(ctx, testEnvRequest)
			},
			ExpectedMethod: "GET",
			ExpectedPath:   envPath + "/rbac_policy",
			Response:       `{"policy":{"stytch_resources":[{"resource_id":"stytch.member","description":"","available_actions":["create"]}],"custom_roles":[]}}`,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				response, ok := result.(*mgmt.RBACPolicyResponse)
				require.True(t, ok)
				require.Len(t, response.Policy.StytchResources, 1)
				assert.Equal(t, "stytch.member", response.Policy.StytchResources[0].ResourceID)
			},
		},
		{
			Name: "rbac policy set",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.RBACPolicy().Set(ctx, &mgmt.SetRBACPolicyRequest{
					ProjectSlug:     testProject,
					EnvironmentSlug: testEnv,
					CustomRoles: []mgmt.RBACRole{{
						RoleID:      "reader",
						Description: "Read only",
						Permissions: []mgmt.RBACPermission{{ResourceID: "documents", Actions: []string{"read"}}},
					}},
				})
			},
			ExpectedMethod: "PUT",
			ExpectedPath:   envPath + "/rbac_policy",
			ExpectedBody:   `{"custom_roles":[{"role_id":"reader","description":"Read only","permissions":[{"resource_id":"documents","actions":["read"]}]}]}`,
		},
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestTrustedTokenProfilesClient(t *testing.T) {
	t.Parallel()

	const profilesPath = envPath + "/trusted_token_profiles"

	profile := func(projectSlug string) *mgmt.TrustedTokenProfileRequest {
		return &mgmt.TrustedTokenProfileRequest{ProjectSlug: projectSlug, EnvironmentSlug: testEnv, ProfileID: "ttp-1"}
	}

	RunOperationTests(t, []TestOperation{
		{
			Name: "create",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.TrustedTokenProfiles().Create(ctx, &mgmt.CreateTrustedTokenProfileRequest{
					ProjectSlug:     testProject,
					EnvironmentSlug: testEnv,
					Name:            "Auth0",
					Audience:        "aud",
					Issuer:          "https://issuer.example.com",
					PEMFiles:        []string{"-----BEGIN PUBLIC KEY-----"},
					PublicKeyType:   mgmt.PublicKeyTypePEM,
				})
			},
			ExpectedMethod: "POST",
			ExpectedPath:   profilesPath,
			ExpectedBody: `{"name":"Auth0","audience":"aud","issuer":"https://issuer.example.com",` +
				`"pem_files":["-----BEGIN PUBLIC KEY-----"],"can_jit_provision":false,"public_key_type":"PEM"}`,
			Response: `{"profile":{"profile_id":"ttp-1","pem_files":[{"pem_file_id":"pem-1","public_key":"-----BEGIN PUBLIC KEY-----"}]}}`,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				response, ok := result.(*mgmt.TrustedTokenProfileResponse)
				require.True(t, ok)
				require.Len(t, response.Profile.PEMFiles, 1)
				assert.Equal(t, "pem-1", response.Profile.PEMFiles[0].PEMFileID)
			},
		},
		{
			Name: "get",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.TrustedTokenProfiles().Get(ctx, profile(testProject))
			},
			ExpectedMethod: "GET",
			ExpectedPath:   profilesPath + "/ttp-1",
		},
		{
			Name: "get all",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.TrustedTokenProfiles().GetAll(ctx, testEnvRequest)
			},
			ExpectedMethod: "GET",
			ExpectedPath:   profilesPath,
			Response:       `{"profiles":[]}`,
		},
		{
			Name: "update",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.TrustedTokenProfiles().Update(ctx, &mgmt.UpdateTrustedTokenProfileRequest{
					ProjectSlug:     testProject,
					EnvironmentSlug: testEnv,
					ProfileID:       "ttp-1",
					CanJITProvision: mgmt.Bool(true),
				})
			},
			ExpectedMethod: "PATCH",
			ExpectedPath:   profilesPath + "/ttp-1",
			ExpectedBody:   `{"can_jit_provision":true}`,
		},
		{
			Name: "delete",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.TrustedTokenProfiles().Delete(ctx, profile(testProject))
			},
			ExpectedMethod: "DELETE",
			ExpectedPath:   profilesPath + "/ttp-1",
		},
		{
			Name: "create pem file",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.TrustedTokenProfiles().CreatePEMFile(ctx, &mgmt.CreatePEMFileRequest{
					ProjectSlug:     testProject,
					EnvironmentSlug: testEnv,
					ProfileID:       "ttp-1",
					PublicKey:       "-----BEGIN PUBLIC KEY-----",
				})
			},
			ExpectedMethod: "POST",
			ExpectedPath:   profilesPath + "/ttp-1/pem_files",
			ExpectedBody:   `{"public_key":"-----BEGIN PUBLIC KEY-----"}`,
		},
		{
			Name: "get pem file",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.TrustedTokenProfiles().GetPEMFile(ctx, &mgmt.PEMFileRequest{
					ProjectSlug:     testProject,
					EnvironmentSlug: testEnv,
					ProfileID:       "ttp-1",
					PEMFileID:       "pem-1",
				})
			},
			ExpectedMethod: "GET",
			ExpectedPath:   profilesPath + "/ttp-1/pem_files/pem-1",
		},
		{
			Name: "delete pem file",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.TrustedTokenProfiles().DeletePEMFile(ctx, &mgmt.PEMFileRequest{
					ProjectSlug:     testProject,
					EnvironmentSlug: testEnv,
					ProfileID:       "ttp-1",
					PEMFileID:       "pem-1",
				})
			},
			ExpectedMethod: "DELETE",
			ExpectedPath:   profilesPath + "/ttp-1/pem_files/pem-1",
		},
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestEnvironmentConfigurationClients(t *testing.T) {
	t.Parallel()

	datadog := &mgmt.EventLogStreamingRequest{ProjectSlug: testProject, EnvironmentSlug: testEnv, DestinationType: mgmt.DestinationTypeDatadog}

	RunOperationTests(t, []TestOperation{
		{
			Name: "sms country codes get",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.CountryCodeAllowlist().GetAllowedSMSCountryCodes(ctx, testEnvRequest)
			},
			ExpectedMethod: "GET",
			ExpectedPath:   envPath + "/country_code_allowlists/sms",
			Response:       `{"country_codes":["US","CA"]}`,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				response, ok := result.(*mgmt.CountryCodesResponse)
				require.True(t, ok)
				assert.Equal(t, []string{"US", "CA"}, response.CountryCodes)
			},
		},
		{
			Name: "sms country codes set",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.CountryCodeAllowlist().SetAllowedSMSCountryCodes(ctx, &mgmt.SetCountryCodesRequest{
					ProjectSlug:     testProject,
					EnvironmentSlug: testEnv,
					CountryCodes:    []string{"US"},
				})
			},
			ExpectedMethod: "PUT",
			ExpectedPath:   envPath + "/country_code_allowlists/sms",
			ExpectedBody:   `{"country_codes":["US"]}`,
		},
		{
			Name: "whatsapp country codes get",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.CountryCodeAllowlist().GetAllowedWhatsAppCountryCodes(ctx, testEnvRequest)
			},
			ExpectedMethod: "GET",
			ExpectedPath:   envPath + "/country_code_allowlists/whatsapp",
		},
		{
			Name: "whatsapp country codes set",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.CountryCodeAllowlist().SetAllowedWhatsAppCountryCodes(ctx, &mgmt.SetCountryCodesRequest{
					ProjectSlug:     testProject,
					EnvironmentSlug: testEnv,
					CountryCodes:    []string{"BR", "MX"},
				})
			},
			ExpectedMethod: "PUT",
			ExpectedPath:   envPath + "/country_code_allowlists/whatsapp",
			ExpectedBody:   `{"country_codes":["BR","MX"]}`,
		},
		{
			Name: "event log streaming create",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.EventLogStreaming().Create(ctx, &mgmt.CreateEventLogStreamingRequest{
					ProjectSlug:     testProject,
					EnvironmentSlug: testEnv,
					DestinationType: mgmt.DestinationTypeDatadog,
					DestinationConfig: &mgmt.DestinationConfig{
						Datadog: &mgmt.DatadogConfig{APIKey: "0123456789abcdef", Site: mgmt.DatadogSiteUS},
					},
				})
			},
			ExpectedMethod: "POST",
			ExpectedPath:   envPath + "/event_log_streaming",
			ExpectedBody:   `{"destination_type":"DATADOG","destination_config":{"datadog":{"api_key":"0123456789abcdef","site":"US"}}}`,
			Response:       `{"event_log_streaming_config":{"destination_type":"DATADOG","streaming_status":"DISABLED"}}`,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				response, ok := result.(*mgmt.EventLogStreamingResponse)
				require.True(t, ok)
				assert.Equal(t, mgmt.StreamingStatusDisabled, response.EventLogStreamingConfig.StreamingStatus)
			},
		},
		{
			Name: "event log streaming get is masked",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.EventLogStreaming().Get(ctx, datadog)
			},
			ExpectedMethod: "GET",
			ExpectedPath:   envPath + "/event_log_streaming/DATADOG",
			Response:       `{"event_log_streaming_config":{"destination_type":"DATADOG","destination_config":{"datadog":{"api_key_last_four":"cdef","site":"US"}}}}`,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				response, ok := result.(*mgmt.GetEventLogStreamingResponse)
				require.True(t, ok)
				require.NotNil(t, response.EventLogStreamingConfig.DestinationConfig)
				assert.Equal(t, "cdef", response.EventLogStreamingConfig.DestinationConfig.Datadog.APIKeyLastFour)
			},
		},
		{
			Name: "event log streaming update",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.EventLogStreaming().Update(ctx, &mgmt.UpdateEventLogStreamingRequest{
					ProjectSlug:     testProject,
					EnvironmentSlug: testEnv,
					DestinationType: mgmt.DestinationTypeGrafanaLoki,
					DestinationConfig: &mgmt.DestinationConfig{
						GrafanaLoki: &mgmt.GrafanaLokiConfig{Hostname: "logs.example.com", Username: "stytch", Password: "pw"},
					},
				})
			},
			ExpectedMethod: "PATCH",
			ExpectedPath:   envPath + "/event_log_streaming/GRAFANA_LOKI",
			ExpectedBody:   `{"destination_config":{"grafana_loki":{"hostname":"logs.example.com","username":"stytch","password":"pw"}}}`,
		},
		{
			Name: "event log streaming delete",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.EventLogStreaming().Delete(ctx, datadog)
			},
			ExpectedMethod: "DELETE",
			ExpectedPath:   envPath + "/event_log_streaming/DATADOG",
		},
		{
			Name: "event log streaming enable",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.EventLogStreaming().Enable(ctx, datadog)
			},
			ExpectedMethod: "POST",
			ExpectedPath:   envPath + "/event_log_streaming/DATADOG/enable",
			ExpectedBody:   `{}`,
		},
		{
			Name: "event log streaming disable",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.EventLogStreaming().Disable(ctx, datadog)
			},
			ExpectedMethod: "POST",
			ExpectedPath:   envPath + "/event_log_streaming/DATADOG/disable",
			ExpectedBody:   `{}`,
		},
		{
			Name: "sdk consumer get",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.SDK().GetConsumerConfig(ctx, testEnvRequest)
			},
			ExpectedMethod: "GET",
			ExpectedPath:   envPath + "/sdk/consumer",
			Response:       `{"config":{"basic":{"enabled":true,"domains":["https://example.com"],"bundle_ids":[]},"DFPPA":{"enabled":"PASSIVE","on_challenge":"ALLOW"}}}`,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				response, ok := result.(*mgmt.ConsumerConfigResponse)
				require.True(t, ok)
				require.NotNil(t, response.Config.Basic)
				assert.True(t, response.Config.Basic.Enabled)
				require.NotNil(t, response.Config.DFPPA)
				assert.Equal(t, mgmt.DFPPASettingPassive, response.Config.DFPPA.Enabled)
			},
		},
		{
			Name: "sdk consumer set",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.SDK().SetConsumerConfig(ctx, &mgmt.SetConsumerConfigRequest{
					ProjectSlug:     testProject,
					EnvironmentSlug: testEnv,
					Config: &mgmt.ConsumerConfig{
						Cookies: &mgmt.SDKCookiesConfig{HTTPOnly: mgmt.HTTPOnlyCookiesEnforced},
					},
				})
			},
			ExpectedMethod: "PUT",
			ExpectedPath:   envPath + "/sdk/consumer",
			ExpectedBody:   `{"config":{"cookies":{"http_only":"ENFORCED"}}}`,
		},
		{
			Name: "sdk b2b get",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.SDK().GetB2BConfig(ctx, testEnvRequest)
			},
			ExpectedMethod: "GET",
			ExpectedPath:   envPath + "/sdk/b2b",
			Response:       `{"config":{"basic":{"enabled":true,"domains":[{"domain":"https://example.com","slug_pattern":"https://{{slug}}.example.com"}]}}}`,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				response, ok := result.(*mgmt.B2BConfigResponse)
				require.True(t, ok)
				require.NotNil(t, response.Config.Basic)
				require.Len(t, response.Config.Basic.Domains, 1)
				assert.Equal(t, "https://{{slug}}.example.com", response.Config.Basic.Domains[0].SlugPattern)
			},
		},
		{
			Name: "sdk b2b set",
			Call: func(ctx context.Context, c *client.Client) (interface{}, error) {
				return c.SDK().SetB2BConfig(ctx, &mgmt.SetB2BConfigRequest{
					ProjectSlug:     testProject,
					EnvironmentSlug: testEnv,
					Config: &mgmt.B2BConfig{
						Sessions: &mgmt.SDKSessionsConfig{MaxSessionDurationMinutes: 60},
					},
				})
			},
			ExpectedMethod: "PUT",
			ExpectedPath:   envPath + "/sdk/b2b",
			ExpectedBody:   `{"config":{"sessions":{"max_session_duration_minutes":60}}}`,
		},
	})
}
