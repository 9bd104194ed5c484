package client

import (
	"regexp"

	"github.com/fivetwenty-io/stytch-mgmt/internal/auth"
	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/internal/http"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var httpsScheme = regexp.MustCompile("^" + regexp.QuoteMeta(constants.SecureScheme))

// Client implements the mgmt.Client interface.
type Client struct {
	httpClient    *http.Client
	authenticator auth.Authenticator

	// Resource clients
	projects               mgmt.ProjectsClient
	environments           mgmt.EnvironmentsClient
	secrets                mgmt.SecretsClient
	publicTokens           mgmt.PublicTokensClient
	redirectURLs           mgmt.RedirectURLsClient
	emailTemplates         mgmt.EmailTemplatesClient
	jwtTemplates           mgmt.JWTTemplatesClient
	passwordStrengthConfig mgmt.PasswordStrengthConfigClient
	rbacPolicy             mgmt.RBACPolicyClient
	trustedTokenProfiles   mgmt.TrustedTokenProfilesClient
	countryCodeAllowlist   mgmt.CountryCodeAllowlistClient
	eventLogStreaming      mgmt.EventLogStreamingClient
	sdk                    mgmt.SDKClient
}

// New creates a new management API client. The configuration is validated
// once; an invalid configuration returns a *mgmt.ConfigError and no client.
func New(config *mgmt.Config) (*Client, error) {
	err := ValidateConfig(config)
	if err != nil {
		return nil, err
	}

	return NewWithAuthenticator(config, auth.NewBasicAuth(config.WorkspaceKeyID, config.WorkspaceKeySecret))
}

// NewWithAuthenticator creates a new client with a custom authenticator.
// Only the base URL of config is validated.
func NewWithAuthenticator(config *mgmt.Config, authenticator auth.Authenticator) (*Client, error) {
	if config == nil {
		return nil, &mgmt.ConfigError{Message: "config is required"}
	}

	err := validateBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(ResolveBaseURL(config.BaseURL), authenticator, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:    httpClient,
		authenticator: authenticator,
	}

	client.initializeResourceClients()

	return client, nil
}

// ValidateConfig checks the credentials and base URL of config. Checks run
// in a fixed order and the first failure is returned.
func ValidateConfig(config *mgmt.Config) error {
	if config == nil {
		return &mgmt.ConfigError{Message: "config is required"}
	}

	checks := []struct {
		value string
		rule  validation.Rule
	}{
		{config.WorkspaceKeyID, validation.Required.Error(`Missing "workspace_key_id" in config`)},
		{config.WorkspaceKeySecret, validation.Required.Error(`Missing "workspace_key_secret" in config`)},
	}

	for _, check := range checks {
		err := validation.Validate(check.value, check.rule)
		if err != nil {
			return &mgmt.ConfigError{Message: err.Error()}
		}
	}

	return validateBaseURL(config.BaseURL)
}

// validateBaseURL accepts an empty value, which selects the default.
func validateBaseURL(baseURL string) error {
	err := validation.Validate(baseURL, validation.Match(httpsScheme).Error("base_url must use HTTPS scheme"))
	if err != nil {
		return &mgmt.ConfigError{Message: err.Error()}
	}

	return nil
}

// ResolveBaseURL returns the base URL requests are sent to, ending with a slash.
func ResolveBaseURL(baseURL string) string {
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	if baseURL[len(baseURL)-1] != '/' {
		baseURL += "/"
	}

	return baseURL
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *mgmt.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.projects = NewProjectsClient(c.httpClient)
	c.environments = NewEnvironmentsClient(c.httpClient)
	c.secrets = NewSecretsClient(c.httpClient)
	c.publicTokens = NewPublicTokensClient(c.httpClient)
	c.redirectURLs = NewRedirectURLsClient(c.httpClient)
	c.emailTemplates = NewEmailTemplatesClient(c.httpClient)
	c.jwtTemplates = NewJWTTemplatesClient(c.httpClient)
	c.passwordStrengthConfig = NewPasswordStrengthConfigClient(c.httpClient)
	c.rbacPolicy = NewRBACPolicyClient(c.httpClient)
	c.trustedTokenProfiles = NewTrustedTokenProfilesClient(c.httpClient)
	c.countryCodeAllowlist = NewCountryCodeAllowlistClient(c.httpClient)
	c.eventLogStreaming = NewEventLogStreamingClient(c.httpClient)
	c.sdk = NewSDKClient(c.httpClient)
}

// BaseURL returns the resolved base URL.
func (c *Client) BaseURL() string {
	return c.httpClient.BaseURL()
}

// Authenticator returns the authenticator used for every request.
func (c *Client) Authenticator() auth.Authenticator {
	return c.authenticator
}

// Projects implements mgmt.Client.Projects.
func (c *Client) Projects() mgmt.ProjectsClient {
	return c.projects
}

// Environments implements mgmt.Client.Environments.
func (c *Client) Environments() mgmt.EnvironmentsClient {
	return c.environments
}

// Secrets implements mgmt.Client.Secrets.
func (c *Client) Secrets() mgmt.SecretsClient {
	return c.secrets
}

// PublicTokens implements mgmt.Client.PublicTokens.
func (c *Client) PublicTokens() mgmt.PublicTokensClient {
	return c.publicTokens
}

// RedirectURLs implements mgmt.Client.RedirectURLs.
func (c *Client) RedirectURLs() mgmt.RedirectURLsClient {
	return c.redirectURLs
}

// EmailTemplates implements mgmt.Client.EmailTemplates.
func (c *Client) EmailTemplates() mgmt.EmailTemplatesClient {
	return c.emailTemplates
}

// JWTTemplates implements mgmt.Client.JWTTemplates.
func (c *Client) JWTTemplates() mgmt.JWTTemplatesClient {
	return c.jwtTemplates
}

// PasswordStrengthConfig implements mgmt.Client.PasswordStrengthConfig.
func (c *Client) PasswordStrengthConfig() mgmt.PasswordStrengthConfigClient {
	return c.passwordStrengthConfig
}

// RBACPolicy implements mgmt.Client.RBACPolicy.
func (c *Client) RBACPolicy() mgmt.RBACPolicyClient {
	return c.rbacPolicy
}

// TrustedTokenProfiles implements mgmt.Client.TrustedTokenProfiles.
func (c *Client) TrustedTokenProfiles() mgmt.TrustedTokenProfilesClient {
	return c.trustedTokenProfiles
}

// CountryCodeAllowlist implements mgmt.Client.CountryCodeAllowlist.
func (c *Client) CountryCodeAllowlist() mgmt.CountryCodeAllowlistClient {
	return c.countryCodeAllowlist
}

// EventLogStreaming implements mgmt.Client.EventLogStreaming.
func (c *Client) EventLogStreaming() mgmt.EventLogStreamingClient {
	return c.eventLogStreaming
}

// SDK implements mgmt.Client.SDK.
func (c *Client) SDK() mgmt.SDKClient {
	return c.sdk
}
