package mgmt

import (
	"net/http"
	"time"
)

// Client is the top-level management API client. It exposes one resource
// client per area of the management API.
type Client interface {
	ProjectClients
	EnvironmentClients
	AuthenticationClients
	ConfigurationClients
}

// ProjectClients provides access to project-scoped resource clients.
type ProjectClients interface {
	Projects() ProjectsClient
	EmailTemplates() EmailTemplatesClient
}

// EnvironmentClients provides access to environment lifecycle clients.
type EnvironmentClients interface {
	Environments() EnvironmentsClient
	Secrets() SecretsClient
	PublicTokens() PublicTokensClient
	RedirectURLs() RedirectURLsClient
}

// AuthenticationClients provides access to token and policy clients.
type AuthenticationClients interface {
	JWTTemplates() JWTTemplatesClient
	TrustedTokenProfiles() TrustedTokenProfilesClient
	RBACPolicy() RBACPolicyClient
	PasswordStrengthConfig() PasswordStrengthConfigClient
}

// ConfigurationClients provides access to environment configuration clients.
type ConfigurationClients interface {
	CountryCodeAllowlist() CountryCodeAllowlistClient
	EventLogStreaming() EventLogStreamingClient
	SDK() SDKClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// # Authentication
//
// Every request carries HTTP Basic authentication built once from
// WorkspaceKeyID (username) and WorkspaceKeySecret (password). Both are
// required; the secret is never logged.
//
// # Endpoint
//
// BaseURL defaults to https://management.stytch.com. A custom value must use
// the https scheme. The resolved base URL always ends with a slash.
//
// # Timeouts
//
// Timeout is applied to each request as a hard deadline on top of the
// caller's context. It defaults to ten minutes. Requests are never retried.
type Config struct {
	// WorkspaceKeyID: workspace key identifier, used as the Basic auth username.
	WorkspaceKeyID string
	// WorkspaceKeySecret: workspace key secret, used as the Basic auth password.
	WorkspaceKeySecret string

	// BaseURL: optional endpoint override; must start with "https://".
	BaseURL string
	// Timeout: optional per-request deadline.
	Timeout time.Duration
	// HTTPClient: optional transport override. Its Transport is used as is.
	HTTPClient *http.Client

	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
