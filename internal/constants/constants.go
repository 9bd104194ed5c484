package constants

import "time"

// Client defaults.
const (
	// DefaultBaseURL is the production management API endpoint.
	DefaultBaseURL = "https://management.stytch.com"

	// DefaultTimeout is the per-request deadline when none is configured.
	DefaultTimeout = 10 * time.Minute

	// Version is reported in the default User-Agent header.
	Version = "1.0.0"

	// DefaultUserAgent is sent with every request unless overridden.
	DefaultUserAgent = "stytch-mgmt-go/" + Version

	// SecureScheme is the only scheme accepted for a custom base URL.
	SecureScheme = "https://"
)

// HTTP headers and content types.
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
	HeaderUserAgent     = "User-Agent"
	HeaderRequestID     = "X-Request-Id"

	ContentTypeJSON = "application/json"
)

// Validation error codes.
const (
	// CodeInvalidPathParam marks a path parameter that is empty after trimming.
	CodeInvalidPathParam = "invalid_path_param"
)

// API path templates. Placeholders are substituted by the request core.
const (
	APIPathProjects     = "v1/projects"
	APIPathProject      = "v1/projects/{project_slug}"
	APIPathEnvironments = "v1/projects/{project_slug}/environments"
	APIPathEnvironment  = "v1/projects/{project_slug}/environments/{environment_slug}"

	APIPathEmailTemplates       = APIPathProject + "/email_templates"
	APIPathEmailTemplate        = APIPathEmailTemplates + "/{template_id}"
	APIPathEmailTemplateDefault = APIPathEmailTemplates + "/default/{email_template_type}"

	APIPathEnvironmentMetrics = APIPathEnvironment + "/metrics"

	APIPathSecrets = APIPathEnvironment + "/secrets"
	APIPathSecret  = APIPathSecrets + "/{secret_id}"

	APIPathPublicTokens = APIPathEnvironment + "/public_tokens"
	APIPathPublicToken  = APIPathPublicTokens + "/{public_token}"

	APIPathRedirectURLs = APIPathEnvironment + "/redirect_urls"
	APIPathRedirectURL  = APIPathRedirectURLs + "/{url}"

	APIPathJWTTemplate = APIPathEnvironment + "/jwt_templates/{jwt_template_type}"

	APIPathPasswordStrength = APIPathEnvironment + "/password_strength"

	APIPathRBACPolicy = APIPathEnvironment + "/rbac_policy"

	APIPathTrustedTokenProfiles = APIPathEnvironment + "/trusted_token_profiles"
	APIPathTrustedTokenProfile  = APIPathTrustedTokenProfiles + "/{profile_id}"
	APIPathPEMFiles             = APIPathTrustedTokenProfile + "/pem_files"
	APIPathPEMFile              = APIPathPEMFiles + "/{pem_file_id}"

	APIPathSMSCountryCodes      = APIPathEnvironment + "/country_code_allowlists/sms"
	APIPathWhatsAppCountryCodes = APIPathEnvironment + "/country_code_allowlists/whatsapp"

	APIPathEventLogStreaming        = APIPathEnvironment + "/event_log_streaming"
	APIPathEventLogStreamingDest    = APIPathEventLogStreaming + "/{destination_type}"
	APIPathEventLogStreamingEnable  = APIPathEventLogStreamingDest + "/enable"
	APIPathEventLogStreamingDisable = APIPathEventLogStreamingDest + "/disable"

	APIPathSDKConsumer = APIPathEnvironment + "/sdk/consumer"
	APIPathSDKB2B      = APIPathEnvironment + "/sdk/b2b"
)

// Path parameter names.
const (
	ParamProjectSlug       = "project_slug"
	ParamEnvironmentSlug   = "environment_slug"
	ParamSecretID          = "secret_id"
	ParamPublicToken       = "public_token"
	ParamURL               = "url"
	ParamTemplateID        = "template_id"
	ParamEmailTemplateType = "email_template_type"
	ParamJWTTemplateType   = "jwt_template_type"
	ParamProfileID         = "profile_id"
	ParamPEMFileID         = "pem_file_id"
	ParamDestinationType   = "destination_type"
)

// Query parameter names.
const (
	QueryDoNotPromoteDefaults = "do_not_promote_defaults"
)

// CLI configuration.
const (
	// ConfigDirName is the directory under $HOME holding the CLI config.
	ConfigDirName = ".stytchmgmt"

	// ConfigFileName is the CLI config file inside ConfigDirName.
	ConfigFileName = "config.yml"

	// DotEnvFile is loaded from the working directory when present.
	DotEnvFile = ".env"

	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600

	// EnvPrefix is the prefix for environment variables read by the CLI.
	EnvPrefix = "STYTCH"
)

// Environment variables holding workspace credentials.
const (
	EnvWorkspaceKeyID     = EnvPrefix + "_WORKSPACE_KEY_ID"
	EnvWorkspaceKeySecret = EnvPrefix + "_WORKSPACE_KEY_SECRET"
	EnvBaseURL            = EnvPrefix + "_BASE_URL"
)

// Output formats and display values.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"

	NotAvailable = "N/A"
	None         = "none"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// IndentSize for JSON and YAML output.
	IndentSize = 2
)
