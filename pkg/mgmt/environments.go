package mgmt

import "context"

// Environment represents a live or test environment within a project.
type Environment struct {
	EnvironmentSlug                     string `json:"environment_slug"                        yaml:"environment_slug"`
	ProjectSlug                         string `json:"project_slug"                            yaml:"project_slug"`
	Name                                string `json:"name"                                    yaml:"name"`
	OAuthCallbackID                     string `json:"oauth_callback_id"                       yaml:"oauth_callback_id"`
	CrossOrgPasswordsEnabled            bool   `json:"cross_org_passwords_enabled"             yaml:"cross_org_passwords_enabled"`
	UserImpersonationEnabled            bool   `json:"user_impersonation_enabled"              yaml:"user_impersonation_enabled"`
	ZeroDowntimeSessionMigrationURL     string `json:"zero_downtime_session_migration_url"     yaml:"zero_downtime_session_migration_url"`
	UserLockSelfServeEnabled            bool   `json:"user_lock_self_serve_enabled"            yaml:"user_lock_self_serve_enabled"`
	UserLockThreshold                   int    `json:"user_lock_threshold"                     yaml:"user_lock_threshold"`
	UserLockTTL                         int    `json:"user_lock_ttl"                           yaml:"user_lock_ttl"`
	IDPAuthorizationURL                 string `json:"idp_authorization_url"                   yaml:"idp_authorization_url"`
	IDPDynamicClientRegistrationEnabled bool   `json:"idp_dynamic_client_registration_enabled" yaml:"idp_dynamic_client_registration_enabled"`
	// Access token template used for clients created through Dynamic Client Registration.
	IDPDynamicClientRegistrationAccessTokenTemplateContent string          `json:"idp_dynamic_client_registration_access_token_template_content" yaml:"idp_dynamic_client_registration_access_token_template_content"`
	Type                                                   EnvironmentType `json:"type,omitempty"                                                yaml:"type,omitempty"`
	CreatedAt                                              string          `json:"created_at,omitempty"                                          yaml:"created_at,omitempty"`
}

// EnvironmentMetrics holds usage counts for an environment.
type EnvironmentMetrics struct {
	UserCount int `json:"user_count" yaml:"user_count"`
	// OrganizationCount is only meaningful for B2B projects.
	OrganizationCount int `json:"organization_count" yaml:"organization_count"`
	MemberCount       int `json:"member_count"       yaml:"member_count"`
	M2MClientCount    int `json:"m2m_client_count"   yaml:"m2m_client_count"`
}

// EnvironmentSettings are the mutable environment fields shared by create
// and update requests. Nil fields are not sent.
type EnvironmentSettings struct {
	CrossOrgPasswordsEnabled        *bool   `json:"cross_org_passwords_enabled,omitempty"         yaml:"cross_org_passwords_enabled,omitempty"`
	UserImpersonationEnabled        *bool   `json:"user_impersonation_enabled,omitempty"          yaml:"user_impersonation_enabled,omitempty"`
	ZeroDowntimeSessionMigrationURL *string `json:"zero_downtime_session_migration_url,omitempty" yaml:"zero_downtime_session_migration_url,omitempty"`
	// UserLockSelfServeEnabled sends locked out users an unlock magic link.
	UserLockSelfServeEnabled *bool `json:"user_lock_self_serve_enabled,omitempty" yaml:"user_lock_self_serve_enabled,omitempty"`
	// UserLockThreshold is the number of failed attempts before a user is locked. Server default 10.
	UserLockThreshold *int `json:"user_lock_threshold,omitempty" yaml:"user_lock_threshold,omitempty"`
	// UserLockTTL is the lock duration in seconds. Server default 3600.
	UserLockTTL                                            *int    `json:"user_lock_ttl,omitempty"                                                 yaml:"user_lock_ttl,omitempty"`
	IDPAuthorizationURL                                    *string `json:"idp_authorization_url,omitempty"                                         yaml:"idp_authorization_url,omitempty"`
	IDPDynamicClientRegistrationEnabled                    *bool   `json:"idp_dynamic_client_registration_enabled,omitempty"                       yaml:"idp_dynamic_client_registration_enabled,omitempty"`
	IDPDynamicClientRegistrationAccessTokenTemplateContent *string `json:"idp_dynamic_client_registration_access_token_template_content,omitempty" yaml:"idp_dynamic_client_registration_access_token_template_content,omitempty"`
}

// CreateEnvironmentRequest represents a request to create an environment.
// A live environment must exist before a test environment can be created.
type CreateEnvironmentRequest struct {
	ProjectSlug string `json:"-" yaml:"-"`

	Name string `json:"name" yaml:"name"`
	// Type defaults server side when empty.
	Type EnvironmentType `json:"type,omitempty" yaml:"type,omitempty"`
	// EnvironmentSlug is assigned by the server when empty.
	EnvironmentSlug string `json:"environment_slug,omitempty" yaml:"environment_slug,omitempty"`

	EnvironmentSettings `yaml:",inline"`
}

// CreateEnvironmentResponse is returned by EnvironmentsClient.Create.
type CreateEnvironmentResponse struct {
	ResponseMeta `yaml:",inline"`

	Environment Environment `json:"environment" yaml:"environment"`
}

// EnvironmentRequest identifies an environment within a project.
type EnvironmentRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`
}

// GetEnvironmentResponse is returned by EnvironmentsClient.Get.
type GetEnvironmentResponse struct {
	ResponseMeta `yaml:",inline"`

	Environment Environment `json:"environment" yaml:"environment"`
}

// GetAllEnvironmentsRequest identifies the project whose environments are listed.
type GetAllEnvironmentsRequest struct {
	ProjectSlug string `json:"-" yaml:"-"`
}

// GetAllEnvironmentsResponse lists the environments of a project.
type GetAllEnvironmentsResponse struct {
	ResponseMeta `yaml:",inline"`

	Environments []Environment `json:"environments" yaml:"environments"`
}

// UpdateEnvironmentRequest represents a partial environment update. Fields
// that are not set are left unchanged by the server.
type UpdateEnvironmentRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`

	Name *string `json:"name,omitempty" yaml:"name,omitempty"`

	EnvironmentSettings `yaml:",inline"`
}

// UpdateEnvironmentResponse is returned by EnvironmentsClient.Update.
type UpdateEnvironmentResponse struct {
	ResponseMeta `yaml:",inline"`

	Environment Environment `json:"environment" yaml:"environment"`
}

// DeleteEnvironmentResponse is returned by EnvironmentsClient.Delete.
type DeleteEnvironmentResponse struct {
	ResponseMeta `yaml:",inline"`
}

// GetEnvironmentMetricsResponse is returned by EnvironmentsClient.GetMetrics.
type GetEnvironmentMetricsResponse struct {
	ResponseMeta `yaml:",inline"`

	Metrics EnvironmentMetrics `json:"metrics" yaml:"metrics"`
}

// EnvironmentsClient manages the environments of a project.
type EnvironmentsClient interface {
	Create(ctx context.Context, request *CreateEnvironmentRequest) (*CreateEnvironmentResponse, error)
	Get(ctx context.Context, request *EnvironmentRequest) (*GetEnvironmentResponse, error)
	GetAll(ctx context.Context, request *GetAllEnvironmentsRequest) (*GetAllEnvironmentsResponse, error)
	Update(ctx context.Context, request *UpdateEnvironmentRequest) (*UpdateEnvironmentResponse, error)
	Delete(ctx context.Context, request *EnvironmentRequest) (*DeleteEnvironmentResponse, error)
	GetMetrics(ctx context.Context, request *EnvironmentRequest) (*GetEnvironmentMetricsResponse, error)
}
