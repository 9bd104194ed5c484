package mgmt

import "context"

// JWTTemplate customizes the claims of session or M2M JWTs.
type JWTTemplate struct {
	TemplateContent string          `json:"template_content"            yaml:"template_content"`
	CustomAudience  string          `json:"custom_audience"             yaml:"custom_audience"`
	JWTTemplateType JWTTemplateType `json:"jwt_template_type,omitempty" yaml:"jwt_template_type,omitempty"`
}

// GetJWTTemplateRequest identifies a JWT template.
type GetJWTTemplateRequest struct {
	ProjectSlug     string          `json:"-" yaml:"-"`
	EnvironmentSlug string          `json:"-" yaml:"-"`
	JWTTemplateType JWTTemplateType `json:"-" yaml:"-"`
}

// SetJWTTemplateRequest replaces a JWT template.
type SetJWTTemplateRequest struct {
	ProjectSlug     string          `json:"-" yaml:"-"`
	EnvironmentSlug string          `json:"-" yaml:"-"`
	JWTTemplateType JWTTemplateType `json:"-" yaml:"-"`

	TemplateContent string `json:"template_content" yaml:"template_content"`
	CustomAudience  string `json:"custom_audience"  yaml:"custom_audience"`
}

// JWTTemplateResponse is returned by get and set.
type JWTTemplateResponse struct {
	ResponseMeta `yaml:",inline"`

	JWTTemplate JWTTemplate `json:"jwt_template" yaml:"jwt_template"`
}

// JWTTemplatesClient manages JWT templates.
type JWTTemplatesClient interface {
	Get(ctx context.Context, request *GetJWTTemplateRequest) (*JWTTemplateResponse, error)
	Set(ctx context.Context, request *SetJWTTemplateRequest) (*JWTTemplateResponse, error)
}
