package mgmt

import "context"

// PublicToken is a token used by client-side SDKs.
type PublicToken struct {
	PublicToken string `json:"public_token"         yaml:"public_token"`
	CreatedAt   string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// PublicTokenRequest identifies a public token within an environment.
type PublicTokenRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`
	PublicToken     string `json:"-" yaml:"-"`
}

// CreatePublicTokenResponse is returned by PublicTokensClient.Create.
type CreatePublicTokenResponse struct {
	ResponseMeta `yaml:",inline"`

	PublicToken PublicToken `json:"public_token" yaml:"public_token"`
}

// GetPublicTokenResponse is returned by PublicTokensClient.Get.
type GetPublicTokenResponse struct {
	ResponseMeta `yaml:",inline"`

	PublicToken PublicToken `json:"public_token" yaml:"public_token"`
}

// GetAllPublicTokensResponse lists the active public tokens of an environment.
type GetAllPublicTokensResponse struct {
	ResponseMeta `yaml:",inline"`

	PublicTokens []PublicToken `json:"public_tokens" yaml:"public_tokens"`
}

// DeletePublicTokenResponse is returned by PublicTokensClient.Delete.
type DeletePublicTokenResponse struct {
	ResponseMeta `yaml:",inline"`
}

// PublicTokensClient manages environment public tokens.
type PublicTokensClient interface {
	Create(ctx context.Context, request *EnvironmentRequest) (*CreatePublicTokenResponse, error)
	Get(ctx context.Context, request *PublicTokenRequest) (*GetPublicTokenResponse, error)
	GetAll(ctx context.Context, request *EnvironmentRequest) (*GetAllPublicTokensResponse, error)
	Delete(ctx context.Context, request *PublicTokenRequest) (*DeletePublicTokenResponse, error)
}
