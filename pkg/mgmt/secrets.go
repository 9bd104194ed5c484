package mgmt

import "context"

// Secret is a newly created environment secret. The full value is only
// returned once, by SecretsClient.Create.
type Secret struct {
	SecretID  string `json:"secret_id"            yaml:"secret_id"`
	Secret    string `json:"secret"               yaml:"secret"`
	CreatedAt string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// MaskedSecret is an existing environment secret as returned by reads.
type MaskedSecret struct {
	SecretID  string `json:"secret_id"            yaml:"secret_id"`
	LastFour  string `json:"last_four"            yaml:"last_four"`
	CreatedAt string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UsedAt    string `json:"used_at,omitempty"    yaml:"used_at,omitempty"`
}

// SecretRequest identifies a secret within an environment.
type SecretRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`
	SecretID        string `json:"-" yaml:"-"`
}

// CreateSecretResponse carries the unmasked secret.
type CreateSecretResponse struct {
	ResponseMeta `yaml:",inline"`

	Secret Secret `json:"secret" yaml:"secret"`
}

// GetSecretResponse is returned by SecretsClient.Get.
type GetSecretResponse struct {
	ResponseMeta `yaml:",inline"`

	Secret MaskedSecret `json:"secret" yaml:"secret"`
}

// GetAllSecretsResponse lists the masked secrets of an environment.
type GetAllSecretsResponse struct {
	ResponseMeta `yaml:",inline"`

	Secrets []MaskedSecret `json:"secrets" yaml:"secrets"`
}

// DeleteSecretResponse is returned by SecretsClient.Delete.
type DeleteSecretResponse struct {
	ResponseMeta `yaml:",inline"`
}

// SecretsClient manages environment secrets.
type SecretsClient interface {
	// Create returns the full secret value. It is not exposed by later reads.
	Create(ctx context.Context, request *EnvironmentRequest) (*CreateSecretResponse, error)
	Get(ctx context.Context, request *SecretRequest) (*GetSecretResponse, error)
	GetAll(ctx context.Context, request *EnvironmentRequest) (*GetAllSecretsResponse, error)
	Delete(ctx context.Context, request *SecretRequest) (*DeleteSecretResponse, error)
}
