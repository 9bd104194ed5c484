package mgmt

import "context"

// PEMFile is a public key attached to a trusted token profile.
type PEMFile struct {
	PEMFileID string `json:"pem_file_id" yaml:"pem_file_id"`
	PublicKey string `json:"public_key"  yaml:"public_key"`
}

// TrustedTokenProfile describes an external token issuer whose JWTs can be
// exchanged for Stytch sessions.
type TrustedTokenProfile struct {
	ProfileID        string                 `json:"profile_id"                  yaml:"profile_id"`
	Name             string                 `json:"name"                        yaml:"name"`
	Audience         string                 `json:"audience"                    yaml:"audience"`
	Issuer           string                 `json:"issuer"                      yaml:"issuer"`
	PEMFiles         []PEMFile              `json:"pem_files"                   yaml:"pem_files"`
	CanJITProvision  bool                   `json:"can_jit_provision"           yaml:"can_jit_provision"`
	JWKSURL          string                 `json:"jwks_url,omitempty"          yaml:"jwks_url,omitempty"`
	AttributeMapping map[string]interface{} `json:"attribute_mapping,omitempty" yaml:"attribute_mapping,omitempty"`
	PublicKeyType    PublicKeyType          `json:"public_key_type,omitempty"   yaml:"public_key_type,omitempty"`
}

// CreateTrustedTokenProfileRequest creates a trusted token profile.
// PEMFiles holds PEM encoded public keys.
type CreateTrustedTokenProfileRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`

	Name             string                 `json:"name"                        yaml:"name"`
	Audience         string                 `json:"audience"                    yaml:"audience"`
	Issuer           string                 `json:"issuer"                      yaml:"issuer"`
	PEMFiles         []string               `json:"pem_files"                   yaml:"pem_files"`
	CanJITProvision  bool                   `json:"can_jit_provision"           yaml:"can_jit_provision"`
	JWKSURL          string                 `json:"jwks_url,omitempty"          yaml:"jwks_url,omitempty"`
	AttributeMapping map[string]interface{} `json:"attribute_mapping,omitempty" yaml:"attribute_mapping,omitempty"`
	PublicKeyType    PublicKeyType          `json:"public_key_type,omitempty"   yaml:"public_key_type,omitempty"`
}

// TrustedTokenProfileRequest identifies a trusted token profile.
type TrustedTokenProfileRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`
	ProfileID       string `json:"-" yaml:"-"`
}

// UpdateTrustedTokenProfileRequest represents a partial profile update.
type UpdateTrustedTokenProfileRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`
	ProfileID       string `json:"-" yaml:"-"`

	Name             *string                `json:"name,omitempty"              yaml:"name,omitempty"`
	Audience         *string                `json:"audience,omitempty"          yaml:"audience,omitempty"`
	Issuer           *string                `json:"issuer,omitempty"            yaml:"issuer,omitempty"`
	JWKSURL          *string                `json:"jwks_url,omitempty"          yaml:"jwks_url,omitempty"`
	AttributeMapping map[string]interface{} `json:"attribute_mapping,omitempty" yaml:"attribute_mapping,omitempty"`
	CanJITProvision  *bool                  `json:"can_jit_provision,omitempty" yaml:"can_jit_provision,omitempty"`
}

// TrustedTokenProfileResponse is returned by create, get and update.
type TrustedTokenProfileResponse struct {
	ResponseMeta `yaml:",inline"`

	Profile TrustedTokenProfile `json:"profile" yaml:"profile"`
}

// GetAllTrustedTokenProfilesResponse lists the profiles of an environment.
type GetAllTrustedTokenProfilesResponse struct {
	ResponseMeta `yaml:",inline"`

	Profiles []TrustedTokenProfile `json:"profiles" yaml:"profiles"`
}

// DeleteTrustedTokenProfileResponse is returned by TrustedTokenProfilesClient.Delete.
type DeleteTrustedTokenProfileResponse struct {
	ResponseMeta `yaml:",inline"`
}

// CreatePEMFileRequest attaches a public key to a profile.
type CreatePEMFileRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`
	ProfileID       string `json:"-" yaml:"-"`

	PublicKey string `json:"public_key" yaml:"public_key"`
}

// PEMFileRequest identifies a PEM file of a profile.
type PEMFileRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`
	ProfileID       string `json:"-" yaml:"-"`
	PEMFileID       string `json:"-" yaml:"-"`
}

// PEMFileResponse is returned by CreatePEMFile and GetPEMFile.
type PEMFileResponse struct {
	ResponseMeta `yaml:",inline"`

	PEMFile PEMFile `json:"pem_file" yaml:"pem_file"`
}

// DeletePEMFileResponse is returned by TrustedTokenProfilesClient.DeletePEMFile.
type DeletePEMFileResponse struct {
	ResponseMeta `yaml:",inline"`
}

// TrustedTokenProfilesClient manages trusted token profiles and their PEM files.
type TrustedTokenProfilesClient interface {
	Create(ctx context.Context, request *CreateTrustedTokenProfileRequest) (*TrustedTokenProfileResponse, error)
	Get(ctx context.Context, request *TrustedTokenProfileRequest) (*TrustedTokenProfileResponse, error)
	GetAll(ctx context.Context, request *EnvironmentRequest) (*GetAllTrustedTokenProfilesResponse, error)
	Update(ctx context.Context, request *UpdateTrustedTokenProfileRequest) (*TrustedTokenProfileResponse, error)
	Delete(ctx context.Context, request *TrustedTokenProfileRequest) (*DeleteTrustedTokenProfileResponse, error)

	CreatePEMFile(ctx context.Context, request *CreatePEMFileRequest) (*PEMFileResponse, error)
	GetPEMFile(ctx context.Context, request *PEMFileRequest) (*PEMFileResponse, error)
	DeletePEMFile(ctx context.Context, request *PEMFileRequest) (*DeletePEMFileResponse, error)
}
