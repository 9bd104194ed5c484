package mgmt

import "context"

// RedirectURL is a URL that authentication flows may redirect to.
type RedirectURL struct {
	URL        string    `json:"url"         yaml:"url"`
	ValidTypes []URLType `json:"valid_types" yaml:"valid_types"`
}

// URLType marks a redirect URL as valid for one flow, optionally as its default.
type URLType struct {
	IsDefault bool            `json:"is_default"     yaml:"is_default"`
	Type      RedirectURLType `json:"type,omitempty" yaml:"type,omitempty"`
}

// CreateRedirectURLRequest creates a redirect URL. Creating an existing URL
// again merges ValidTypes into the stored set.
type CreateRedirectURLRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`

	URL        string    `json:"url"                   yaml:"url"`
	ValidTypes []URLType `json:"valid_types,omitempty" yaml:"valid_types,omitempty"`
	// DoNotPromoteDefaults suppresses promoting this URL to the default for a
	// type that has no other URL. With it set a type can end up without a
	// default, and callers must then name a redirect URL explicitly.
	DoNotPromoteDefaults bool `json:"do_not_promote_defaults,omitempty" yaml:"do_not_promote_defaults,omitempty"`
}

// RedirectURLRequest identifies a redirect URL within an environment.
type RedirectURLRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`
	URL             string `json:"-" yaml:"-"`
}

// UpdateRedirectURLRequest replaces the valid types of a redirect URL.
type UpdateRedirectURLRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`
	URL             string `json:"-" yaml:"-"`

	ValidTypes           []URLType `json:"valid_types,omitempty"             yaml:"valid_types,omitempty"`
	DoNotPromoteDefaults bool      `json:"do_not_promote_defaults,omitempty" yaml:"do_not_promote_defaults,omitempty"`
}

// DeleteRedirectURLRequest identifies the redirect URL to delete.
type DeleteRedirectURLRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`
	URL             string `json:"-" yaml:"-"`

	// DoNotPromoteDefaults is sent as a query parameter.
	DoNotPromoteDefaults bool `json:"-" yaml:"-"`
}

// RedirectURLResponse is returned by create, get and update.
type RedirectURLResponse struct {
	ResponseMeta `yaml:",inline"`

	RedirectURL RedirectURL `json:"redirect_url" yaml:"redirect_url"`
}

// GetAllRedirectURLsResponse lists the redirect URLs of an environment.
type GetAllRedirectURLsResponse struct {
	ResponseMeta `yaml:",inline"`

	RedirectURLs []RedirectURL `json:"redirect_urls" yaml:"redirect_urls"`
}

// DeleteRedirectURLResponse is returned by RedirectURLsClient.Delete.
type DeleteRedirectURLResponse struct {
	ResponseMeta `yaml:",inline"`
}

// RedirectURLsClient manages environment redirect URLs.
type RedirectURLsClient interface {
	Create(ctx context.Context, request *CreateRedirectURLRequest) (*RedirectURLResponse, error)
	Get(ctx context.Context, request *RedirectURLRequest) (*RedirectURLResponse, error)
	GetAll(ctx context.Context, request *EnvironmentRequest) (*GetAllRedirectURLsResponse, error)
	Update(ctx context.Context, request *UpdateRedirectURLRequest) (*RedirectURLResponse, error)
	Delete(ctx context.Context, request *DeleteRedirectURLRequest) (*DeleteRedirectURLResponse, error)
}
