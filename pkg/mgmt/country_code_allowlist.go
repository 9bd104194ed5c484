package mgmt

import "context"

// SetCountryCodesRequest replaces the allowed country codes for a channel.
type SetCountryCodesRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`

	CountryCodes []string `json:"country_codes" yaml:"country_codes"`
}

// CountryCodesResponse carries the allowed ISO country codes.
type CountryCodesResponse struct {
	ResponseMeta `yaml:",inline"`

	CountryCodes []string `json:"country_codes" yaml:"country_codes"`
}

// CountryCodeAllowlistClient manages which countries may receive SMS and
// WhatsApp messages. WhatsApp is only available to consumer projects.
type CountryCodeAllowlistClient interface {
	GetAllowedSMSCountryCodes(ctx context.Context, request *EnvironmentRequest) (*CountryCodesResponse, error)
	SetAllowedSMSCountryCodes(ctx context.Context, request *SetCountryCodesRequest) (*CountryCodesResponse, error)
	GetAllowedWhatsAppCountryCodes(ctx context.Context, request *EnvironmentRequest) (*CountryCodesResponse, error)
	SetAllowedWhatsAppCountryCodes(ctx context.Context, request *SetCountryCodesRequest) (*CountryCodesResponse, error)
}
