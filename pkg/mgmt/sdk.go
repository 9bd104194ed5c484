package mgmt

import "context"

// SMSAutofillMetadata enables OTP autofill for a mobile application.
// MetadataValue is a domain or an application hash depending on MetadataType.
type SMSAutofillMetadata struct {
	MetadataType  SMSAutofillMetadataType `json:"metadata_type"  yaml:"metadata_type"`
	MetadataValue string                  `json:"metadata_value" yaml:"metadata_value"`
	BundleID      string                  `json:"bundle_id"      yaml:"bundle_id"`
}

// SDKCookiesConfig controls HttpOnly session cookies.
type SDKCookiesConfig struct {
	HTTPOnly HTTPOnlyCookies `json:"http_only" yaml:"http_only"`
}

// SDKDFPPAConfig configures device fingerprinting protected auth.
type SDKDFPPAConfig struct {
	Enabled     DFPPASetting     `json:"enabled,omitempty"      yaml:"enabled,omitempty"`
	OnChallenge DFPPAOnChallenge `json:"on_challenge,omitempty" yaml:"on_challenge,omitempty"`
}

// SDKSessionsConfig bounds session lifetimes created through the SDK.
type SDKSessionsConfig struct {
	MaxSessionDurationMinutes int `json:"max_session_duration_minutes" yaml:"max_session_duration_minutes"`
}

// SDKTOTPsConfig toggles TOTP endpoints.
type SDKTOTPsConfig struct {
	CreateTOTPs bool `json:"create_totps" yaml:"create_totps"`
	Enabled     bool `json:"enabled"      yaml:"enabled"`
}

// SDKPKCEConfig toggles an auth method and whether it requires PKCE.
type SDKPKCEConfig struct {
	Enabled      bool `json:"enabled"       yaml:"enabled"`
	PKCERequired bool `json:"pkce_required" yaml:"pkce_required"`
}

// SDKPasswordsConfig toggles password endpoints.
type SDKPasswordsConfig struct {
	Enabled                       bool `json:"enabled"                           yaml:"enabled"`
	PKCERequiredForPasswordResets bool `json:"pkce_required_for_password_resets" yaml:"pkce_required_for_password_resets"`
}

// ConsumerBasicConfig holds the consumer SDK switch and authorized origins.
type ConsumerBasicConfig struct {
	Enabled   bool     `json:"enabled"    yaml:"enabled"`
	Domains   []string `json:"domains"    yaml:"domains"`
	BundleIDs []string `json:"bundle_ids" yaml:"bundle_ids"`
}

// ConsumerMagicLinksConfig toggles consumer magic link endpoints.
type ConsumerMagicLinksConfig struct {
	LoginOrCreateEnabled bool `json:"login_or_create_enabled" yaml:"login_or_create_enabled"`
	SendEnabled          bool `json:"send_enabled"            yaml:"send_enabled"`
	PKCERequired         bool `json:"pkce_required"           yaml:"pkce_required"`
}

// ConsumerOTPsConfig toggles consumer OTP endpoints per channel.
type ConsumerOTPsConfig struct {
	SMSLoginOrCreateEnabled      bool                  `json:"sms_login_or_create_enabled"      yaml:"sms_login_or_create_enabled"`
	WhatsAppLoginOrCreateEnabled bool                  `json:"whatsapp_login_or_create_enabled" yaml:"whatsapp_login_or_create_enabled"`
	EmailLoginOrCreateEnabled    bool                  `json:"email_login_or_create_enabled"    yaml:"email_login_or_create_enabled"`
	SMSSendEnabled               bool                  `json:"sms_send_enabled"                 yaml:"sms_send_enabled"`
	WhatsAppSendEnabled          bool                  `json:"whatsapp_send_enabled"            yaml:"whatsapp_send_enabled"`
	EmailSendEnabled             bool                  `json:"email_send_enabled"               yaml:"email_send_enabled"`
	SMSAutofillMetadata          []SMSAutofillMetadata `json:"sms_autofill_metadata"            yaml:"sms_autofill_metadata"`
}

// ConsumerWebAuthnConfig toggles WebAuthn endpoints.
type ConsumerWebAuthnConfig struct {
	CreateWebAuthns bool `json:"create_webauthns" yaml:"create_webauthns"`
	Enabled         bool `json:"enabled"          yaml:"enabled"`
}

// ConsumerCryptoWalletsConfig toggles crypto wallet endpoints.
type ConsumerCryptoWalletsConfig struct {
	Enabled      bool `json:"enabled"       yaml:"enabled"`
	SIWERequired bool `json:"siwe_required" yaml:"siwe_required"`
}

// ConsumerBiometricsConfig toggles biometrics endpoints.
type ConsumerBiometricsConfig struct {
	CreateBiometricsEnabled bool `json:"create_biometrics_enabled" yaml:"create_biometrics_enabled"`
	Enabled                 bool `json:"enabled"                   yaml:"enabled"`
}

// ConsumerConfig is the SDK configuration of a consumer project environment.
type ConsumerConfig struct {
	Basic         *ConsumerBasicConfig         `json:"basic,omitempty"          yaml:"basic,omitempty"`
	Sessions      *SDKSessionsConfig           `json:"sessions,omitempty"       yaml:"sessions,omitempty"`
	MagicLinks    *ConsumerMagicLinksConfig    `json:"magic_links,omitempty"    yaml:"magic_links,omitempty"`
	OTPs          *ConsumerOTPsConfig          `json:"otps,omitempty"           yaml:"otps,omitempty"`
	OAuth         *SDKPKCEConfig               `json:"oauth,omitempty"          yaml:"oauth,omitempty"`
	TOTPs         *SDKTOTPsConfig              `json:"totps,omitempty"          yaml:"totps,omitempty"`
	WebAuthn      *ConsumerWebAuthnConfig      `json:"webauthn,omitempty"       yaml:"webauthn,omitempty"`
	CryptoWallets *ConsumerCryptoWalletsConfig `json:"crypto_wallets,omitempty" yaml:"crypto_wallets,omitempty"`
	DFPPA         *SDKDFPPAConfig              `json:"DFPPA,omitempty"          yaml:"DFPPA,omitempty"`
	Biometrics    *ConsumerBiometricsConfig    `json:"biometrics,omitempty"     yaml:"biometrics,omitempty"`
	Passwords     *SDKPasswordsConfig          `json:"passwords,omitempty"      yaml:"passwords,omitempty"`
	Cookies       *SDKCookiesConfig            `json:"cookies,omitempty"        yaml:"cookies,omitempty"`
}

// AuthorizedB2BDomain is an origin allowed to use the B2B SDK. SlugPattern
// must contain the {{slug}} placeholder, e.g. https://{{slug}}.example.com.
type AuthorizedB2BDomain struct {
	Domain      string `json:"domain"       yaml:"domain"`
	SlugPattern string `json:"slug_pattern" yaml:"slug_pattern"`
}

// B2BBasicConfig holds the B2B SDK switch and authorized origins.
type B2BBasicConfig struct {
	Enabled                 bool                  `json:"enabled"                   yaml:"enabled"`
	AllowSelfOnboarding     bool                  `json:"allow_self_onboarding"     yaml:"allow_self_onboarding"`
	EnableMemberPermissions bool                  `json:"enable_member_permissions" yaml:"enable_member_permissions"`
	Domains                 []AuthorizedB2BDomain `json:"domains"                   yaml:"domains"`
	BundleIDs               []string              `json:"bundle_ids"                yaml:"bundle_ids"`
}

// B2BOTPsConfig toggles B2B OTP endpoints.
type B2BOTPsConfig struct {
	SMSEnabled          bool                  `json:"sms_enabled"           yaml:"sms_enabled"`
	SMSAutofillMetadata []SMSAutofillMetadata `json:"sms_autofill_metadata" yaml:"sms_autofill_metadata"`
	EmailEnabled        bool                  `json:"email_enabled"         yaml:"email_enabled"`
}

// B2BConfig is the SDK configuration of a B2B project environment.
type B2BConfig struct {
	Basic      *B2BBasicConfig     `json:"basic,omitempty"       yaml:"basic,omitempty"`
	Sessions   *SDKSessionsConfig  `json:"sessions,omitempty"    yaml:"sessions,omitempty"`
	MagicLinks *SDKPKCEConfig      `json:"magic_links,omitempty" yaml:"magic_links,omitempty"`
	OAuth      *SDKPKCEConfig      `json:"oauth,omitempty"       yaml:"oauth,omitempty"`
	TOTPs      *SDKTOTPsConfig     `json:"totps,omitempty"       yaml:"totps,omitempty"`
	SSO        *SDKPKCEConfig      `json:"sso,omitempty"         yaml:"sso,omitempty"`
	OTPs       *B2BOTPsConfig      `json:"otps,omitempty"        yaml:"otps,omitempty"`
	DFPPA      *SDKDFPPAConfig     `json:"DFPPA,omitempty"       yaml:"DFPPA,omitempty"`
	Passwords  *SDKPasswordsConfig `json:"passwords,omitempty"   yaml:"passwords,omitempty"`
	Cookies    *SDKCookiesConfig   `json:"cookies,omitempty"     yaml:"cookies,omitempty"`
}

// SetConsumerConfigRequest replaces the consumer SDK configuration.
type SetConsumerConfigRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`

	Config *ConsumerConfig `json:"config,omitempty" yaml:"config,omitempty"`
}

// ConsumerConfigResponse is returned by the consumer get and set operations.
type ConsumerConfigResponse struct {
	ResponseMeta `yaml:",inline"`

	Config ConsumerConfig `json:"config" yaml:"config"`
}

// SetB2BConfigRequest replaces the B2B SDK configuration.
type SetB2BConfigRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`

	Config *B2BConfig `json:"config,omitempty" yaml:"config,omitempty"`
}

// B2BConfigResponse is returned by the B2B get and set operations.
type B2BConfigResponse struct {
	ResponseMeta `yaml:",inline"`

	Config B2BConfig `json:"config" yaml:"config"`
}

// SDKClient manages frontend and mobile SDK configuration.
type SDKClient interface {
	GetConsumerConfig(ctx context.Context, request *EnvironmentRequest) (*ConsumerConfigResponse, error)
	SetConsumerConfig(ctx context.Context, request *SetConsumerConfigRequest) (*ConsumerConfigResponse, error)
	GetB2BConfig(ctx context.Context, request *EnvironmentRequest) (*B2BConfigResponse, error)
	SetB2BConfig(ctx context.Context, request *SetB2BConfigRequest) (*B2BConfigResponse, error)
}
