package mgmt

// The management API may add enum values at any time. Each enum below is a
// string type with the values known to this client; unknown values decode
// unchanged and report IsKnown() == false.

func oneOf[T ~string](v T, known ...T) bool {
	for _, k := range known {
		if v == k {
			return true
		}
	}

	return false
}

// Vertical is the product vertical of a project.
type Vertical string

const (
	VerticalAll      Vertical = "ALL"
	VerticalConsumer Vertical = "CONSUMER"
	VerticalB2B      Vertical = "B2B"
)

// IsKnown reports whether v is a vertical known to this client.
func (v Vertical) IsKnown() bool {
	return oneOf(v, VerticalAll, VerticalConsumer, VerticalB2B)
}

// EnvironmentType distinguishes live and test environments.
type EnvironmentType string

const (
	EnvironmentTypeLive EnvironmentType = "LIVE"
	EnvironmentTypeTest EnvironmentType = "TEST"
)

// IsKnown reports whether t is an environment type known to this client.
func (t EnvironmentType) IsKnown() bool {
	return oneOf(t, EnvironmentTypeLive, EnvironmentTypeTest)
}

// RedirectURLType is the flow a redirect URL is valid for.
type RedirectURLType string

const (
	RedirectURLTypeLogin         RedirectURLType = "LOGIN"
	RedirectURLTypeInvite        RedirectURLType = "INVITE"
	RedirectURLTypeSignup        RedirectURLType = "SIGNUP"
	RedirectURLTypeResetPassword RedirectURLType = "RESET_PASSWORD"
	RedirectURLTypeDiscovery     RedirectURLType = "DISCOVERY"
)

// IsKnown reports whether t is a redirect URL type known to this client.
func (t RedirectURLType) IsKnown() bool {
	return oneOf(t,
		RedirectURLTypeLogin,
		RedirectURLTypeInvite,
		RedirectURLTypeSignup,
		RedirectURLTypeResetPassword,
		RedirectURLTypeDiscovery,
	)
}

// EmailTemplateType is the email flow a template is used for.
type EmailTemplateType string

const (
	EmailTemplateTypeLogin                    EmailTemplateType = "LOGIN"
	EmailTemplateTypeSignup                   EmailTemplateType = "SIGNUP"
	EmailTemplateTypeInvite                   EmailTemplateType = "INVITE"
	EmailTemplateTypeResetPassword            EmailTemplateType = "RESET_PASSWORD"
	EmailTemplateTypeOneTimePasscode          EmailTemplateType = "ONE_TIME_PASSCODE"
	EmailTemplateTypeOneTimePasscodeSignup    EmailTemplateType = "ONE_TIME_PASSCODE_SIGNUP"
	EmailTemplateTypeVerifyEmailPasswordReset EmailTemplateType = "VERIFY_EMAIL_PASSWORD_RESET"
	EmailTemplateTypeUnlock                   EmailTemplateType = "UNLOCK"
	EmailTemplateTypePrebuilt                 EmailTemplateType = "PREBUILT"
)

// IsKnown reports whether t is an email template type known to this client.
func (t EmailTemplateType) IsKnown() bool {
	return oneOf(t,
		EmailTemplateTypeLogin,
		EmailTemplateTypeSignup,
		EmailTemplateTypeInvite,
		EmailTemplateTypeResetPassword,
		EmailTemplateTypeOneTimePasscode,
		EmailTemplateTypeOneTimePasscodeSignup,
		EmailTemplateTypeVerifyEmailPasswordReset,
		EmailTemplateTypeUnlock,
		EmailTemplateTypePrebuilt,
	)
}

// FontFamily is the font used by prebuilt email templates.
type FontFamily string

const (
	FontFamilyArial         FontFamily = "ARIAL"
	FontFamilyBrushScriptMT FontFamily = "BRUSH_SCRIPT_MT"
	FontFamilyCourierNew    FontFamily = "COURIER_NEW"
	FontFamilyGeorgia       FontFamily = "GEORGIA"
	FontFamilyHelvetica     FontFamily = "HELVETICA"
	FontFamilyTahoma        FontFamily = "TAHOMA"
	FontFamilyTimesNewRoman FontFamily = "TIMES_NEW_ROMAN"
	FontFamilyTrebuchetMS   FontFamily = "TREBUCHET_MS"
	FontFamilyVerdana       FontFamily = "VERDANA"
)

// IsKnown reports whether f is a font family known to this client.
func (f FontFamily) IsKnown() bool {
	return oneOf(f,
		FontFamilyArial,
		FontFamilyBrushScriptMT,
		FontFamilyCourierNew,
		FontFamilyGeorgia,
		FontFamilyHelvetica,
		FontFamilyTahoma,
		FontFamilyTimesNewRoman,
		FontFamilyTrebuchetMS,
		FontFamilyVerdana,
	)
}

// TextAlignment is the text alignment used by prebuilt email templates.
type TextAlignment string

const (
	TextAlignmentLeft   TextAlignment = "LEFT"
	TextAlignmentCenter TextAlignment = "CENTER"
)

// IsKnown reports whether a is a text alignment known to this client.
func (a TextAlignment) IsKnown() bool {
	return oneOf(a, TextAlignmentLeft, TextAlignmentCenter)
}

// JWTTemplateType selects the session or machine-to-machine JWT template.
type JWTTemplateType string

const (
	JWTTemplateTypeSession JWTTemplateType = "SESSION"
	JWTTemplateTypeM2M     JWTTemplateType = "M2M"
)

// IsKnown reports whether t is a JWT template type known to this client.
func (t JWTTemplateType) IsKnown() bool {
	return oneOf(t, JWTTemplateTypeSession, JWTTemplateTypeM2M)
}

// ValidationPolicy is the password validation policy.
type ValidationPolicy string

const (
	ValidationPolicyZXCVBN ValidationPolicy = "ValidationPolicyZXCVBN"
	ValidationPolicyLUDS   ValidationPolicy = "ValidationPolicyLUDS"
)

// IsKnown reports whether p is a validation policy known to this client.
func (p ValidationPolicy) IsKnown() bool {
	return oneOf(p, ValidationPolicyZXCVBN, ValidationPolicyLUDS)
}

// PublicKeyType is how a trusted token profile publishes its keys.
type PublicKeyType string

const (
	PublicKeyTypeJWK PublicKeyType = "JWK"
	PublicKeyTypePEM PublicKeyType = "PEM"
)

// IsKnown reports whether t is a public key type known to this client.
func (t PublicKeyType) IsKnown() bool {
	return oneOf(t, PublicKeyTypeJWK, PublicKeyTypePEM)
}

// DestinationType is an event log streaming destination.
type DestinationType string

const (
	DestinationTypeDatadog     DestinationType = "DATADOG"
	DestinationTypeGrafanaLoki DestinationType = "GRAFANA_LOKI"
)

// IsKnown reports whether t is a destination type known to this client.
func (t DestinationType) IsKnown() bool {
	return oneOf(t, DestinationTypeDatadog, DestinationTypeGrafanaLoki)
}

// DatadogSite is the Datadog region events are sent to.
type DatadogSite string

const (
	DatadogSiteUS  DatadogSite = "US"
	DatadogSiteUS3 DatadogSite = "US3"
	DatadogSiteUS5 DatadogSite = "US5"
	DatadogSiteEU  DatadogSite = "EU"
	DatadogSiteAP1 DatadogSite = "AP1"
)

// IsKnown reports whether s is a Datadog site known to this client.
func (s DatadogSite) IsKnown() bool {
	return oneOf(s, DatadogSiteUS, DatadogSiteUS3, DatadogSiteUS5, DatadogSiteEU, DatadogSiteAP1)
}

// StreamingStatus is the state of an event log streaming destination.
type StreamingStatus string

const (
	StreamingStatusActive   StreamingStatus = "ACTIVE"
	StreamingStatusDisabled StreamingStatus = "DISABLED"
	StreamingStatusPending  StreamingStatus = "PENDING"
)

// IsKnown reports whether s is a streaming status known to this client.
func (s StreamingStatus) IsKnown() bool {
	return oneOf(s, StreamingStatusActive, StreamingStatusDisabled, StreamingStatusPending)
}

// HTTPOnlyCookies controls HttpOnly session cookies issued by the SDKs.
type HTTPOnlyCookies string

const (
	HTTPOnlyCookiesDisabled HTTPOnlyCookies = "DISABLED"
	HTTPOnlyCookiesEnabled  HTTPOnlyCookies = "ENABLED"
	HTTPOnlyCookiesEnforced HTTPOnlyCookies = "ENFORCED"
)

// IsKnown reports whether c is an HttpOnly cookie setting known to this client.
func (c HTTPOnlyCookies) IsKnown() bool {
	return oneOf(c, HTTPOnlyCookiesDisabled, HTTPOnlyCookiesEnabled, HTTPOnlyCookiesEnforced)
}

// DFPPASetting is the device fingerprinting protected auth mode.
type DFPPASetting string

const (
	DFPPASettingEnabled  DFPPASetting = "ENABLED"
	DFPPASettingPassive  DFPPASetting = "PASSIVE"
	DFPPASettingDisabled DFPPASetting = "DISABLED"
)

// IsKnown reports whether s is a DFPPA setting known to this client.
func (s DFPPASetting) IsKnown() bool {
	return oneOf(s, DFPPASettingEnabled, DFPPASettingPassive, DFPPASettingDisabled)
}

// DFPPAOnChallenge is the action taken when DFPPA issues a challenge.
type DFPPAOnChallenge string

const (
	DFPPAOnChallengeAllow          DFPPAOnChallenge = "ALLOW"
	DFPPAOnChallengeBlock          DFPPAOnChallenge = "BLOCK"
	DFPPAOnChallengeTriggerCaptcha DFPPAOnChallenge = "TRIGGER_CAPTCHA"
)

// IsKnown reports whether a is a DFPPA challenge action known to this client.
func (a DFPPAOnChallenge) IsKnown() bool {
	return oneOf(a, DFPPAOnChallengeAllow, DFPPAOnChallengeBlock, DFPPAOnChallengeTriggerCaptcha)
}

// SMSAutofillMetadataType is the kind of SMS autofill metadata.
type SMSAutofillMetadataType string

const (
	SMSAutofillMetadataTypeDomain SMSAutofillMetadataType = "domain"
	SMSAutofillMetadataTypeHash   SMSAutofillMetadataType = "hash"
)

// IsKnown reports whether t is an SMS autofill metadata type known to this client.
func (t SMSAutofillMetadataType) IsKnown() bool {
	return oneOf(t, SMSAutofillMetadataTypeDomain, SMSAutofillMetadataTypeHash)
}
