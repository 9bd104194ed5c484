package mgmt

import "context"

// PasswordStrengthConfig is the password policy of an environment.
type PasswordStrengthConfig struct {
	// CheckBreachOnCreation checks new passwords against HaveIBeenPwned.
	CheckBreachOnCreation bool `json:"check_breach_on_creation" yaml:"check_breach_on_creation"`
	// CheckBreachOnAuthentication checks passwords against HaveIBeenPwned on login.
	CheckBreachOnAuthentication bool `json:"check_breach_on_authentication" yaml:"check_breach_on_authentication"`
	// ValidateOnAuthentication forces a reset when a password no longer meets the policy.
	ValidateOnAuthentication bool             `json:"validate_on_authentication"  yaml:"validate_on_authentication"`
	ValidationPolicy         ValidationPolicy `json:"validation_policy,omitempty" yaml:"validation_policy,omitempty"`
	// LUDS settings are nil under the ZXCVBN policy.
	LUDSMinPasswordLength     *int `json:"luds_min_password_length,omitempty"     yaml:"luds_min_password_length,omitempty"`
	LUDSMinPasswordComplexity *int `json:"luds_min_password_complexity,omitempty" yaml:"luds_min_password_complexity,omitempty"`
}

// SetPasswordStrengthConfigRequest replaces the password policy.
type SetPasswordStrengthConfigRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`

	PasswordStrengthConfig `yaml:",inline"`
}

// PasswordStrengthConfigResponse is returned by get and set.
type PasswordStrengthConfigResponse struct {
	ResponseMeta `yaml:",inline"`

	PasswordStrengthConfig PasswordStrengthConfig `json:"password_strength_config" yaml:"password_strength_config"`
}

// PasswordStrengthConfigClient manages the password policy of an environment.
type PasswordStrengthConfigClient interface {
	Get(ctx context.Context, request *EnvironmentRequest) (*PasswordStrengthConfigResponse, error)
	Set(ctx context.Context, request *SetPasswordStrengthConfigRequest) (*PasswordStrengthConfigResponse, error)
}
