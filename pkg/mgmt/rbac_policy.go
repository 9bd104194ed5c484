package mgmt

import "context"

// RBACPolicy is the role-based access control policy of an environment.
type RBACPolicy struct {
	// StytchResources always exist and can never be overridden or deleted.
	StytchResources []RBACResource `json:"stytch_resources" yaml:"stytch_resources"`
	CustomRoles     []RBACRole     `json:"custom_roles"     yaml:"custom_roles"`
	CustomResources []RBACResource `json:"custom_resources" yaml:"custom_resources"`
	CustomScopes    []RBACScope    `json:"custom_scopes"    yaml:"custom_scopes"`

	// B2B projects only.
	StytchMember *RBACDefaultRole `json:"stytch_member,omitempty" yaml:"stytch_member,omitempty"`
	StytchAdmin  *RBACDefaultRole `json:"stytch_admin,omitempty"  yaml:"stytch_admin,omitempty"`
	// Consumer projects only.
	StytchUser *RBACDefaultRole `json:"stytch_user,omitempty" yaml:"stytch_user,omitempty"`
}

// RBACPermission grants actions on a resource.
type RBACPermission struct {
	ResourceID string   `json:"resource_id" yaml:"resource_id"`
	Actions    []string `json:"actions"     yaml:"actions"`
}

// RBACDefaultRole is a Stytch-managed role; only its permissions are editable.
type RBACDefaultRole struct {
	Permissions []RBACPermission `json:"permissions" yaml:"permissions"`
}

// RBACResource is a resource and the actions it supports.
type RBACResource struct {
	ResourceID       string   `json:"resource_id"       yaml:"resource_id"`
	Description      string   `json:"description"       yaml:"description"`
	AvailableActions []string `json:"available_actions" yaml:"available_actions"`
}

// RBACRole is a custom role.
type RBACRole struct {
	RoleID      string           `json:"role_id"     yaml:"role_id"`
	Description string           `json:"description" yaml:"description"`
	Permissions []RBACPermission `json:"permissions" yaml:"permissions"`
}

// RBACScope is a custom OAuth scope.
type RBACScope struct {
	Scope       string           `json:"scope"       yaml:"scope"`
	Description string           `json:"description" yaml:"description"`
	Permissions []RBACPermission `json:"permissions" yaml:"permissions"`
}

// SetRBACPolicyRequest replaces the editable parts of the policy.
type SetRBACPolicyRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`

	StytchMember    *RBACDefaultRole `json:"stytch_member,omitempty"    yaml:"stytch_member,omitempty"`
	StytchAdmin     *RBACDefaultRole `json:"stytch_admin,omitempty"     yaml:"stytch_admin,omitempty"`
	StytchUser      *RBACDefaultRole `json:"stytch_user,omitempty"      yaml:"stytch_user,omitempty"`
	CustomRoles     []RBACRole       `json:"custom_roles,omitempty"     yaml:"custom_roles,omitempty"`
	CustomResources []RBACResource   `json:"custom_resources,omitempty" yaml:"custom_resources,omitempty"`
	CustomScopes    []RBACScope      `json:"custom_scopes,omitempty"    yaml:"custom_scopes,omitempty"`
}

// RBACPolicyResponse is returned by get and set.
type RBACPolicyResponse struct {
	ResponseMeta `yaml:",inline"`

	Policy RBACPolicy `json:"policy" yaml:"policy"`
}

// RBACPolicyClient manages the RBAC policy of an environment.
type RBACPolicyClient interface {
	Get(ctx context.Context, request *EnvironmentRequest) (*RBACPolicyResponse, error)
	Set(ctx context.Context, request *SetRBACPolicyRequest) (*RBACPolicyResponse, error)
}
