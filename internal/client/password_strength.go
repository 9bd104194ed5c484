package client

import (
	"context"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/internal/http"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
)

// PasswordStrengthConfigClient implements mgmt.PasswordStrengthConfigClient
type PasswordStrengthConfigClient struct {
	httpClient *http.Client
}

// NewPasswordStrengthConfigClient creates a new password strength config client
func NewPasswordStrengthConfigClient(httpClient *http.Client) *PasswordStrengthConfigClient {
	return &PasswordStrengthConfigClient{
		httpClient: httpClient,
	}
}

// Get implements mgmt.PasswordStrengthConfigClient.Get
func (c *PasswordStrengthConfigClient) Get(ctx context.Context, request *mgmt.EnvironmentRequest) (*mgmt.PasswordStrengthConfigResponse, error) {
	if request == nil {
		request = &mgmt.EnvironmentRequest{}
	}

	return http.Execute[mgmt.PasswordStrengthConfigResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathPasswordStrength,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
	})
}

// Set implements mgmt.PasswordStrengthConfigClient.Set
func (c *PasswordStrengthConfigClient) Set(ctx context.Context, request *mgmt.SetPasswordStrengthConfigRequest) (*mgmt.PasswordStrengthConfigResponse, error) {
	if request == nil {
		request = &mgmt.SetPasswordStrengthConfigRequest{}
	}

	return http.Execute[mgmt.PasswordStrengthConfigResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPut,
		Path:       constants.APIPathPasswordStrength,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
		Body:       request,
	})
}
