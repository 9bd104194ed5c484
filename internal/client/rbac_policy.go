package client

import (
	"context"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/internal/http"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
)

// RBACPolicyClient implements mgmt.RBACPolicyClient
type RBACPolicyClient struct {
	httpClient *http.Client
}

// NewRBACPolicyClient creates a new RBAC policy client
func NewRBACPolicyClient(httpClient *http.Client) *RBACPolicyClient {
	return &RBACPolicyClient{
		httpClient: httpClient,
	}
}

// Get implements mgmt.RBACPolicyClient.Get
func (c *RBACPolicyClient) Get(ctx context.Context, request *mgmt.EnvironmentRequest) (*mgmt.RBACPolicyResponse, error) {
	if request == nil {
		request = &mgmt.EnvironmentRequest{}
	}

	return http.Execute[mgmt.RBACPolicyResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathRBACPolicy,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
	})
}

// Set implements mgmt.RBACPolicyClient.Set. The policy sent replaces the
// stored one.
func (c *RBACPolicyClient) Set(ctx context.Context, request *mgmt.SetRBACPolicyRequest) (*mgmt.RBACPolicyResponse, error) {
	if request == nil {
		request = &mgmt.SetRBACPolicyRequest{}
	}

	return http.Execute[mgmt.RBACPolicyResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPut,
		Path:       constants.APIPathRBACPolicy,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
		Body:       request,
	})
}
