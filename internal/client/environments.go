package client

import (
	"context"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/internal/http"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
)

// EnvironmentsClient implements mgmt.EnvironmentsClient
type EnvironmentsClient struct {
	httpClient *http.Client
}

// NewEnvironmentsClient creates a new environments client
func NewEnvironmentsClient(httpClient *http.Client) *EnvironmentsClient {
	return &EnvironmentsClient{
		httpClient: httpClient,
	}
}

// Create implements mgmt.EnvironmentsClient.Create
func (c *EnvironmentsClient) Create(ctx context.Context, request *mgmt.CreateEnvironmentRequest) (*mgmt.CreateEnvironmentResponse, error) {
	if request == nil {
		request = &mgmt.CreateEnvironmentRequest{}
	}

	return http.Execute[mgmt.CreateEnvironmentResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPost,
		Path:       constants.APIPathEnvironments,
		PathParams: projectParams(request.ProjectSlug),
		Body:       request,
	})
}

// Get implements mgmt.EnvironmentsClient.Get
func (c *EnvironmentsClient) Get(ctx context.Context, request *mgmt.EnvironmentRequest) (*mgmt.GetEnvironmentResponse, error) {
	if request == nil {
		request = &mgmt.EnvironmentRequest{}
	}

	return http.Execute[mgmt.GetEnvironmentResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathEnvironment,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
	})
}

// GetAll implements mgmt.EnvironmentsClient.GetAll
func (c *EnvironmentsClient) GetAll(ctx context.Context, request *mgmt.GetAllEnvironmentsRequest) (*mgmt.GetAllEnvironmentsResponse, error) {
	if request == nil {
		request = &mgmt.GetAllEnvironmentsRequest{}
	}

	return http.Execute[mgmt.GetAllEnvironmentsResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathEnvironments,
		PathParams: projectParams(request.ProjectSlug),
	})
}

// Update implements mgmt.EnvironmentsClient.Update. Only the settings set on
// request are sent; the server leaves the others unchanged.
func (c *EnvironmentsClient) Update(ctx context.Context, request *mgmt.UpdateEnvironmentRequest) (*mgmt.UpdateEnvironmentResponse, error) {
	if request == nil {
		request = &mgmt.UpdateEnvironmentRequest{}
	}

	return http.Execute[mgmt.UpdateEnvironmentResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPatch,
		Path:       constants.APIPathEnvironment,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
		Body:       request,
	})
}

// Delete implements mgmt.EnvironmentsClient.Delete
func (c *EnvironmentsClient) Delete(ctx context.Context, request *mgmt.EnvironmentRequest) (*mgmt.DeleteEnvironmentResponse, error) {
	if request == nil {
		request = &mgmt.EnvironmentRequest{}
	}

	return http.Execute[mgmt.DeleteEnvironmentResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodDelete,
		Path:       constants.APIPathEnvironment,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
	})
}

// GetMetrics implements mgmt.EnvironmentsClient.GetMetrics
func (c *EnvironmentsClient) GetMetrics(ctx context.Context, request *mgmt.EnvironmentRequest) (*mgmt.GetEnvironmentMetricsResponse, error) {
	if request == nil {
		request = &mgmt.EnvironmentRequest{}
	}

	return http.Execute[mgmt.GetEnvironmentMetricsResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathEnvironmentMetrics,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
	})
}
