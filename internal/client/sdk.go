package client

import (
	"context"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/internal/http"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
)

// SDKClient implements mgmt.SDKClient
type SDKClient struct {
	httpClient *http.Client
}

// NewSDKClient creates a new SDK configuration client
func NewSDKClient(httpClient *http.Client) *SDKClient {
	return &SDKClient{
		httpClient: httpClient,
	}
}

// GetConsumerConfig implements mgmt.SDKClient.GetConsumerConfig
func (c *SDKClient) GetConsumerConfig(ctx context.Context, request *mgmt.EnvironmentRequest) (*mgmt.ConsumerConfigResponse, error) {
	if request == nil {
		request = &mgmt.EnvironmentRequest{}
	}

	return http.Execute[mgmt.ConsumerConfigResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathSDKConsumer,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
	})
}

// SetConsumerConfig implements mgmt.SDKClient.SetConsumerConfig
func (c *SDKClient) SetConsumerConfig(ctx context.Context, request *mgmt.SetConsumerConfigRequest) (*mgmt.ConsumerConfigResponse, error) {
	if request == nil {
		request = &mgmt.SetConsumerConfigRequest{}
	}

	return http.Execute[mgmt.ConsumerConfigResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPut,
		Path:       constants.APIPathSDKConsumer,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
		Body:       request,
	})
}

// GetB2BConfig implements mgmt.SDKClient.GetB2BConfig
func (c *SDKClient) GetB2BConfig(ctx context.Context, request *mgmt.EnvironmentRequest) (*mgmt.B2BConfigResponse, error) {
	if request == nil {
		request = &mgmt.EnvironmentRequest{}
	}

	return http.Execute[mgmt.B2BConfigResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathSDKB2B,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
	})
}

// SetB2BConfig implements mgmt.SDKClient.SetB2BConfig
func (c *SDKClient) SetB2BConfig(ctx context.Context, request *mgmt.SetB2BConfigRequest) (*mgmt.B2BConfigResponse, error) {
	if request == nil {
		request = &mgmt.SetB2BConfigRequest{}
	}

	return http.Execute[mgmt.B2BConfigResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPut,
		Path:       constants.APIPathSDKB2B,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
		Body:       request,
	})
}
