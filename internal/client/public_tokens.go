package client

import (
	"context"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/internal/http"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
)

// PublicTokensClient implements mgmt.PublicTokensClient
type PublicTokensClient struct {
	httpClient *http.Client
}

// NewPublicTokensClient creates a new public tokens client
func NewPublicTokensClient(httpClient *http.Client) *PublicTokensClient {
	return &PublicTokensClient{
		httpClient: httpClient,
	}
}

// Create implements mgmt.PublicTokensClient.Create
func (c *PublicTokensClient) Create(ctx context.Context, request *mgmt.EnvironmentRequest) (*mgmt.CreatePublicTokenResponse, error) {
	if request == nil {
		request = &mgmt.EnvironmentRequest{}
	}

	return http.Execute[mgmt.CreatePublicTokenResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPost,
		Path:       constants.APIPathPublicTokens,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
		Body:       emptyBody,
	})
}

// Get implements mgmt.PublicTokensClient.Get
func (c *PublicTokensClient) Get(ctx context.Context, request *mgmt.PublicTokenRequest) (*mgmt.GetPublicTokenResponse, error) {
	if request == nil {
		request = &mgmt.PublicTokenRequest{}
	}

	return http.Execute[mgmt.GetPublicTokenResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathPublicToken,
		PathParams: publicTokenParams(request),
	})
}

// GetAll implements mgmt.PublicTokensClient.GetAll
func (c *PublicTokensClient) GetAll(ctx context.Context, request *mgmt.EnvironmentRequest) (*mgmt.GetAllPublicTokensResponse, error) {
	if request == nil {
		request = &mgmt.EnvironmentRequest{}
	}

	return http.Execute[mgmt.GetAllPublicTokensResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathPublicTokens,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
	})
}

// Delete implements mgmt.PublicTokensClient.Delete
func (c *PublicTokensClient) Delete(ctx context.Context, request *mgmt.PublicTokenRequest) (*mgmt.DeletePublicTokenResponse, error) {
	if request == nil {
		request = &mgmt.PublicTokenRequest{}
	}

	return http.Execute[mgmt.DeletePublicTokenResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodDelete,
		Path:       constants.APIPathPublicToken,
		PathParams: publicTokenParams(request),
	})
}

func publicTokenParams(request *mgmt.PublicTokenRequest) map[string]string {
	return withParam(environmentParams(request.ProjectSlug, request.EnvironmentSlug), constants.ParamPublicToken, request.PublicToken)
}
