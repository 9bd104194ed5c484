package client

import (
	"context"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/internal/http"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
)

// SecretsClient implements mgmt.SecretsClient
type SecretsClient struct {
	httpClient *http.Client
}

// NewSecretsClient creates a new secrets client
func NewSecretsClient(httpClient *http.Client) *SecretsClient {
	return &SecretsClient{
		httpClient: httpClient,
	}
}

// Create implements mgmt.SecretsClient.Create. The plaintext secret is only
// returned by this call.
func (c *SecretsClient) Create(ctx context.Context, request *mgmt.EnvironmentRequest) (*mgmt.CreateSecretResponse, error) {
	if request == nil {
		request = &mgmt.EnvironmentRequest{}
	}

	return http.Execute[mgmt.CreateSecretResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPost,
		Path:       constants.APIPathSecrets,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
		Body:       emptyBody,
	})
}

// Get implements mgmt.SecretsClient.Get
func (c *SecretsClient) Get(ctx context.Context, request *mgmt.SecretRequest) (*mgmt.GetSecretResponse, error) {
	if request == nil {
		request = &mgmt.SecretRequest{}
	}

	return http.Execute[mgmt.GetSecretResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathSecret,
		PathParams: secretParams(request),
	})
}

// GetAll implements mgmt.SecretsClient.GetAll
func (c *SecretsClient) GetAll(ctx context.Context, request *mgmt.EnvironmentRequest) (*mgmt.GetAllSecretsResponse, error) {
	if request == nil {
		request = &mgmt.EnvironmentRequest{}
	}

	return http.Execute[mgmt.GetAllSecretsResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathSecrets,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
	})
}

// Delete implements mgmt.SecretsClient.Delete
func (c *SecretsClient) Delete(ctx context.Context, request *mgmt.SecretRequest) (*mgmt.DeleteSecretResponse, error) {
	if request == nil {
		request = &mgmt.SecretRequest{}
	}

	return http.Execute[mgmt.DeleteSecretResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodDelete,
		Path:       constants.APIPathSecret,
		PathParams: secretParams(request),
	})
}

func secretParams(request *mgmt.SecretRequest) map[string]string {
	return withParam(environmentParams(request.ProjectSlug, request.EnvironmentSlug), constants.ParamSecretID, request.SecretID)
}
