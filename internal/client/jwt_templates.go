package client

import (
	"context"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/internal/http"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
)

// JWTTemplatesClient implements mgmt.JWTTemplatesClient
type JWTTemplatesClient struct {
	httpClient *http.Client
}

// NewJWTTemplatesClient creates a new JWT templates client
func NewJWTTemplatesClient(httpClient *http.Client) *JWTTemplatesClient {
	return &JWTTemplatesClient{
		httpClient: httpClient,
	}
}

// Get implements mgmt.JWTTemplatesClient.Get
func (c *JWTTemplatesClient) Get(ctx context.Context, request *mgmt.GetJWTTemplateRequest) (*mgmt.JWTTemplateResponse, error) {
	if request == nil {
		request = &mgmt.GetJWTTemplateRequest{}
	}

	return http.Execute[mgmt.JWTTemplateResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathJWTTemplate,
		PathParams: jwtTemplateParams(request.ProjectSlug, request.EnvironmentSlug, request.JWTTemplateType),
	})
}

// Set implements mgmt.JWTTemplatesClient.Set
func (c *JWTTemplatesClient) Set(ctx context.Context, request *mgmt.SetJWTTemplateRequest) (*mgmt.JWTTemplateResponse, error) {
	if request == nil {
		request = &mgmt.SetJWTTemplateRequest{}
	}

	return http.Execute[mgmt.JWTTemplateResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPut,
		Path:       constants.APIPathJWTTemplate,
		PathParams: jwtTemplateParams(request.ProjectSlug, request.EnvironmentSlug, request.JWTTemplateType),
		Body:       request,
	})
}

func jwtTemplateParams(projectSlug, environmentSlug string, templateType mgmt.JWTTemplateType) map[string]string {
	return withParam(environmentParams(projectSlug, environmentSlug), constants.ParamJWTTemplateType, string(templateType))
}
