package client

import (
	"context"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/internal/http"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
)

// EmailTemplatesClient implements mgmt.EmailTemplatesClient
type EmailTemplatesClient struct {
	httpClient *http.Client
}

// NewEmailTemplatesClient creates a new email templates client
func NewEmailTemplatesClient(httpClient *http.Client) *EmailTemplatesClient {
	return &EmailTemplatesClient{
		httpClient: httpClient,
	}
}

// Create implements mgmt.EmailTemplatesClient.Create
func (c *EmailTemplatesClient) Create(ctx context.Context, request *mgmt.CreateEmailTemplateRequest) (*mgmt.EmailTemplateResponse, error) {
	if request == nil {
		request = &mgmt.CreateEmailTemplateRequest{}
	}

	return http.Execute[mgmt.EmailTemplateResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPost,
		Path:       constants.APIPathEmailTemplates,
		PathParams: projectParams(request.ProjectSlug),
		Body:       request,
	})
}

// Get implements mgmt.EmailTemplatesClient.Get
func (c *EmailTemplatesClient) Get(ctx context.Context, request *mgmt.EmailTemplateRequest) (*mgmt.EmailTemplateResponse, error) {
	if request == nil {
		request = &mgmt.EmailTemplateRequest{}
	}

	return http.Execute[mgmt.EmailTemplateResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathEmailTemplate,
		PathParams: templateParams(request.ProjectSlug, request.TemplateID),
	})
}

// GetAll implements mgmt.EmailTemplatesClient.GetAll
func (c *EmailTemplatesClient) GetAll(ctx context.Context, request *mgmt.GetAllEmailTemplatesRequest) (*mgmt.GetAllEmailTemplatesResponse, error) {
	if request == nil {
		request = &mgmt.GetAllEmailTemplatesRequest{}
	}

	return http.Execute[mgmt.GetAllEmailTemplatesResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathEmailTemplates,
		PathParams: projectParams(request.ProjectSlug),
	})
}

// Update implements mgmt.EmailTemplatesClient.Update
func (c *EmailTemplatesClient) Update(ctx context.Context, request *mgmt.UpdateEmailTemplateRequest) (*mgmt.EmailTemplateResponse, error) {
	if request == nil {
		request = &mgmt.UpdateEmailTemplateRequest{}
	}

	return http.Execute[mgmt.EmailTemplateResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPatch,
		Path:       constants.APIPathEmailTemplate,
		PathParams: templateParams(request.ProjectSlug, request.TemplateID),
		Body:       request,
	})
}

// Delete implements mgmt.EmailTemplatesClient.Delete
func (c *EmailTemplatesClient) Delete(ctx context.Context, request *mgmt.EmailTemplateRequest) (*mgmt.DeleteEmailTemplateResponse, error) {
	if request == nil {
		request = &mgmt.EmailTemplateRequest{}
	}

	return http.Execute[mgmt.DeleteEmailTemplateResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodDelete,
		Path:       constants.APIPathEmailTemplate,
		PathParams: templateParams(request.ProjectSlug, request.TemplateID),
	})
}

// SetDefault implements mgmt.EmailTemplatesClient.SetDefault
func (c *EmailTemplatesClient) SetDefault(ctx context.Context, request *mgmt.SetDefaultEmailTemplateRequest) (*mgmt.SetDefaultEmailTemplateResponse, error) {
	if request == nil {
		request = &mgmt.SetDefaultEmailTemplateRequest{}
	}

	return http.Execute[mgmt.SetDefaultEmailTemplateResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPost,
		Path:       constants.APIPathEmailTemplateDefault,
		PathParams: defaultTemplateParams(request.ProjectSlug, request.EmailTemplateType),
		Body:       request,
	})
}

// GetDefault implements mgmt.EmailTemplatesClient.GetDefault
func (c *EmailTemplatesClient) GetDefault(ctx context.Context, request *mgmt.DefaultEmailTemplateRequest) (*mgmt.GetDefaultEmailTemplateResponse, error) {
	if request == nil {
		request = &mgmt.DefaultEmailTemplateRequest{}
	}

	return http.Execute[mgmt.GetDefaultEmailTemplateResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathEmailTemplateDefault,
		PathParams: defaultTemplateParams(request.ProjectSlug, request.EmailTemplateType),
	})
}

// UnsetDefault implements mgmt.EmailTemplatesClient.UnsetDefault
func (c *EmailTemplatesClient) UnsetDefault(ctx context.Context, request *mgmt.DefaultEmailTemplateRequest) (*mgmt.UnsetDefaultEmailTemplateResponse, error) {
	if request == nil {
		request = &mgmt.DefaultEmailTemplateRequest{}
	}

	return http.Execute[mgmt.UnsetDefaultEmailTemplateResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodDelete,
		Path:       constants.APIPathEmailTemplateDefault,
		PathParams: defaultTemplateParams(request.ProjectSlug, request.EmailTemplateType),
	})
}

func templateParams(projectSlug, templateID string) map[string]string {
	return withParam(projectParams(projectSlug), constants.ParamTemplateID, templateID)
}

func defaultTemplateParams(projectSlug string, templateType mgmt.EmailTemplateType) map[string]string {
	return withParam(projectParams(projectSlug), constants.ParamEmailTemplateType, string(templateType))
}
