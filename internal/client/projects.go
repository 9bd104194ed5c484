package client

import (
	"context"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/internal/http"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
)

// ProjectsClient implements mgmt.ProjectsClient
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new projects client
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
	}
}

// Create implements mgmt.ProjectsClient.Create
func (c *ProjectsClient) Create(ctx context.Context, request *mgmt.CreateProjectRequest) (*mgmt.CreateProjectResponse, error) {
	if request == nil {
		request = &mgmt.CreateProjectRequest{}
	}

	return http.Execute[mgmt.CreateProjectResponse](ctx, c.httpClient, &http.Request{
		Method: http.MethodPost,
		Path:   constants.APIPathProjects,
		Body:   request,
	})
}

// Get implements mgmt.ProjectsClient.Get
func (c *ProjectsClient) Get(ctx context.Context, request *mgmt.GetProjectRequest) (*mgmt.GetProjectResponse, error) {
	if request == nil {
		request = &mgmt.GetProjectRequest{}
	}

	return http.Execute[mgmt.GetProjectResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathProject,
		PathParams: projectParams(request.ProjectSlug),
	})
}

// GetAll implements mgmt.ProjectsClient.GetAll
func (c *ProjectsClient) GetAll(ctx context.Context) (*mgmt.GetAllProjectsResponse, error) {
	return http.Execute[mgmt.GetAllProjectsResponse](ctx, c.httpClient, &http.Request{
		Method: http.MethodGet,
		Path:   constants.APIPathProjects,
	})
}

// Update implements mgmt.ProjectsClient.Update
func (c *ProjectsClient) Update(ctx context.Context, request *mgmt.UpdateProjectRequest) (*mgmt.UpdateProjectResponse, error) {
	if request == nil {
		request = &mgmt.UpdateProjectRequest{}
	}

	return http.Execute[mgmt.UpdateProjectResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPatch,
		Path:       constants.APIPathProject,
		PathParams: projectParams(request.ProjectSlug),
		Body:       request,
	})
}

// Delete implements mgmt.ProjectsClient.Delete
func (c *ProjectsClient) Delete(ctx context.Context, request *mgmt.DeleteProjectRequest) (*mgmt.DeleteProjectResponse, error) {
	if request == nil {
		request = &mgmt.DeleteProjectRequest{}
	}

	return http.Execute[mgmt.DeleteProjectResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodDelete,
		Path:       constants.APIPathProject,
		PathParams: projectParams(request.ProjectSlug),
	})
}
