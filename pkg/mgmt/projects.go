package mgmt

import "context"

// Project represents a Stytch project.
type Project struct {
	ProjectSlug string   `json:"project_slug"         yaml:"project_slug"`
	Name        string   `json:"name"                 yaml:"name"`
	Vertical    Vertical `json:"vertical,omitempty"   yaml:"vertical,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// CreateProjectRequest represents a request to create a project. The
// project is created with both a live and a test environment.
type CreateProjectRequest struct {
	Name        string   `json:"name"                   yaml:"name"`
	Vertical    Vertical `json:"vertical,omitempty"     yaml:"vertical,omitempty"`
	ProjectSlug string   `json:"project_slug,omitempty" yaml:"project_slug,omitempty"`
}

// CreateProjectResponse is returned by ProjectsClient.Create.
type CreateProjectResponse struct {
	ResponseMeta `yaml:",inline"`

	Project Project `json:"project" yaml:"project"`
}

// GetProjectRequest identifies a project.
type GetProjectRequest struct {
	ProjectSlug string `json:"-" yaml:"-"`
}

// GetProjectResponse is returned by ProjectsClient.Get.
type GetProjectResponse struct {
	ResponseMeta `yaml:",inline"`

	Project Project `json:"project" yaml:"project"`
}

// GetAllProjectsResponse lists every project in the workspace.
type GetAllProjectsResponse struct {
	ResponseMeta `yaml:",inline"`

	Projects []Project `json:"projects" yaml:"projects"`
}

// UpdateProjectRequest represents a partial project update. Nil fields are
// left unchanged.
type UpdateProjectRequest struct {
	ProjectSlug string `json:"-" yaml:"-"`

	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
}

// UpdateProjectResponse is returned by ProjectsClient.Update.
type UpdateProjectResponse struct {
	ResponseMeta `yaml:",inline"`

	Project Project `json:"project" yaml:"project"`
}

// DeleteProjectRequest identifies the project to delete.
type DeleteProjectRequest struct {
	ProjectSlug string `json:"-" yaml:"-"`
}

// DeleteProjectResponse is returned by ProjectsClient.Delete.
type DeleteProjectResponse struct {
	ResponseMeta `yaml:",inline"`
}

// ProjectsClient manages projects.
type ProjectsClient interface {
	Create(ctx context.Context, request *CreateProjectRequest) (*CreateProjectResponse, error)
	Get(ctx context.Context, request *GetProjectRequest) (*GetProjectResponse, error)
	GetAll(ctx context.Context) (*GetAllProjectsResponse, error)
	Update(ctx context.Context, request *UpdateProjectRequest) (*UpdateProjectResponse, error)
	// Delete removes a project and all of its environments.
	Delete(ctx context.Context, request *DeleteProjectRequest) (*DeleteProjectResponse, error)
}
