package client

import (
	"context"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/internal/http"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
)

// TrustedTokenProfilesClient implements mgmt.TrustedTokenProfilesClient
type TrustedTokenProfilesClient struct {
	httpClient *http.Client
}

// NewTrustedTokenProfilesClient creates a new trusted token profiles client
func NewTrustedTokenProfilesClient(httpClient *http.Client) *TrustedTokenProfilesClient {
	return &TrustedTokenProfilesClient{
		httpClient: httpClient,
	}
}

// Create implements mgmt.TrustedTokenProfilesClient.Create
func (c *TrustedTokenProfilesClient) Create(ctx context.Context, request *mgmt.CreateTrustedTokenProfileRequest) (*mgmt.TrustedTokenProfileResponse, error) {
	if request == nil {
		request = &mgmt.CreateTrustedTokenProfileRequest{}
	}

	return http.Execute[mgmt.TrustedTokenProfileResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPost,
		Path:       constants.APIPathTrustedTokenProfiles,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
		Body:       request,
	})
}

// Get implements mgmt.TrustedTokenProfilesClient.Get
func (c *TrustedTokenProfilesClient) Get(ctx context.Context, request *mgmt.TrustedTokenProfileRequest) (*mgmt.TrustedTokenProfileResponse, error) {
	if request == nil {
		request = &mgmt.TrustedTokenProfileRequest{}
	}

	return http.Execute[mgmt.TrustedTokenProfileResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathTrustedTokenProfile,
		PathParams: profileParams(request.ProjectSlug, request.EnvironmentSlug, request.ProfileID),
	})
}

// GetAll implements mgmt.TrustedTokenProfilesClient.GetAll
func (c *TrustedTokenProfilesClient) GetAll(ctx context.Context, request *mgmt.EnvironmentRequest) (*mgmt.GetAllTrustedTokenProfilesResponse, error) {
	if request == nil {
		request = &mgmt.EnvironmentRequest{}
	}

	return http.Execute[mgmt.GetAllTrustedTokenProfilesResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathTrustedTokenProfiles,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
	})
}

// Update implements mgmt.TrustedTokenProfilesClient.Update
func (c *TrustedTokenProfilesClient) Update(ctx context.Context, request *mgmt.UpdateTrustedTokenProfileRequest) (*mgmt.TrustedTokenProfileResponse, error) {
	if request == nil {
		request = &mgmt.UpdateTrustedTokenProfileRequest{}
	}

	return http.Execute[mgmt.TrustedTokenProfileResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPatch,
		Path:       constants.APIPathTrustedTokenProfile,
		PathParams: profileParams(request.ProjectSlug, request.EnvironmentSlug, request.ProfileID),
		Body:       request,
	})
}

// Delete implements mgmt.TrustedTokenProfilesClient.Delete
func (c *TrustedTokenProfilesClient) Delete(ctx context.Context, request *mgmt.TrustedTokenProfileRequest) (*mgmt.DeleteTrustedTokenProfileResponse, error) {
	if request == nil {
		request = &mgmt.TrustedTokenProfileRequest{}
	}

	return http.Execute[mgmt.DeleteTrustedTokenProfileResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodDelete,
		Path:       constants.APIPathTrustedTokenProfile,
		PathParams: profileParams(request.ProjectSlug, request.EnvironmentSlug, request.ProfileID),
	})
}

// CreatePEMFile implements mgmt.TrustedTokenProfilesClient.CreatePEMFile
func (c *TrustedTokenProfilesClient) CreatePEMFile(ctx context.Context, request *mgmt.CreatePEMFileRequest) (*mgmt.PEMFileResponse, error) {
	if request == nil {
		request = &mgmt.CreatePEMFileRequest{}
	}

	return http.Execute[mgmt.PEMFileResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPost,
		Path:       constants.APIPathPEMFiles,
		PathParams: profileParams(request.ProjectSlug, request.EnvironmentSlug, request.ProfileID),
		Body:       request,
	})
}

// GetPEMFile implements mgmt.TrustedTokenProfilesClient.GetPEMFile
func (c *TrustedTokenProfilesClient) GetPEMFile(ctx context.Context, request *mgmt.PEMFileRequest) (*mgmt.PEMFileResponse, error) {
	if request == nil {
		request = &mgmt.PEMFileRequest{}
	}

	return http.Execute[mgmt.PEMFileResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathPEMFile,
		PathParams: pemFileParams(request),
	})
}

// DeletePEMFile implements mgmt.TrustedTokenProfilesClient.DeletePEMFile
func (c *TrustedTokenProfilesClient) DeletePEMFile(ctx context.Context, request *mgmt.PEMFileRequest) (*mgmt.DeletePEMFileResponse, error) {
	if request == nil {
		request = &mgmt.PEMFileRequest{}
	}

	return http.Execute[mgmt.DeletePEMFileResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodDelete,
		Path:       constants.APIPathPEMFile,
		PathParams: pemFileParams(request),
	})
}

func profileParams(projectSlug, environmentSlug, profileID string) map[string]string {
	return withParam(environmentParams(projectSlug, environmentSlug), constants.ParamProfileID, profileID)
}

func pemFileParams(request *mgmt.PEMFileRequest) map[string]string {
	params := profileParams(request.ProjectSlug, request.EnvironmentSlug, request.ProfileID)

	return withParam(params, constants.ParamPEMFileID, request.PEMFileID)
}
