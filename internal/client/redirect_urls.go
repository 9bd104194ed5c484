package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/internal/http"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
)

// RedirectURLsClient implements mgmt.RedirectURLsClient
type RedirectURLsClient struct {
	httpClient *http.Client
}

// NewRedirectURLsClient creates a new redirect URLs client
func NewRedirectURLsClient(httpClient *http.Client) *RedirectURLsClient {
	return &RedirectURLsClient{
		httpClient: httpClient,
	}
}

// Create implements mgmt.RedirectURLsClient.Create. Creating a URL that
// already exists adds the requested types to it.
func (c *RedirectURLsClient) Create(ctx context.Context, request *mgmt.CreateRedirectURLRequest) (*mgmt.RedirectURLResponse, error) {
	if request == nil {
		request = &mgmt.CreateRedirectURLRequest{}
	}

	return http.Execute[mgmt.RedirectURLResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPost,
		Path:       constants.APIPathRedirectURLs,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
		Body:       request,
	})
}

// Get implements mgmt.RedirectURLsClient.Get
func (c *RedirectURLsClient) Get(ctx context.Context, request *mgmt.RedirectURLRequest) (*mgmt.RedirectURLResponse, error) {
	if request == nil {
		request = &mgmt.RedirectURLRequest{}
	}

	return http.Execute[mgmt.RedirectURLResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathRedirectURL,
		PathParams: redirectURLParams(request.ProjectSlug, request.EnvironmentSlug, request.URL),
	})
}

// GetAll implements mgmt.RedirectURLsClient.GetAll
func (c *RedirectURLsClient) GetAll(ctx context.Context, request *mgmt.EnvironmentRequest) (*mgmt.GetAllRedirectURLsResponse, error) {
	if request == nil {
		request = &mgmt.EnvironmentRequest{}
	}

	return http.Execute[mgmt.GetAllRedirectURLsResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathRedirectURLs,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
	})
}

// Update implements mgmt.RedirectURLsClient.Update. The valid types sent
// replace the existing ones.
func (c *RedirectURLsClient) Update(ctx context.Context, request *mgmt.UpdateRedirectURLRequest) (*mgmt.RedirectURLResponse, error) {
	if request == nil {
		request = &mgmt.UpdateRedirectURLRequest{}
	}

	return http.Execute[mgmt.RedirectURLResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPatch,
		Path:       constants.APIPathRedirectURL,
		PathParams: redirectURLParams(request.ProjectSlug, request.EnvironmentSlug, request.URL),
		Body:       request,
	})
}

// Delete implements mgmt.RedirectURLsClient.Delete
func (c *RedirectURLsClient) Delete(ctx context.Context, request *mgmt.DeleteRedirectURLRequest) (*mgmt.DeleteRedirectURLResponse, error) {
	if request == nil {
		request = &mgmt.DeleteRedirectURLRequest{}
	}

	var query url.Values
	if request.DoNotPromoteDefaults {
		query = url.Values{}
		query.Set(constants.QueryDoNotPromoteDefaults, strconv.FormatBool(true))
	}

	return http.Execute[mgmt.DeleteRedirectURLResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodDelete,
		Path:       constants.APIPathRedirectURL,
		PathParams: redirectURLParams(request.ProjectSlug, request.EnvironmentSlug, request.URL),
		Query:      query,
	})
}

func redirectURLParams(projectSlug, environmentSlug, redirectURL string) map[string]string {
	return withParam(environmentParams(projectSlug, environmentSlug), constants.ParamURL, redirectURL)
}
