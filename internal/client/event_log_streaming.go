package client

import (
	"context"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/fivetwenty-io/stytch-mgmt/internal/http"
	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
)

// EventLogStreamingClient implements mgmt.EventLogStreamingClient
type EventLogStreamingClient struct {
	httpClient *http.Client
}

// NewEventLogStreamingClient creates a new event log streaming client
func NewEventLogStreamingClient(httpClient *http.Client) *EventLogStreamingClient {
	return &EventLogStreamingClient{
		httpClient: httpClient,
	}
}

// Create implements mgmt.EventLogStreamingClient.Create. New destinations
// start disabled.
func (c *EventLogStreamingClient) Create(ctx context.Context, request *mgmt.CreateEventLogStreamingRequest) (*mgmt.EventLogStreamingResponse, error) {
	if request == nil {
		request = &mgmt.CreateEventLogStreamingRequest{}
	}

	return http.Execute[mgmt.EventLogStreamingResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPost,
		Path:       constants.APIPathEventLogStreaming,
		PathParams: environmentParams(request.ProjectSlug, request.EnvironmentSlug),
		Body:       request,
	})
}

// Get implements mgmt.EventLogStreamingClient.Get. Credentials in the
// returned configuration are masked.
func (c *EventLogStreamingClient) Get(ctx context.Context, request *mgmt.EventLogStreamingRequest) (*mgmt.GetEventLogStreamingResponse, error) {
	if request == nil {
		request = &mgmt.EventLogStreamingRequest{}
	}

	return http.Execute[mgmt.GetEventLogStreamingResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodGet,
		Path:       constants.APIPathEventLogStreamingDest,
		PathParams: destinationParams(request.ProjectSlug, request.EnvironmentSlug, request.DestinationType),
	})
}

// Update implements mgmt.EventLogStreamingClient.Update
func (c *EventLogStreamingClient) Update(ctx context.Context, request *mgmt.UpdateEventLogStreamingRequest) (*mgmt.EventLogStreamingResponse, error) {
	if request == nil {
		request = &mgmt.UpdateEventLogStreamingRequest{}
	}

	return http.Execute[mgmt.EventLogStreamingResponse](ctx, c.httpClient, &http.Request{
		Method:     http.MethodPatch,
		Path:       constants.APIPathEventLogStreamingDest,
		PathParams: destinationParams(request.ProjectSlug, request.EnvironmentSlug, request.DestinationType),
		Body:       request,
	})
}

// Delete implements mgmt.EventLogStreamingClient.Delete
func (c *EventLogStreamingClient) Delete(ctx context.Context, request *mgmt.EventLogStreamingRequest) (*mgmt.EventLogStreamingActionResponse, error) {
	return c.action(ctx, http.MethodDelete, constants.APIPathEventLogStreamingDest, request)
}

// Enable implements mgmt.EventLogStreamingClient.Enable
func (c *EventLogStreamingClient) Enable(ctx context.Context, request *mgmt.EventLogStreamingRequest) (*mgmt.EventLogStreamingActionResponse, error) {
	return c.action(ctx, http.MethodPost, constants.APIPathEventLogStreamingEnable, request)
}

// Disable implements mgmt.EventLogStreamingClient.Disable
func (c *EventLogStreamingClient) Disable(ctx context.Context, request *mgmt.EventLogStreamingRequest) (*mgmt.EventLogStreamingActionResponse, error) {
	return c.action(ctx, http.MethodPost, constants.APIPathEventLogStreamingDisable, request)
}

func (c *EventLogStreamingClient) action(ctx context.Context, method, path string, request *mgmt.EventLogStreamingRequest) (*mgmt.EventLogStreamingActionResponse, error) {
	if request == nil {
		request = &mgmt.EventLogStreamingRequest{}
	}

	var body interface{}
	if method == http.MethodPost {
		body = emptyBody
	}

	return http.Execute[mgmt.EventLogStreamingActionResponse](ctx, c.httpClient, &http.Request{
		Method:     method,
		Path:       path,
		PathParams: destinationParams(request.ProjectSlug, request.EnvironmentSlug, request.DestinationType),
		Body:       body,
	})
}

func destinationParams(projectSlug, environmentSlug string, destinationType mgmt.DestinationType) map[string]string {
	return withParam(environmentParams(projectSlug, environmentSlug), constants.ParamDestinationType, string(destinationType))
}
