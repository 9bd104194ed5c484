package mgmt

import "context"

// DatadogConfig configures a Datadog destination.
type DatadogConfig struct {
	APIKey string      `json:"api_key"        yaml:"api_key"`
	Site   DatadogSite `json:"site,omitempty" yaml:"site,omitempty"`
}

// DatadogConfigMasked is a Datadog destination as returned by reads.
type DatadogConfigMasked struct {
	APIKeyLastFour string      `json:"api_key_last_four" yaml:"api_key_last_four"`
	Site           DatadogSite `json:"site,omitempty"    yaml:"site,omitempty"`
}

// GrafanaLokiConfig configures a Grafana Loki destination.
type GrafanaLokiConfig struct {
	Hostname string `json:"hostname" yaml:"hostname"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// GrafanaLokiConfigMasked is a Grafana Loki destination as returned by reads.
type GrafanaLokiConfigMasked struct {
	Hostname         string `json:"hostname"           yaml:"hostname"`
	Username         string `json:"username"           yaml:"username"`
	PasswordLastFour string `json:"password_last_four" yaml:"password_last_four"`
}

// DestinationConfig holds the settings for exactly one destination.
type DestinationConfig struct {
	Datadog     *DatadogConfig     `json:"datadog,omitempty"      yaml:"datadog,omitempty"`
	GrafanaLoki *GrafanaLokiConfig `json:"grafana_loki,omitempty" yaml:"grafana_loki,omitempty"`
}

// DestinationConfigMasked is DestinationConfig with credentials masked.
type DestinationConfigMasked struct {
	Datadog     *DatadogConfigMasked     `json:"datadog,omitempty"      yaml:"datadog,omitempty"`
	GrafanaLoki *GrafanaLokiConfigMasked `json:"grafana_loki,omitempty" yaml:"grafana_loki,omitempty"`
}

// EventLogStreaming is an event log streaming destination.
type EventLogStreaming struct {
	DestinationType   DestinationType    `json:"destination_type,omitempty"   yaml:"destination_type,omitempty"`
	DestinationConfig *DestinationConfig `json:"destination_config,omitempty" yaml:"destination_config,omitempty"`
	StreamingStatus   StreamingStatus    `json:"streaming_status,omitempty"   yaml:"streaming_status,omitempty"`
}

// EventLogStreamingMasked is an event log streaming destination with
// sensitive values such as API keys and passwords masked.
type EventLogStreamingMasked struct {
	DestinationType   DestinationType          `json:"destination_type,omitempty"   yaml:"destination_type,omitempty"`
	DestinationConfig *DestinationConfigMasked `json:"destination_config,omitempty" yaml:"destination_config,omitempty"`
	StreamingStatus   StreamingStatus          `json:"streaming_status,omitempty"   yaml:"streaming_status,omitempty"`
}

// CreateEventLogStreamingRequest configures a new destination.
type CreateEventLogStreamingRequest struct {
	ProjectSlug     string `json:"-" yaml:"-"`
	EnvironmentSlug string `json:"-" yaml:"-"`

	DestinationType   DestinationType    `json:"destination_type"             yaml:"destination_type"`
	DestinationConfig *DestinationConfig `json:"destination_config,omitempty" yaml:"destination_config,omitempty"`
}

// EventLogStreamingRequest identifies a destination of an environment.
type EventLogStreamingRequest struct {
	ProjectSlug     string          `json:"-" yaml:"-"`
	EnvironmentSlug string          `json:"-" yaml:"-"`
	DestinationType DestinationType `json:"-" yaml:"-"`
}

// UpdateEventLogStreamingRequest replaces the settings of a destination.
type UpdateEventLogStreamingRequest struct {
	ProjectSlug     string          `json:"-" yaml:"-"`
	EnvironmentSlug string          `json:"-" yaml:"-"`
	DestinationType DestinationType `json:"-" yaml:"-"`

	DestinationConfig *DestinationConfig `json:"destination_config,omitempty" yaml:"destination_config,omitempty"`
}

// EventLogStreamingResponse is returned by create and update.
type EventLogStreamingResponse struct {
	ResponseMeta `yaml:",inline"`

	EventLogStreamingConfig EventLogStreaming `json:"event_log_streaming_config" yaml:"event_log_streaming_config"`
}

// GetEventLogStreamingResponse carries a masked destination.
type GetEventLogStreamingResponse struct {
	ResponseMeta `yaml:",inline"`

	EventLogStreamingConfig EventLogStreamingMasked `json:"event_log_streaming_config" yaml:"event_log_streaming_config"`
}

// EventLogStreamingActionResponse is returned by delete, enable and disable.
type EventLogStreamingActionResponse struct {
	ResponseMeta `yaml:",inline"`
}

// EventLogStreamingClient manages event log streaming destinations.
type EventLogStreamingClient interface {
	Create(ctx context.Context, request *CreateEventLogStreamingRequest) (*EventLogStreamingResponse, error)
	Get(ctx context.Context, request *EventLogStreamingRequest) (*GetEventLogStreamingResponse, error)
	Update(ctx context.Context, request *UpdateEventLogStreamingRequest) (*EventLogStreamingResponse, error)
	Delete(ctx context.Context, request *EventLogStreamingRequest) (*EventLogStreamingActionResponse, error)
	Enable(ctx context.Context, request *EventLogStreamingRequest) (*EventLogStreamingActionResponse, error)
	Disable(ctx context.Context, request *EventLogStreamingRequest) (*EventLogStreamingActionResponse, error)
}
