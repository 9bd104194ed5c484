package commands

import (
	"context"
	"io"
	"strings"

	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NewEventLogStreamingCommand creates the event-log-streaming command group.
func NewEventLogStreamingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "event-log-streaming",
		Aliases: []string{"log-streaming"},
		Short:   "Manage event log streaming destinations",
		Long:    "Show, enable, disable and delete the Datadog and Grafana Loki event log streaming destinations",
	}

	cmd.AddCommand(newEventLogStreamingGetCommand())
	cmd.AddCommand(newEventLogStreamingActionCommand("enable", mgmt.EventLogStreamingClient.Enable))
	cmd.AddCommand(newEventLogStreamingActionCommand("disable", mgmt.EventLogStreamingClient.Disable))
	cmd.AddCommand(newEventLogStreamingActionCommand("delete", mgmt.EventLogStreamingClient.Delete))

	return cmd
}

func newEventLogStreamingGetCommand() *cobra.Command {
	var scope environmentFlags

	cmd := &cobra.Command{
		Use:   "get DESTINATION_TYPE",
		Short: "Show a destination (datadog, grafana_loki)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.EventLogStreaming().Get(cmd.Context(), destinationRequest(&scope, args[0]))
			if err != nil {
				return err
			}

			return writeOutput(cmd, resp, func(w io.Writer) error {
				streaming := &resp.EventLogStreamingConfig

				rows := [][]string{
					{"Destination", string(streaming.DestinationType)},
					{"Status", string(streaming.StreamingStatus)},
				}

				if config := streaming.DestinationConfig; config != nil {
					if config.Datadog != nil {
						rows = append(rows,
							[]string{"Datadog Site", string(config.Datadog.Site)},
							[]string{"API Key", "..." + config.Datadog.APIKeyLastFour},
						)
					}

					if config.GrafanaLoki != nil {
						rows = append(rows,
							[]string{"Hostname", config.GrafanaLoki.Hostname},
							[]string{"Username", config.GrafanaLoki.Username},
							[]string{"Password", "..." + config.GrafanaLoki.PasswordLastFour},
						)
					}
				}

				return renderProperties(w, "", rows)
			})
		},
	}

	scope.register(cmd)

	return cmd
}

type eventLogStreamingAction func(
	c mgmt.EventLogStreamingClient, ctx context.Context, request *mgmt.EventLogStreamingRequest,
) (*mgmt.EventLogStreamingActionResponse, error)

// newEventLogStreamingActionCommand creates a command that calls action on
// one destination.
func newEventLogStreamingActionCommand(use string, action eventLogStreamingAction) *cobra.Command {
	var scope environmentFlags

	title := cases.Title(language.English).String(use)

	cmd := &cobra.Command{
		Use:   use + " DESTINATION_TYPE",
		Short: title + " a destination (datadog, grafana_loki)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := destinationRequest(&scope, args[0])

			resp, err := action(client.EventLogStreaming(), cmd.Context(), request)
			if err != nil {
				return err
			}

			return writeAction(cmd, resp, pastTense(use), "event log streaming destination", string(request.DestinationType))
		},
	}

	scope.register(cmd)

	return cmd
}

func destinationRequest(scope *environmentFlags, destination string) *mgmt.EventLogStreamingRequest {
	return &mgmt.EventLogStreamingRequest{
		ProjectSlug:     scope.projectSlug(),
		EnvironmentSlug: scope.environmentSlug(),
		DestinationType: mgmt.DestinationType(strings.ToUpper(strings.TrimSpace(destination))),
	}
}

func pastTense(verb string) string {
	if strings.HasSuffix(verb, "e") {
		return verb + "d"
	}

	return verb + "ed"
}
