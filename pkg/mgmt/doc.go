// Package mgmt provides types, interfaces, and helpers for working with the
// Stytch workspace management API.
//
// # Overview
//
// The mgmt package defines the request and response shapes of every
// management resource (projects, environments, secrets, redirect URLs, email
// templates and so on) together with one client interface per resource, e.g.
// ProjectsClient or RedirectURLsClient. A concrete implementation is provided
// by the mgmtclient package, which validates configuration and wires the
// authenticated transport. Most consumers import mgmtclient to construct a
// client and then work with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
//	  "github.com/fivetwenty-io/stytch-mgmt/pkg/mgmtclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := mgmtclient.New(&mgmt.Config{
//	    WorkspaceKeyID:     "workspace-key-prod-...",
//	    WorkspaceKeySecret: "...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  created, err := cli.Projects().Create(ctx, &mgmt.CreateProjectRequest{
//	    Name:     "My Project",
//	    Vertical: mgmt.VerticalB2B,
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = created.Project.ProjectSlug
//	}
//
// # Partial updates
//
// Update requests use pointer fields; only fields that are set are sent and
// the server leaves every other field unchanged. String, Bool and Int return
// pointers for literals:
//
//	_, err := cli.Environments().Update(ctx, &mgmt.UpdateEnvironmentRequest{
//	  ProjectSlug:     "project-live-...",
//	  EnvironmentSlug: "production",
//	  Name:            mgmt.String("Production"),
//	})
//
// # Errors
//
// Every operation fails with exactly one of four error kinds:
//
//   - ConfigError: the client could not be constructed.
//   - ClientError: a path parameter was empty; no request was sent.
//   - RequestError: the request failed in transit or timed out.
//   - APIError: the API answered with a non-2xx status.
//
// Helpers such as IsNotFound, IsValidationError and IsTimeout make it easy to
// branch on these cases.
//
// # Secrets
//
// Secret values are only returned in full when they are created. Reads return
// MaskedSecret, and event log streaming reads return EventLogStreamingMasked.
// Callers must capture full values from the create response.
package mgmt
