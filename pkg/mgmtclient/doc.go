// Package mgmtclient provides the entry point for constructing a workspace
// management API client that implements the mgmt.Client interface.
//
// Quick start
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
//
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
//
//	  envs, err := cli.Environments().GetAll(ctx, &mgmt.GetAllEnvironmentsRequest{
//	    ProjectSlug: created.Project.ProjectSlug,
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = envs
//	}
//
// # Helpers
//
// NewWithCredentials, NewWithBaseURL and NewFromEnv wrap New with the
// corresponding configuration. NewFromEnv reads STYTCH_WORKSPACE_KEY_ID,
// STYTCH_WORKSPACE_KEY_SECRET and STYTCH_BASE_URL.
package mgmtclient
