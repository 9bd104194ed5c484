package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fivetwenty-io/stytch-mgmt/cmd/stytchmgmt/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := commands.NewRootCommand(version, commit, date)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
