// Package main is the entry point for the feuerwerk CLI.
//
// feuerwerk runs a containerized load test on a Kubernetes cluster: it
// creates a workload with one container per replica, waits until a container
// exits, reports the outcome and deletes the workload again.
//
// Commands: run, render, cleanup, version, completion.
//
// For detailed usage information, run:
//
//	feuerwerk --help
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/feuerwerk/cmd/feuerwerk/commands"
	"github.com/imamik/feuerwerk/cmd/feuerwerk/handlers"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Root().ExecuteContext(ctx)
	stop()

	if err == nil {
		return
	}

	var exitErr *handlers.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, exitErr.Err)
		}
		os.Exit(exitErr.Code)
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(handlers.ExitUsage)
}
