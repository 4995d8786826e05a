package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/imamik/feuerwerk/internal/orchestration"
	"github.com/imamik/feuerwerk/internal/runner"
	"github.com/imamik/feuerwerk/internal/util/naming"
)

// CleanupOptions holds the cleanup command input.
type CleanupOptions struct {
	Name               string
	Namespace          string
	Kubeconfig         string
	KubeContext        string
	GracePeriodSeconds int64
}

// Cleanup handles the cleanup command. Deleting a workload that is already
// gone succeeds.
func Cleanup(ctx context.Context, out io.Writer, opts CleanupOptions) error {
	if opts.Name == "" {
		return fatal(fmt.Errorf("workload name is required"))
	}
	if opts.Namespace == "" {
		opts.Namespace = "default"
	}

	if !naming.IsWorkload(opts.Name) {
		logger().Info("name does not look like a generated workload name", "name", opts.Name)
	}

	api, err := newKubeClient(opts.Kubeconfig, opts.KubeContext)
	if err != nil {
		return fatal(err)
	}

	orch := orchestration.New(api, logger().WithName("orchestrator"), orchestration.Options{
		GracePeriodSeconds: opts.GracePeriodSeconds,
	})
	handle := &orchestration.Handle{Name: opts.Name, Namespace: opts.Namespace}
	if err := orch.Delete(ctx, handle); err != nil {
		return &ExitError{Code: runner.ExitFatal, Err: err}
	}

	fmt.Fprintf(out, "Workload %s/%s deleted\n", opts.Namespace, opts.Name)
	return nil
}
