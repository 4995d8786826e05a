// Package orchestration manages the lifecycle of one load-test workload.
//
// The [Orchestrator] submits a workload exactly once and tears it down with
// foreground cascading deletion. Teardown is idempotent: a workload that is
// already gone counts as deleted, and transient API failures are retried with
// exponential backoff. Creation is never retried; a session cannot proceed
// without its workload.
//
// # Usage
//
//	orch := orchestration.New(k8sClient, log, orchestration.Options{GracePeriodSeconds: 5})
//	handle, err := orch.Create(ctx, spec, "default")
//	if err != nil {
//	    return err
//	}
//	defer orch.Delete(ctx, handle)
//	result, err := watcher.New(orch.Source(handle)).Watch(ctx)
//
// [PodSource] is the status-mapping layer between client-go pod objects and
// the watcher's container observations.
package orchestration
