package watcher

import (
	"context"
	"fmt"
)

// StateKind discriminates the lifecycle state of a container.
type StateKind int

const (
	// StatePending means the container has not started or reports no state yet.
	StatePending StateKind = iota
	// StateRunning means the container is running.
	StateRunning
	// StateTerminated means the container exited.
	StateTerminated
)

func (k StateKind) String() string {
	switch k {
	case StatePending:
		return "Pending"
	case StateRunning:
		return "Running"
	case StateTerminated:
		return "Terminated"
	default:
		return fmt.Sprintf("StateKind(%d)", int(k))
	}
}

// ContainerState is the observed lifecycle state of one container.
// ExitCode and Reason are only meaningful when Kind is StateTerminated.
type ContainerState struct {
	Kind     StateKind
	ExitCode int32
	Reason   string
}

// Pending returns a pending container state.
func Pending() ContainerState { return ContainerState{Kind: StatePending} }

// Running returns a running container state.
func Running() ContainerState { return ContainerState{Kind: StateRunning} }

// Terminated returns a terminated container state.
func Terminated(exitCode int32, reason string) ContainerState {
	return ContainerState{Kind: StateTerminated, ExitCode: exitCode, Reason: reason}
}

// ContainerStatus is one container observation inside a pod.
type ContainerStatus struct {
	Name  string
	State ContainerState
}

// PodStatus is one pod observation. Reported is false while the cluster has
// not yet populated the pod's container statuses.
type PodStatus struct {
	Name       string
	Namespace  string
	Reported   bool
	Containers []ContainerStatus
}

// Source fetches the current pod observations for a run.
type Source interface {
	Observe(ctx context.Context) ([]PodStatus, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]PodStatus, error)

// Observe implements Source.
func (f SourceFunc) Observe(ctx context.Context) ([]PodStatus, error) {
	return f(ctx)
}
