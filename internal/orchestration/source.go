package orchestration

import (
	"context"

	corev1 "k8s.io/api/core/v1"

	"github.com/imamik/feuerwerk/internal/watcher"
)

// PodSource lists a run's pods and maps them into watcher observations.
type PodSource struct {
	api       API
	namespace string
	selector  string
}

// NewPodSource creates a PodSource for a namespace and label selector.
func NewPodSource(api API, namespace, selector string) *PodSource {
	return &PodSource{api: api, namespace: namespace, selector: selector}
}

// Observe implements watcher.Source. Errors are returned unchanged.
func (s *PodSource) Observe(ctx context.Context) ([]watcher.PodStatus, error) {
	pods, err := s.api.ListPods(ctx, s.namespace, s.selector)
	if err != nil {
		return nil, err
	}
	return MapPods(pods), nil
}

// MapPods converts client-go pods into watcher observations, preserving order.
// A pod whose container status list is empty is reported as absent.
func MapPods(pods []corev1.Pod) []watcher.PodStatus {
	out := make([]watcher.PodStatus, 0, len(pods))
	for i := range pods {
		pod := &pods[i]
		status := watcher.PodStatus{
			Name:      pod.Name,
			Namespace: pod.Namespace,
			Reported:  len(pod.Status.ContainerStatuses) > 0,
		}
		for _, cs := range pod.Status.ContainerStatuses {
			status.Containers = append(status.Containers, watcher.ContainerStatus{
				Name:  cs.Name,
				State: mapContainerState(cs),
			})
		}
		out = append(out, status)
	}
	return out
}

// mapContainerState prefers Terminated over Running; Waiting and empty states
// are Pending. A container waiting to be restarted after it exited reports
// its last termination, since the Deployment restarts exited containers.
func mapContainerState(cs corev1.ContainerStatus) watcher.ContainerState {
	state := cs.State
	switch {
	case state.Terminated != nil:
		return watcher.Terminated(state.Terminated.ExitCode, state.Terminated.Reason)
	case state.Running != nil:
		return watcher.Running()
	case state.Waiting != nil && cs.LastTerminationState.Terminated != nil:
		last := cs.LastTerminationState.Terminated
		return watcher.Terminated(last.ExitCode, last.Reason)
	default:
		return watcher.Pending()
	}
}
