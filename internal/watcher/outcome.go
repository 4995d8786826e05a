package watcher

import "fmt"

// OutcomeKind is the closed set of terminal classifications of a watch session.
type OutcomeKind int

const (
	// OutcomeSucceeded means a container exited with code 0.
	OutcomeSucceeded OutcomeKind = iota
	// OutcomeFailedExit means a container exited with a non-zero code.
	OutcomeFailedExit
	// OutcomeRetryBudgetExhausted means pods kept reporting no container statuses.
	OutcomeRetryBudgetExhausted
	// OutcomeNoContainersObserved means no container was seen terminating.
	OutcomeNoContainersObserved
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailedExit:
		return "failed_exit"
	case OutcomeRetryBudgetExhausted:
		return "retry_budget_exhausted"
	case OutcomeNoContainersObserved:
		return "no_containers_observed"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is a terminal classification. Pod, Container, ExitCode and Reason
// are set for OutcomeSucceeded and OutcomeFailedExit.
type Outcome struct {
	Kind      OutcomeKind
	Pod       string
	Container string
	ExitCode  int32
	Reason    string
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeSucceeded, OutcomeFailedExit:
		return fmt.Sprintf("%s(pod=%s container=%s exitCode=%d reason=%s)",
			o.Kind, o.Pod, o.Container, o.ExitCode, o.Reason)
	default:
		return o.Kind.String()
	}
}

// Success reports whether the outcome is OutcomeSucceeded.
func (o Outcome) Success() bool {
	return o.Kind == OutcomeSucceeded
}

func outcomeForContainer(pod PodStatus, c ContainerStatus) Outcome {
	kind := OutcomeSucceeded
	if c.State.ExitCode != 0 {
		kind = OutcomeFailedExit
	}
	return Outcome{
		Kind:      kind,
		Pod:       pod.Name,
		Container: c.Name,
		ExitCode:  c.State.ExitCode,
		Reason:    c.State.Reason,
	}
}
