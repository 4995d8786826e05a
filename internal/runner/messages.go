package runner

import (
	"github.com/imamik/feuerwerk/internal/watcher"
)

// Exit codes returned by the CLI.
const (
	ExitSucceeded            = 0
	ExitFailedExit           = 1
	ExitRetryBudgetExhausted = 2
	ExitNoContainersObserved = 3
	ExitFatal                = 4
)

// Messages shown to the user for each outcome.
const (
	MessageSucceeded            = "Loadtest containers exited without errors"
	MessageFailedExit           = "Loadtest containers exited with errors, please check the logs"
	MessageRetryBudgetExhausted = "Could not get container status from the cluster"
	MessageNoContainersObserved = "The cluster reported no containers could be found"
)

// Message maps an outcome kind to its user-facing message.
func Message(kind watcher.OutcomeKind) string {
	switch kind {
	case watcher.OutcomeSucceeded:
		return MessageSucceeded
	case watcher.OutcomeFailedExit:
		return MessageFailedExit
	case watcher.OutcomeRetryBudgetExhausted:
		return MessageRetryBudgetExhausted
	default:
		return MessageNoContainersObserved
	}
}

// ExitCode maps an outcome kind to the process exit status.
func ExitCode(kind watcher.OutcomeKind) int {
	switch kind {
	case watcher.OutcomeSucceeded:
		return ExitSucceeded
	case watcher.OutcomeFailedExit:
		return ExitFailedExit
	case watcher.OutcomeRetryBudgetExhausted:
		return ExitRetryBudgetExhausted
	default:
		return ExitNoContainersObserved
	}
}
