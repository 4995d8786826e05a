// Package watcher implements the termination-detection state machine.
//
// A [Watcher] repeatedly polls a [Source] for pod status observations and
// classifies each poll. Cluster status reporting is eventually consistent: a
// pod may exist before its container statuses are populated, and a container
// that is still starting reports no terminal state. Two independent bounded
// counters separate "the cluster has not told us yet" (container statuses
// absent) from "the cluster has nothing to tell us" (containers present, none
// terminated), each with its own budget.
//
// The first terminated container ends the session: exit code 0 yields
// [OutcomeSucceeded], any other exit code [OutcomeFailedExit]. Remaining
// replicas are not awaited.
//
// When a budget is exhausted the watcher emits [OutcomeRetryBudgetExhausted]
// (only when the absent-status budget was the one exceeded) followed by a
// trailing [OutcomeNoContainersObserved]. Callers that stop at the first
// outcome see a single terminal value; [Result.Outcomes] keeps the full
// sequence.
package watcher
