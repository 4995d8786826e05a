package watcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/wait"
)

const (
	// DefaultMaxRetries bounds polls where a pod reports no container statuses.
	DefaultMaxRetries = 3
	// DefaultMaxNoContainer bounds polls where no container has terminated.
	DefaultMaxNoContainer = 5
	// DefaultBackoff is the fixed interval between polls.
	DefaultBackoff = 5 * time.Second
)

// ErrWatchFailed wraps errors returned by the Source. It is never retried.
var ErrWatchFailed = errors.New("failed to observe pods")

// Budget bounds a watch session. A zero or negative field selects its
// default, so a budget of 0 retries cannot be expressed.
type Budget struct {
	MaxRetries     int
	MaxNoContainer int
	Backoff        time.Duration
}

// DefaultBudget returns the budget used when none is configured.
func DefaultBudget() Budget {
	return Budget{
		MaxRetries:     DefaultMaxRetries,
		MaxNoContainer: DefaultMaxNoContainer,
		Backoff:        DefaultBackoff,
	}
}

// TickResult classifies a single poll.
type TickResult string

const (
	TickAbsent     TickResult = "absent"
	TickRunning    TickResult = "running"
	TickTerminated TickResult = "terminated"
	TickError      TickResult = "error"
)

// Tick describes one completed poll. It is handed to the observer hook.
type Tick struct {
	Poll        int
	Pods        int
	Result      TickResult
	Retries     int
	NoContainer int
}

// Result is the outcome of a watch session.
type Result struct {
	// Outcomes holds every emitted terminal value in order. It is never empty
	// when Watch returns a nil error.
	Outcomes    []Outcome
	Retries     int
	NoContainer int
	Polls       int
}

// Terminal returns the first emitted outcome, the one that ends the session.
func (r *Result) Terminal() Outcome {
	if r == nil || len(r.Outcomes) == 0 {
		return Outcome{Kind: OutcomeNoContainersObserved}
	}
	return r.Outcomes[0]
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithBudget overrides the default budget. Non-positive values fall back to defaults.
func WithBudget(b Budget) Option {
	return func(w *Watcher) {
		if b.MaxRetries > 0 {
			w.budget.MaxRetries = b.MaxRetries
		}
		if b.MaxNoContainer > 0 {
			w.budget.MaxNoContainer = b.MaxNoContainer
		}
		if b.Backoff > 0 {
			w.budget.Backoff = b.Backoff
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log logr.Logger) Option {
	return func(w *Watcher) {
		w.log = log
	}
}

// WithObserver registers a hook invoked after every poll.
func WithObserver(fn func(Tick)) Option {
	return func(w *Watcher) {
		w.onTick = fn
	}
}

// Watcher polls a Source until a terminal outcome is reached.
type Watcher struct {
	source Source
	budget Budget
	log    logr.Logger
	onTick func(Tick)
}

// New creates a Watcher over source.
func New(source Source, opts ...Option) *Watcher {
	w := &Watcher{
		source: source,
		budget: DefaultBudget(),
		log:    logr.Discard(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Budget returns the effective budget.
func (w *Watcher) Budget() Budget {
	return w.budget
}

// Watch polls until a container terminates or a budget is exhausted.
// Counters start at zero for every call. Source errors abort the watch
// immediately and wrap ErrWatchFailed; context cancellation aborts it with the
// context error.
func (w *Watcher) Watch(ctx context.Context) (*Result, error) {
	res := &Result{}

	err := wait.PollUntilContextCancel(ctx, w.budget.Backoff, true, func(ctx context.Context) (bool, error) {
		return w.tick(ctx, res)
	})
	if err != nil {
		if errors.Is(err, ErrWatchFailed) {
			return res, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, fmt.Errorf("watch interrupted after %d polls: %w", res.Polls, ctxErr)
		}
		return res, fmt.Errorf("watch aborted after %d polls: %w", res.Polls, err)
	}

	return res, nil
}

// tick runs one transition of the state machine. It returns true once the
// session is terminal.
func (w *Watcher) tick(ctx context.Context, res *Result) (bool, error) {
	res.Polls++

	pods, err := w.source.Observe(ctx)
	if err != nil {
		w.notify(res, 0, TickError)
		return false, fmt.Errorf("%w: %w", ErrWatchFailed, err)
	}

	result, outcome := classify(pods)
	switch result {
	case TickAbsent:
		res.Retries++
	case TickRunning:
		res.NoContainer++
	case TickTerminated:
		res.Outcomes = []Outcome{outcome}
	}

	w.log.V(1).Info("polled workload pods",
		"poll", res.Polls, "pods", len(pods), "result", string(result),
		"retries", res.Retries, "noContainer", res.NoContainer)
	w.notify(res, len(pods), result)

	if result == TickTerminated {
		w.log.Info("container terminated", "outcome", outcome.String())
		return true, nil
	}

	retriesExceeded := res.Retries > w.budget.MaxRetries
	if retriesExceeded || res.NoContainer > w.budget.MaxNoContainer {
		if retriesExceeded {
			res.Outcomes = append(res.Outcomes, Outcome{Kind: OutcomeRetryBudgetExhausted})
		}
		res.Outcomes = append(res.Outcomes, Outcome{Kind: OutcomeNoContainersObserved})

		w.log.Info("watch budget exhausted",
			"retries", res.Retries, "maxRetries", w.budget.MaxRetries,
			"noContainer", res.NoContainer, "maxNoContainer", w.budget.MaxNoContainer,
			"outcome", res.Outcomes[0].String())
		return true, nil
	}

	return false, nil
}

func (w *Watcher) notify(res *Result, pods int, result TickResult) {
	if w.onTick == nil {
		return
	}
	w.onTick(Tick{
		Poll:        res.Polls,
		Pods:        pods,
		Result:      result,
		Retries:     res.Retries,
		NoContainer: res.NoContainer,
	})
}

// classify walks pods in order. A pod without reported container statuses
// ends the walk as absent; the first terminated container ends it as terminal.
func classify(pods []PodStatus) (TickResult, Outcome) {
	for _, pod := range pods {
		if !pod.Reported {
			return TickAbsent, Outcome{}
		}
		for _, c := range pod.Containers {
			if c.State.Kind == StateTerminated {
				return TickTerminated, outcomeForContainer(pod, c)
			}
		}
	}
	return TickRunning, Outcome{}
}
