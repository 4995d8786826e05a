package runner

import (
	"context"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/feuerwerk/internal/orchestration"
	"github.com/imamik/feuerwerk/internal/watcher"
	"github.com/imamik/feuerwerk/internal/workload"
)

// DefaultDeleteTimeout bounds teardown once the session context is gone.
const DefaultDeleteTimeout = 2 * time.Minute

// Orchestrator creates, observes and deletes a workload.
type Orchestrator interface {
	Create(ctx context.Context, spec *workload.Spec, namespace string) (*orchestration.Handle, error)
	Delete(ctx context.Context, handle *orchestration.Handle) error
	Source(handle *orchestration.Handle) watcher.Source
}

var _ Orchestrator = (*orchestration.Orchestrator)(nil)

// Progress is a background activity indicator.
type Progress interface {
	Start()
	Stop()
}

// Options configures a Runner.
type Options struct {
	Namespace     string
	Budget        watcher.Budget
	DeleteTimeout time.Duration
	// NewProgress creates the indicator for one session. Nil disables it.
	NewProgress func() Progress
	Metrics     *Metrics
	Log         logr.Logger
}

// Runner executes load-test sessions.
type Runner struct {
	orch Orchestrator
	opts Options
	now  func() time.Time
}

// New creates a Runner.
func New(orch Orchestrator, opts Options) *Runner {
	if opts.DeleteTimeout <= 0 {
		opts.DeleteTimeout = DefaultDeleteTimeout
	}
	return &Runner{orch: orch, opts: opts, now: time.Now}
}

// Run executes one session. The returned report is never nil. A non-nil error
// means the session aborted before reaching an outcome; the report then
// carries ExitFatal.
func (r *Runner) Run(ctx context.Context, wopts workload.Options) (*Report, error) {
	log := r.opts.Log
	report := &Report{
		Name:      wopts.Name,
		Namespace: r.opts.Namespace,
		Replicas:  wopts.Replicas,
		Image:     wopts.Image,
		ExitCode:  ExitFatal,
		StartedAt: r.now(),
	}

	spec, err := workload.Build(wopts)
	if err != nil {
		return r.abort(report, err), err
	}
	report.Name = spec.Name
	report.Image = spec.Image

	handle, err := r.orch.Create(ctx, spec, r.opts.Namespace)
	if err != nil {
		return r.abort(report, err), err
	}
	report.Namespace = handle.Namespace
	log.Info("workload created", "name", handle.Name, "namespace", handle.Namespace, "replicas", spec.Replicas)

	res, watchErr := r.watch(ctx, handle)
	if res != nil {
		report.Retries = res.Retries
		report.NoContainer = res.NoContainer
		report.Polls = res.Polls
	}
	if watchErr == nil {
		applyOutcomes(report, res)
		log.Info("session finished", "name", handle.Name, "outcome", report.Outcome, "polls", report.Polls)
	}

	r.teardown(ctx, handle, report)

	if watchErr != nil {
		return r.abort(report, watchErr), watchErr
	}

	r.finish(report, report.Outcome)
	return report, nil
}

func (r *Runner) watch(ctx context.Context, handle *orchestration.Handle) (*watcher.Result, error) {
	if r.opts.NewProgress != nil {
		progress := r.opts.NewProgress()
		progress.Start()
		defer progress.Stop()
	}

	w := watcher.New(r.orch.Source(handle),
		watcher.WithBudget(r.opts.Budget),
		watcher.WithLogger(r.opts.Log),
		watcher.WithObserver(r.opts.Metrics.observeTick),
	)
	return w.Watch(ctx)
}

func applyOutcomes(report *Report, res *watcher.Result) {
	terminal := res.Terminal()

	report.Outcome = terminal.Kind.String()
	report.Message = Message(terminal.Kind)
	report.ExitCode = ExitCode(terminal.Kind)
	report.Pod = terminal.Pod
	report.Container = terminal.Container
	report.ContainerExitCode = terminal.ExitCode

	for _, o := range res.Outcomes {
		report.Outcomes = append(report.Outcomes, o.Kind.String())
		report.Messages = append(report.Messages, Message(o.Kind))
	}
}

// teardown deletes the workload once. It survives cancellation of ctx so an
// interrupted session still cleans up.
func (r *Runner) teardown(ctx context.Context, handle *orchestration.Handle, report *Report) {
	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.opts.DeleteTimeout)
	defer cancel()

	if err := r.orch.Delete(dctx, handle); err != nil {
		r.opts.Log.Error(err, "failed to delete workload, delete it manually",
			"name", handle.Name, "namespace", handle.Namespace)
		report.TeardownErr = err.Error()
		r.opts.Metrics.observeTeardownFailure()
		return
	}
	r.opts.Log.Info("workload deleted", "name", handle.Name, "namespace", handle.Namespace)
}

func (r *Runner) abort(report *Report, err error) *Report {
	report.ExitCode = ExitFatal
	report.Error = err.Error()
	report.Message = err.Error()
	r.finish(report, outcomeFatal)
	return report
}

func (r *Runner) finish(report *Report, outcome string) {
	report.FinishedAt = r.now()
	r.opts.Metrics.observeSession(outcome, report.Duration())
}
