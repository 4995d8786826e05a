package orchestration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/imamik/feuerwerk/internal/k8s"
	"github.com/imamik/feuerwerk/internal/util/labels"
	"github.com/imamik/feuerwerk/internal/util/retry"
	"github.com/imamik/feuerwerk/internal/watcher"
	"github.com/imamik/feuerwerk/internal/workload"
)

const (
	// DefaultGracePeriodSeconds is the grace period used for workload deletion.
	DefaultGracePeriodSeconds int64 = 5

	defaultDeleteRetries    = 3
	defaultDeleteRetryDelay = time.Second
	defaultDeleteMaxDelay   = 10 * time.Second
)

// ErrCreateFailed wraps any error from workload submission.
var ErrCreateFailed = errors.New("failed to create workload")

// API is the subset of the Kubernetes API the orchestrator drives.
type API interface {
	CreateDeployment(ctx context.Context, deployment *appsv1.Deployment) (*appsv1.Deployment, error)
	DeleteDeployment(ctx context.Context, namespace, name string, gracePeriodSeconds int64) error
	ListPods(ctx context.Context, namespace, labelSelector string) ([]corev1.Pod, error)
}

var _ API = (*k8s.Client)(nil)

// Handle identifies a created workload for the duration of one session.
type Handle struct {
	Name      string
	Namespace string
	UID       types.UID
	Selector  string
	CreatedAt time.Time
}

// Options configures an Orchestrator.
type Options struct {
	GracePeriodSeconds int64
	// AllNamespaces makes the pod source search the whole cluster.
	AllNamespaces    bool
	DeleteRetries    int
	DeleteRetryDelay time.Duration
	// DeleteMaxDelay caps the backoff between delete attempts.
	DeleteMaxDelay time.Duration
}

// Orchestrator creates and deletes load-test workloads.
type Orchestrator struct {
	api  API
	opts Options
	log  logr.Logger
	now  func() time.Time
}

// New creates an Orchestrator. Unset retry options fall back to defaults and a
// negative grace period becomes DefaultGracePeriodSeconds.
func New(api API, log logr.Logger, opts Options) *Orchestrator {
	if opts.GracePeriodSeconds < 0 {
		opts.GracePeriodSeconds = DefaultGracePeriodSeconds
	}
	if opts.DeleteRetries <= 0 {
		opts.DeleteRetries = defaultDeleteRetries
	}
	if opts.DeleteRetryDelay <= 0 {
		opts.DeleteRetryDelay = defaultDeleteRetryDelay
	}
	if opts.DeleteMaxDelay <= 0 {
		opts.DeleteMaxDelay = defaultDeleteMaxDelay
	}

	return &Orchestrator{
		api:  api,
		opts: opts,
		log:  log,
		now:  time.Now,
	}
}

// Create submits the workload once. Any error is fatal for the session and
// wraps ErrCreateFailed.
func (o *Orchestrator) Create(ctx context.Context, spec *workload.Spec, namespace string) (*Handle, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: workload spec is nil", ErrCreateFailed)
	}
	if namespace == "" {
		namespace = corev1.NamespaceDefault
	}

	o.log.Info("creating workload", "name", spec.Name, "namespace", namespace,
		"replicas", spec.Replicas, "image", spec.Image)

	created, err := o.api.CreateDeployment(ctx, spec.Deployment(namespace))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	handle := &Handle{
		Name:      spec.Name,
		Namespace: namespace,
		Selector:  spec.Selector(),
		CreatedAt: o.now(),
	}
	if created != nil {
		handle.UID = created.UID
		if !created.CreationTimestamp.IsZero() {
			handle.CreatedAt = created.CreationTimestamp.Time
		}
	}

	return handle, nil
}

// Delete removes the workload with foreground propagation. A workload that no
// longer exists counts as deleted. A nil handle is a no-op.
func (o *Orchestrator) Delete(ctx context.Context, handle *Handle) error {
	if handle == nil {
		return nil
	}

	o.log.Info("deleting workload", "name", handle.Name, "namespace", handle.Namespace,
		"gracePeriodSeconds", o.opts.GracePeriodSeconds)

	err := retry.WithExponentialBackoff(ctx, func() error {
		err := o.api.DeleteDeployment(ctx, handle.Namespace, handle.Name, o.opts.GracePeriodSeconds)
		if err != nil && k8s.IsNotFound(err) {
			o.log.V(1).Info("workload already gone", "name", handle.Name, "namespace", handle.Namespace)
			return nil
		}
		if err != nil && !k8s.IsRetryable(err) {
			return retry.Fatal(err)
		}
		if err != nil {
			o.log.V(1).Info("retrying workload deletion", "name", handle.Name, "error", err.Error())
		}
		return err
	},
		retry.WithMaxRetries(o.opts.DeleteRetries),
		retry.WithInitialDelay(o.opts.DeleteRetryDelay),
		retry.WithMaxDelay(o.opts.DeleteMaxDelay),
	)
	if err != nil {
		return fmt.Errorf("failed to delete workload %s/%s: %w", handle.Namespace, handle.Name, err)
	}

	return nil
}

// Source returns the pod source the watcher polls for this workload.
func (o *Orchestrator) Source(handle *Handle) watcher.Source {
	namespace := handle.Namespace
	if o.opts.AllNamespaces {
		namespace = k8s.AllNamespaces
	}
	selector := handle.Selector
	if selector == "" {
		selector = labels.SelectorForRun(handle.Name)
	}

	return &PodSource{
		api:       o.api,
		namespace: namespace,
		selector:  selector,
	}
}
