package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/feuerwerk/internal/config"
	"github.com/imamik/feuerwerk/internal/k8s"
	"github.com/imamik/feuerwerk/internal/orchestration"
	"github.com/imamik/feuerwerk/internal/platform/s3"
	"github.com/imamik/feuerwerk/internal/runner"
	"github.com/imamik/feuerwerk/internal/ui/progress"
	"github.com/imamik/feuerwerk/internal/util/async"
)

const publishTimeout = 30 * time.Second

// Factory function variables for run - can be replaced in tests.
var (
	// newKubeClient creates the Kubernetes API client.
	newKubeClient = func(kubeconfig, kubeContext string) (orchestration.API, error) {
		return k8s.NewClient(kubeconfig, kubeContext)
	}

	// newObjectStore creates the report archive client.
	newObjectStore = func(ctx context.Context, cfg config.ReportConfig) (runner.ObjectStore, error) {
		return s3.NewClient(ctx, s3.Options{
			Endpoint:  cfg.Endpoint,
			Region:    cfg.Region,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
		})
	}

	// newProgress creates the waiting indicator.
	newProgress = func() runner.Progress {
		return progress.New(os.Stderr)
	}
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308"))
)

// Run handles the run command.
//
// It executes one session and returns an *ExitError for every outcome other
// than success.
func Run(ctx context.Context, out io.Writer, configPath string, applyFlags func(*config.Config)) error {
	log := logger()

	cfg, err := loadConfig(configPath, applyFlags)
	if err != nil {
		return fatal(err)
	}
	wopts, err := cfg.WorkloadOptions()
	if err != nil {
		return fatal(err)
	}

	api, err := newKubeClient(cfg.Kubeconfig, cfg.KubeContext)
	if err != nil {
		return fatal(err)
	}

	metrics := runner.NewMetrics(prometheus.NewRegistry())
	orch := orchestration.New(api, log.WithName("orchestrator"), cfg.OrchestrationOptions())
	report, runErr := runner.New(orch, runner.Options{
		Namespace:     cfg.Namespace,
		Budget:        cfg.Budget(),
		DeleteTimeout: cfg.DeleteTimeout,
		NewProgress:   newProgress,
		Metrics:       metrics,
		Log:           log,
	}).Run(ctx, wopts)

	if err := publish(ctx, cfg, report, metrics); err != nil {
		log.Info("failed to publish session results", "error", err.Error())
	}

	if runErr != nil {
		printTeardownWarning(out, report)
		return fatal(fmt.Errorf("load test %s aborted: %w", report.Name, runErr))
	}

	printReport(out, report)
	if report.ExitCode != runner.ExitSucceeded {
		return &ExitError{Code: report.ExitCode}
	}
	return nil
}

// publish archives the report and pushes metrics concurrently. It runs even
// when ctx is cancelled so interrupted sessions are still recorded.
func publish(ctx context.Context, cfg *config.Config, report *runner.Report, metrics *runner.Metrics) error {
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	var tasks []async.Task
	if cfg.Report.Bucket != "" {
		tasks = append(tasks, async.Task{Name: "archive report", Func: func(ctx context.Context) error {
			store, err := newObjectStore(ctx, cfg.Report)
			if err != nil {
				return err
			}
			return runner.NewS3Archiver(store, cfg.Report.Bucket, cfg.Report.Prefix).Archive(ctx, report)
		}})
	}
	if cfg.Metrics.PushgatewayURL != "" {
		tasks = append(tasks, async.Task{Name: "push metrics", Func: func(ctx context.Context) error {
			return metrics.Push(ctx, cfg.Metrics.PushgatewayURL, cfg.Metrics.Job, report.Name)
		}})
	}

	return async.Run(pctx, tasks)
}

func printReport(out io.Writer, report *runner.Report) {
	style := failureStyle
	if report.ExitCode == runner.ExitSucceeded {
		style = successStyle
	}
	messages := report.Messages
	if len(messages) == 0 {
		messages = []string{report.Message}
	}
	for _, msg := range messages {
		fmt.Fprintln(out, style.Render(msg))
	}
	printTeardownWarning(out, report)
}

func printTeardownWarning(out io.Writer, report *runner.Report) {
	if report.TeardownErr == "" {
		return
	}
	fmt.Fprintln(out, warningStyle.Render(fmt.Sprintf(
		"Warning: workload %s/%s could not be deleted: %s", report.Namespace, report.Name, report.TeardownErr)))
	fmt.Fprintf(out, "Run 'feuerwerk cleanup %s -n %s' to remove it.\n", report.Name, report.Namespace)
}
