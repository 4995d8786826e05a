package config

import (
	"time"

	"github.com/imamik/feuerwerk/internal/orchestration"
	"github.com/imamik/feuerwerk/internal/watcher"
	"github.com/imamik/feuerwerk/internal/workload"
)

// DefaultFile is loaded when present and no file is given explicitly.
const DefaultFile = "feuerwerk.yaml"

const (
	DefaultNamespace     = "default"
	DefaultPullPolicy    = "IfNotPresent"
	DefaultDeleteTimeout = 2 * time.Minute
	DefaultReportPrefix  = "feuerwerk/"
)

// Config is the full configuration of one session.
type Config struct {
	Replicas   int    `yaml:"replicas"`
	Image      string `yaml:"image"`
	PullPolicy string `yaml:"pull_policy"`
	// Name is the workload name. Generated when empty.
	Name          string `yaml:"name"`
	Namespace     string `yaml:"namespace"`
	AllNamespaces bool   `yaml:"all_namespaces"`
	Kubeconfig    string `yaml:"kubeconfig"`
	KubeContext   string `yaml:"kube_context"`

	// GracePeriodSeconds is honoured as given, including 0. Default sets it to
	// orchestration.DefaultGracePeriodSeconds before any layer is applied.
	GracePeriodSeconds int64         `yaml:"grace_period_seconds"`
	DeleteTimeout      time.Duration `yaml:"delete_timeout"`

	Watch   WatchConfig   `yaml:"watch"`
	Metrics MetricsConfig `yaml:"metrics"`
	Report  ReportConfig  `yaml:"report"`
}

// WatchConfig bounds the termination watcher. A zero field selects the
// watcher default (5s backoff, 3 retries, 5 no-container ticks); negative
// values are rejected by Validate.
type WatchConfig struct {
	Backoff        time.Duration `yaml:"backoff"`
	MaxRetries     int           `yaml:"max_retries"`
	MaxNoContainer int           `yaml:"max_no_container"`
}

// MetricsConfig controls pushing session metrics.
type MetricsConfig struct {
	// PushgatewayURL enables pushing when set.
	PushgatewayURL string `yaml:"pushgateway_url"`
	Job            string `yaml:"job"`
}

// ReportConfig controls archiving the session report to S3-compatible storage.
type ReportConfig struct {
	// Bucket enables archiving when set.
	Bucket    string `yaml:"bucket"`
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Prefix    string `yaml:"prefix"`
}

// Default returns a Config with every default applied. It is the base every
// configuration layer is applied to.
func Default() *Config {
	cfg := &Config{GracePeriodSeconds: orchestration.DefaultGracePeriodSeconds}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills unset fields. GracePeriodSeconds is left alone because 0
// is a valid grace period.
func (c *Config) SetDefaults() {
	if c.PullPolicy == "" {
		c.PullPolicy = DefaultPullPolicy
	}
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	if c.DeleteTimeout == 0 {
		c.DeleteTimeout = DefaultDeleteTimeout
	}
	if c.Watch.Backoff == 0 {
		c.Watch.Backoff = watcher.DefaultBackoff
	}
	if c.Watch.MaxRetries == 0 {
		c.Watch.MaxRetries = watcher.DefaultMaxRetries
	}
	if c.Watch.MaxNoContainer == 0 {
		c.Watch.MaxNoContainer = watcher.DefaultMaxNoContainer
	}
	if c.Metrics.Job == "" {
		c.Metrics.Job = "feuerwerk"
	}
	if c.Report.Prefix == "" {
		c.Report.Prefix = DefaultReportPrefix
	}
}

// WorkloadOptions converts the config into workload build options.
func (c *Config) WorkloadOptions() (workload.Options, error) {
	policy, err := workload.ParsePullPolicy(c.PullPolicy)
	if err != nil {
		return workload.Options{}, err
	}
	return workload.Options{
		Replicas:   c.Replicas,
		Image:      c.Image,
		PullPolicy: policy,
		Name:       c.Name,
	}, nil
}

// Budget returns the watcher budget.
func (c *Config) Budget() watcher.Budget {
	return watcher.Budget{
		MaxRetries:     c.Watch.MaxRetries,
		MaxNoContainer: c.Watch.MaxNoContainer,
		Backoff:        c.Watch.Backoff,
	}
}

// OrchestrationOptions returns the orchestrator options.
func (c *Config) OrchestrationOptions() orchestration.Options {
	return orchestration.Options{
		GracePeriodSeconds: c.GracePeriodSeconds,
		AllNamespaces:      c.AllNamespaces,
	}
}
