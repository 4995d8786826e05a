package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/imamik/feuerwerk/internal/workload"
)

// Validate checks the configuration and joins every problem into one error.
func (c *Config) Validate() error {
	var errs []error

	if c.Replicas <= 0 {
		errs = append(errs, fmt.Errorf("replicas: %w: got %d", workload.ErrInvalidReplicaCount, c.Replicas))
	}
	if strings.TrimSpace(c.Image) == "" {
		errs = append(errs, fmt.Errorf("image: %w", workload.ErrInvalidImageReference))
	}
	if _, err := workload.ParsePullPolicy(c.PullPolicy); err != nil {
		errs = append(errs, fmt.Errorf("pull_policy: %w", err))
	}
	if c.Name != "" {
		if msgs := validation.IsDNS1123Label(c.Name); len(msgs) > 0 {
			errs = append(errs, fmt.Errorf("name: %w: %q: %s", workload.ErrInvalidName, c.Name, strings.Join(msgs, "; ")))
		}
	}
	if c.Namespace != "" {
		if msgs := validation.IsDNS1123Label(c.Namespace); len(msgs) > 0 {
			errs = append(errs, fmt.Errorf("namespace %q is invalid: %s", c.Namespace, strings.Join(msgs, "; ")))
		}
	}

	if c.GracePeriodSeconds < 0 {
		errs = append(errs, fmt.Errorf("grace_period_seconds must not be negative, got %d", c.GracePeriodSeconds))
	}
	if c.DeleteTimeout < 0 {
		errs = append(errs, fmt.Errorf("delete_timeout must not be negative, got %s", c.DeleteTimeout))
	}

	if err := c.Watch.validate(); err != nil {
		errs = append(errs, fmt.Errorf("watch: %w", err))
	}
	if err := c.Metrics.validate(); err != nil {
		errs = append(errs, fmt.Errorf("metrics: %w", err))
	}
	if err := c.Report.validate(); err != nil {
		errs = append(errs, fmt.Errorf("report: %w", err))
	}

	return errors.Join(errs...)
}

func (w WatchConfig) validate() error {
	if w.Backoff < 0 {
		return fmt.Errorf("backoff must not be negative, got %s", w.Backoff)
	}
	if w.MaxRetries < 0 {
		return fmt.Errorf("max_retries must not be negative, got %d", w.MaxRetries)
	}
	if w.MaxNoContainer < 0 {
		return fmt.Errorf("max_no_container must not be negative, got %d", w.MaxNoContainer)
	}
	return nil
}

func (m MetricsConfig) validate() error {
	if m.PushgatewayURL == "" {
		return nil
	}
	u, err := url.Parse(m.PushgatewayURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("pushgateway_url %q is not an absolute URL", m.PushgatewayURL)
	}
	return nil
}

func (r ReportConfig) validate() error {
	if r.Bucket == "" {
		return nil
	}
	if r.Endpoint == "" && r.Region == "" {
		return fmt.Errorf("bucket %q needs an endpoint or a region", r.Bucket)
	}
	if (r.AccessKey == "") != (r.SecretKey == "") {
		return fmt.Errorf("access_key and secret_key must be set together")
	}
	if r.Endpoint != "" {
		u, err := url.Parse(r.Endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("endpoint %q is not an absolute URL", r.Endpoint)
		}
	}
	return nil
}
