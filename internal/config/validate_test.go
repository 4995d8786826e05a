package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/feuerwerk/internal/workload"
)

func validConfig() *Config {
	cfg := Default()
	cfg.Replicas = 2
	cfg.Image = "loadtest:latest"
	return cfg
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
		is      error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:   "zero replicas",
			mutate: func(c *Config) { c.Replicas = 0 },
			is:     workload.ErrInvalidReplicaCount,
		},
		{
			name:   "empty image",
			mutate: func(c *Config) { c.Image = "  " },
			is:     workload.ErrInvalidImageReference,
		},
		{
			name:   "bad pull policy",
			mutate: func(c *Config) { c.PullPolicy = "Sometimes" },
			is:     workload.ErrInvalidPullPolicy,
		},
		{
			name:   "bad name",
			mutate: func(c *Config) { c.Name = "Not_Valid" },
			is:     workload.ErrInvalidName,
		},
		{
			name:   "name longer than a label value",
			mutate: func(c *Config) { c.Name = "fw-" + strings.Repeat("a", 70) },
			is:     workload.ErrInvalidName,
		},
		{
			name:    "bad namespace",
			mutate:  func(c *Config) { c.Namespace = "load.tests" },
			wantErr: "namespace",
		},
		{
			name:    "negative grace period",
			mutate:  func(c *Config) { c.GracePeriodSeconds = -1 },
			wantErr: "grace_period_seconds",
		},
		{
			name:    "negative max retries",
			mutate:  func(c *Config) { c.Watch.MaxRetries = -1 },
			wantErr: "watch: max_retries",
		},
		{
			name:    "relative pushgateway url",
			mutate:  func(c *Config) { c.Metrics.PushgatewayURL = "pushgateway:9091" },
			wantErr: "metrics: pushgateway_url",
		},
		{
			name:    "bucket without location",
			mutate:  func(c *Config) { c.Report.Bucket = "runs" },
			wantErr: "report: bucket",
		},
		{
			name: "access key without secret",
			mutate: func(c *Config) {
				c.Report.Bucket = "runs"
				c.Report.Region = "eu"
				c.Report.AccessKey = "ak"
			},
			wantErr: "access_key and secret_key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" && tt.is == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := Default()
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, workload.ErrInvalidReplicaCount)
	assert.ErrorIs(t, err, workload.ErrInvalidImageReference)
}
