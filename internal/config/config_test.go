package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/feuerwerk/internal/watcher"
	"github.com/imamik/feuerwerk/internal/workload"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.Equal(t, "default", cfg.Namespace)
	assert.Equal(t, "IfNotPresent", cfg.PullPolicy)
	assert.Equal(t, int64(5), cfg.GracePeriodSeconds)
	assert.Equal(t, DefaultDeleteTimeout, cfg.DeleteTimeout)
	assert.Equal(t, watcher.DefaultBudget(), cfg.Budget())
	assert.Equal(t, "feuerwerk/", cfg.Report.Prefix)
}

func TestSetDefaults_KeepsExplicitValues(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Namespace:          "loadtests",
		GracePeriodSeconds: 30,
		Watch:              WatchConfig{Backoff: time.Second, MaxRetries: 10},
	}
	cfg.SetDefaults()

	assert.Equal(t, "loadtests", cfg.Namespace)
	assert.Equal(t, int64(30), cfg.GracePeriodSeconds)
	assert.Equal(t, time.Second, cfg.Watch.Backoff)
	assert.Equal(t, 10, cfg.Watch.MaxRetries)
	assert.Equal(t, watcher.DefaultMaxNoContainer, cfg.Watch.MaxNoContainer)
}

func TestSetDefaults_KeepsZeroGracePeriod(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.GracePeriodSeconds = 0
	cfg.SetDefaults()

	assert.Equal(t, int64(0), cfg.GracePeriodSeconds)
	assert.Equal(t, int64(0), cfg.OrchestrationOptions().GracePeriodSeconds)
}

func TestSetDefaults_ZeroWatchBoundsSelectDefaults(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Watch = WatchConfig{}
	cfg.SetDefaults()

	assert.Equal(t, watcher.DefaultMaxRetries, cfg.Watch.MaxRetries)
	assert.Equal(t, watcher.DefaultMaxNoContainer, cfg.Watch.MaxNoContainer)
	assert.Equal(t, watcher.DefaultBackoff, cfg.Watch.Backoff)
	require.NoError(t, validConfig().Validate())
}

func TestWorkloadOptions(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Replicas = 3
	cfg.Image = "loadtest:1.0"
	cfg.PullPolicy = "always"
	cfg.Name = "fw-nightly"

	opts, err := cfg.WorkloadOptions()
	require.NoError(t, err)
	assert.Equal(t, workload.Options{
		Replicas:   3,
		Image:      "loadtest:1.0",
		PullPolicy: workload.PullAlways,
		Name:       "fw-nightly",
	}, opts)

	cfg.PullPolicy = "sometimes"
	_, err = cfg.WorkloadOptions()
	assert.ErrorIs(t, err, workload.ErrInvalidPullPolicy)
}

func TestOrchestrationOptions(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.AllNamespaces = true

	opts := cfg.OrchestrationOptions()
	assert.True(t, opts.AllNamespaces)
	assert.Equal(t, int64(5), opts.GracePeriodSeconds)
}
