package runner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPutter struct {
	bucket, key, contentType string
	data                     []byte
	missing                  bool
}

func (p *recordingPutter) BucketExists(context.Context, string) (bool, error) {
	return !p.missing, nil
}

func (p *recordingPutter) PutObject(_ context.Context, bucket, key, contentType string, data []byte) error {
	p.bucket, p.key, p.contentType, p.data = bucket, key, contentType, data
	return nil
}

func TestReport_JSON(t *testing.T) {
	t.Parallel()

	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := &Report{
		Name:       "fw-1",
		Outcome:    "succeeded",
		ExitCode:   0,
		StartedAt:  started,
		FinishedAt: started.Add(90 * time.Second),
	}

	data, err := r.JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "fw-1", decoded["name"])
	assert.Equal(t, "succeeded", decoded["outcome"])
	assert.NotContains(t, decoded, "teardown_error")
	assert.Equal(t, 90*time.Second, r.Duration())
}

func TestS3Archiver(t *testing.T) {
	t.Parallel()

	putter := &recordingPutter{}
	a := NewS3Archiver(putter, "runs", "feuerwerk/")
	r := &Report{Name: "fw-1", StartedAt: time.Date(2026, 3, 1, 12, 0, 5, 0, time.UTC)}

	require.NoError(t, a.Archive(context.Background(), r))
	assert.Equal(t, "runs", putter.bucket)
	assert.Equal(t, "feuerwerk/20260301T120005Z-fw-1.json", putter.key)
	assert.Equal(t, "application/json", putter.contentType)
	assert.Contains(t, string(putter.data), `"name": "fw-1"`)
}

func TestS3Archiver_MissingBucket(t *testing.T) {
	t.Parallel()

	putter := &recordingPutter{missing: true}
	a := NewS3Archiver(putter, "runs", "feuerwerk/")

	err := a.Archive(context.Background(), &Report{Name: "fw-1"})
	require.ErrorIs(t, err, ErrBucketNotFound)
	assert.Contains(t, err.Error(), "runs")
	assert.Empty(t, putter.key, "nothing is uploaded")
}

func TestMetrics_Push(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m := NewMetrics(prometheus.NewRegistry())
	m.observeSession("succeeded", time.Second)

	require.NoError(t, m.Push(context.Background(), server.URL, "feuerwerk", "fw-1"))
	assert.Equal(t, "/metrics/job/feuerwerk/run/fw-1", gotPath)
}

func TestMetrics_PushDisabled(t *testing.T) {
	t.Parallel()

	var m *Metrics
	assert.NoError(t, m.Push(context.Background(), "http://unused", "feuerwerk", "fw-1"))
	assert.NoError(t, NewMetrics(prometheus.NewRegistry()).Push(context.Background(), "", "feuerwerk", "fw-1"))
}

func TestMetrics_PushHonoursContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := NewMetrics(prometheus.NewRegistry()).Push(ctx, server.URL, "feuerwerk", "fw-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}
