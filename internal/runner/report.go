package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"time"
)

// Report summarizes one session.
type Report struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
	Replicas  int    `json:"replicas"`
	Image     string `json:"image"`

	// Outcome is the terminal outcome, or empty when the session aborted.
	Outcome  string   `json:"outcome,omitempty"`
	Outcomes []string `json:"outcomes,omitempty"`
	// Messages holds one user-facing message per emitted outcome.
	Messages []string `json:"messages,omitempty"`
	Message  string   `json:"message"`
	ExitCode int      `json:"exit_code"`

	Pod       string `json:"pod,omitempty"`
	Container string `json:"container,omitempty"`
	// ContainerExitCode is the exit code of the container that ended the session.
	ContainerExitCode int32 `json:"container_exit_code,omitempty"`

	Retries     int `json:"retries"`
	NoContainer int `json:"no_container"`
	Polls       int `json:"polls"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Error       string `json:"error,omitempty"`
	TeardownErr string `json:"teardown_error,omitempty"`
}

// Duration is the wall time of the session.
func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// JSON encodes the report with indentation.
func (r *Report) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return data, nil
}

// ErrBucketNotFound is returned when the archive bucket does not exist.
var ErrBucketNotFound = errors.New("report bucket not found")

// ObjectStore stores objects in an existing bucket.
type ObjectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	PutObject(ctx context.Context, bucketName, key, contentType string, data []byte) error
}

// S3Archiver uploads reports as JSON objects.
type S3Archiver struct {
	client ObjectStore
	bucket string
	prefix string
}

// NewS3Archiver creates an archiver writing to bucket under prefix.
func NewS3Archiver(client ObjectStore, bucket, prefix string) *S3Archiver {
	return &S3Archiver{client: client, bucket: bucket, prefix: prefix}
}

// Key returns the object key for a report.
func (a *S3Archiver) Key(r *Report) string {
	return path.Join(a.prefix, fmt.Sprintf("%s-%s.json", r.StartedAt.UTC().Format("20060102T150405Z"), r.Name))
}

// Archive uploads the report. The bucket must already exist.
func (a *S3Archiver) Archive(ctx context.Context, r *Report) error {
	data, err := r.JSON()
	if err != nil {
		return err
	}
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, a.bucket)
	}
	return a.client.PutObject(ctx, a.bucket, a.Key(r), "application/json", data)
}
