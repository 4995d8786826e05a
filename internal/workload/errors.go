package workload

import "errors"

var (
	// ErrInvalidReplicaCount is returned when the replica count is not positive.
	ErrInvalidReplicaCount = errors.New("replica count must be a positive integer")

	// ErrInvalidImageReference is returned when the image reference is empty.
	ErrInvalidImageReference = errors.New("image reference must not be empty")

	// ErrInvalidPullPolicy is returned for pull policies Kubernetes does not know.
	ErrInvalidPullPolicy = errors.New("invalid image pull policy")

	// ErrInvalidName is returned when the workload name is not a valid resource name.
	ErrInvalidName = errors.New("invalid workload name")
)
