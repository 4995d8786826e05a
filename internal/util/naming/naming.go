package naming

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Naming functions for load-test resources.
// Workloads and their containers follow fixed patterns so leftovers from an
// interrupted run can be found by name.

const (
	// WorkloadPrefix prefixes every generated workload name.
	WorkloadPrefix = "fw-"

	// ContainerPrefix prefixes every replica container name.
	ContainerPrefix = "feuerwerk"
)

// Workload returns a fresh workload name of the form fw-<32 hex chars>.
func Workload() string {
	return WorkloadPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Container returns the container name for the replica at index.
func Container(index int) string {
	return fmt.Sprintf("%s%d", ContainerPrefix, index)
}

// IsWorkload reports whether name looks like a generated workload name.
func IsWorkload(name string) bool {
	return strings.HasPrefix(name, WorkloadPrefix) && len(name) == len(WorkloadPrefix)+32
}
