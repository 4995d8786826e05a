// Package naming provides consistent naming functions for load-test resources.
//
// Workload names follow the pattern fw-{32 hex chars} so concurrent sessions
// never collide, and replica containers are named feuerwerk{index}.
package naming
