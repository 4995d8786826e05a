// Package retry provides exponential backoff retry logic for transient failures.
//
// [WithExponentialBackoff] retries an operation with configurable max attempts,
// initial delay and maximum delay. Operations mark permanent failures with
// [Fatal]. Workload teardown uses it to ride out API throttling and server
// timeouts.
package retry
