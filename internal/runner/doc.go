// Package runner composes one end-to-end load-test session.
//
// A session builds the workload specification, creates the workload, watches
// its containers until a terminal outcome, and deletes the workload again:
//
//	validate -> create -> start progress -> watch -> stop progress -> message -> delete
//
// Creation failures end the session without teardown. Every other path,
// including watch failures and interrupted contexts, deletes the workload
// exactly once. Teardown failures are logged and recorded in the [Report] but
// never change the exit code.
package runner
