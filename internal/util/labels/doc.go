// Package labels provides consistent labeling for load-test workloads.
//
// Every replica pod carries app=loadtest. A per-session run label scopes
// pod listing to the workload of a single session.
package labels
