// Package workload builds the replica-set specification for one load-test session.
//
// [Build] is a pure function of its inputs: it validates the replica count,
// image reference, pull policy and workload name, and produces a [Spec] whose
// container list holds exactly one container per requested replica. The spec
// renders to an apps/v1 Deployment for submission to the cluster.
package workload
