package labels

import (
	k8slabels "k8s.io/apimachinery/pkg/labels"
)

// Standard label keys for load-test workloads.
const (
	// KeyApp is the fixed application label every replica pod carries.
	KeyApp = "app"

	// KeyRun identifies the session a workload belongs to.
	KeyRun = "feuerwerk.io/run"

	// KeyManagedBy identifies the management system
	KeyManagedBy = "app.kubernetes.io/managed-by"
)

// Label values
const (
	AppLoadTest      = "loadtest"
	ManagedByFeuerwk = "feuerwerk"
)

// LabelBuilder provides a fluent interface for building workload labels.
type LabelBuilder struct {
	labels map[string]string
}

// NewLabelBuilder creates a builder with app=loadtest pre-set.
func NewLabelBuilder() *LabelBuilder {
	return &LabelBuilder{
		labels: map[string]string{
			KeyApp: AppLoadTest,
		},
	}
}

// WithRun adds the run label. An empty run is ignored.
func (lb *LabelBuilder) WithRun(run string) *LabelBuilder {
	if run != "" {
		lb.labels[KeyRun] = run
	}
	return lb
}

// WithManagedBy sets who manages this resource.
func (lb *LabelBuilder) WithManagedBy(manager string) *LabelBuilder {
	lb.labels[KeyManagedBy] = manager
	return lb
}

// Merge adds all labels from the provided map. The app label cannot be overridden.
func (lb *LabelBuilder) Merge(extra map[string]string) *LabelBuilder {
	for k, v := range extra {
		if k == KeyApp {
			continue
		}
		lb.labels[k] = v
	}
	return lb
}

// Build returns a copy of the labels map.
func (lb *LabelBuilder) Build() map[string]string {
	result := make(map[string]string, len(lb.labels))
	for k, v := range lb.labels {
		result[k] = v
	}
	return result
}

// SelectorForRun returns a label selector matching the pods of one run.
// An empty run matches every load-test pod.
func SelectorForRun(run string) string {
	set := map[string]string{KeyApp: AppLoadTest}
	if run != "" {
		set[KeyRun] = run
	}
	return Selector(set)
}

// Selector renders a label map as a deterministic equality selector.
func Selector(set map[string]string) string {
	return k8slabels.SelectorFromSet(set).String()
}
