package workload

import (
	"fmt"
	"strings"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/validation"
	"sigs.k8s.io/yaml"

	"github.com/imamik/feuerwerk/internal/util/labels"
	"github.com/imamik/feuerwerk/internal/util/naming"
	"github.com/imamik/feuerwerk/internal/util/ptr"
)

// PullPolicy governs whether the replica image is fetched or reused from the node cache.
type PullPolicy string

const (
	PullIfNotPresent PullPolicy = "IfNotPresent"
	PullAlways       PullPolicy = "Always"
	PullNever        PullPolicy = "Never"
)

// ParsePullPolicy converts a user supplied value into a PullPolicy.
// Matching is case-insensitive; an empty value yields PullIfNotPresent.
func ParsePullPolicy(s string) (PullPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ifnotpresent":
		return PullIfNotPresent, nil
	case "always":
		return PullAlways, nil
	case "never":
		return PullNever, nil
	default:
		return "", fmt.Errorf("%w: %q (want IfNotPresent, Always or Never)", ErrInvalidPullPolicy, s)
	}
}

// Options are the validated-at-build inputs of a workload.
type Options struct {
	Replicas   int
	Image      string
	PullPolicy PullPolicy
	// Name is generated when empty.
	Name string
	// Labels are merged into the pod labels; app=loadtest always wins.
	Labels map[string]string
}

// Container describes one replica container.
type Container struct {
	Name       string
	Image      string
	PullPolicy PullPolicy
}

// Spec is the replica-set specification for one session.
type Spec struct {
	Name       string
	Replicas   int
	Image      string
	PullPolicy PullPolicy
	Labels     map[string]string
	Containers []Container
}

// Build validates opts and returns the workload specification.
// Containers are named feuerwerk<N> down to feuerwerk1.
func Build(opts Options) (*Spec, error) {
	if opts.Replicas <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidReplicaCount, opts.Replicas)
	}

	image := strings.TrimSpace(opts.Image)
	if image == "" {
		return nil, ErrInvalidImageReference
	}

	policy := opts.PullPolicy
	if policy == "" {
		policy = PullIfNotPresent
	}
	if _, err := ParsePullPolicy(string(policy)); err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		name = naming.Workload()
	}
	if errs := validation.IsDNS1123Label(name); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %q: %s", ErrInvalidName, name, strings.Join(errs, "; "))
	}

	containers := make([]Container, 0, opts.Replicas)
	for i := opts.Replicas; i > 0; i-- {
		containers = append(containers, Container{
			Name:       naming.Container(i),
			Image:      image,
			PullPolicy: policy,
		})
	}

	return &Spec{
		Name:       name,
		Replicas:   opts.Replicas,
		Image:      image,
		PullPolicy: policy,
		Labels: labels.NewLabelBuilder().
			Merge(opts.Labels).
			WithRun(name).
			WithManagedBy(labels.ManagedByFeuerwk).
			Build(),
		Containers: containers,
	}, nil
}

// Selector returns the label selector matching this workload's pods.
func (s *Spec) Selector() string {
	return labels.SelectorForRun(s.Name)
}

// Deployment renders the spec as an apps/v1 Deployment running a single pod
// that holds every replica container.
func (s *Spec) Deployment(namespace string) *appsv1.Deployment {
	containers := make([]corev1.Container, 0, len(s.Containers))
	for _, c := range s.Containers {
		containers = append(containers, corev1.Container{
			Name:            c.Name,
			Image:           c.Image,
			ImagePullPolicy: corev1.PullPolicy(c.PullPolicy),
		})
	}

	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apps/v1",
			Kind:       "Deployment",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      s.Name,
			Namespace: namespace,
			Labels:    s.Labels,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: ptr.Int32(1),
			Selector: &metav1.LabelSelector{
				MatchLabels: map[string]string{
					labels.KeyApp: labels.AppLoadTest,
					labels.KeyRun: s.Name,
				},
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: s.Labels,
				},
				Spec: corev1.PodSpec{
					Containers: containers,
				},
			},
		},
	}
}

// Manifest renders the Deployment as YAML.
func (s *Spec) Manifest(namespace string) ([]byte, error) {
	out, err := yaml.Marshal(s.Deployment(namespace))
	if err != nil {
		return nil, fmt.Errorf("failed to render deployment %s: %w", s.Name, err)
	}
	return out, nil
}
