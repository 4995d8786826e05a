package workload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/yaml"

	"github.com/imamik/feuerwerk/internal/util/labels"
	"github.com/imamik/feuerwerk/internal/util/naming"
)

func TestBuild_ContainerPerReplica(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 10, 57} {
		spec, err := Build(Options{Replicas: n, Image: "chartjes/kinto-loadtests"})
		require.NoError(t, err)

		assert.Len(t, spec.Containers, n)
		assert.Equal(t, labels.AppLoadTest, spec.Labels[labels.KeyApp])

		seen := make(map[string]bool, n)
		for _, c := range spec.Containers {
			assert.False(t, seen[c.Name], "duplicate container name %s", c.Name)
			seen[c.Name] = true
			assert.Equal(t, "chartjes/kinto-loadtests", c.Image)
			assert.Equal(t, PullIfNotPresent, c.PullPolicy)
		}
	}
}

func TestBuild_ContainerNamesDescend(t *testing.T) {
	t.Parallel()

	spec, err := Build(Options{Replicas: 3, Image: "x"})
	require.NoError(t, err)

	names := make([]string, 0, len(spec.Containers))
	for _, c := range spec.Containers {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"feuerwerk3", "feuerwerk2", "feuerwerk1"}, names)
}

func TestBuild_InvalidReplicaCount(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1, -100} {
		spec, err := Build(Options{Replicas: n, Image: "x"})
		assert.Nil(t, spec)
		assert.ErrorIs(t, err, ErrInvalidReplicaCount)
	}
}

func TestBuild_InvalidImageReference(t *testing.T) {
	t.Parallel()

	for _, image := range []string{"", "   "} {
		_, err := Build(Options{Replicas: 1, Image: image})
		assert.ErrorIs(t, err, ErrInvalidImageReference)
	}
}

func TestBuild_ReplicaCountCheckedFirst(t *testing.T) {
	t.Parallel()

	_, err := Build(Options{Replicas: 0, Image: ""})
	assert.ErrorIs(t, err, ErrInvalidReplicaCount)
}

func TestBuild_PullPolicy(t *testing.T) {
	t.Parallel()

	spec, err := Build(Options{Replicas: 2, Image: "x", PullPolicy: PullAlways})
	require.NoError(t, err)
	for _, c := range spec.Containers {
		assert.Equal(t, PullAlways, c.PullPolicy)
	}

	_, err = Build(Options{Replicas: 2, Image: "x", PullPolicy: "Sometimes"})
	assert.ErrorIs(t, err, ErrInvalidPullPolicy)
}

func TestBuild_Name(t *testing.T) {
	t.Parallel()

	t.Run("generated", func(t *testing.T) {
		t.Parallel()
		spec, err := Build(Options{Replicas: 1, Image: "x"})
		require.NoError(t, err)
		assert.True(t, naming.IsWorkload(spec.Name))
		assert.Equal(t, spec.Name, spec.Labels[labels.KeyRun])
	})

	t.Run("caller assigned", func(t *testing.T) {
		t.Parallel()
		spec, err := Build(Options{Replicas: 1, Image: "x", Name: "nightly-run"})
		require.NoError(t, err)
		assert.Equal(t, "nightly-run", spec.Name)
		assert.Equal(t, "app=loadtest,feuerwerk.io/run=nightly-run", spec.Selector())
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		_, err := Build(Options{Replicas: 1, Image: "x", Name: "Not_Valid"})
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("longer than a label value", func(t *testing.T) {
		t.Parallel()
		_, err := Build(Options{Replicas: 1, Image: "x", Name: "fw-" + strings.Repeat("a", 70)})
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("dotted", func(t *testing.T) {
		t.Parallel()
		_, err := Build(Options{Replicas: 1, Image: "x", Name: "fw.nightly"})
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("longest label value", func(t *testing.T) {
		t.Parallel()
		name := "fw-" + strings.Repeat("a", 60)
		spec, err := Build(Options{Replicas: 1, Image: "x", Name: name})
		require.NoError(t, err)
		assert.Equal(t, name, spec.Labels[labels.KeyRun])
	})
}

func TestParsePullPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    PullPolicy
		wantErr bool
	}{
		{"", PullIfNotPresent, false},
		{"IfNotPresent", PullIfNotPresent, false},
		{"always", PullAlways, false},
		{" Never ", PullNever, false},
		{"later", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParsePullPolicy(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPullPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpec_Deployment(t *testing.T) {
	t.Parallel()

	spec, err := Build(Options{Replicas: 2, Image: "busybox", Name: "fw-test", PullPolicy: PullNever})
	require.NoError(t, err)

	dep := spec.Deployment("loadtest")

	assert.Equal(t, "fw-test", dep.Name)
	assert.Equal(t, "loadtest", dep.Namespace)
	require.NotNil(t, dep.Spec.Replicas)
	assert.Equal(t, int32(1), *dep.Spec.Replicas)
	assert.Equal(t, map[string]string{labels.KeyApp: labels.AppLoadTest, labels.KeyRun: "fw-test"}, dep.Spec.Selector.MatchLabels)

	podLabels := dep.Spec.Template.Labels
	for k, v := range dep.Spec.Selector.MatchLabels {
		assert.Equal(t, v, podLabels[k], "selector label %s must match template", k)
	}

	require.Len(t, dep.Spec.Template.Spec.Containers, 2)
	for _, c := range dep.Spec.Template.Spec.Containers {
		assert.Equal(t, "busybox", c.Image)
		assert.Equal(t, corev1.PullNever, c.ImagePullPolicy)
	}
}

func TestSpec_Manifest(t *testing.T) {
	t.Parallel()

	spec, err := Build(Options{Replicas: 1, Image: "busybox", Name: "fw-test"})
	require.NoError(t, err)

	out, err := spec.Manifest("default")
	require.NoError(t, err)
	assert.Contains(t, string(out), "kind: Deployment")

	var dep appsv1.Deployment
	require.NoError(t, yaml.Unmarshal(out, &dep))
	assert.Equal(t, "fw-test", dep.Name)
	assert.Equal(t, "feuerwerk1", dep.Spec.Template.Spec.Containers[0].Name)
}
