package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		index    int
		expected string
	}{
		{"first", 1, "feuerwerk1"},
		{"double digit", 12, "feuerwerk12"},
		{"zero", 0, "feuerwerk0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Container(tt.index))
		})
	}
}

func TestWorkload(t *testing.T) {
	t.Parallel()

	first := Workload()
	second := Workload()

	assert.True(t, IsWorkload(first), "generated name %q should be recognised", first)
	assert.Len(t, first, len(WorkloadPrefix)+32)
	assert.NotContains(t, first[len(WorkloadPrefix):], "-")
	assert.NotEqual(t, first, second)
}

func TestIsWorkload(t *testing.T) {
	t.Parallel()

	assert.False(t, IsWorkload("fw-short"))
	assert.False(t, IsWorkload("deployment-0123456789abcdef0123456789abcdef"))
	assert.True(t, IsWorkload("fw-0123456789abcdef0123456789abcdef"))
}
