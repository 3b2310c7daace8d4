package loom

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceNotFoundError_Message(t *testing.T) {
	err := ServiceNotFoundError{Name: "db"}

	msg := err.Error()
	assert.Contains(t, msg, `service not found: "db"`)
	assert.NotContains(t, msg, "Did you mean")
}

func TestServiceNotFoundError_Suggestions(t *testing.T) {
	err := ServiceNotFoundError{
		Name:      "user-repo",
		Available: []string{"user-repository", "order-repository", "mailer"},
	}

	msg := err.Error()
	assert.Contains(t, msg, "Did you mean")
	assert.Contains(t, msg, "user-repository")
	assert.NotContains(t, msg, "mailer")
}

func TestServiceNotFoundError_Unwrap(t *testing.T) {
	err := ServiceNotFoundError{Name: "db"}

	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", err)))
}

func TestFindSimilarNames(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		available []string
		want      []string
	}{
		{
			name:      "substring match",
			target:    "repo",
			available: []string{"user-repo", "mailer"},
			want:      []string{"user-repo"},
		},
		{
			name:      "case insensitive",
			target:    "Cache",
			available: []string{"redis-cache"},
			want:      []string{"redis-cache"},
		},
		{
			name:      "target contains candidate",
			target:    "config.main",
			available: []string{"config"},
			want:      []string{"config"},
		},
		{
			name:      "exact name excluded",
			target:    "db",
			available: []string{"db"},
			want:      nil,
		},
		{
			name:      "no matches",
			target:    "db",
			available: []string{"mailer", "router"},
			want:      nil,
		},
		{
			name:   "empty target",
			target: "",
			want:   nil,
		},
		{
			name:      "limit of five",
			target:    "svc",
			available: []string{"svc1", "svc2", "svc3", "svc4", "svc5", "svc6", "svc7"},
			want:      []string{"svc1", "svc2", "svc3", "svc4", "svc5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, findSimilarNames(tt.target, tt.available))
		})
	}
}

func TestAliasCycleError_Message(t *testing.T) {
	err := AliasCycleError{Alias: "a", Path: []string{"a", "b", "a"}}
	assert.Equal(t, "alias cycle detected: a -> b -> a", err.Error())

	self := AliasCycleError{Alias: "p"}
	assert.Contains(t, self.Error(), `"p" refers back to itself`)
}

func TestDuplicateServiceError_Message(t *testing.T) {
	err := DuplicateServiceError{Name: "db"}
	assert.Contains(t, err.Error(), `service "db" already registered`)
}

func TestModuleError_Unwrap(t *testing.T) {
	cause := DuplicateServiceError{Name: "db"}
	err := ModuleError{Module: "storage", Cause: cause}

	assert.Contains(t, err.Error(), `module "storage"`)
	assert.True(t, IsDuplicate(err))

	var dup DuplicateServiceError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "db", dup.Name)
}

func TestClassificationHelpers_RejectOtherErrors(t *testing.T) {
	plain := errors.New("some failure")

	assert.False(t, IsNotFound(plain))
	assert.False(t, IsCircular(plain))
	assert.False(t, IsAliasCycle(plain))
	assert.False(t, IsDuplicate(plain))
}

func TestCircularDependencyError_Classification(t *testing.T) {
	err := CircularDependencyError{Name: "a", Path: []string{"a", "b", "a"}}

	assert.True(t, IsCircular(err))
	assert.True(t, IsCircular(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsNotFound(err))
}
