package loom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/loomkit/loom/internal/stack"
)

// ========================================
// Core Error Values (Sentinel Errors)
// ========================================
// These are base errors that should be wrapped in typed errors when returned.
// Never return these directly to users - always wrap them with context.

var (
	// Resolution errors.
	ErrServiceNotFound = errors.New("service not found")
	ErrNameEmpty       = errors.New("service name cannot be empty")

	// Registration errors.
	ErrFactoryNil         = errors.New("factory cannot be nil")
	ErrAbstractFactoryNil = errors.New("abstract factory cannot be nil")
	ErrDelegatorNil       = errors.New("delegator factory cannot be nil")
	ErrInitializerNil     = errors.New("initializer cannot be nil")
	ErrInstanceNil        = errors.New("service instance cannot be nil")
	ErrAliasTargetEmpty   = errors.New("alias target cannot be empty")
)

var (
	_ error = ServiceNotFoundError{}
	_ error = AliasCycleError{}
	_ error = CircularDependencyError{}
	_ error = DuplicateServiceError{}
	_ error = ModuleError{}
)

// CircularDependencyError reports that a factory, delegator, or initializer
// transitively requested the service it was constructing. It carries the full
// cycle path for diagnosis.
type CircularDependencyError = stack.CycleError

// ========================================
// Typed Errors for Rich Context
// ========================================
// Always use these typed errors instead of fmt.Errorf() or errors.New()
// for domain-specific errors. Wrap sentinel errors with these types.

// ServiceNotFoundError indicates that no factory, alias, or accepting
// abstract factory exists for the requested name.
type ServiceNotFoundError struct {
	Name string

	// Available holds names that ARE registered (optional, for suggestions).
	Available []string
}

func (e ServiceNotFoundError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("service not found: %q", e.Name))

	if similar := findSimilarNames(e.Name, e.Available); len(similar) > 0 {
		b.WriteString("\n\nDid you mean one of these?\n")
		for _, name := range similar {
			b.WriteString(fmt.Sprintf("  • %s\n", name))
		}
	}

	b.WriteString("\nMake sure the service is registered under this name or an alias of it.")

	return b.String()
}

func (e ServiceNotFoundError) Unwrap() error {
	return ErrServiceNotFound
}

// findSimilarNames finds registered names resembling the requested one using
// a simple case-insensitive substring match.
func findSimilarNames(target string, available []string) []string {
	if target == "" || len(available) == 0 {
		return nil
	}

	lower := strings.ToLower(target)

	var similar []string
	for _, name := range available {
		if name == "" || name == target {
			continue
		}

		candidate := strings.ToLower(name)
		if strings.Contains(candidate, lower) || strings.Contains(lower, candidate) {
			similar = append(similar, name)
		}

		// Limit suggestions
		if len(similar) >= 5 {
			break
		}
	}

	return similar
}

// AliasCycleError indicates an alias chain that revisits a name before
// reaching a concrete producer. This is a configuration defect.
type AliasCycleError struct {
	Alias string

	// Path is the alias chain followed before the repeat, e.g. ["a", "b", "a"].
	Path []string
}

func (e AliasCycleError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("alias cycle detected: %q refers back to itself", e.Alias)
	}
	return fmt.Sprintf("alias cycle detected: %s", strings.Join(e.Path, " -> "))
}

// DuplicateServiceError indicates a registration attempted to overwrite an
// existing producer while overrides are disallowed.
type DuplicateServiceError struct {
	Name string
}

func (e DuplicateServiceError) Error() string {
	return fmt.Sprintf("service %q already registered (enable override to replace it)", e.Name)
}

// ModuleError wraps errors from module registration.
type ModuleError struct {
	Module string
	Cause  error
}

func (e ModuleError) Error() string {
	return fmt.Sprintf("module %q: %v", e.Module, e.Cause)
}

func (e ModuleError) Unwrap() error {
	return e.Cause
}

// ========================================
// Error Classification Helpers
// ========================================

// IsNotFound reports whether err means the requested service is unresolvable.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrServiceNotFound)
}

// IsCircular reports whether err is a circular dependency failure.
func IsCircular(err error) bool {
	var target CircularDependencyError
	return errors.As(err, &target)
}

// IsAliasCycle reports whether err is an alias cycle failure.
func IsAliasCycle(err error) bool {
	var target AliasCycleError
	return errors.As(err, &target)
}

// IsDuplicate reports whether err is a duplicate registration failure.
func IsDuplicate(err error) bool {
	var target DuplicateServiceError
	return errors.As(err, &target)
}
