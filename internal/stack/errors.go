package stack

import (
	"fmt"
	"strings"
)

// CycleError reports that resolving a service required resolving the same
// service again within one top-level call.
type CycleError struct {
	// Name is the service whose re-entry closed the cycle.
	Name string

	// Path is the resolution path from the first occurrence of Name back to
	// itself, e.g. ["a", "b", "a"].
	Path []string
}

func (e CycleError) Error() string {
	var b strings.Builder
	b.WriteString("circular dependency detected:\n\n")

	if len(e.Path) == 0 {
		b.WriteString(fmt.Sprintf("    %s\n", e.Name))
		b.WriteString("      ↓\n")
		b.WriteString(fmt.Sprintf("    %s (cycle)\n", e.Name))
	} else {
		for i, name := range e.Path {
			b.WriteString(fmt.Sprintf("    %s", name))
			if i == len(e.Path)-1 {
				b.WriteString(" (cycle)")
			}
			b.WriteString("\n")
			if i < len(e.Path)-1 {
				b.WriteString("      ↓\n")
			}
		}
	}

	b.WriteString("\nTo resolve this:\n")
	b.WriteString("  • Break the cycle with a delegator that resolves lazily\n")
	b.WriteString("  • Restructure so neither factory requests the other during construction\n")

	return b.String()
}
