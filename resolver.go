package loom

// producerKind tags the strategy classify selected for a canonical name.
type producerKind int

const (
	// producerUnresolvable - no factory, and no abstract factory accepts the name
	producerUnresolvable producerKind = iota

	// producerFactory - an explicitly registered factory
	producerFactory

	// producerAbstract - the first abstract factory whose predicate accepted the name
	producerAbstract
)

// classification is the outcome of routing a canonical name to a producer.
type classification struct {
	kind     producerKind
	factory  Factory
	abstract AbstractFactory
}

// resolver turns requested names into canonical names and routes canonical
// names to producers. It holds no state of its own beyond the registry.
type resolver struct {
	reg *registry
}

// resolveCanonical follows the alias chain from name until it reaches a
// non-alias, guarding against cycles with a visited set. Names that are not
// aliases pass through unchanged.
func (r *resolver) resolveCanonical(name string) (string, error) {
	target, ok := r.reg.aliasTarget(name)
	if !ok {
		return name, nil
	}

	visited := map[string]struct{}{name: {}}
	path := []string{name}

	for {
		path = append(path, target)
		if _, seen := visited[target]; seen {
			return "", AliasCycleError{Alias: name, Path: path}
		}
		visited[target] = struct{}{}

		next, ok := r.reg.aliasTarget(target)
		if !ok {
			return target, nil
		}
		target = next
	}
}

// classify routes canonical to a producer: an explicit factory wins; failing
// that, registered abstract factories are asked in registration order and the
// first accepting one is selected.
func (r *resolver) classify(c *Container, canonical string) classification {
	if factory, ok := r.reg.factoryFor(canonical); ok {
		return classification{kind: producerFactory, factory: factory}
	}

	for _, abstract := range r.reg.abstractsSnapshot() {
		if abstract.CanCreate(c, canonical) {
			return classification{kind: producerAbstract, abstract: abstract}
		}
	}

	return classification{kind: producerUnresolvable}
}
