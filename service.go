package loom

// Options is an open key/value map handed to factories and delegators
// unchanged. It only matters for non-cached construction: a cached Get
// returns the stored instance and ignores any options supplied with the
// call. That asymmetry is part of the contract, not an oversight.
type Options map[string]any

// Factory produces an instance for a single canonical name. It receives the
// resolution-frame container, so any Get/Build it performs participates in
// the caller's circular-dependency detection.
type Factory func(c *Container, name string, options Options) (any, error)

// Callback yields the previous stage's instance inside a delegator chain:
// either the base factory's output or the next inner delegator's output.
type Callback func() (any, error)

// DelegatorFactory decorates the construction of a service. It decides
// whether and how many times to invoke callback; most call it exactly once,
// but zero (e.g. a short-circuiting cache) or several invocations are legal.
type DelegatorFactory func(c *Container, name string, callback Callback, options Options) (any, error)

// Initializer runs on every newly constructed instance, in registration
// order. Initializers mutate state on the instance; they must not replace
// the reference.
type Initializer func(c *Container, instance any) error

// AbstractFactory is a fallback producer consulted only when no explicit
// factory or alias exists for a name. Registered abstract factories are
// tried in registration order; the first whose CanCreate accepts the name
// wins.
type AbstractFactory interface {
	// CanCreate reports whether this factory knows how to build name. It is
	// a query: it must not construct anything or mutate the container.
	CanCreate(c *Container, name string) bool

	// Create builds an instance for name. Only called after CanCreate has
	// accepted the same name.
	Create(c *Container, name string, options Options) (any, error)
}

// abstractFactoryFunc adapts a predicate/factory pair to AbstractFactory.
type abstractFactoryFunc struct {
	can    func(c *Container, name string) bool
	create Factory
}

func (f abstractFactoryFunc) CanCreate(c *Container, name string) bool {
	return f.can(c, name)
}

func (f abstractFactoryFunc) Create(c *Container, name string, options Options) (any, error) {
	return f.create(c, name, options)
}

// NewAbstractFactory builds an AbstractFactory from a predicate and a
// factory function, for callers that don't want a named type.
func NewAbstractFactory(can func(c *Container, name string) bool, create Factory) AbstractFactory {
	return abstractFactoryFunc{can: can, create: create}
}
