package loom

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/loomkit/loom/internal/stack"
)

// Container is the construction engine: given a service name it resolves
// aliases to a canonical name, routes the name to a producer, assembles the
// delegator chain, applies initializers, and caches shared instances.
//
// Registrations belong to the setup phase. Once serving begins the registry
// should be treated as immutable; resolution only reads it.
type Container struct {
	id    string
	reg   *registry
	res   *resolver
	cache *instanceCache
	log   logr.Logger

	// frame is non-nil only on the per-call copy handed to producers. It
	// carries the resolution stack, so a factory calling back into the
	// container shares cycle detection with its caller.
	frame *stack.Stack
}

// New creates an empty container.
func New(opts ...Option) *Container {
	options := defaultContainerOptions()
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&options)
		}
	}

	id := uuid.NewString()
	reg := newRegistry()
	reg.setSharedByDefault(options.sharedByDefault)
	reg.setAllowOverride(options.allowOverride)

	return &Container{
		id:    id,
		reg:   reg,
		res:   &resolver{reg: reg},
		cache: newInstanceCache(),
		log:   options.logger.WithValues("container", id),
	}
}

// ID returns the container's unique identifier.
func (c *Container) ID() string {
	return c.id
}

func (c *Container) String() string {
	return fmt.Sprintf("loom.Container(%s)", c.id)
}

// ========================================
// Registration Surface
// ========================================

// RegisterFactory maps name to factory. Re-registering an existing name
// overwrites it (and drops any cached instance) unless overrides are
// disallowed, in which case it fails with a DuplicateServiceError.
func (c *Container) RegisterFactory(name string, factory Factory) error {
	if err := c.reg.registerFactory(name, factory); err != nil {
		return err
	}

	// A replaced factory invalidates the instance built by its predecessor.
	c.cache.forget(name)
	c.log.V(2).Info("registered factory", "name", name)
	return nil
}

// RegisterAlias maps name to target. The target need not be resolvable yet;
// alias chains are followed at request time.
func (c *Container) RegisterAlias(name, target string) error {
	if err := c.reg.registerAlias(name, target); err != nil {
		return err
	}

	c.log.V(2).Info("registered alias", "name", name, "target", target)
	return nil
}

// RegisterAbstractFactory appends factory to the fallback chain consulted
// when a name has no explicit factory or alias. Order of registration is
// order of consultation; the first accepting factory wins.
func (c *Container) RegisterAbstractFactory(factory AbstractFactory) error {
	if err := c.reg.registerAbstract(factory); err != nil {
		return err
	}

	c.log.V(2).Info("registered abstract factory")
	return nil
}

// RegisterDelegator appends delegator to name's decoration chain. The last
// registered delegator becomes the outermost wrapper.
func (c *Container) RegisterDelegator(name string, delegator DelegatorFactory) error {
	if err := c.reg.registerDelegator(name, delegator); err != nil {
		return err
	}

	c.log.V(2).Info("registered delegator", "name", name)
	return nil
}

// RegisterInitializer appends fn to the list applied to every newly
// constructed instance. Cache hits skip initializers.
func (c *Container) RegisterInitializer(fn Initializer) error {
	if err := c.reg.registerInitializer(fn); err != nil {
		return err
	}

	c.log.V(2).Info("registered initializer")
	return nil
}

// SetService stores a pre-built instance under name. The instance lands in
// the cache under the canonical name and is marked shared, so subsequent
// Get calls return it as-is. Subject to the override policy.
func (c *Container) SetService(name string, instance any) error {
	if name == "" {
		return ErrNameEmpty
	}
	if instance == nil {
		return ErrInstanceNil
	}

	canonical, err := c.res.resolveCanonical(name)
	if err != nil {
		return err
	}

	if !c.reg.overrideAllowed() && (c.reg.isRegistered(canonical) || c.cache.has(canonical)) {
		return DuplicateServiceError{Name: canonical}
	}

	c.reg.setShared(canonical, true)
	c.cache.set(canonical, instance)
	c.log.V(2).Info("registered instance", "name", canonical)
	return nil
}

// SetShared overrides the sharing policy for a single name.
func (c *Container) SetShared(name string, shared bool) {
	c.reg.setShared(name, shared)
}

// SetSharedByDefault sets the sharing policy for names without a per-name
// override. Containers start with sharing enabled.
func (c *Container) SetSharedByDefault(shared bool) {
	c.reg.setSharedByDefault(shared)
}

// SetAllowOverride controls whether registrations may replace existing ones.
// Containers start with overrides allowed.
func (c *Container) SetAllowOverride(allow bool) {
	c.reg.setAllowOverride(allow)
}

// Forget drops the cached instance for name, if any. The next shared Get
// constructs a fresh one.
func (c *Container) Forget(name string) {
	canonical, err := c.res.resolveCanonical(name)
	if err != nil {
		// A broken alias chain cannot have a cached target.
		return
	}
	c.cache.forget(canonical)
}

// Reset drops every cached instance. Registrations are untouched.
func (c *Container) Reset() {
	c.cache.clear()
}

// ========================================
// Resolution Surface
// ========================================

// Get returns the instance registered under name, constructing it on first
// use. Shared names are cached: every later Get returns the same instance.
func (c *Container) Get(name string) (any, error) {
	return c.resolutionFrame().resolve(name, nil, true)
}

// GetWith is Get with construction options. Options reach the factory and
// every delegator unchanged, but only on construction: a cache hit returns
// the stored instance and ignores options entirely. That asymmetry is the
// documented contract for shared services, not a defect.
func (c *Container) GetWith(name string, options Options) (any, error) {
	return c.resolutionFrame().resolve(name, options, true)
}

// Build constructs a fresh instance regardless of the sharing policy. It
// never reads or writes the cache.
func (c *Container) Build(name string, options Options) (any, error) {
	return c.resolutionFrame().resolve(name, options, false)
}

// Has reports whether name is resolvable: a pre-built instance, an explicit
// factory, an alias chain ending in one, or an accepting abstract factory.
// Nothing is constructed; abstract factories are only asked their predicate.
func (c *Container) Has(name string) bool {
	if name == "" {
		return false
	}

	canonical, err := c.res.resolveCanonical(name)
	if err != nil {
		return false
	}

	if c.cache.has(canonical) {
		return true
	}

	return c.res.classify(c, canonical).kind != producerUnresolvable
}

// resolutionFrame returns the container view producers run against. A
// top-level call gets a copy carrying a fresh resolution stack; nested calls
// (producers invoking Get/Build on the container they were handed) already
// hold a frame and reuse its stack, which is what makes cycle detection span
// the whole top-level request.
func (c *Container) resolutionFrame() *Container {
	if c.frame != nil {
		return c
	}

	frame := *c
	frame.frame = stack.New()
	return &frame
}

// resolve runs one resolution end to end. useCache distinguishes Get
// (shared instances are reused and stored) from Build (the cache is never
// touched).
func (c *Container) resolve(name string, options Options, useCache bool) (any, error) {
	if name == "" {
		return nil, ErrNameEmpty
	}

	canonical, err := c.res.resolveCanonical(name)
	if err != nil {
		return nil, err
	}

	shared := c.reg.isShared(canonical)
	if useCache && shared {
		if instance, ok := c.cache.get(canonical); ok {
			c.log.V(1).Info("resolved from cache", "name", canonical)
			return instance, nil
		}
	}

	if err := c.frame.Push(canonical); err != nil {
		return nil, err
	}
	defer c.frame.Pop()

	instance, err := c.construct(canonical, options)
	if err != nil {
		return nil, err
	}

	if useCache && shared {
		// Atomic check-then-set: when two goroutines race the same miss, the
		// first writer owns the cache slot. The loser still returns its own
		// instance; both are valid per configuration.
		c.cache.setIfAbsent(canonical, instance)
	}

	c.log.V(1).Info("constructed service", "name", canonical, "shared", shared, "cached", useCache && shared)
	return instance, nil
}

// construct invokes the producer for canonical, folding in delegators and
// applying initializers. Producer errors propagate unwrapped so callers can
// tell routing failures from construction failures.
func (c *Container) construct(canonical string, options Options) (any, error) {
	cls := c.res.classify(c, canonical)

	var base Callback
	switch cls.kind {
	case producerFactory:
		base = func() (any, error) {
			return cls.factory(c, canonical, options)
		}
	case producerAbstract:
		base = func() (any, error) {
			return cls.abstract.Create(c, canonical, options)
		}
	default:
		return nil, ServiceNotFoundError{Name: canonical, Available: c.reg.knownNames()}
	}

	callback := base
	if chain := c.reg.delegatorsFor(canonical); len(chain) > 0 {
		callback = foldDelegators(c, canonical, base, chain, options)
	}

	instance, err := callback()
	if err != nil {
		return nil, err
	}

	for _, initialize := range c.reg.initializersSnapshot() {
		if err := initialize(c, instance); err != nil {
			return nil, err
		}
	}

	return instance, nil
}
