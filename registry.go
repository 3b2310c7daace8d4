package loom

import (
	"sort"
	"sync"
)

// registry holds the static mapping of service names to producers and the
// per-name sharing policy. It is populated during the setup phase and read
// during resolution; the RWMutex makes late registrations safe, but the
// intended lifecycle is register-then-serve.
type registry struct {
	mu sync.RWMutex

	// name → producer
	factories map[string]Factory

	// fallback producers, consulted in registration order
	abstracts []AbstractFactory

	// alias → target (possibly itself an alias)
	aliases map[string]string

	// name → delegator chain, applied in registration order
	delegators map[string][]DelegatorFactory

	// applied to every newly constructed instance, in registration order
	initializers []Initializer

	// name → sharing override; absent names fall back to sharedByDefault
	shared map[string]bool

	sharedByDefault bool
	allowOverride   bool
}

func newRegistry() *registry {
	return &registry{
		factories:       make(map[string]Factory),
		aliases:         make(map[string]string),
		delegators:      make(map[string][]DelegatorFactory),
		shared:          make(map[string]bool),
		sharedByDefault: true,
		allowOverride:   true,
	}
}

// registerFactory maps name to factory. Last write wins unless overrides are
// disallowed, in which case re-registering an existing name fails.
func (r *registry) registerFactory(name string, factory Factory) error {
	if name == "" {
		return ErrNameEmpty
	}
	if factory == nil {
		return ErrFactoryNil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.allowOverride && r.isRegisteredLocked(name) {
		return DuplicateServiceError{Name: name}
	}

	r.factories[name] = factory
	// An alias under the same name would shadow the factory.
	delete(r.aliases, name)
	return nil
}

// registerAlias maps name to target. The target does not need to resolve at
// registration time; resolution is deferred to request time.
func (r *registry) registerAlias(name, target string) error {
	if name == "" {
		return ErrNameEmpty
	}
	if target == "" {
		return ErrAliasTargetEmpty
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.allowOverride && r.isRegisteredLocked(name) {
		return DuplicateServiceError{Name: name}
	}

	r.aliases[name] = target
	delete(r.factories, name)
	return nil
}

// registerAbstract appends factory to the fallback chain.
func (r *registry) registerAbstract(factory AbstractFactory) error {
	if factory == nil {
		return ErrAbstractFactoryNil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.abstracts = append(r.abstracts, factory)
	return nil
}

// registerDelegator appends delegator to name's chain. The last registered
// delegator becomes the outermost wrapper.
func (r *registry) registerDelegator(name string, delegator DelegatorFactory) error {
	if name == "" {
		return ErrNameEmpty
	}
	if delegator == nil {
		return ErrDelegatorNil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.delegators[name] = append(r.delegators[name], delegator)
	return nil
}

// registerInitializer appends fn to the initializer list.
func (r *registry) registerInitializer(fn Initializer) error {
	if fn == nil {
		return ErrInitializerNil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.initializers = append(r.initializers, fn)
	return nil
}

func (r *registry) setShared(name string, shared bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shared[name] = shared
}

func (r *registry) setSharedByDefault(shared bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sharedByDefault = shared
}

func (r *registry) setAllowOverride(allow bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.allowOverride = allow
}

func (r *registry) overrideAllowed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.allowOverride
}

// isShared reports the sharing policy for canonical: the per-name override
// if present, the container default otherwise.
func (r *registry) isShared(canonical string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if shared, ok := r.shared[canonical]; ok {
		return shared
	}
	return r.sharedByDefault
}

// factoryFor returns the explicit factory registered for canonical.
func (r *registry) factoryFor(canonical string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[canonical]
	return factory, ok
}

// aliasTarget returns the alias target for name, if name is an alias.
func (r *registry) aliasTarget(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	target, ok := r.aliases[name]
	return target, ok
}

// delegatorsFor returns a copy of canonical's delegator chain.
func (r *registry) delegatorsFor(canonical string) []DelegatorFactory {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chain := r.delegators[canonical]
	if len(chain) == 0 {
		return nil
	}
	return append([]DelegatorFactory(nil), chain...)
}

// abstractsSnapshot returns a copy of the fallback chain.
func (r *registry) abstractsSnapshot() []AbstractFactory {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.abstracts) == 0 {
		return nil
	}
	return append([]AbstractFactory(nil), r.abstracts...)
}

// initializersSnapshot returns a copy of the initializer list.
func (r *registry) initializersSnapshot() []Initializer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.initializers) == 0 {
		return nil
	}
	return append([]Initializer(nil), r.initializers...)
}

// isRegistered reports whether name has an explicit factory or alias.
func (r *registry) isRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isRegisteredLocked(name)
}

func (r *registry) isRegisteredLocked(name string) bool {
	if _, ok := r.factories[name]; ok {
		return true
	}
	_, ok := r.aliases[name]
	return ok
}

// knownNames returns every explicitly registered name, sorted, for error
// suggestions.
func (r *registry) knownNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories)+len(r.aliases))
	for name := range r.factories {
		names = append(names, name)
	}
	for name := range r.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
