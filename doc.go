// Package loom provides a name-keyed service container for Go applications.
// Given a symbolic name it produces a fully constructed instance, resolving
// aliases, delegator (decorator) chains, and abstract-factory fallbacks
// without the caller knowing how the object is actually built.
//
// # Overview
//
// loom deliberately avoids reflection and autowiring. Every producer is an
// explicitly registered callable:
//   - Factories build an instance for one name
//   - Abstract factories are fallbacks claiming names by predicate
//   - Aliases map alternate names onto canonical ones
//   - Delegators decorate construction, chained in registration order
//   - Initializers run on every newly constructed instance
//
// # Basic Usage
//
// Create a container, register producers during setup, then resolve:
//
//	c := loom.New()
//	c.RegisterFactory("db", func(c *loom.Container, name string, _ loom.Options) (any, error) {
//	    return sql.Open("postgres", dsn)
//	})
//	c.RegisterFactory("user-repo", func(c *loom.Container, name string, _ loom.Options) (any, error) {
//	    db, err := c.Get("db")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return NewUserRepository(db.(*sql.DB)), nil
//	})
//
//	repo, err := c.Get("user-repo")
//
// # Shared Services
//
// Names are shared by default: the first Get constructs the instance and
// caches it, later Gets return the identical instance. Per-name sharing is
// controlled with SetShared, the default with SetSharedByDefault. Build
// always constructs fresh and never touches the cache.
//
// A cache hit returns the stored instance without re-running delegators or
// initializers, and ignores any options passed with the call. Options only
// parametrize construction.
//
// # Delegators
//
// Delegators wrap a service's construction. Each receives a callback that
// yields the previous stage's instance and decides whether, and how often,
// to invoke it:
//
//	c.RegisterDelegator("mailer", func(c *loom.Container, name string, callback loom.Callback, _ loom.Options) (any, error) {
//	    inner, err := callback()
//	    if err != nil {
//	        return nil, err
//	    }
//	    return NewRetryingMailer(inner.(Mailer)), nil
//	})
//
// The first registered delegator wraps the factory output; the last
// registered one runs outermost.
//
// # Failure Modes
//
// The engine itself fails only three ways: ServiceNotFoundError (no route to
// a producer), AliasCycleError (alias chain never terminates), and
// CircularDependencyError (a producer transitively requests the name it is
// constructing, reported with the full cycle path). Errors returned by
// factories, delegators, and initializers propagate unwrapped.
//
// # Concurrency
//
// Registration belongs to a setup phase. During serving, resolution is safe
// for concurrent use: the registry is only read, the cache is guarded, and
// when two goroutines race the first construction of a shared service the
// first writer claims the cache while the other keeps its own, equally valid
// instance. Cycle detection is scoped to a single top-level call.
package loom
