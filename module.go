package loom

// Registration is a single registration action within a module.
type Registration func(*Container) error

// NewModule groups related registrations under a name. Applying the module
// runs every registration in order; the first failure aborts and is wrapped
// in a ModuleError naming the module.
//
// Example:
//
//	var StorageModule = loom.NewModule("storage",
//	    loom.WithFactory("db", NewDatabase),
//	    loom.WithFactory("user-repo", NewUserRepository),
//	    loom.WithAlias("repo", "user-repo"),
//	)
//
//	var AppModule = loom.NewModule("app",
//	    StorageModule,
//	    loom.WithFactory("mailer", NewMailer),
//	)
//
//	if err := AppModule(container); err != nil { ... }
func NewModule(name string, registrations ...Registration) Registration {
	return func(c *Container) error {
		for _, register := range registrations {
			if register == nil {
				continue
			}

			if err := register(c); err != nil {
				return ModuleError{Module: name, Cause: err}
			}
		}

		return nil
	}
}

// WithFactory creates a Registration for an explicit factory.
func WithFactory(name string, factory Factory) Registration {
	return func(c *Container) error {
		return c.RegisterFactory(name, factory)
	}
}

// WithAlias creates a Registration for an alias.
func WithAlias(name, target string) Registration {
	return func(c *Container) error {
		return c.RegisterAlias(name, target)
	}
}

// WithService creates a Registration for a pre-built instance.
func WithService(name string, instance any) Registration {
	return func(c *Container) error {
		return c.SetService(name, instance)
	}
}

// WithAbstractFactory creates a Registration for a fallback producer.
func WithAbstractFactory(factory AbstractFactory) Registration {
	return func(c *Container) error {
		return c.RegisterAbstractFactory(factory)
	}
}

// WithDelegator creates a Registration for a delegator on name.
func WithDelegator(name string, delegator DelegatorFactory) Registration {
	return func(c *Container) error {
		return c.RegisterDelegator(name, delegator)
	}
}

// WithInitializer creates a Registration for an initializer.
func WithInitializer(fn Initializer) Registration {
	return func(c *Container) error {
		return c.RegisterInitializer(fn)
	}
}

// WithShared creates a Registration that overrides sharing for name.
func WithShared(name string, shared bool) Registration {
	return func(c *Container) error {
		c.SetShared(name, shared)
		return nil
	}
}

// WithConfig creates a Registration that applies a declarative Config.
func WithConfig(cfg Config) Registration {
	return func(c *Container) error {
		return cfg.Apply(c)
	}
}
