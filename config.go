package loom

// Config is the declarative registration surface: the shape a
// configuration-loading collaborator hands to the container at setup time.
// How a Config is produced (files, code, merged sources) is the
// collaborator's business; Apply only consumes the shape.
type Config struct {
	// Factories maps names to explicit factories.
	Factories map[string]Factory

	// Services maps names to pre-built instances.
	Services map[string]any

	// Aliases maps alternate names to their targets.
	Aliases map[string]string

	// AbstractFactories are fallback producers, consulted in slice order.
	AbstractFactories []AbstractFactory

	// Delegators maps names to decoration chains, applied in slice order
	// (last entry outermost).
	Delegators map[string][]DelegatorFactory

	// Initializers run on every newly constructed instance, in slice order.
	Initializers []Initializer

	// Shared holds per-name sharing overrides.
	Shared map[string]bool

	// SharedByDefault, when non-nil, replaces the container's default
	// sharing policy.
	SharedByDefault *bool

	// AllowOverride, when non-nil, replaces the container's override policy.
	// It is applied before any registration in this Config, so a Config can
	// both lock the container and supply the final registrations.
	AllowOverride *bool
}

// Apply registers everything in cfg on c. Policies first, then producers
// (factories, services, aliases, abstract factories), then decoration
// (delegators, initializers), then sharing overrides. The first failing
// registration aborts the apply; earlier registrations stay in place.
func (cfg Config) Apply(c *Container) error {
	if cfg.AllowOverride != nil {
		c.SetAllowOverride(*cfg.AllowOverride)
	}
	if cfg.SharedByDefault != nil {
		c.SetSharedByDefault(*cfg.SharedByDefault)
	}

	for name, factory := range cfg.Factories {
		if err := c.RegisterFactory(name, factory); err != nil {
			return err
		}
	}

	for name, instance := range cfg.Services {
		if err := c.SetService(name, instance); err != nil {
			return err
		}
	}

	for name, target := range cfg.Aliases {
		if err := c.RegisterAlias(name, target); err != nil {
			return err
		}
	}

	for _, abstract := range cfg.AbstractFactories {
		if err := c.RegisterAbstractFactory(abstract); err != nil {
			return err
		}
	}

	for name, chain := range cfg.Delegators {
		for _, delegator := range chain {
			if err := c.RegisterDelegator(name, delegator); err != nil {
				return err
			}
		}
	}

	for _, initialize := range cfg.Initializers {
		if err := c.RegisterInitializer(initialize); err != nil {
			return err
		}
	}

	for name, shared := range cfg.Shared {
		c.SetShared(name, shared)
	}

	return nil
}

// Merge combines cfg with other into a new Config. Map entries from other
// win on collision; delegator chains and initializer lists append (cfg's
// entries stay innermost / first); other's policies win when set.
func (cfg Config) Merge(other Config) Config {
	merged := Config{
		Factories:       mergeMaps(cfg.Factories, other.Factories),
		Services:        mergeMaps(cfg.Services, other.Services),
		Aliases:         mergeMaps(cfg.Aliases, other.Aliases),
		Shared:          mergeMaps(cfg.Shared, other.Shared),
		SharedByDefault: cfg.SharedByDefault,
		AllowOverride:   cfg.AllowOverride,
	}

	if other.SharedByDefault != nil {
		merged.SharedByDefault = other.SharedByDefault
	}
	if other.AllowOverride != nil {
		merged.AllowOverride = other.AllowOverride
	}

	if len(cfg.AbstractFactories) > 0 || len(other.AbstractFactories) > 0 {
		merged.AbstractFactories = append(append([]AbstractFactory(nil), cfg.AbstractFactories...), other.AbstractFactories...)
	}
	if len(cfg.Initializers) > 0 || len(other.Initializers) > 0 {
		merged.Initializers = append(append([]Initializer(nil), cfg.Initializers...), other.Initializers...)
	}

	if len(cfg.Delegators) > 0 || len(other.Delegators) > 0 {
		merged.Delegators = make(map[string][]DelegatorFactory, len(cfg.Delegators)+len(other.Delegators))
		for name, chain := range cfg.Delegators {
			merged.Delegators[name] = append([]DelegatorFactory(nil), chain...)
		}
		for name, chain := range other.Delegators {
			merged.Delegators[name] = append(merged.Delegators[name], chain...)
		}
	}

	return merged
}

func mergeMaps[V any](base, override map[string]V) map[string]V {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}

	merged := make(map[string]V, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}
