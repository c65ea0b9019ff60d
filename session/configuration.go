package session

import (
	"github.com/km-arc/go-sessions/framework/container"
)

// Configuration is an immutable snapshot of the singleton-tier bindings,
// produced by Builder.BuildConfiguration.
//
// Singleton accessors resolve lazily and memoize: the first access
// activates the binding (at most once, even under concurrent first access
// from multiple scopes) and every later access returns the identical
// instance. Nothing is activated at build time — an unresolvable or
// failing binding surfaces as a panic at first access, during development
// or startup.
type Configuration struct {
	c *container.Container
}

// IdentityFactory returns the configured identity factory.
func (cfg *Configuration) IdentityFactory() IdentityFactory {
	return container.Resolve[IdentityFactory](cfg.c, string(KeyIdentityFactory))
}

// ModelSource returns the configured model source.
func (cfg *Configuration) ModelSource() ModelSource {
	return container.Resolve[ModelSource](cfg.c, string(KeyModelSource))
}

// OpenScope opens a fresh work-unit scope over this configuration.
// Scoped capabilities are activated eagerly, once, for the new scope;
// singleton capabilities stay shared with every other scope. The caller
// owns the scope and must Release it when the work unit ends.
func (cfg *Configuration) OpenScope() *Scope {
	return newScope(cfg)
}

// Bindings lists the underlying container keys (for inspection).
func (cfg *Configuration) Bindings() []string {
	return cfg.c.Bindings()
}
