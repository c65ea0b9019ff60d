package session

import (
	"fmt"

	"github.com/km-arc/go-sessions/framework/container"
)

// Builder accumulates capability bindings and freezes them into
// Configurations. Every Use/Add method is sugar over one Registry call
// and returns the Builder for chaining:
//
//	cfg := session.NewBuilder().
//	    UseModelSource(src).
//	    AddStateListener(audit).
//	    BuildConfiguration()
//
// A Builder may build any number of Configurations; each build snapshots
// the registry's state at that moment, so later registrations never leak
// into an already-built Configuration.
type Builder struct {
	reg *Registry
}

// NewBuilder creates a Builder over a default-seeded registry.
func NewBuilder() *Builder {
	return &Builder{reg: NewRegistry()}
}

// Registry exposes the underlying registry for registrations the typed
// sugar does not cover.
func (b *Builder) Registry() *Registry { return b.reg }

// ── Typed registration sugar ──────────────────────────────────────────────────

// UseIdentityFactory binds a ready identity factory (singleton tier).
func (b *Builder) UseIdentityFactory(f IdentityFactory) *Builder {
	b.reg.Bind(KeyIdentityFactory, f)
	return b
}

// UseIdentityFactoryFunc binds an identity factory constructor, activated
// lazily at first access on each built Configuration.
func (b *Builder) UseIdentityFactoryFunc(fn func() IdentityFactory) *Builder {
	b.reg.BindFactory(KeyIdentityFactory, func() any { return fn() })
	return b
}

// UseModelSource binds a ready model source (singleton tier).
func (b *Builder) UseModelSource(src ModelSource) *Builder {
	b.reg.Bind(KeyModelSource, src)
	return b
}

// UseModelSourceFunc binds a model source constructor.
func (b *Builder) UseModelSourceFunc(fn func() ModelSource) *Builder {
	b.reg.BindFactory(KeyModelSource, func() any { return fn() })
	return b
}

// UseMaterializer binds a ready materializer (scoped tier — every scope
// will see this same instance, which defeats per-scope freshness; prefer
// UseMaterializerFunc).
func (b *Builder) UseMaterializer(m Materializer) *Builder {
	b.reg.Bind(KeyMaterializer, m)
	return b
}

// UseMaterializerFunc binds a materializer constructor, run once per
// opened scope.
func (b *Builder) UseMaterializerFunc(fn func() Materializer) *Builder {
	b.reg.BindFactory(KeyMaterializer, func() any { return fn() })
	return b
}

// UsePersister binds a ready persister (scoped tier; see UseMaterializer
// on instance-form scoped bindings).
func (b *Builder) UsePersister(p Persister) *Builder {
	b.reg.Bind(KeyPersister, p)
	return b
}

// UsePersisterFunc binds a persister constructor, run once per opened scope.
func (b *Builder) UsePersisterFunc(fn func() Persister) *Builder {
	b.reg.BindFactory(KeyPersister, func() any { return fn() })
	return b
}

// AddStateListener appends a ready listener to the aggregated listener
// list. The framework default listener stays in the list.
func (b *Builder) AddStateListener(l StateListener) *Builder {
	b.reg.Add(KeyStateListener, l)
	return b
}

// AddStateListenerFunc appends a listener constructor, run once per opened
// scope so scopes never share a listener instance.
func (b *Builder) AddStateListenerFunc(fn func() StateListener) *Builder {
	b.reg.AddFactory(KeyStateListener, func() any { return fn() })
	return b
}

// Install applies extensions, each packaging a group of registrations.
func (b *Builder) Install(exts ...Extension) *Builder {
	for _, ext := range exts {
		ext.Register(b)
	}
	return b
}

// ── Freezing ──────────────────────────────────────────────────────────────────

// BuildConfiguration freezes the registry's current bindings into an
// immutable Configuration.
//
// Each call materializes a fresh container: singleton-tier keys become
// shared bindings (instance or lazy factory — nothing activates at build
// time), scoped-tier keys become transient bindings resolved at
// scope-open time, and multi-key entries are bound under synthetic
// indexed keys and tagged so a scope can aggregate them. Because the
// container is new per build, mutating the registry afterwards cannot
// reach into the returned Configuration.
func (b *Builder) BuildConfiguration() *Configuration {
	c := container.New()

	for _, known := range wellKnown {
		key := string(known.Key)

		if known.Multi {
			entries := b.reg.ResolveAll(known.Key)
			keys := make([]string, len(entries))
			for i, entry := range entries {
				entry := entry
				syn := fmt.Sprintf("%s#%d", key, i)
				c.Bind(syn, func(*container.Container) any { return entry.Activate() })
				keys[i] = syn
			}
			c.Tag(keys, key)
			continue
		}

		bind := b.reg.Resolve(known.Key)
		switch {
		case known.Tier == TierSingleton && bind.InstanceForm():
			c.Instance(key, bind.Activate())
		case known.Tier == TierSingleton:
			c.Singleton(key, func(*container.Container) any { return bind.Activate() })
		default:
			c.Bind(key, func(*container.Container) any { return bind.Activate() })
		}
	}

	return &Configuration{c: c}
}
