package session

import "fmt"

// ── Binding ───────────────────────────────────────────────────────────────────

// Binding associates a capability key with either a ready instance or a
// zero-argument factory to activate on demand.
type Binding struct {
	instance any
	factory  func() any
}

// Activate returns the bound instance, running the factory for
// factory-form bindings. Instance-form bindings return the same value on
// every activation.
func (b Binding) Activate() any {
	if b.factory != nil {
		return b.factory()
	}
	return b.instance
}

// InstanceForm reports whether the binding carries a ready instance rather
// than a factory.
func (b Binding) InstanceForm() bool { return b.factory == nil }

// ── Registry ──────────────────────────────────────────────────────────────────

// Registry is the mutable collection of capability bindings a Builder
// accumulates before freezing them into a Configuration.
//
// Single-capability keys hold exactly one binding; registering again
// replaces the previous one (last write wins, silently). Multi-capability
// keys append: every registration contributes to the aggregated sequence,
// duplicates included. The registry is pre-seeded with the framework
// default for every well-known key, so resolution never comes up empty.
//
// Misuse — an unknown key, or the wrong registration style for a key —
// panics. Those are programming errors that should fail during wiring,
// not configuration states.
type Registry struct {
	single map[Key]Binding
	multi  map[Key][]Binding
}

// NewRegistry creates a registry seeded with the framework defaults.
func NewRegistry() *Registry {
	r := &Registry{
		single: make(map[Key]Binding),
		multi:  make(map[Key][]Binding),
	}
	for _, c := range wellKnown {
		def := c.newDefault
		if c.Multi {
			r.multi[c.Key] = []Binding{{factory: def}}
		} else {
			r.single[c.Key] = Binding{factory: def}
		}
	}
	return r
}

// Bind replaces the binding for a single-capability key with a ready
// instance.
func (r *Registry) Bind(key Key, instance any) {
	r.mustSingle(key)
	r.single[key] = Binding{instance: instance}
}

// BindFactory replaces the binding for a single-capability key with a
// factory, activated on demand at the key's tier.
func (r *Registry) BindFactory(key Key, factory func() any) {
	if factory == nil {
		panic(fmt.Sprintf("session: nil factory for [%s]", key))
	}
	r.mustSingle(key)
	r.single[key] = Binding{factory: factory}
}

// Add appends a ready instance to a multi-capability key.
func (r *Registry) Add(key Key, instance any) {
	r.mustMulti(key)
	r.multi[key] = append(r.multi[key], Binding{instance: instance})
}

// AddFactory appends a factory to a multi-capability key. Each scope
// activates the factory independently, so scopes never share the result.
func (r *Registry) AddFactory(key Key, factory func() any) {
	if factory == nil {
		panic(fmt.Sprintf("session: nil factory for [%s]", key))
	}
	r.mustMulti(key)
	r.multi[key] = append(r.multi[key], Binding{factory: factory})
}

// Resolve returns the current binding for a single-capability key.
func (r *Registry) Resolve(key Key) Binding {
	r.mustSingle(key)
	return r.single[key]
}

// ResolveAll returns the current bindings for a multi-capability key, in
// registration order (framework default first).
func (r *Registry) ResolveAll(key Key) []Binding {
	r.mustMulti(key)
	return append([]Binding(nil), r.multi[key]...)
}

func (r *Registry) mustSingle(key Key) {
	c, ok := capabilityFor(key)
	if !ok {
		panic(fmt.Sprintf("session: unknown capability [%s]", key))
	}
	if c.Multi {
		panic(fmt.Sprintf("session: [%s] accepts multiple providers; use Add", key))
	}
}

func (r *Registry) mustMulti(key Key) {
	c, ok := capabilityFor(key)
	if !ok {
		panic(fmt.Sprintf("session: unknown capability [%s]", key))
	}
	if !c.Multi {
		panic(fmt.Sprintf("session: [%s] accepts a single provider; use Bind", key))
	}
}
