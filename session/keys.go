package session

// Key identifies a replaceable capability in the session registry.
type Key string

// Well-known capability keys. The registry is pre-seeded with a framework
// default for each of them; binding the same key again replaces the default.
const (
	// KeyIdentityFactory creates identity generators per target field.
	KeyIdentityFactory Key = "identity.factory"

	// KeyModelSource supplies model descriptions by name.
	KeyModelSource Key = "model.source"

	// KeyMaterializer builds in-memory records from raw rows.
	KeyMaterializer Key = "materializer"

	// KeyPersister writes records back out.
	KeyPersister Key = "persister"

	// KeyStateListener observes state changes inside a work unit.
	// Multi-capability: every registration contributes a listener.
	KeyStateListener Key = "state.listener"
)

// Tier classifies a capability's lifetime.
type Tier int

const (
	// TierSingleton capabilities resolve to one instance per built
	// Configuration, shared by every scope opened from it.
	TierSingleton Tier = iota

	// TierScoped capabilities resolve to a fresh instance per opened Scope.
	TierScoped
)

func (t Tier) String() string {
	switch t {
	case TierSingleton:
		return "singleton"
	case TierScoped:
		return "scoped"
	default:
		return "unknown"
	}
}

// Capability describes a well-known key: its lifetime tier and whether it
// accepts multiple simultaneous providers.
type Capability struct {
	Key   Key
	Tier  Tier
	Multi bool
}

// capability extends the public description with the framework default
// provider seeded at registry construction.
type capability struct {
	Capability
	newDefault func() any
}

// wellKnown is the capability key space. Order matters only for listing.
var wellKnown = []capability{
	{Capability{KeyIdentityFactory, TierSingleton, false}, func() any { return NewSequenceIdentityFactory(1) }},
	{Capability{KeyModelSource, TierSingleton, false}, func() any { return NewMemoryModelSource() }},
	{Capability{KeyMaterializer, TierScoped, false}, func() any { return NewCopyMaterializer() }},
	{Capability{KeyPersister, TierScoped, false}, func() any { return NewMemoryPersister() }},
	{Capability{KeyStateListener, TierScoped, true}, func() any { return NewLogStateListener(nil) }},
}

// Capabilities returns the well-known capability table.
func Capabilities() []Capability {
	out := make([]Capability, len(wellKnown))
	for i, c := range wellKnown {
		out[i] = c.Capability
	}
	return out
}

func capabilityFor(key Key) (capability, bool) {
	for _, c := range wellKnown {
		if c.Key == key {
			return c, true
		}
	}
	return capability{}, false
}
