package session

// The capability contracts below are what the registry binds and the
// configurations hand out. Their behaviors are the concern of whoever
// implements them; this package only decides which instance backs each
// contract and at what lifetime.

// IdentityGenerator yields successive identity values for one field.
type IdentityGenerator interface {
	Next() int64
}

// IdentityFactory creates identity generators per target field.
//
// ok == false means the factory declines the field. A decline is not an
// error: it is the sentinel that lets an override delegate the field to a
// fallback factory (see ComposeIdentityFactories).
type IdentityFactory interface {
	GeneratorFor(field string) (gen IdentityGenerator, ok bool)
}

// Model describes a record shape known to a ModelSource.
type Model struct {
	Name   string
	Fields []string
}

// ModelSource supplies model descriptions by name.
//
// DescriptionFor declines unknown names with ok == false, the same
// sentinel convention as IdentityFactory.
type ModelSource interface {
	DescriptionFor(name string) (*Model, bool)
	Names() []string
}

// Materializer builds an in-memory record from a raw row.
// Scoped: each work unit gets its own instance.
type Materializer interface {
	Materialize(model *Model, row map[string]any) (map[string]any, error)
}

// Persister writes a record for a model.
// Scoped: each work unit gets its own instance.
type Persister interface {
	Persist(model string, record map[string]any) error
}

// StateEvent describes a change observed inside a work unit.
type StateEvent struct {
	Model  string
	Action string // created | updated | deleted
	Record map[string]any
}

// StateListener is notified of state changes. Multi-capability: every
// listener registered in a scope observes every event, in no guaranteed
// order.
type StateListener interface {
	StateChanged(ev StateEvent)
}
