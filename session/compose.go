package session

// Override composition: replacing a single-capability binding discards the
// previous provider entirely, so a caller who wants "my provider for these
// inputs, the old default for the rest" says so explicitly by composing
// the two. The composed provider is a plain implementation of the same
// contract and can itself be composed again; chains associate.

// Fallback composes two per-input lookups of the same shape. The result
// asks primary first and, only when primary declines the input, asks
// fallback with the same input. It never invents a result: if fallback
// declines too, that decline is what the caller sees.
func Fallback[K comparable, V any](primary, fallback func(K) (V, bool)) func(K) (V, bool) {
	return func(k K) (V, bool) {
		if v, ok := primary(k); ok {
			return v, true
		}
		return fallback(k)
	}
}

// ── IdentityFactory ───────────────────────────────────────────────────────────

type composedIdentityFactory struct {
	lookup func(string) (IdentityGenerator, bool)
}

func (f composedIdentityFactory) GeneratorFor(field string) (IdentityGenerator, bool) {
	return f.lookup(field)
}

// ComposeIdentityFactories builds an IdentityFactory that tries primary
// per field and falls back to fallback for fields primary declines.
//
// Typical use: wrap a custom factory around the previously configured
// default so only selected fields change behavior:
//
//	b.UseIdentityFactory(session.ComposeIdentityFactories(custom, session.NewSequenceIdentityFactory(1)))
func ComposeIdentityFactories(primary, fallback IdentityFactory) IdentityFactory {
	return composedIdentityFactory{lookup: Fallback(primary.GeneratorFor, fallback.GeneratorFor)}
}

// ── ModelSource ───────────────────────────────────────────────────────────────

type composedModelSource struct {
	primary, fallback ModelSource
	lookup            func(string) (*Model, bool)
}

func (s composedModelSource) DescriptionFor(name string) (*Model, bool) {
	return s.lookup(name)
}

// Names returns the union of both sources' names, primary first,
// duplicates removed.
func (s composedModelSource) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, src := range []ModelSource{s.primary, s.fallback} {
		for _, name := range src.Names() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// ComposeModelSources builds a ModelSource that consults primary per model
// name and falls back to fallback for names primary declines.
func ComposeModelSources(primary, fallback ModelSource) ModelSource {
	return composedModelSource{
		primary:  primary,
		fallback: fallback,
		lookup:   Fallback(primary.DescriptionFor, fallback.DescriptionFor),
	}
}
