// Package container provides a small string-keyed IoC container.
//
// It is the general-purpose layer underneath the session configuration
// policy in package session: it knows about factories, lifetimes, and
// tags, and nothing about the capabilities bound through it.
//
// # Bindings
//
//	// Transient — new value every Make()
//	c.Bind("materializer", func(c *container.Container) any { return newMaterializer() })
//
//	// Singleton — created once, reused, at-most-once even under concurrency
//	c.Singleton("model.source", func(c *container.Container) any {
//	    return session.NewMemoryModelSource()
//	})
//
//	// Pre-built value
//	c.Instance("identity.factory", myFactory)
//
// # Resolving
//
//	// Untyped
//	raw := c.Make("model.source")
//
//	// Generic (preferred — no type assertion required)
//	src := container.Resolve[session.ModelSource](c, "model.source")
//
// # Tags
//
//	c.Tag([]string{"state.listener#0", "state.listener#1"}, "state.listener")
//	listeners := c.Tagged("state.listener") // []any, fresh per call for transient keys
//
// A missing binding or a Resolve type mismatch panics: both are wiring
// mistakes that should surface the first time the code path runs.
package container
