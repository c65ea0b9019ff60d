// Package session configures the services behind a work-unit persistence
// framework in two tiers: singleton capabilities shared by every work
// unit, and scoped capabilities rebuilt for each one.
//
// # Overview
//
// A Builder accumulates bindings — a ready instance or a constructor
// function per capability — and freezes them into an immutable
// Configuration. Opening a scope against a Configuration activates the
// scoped tier fresh for that work unit:
//
//	cfg := session.NewBuilder().
//	    UseModelSource(session.NewMemoryModelSource(&session.Model{Name: "user"})).
//	    AddStateListener(myAudit).
//	    BuildConfiguration()
//
//	scope := cfg.OpenScope()
//	defer scope.Release()
//
//	record, err := scope.Materializer().Materialize(model, row)
//
// Every well-known capability has a framework default, so an empty
// Builder already yields a working Configuration.
//
// # Overriding
//
// Binding a single capability again replaces the previous provider
// outright; nothing is inherited. To keep the old behavior for inputs the
// new provider does not care about, compose explicitly:
//
//	custom := onlyHandles("user.id")
//	b.UseIdentityFactory(session.ComposeIdentityFactories(custom, session.NewSequenceIdentityFactory(1)))
//
// State listeners are the exception: they aggregate. Every AddStateListener
// call contributes an entry alongside the framework default, and each
// scope activates its own copies of factory-form entries.
package session
