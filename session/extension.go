package session

// Extension packages a group of related registrations so an application
// can install them as one unit:
//
//	type AuditExtension struct{ Sink *AuditSink }
//
//	func (e *AuditExtension) Register(b *session.Builder) {
//	    b.AddStateListenerFunc(func() session.StateListener { return e.Sink.NewListener() })
//	}
//
//	cfg := session.NewBuilder().Install(&AuditExtension{Sink: sink}).BuildConfiguration()
//
// Extensions run immediately inside Install, against the mutable builder;
// there is no deferred phase.
type Extension interface {
	Register(b *Builder)
}

// ExtensionFunc adapts a plain function to the Extension interface.
type ExtensionFunc func(b *Builder)

func (f ExtensionFunc) Register(b *Builder) { f(b) }
