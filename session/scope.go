package session

import (
	"fmt"
	"sync/atomic"

	"github.com/km-arc/go-sessions/framework/container"
)

// Scope holds the work-unit tier of a Configuration: one freshly activated
// instance per scoped capability plus the aggregated state-listener list,
// built eagerly when the scope opens. Singleton accessors pass through to
// the owning Configuration.
//
// A scope belongs to exactly one work unit. Release marks the end of the
// unit; any accessor called after Release panics rather than returning
// stale services. Releasing a scope never affects the Configuration or
// any sibling scope.
type Scope struct {
	cfg *Configuration

	materializer Materializer
	persister    Persister
	listeners    []StateListener

	released atomic.Bool
}

func newScope(cfg *Configuration) *Scope {
	s := &Scope{
		cfg:          cfg,
		materializer: container.Resolve[Materializer](cfg.c, string(KeyMaterializer)),
		persister:    container.Resolve[Persister](cfg.c, string(KeyPersister)),
	}
	for _, raw := range cfg.c.Tagged(string(KeyStateListener)) {
		l, ok := raw.(StateListener)
		if !ok {
			panic(fmt.Sprintf("session: [%s] entry resolved to %T, not StateListener", KeyStateListener, raw))
		}
		s.listeners = append(s.listeners, l)
	}
	return s
}

// ── Singleton pass-through ────────────────────────────────────────────────────

// IdentityFactory returns the owning configuration's identity factory.
func (s *Scope) IdentityFactory() IdentityFactory {
	s.active()
	return s.cfg.IdentityFactory()
}

// ModelSource returns the owning configuration's model source.
func (s *Scope) ModelSource() ModelSource {
	s.active()
	return s.cfg.ModelSource()
}

// ── Scoped services ───────────────────────────────────────────────────────────

// Materializer returns this scope's materializer.
func (s *Scope) Materializer() Materializer {
	s.active()
	return s.materializer
}

// Persister returns this scope's persister.
func (s *Scope) Persister() Persister {
	s.active()
	return s.persister
}

// StateListeners returns the aggregated listener list for this scope:
// the framework default plus every registered listener, each activated
// for this scope alone. Treat the order as unspecified.
func (s *Scope) StateListeners() []StateListener {
	s.active()
	return append([]StateListener(nil), s.listeners...)
}

// NotifyStateChanged delivers an event to every listener in the scope.
func (s *Scope) NotifyStateChanged(ev StateEvent) {
	s.active()
	for _, l := range s.listeners {
		l.StateChanged(ev)
	}
}

// ── Lifecycle ─────────────────────────────────────────────────────────────────

// Release ends the scope. It is idempotent; it performs no teardown of
// its own, since scoped services that hold resources manage them under
// their own contracts.
func (s *Scope) Release() {
	s.released.Store(true)
}

// Released reports whether the scope has been released.
func (s *Scope) Released() bool {
	return s.released.Load()
}

func (s *Scope) active() {
	if s.released.Load() {
		panic("session: use of released scope")
	}
}
