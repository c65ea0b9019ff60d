package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/km-arc/go-sessions/framework/config"
	"github.com/km-arc/go-sessions/framework/inspect"
	"github.com/km-arc/go-sessions/session"
)

func main() {
	cfg := config.Load() // loads .env automatically

	// ── Configure the session services ───────────────────────────────────────

	// Custom identity factory for user.id only; every other field falls
	// through to the sequence default.
	identity := session.ComposeIdentityFactories(
		&reservedRangeFactory{field: "user.id", next: 1_000_000},
		session.NewSequenceIdentityFactory(cfg.Identity.Start),
	)

	conf := session.NewBuilder().
		UseModelSource(session.NewMemoryModelSource(
			&session.Model{Name: "user", Fields: []string{"id", "email"}},
		)).
		UseIdentityFactory(identity).
		AddStateListener(&auditListener{}).
		BuildConfiguration()

	// ── One work unit ─────────────────────────────────────────────────────────

	scope := conf.OpenScope()

	model, ok := scope.ModelSource().DescriptionFor("user")
	if !ok {
		log.Fatal("model [user] not configured")
	}
	gen, _ := scope.IdentityFactory().GeneratorFor("user.id")

	record, err := scope.Materializer().Materialize(model, map[string]any{
		"id":    gen.Next(),
		"email": "alice@example.com",
		"junk":  "dropped by the materializer",
	})
	if err != nil {
		log.Fatalf("materialize: %v", err)
	}
	if err := scope.Persister().Persist("user", record); err != nil {
		log.Fatalf("persist: %v", err)
	}
	scope.NotifyStateChanged(session.StateEvent{Model: "user", Action: "created", Record: record})
	scope.Release()

	fmt.Printf("persisted user record: %v\n", record)

	// ── Optional inspection endpoint ──────────────────────────────────────────

	if cfg.Inspect.Enabled {
		fmt.Printf("🔍  %s inspection on http://localhost%s  [%s]\n",
			cfg.App.Name, cfg.Inspect.Addr, cfg.App.Env)
		if err := http.ListenAndServe(cfg.Inspect.Addr, inspect.NewHandler(conf)); err != nil {
			log.Fatalf("inspect server error: %v", err)
		}
	}
}

// reservedRangeFactory serves one field from a reserved id range and
// declines the rest.
type reservedRangeFactory struct {
	field string
	next  int64
}

func (f *reservedRangeFactory) GeneratorFor(field string) (session.IdentityGenerator, bool) {
	if field != f.field {
		return nil, false
	}
	return f, true
}

func (f *reservedRangeFactory) Next() int64 {
	n := f.next
	f.next++
	return n
}

// auditListener is an example application listener registered next to the
// framework default.
type auditListener struct{}

func (l *auditListener) StateChanged(ev session.StateEvent) {
	slog.Info("audit", "model", ev.Model, "action", ev.Action)
}
