// Package inspect serves a read-only HTTP view of a built session
// configuration: which capabilities exist, at what tier, and what the
// configuration resolves them to. Intended for local debugging, not as a
// production surface.
package inspect

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/km-arc/go-sessions/session"
)

type envelope map[string]any

// NewHandler builds the inspection router over a configuration.
//
//	GET /capabilities — the well-known capability table; singleton keys
//	                    include the resolved concrete type.
//	GET /models       — names and descriptions from the model source.
func NewHandler(cfg *session.Configuration) http.Handler {
	r := chi.NewRouter()

	r.Get("/capabilities", func(w http.ResponseWriter, req *http.Request) {
		type entry struct {
			Key      string `json:"key"`
			Tier     string `json:"tier"`
			Multi    bool   `json:"multi"`
			Resolved string `json:"resolved,omitempty"`
		}

		var out []entry
		for _, c := range session.Capabilities() {
			e := entry{Key: string(c.Key), Tier: c.Tier.String(), Multi: c.Multi}
			// Reporting the concrete type means resolving the singleton;
			// acceptable for a diagnostic endpoint.
			if c.Tier == session.TierSingleton {
				switch c.Key {
				case session.KeyIdentityFactory:
					e.Resolved = fmt.Sprintf("%T", cfg.IdentityFactory())
				case session.KeyModelSource:
					e.Resolved = fmt.Sprintf("%T", cfg.ModelSource())
				}
			}
			out = append(out, e)
		}
		writeJSON(w, http.StatusOK, envelope{"data": out})
	})

	r.Get("/models", func(w http.ResponseWriter, req *http.Request) {
		src := cfg.ModelSource()
		models := make(map[string]*session.Model)
		for _, name := range src.Names() {
			if m, ok := src.DescriptionFor(name); ok {
				models[name] = m
			}
		}
		writeJSON(w, http.StatusOK, envelope{"data": models})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
