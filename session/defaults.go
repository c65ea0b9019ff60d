package session

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Framework defaults, one per well-known capability. They are deliberately
// plain in-memory implementations: enough to run a work unit end to end
// without any explicit registration.

// ── SequenceIdentityFactory ───────────────────────────────────────────────────

// SequenceIdentityFactory is the default IdentityFactory. It hands out one
// monotonically increasing counter per field and never declines.
type SequenceIdentityFactory struct {
	start int64

	mu   sync.Mutex
	seqs map[string]*sequenceGenerator
}

// NewSequenceIdentityFactory creates a factory whose counters begin at start.
func NewSequenceIdentityFactory(start int64) *SequenceIdentityFactory {
	return &SequenceIdentityFactory{start: start, seqs: make(map[string]*sequenceGenerator)}
}

// GeneratorFor returns the counter for field, creating it on first use.
func (f *SequenceIdentityFactory) GeneratorFor(field string) (IdentityGenerator, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	gen, ok := f.seqs[field]
	if !ok {
		gen = &sequenceGenerator{next: f.start}
		f.seqs[field] = gen
	}
	return gen, true
}

type sequenceGenerator struct {
	mu   sync.Mutex
	next int64
}

func (g *sequenceGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := g.next
	g.next++
	return n
}

// ── MemoryModelSource ─────────────────────────────────────────────────────────

// MemoryModelSource is the default ModelSource: a map of registered models.
type MemoryModelSource struct {
	mu     sync.RWMutex
	models map[string]*Model
}

// NewMemoryModelSource creates a source holding the given models.
func NewMemoryModelSource(models ...*Model) *MemoryModelSource {
	src := &MemoryModelSource{models: make(map[string]*Model, len(models))}
	for _, m := range models {
		src.models[m.Name] = m
	}
	return src
}

// Register adds or replaces a model description.
func (s *MemoryModelSource) Register(m *Model) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.models[m.Name] = m
}

// DescriptionFor returns the model registered under name.
func (s *MemoryModelSource) DescriptionFor(name string) (*Model, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.models[name]
	return m, ok
}

// Names returns the registered model names, sorted.
func (s *MemoryModelSource) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.models))
	for name := range s.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ── CopyMaterializer ──────────────────────────────────────────────────────────

// CopyMaterializer is the default Materializer. It copies the row into a
// fresh record, restricted to the model's declared fields when the model
// declares any.
type CopyMaterializer struct{}

func NewCopyMaterializer() *CopyMaterializer { return &CopyMaterializer{} }

func (m *CopyMaterializer) Materialize(model *Model, row map[string]any) (map[string]any, error) {
	if model == nil {
		return nil, fmt.Errorf("materialize: nil model")
	}
	record := make(map[string]any, len(row))
	if len(model.Fields) == 0 {
		for k, v := range row {
			record[k] = v
		}
		return record, nil
	}
	for _, field := range model.Fields {
		if v, ok := row[field]; ok {
			record[field] = v
		}
	}
	return record, nil
}

// ── MemoryPersister ───────────────────────────────────────────────────────────

// MemoryPersister is the default Persister: it appends records in memory,
// grouped by model. Useful as-is in tests and demos.
type MemoryPersister struct {
	mu      sync.Mutex
	records map[string][]map[string]any
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{records: make(map[string][]map[string]any)}
}

func (p *MemoryPersister) Persist(model string, record map[string]any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.records[model] = append(p.records[model], record)
	return nil
}

// Records returns what has been persisted for a model, in persist order.
func (p *MemoryPersister) Records(model string) []map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]map[string]any(nil), p.records[model]...)
}

// ── LogStateListener ──────────────────────────────────────────────────────────

// LogStateListener is the framework-contributed state listener, present in
// every scope's listener list unless the key is never aggregated. It logs
// each event through slog.
type LogStateListener struct {
	logger *slog.Logger
}

// NewLogStateListener creates the listener; a nil logger means slog.Default.
func NewLogStateListener(logger *slog.Logger) *LogStateListener {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogStateListener{logger: logger}
}

func (l *LogStateListener) StateChanged(ev StateEvent) {
	l.logger.Info("state changed", "model", ev.Model, "action", ev.Action)
}
