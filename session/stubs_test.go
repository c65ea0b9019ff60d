package session

import "sync"

// Shared test doubles for the session package tests.

// recordingListener captures every event it observes.
type recordingListener struct {
	mu     sync.Mutex
	events []StateEvent
}

func (l *recordingListener) StateChanged(ev StateEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *recordingListener) Events() []StateEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]StateEvent(nil), l.events...)
}

// staticGenerator always yields the same value.
type staticGenerator struct{ value int64 }

func (g staticGenerator) Next() int64 { return g.value }

// fieldIdentityFactory handles exactly the fields it was given and counts
// how often it is consulted.
type fieldIdentityFactory struct {
	fields map[string]IdentityGenerator
	calls  int
}

func newFieldIdentityFactory(fields map[string]IdentityGenerator) *fieldIdentityFactory {
	return &fieldIdentityFactory{fields: fields}
}

func (f *fieldIdentityFactory) GeneratorFor(field string) (IdentityGenerator, bool) {
	f.calls++
	gen, ok := f.fields[field]
	return gen, ok
}

// stubMaterializer tags records so tests can tell which instance produced
// them.
type stubMaterializer struct{ tag string }

func (m *stubMaterializer) Materialize(model *Model, row map[string]any) (map[string]any, error) {
	record := make(map[string]any, len(row)+1)
	for k, v := range row {
		record[k] = v
	}
	record["_tag"] = m.tag
	return record, nil
}
