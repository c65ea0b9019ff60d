package container

import (
	"fmt"
	"sync"
)

// ── Binding types ─────────────────────────────────────────────────────────────

// Factory is a function that builds a concrete value from the container.
type Factory func(c *Container) any

// binding holds a registered factory and whether its result is shared.
type binding struct {
	factory Factory
	shared  bool
}

// holder memoizes a shared value so its build function runs at most once,
// even when several goroutines resolve the same key concurrently.
type holder struct {
	once  sync.Once
	build func() any
	value any
}

func (h *holder) get() any {
	h.once.Do(func() {
		h.value = h.build()
		h.build = nil
	})
	return h.value
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is a small IoC container: string keys mapped to factories.
//
// It supports:
//   - Bind (transient — fresh value per Make)
//   - Singleton (lazy, memoized, at-most-once activation)
//   - Instance (pre-built shared value)
//   - Tags (group multiple keys under one tag, resolved together)
//
// Resolution failures are configuration errors and panic; there is no
// partial or delayed reporting.
type Container struct {
	mu sync.RWMutex

	// key → binding
	bindings map[string]*binding

	// key → memoized shared value
	shared map[string]*holder

	// tag → []key
	tags map[string][]string
}

// New creates an empty container.
func New() *Container {
	return &Container{
		bindings: make(map[string]*binding),
		shared:   make(map[string]*holder),
		tags:     make(map[string][]string),
	}
}

// ── Registration ──────────────────────────────────────────────────────────────

// Bind registers a transient factory: every Make runs it again.
func (c *Container) Bind(key string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.register(key, factory, false)
}

// Singleton registers a factory whose result is cached after first resolution.
// The factory runs at most once per container, regardless of concurrent callers.
func (c *Container) Singleton(key string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.register(key, factory, true)
}

// Instance registers a pre-built value as a shared singleton.
func (c *Container) Instance(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.bindings, key)
	c.shared[key] = &holder{build: func() any { return value }}
}

// register replaces any previous binding for key (must hold mu).
func (c *Container) register(key string, factory Factory, shared bool) {
	// Rebinding drops a previously memoized value so the new factory wins.
	delete(c.shared, key)
	c.bindings[key] = &binding{factory: factory, shared: shared}
}

// ── Tags ──────────────────────────────────────────────────────────────────────

// Tag associates multiple keys under a named group.
func (c *Container) Tag(keys []string, tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tags[tag] = append(c.tags[tag], keys...)
}

// Tagged resolves every key registered under a tag, in registration order.
// Transient tagged keys yield fresh values on every Tagged call.
func (c *Container) Tagged(tag string) []any {
	c.mu.RLock()
	keys := append([]string(nil), c.tags[tag]...)
	c.mu.RUnlock()

	result := make([]any, 0, len(keys))
	for _, key := range keys {
		result = append(result, c.Make(key))
	}
	return result
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves a key from the container.
// It panics if no binding is registered — a missing binding is a wiring
// mistake, not a runtime condition.
func (c *Container) Make(key string) any {
	c.mu.RLock()
	h, memoized := c.shared[key]
	b, bound := c.bindings[key]
	c.mu.RUnlock()

	if memoized {
		return h.get()
	}

	if !bound {
		panic(fmt.Sprintf("container: no binding registered for [%s]", key))
	}

	if !b.shared {
		return b.factory(c)
	}

	// Shared binding: install the holder under the write lock, run the
	// factory outside it. once.Do guarantees at-most-once activation.
	c.mu.Lock()
	h, ok := c.shared[key]
	if !ok {
		h = &holder{build: func() any { return b.factory(c) }}
		c.shared[key] = h
	}
	c.mu.Unlock()

	return h.get()
}

// ── Introspection ─────────────────────────────────────────────────────────────

// Bound reports whether a key has been registered.
func (c *Container) Bound(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, hasBinding := c.bindings[key]
	_, hasShared := c.shared[key]
	return hasBinding || hasShared
}

// Resolved reports whether a shared key has been resolved (or bound as an
// instance) at least once.
func (c *Container) Resolved(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.shared[key]
	return ok
}

// Bindings returns all registered keys (for debugging and inspection).
func (c *Container) Bindings() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.bindings)+len(c.shared))
	for k := range c.bindings {
		out = append(out, k)
	}
	for k := range c.shared {
		if _, already := c.bindings[k]; !already {
			out = append(out, k)
		}
	}
	return out
}

// Flush resets the entire container.
func (c *Container) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings = make(map[string]*binding)
	c.shared = make(map[string]*holder)
	c.tags = make(map[string][]string)
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Resolve is a generic helper that calls Make and type-asserts the result.
//
//	// Instead of: src := c.Make("model.source").(ModelSource)
//	// Write:      src := container.Resolve[ModelSource](c, "model.source")
func Resolve[T any](c *Container, key string) T {
	value := c.Make(key)
	typed, ok := value.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s] resolved to %T", *new(T), key, value))
	}
	return typed
}

// MustResolve is like Resolve but returns (T, bool) without panicking on
// a type mismatch. A missing binding still panics in Make.
func MustResolve[T any](c *Container, key string) (T, bool) {
	value := c.Make(key)
	typed, ok := value.(T)
	return typed, ok
}
