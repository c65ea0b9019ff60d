package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// NewRegistry / defaults
// -----------------------------------------------------------------------------

// TestNewRegistry_SeedsDefaults verifies every well-known key is bound
// out of the box.
func TestNewRegistry_SeedsDefaults(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	require.IsType(t, &SequenceIdentityFactory{}, r.Resolve(KeyIdentityFactory).Activate())
	require.IsType(t, &MemoryModelSource{}, r.Resolve(KeyModelSource).Activate())
	require.IsType(t, &CopyMaterializer{}, r.Resolve(KeyMaterializer).Activate())
	require.IsType(t, &MemoryPersister{}, r.Resolve(KeyPersister).Activate())

	listeners := r.ResolveAll(KeyStateListener)
	require.Len(t, listeners, 1)
	assert.IsType(t, &LogStateListener{}, listeners[0].Activate())
}

//
// -----------------------------------------------------------------------------
// Bind / BindFactory — single keys
// -----------------------------------------------------------------------------

// TestBind_LastWriteWins verifies re-binding a single key silently replaces
// the previous binding, defaults included.
func TestBind_LastWriteWins(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	first := NewMemoryModelSource(&Model{Name: "a"})
	second := NewMemoryModelSource(&Model{Name: "b"})

	r.Bind(KeyModelSource, first)
	r.Bind(KeyModelSource, second)

	got := r.Resolve(KeyModelSource).Activate()
	assert.Same(t, second, got)
}

// TestBind_InstanceFormReturnsSameValue verifies instance-form bindings
// activate to the identical value every time.
func TestBind_InstanceFormReturnsSameValue(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	src := NewMemoryModelSource()
	r.Bind(KeyModelSource, src)

	b := r.Resolve(KeyModelSource)
	require.True(t, b.InstanceForm())
	assert.Same(t, src, b.Activate())
	assert.Same(t, src, b.Activate())
}

// TestBindFactory_ActivatesPerCall verifies factory-form bindings run the
// factory on each activation.
func TestBindFactory_ActivatesPerCall(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	calls := 0
	r.BindFactory(KeyMaterializer, func() any {
		calls++
		return NewCopyMaterializer()
	})

	b := r.Resolve(KeyMaterializer)
	require.False(t, b.InstanceForm())
	first := b.Activate()
	second := b.Activate()

	assert.Equal(t, 2, calls)
	assert.NotSame(t, first, second)
}

//
// -----------------------------------------------------------------------------
// Add / AddFactory — multi keys
// -----------------------------------------------------------------------------

// TestAdd_AppendsAfterDefault verifies multi registrations never discard
// earlier entries.
func TestAdd_AppendsAfterDefault(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	custom := &recordingListener{}
	r.Add(KeyStateListener, custom)

	entries := r.ResolveAll(KeyStateListener)
	require.Len(t, entries, 2)
	assert.IsType(t, &LogStateListener{}, entries[0].Activate())
	assert.Same(t, custom, entries[1].Activate())
}

// TestAdd_DuplicatesRetained verifies registering the same instance twice
// yields two entries.
func TestAdd_DuplicatesRetained(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	l := &recordingListener{}
	r.Add(KeyStateListener, l)
	r.Add(KeyStateListener, l)

	assert.Len(t, r.ResolveAll(KeyStateListener), 3) // default + two registrations
}

//
// -----------------------------------------------------------------------------
// Misuse
// -----------------------------------------------------------------------------

// TestRegistry_UnknownKeyPanics verifies operations on keys outside the
// well-known space fail fast.
func TestRegistry_UnknownKeyPanics(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	assert.Panics(t, func() { r.Bind(Key("nope"), struct{}{}) })
	assert.Panics(t, func() { r.Resolve(Key("nope")) })
	assert.Panics(t, func() { r.Add(Key("nope"), struct{}{}) })
}

// TestRegistry_WrongStylePanics verifies Bind on a multi key and Add on a
// single key both panic.
func TestRegistry_WrongStylePanics(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	assert.Panics(t, func() { r.Bind(KeyStateListener, &recordingListener{}) })
	assert.Panics(t, func() { r.Add(KeyModelSource, NewMemoryModelSource()) })
	assert.Panics(t, func() { r.ResolveAll(KeyModelSource) })
}

// TestRegistry_NilFactoryPanics verifies factory-form registration rejects
// nil constructors.
func TestRegistry_NilFactoryPanics(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	assert.Panics(t, func() { r.BindFactory(KeyModelSource, nil) })
	assert.Panics(t, func() { r.AddFactory(KeyStateListener, nil) })
}
