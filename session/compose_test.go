package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Fallback
// -----------------------------------------------------------------------------

// TestFallback_PrimaryWins verifies the fallback is never consulted when
// the primary handles the input.
func TestFallback_PrimaryWins(t *testing.T) {
	t.Parallel()

	fallbackCalls := 0
	composed := Fallback(
		func(k string) (int, bool) { return 1, k == "a" },
		func(k string) (int, bool) { fallbackCalls++; return 2, true },
	)

	v, ok := composed("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, fallbackCalls)
}

// TestFallback_DeclinePropagates verifies that when both decline, the
// composed lookup declines too — it never invents a result.
func TestFallback_DeclinePropagates(t *testing.T) {
	t.Parallel()

	composed := Fallback(
		func(k string) (int, bool) { return 0, false },
		func(k string) (int, bool) { return 0, false },
	)

	_, ok := composed("anything")
	assert.False(t, ok)
}

//
// -----------------------------------------------------------------------------
// ComposeIdentityFactories
// -----------------------------------------------------------------------------

// TestComposeIdentityFactories_PerFieldDispatch verifies the documented
// override pattern: primary handles "user.id" and declines "order.id";
// the composed factory serves both, with the right invocation counts.
func TestComposeIdentityFactories_PerFieldDispatch(t *testing.T) {
	t.Parallel()

	primary := newFieldIdentityFactory(map[string]IdentityGenerator{
		"user.id": staticGenerator{value: 42},
	})
	fallback := newFieldIdentityFactory(map[string]IdentityGenerator{
		"order.id": staticGenerator{value: 7},
	})
	composed := ComposeIdentityFactories(primary, fallback)

	gen, ok := composed.GeneratorFor("user.id")
	require.True(t, ok)
	assert.Equal(t, int64(42), gen.Next())
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, fallback.calls, "fallback must not run when primary handles the field")

	gen, ok = composed.GeneratorFor("order.id")
	require.True(t, ok)
	assert.Equal(t, int64(7), gen.Next())
	assert.Equal(t, 2, primary.calls, "primary is asked first and declines")
	assert.Equal(t, 1, fallback.calls)
}

// TestComposeIdentityFactories_ChainsAssociatively verifies a composed
// factory can itself be wrapped again.
func TestComposeIdentityFactories_ChainsAssociatively(t *testing.T) {
	t.Parallel()

	a := newFieldIdentityFactory(map[string]IdentityGenerator{"a": staticGenerator{value: 1}})
	b := newFieldIdentityFactory(map[string]IdentityGenerator{"b": staticGenerator{value: 2}})
	c := newFieldIdentityFactory(map[string]IdentityGenerator{"c": staticGenerator{value: 3}})

	left := ComposeIdentityFactories(ComposeIdentityFactories(a, b), c)
	right := ComposeIdentityFactories(a, ComposeIdentityFactories(b, c))

	for _, composed := range []IdentityFactory{left, right} {
		for field, want := range map[string]int64{"a": 1, "b": 2, "c": 3} {
			gen, ok := composed.GeneratorFor(field)
			require.True(t, ok, "field %s", field)
			assert.Equal(t, want, gen.Next(), "field %s", field)
		}
		_, ok := composed.GeneratorFor("d")
		assert.False(t, ok)
	}
}

// TestComposeIdentityFactories_OverDefaultNeverDeclines verifies wrapping
// a custom factory over the sequence default keeps every field handled.
func TestComposeIdentityFactories_OverDefaultNeverDeclines(t *testing.T) {
	t.Parallel()

	custom := newFieldIdentityFactory(map[string]IdentityGenerator{
		"user.id": staticGenerator{value: 1000},
	})
	composed := ComposeIdentityFactories(custom, NewSequenceIdentityFactory(1))

	gen, ok := composed.GeneratorFor("user.id")
	require.True(t, ok)
	assert.Equal(t, int64(1000), gen.Next())

	gen, ok = composed.GeneratorFor("anything.else")
	require.True(t, ok)
	assert.Equal(t, int64(1), gen.Next())
}

//
// -----------------------------------------------------------------------------
// ComposeModelSources
// -----------------------------------------------------------------------------

// TestComposeModelSources_LookupAndNames verifies per-name fallthrough and
// the deduplicated name union.
func TestComposeModelSources_LookupAndNames(t *testing.T) {
	t.Parallel()

	primary := NewMemoryModelSource(
		&Model{Name: "user", Fields: []string{"id"}},
		&Model{Name: "order"},
	)
	fallback := NewMemoryModelSource(
		&Model{Name: "order", Fields: []string{"legacy"}},
		&Model{Name: "invoice"},
	)
	composed := ComposeModelSources(primary, fallback)

	m, ok := composed.DescriptionFor("user")
	require.True(t, ok)
	assert.Equal(t, []string{"id"}, m.Fields)

	// primary's "order" shadows fallback's
	m, ok = composed.DescriptionFor("order")
	require.True(t, ok)
	assert.Empty(t, m.Fields)

	m, ok = composed.DescriptionFor("invoice")
	require.True(t, ok)
	assert.Equal(t, "invoice", m.Name)

	_, ok = composed.DescriptionFor("ghost")
	assert.False(t, ok)

	assert.ElementsMatch(t, []string{"user", "order", "invoice"}, composed.Names())
}
