package symbols

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternIdempotence(t *testing.T) {
	r := New()
	s1, err := r.Intern("aten::gelu")
	require.NoError(t, err)
	for range 10 {
		s2, err := r.Intern("aten::gelu")
		require.NoError(t, err)
		require.Equal(t, s1, s2)
	}
}

func TestInternRoundTrip(t *testing.T) {
	r := New()
	for _, test := range []struct {
		qual, name string
	}{
		{"aten::add", "add"},
		{"attr::value", "value"},
		{"user::my_op_2", "my_op_2"},
		{"standalone", "standalone"},
	} {
		sym, err := r.Intern(test.qual)
		require.NoError(t, err)
		gotQual, gotName, err := r.Strings(sym)
		require.NoError(t, err)
		assert.Equal(t, test.qual, gotQual)
		assert.Equal(t, test.name, gotName)
	}
}

func TestInternUniqueness(t *testing.T) {
	r := New()
	seen := make(map[Symbol]string)
	for _, qual := range []string{
		"user::a", "user::b", "user::ab", "other::a", "a", "b",
	} {
		sym, err := r.Intern(qual)
		require.NoError(t, err)
		if prev, found := seen[sym]; found {
			t.Fatalf("Intern(%q) and Intern(%q) both returned %d", prev, qual, sym)
		}
		seen[sym] = qual
	}
}

func TestNamespaceConsistency(t *testing.T) {
	r := New()
	sym, err := r.Intern("mylib::normalize")
	require.NoError(t, err)
	nsSym, err := r.Intern("mylib")
	require.NoError(t, err)
	got, err := r.Namespace(sym)
	require.NoError(t, err)
	require.Equal(t, nsSym, got)

	// The namespace of a bare symbol is the root bucket.
	got, err = r.Namespace(nsSym)
	require.NoError(t, err)
	require.Equal(t, NSNamespaces, got)

	// And the root's namespace is itself: a fixed point, not a cycle.
	got, err = r.Namespace(NSNamespaces)
	require.NoError(t, err)
	require.Equal(t, NSNamespaces, got)
}

func TestInternMalformed(t *testing.T) {
	r := New()
	for _, qual := range []string{
		"", "::", "a::", "::b", "a::b::c", "aten::add::grad",
		"white space", "aten ::add", "a-b", "ns::na.me",
	} {
		before := r.Len()
		_, err := r.Intern(qual)
		require.ErrorIs(t, err, ErrInvalidSymbolName, "Intern(%q)", qual)
		require.Equal(t, before, r.Len(), "Intern(%q) must not mutate the registry", qual)
	}
}

func TestUnknownSymbol(t *testing.T) {
	r := New()
	bogus := Symbol(r.Len() + 1000)
	_, _, err := r.Strings(bogus)
	require.ErrorIs(t, err, ErrUnknownSymbol)
	_, err = r.Namespace(bogus)
	require.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestBuiltinStability(t *testing.T) {
	require.Equal(t, int(numBuiltins), len(builtinQualNames),
		"gen_builtins.go constants and name table are out of sync")

	// Two independently created registries assign identical values: this is
	// what makes builtin Symbols stable across process runs of the same build.
	r1, r2 := New(), New()
	require.Equal(t, r1.Snapshot(), r2.Snapshot())

	// Every builtin constant resolves to its own table entry.
	for i, qual := range builtinQualNames {
		sym, err := r1.Intern(qual)
		require.NoError(t, err)
		require.Equal(t, Symbol(i), sym, "builtin %q", qual)
	}

	// Spot-check a few well-known values.
	require.Equal(t, AtenAdd, r1.MustIntern("aten::add"))
	require.Equal(t, PrimConstant, r1.MustIntern("prim::Constant"))
	require.Equal(t, AttrValue, r1.MustIntern("attr::value"))
	require.Equal(t, NSAten, r1.MustIntern("aten"))
}

func TestExampleScenario(t *testing.T) {
	r := New()
	s1, err := r.Intern("attr::value")
	require.NoError(t, err)

	qual, name, err := r.Strings(s1)
	require.NoError(t, err)
	require.Equal(t, "attr::value", qual)
	require.Equal(t, "value", name)

	ns, err := r.Namespace(s1)
	require.NoError(t, err)
	attrNS, err := r.Intern("attr")
	require.NoError(t, err)
	require.Equal(t, attrNS, ns)

	again, err := r.Intern("attr::value")
	require.NoError(t, err)
	require.Equal(t, s1, again)
}

func TestConcurrentIntern(t *testing.T) {
	const numGoroutines = 32
	r := New()
	before := r.Len()

	var wg sync.WaitGroup
	results := make([]Symbol, numGoroutines)
	start := make(chan struct{})
	for g := range numGoroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			// Same hot name from every goroutine, plus some per-goroutine
			// churn to exercise appends racing with lookups.
			results[g] = r.MustIntern("aten::fused_mul_add")
			for i := range 100 {
				sym := r.MustIntern(fmt.Sprintf("user::op_%d", i))
				qual, _, err := r.Strings(sym)
				if err != nil || qual != fmt.Sprintf("user::op_%d", i) {
					t.Errorf("round trip failed for %q: %v", qual, err)
					return
				}
			}
		}()
	}
	close(start)
	wg.Wait()

	for g := 1; g < numGoroutines; g++ {
		require.Equal(t, results[0], results[g])
	}
	// One entry for the hot name and 100 for user::op_*; the "user"
	// namespace is already a builtin.
	require.Equal(t, before+1+100, r.Len())
}

func TestSnapshot(t *testing.T) {
	r := New()
	sym := r.MustIntern("user::inspect_me")
	entries := r.Snapshot()
	require.Len(t, entries, r.Len())
	entry := entries[sym]
	require.Equal(t, sym, entry.Sym)
	require.Equal(t, "user::inspect_me", entry.Qual)
	require.Equal(t, "inspect_me", entry.Name)
	require.Equal(t, NSUser, entry.Namespace)
}
