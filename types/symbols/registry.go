package symbols

import (
	"sync"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// symbolInfo is the registry record behind one Symbol.
type symbolInfo struct {
	ns   Symbol // Namespace symbol; NSNamespaces for bare names.
	qual string // Fully qualified name, e.g. "aten::add".
	name string // Unqualified part, e.g. "add".
}

// Registry maps qualified names to Symbols and back.
//
// The registry is append-only: entries are never removed or mutated, so every
// Symbol returned by Intern stays valid for the registry's lifetime. Symbol
// values are assigned sequentially; the Symbol is literally the index into
// the registry's table.
//
// All methods are safe for concurrent use. A single lock guards both the
// table and the reverse map, and no I/O happens inside the critical section,
// so lock hold times are short and bounded. Once Intern returns a Symbol to
// one goroutine, it is immediately resolvable from any other.
type Registry struct {
	mu     sync.RWMutex
	infos  []symbolInfo
	byQual map[string]Symbol
}

// New creates a Registry with all well-known symbols (see gen_builtins.go)
// pre-registered in deterministic order, so that their Symbol values match
// the generated constants on every run.
func New() *Registry {
	r := &Registry{
		infos:  make([]symbolInfo, 0, 2*int(numBuiltins)),
		byQual: make(map[string]Symbol, 2*int(numBuiltins)),
	}
	for _, qualName := range builtinQualNames {
		if _, err := r.Intern(qualName); err != nil {
			exceptions.Panicf("symbols: invalid builtin name %q: %+v", qualName, err)
		}
	}
	if len(r.infos) != int(numBuiltins) {
		// A qualified builtin listed before its namespace would intern the
		// namespace implicitly and shift every constant after it.
		exceptions.Panicf("symbols: builtin registration created %d symbols, want %d -- "+
			"gen_builtins.go is out of sync, re-run cmd/symbols_generator", len(r.infos), numBuiltins)
	}
	klog.V(1).Infof("symbols: pre-registered %d builtin symbols", len(r.infos))
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide Registry, creating it (and its builtin
// symbols) on first use. It lives until process exit; there is no teardown,
// matching the append-only, never-freed nature of interned names.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// Intern returns the Symbol for qualName, creating one if needed.
//
// Interning is idempotent: the same string always yields the same Symbol, and
// at most one entry is ever created per distinct string, also under
// concurrent calls.
//
// qualName is either "<namespace>::<name>" or a bare "<name>"; components are
// non-empty runs of ASCII letters, digits and underscores. Bare names land in
// the root bucket: their namespace is NSNamespaces. When a qualified name is
// interned, its namespace part is interned as a bare symbol too, so
// Namespace(Intern("ns::name")) == Intern("ns").
//
// Malformed names fail with ErrInvalidSymbolName before any mutation.
func (r *Registry) Intern(qualName string) (Symbol, error) {
	// Fast path: already interned.
	r.mu.RLock()
	if sym, found := r.byQual[qualName]; found {
		r.mu.RUnlock()
		return sym, nil
	}
	r.mu.RUnlock()

	nsName, name, err := splitQualName(qualName)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another goroutine may have interned qualName between the two locks;
	// internLocked re-checks.
	return r.internLocked(qualName, nsName, name), nil
}

// internLocked appends qualName if missing and returns its Symbol. nsName and
// name are the already validated components of qualName; nsName is empty for
// bare names. The caller must hold r.mu for writing.
func (r *Registry) internLocked(qualName, nsName, name string) Symbol {
	if sym, found := r.byQual[qualName]; found {
		return sym
	}
	ns := NSNamespaces
	if nsName != "" {
		var found bool
		ns, found = r.byQual[nsName]
		if !found {
			ns = r.internLocked(nsName, "", nsName)
		}
	}
	sym := Symbol(len(r.infos))
	r.infos = append(r.infos, symbolInfo{ns: ns, qual: qualName, name: name})
	r.byQual[qualName] = sym
	return sym
}

// MustIntern is like Intern but panics on a malformed name.
func (r *Registry) MustIntern(qualName string) Symbol {
	sym, err := r.Intern(qualName)
	if err != nil {
		exceptions.Panicf("symbols: %+v", err)
	}
	return sym
}

// Strings resolves sym to its qualified and unqualified names, in O(1).
//
// It fails with ErrUnknownSymbol for handles outside the registry's domain,
// which indicates a fabricated or foreign Symbol.
func (r *Registry) Strings(sym Symbol) (qualName, name string, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if int(sym) >= len(r.infos) {
		return "", "", errors.Wrapf(ErrUnknownSymbol,
			"symbol #%d (registry holds %d symbols)", uint32(sym), len(r.infos))
	}
	info := &r.infos[sym]
	return info.qual, info.name, nil
}

// Namespace returns the namespace Symbol recorded for sym. Bare symbols
// report NSNamespaces, and Namespace(NSNamespaces) is NSNamespaces itself --
// a documented fixed point, not a cycle.
//
// It fails with ErrUnknownSymbol for handles outside the registry's domain.
func (r *Registry) Namespace(sym Symbol) (Symbol, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if int(sym) >= len(r.infos) {
		return 0, errors.Wrapf(ErrUnknownSymbol,
			"symbol #%d (registry holds %d symbols)", uint32(sym), len(r.infos))
	}
	return r.infos[sym].ns, nil
}

// Len returns the number of symbols interned so far. The next Symbol created
// by Intern will have exactly this value.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.infos)
}

// Entry is one row of a Registry Snapshot.
type Entry struct {
	Sym       Symbol
	Namespace Symbol
	Qual      string
	Name      string
}

// Snapshot copies the registry contents in Symbol order. It is meant for
// inspection tools; the live registry may keep growing after it returns.
func (r *Registry) Snapshot() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]Entry, len(r.infos))
	for i, info := range r.infos {
		entries[i] = Entry{
			Sym:       Symbol(i),
			Namespace: info.ns,
			Qual:      info.qual,
			Name:      info.name,
		}
	}
	return entries
}
