// Package dimnames lets tensor dimensions be referred to by name instead of
// by position.
//
// A Dimname either names a dimension -- backed by an interned Symbol in the
// "dimname" namespace -- or is the wildcard, which matches any name. Name
// comparisons are therefore integer comparisons, and the same name used by
// two tensors is guaranteed to be the same Symbol.
//
// The package also carries WrapDim, the dimension-index normalization helper
// used everywhere dimensions may be counted from the end ("dim=-1").
package dimnames

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"

	"github.com/tensorir/tensorir/types/symbols"
)

// Dimname identifies a tensor dimension by name.
//
// The zero value is the wildcard, which matches any name. Named Dimnames wrap
// a Symbol in the "dimname" namespace.
type Dimname struct {
	sym symbols.Symbol // 0 (NSNamespaces, never a dimname) means wildcard.
}

// Wildcard matches any dimension name.
var Wildcard = Dimname{}

// New returns the Dimname for name, interning "dimname::<name>" in the
// default symbol registry. name must be a non-empty identifier, otherwise it
// fails with symbols.ErrInvalidSymbolName.
func New(name string) (Dimname, error) {
	if !symbols.IsValidName(name) {
		return Dimname{}, errors.Wrapf(symbols.ErrInvalidSymbolName,
			"dimension name %q", name)
	}
	return Dimname{sym: symbols.Dimname(name)}, nil
}

// MustNew is like New but panics on an invalid name.
func MustNew(name string) Dimname {
	d, err := New(name)
	if err != nil {
		exceptions.Panicf("dimnames: %+v", err)
	}
	return d
}

// FromSymbol wraps an already interned Symbol as a Dimname. The Symbol must
// be in the "dimname" namespace.
func FromSymbol(sym symbols.Symbol) (Dimname, error) {
	if !sym.IsDimname() {
		return Dimname{}, errors.Errorf("symbol %s is not in the %q namespace", sym, "dimname")
	}
	return Dimname{sym: sym}, nil
}

// IsWildcard reports whether d is the wildcard.
func (d Dimname) IsWildcard() bool { return d.sym == 0 }

// Symbol returns the backing Symbol of a named Dimname, or 0 for the
// wildcard.
func (d Dimname) Symbol() symbols.Symbol { return d.sym }

// String returns the bare dimension name, or "*" for the wildcard.
func (d Dimname) String() string {
	if d.IsWildcard() {
		return "*"
	}
	return d.sym.Name()
}

// Matches reports whether d and other refer to the same dimension. The
// wildcard matches anything.
func (d Dimname) Matches(other Dimname) bool {
	return d.IsWildcard() || other.IsWildcard() || d.sym == other.sym
}

// Unify returns the most specific common name of a and b: a name unifies with
// itself and with the wildcard. Two distinct names don't unify.
func Unify(a, b Dimname) (Dimname, error) {
	switch {
	case a.IsWildcard():
		return b, nil
	case b.IsWildcard():
		return a, nil
	case a.sym == b.sym:
		return a, nil
	}
	return Dimname{}, errors.Errorf("cannot unify dimension names %s and %s", a, b)
}

// Find returns the position of the dimension named d in names. Looking up the
// wildcard is an error, as is a name that is absent or appears more than
// once.
func Find(names []Dimname, d Dimname) (int, error) {
	if d.IsWildcard() {
		return -1, errors.Errorf("cannot look up a dimension by the wildcard name")
	}
	pos := -1
	for i, n := range names {
		if n.sym != d.sym {
			continue
		}
		if pos >= 0 {
			return -1, errors.Errorf("dimension name %s appears more than once in %v", d, names)
		}
		pos = i
	}
	if pos < 0 {
		return -1, errors.Errorf("dimension name %s not found in %v", d, names)
	}
	return pos, nil
}

// WrapDim normalizes dim for a tensor of the given rank, counting negative
// dimensions from the end: WrapDim(-1, 4) == 3. Dimensions outside
// [-rank, rank-1] are an error. Rank 0 (scalar) tensors accept dims -1 and 0,
// both meaning the single implicit dimension.
func WrapDim(dim, rank int) (int, error) {
	if rank < 0 {
		return 0, errors.Errorf("rank must be non-negative, got %d", rank)
	}
	limit := rank
	if limit == 0 {
		limit = 1
	}
	if dim < -limit || dim >= limit {
		return 0, errors.Errorf("dimension %d out of range for rank %d (expected in [%d, %d])",
			dim, rank, -limit, limit-1)
	}
	if dim < 0 {
		dim += limit
	}
	return dim, nil
}

// UnifyFromRight unifies two dimension name lists aligned at their last
// entries, the alignment broadcasting uses. The result has the length of the
// longer list; missing entries on the shorter side unify as wildcards.
func UnifyFromRight(a, b []Dimname) ([]Dimname, error) {
	size := max(len(a), len(b))
	out := make([]Dimname, size)
	for i := 1; i <= size; i++ {
		var na, nb Dimname // wildcards when exhausted
		if i <= len(a) {
			na = a[len(a)-i]
		}
		if i <= len(b) {
			nb = b[len(b)-i]
		}
		unified, err := Unify(na, nb)
		if err != nil {
			return nil, errors.WithMessagef(err, "position %d from the right", i)
		}
		out[size-i] = unified
	}
	return out, nil
}
