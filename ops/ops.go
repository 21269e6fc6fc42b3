// Package ops holds the static metadata table for well-known IR operators.
//
// IR nodes identify their operator by an interned Symbol (see
// types/symbols); this package maps those Symbols to what dispatch and
// fusion passes need to know statically -- category, arity, commutativity --
// without owning any kernel implementation.
//
// Definitions for the builtin operators are registered during package
// initialization; extensions may Register their own operators, typically from
// an init function of their package.
package ops

import (
	"cmp"
	"slices"
	"sync"

	"github.com/gomlx/exceptions"

	"github.com/tensorir/tensorir/types/symbols"
)

// Category groups operators by their general form. It drives generic
// handling (e.g. whether a fusion pass may reorder inputs) and is not a
// dispatch key.
type Category int

//go:generate go tool enumer -type=Category -trimprefix=Category -output=gen_category_enumer.go ops.go

const (
	CategoryInvalid Category = iota
	// CategoryConstant are leaf operators with no value inputs.
	CategoryConstant
	CategoryUnary
	CategoryBinary
	// CategoryReduction collapses one or more dimensions of its input.
	CategoryReduction
	// CategoryShape rearranges or reindexes data without computing on it.
	CategoryShape
	// CategoryControl are structural IR operators: control flow, grouping.
	CategoryControl
)

// Variadic as an OpDef.Arity means the operator takes any number of value
// inputs.
const Variadic = -1

// OpDef is the metadata registered for one operator Symbol.
type OpDef struct {
	Sym      symbols.Symbol
	Category Category

	// Arity is the number of value inputs, or Variadic. Attribute inputs
	// (attr::* keys on the node) don't count.
	Arity int

	// Commutative marks binary operators whose inputs may be swapped without
	// changing the result.
	Commutative bool
}

var (
	mu   sync.RWMutex
	defs = make(map[symbols.Symbol]OpDef)
)

// Register adds the definition of one operator. Meant to be called during
// package initialization; it panics on a duplicate Symbol or an invalid
// definition.
func Register(def OpDef) {
	if def.Category == CategoryInvalid {
		exceptions.Panicf("ops: registering %s with CategoryInvalid", def.Sym)
	}
	if def.Commutative && def.Category != CategoryBinary {
		exceptions.Panicf("ops: %s marked commutative but is not a binary operator", def.Sym)
	}
	mu.Lock()
	defer mu.Unlock()
	if _, found := defs[def.Sym]; found {
		exceptions.Panicf("ops: operator %s registered twice", def.Sym)
	}
	defs[def.Sym] = def
}

// Get returns the definition registered for sym, if any.
func Get(sym symbols.Symbol) (OpDef, bool) {
	mu.RLock()
	defer mu.RUnlock()
	def, found := defs[sym]
	return def, found
}

// MustGet is like Get but panics for an unregistered operator.
func MustGet(sym symbols.Symbol) OpDef {
	def, found := Get(sym)
	if !found {
		exceptions.Panicf("ops: no definition registered for operator %s", sym)
	}
	return def
}

// All returns every registered definition, sorted by Symbol so the order is
// deterministic.
func All() []OpDef {
	mu.RLock()
	defer mu.RUnlock()
	all := make([]OpDef, 0, len(defs))
	for _, def := range defs {
		all = append(all, def)
	}
	slices.SortFunc(all, func(a, b OpDef) int { return cmp.Compare(a.Sym, b.Sym) })
	return all
}

func init() {
	for _, sym := range []symbols.Symbol{symbols.PrimConstant, symbols.PrimParam, symbols.PrimUndefined} {
		Register(OpDef{Sym: sym, Category: CategoryConstant, Arity: 0})
	}
	for _, sym := range []symbols.Symbol{
		symbols.PrimReturn, symbols.PrimIf, symbols.PrimLoop, symbols.PrimPrint,
		symbols.PrimTupleConstruct, symbols.PrimTupleUnpack,
		symbols.PrimListConstruct, symbols.PrimListUnpack,
		symbols.PrimFusionGroup, symbols.PrimDifferentiableGraph,
	} {
		Register(OpDef{Sym: sym, Category: CategoryControl, Arity: Variadic})
	}
	for _, sym := range []symbols.Symbol{symbols.PrimNumToTensor, symbols.PrimTensorToNum} {
		Register(OpDef{Sym: sym, Category: CategoryUnary, Arity: 1})
	}

	for _, sym := range []symbols.Symbol{
		symbols.AtenNeg, symbols.AtenExp, symbols.AtenLog, symbols.AtenSqrt,
		symbols.AtenRsqrt, symbols.AtenTanh, symbols.AtenSigmoid,
		symbols.AtenRelu, symbols.AtenSoftmax, symbols.AtenContiguous,
		symbols.AtenClone, symbols.AtenDetach,
	} {
		Register(OpDef{Sym: sym, Category: CategoryUnary, Arity: 1})
	}

	for _, sym := range []symbols.Symbol{symbols.AtenAdd, symbols.AtenMul, symbols.AtenEq, symbols.AtenNe} {
		Register(OpDef{Sym: sym, Category: CategoryBinary, Arity: 2, Commutative: true})
	}
	for _, sym := range []symbols.Symbol{
		symbols.AtenSub, symbols.AtenDiv, symbols.AtenPow,
		symbols.AtenMatmul, symbols.AtenMm, symbols.AtenBmm,
		symbols.AtenLt, symbols.AtenLe, symbols.AtenGt, symbols.AtenGe,
	} {
		Register(OpDef{Sym: sym, Category: CategoryBinary, Arity: 2})
	}

	for _, sym := range []symbols.Symbol{
		symbols.AtenSum, symbols.AtenMean, symbols.AtenProd,
		symbols.AtenMax, symbols.AtenMin, symbols.AtenArgmax, symbols.AtenArgmin,
	} {
		Register(OpDef{Sym: sym, Category: CategoryReduction, Arity: 1})
	}

	for _, sym := range []symbols.Symbol{
		symbols.AtenReshape, symbols.AtenView, symbols.AtenPermute,
		symbols.AtenTranspose, symbols.AtenSqueeze, symbols.AtenUnsqueeze,
		symbols.AtenExpand, symbols.AtenSlice, symbols.AtenSelect,
	} {
		Register(OpDef{Sym: sym, Category: CategoryShape, Arity: 1})
	}
	Register(OpDef{Sym: symbols.AtenGather, Category: CategoryShape, Arity: 2})
	Register(OpDef{Sym: symbols.AtenScatter, Category: CategoryShape, Arity: 3})
	Register(OpDef{Sym: symbols.AtenCat, Category: CategoryShape, Arity: Variadic})
	Register(OpDef{Sym: symbols.AtenStack, Category: CategoryShape, Arity: Variadic})
	Register(OpDef{Sym: symbols.AtenSplit, Category: CategoryShape, Arity: 1})
}
