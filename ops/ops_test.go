package ops

import (
	"slices"
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorir/tensorir/types/symbols"
)

func TestBuiltinDefs(t *testing.T) {
	add := MustGet(symbols.AtenAdd)
	assert.Equal(t, CategoryBinary, add.Category)
	assert.Equal(t, 2, add.Arity)
	assert.True(t, add.Commutative)

	sub := MustGet(symbols.AtenSub)
	assert.False(t, sub.Commutative)

	relu := MustGet(symbols.AtenRelu)
	assert.Equal(t, CategoryUnary, relu.Category)
	assert.Equal(t, 1, relu.Arity)

	sum := MustGet(symbols.AtenSum)
	assert.Equal(t, CategoryReduction, sum.Category)

	cat := MustGet(symbols.AtenCat)
	assert.Equal(t, CategoryShape, cat.Category)
	assert.Equal(t, Variadic, cat.Arity)

	constant := MustGet(symbols.PrimConstant)
	assert.Equal(t, CategoryConstant, constant.Category)
	assert.Equal(t, 0, constant.Arity)

	loop := MustGet(symbols.PrimLoop)
	assert.Equal(t, CategoryControl, loop.Category)
}

func TestGetUnregistered(t *testing.T) {
	_, found := Get(symbols.CudaSynchronize)
	assert.False(t, found)

	e := exceptions.Try(func() { MustGet(symbols.CudaSynchronize) })
	require.NotNil(t, e)
}

func TestRegisterValidation(t *testing.T) {
	e := exceptions.Try(func() {
		Register(OpDef{Sym: symbols.AtenAdd, Category: CategoryBinary, Arity: 2})
	})
	require.NotNil(t, e, "duplicate registration must panic")

	e = exceptions.Try(func() {
		Register(OpDef{Sym: symbols.User("no_category")})
	})
	require.NotNil(t, e, "CategoryInvalid must panic")

	e = exceptions.Try(func() {
		Register(OpDef{Sym: symbols.User("commutative_unary"), Category: CategoryUnary, Arity: 1, Commutative: true})
	})
	require.NotNil(t, e, "commutative non-binary must panic")
}

func TestRegisterExtension(t *testing.T) {
	sym := symbols.User("swizzle")
	Register(OpDef{Sym: sym, Category: CategoryUnary, Arity: 1})
	def := MustGet(sym)
	assert.Equal(t, CategoryUnary, def.Category)
}

func TestAllSorted(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	sorted := slices.IsSortedFunc(all, func(a, b OpDef) int { return int(a.Sym) - int(b.Sym) })
	assert.True(t, sorted)
	for _, def := range all {
		assert.True(t, def.Category.IsACategory())
		assert.NotEqual(t, CategoryInvalid, def.Category)
	}
}

func TestCategoryEnum(t *testing.T) {
	assert.Equal(t, "Binary", CategoryBinary.String())
	got, err := CategoryString("reduction")
	require.NoError(t, err)
	assert.Equal(t, CategoryReduction, got)
	_, err = CategoryString("bogus")
	require.Error(t, err)
}
