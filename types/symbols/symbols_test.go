package symbols

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolAccessors(t *testing.T) {
	sym := MustIntern("aten::my_custom_op")
	assert.Equal(t, "aten::my_custom_op", sym.Qual())
	assert.Equal(t, "my_custom_op", sym.Name())
	assert.Equal(t, NSAten, sym.Ns())
	assert.Equal(t, "aten::my_custom_op", sym.String())

	assert.Equal(t, "aten::add", AtenAdd.Qual())
	assert.Equal(t, "add", AtenAdd.Name())
	assert.Equal(t, NSAten, AtenAdd.Ns())
}

func TestSymbolStringNeverPanics(t *testing.T) {
	bogus := Symbol(1 << 30)
	assert.Equal(t, "symbol(#1073741824)", bogus.String())

	// The panicking accessors throw on the same handle.
	e := exceptions.Try(func() { _ = bogus.Qual() })
	require.NotNil(t, e)
}

func TestNamespaceConstructors(t *testing.T) {
	assert.Equal(t, AtenAdd, Aten("add"))
	assert.Equal(t, PrimConstant, Prim("Constant"))
	assert.Equal(t, AttrValue, Attr("value"))
	assert.Equal(t, OnnxConv, Onnx("Conv"))
	assert.Equal(t, CudaSynchronize, Cuda("synchronize"))

	sym := User("fancy_op")
	assert.Equal(t, "user::fancy_op", sym.Qual())
	assert.Equal(t, sym, User("fancy_op"))

	e := exceptions.Try(func() { Aten("not valid") })
	require.NotNil(t, e)
}

func TestNamespacePredicates(t *testing.T) {
	assert.True(t, AtenAdd.IsAten())
	assert.False(t, AtenAdd.IsPrim())
	assert.True(t, PrimIf.IsPrim())
	assert.True(t, AttrDim.IsAttr())
	assert.True(t, OnnxRelu.IsOnnx())
	assert.True(t, CudaSetDevice.IsCuda())
	assert.True(t, Dimname("batch").IsDimname())
	assert.True(t, User("x").IsUser())
	assert.True(t, Scope("block0").InNamespace(NSScope))

	// Never panics, also for fabricated handles.
	assert.False(t, Symbol(1<<30).IsAten())
}

func TestIsValidName(t *testing.T) {
	for _, valid := range []string{"a", "add", "my_op", "Conv2d", "_x", "x9"} {
		assert.True(t, IsValidName(valid), "%q", valid)
	}
	for _, invalid := range []string{"", " ", "a b", "a-b", "a.b", "a::b", "ünïcode"} {
		assert.False(t, IsValidName(invalid), "%q", invalid)
	}
}

func TestDefaultIsSingleton(t *testing.T) {
	require.Same(t, Default(), Default())
	sym, err := Intern("user::seen_by_everyone")
	require.NoError(t, err)
	require.Equal(t, sym, Default().MustIntern("user::seen_by_everyone"))
}
