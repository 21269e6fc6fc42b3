// Package symbols implements the interned symbol table that names IR
// constructs: operator names, attribute names and their namespaces.
//
// A Symbol is a compact integer handle for a qualified name like "aten::add".
// Interning the same string twice always yields the same Symbol, so the IR
// layers compare and hash names as plain integers instead of strings.
//
// A fixed set of well-known namespaces and operator names (see
// gen_builtins.go) is registered in deterministic order whenever a Registry
// is created, which makes the builtin Symbol values stable across processes
// of the same build -- external serializers rely on that stability.
//
// Most callers use the process-wide Default registry through the package
// level Intern and the Symbol methods; separate Registry instances are mostly
// useful in tests.
package symbols

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

//go:generate go run ../../cmd/symbols_generator

// Symbol is the interned handle for a qualified name.
//
// Two Symbols compare equal iff they were produced by interning the identical
// qualified name. Symbols are plain values with no ownership semantics: copy
// them freely, they stay valid for the lifetime of the process.
type Symbol uint32

// Separator splits a qualified name into its namespace and unqualified parts,
// as in "aten::add". Only a single level of namespacing is supported: a name
// containing more than one separator is invalid.
const Separator = "::"

var (
	// ErrInvalidSymbolName is returned by Registry.Intern for malformed
	// qualified names: empty components, more than one Separator, or
	// characters outside ASCII letters, digits and underscore.
	ErrInvalidSymbolName = errors.New("invalid symbol name")

	// ErrUnknownSymbol is returned when a Symbol outside the registry's
	// domain is resolved. All Symbols obtained from Intern are valid forever,
	// so hitting this means a fabricated or foreign handle -- a caller bug.
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// Intern returns the Symbol for qualName in the Default registry, creating it
// if needed. See Registry.Intern for the accepted name forms.
func Intern(qualName string) (Symbol, error) {
	return Default().Intern(qualName)
}

// MustIntern is like Intern but panics on a malformed name.
func MustIntern(qualName string) Symbol {
	return Default().MustIntern(qualName)
}

// Qual returns the fully qualified name of s, e.g. "aten::add", resolved
// against the Default registry.
//
// It panics on a Symbol that was never interned; use Registry.Strings to
// check explicitly instead.
func (s Symbol) Qual() string {
	qualName, _, err := Default().Strings(s)
	if err != nil {
		exceptions.Panicf("symbols: %+v", err)
	}
	return qualName
}

// Name returns the unqualified part of s, e.g. "add" for "aten::add". For
// bare symbols it is the same as Qual. Panics on a Symbol that was never
// interned.
func (s Symbol) Name() string {
	_, name, err := Default().Strings(s)
	if err != nil {
		exceptions.Panicf("symbols: %+v", err)
	}
	return name
}

// Ns returns the namespace Symbol of s. Bare symbols (and NSNamespaces
// itself) report NSNamespaces. Panics on a Symbol that was never interned.
func (s Symbol) Ns() Symbol {
	ns, err := Default().Namespace(s)
	if err != nil {
		exceptions.Panicf("symbols: %+v", err)
	}
	return ns
}

// String implements fmt.Stringer. Unlike Qual it never panics: a handle
// outside the Default registry formats as "symbol(#<value>)".
func (s Symbol) String() string {
	qualName, _, err := Default().Strings(s)
	if err != nil {
		return fmt.Sprintf("symbol(#%d)", uint32(s))
	}
	return qualName
}

// InNamespace reports whether s belongs to the given namespace Symbol. It
// returns false (and never panics) for handles that were never interned.
func (s Symbol) InNamespace(ns Symbol) bool {
	got, err := Default().Namespace(s)
	return err == nil && got == ns
}

// IsAten reports whether s is in the "aten" (tensor operator) namespace.
func (s Symbol) IsAten() bool { return s.InNamespace(NSAten) }

// IsPrim reports whether s is in the "prim" (IR primitive) namespace.
func (s Symbol) IsPrim() bool { return s.InNamespace(NSPrim) }

// IsAttr reports whether s is in the "attr" (node attribute) namespace.
func (s Symbol) IsAttr() bool { return s.InNamespace(NSAttr) }

// IsOnnx reports whether s is in the "onnx" namespace.
func (s Symbol) IsOnnx() bool { return s.InNamespace(NSOnnx) }

// IsCuda reports whether s is in the "cuda" namespace.
func (s Symbol) IsCuda() bool { return s.InNamespace(NSCuda) }

// IsUser reports whether s is in the "user" namespace.
func (s Symbol) IsUser() bool { return s.InNamespace(NSUser) }

// IsDimname reports whether s is in the "dimname" namespace.
func (s Symbol) IsDimname() bool { return s.InNamespace(NSDimname) }

// Aten interns "aten::<name>" in the Default registry. It panics if name is
// not a valid identifier.
func Aten(name string) Symbol { return mustQualified("aten", name) }

// Prim interns "prim::<name>" in the Default registry. It panics if name is
// not a valid identifier.
func Prim(name string) Symbol { return mustQualified("prim", name) }

// Attr interns "attr::<name>" in the Default registry. It panics if name is
// not a valid identifier.
func Attr(name string) Symbol { return mustQualified("attr", name) }

// Onnx interns "onnx::<name>" in the Default registry. It panics if name is
// not a valid identifier.
func Onnx(name string) Symbol { return mustQualified("onnx", name) }

// Cuda interns "cuda::<name>" in the Default registry. It panics if name is
// not a valid identifier.
func Cuda(name string) Symbol { return mustQualified("cuda", name) }

// User interns "user::<name>" in the Default registry. It panics if name is
// not a valid identifier.
func User(name string) Symbol { return mustQualified("user", name) }

// Dimname interns "dimname::<name>" in the Default registry. It panics if
// name is not a valid identifier.
func Dimname(name string) Symbol { return mustQualified("dimname", name) }

// Scope interns "scope::<name>" in the Default registry. It panics if name is
// not a valid identifier.
func Scope(name string) Symbol { return mustQualified("scope", name) }

func mustQualified(ns, name string) Symbol {
	return MustIntern(ns + Separator + name)
}

// IsValidName reports whether s can be used as one component of a qualified
// name: a non-empty run of ASCII letters, digits and underscores.
func IsValidName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' ||
			(c >= '0' && c <= '9') ||
			(c >= 'a' && c <= 'z') ||
			(c >= 'A' && c <= 'Z') {
			continue
		}
		return false
	}
	return true
}

// splitQualName validates qualName and splits it into its namespace and
// unqualified parts. The namespace part is empty for bare names.
func splitQualName(qualName string) (nsName, name string, err error) {
	idx := strings.Index(qualName, Separator)
	if idx < 0 {
		if !IsValidName(qualName) {
			return "", "", errors.Wrapf(ErrInvalidSymbolName,
				"%q is not a valid identifier", qualName)
		}
		return "", qualName, nil
	}
	nsName, name = qualName[:idx], qualName[idx+len(Separator):]
	if strings.Contains(name, Separator) {
		return "", "", errors.Wrapf(ErrInvalidSymbolName,
			"%q contains more than one %q: nested namespaces are not supported",
			qualName, Separator)
	}
	if !IsValidName(nsName) || !IsValidName(name) {
		return "", "", errors.Wrapf(ErrInvalidSymbolName,
			"%q must be of the form <namespace>%s<name>, with non-empty identifier components",
			qualName, Separator)
	}
	return nsName, name, nil
}
