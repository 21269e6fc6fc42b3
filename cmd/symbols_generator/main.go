// symbols_generator writes types/symbols/gen_builtins.go, the table of
// well-known symbols that every Registry pre-registers.
//
// The lists in this file are the source of truth. They are append-only:
// inserting a name in the middle (or reordering) changes the Symbol value of
// every builtin after it, which breaks any serialized symbol values produced
// by older builds.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"

	"github.com/janpfeifer/must"
)

var flagOutput = flag.String("output", "gen_builtins.go",
	"File to write, relative to the working directory -- `go generate` runs this from types/symbols.")

// builtinNamespaces registers the namespace symbols themselves. "namespaces"
// must come first: it is the root bucket (Symbol 0) every bare name, itself
// included, belongs to.
var builtinNamespaces = []string{
	"namespaces", "prim", "aten", "cuda", "onnx", "attr", "scope", "user", "dimname",
}

// builtinMembers registers the well-known qualified names, grouped per
// namespace. Groups must come after builtinNamespaces so no qualified name
// ever interns its namespace implicitly.
var builtinMembers = []struct {
	NS    string
	Names []string
}{
	{"prim", []string{
		"Constant", "Param", "Return", "If", "Loop", "Print",
		"TupleConstruct", "TupleUnpack", "ListConstruct", "ListUnpack",
		"NumToTensor", "TensorToNum", "FusionGroup", "DifferentiableGraph",
		"Undefined",
	}},
	{"aten", []string{
		"add", "sub", "mul", "div", "neg", "pow", "exp", "log", "sqrt",
		"rsqrt", "tanh", "sigmoid", "relu", "softmax", "matmul", "mm", "bmm",
		"conv2d", "batch_norm", "layer_norm", "dropout", "embedding",
		"linear", "cat", "stack", "split", "reshape", "view", "permute",
		"transpose", "squeeze", "unsqueeze", "expand", "slice", "select",
		"gather", "scatter", "where", "sum", "mean", "prod", "max", "min",
		"argmax", "argmin", "eq", "ne", "lt", "le", "gt", "ge", "size",
		"numel", "contiguous", "clone", "detach",
	}},
	{"attr", []string{
		"value", "name", "shape", "dim", "dims", "dtype", "device", "alpha",
		"beta", "other", "keepdim", "inplace", "out", "axis", "start", "end",
		"step",
	}},
	{"onnx", []string{
		"Add", "Sub", "Mul", "Div", "Conv", "BatchNormalization", "Relu",
		"MatMul", "Gemm", "Reshape", "Transpose", "Concat", "Gather",
		"Shape", "Softmax",
	}},
	{"cuda", []string{
		"set_device", "synchronize", "device_count",
	}},
}

type entry struct {
	Const string // Go constant name, e.g. "AtenAdd".
	Qual  string // Qualified name, e.g. "aten::add".
}

var fileTemplate = template.Must(template.New("gen_builtins").Parse(
	`// Code generated by cmd/symbols_generator. DO NOT EDIT.

package symbols

// Well-known symbols, pre-registered by every new Registry in the exact order
// below. Their Symbol values are therefore stable across processes of the
// same build, and can be used as compile-time constants by the IR layers.
const (
	// NSNamespaces is the root namespace bucket: it is the namespace of every
	// bare (unqualified) symbol, including of itself -- the self-reference is
	// a documented fixed point, not a cycle.
	NSNamespaces Symbol = iota
{{- range .Rest}}
	{{.Const}}
{{- end}}

	// numBuiltins must remain the last value of the block.
	numBuiltins
)

// builtinQualNames lists the qualified names of all well-known symbols in
// registration order: index i is the name interned as Symbol(i). Namespaces
// come first, so no qualified entry ever interns its namespace implicitly.
var builtinQualNames = []string{
{{- range .All}}
	{{printf "%q" .Qual}},
{{- end}}
}
`))

func main() {
	flag.Parse()
	all := buildEntries()

	var buf bytes.Buffer
	must.M(fileTemplate.Execute(&buf, struct {
		All, Rest []entry
	}{All: all, Rest: all[1:]}))
	src := must.M1(format.Source(buf.Bytes()))
	must.M(os.WriteFile(*flagOutput, src, 0644))
	fmt.Printf("symbols_generator: wrote %d builtin symbols to %s\n", len(all), *flagOutput)
}

func buildEntries() []entry {
	seenConst := make(map[string]string)
	seenQual := make(map[string]bool)
	var all []entry
	add := func(constName, qualName string) {
		if prev, found := seenConst[constName]; found {
			must.M(fmt.Errorf("builtins %q and %q map to the same constant %s", prev, qualName, constName))
		}
		if seenQual[qualName] {
			must.M(fmt.Errorf("builtin %q listed twice", qualName))
		}
		seenConst[constName] = qualName
		seenQual[qualName] = true
		all = append(all, entry{Const: constName, Qual: qualName})
	}

	for _, ns := range builtinNamespaces {
		add("NS"+camelCase(ns), ns)
	}
	for _, group := range builtinMembers {
		if !seenQual[group.NS] {
			must.M(fmt.Errorf("namespace %q has members but is not in builtinNamespaces", group.NS))
		}
		for _, name := range group.Names {
			add(camelCase(group.NS)+camelCase(name), group.NS+"::"+name)
		}
	}
	return all
}

// camelCase turns "batch_norm" into "BatchNorm"; names already in CamelCase
// pass through unchanged.
func camelCase(s string) string {
	parts := strings.Split(s, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "")
}
