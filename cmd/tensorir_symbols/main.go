// tensorir_symbols inspects the interned symbol registry and the operator
// metadata table.
//
// With no flags it prints a per-namespace summary. Any extra arguments are
// qualified names ("aten::add") that get interned and resolved first, so one
// can check what a given name maps to:
//
//	tensorir_symbols -symbols -namespace=prim
//	tensorir_symbols -ops
//	tensorir_symbols user::my_op
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"k8s.io/klog/v2"

	"github.com/tensorir/tensorir/ops"
	"github.com/tensorir/tensorir/types/symbols"
	"github.com/tensorir/tensorir/types/xslices"
)

var (
	flagSymbols = flag.Bool("symbols", false, "Lists all interned symbols.")
	flagOps     = flag.Bool("ops", false, "Lists the registered operator definitions.")
	flagNS      = flag.String("namespace", "", "Only list symbols of this namespace (e.g. \"aten\"). Implies -symbols.")
)

func main() {
	flag.Parse()

	for _, qualName := range flag.Args() {
		sym, err := symbols.Intern(qualName)
		if err != nil {
			klog.Errorf("Cannot intern %q: %v", qualName, err)
			os.Exit(1)
		}
		fmt.Printf("%s -> symbol #%d (namespace %s)\n", sym.Qual(), uint32(sym), sym.Ns())
	}

	listSymbols := *flagSymbols || *flagNS != ""
	if listSymbols {
		reportSymbols()
	}
	if *flagOps {
		reportOps()
	}
	if !listSymbols && !*flagOps {
		reportSummary()
	}
}

func reportSummary() {
	entries := symbols.Default().Snapshot()
	perNS := make(map[string]int)
	for _, entry := range entries {
		perNS[entry.Namespace.String()]++
	}

	fmt.Println(titleStyle.Render("Symbol Registry"))
	table := newPlainTable(true)
	table.Row("namespace", "# symbols")
	for _, ns := range xslices.SortedKeys(perNS) {
		table.Row(ns, humanize.Comma(int64(perNS[ns])))
	}
	table.Row("total", humanize.Comma(int64(len(entries))))
	fmt.Println(table.Render())
}

func reportSymbols() {
	entries := symbols.Default().Snapshot()
	fmt.Println(titleStyle.Render("Interned Symbols"))
	table := newPlainTable(true)
	table.Row("symbol", "qualified name", "name", "namespace")
	var count int
	for _, entry := range entries {
		if *flagNS != "" && entry.Namespace.String() != *flagNS {
			continue
		}
		table.Row(strconv.Itoa(int(entry.Sym)), entry.Qual, entry.Name, entry.Namespace.String())
		count++
	}
	if count == 0 {
		klog.Errorf("No symbols in namespace %q.", *flagNS)
		os.Exit(1)
	}
	fmt.Println(table.Render())
}

func reportOps() {
	fmt.Println(titleStyle.Render("Operator Definitions"))
	table := newPlainTable(true)
	table.Row("operator", "category", "arity", "commutative")
	rows := xslices.Map(ops.All(), func(def ops.OpDef) []string {
		arity := strconv.Itoa(def.Arity)
		if def.Arity == ops.Variadic {
			arity = "variadic"
		}
		return []string{
			def.Sym.Qual(), def.Category.String(), arity,
			strconv.FormatBool(def.Commutative),
		}
	})
	for _, row := range rows {
		table.Row(row...)
	}
	fmt.Println(table.Render())
}
