/*
Command lr1gen is the offline table generator (spec.md §2, §6): it reads a
grammar.json, runs canonical LR(1) state enumeration and ACTION/GOTO
synthesis, and writes the sparse ACTION/GOTO table files a parser.Parser
loads at runtime.

Usage:

	lr1gen -grammar grammar.json -action action.tbl -goto goto.tbl \
	       [-itemsets itemsets.log] [-conflicts conflicts.log] [-trace Info]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"

	lr1 "github.com/corvidlang/lr1"
	"github.com/corvidlang/lr1/lr"
	"github.com/corvidlang/lr1/loader"
	"github.com/corvidlang/lr1/observer"
)

func tracer() tracing.Trace {
	return tracing.Select("lr1.build")
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()

	grammarPath := flag.String("grammar", "", "grammar.json input path (required)")
	actionPath := flag.String("action", "action.tbl", "ACTION table output path")
	gotoPath := flag.String("goto", "goto.tbl", "GOTO table output path")
	itemsetsPath := flag.String("itemsets", "", "optional item-set dump output path")
	conflictsPath := flag.String("conflicts", "", "optional conflict-log output path")
	tlevel := flag.String("trace", "Info", "trace level [Debug|Info|Error]")
	denseGoto := flag.Bool("goto-density", false, "report GOTO table density against its dense state x symbol grid")
	flag.Parse()

	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	if *grammarPath == "" {
		pterm.Error.Println("missing -grammar")
		os.Exit(2)
	}

	gf, err := os.Open(*grammarPath)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	store, err := loader.LoadGrammar(gf)
	gf.Close()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	pterm.Info.Printfln("loaded grammar with %d formula(s)", store.Len())

	var obsList observer.Multi
	obsList = append(obsList, observer.Tracing{})
	collector := observer.NewCollector()
	obsList = append(obsList, collector)

	states, tables := lr1.Build(store, obsList)
	pterm.Info.Printfln("enumerated %d state(s), digest %s", states.Len(), tables.Digest())

	if len(collector.Conflicts) > 0 {
		pterm.Error.Printfln("%d conflict(s) detected (first write wins)", len(collector.Conflicts))
		for _, c := range collector.Conflicts {
			pterm.Error.Println(c.String())
		}
	}

	if *denseGoto {
		m, symbols := lr.GotoMatrix(store, tables, states.Len())
		total := m.M() * m.N()
		pterm.Info.Printfln("GOTO density: %d/%d cells populated over %d symbol column(s)",
			m.ValueCount(), total, len(symbols))
	}

	if err := loader.SaveTables(store, tables, *actionPath, *gotoPath); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	if *itemsetsPath != "" {
		if err := writeLines(*itemsetsPath, collector.ItemSets); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
	}
	if *conflictsPath != "" {
		lines := make([]string, len(collector.Conflicts))
		for i, c := range collector.Conflicts {
			lines[i] = c.String()
		}
		if err := writeLines(*conflictsPath, lines); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
	}

	pterm.Info.Println("tables written to " + *actionPath + " and " + *gotoPath)
}

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, l := range lines {
		if _, err := fmt.Fprintln(f, l); err != nil {
			return err
		}
	}
	return nil
}
