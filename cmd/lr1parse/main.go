/*
Command lr1parse is the online batch driver (spec.md §2, §6): given loaded
ACTION/GOTO tables and an optional message.json, it parses one or more
pre-lexed token files and writes one result file per input, recovering the
original Python driver's "one output per input" batch behavior.

Usage:

	lr1parse -grammar grammar.json -action action.tbl -goto goto.tbl \
	         [-messages message.json] -out-suffix .out tokens1.txt tokens2.txt ...

Each output file begins with "Success" or "Failure", followed by one
rendered SyntaxError per line (spec.md §4.7's format).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/corvidlang/lr1/grammar"
	"github.com/corvidlang/lr1/loader"
	"github.com/corvidlang/lr1/parser"
)

func main() {
	actionPath := flag.String("action", "action.tbl", "ACTION table input path")
	gotoPath := flag.String("goto", "goto.tbl", "GOTO table input path")
	grammarPath := flag.String("grammar", "", "grammar.json input path (required, for formula lookups)")
	messagesPath := flag.String("messages", "", "optional message.json input path")
	suffix := flag.String("out-suffix", ".result", "suffix appended to each input path for its output file")
	flag.Parse()

	if *grammarPath == "" {
		pterm.Error.Println("missing -grammar")
		os.Exit(2)
	}
	if flag.NArg() == 0 {
		pterm.Error.Println("no token files given")
		os.Exit(2)
	}

	store := mustLoadGrammar(*grammarPath)
	tables, err := loader.LoadTables(*actionPath, *gotoPath)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	var messages *parser.Messages
	if *messagesPath != "" {
		mf, err := os.Open(*messagesPath)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		messages, err = loader.LoadMessages(mf)
		mf.Close()
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
	}

	p := parser.New(store, tables, messages)

	// Exit 0 whenever every input file was read and written successfully,
	// even if a file's own parse had syntax errors: a parse error is data
	// recorded in that file's output, not a process failure (spec.md §6).
	ioFailures := 0
	for _, inPath := range flag.Args() {
		errs, err := parseOneFile(p, inPath, inPath+*suffix)
		if err != nil {
			pterm.Error.Printfln("%s: %v", inPath, err)
			ioFailures++
			continue
		}
		if len(errs) == 0 {
			pterm.Info.Printfln("%s: accepted", inPath)
		} else {
			pterm.Error.Printfln("%s: %d error(s)", inPath, len(errs))
		}
	}

	if ioFailures > 0 {
		os.Exit(1)
	}
}

func mustLoadGrammar(path string) *grammar.Store {
	f, err := os.Open(path)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	defer f.Close()
	store, err := loader.LoadGrammar(f)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	return store
}

func parseOneFile(p *parser.Parser, inPath, outPath string) ([]parser.SyntaxError, error) {
	inFile, err := os.Open(inPath)
	if err != nil {
		return nil, err
	}
	var lines []string
	sc := bufio.NewScanner(inFile)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	inFile.Close()
	if err := sc.Err(); err != nil {
		return nil, err
	}

	tokens, err := loader.ParseTokenStream(lines)
	if err != nil {
		return nil, err
	}

	errs := p.Parse(tokens)

	outFile, err := os.Create(outPath)
	if err != nil {
		return nil, err
	}
	defer outFile.Close()
	w := bufio.NewWriter(outFile)
	if len(errs) == 0 {
		fmt.Fprintln(w, "Success")
	} else {
		fmt.Fprintln(w, "Failure")
		for _, e := range errs {
			fmt.Fprintln(w, e.String())
		}
	}
	return errs, w.Flush()
}
