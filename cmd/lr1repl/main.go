/*
Command lr1repl is an interactive sandbox for stepping the table-driven
parser one line of pre-lexed tokens at a time, shaped like a term-rewriting
REPL but driving parser.Parser instead of term rewriting.

Usage:

	lr1repl -action action.tbl -goto goto.tbl -grammar grammar.json \
	        [-messages message.json] [-trace Info]

Each REPL line holds one or more token-stream lines in the loader's simple
or full line form (spec.md §6), separated by ';'; the REPL parses them as
one complete input and reports Success/Failure the same way lr1parse does
for batch files.
Quit with <ctrl>D.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"

	"github.com/corvidlang/lr1/loader"
	"github.com/corvidlang/lr1/parser"
)

func tracer() tracing.Trace {
	return tracing.Select("lr1.repl")
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

	actionPath := flag.String("action", "action.tbl", "ACTION table input path")
	gotoPath := flag.String("goto", "goto.tbl", "GOTO table input path")
	grammarPath := flag.String("grammar", "", "grammar.json input path (required)")
	messagesPath := flag.String("messages", "", "optional message.json input path")
	tlevel := flag.String("trace", "Info", "trace level [Debug|Info|Error]")
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

	pterm.Info.Println("Welcome to lr1repl")
	tracer().Infof("quit with <ctrl>D")

	repl, err := readline.New("lr1> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		evalLine(p, line)
	}
	pterm.Info.Println("Good bye!")
}

func evalLine(p *parser.Parser, line string) {
	fields := splitTokenLines(line)
	tokens, err := loader.ParseTokenStream(fields)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	errs := p.Parse(tokens)
	if len(errs) == 0 {
		pterm.Info.Println("Success")
		return
	}
	pterm.Error.Printfln("Failure (%d error(s))", len(errs))
	for _, e := range errs {
		pterm.Error.Println(e.String())
	}
}

// splitTokenLines lets a REPL line hold several "<type,word>" terminals
// separated by ';', so a one-line input can still exercise a multi-token
// parse without dropping to file mode.
func splitTokenLines(line string) []string {
	parts := strings.Split(line, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
