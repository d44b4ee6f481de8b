package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/Venkata-Vasanth/LL1-Parser/ll"
	"github.com/Venkata-Vasanth/LL1-Parser/ll/notation"
	"github.com/Venkata-Vasanth/LL1-Parser/ll/predictive"
	"github.com/Venkata-Vasanth/LL1-Parser/ll/scanner"
	"github.com/Venkata-Vasanth/LL1-Parser/ll/scanner/lexmach"
	"github.com/npillmayer/schuko/tracing"
)

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	lines    []string         // grammar rules entered so far
	grammar  *ll.Grammar      // grammar loaded from a file
	table    *ll.ParsingTable // result of last analysis
	useLexer bool             // scan input by terminals
	level    tracing.TraceLevel
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or adds a grammar rule, given on a line by itself.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		return false, intp.addRule(line)
	}
	cmd, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i:])
	}
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":help", ":h":
		showHelp()
	case ":show":
		return false, intp.show()
	case ":clear":
		intp.lines, intp.grammar, intp.table = nil, nil, nil
		pterm.Info.Println("grammar cleared")
	case ":load":
		return false, intp.load(arg)
	case ":analyze", ":a":
		return false, intp.analyze()
	case ":first", ":follow":
		if intp.table == nil {
			return false, fmt.Errorf("no grammar analysed yet, use :analyze")
		}
		showSets(intp.table.Analysis())
	case ":table":
		if intp.table == nil {
			return false, fmt.Errorf("no grammar analysed yet, use :analyze")
		}
		showTable(intp.table)
	case ":parse", ":p":
		if intp.table == nil {
			if err := intp.analyze(); err != nil {
				return false, err
			}
		}
		intp.parse(arg)
	case ":lexer":
		intp.useLexer = arg != "off"
		pterm.Info.Printf("scanning input by terminals: %v\n", intp.useLexer)
	case ":trace":
		intp.level = tracing.TraceLevelFromString(arg)
		tracer().SetTraceLevel(intp.level)
		pterm.Info.Printf("trace level is %s\n", arg)
	default:
		return false, fmt.Errorf("unknown command %s, enter :help for a list of commands", cmd)
	}
	return false, nil
}

// addRule adds a line of grammar input. Previous analysis results are
// invalidated.
func (intp *Intp) addRule(line string) error {
	if _, malformed, _ := notation.LoadString("line", line); len(malformed) > 0 {
		return malformed[0]
	}
	intp.lines = append(intp.lines, line)
	intp.grammar, intp.table = nil, nil
	return nil
}

func (intp *Intp) currentGrammar() (*ll.Grammar, error) {
	if intp.grammar != nil {
		return intp.grammar, nil
	}
	if len(intp.lines) == 0 {
		return nil, fmt.Errorf("no grammar rules entered yet")
	}
	g, malformed, err := notation.LoadString("G", strings.Join(intp.lines, "\n"))
	for _, m := range malformed {
		pterm.Warning.Println(m.Error())
	}
	return g, err
}

// load reads a grammar file. Files ending in .json, .yaml or .yml are read
// as grammar documents, all others in line notation.
func (intp *Intp) load(filename string) error {
	if filename == "" {
		return fmt.Errorf("usage: :load <file>")
	}
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("unable to open grammar file: %w", err)
	}
	defer f.Close()
	name := filepath.Base(filename)
	var g *ll.Grammar
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json", ".yaml", ".yml":
		g, err = notation.LoadDocument(name, f)
	default:
		var malformed []notation.MalformedLine
		g, malformed, err = notation.Load(name, f)
		for _, m := range malformed {
			pterm.Warning.Println(m.Error())
		}
	}
	if err != nil {
		return err
	}
	intp.lines, intp.grammar, intp.table = nil, g, nil
	pterm.Info.Printf("loaded grammar %s with %d rules\n", name, g.Size())
	return intp.analyze()
}

func (intp *Intp) show() error {
	g, err := intp.currentGrammar()
	if err != nil {
		return err
	}
	showGrammar("Grammar", g)
	if intp.table != nil {
		showGrammar("Normalized grammar", intp.table.Grammar())
	}
	return nil
}

// analyze runs grammar analysis and table construction and displays the
// results.
func (intp *Intp) analyze() error {
	g, err := intp.currentGrammar()
	if err != nil {
		return err
	}
	g.Dump() // only visible in debug mode
	table, err := ll.BuildTable(g)
	if err != nil {
		return err
	}
	intp.table = table
	showGrammar("Normalized grammar", table.Grammar())
	showSets(table.Analysis())
	showTable(table)
	if table.IsLL1() {
		pterm.Success.Println("grammar is LL(1)")
		return nil
	}
	pterm.Warning.Printf("grammar is not LL(1), %d conflicts\n", len(table.Conflicts()))
	for _, c := range table.Conflicts() {
		pterm.Warning.Printf("M[%s,%s] = %s\n", c.NonTerminal, c.Terminal, c)
	}
	return nil
}

// parse runs the predictive parser on an input string and displays the trace.
// It returns nil if the parser could not be set up.
func (intp *Intp) parse(input string) *predictive.Result {
	tokenizer, err := intp.tokenizer(input)
	if err != nil {
		pterm.Error.Println(err.Error())
		return nil
	}
	p := predictive.NewParser(intp.table, predictive.Tracing(intp.level))
	res, err := p.Parse(tokenizer)
	if res == nil {
		pterm.Error.Println(err.Error())
		return nil
	}
	showTrace(res)
	if res.Accepted {
		showDerivation(intp.table.Start(), res.Derivation())
		pterm.Success.Println("input accepted")
		return res
	}
	pterm.Error.Println("input rejected: " + err.Error())
	return res
}

// tokenizer creates a scanner for an input string. In lexer mode a trailing
// "$" is stripped, any other "$" is unmatched input and will be rejected by
// the parser.
func (intp *Intp) tokenizer(input string) (scanner.Tokenizer, error) {
	if !intp.useLexer {
		return scanner.Fields(input), nil
	}
	terms := intp.table.Grammar().Terminals()
	names := make([]string, len(terms))
	for i, a := range terms {
		names[i] = a.Name
	}
	lm, err := lexmach.TerminalsAdapter(names)
	if err != nil {
		return nil, err
	}
	input = strings.TrimSuffix(strings.TrimSpace(input), scanner.EndMarker)
	scan, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	scan.SetErrorHandler(func(e error) {
		pterm.Warning.Println("skipping input: " + e.Error())
	})
	return scan, nil
}
