package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// main() starts an interactive CLI, where users may enter grammar rules,
// inspect FIRST and FOLLOW sets and the LL(1) parsing table, and run the
// predictive parser on input strings.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	gfile := flag.String("grammar", "", "Grammar file to load (line notation, JSON or YAML)")
	useLexer := flag.Bool("lexer", false, "Scan input strings by grammar terminals instead of white space")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to the LL(1) workbench")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	repl, err := readline.New("ll1> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl:     repl,
		useLexer: *useLexer,
		level:    traceLevel(*tlevel),
	}
	tracer().SetTraceLevel(intp.level) // now set the user supplied level
	if *gfile != "" {
		if err := intp.load(*gfile); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" && intp.table != nil {
		intp.parse(input)
	}
	tracer().Infof("Quit with <ctrl>D or :quit") // inform user how to stop the CLI
	intp.REPL()                                   // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
