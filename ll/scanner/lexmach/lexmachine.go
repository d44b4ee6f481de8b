package lexmach

import (
	"strings"

	ll1 "github.com/Venkata-Vasanth/LL1-Parser"
	"github.com/Venkata-Vasanth/LL1-Parser/ll/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'll1.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError, input: input, end: uint64(len(input))}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
	input   string
	end     uint64
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Input no pattern matches is
// reported to the error handler and delivered as an ordinary token holding
// the unmatched text, which no grammar terminal will ever match.
func (lms *LMScanner) NextToken() ll1.Token {
	if lms.scanner == nil {
		return scanner.MakeDefaultToken(scanner.EOF, "", ll1.Span{})
	}
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		lms.Error(err)
		ui, is := err.(*machines.UnconsumedInput)
		if !is {
			return scanner.MakeDefaultToken(scanner.EOF, "", ll1.Span{lms.end, lms.end})
		}
		return lms.unmatched(ui)
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", ll1.Span{lms.end, lms.end})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	return scanner.MakeDefaultToken(
		ll1.TokType(token.Type),
		string(token.Lexeme),
		ll1.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// unmatched skips unconsumable input and wraps it into a token. At least one
// byte is consumed.
func (lms *LMScanner) unmatched(ui *machines.UnconsumedInput) ll1.Token {
	from, to := ui.StartTC, ui.FailTC
	if from >= len(lms.input) {
		return scanner.MakeDefaultToken(scanner.EOF, "", ll1.Span{lms.end, lms.end})
	}
	if to <= from {
		to = from + 1
	}
	if to > len(lms.input) {
		to = len(lms.input)
	}
	lms.scanner.TC = to
	text := lms.input[from:to]
	tracer().Debugf("unmatched input %q at %d", text, from)
	return scanner.MakeDefaultToken(scanner.Input, text, ll1.Span{uint64(from), uint64(to)})
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
