package predictive

import (
	"errors"
	"fmt"

	ll1 "github.com/Venkata-Vasanth/LL1-Parser"
	"github.com/Venkata-Vasanth/LL1-Parser/ll"
	"github.com/Venkata-Vasanth/LL1-Parser/ll/scanner"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// Parser is an LL(1) predictive parser. Create and initialize one with
// predictive.NewParser(...). A parser may be used for more than one input,
// but not concurrently.
type Parser struct {
	table    *ll.ParsingTable
	maxSteps int // 0 = derive from input length and grammar size
	level    tracing.TraceLevel
	setLevel bool
}

// Option configures a parser.
type Option func(p *Parser)

// IterationCap sets the maximum number of steps for a single parse.
// A value <= 0 restores the default, which is proportional to the length of
// the input times the size of the grammar.
func IterationCap(n int) Option {
	return func(p *Parser) {
		if n < 0 {
			n = 0
		}
		p.maxSteps = n
	}
}

// Tracing sets the trace level to use during a parse. With LevelDebug,
// every step is traced.
func Tracing(level tracing.TraceLevel) Option {
	return func(p *Parser) {
		p.level = level
		p.setLevel = true
	}
}

// NewParser creates a predictive parser for a parsing table.
func NewParser(table *ll.ParsingTable, opts ...Option) *Parser {
	p := &Parser{table: table}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseString parses a whitespace separated string of input tokens,
// optionally terminated by "$".
func ParseString(table *ll.ParsingTable, input string, opts ...Option) *Result {
	res, err := NewParser(table, opts...).Parse(scanner.Fields(input))
	if res == nil { // parser not initialized
		tracer().Errorf("cannot parse %q: %v", input, err)
		res = newResult()
		res.Err = &ParseError{Reason: Uninitialized}
	}
	return res
}

// Parse reads all tokens from a scanner and runs the automaton on them.
// The input is complete when the scanner delivers EOF.
//
// Parse returns a result holding the trace even if the input is rejected;
// in this case the error returned is the *ParseError of the result.
func (p *Parser) Parse(scan scanner.Tokenizer) (*Result, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.table == nil {
		tracer().Errorf("predictive parser not initialized")
		return nil, errors.New("predictive parser not initialized")
	}
	if scan == nil {
		return nil, errors.New("no scanner to read input from")
	}
	if p.setLevel {
		level := tracer().GetTraceLevel()
		tracer().SetTraceLevel(p.level)
		defer tracer().SetTraceLevel(level)
	}
	input := symbolsFor(scanner.Tokenize(scan))
	res := p.run(input)
	if res.Accepted {
		tracer().Infof("input accepted after %d steps", res.trace.Size())
		return res, nil
	}
	tracer().Infof("input rejected: %v", res.Err)
	return res, res.Err
}

// inputSymbol is a token of the input, with its grammar symbol.
type inputSymbol struct {
	sym    ll.Symbol
	lexeme string
	span   ll1.Span
}

// symbolsFor converts tokens to terminals. The EOF token becomes the end
// marker. A "$" not at the end of input is an ordinary (unknown) terminal.
func symbolsFor(tokens []ll1.Token) []inputSymbol {
	input := make([]inputSymbol, 0, len(tokens))
	for _, token := range tokens {
		if token.TokType() == scanner.EOF {
			return append(input, inputSymbol{sym: ll.EndMarker, lexeme: scanner.EndMarker, span: token.Span()})
		}
		input = append(input, inputSymbol{sym: ll.T(token.Lexeme()), lexeme: token.Lexeme(), span: token.Span()})
	}
	return append(input, inputSymbol{sym: ll.EndMarker, lexeme: scanner.EndMarker})
}

// run is the stack automaton.
func (p *Parser) run(input []inputSymbol) *Result {
	res := newResult()
	stack := borrowStack()
	defer stack.release()
	stack.push(ll.EndMarker)
	stack.push(p.table.Start())
	maxSteps := p.iterationCap(len(input))
	pos := 0
	for n := 1; stack.size() > 0; n++ {
		top, _ := stack.top()
		cur := input[pos]
		step := Step{No: n, Stack: stack.snapshot(), Input: remaining(input[pos:])}
		if n > maxSteps {
			err := &ParseError{Reason: NonTermination, Top: top, Token: cur.lexeme, At: cur.span, Step: n}
			p.stuck(err, maxSteps)
			return res.reject(step, err)
		}
		switch {
		case top.IsTerminal() && top == cur.sym: // includes $ matching end of input
			stack.pop()
			pos++
			step.Action = Action{Kind: MatchAction, Symbol: top}
		case top.IsEndMarker():
			err := &ParseError{Reason: TrailingInput, Top: top, Token: cur.lexeme, At: cur.span, Step: n}
			return res.reject(step, err)
		case top.IsTerminal():
			err := &ParseError{Reason: Mismatch, Top: top, Token: cur.lexeme, At: cur.span, Step: n}
			return res.reject(step, err)
		default:
			cell := p.table.Cell(top, cur.sym)
			if cell.IsEmpty() {
				err := &ParseError{Reason: NoRule, Top: top, Token: cur.lexeme, At: cur.span, Step: n}
				return res.reject(step, err)
			}
			if cell.IsConflict() {
				err := &ParseError{Reason: Conflict, Top: top, Token: cur.lexeme, At: cur.span, Step: n,
					Candidates: cell.Rules}
				return res.reject(step, err)
			}
			rule := cell.Rule()
			stack.pop()
			stack.pushRHS(rule)
			step.Action = Action{Kind: ExpandAction, Symbol: top, Rule: rule}
		}
		tracer().Debugf("%v", step)
		res.record(step)
	}
	res.Accepted = true
	return res
}

func (res *Result) reject(step Step, err *ParseError) *Result {
	step.Action = Action{Kind: ErrorAction, Symbol: err.Top, Err: err}
	tracer().Debugf("%v", step)
	res.record(step)
	res.Err = err
	return res
}

// iterationCap returns the maximum number of steps for an input of n
// tokens (including $).
func (p *Parser) iterationCap(n int) int {
	if p.maxSteps > 0 {
		return p.maxSteps
	}
	g := p.table.Grammar()
	maxRHS := 0
	for _, r := range g.Rules() {
		if r.Len() > maxRHS {
			maxRHS = r.Len()
		}
	}
	return (n + 1) * (g.Size() + 1) * (maxRHS + 1)
}

func (p *Parser) stuck(err *ParseError, maxSteps int) {
	msg := fmt.Sprintf("predictive parser exceeded %d steps: %v", maxSteps, err)
	tracer().Errorf("%s", msg)
	if gconf.GetBool("panic-on-parser-stuck") {
		panic(`Predictive parser is stuck.

Configuration flag panic-on-parser-stuck is set to true. It is aimed at helping
to debug a parser and do a post-mortem of why it got stuck. However, if this is
a production environment and you did not expect this to panic, please unset
panic-on-parser-stuck to its default (false).

` + msg)
	}
}

func remaining(input []inputSymbol) []string {
	lexemes := make([]string, len(input))
	for i, in := range input {
		lexemes[i] = in.lexeme
	}
	return lexemes
}
