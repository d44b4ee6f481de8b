package notation

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Venkata-Vasanth/LL1-Parser/ll"
	"github.com/Venkata-Vasanth/LL1-Parser/ll/scanner"
	"github.com/Venkata-Vasanth/LL1-Parser/ll/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// Token ids of the line notation.
const (
	tokArrow = iota + 1
	tokBar
	tokSymbol
)

// MalformedLine describes a line of grammar input which has been skipped.
type MalformedLine struct {
	Line   int    // line number, starting at 1
	Text   string // the line as read
	Reason string
}

func (m MalformedLine) Error() string {
	return fmt.Sprintf("line %d: %s: %q", m.Line, m.Reason, m.Text)
}

var (
	lineLexer    *lexmach.LMAdapter
	lineLexerErr error
	lexerOnce    sync.Once
)

// lexer returns the (compiled) lexer for the line notation.
func lexer() (*lexmach.LMAdapter, error) {
	lexerOnce.Do(func() {
		lineLexer, lineLexerErr = compileLexer()
	})
	return lineLexer, lineLexerErr
}

func compileLexer() (*lexmach.LMAdapter, error) {
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`( |\t|\r)+`), lexmach.Skip)
		// a '-' is part of a symbol unless it starts an arrow
		lexer.Add([]byte(`([^ \t\r\n|\-]|\-[^ \t\r\n|>])+|\-`), lexmach.MakeToken("SYMBOL", tokSymbol))
	}
	tokenIds := map[string]int{"->": tokArrow, "|": tokBar}
	adapter, err := lexmach.NewLMAdapter(init, []string{"->", "|"}, nil, tokenIds)
	if err != nil {
		return nil, fmt.Errorf("cannot compile grammar notation lexer: %w", err)
	}
	return adapter, nil
}

// Load reads a grammar in line notation. Malformed lines are skipped and
// returned as a list; they do not cause an error. An error is returned for
// read errors and if the rules read do not form a valid grammar (see
// ll.GrammarBuilder).
func Load(name string, r io.Reader) (*ll.Grammar, []MalformedLine, error) {
	lm, err := lexer()
	if err != nil {
		return nil, nil, err
	}
	b := ll.NewGrammarBuilder(name)
	var malformed []MalformedLine
	input := bufio.NewScanner(r)
	lineno := 0
	for input.Scan() {
		lineno++
		text := input.Text()
		if line := strings.TrimSpace(text); line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lhs, alts, reason := parseLine(lm, text)
		if reason != "" {
			m := MalformedLine{Line: lineno, Text: text, Reason: reason}
			tracer().Infof("skipping malformed grammar %v", m)
			malformed = append(malformed, m)
			continue
		}
		for _, alt := range alts {
			rb := b.LHS(lhs.Name)
			for _, A := range alt {
				rb.Sym(A)
			}
			rb.End()
		}
	}
	if err := input.Err(); err != nil {
		return nil, malformed, fmt.Errorf("error reading grammar %q: %w", name, err)
	}
	g, err := b.Grammar()
	return g, malformed, err
}

// LoadString is a convenience wrapper around Load.
func LoadString(name, input string) (*ll.Grammar, []MalformedLine, error) {
	return Load(name, strings.NewReader(input))
}

// parseLine splits a line into LHS and alternatives. A non-empty reason
// signals a malformed line.
func parseLine(lm *lexmach.LMAdapter, line string) (ll.Symbol, [][]ll.Symbol, string) {
	scan, err := lm.Scanner(line)
	if err != nil {
		return ll.Symbol{}, nil, err.Error()
	}
	var scanErr error
	scan.SetErrorHandler(func(e error) { scanErr = e })
	tokens := scanner.Tokenize(scan)
	if scanErr != nil {
		return ll.Symbol{}, nil, scanErr.Error()
	}
	arrow, arrows := -1, 0
	for i, token := range tokens {
		if token.TokType() == tokArrow {
			arrow = i
			arrows++
		}
	}
	if arrows != 1 {
		return ll.Symbol{}, nil, "expected exactly one '->'"
	}
	if arrow != 1 || tokens[0].TokType() != tokSymbol {
		return ll.Symbol{}, nil, "expected a single non-terminal left of '->'"
	}
	lhs := ll.Classify(tokens[0].Lexeme())
	if !lhs.IsNonTerminal() {
		return ll.Symbol{}, nil, fmt.Sprintf("%q is not a non-terminal", lhs.Name)
	}
	var alts [][]ll.Symbol
	var alt []ll.Symbol
	for _, token := range tokens[arrow+1:] {
		switch token.TokType() {
		case tokSymbol:
			A := ll.Classify(token.Lexeme())
			if A.IsEndMarker() {
				return ll.Symbol{}, nil, "end marker '$' on right hand side"
			}
			alt = append(alt, A)
			continue
		case tokBar, scanner.EOF:
			if len(alt) == 0 {
				return ll.Symbol{}, nil, "empty alternative, use 'ε'"
			}
			alts = append(alts, alt)
			alt = nil
		}
	}
	return lhs, alts, ""
}
