package predictive

import (
	"errors"
	"fmt"

	ll1 "github.com/Venkata-Vasanth/LL1-Parser"
	"github.com/Venkata-Vasanth/LL1-Parser/ll"
)

// Reason classifies the rejection of an input.
type Reason int

// Reasons for rejecting input.
const (
	NoRule         Reason = iota + 1 // M[A,a] is empty
	Mismatch                         // terminal on top of stack differs from input
	Conflict                         // M[A,a] holds more than one rule
	NonTermination                   // iteration cap exceeded
	TrailingInput                    // stack exhausted before end of input
	Uninitialized                    // parser without a parsing table
)

func (r Reason) String() string {
	switch r {
	case NoRule:
		return "no rule"
	case Mismatch:
		return "mismatch"
	case Conflict:
		return "conflict"
	case NonTermination:
		return "parser did not terminate"
	case TrailingInput:
		return "trailing input"
	case Uninitialized:
		return "parser not initialized"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// ErrNonTermination is matched by ParseErrors for parsers which exceeded
// their iteration cap.
var ErrNonTermination = errors.New("parser did not terminate")

// ParseError is returned for rejected input. It names the stack top and the
// input token the parser stopped at.
type ParseError struct {
	Reason     Reason
	Top        ll.Symbol // symbol on top of stack
	Token      string    // lexeme of current input token, "$" for end of input
	At         ll1.Span  // input position of Token
	Step       int       // number of the step the parser stopped at
	Candidates []*ll.Rule
}

func (e *ParseError) Error() string {
	return e.message() + e.position()
}

func (e *ParseError) message() string {
	switch e.Reason {
	case NoRule:
		return fmt.Sprintf("step %d: no rule for %s with input %q", e.Step, e.Top, e.Token)
	case Mismatch:
		return fmt.Sprintf("step %d: expected %s, have %q", e.Step, e.Top, e.Token)
	case Conflict:
		return fmt.Sprintf("step %d: conflict for %s with input %q: %v", e.Step, e.Top, e.Token,
			candidates(e.Candidates))
	case NonTermination:
		return fmt.Sprintf("step %d: parser did not terminate (stack top %s, input %q)",
			e.Step, e.Top, e.Token)
	case TrailingInput:
		return fmt.Sprintf("step %d: input continues after end of derivation: %q", e.Step, e.Token)
	case Uninitialized:
		return "parser not initialized with a parsing table"
	}
	return fmt.Sprintf("step %d: %s", e.Step, e.Reason)
}

// position is empty for errors without input position.
func (e *ParseError) position() string {
	if e.At.IsNull() {
		return ""
	}
	return " at " + e.At.String()
}

// Is makes ParseErrors with reason NonTermination match ErrNonTermination.
func (e *ParseError) Is(target error) bool {
	return target == ErrNonTermination && e.Reason == NonTermination
}

func candidates(rules []*ll.Rule) []string {
	alts := make([]string, len(rules))
	for i, r := range rules {
		alts[i] = r.LHS.Name + " -> " + r.RHSString()
	}
	return alts
}
