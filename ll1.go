package ll1

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Scanners of this module only
// distinguish between ordinary input tokens and the end of input, but
// applications are free to define their own categories.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language.
//
// For an LL(1) parser a token is matched against grammar terminals by its
// lexeme:
//
//    TokType = 0          // ordinary token
//    Lexeme  = "id"       // lexeme, equal to the name of a grammar terminal
//    Span    = 4…6        // occured from position 4 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run.
// A span denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s.From(), s.To())
}
