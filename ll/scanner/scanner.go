/*
Package scanner defines an interface for scanners to be used with parsers of package ll.

Two default scanner implementations are provided: (1) a tokenizer splitting
input at white space, which is what the predictive parser expects by
default, and (2) a thin wrapper over the Go std lib 'text/scanner' for input
without separating spaces ("id+id*id"). An adapter for lexmachine lives in
sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package scanner

import (
	"fmt"
	"io"
	"text/scanner"
	"unicode"
	"unicode/utf8"

	ll1 "github.com/Venkata-Vasanth/LL1-Parser"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.scanner")
}

// Token types delivered by the scanners of this package. EOF is identical
// to text/scanner.EOF.
const (
	EOF   ll1.TokType = scanner.EOF
	Input ll1.TokType = 0 // ordinary input token
)

// EndMarker is the lexeme denoting the end of input, if given explicitly.
const EndMarker = "$"

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() ll1.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Tokenizing at white space ---------------------------------------------

// FieldsTokenizer splits an input string at white space. Every field is a
// token. A trailing "$" is taken as the end of input; a "$" anywhere else
// is delivered as an ordinary token. After the end of input, NextToken
// returns EOF tokens forever.
type FieldsTokenizer struct {
	input string
	pos   int
	Error func(error) // error handler
}

var _ Tokenizer = (*FieldsTokenizer)(nil)

// Fields creates a white space tokenizer for an input string.
func Fields(input string) *FieldsTokenizer {
	return &FieldsTokenizer{input: input, Error: logError}
}

// SetErrorHandler sets an error handler for the scanner.
func (t *FieldsTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *FieldsTokenizer) NextToken() ll1.Token {
	start := t.skipSpace(t.pos)
	if start >= len(t.input) {
		t.pos = len(t.input)
		return MakeDefaultToken(EOF, "", ll1.Span{uint64(t.pos), uint64(t.pos)})
	}
	end := start
	for end < len(t.input) {
		r, w := utf8.DecodeRuneInString(t.input[end:])
		if r == utf8.RuneError && w == 1 {
			t.Error(fmt.Errorf("invalid UTF-8 encoding at position %d", end))
		}
		if unicode.IsSpace(r) {
			break
		}
		end += w
	}
	t.pos = end
	lexeme := t.input[start:end]
	span := ll1.Span{uint64(start), uint64(end)}
	if lexeme == EndMarker && t.skipSpace(end) >= len(t.input) {
		tracer().Debugf("FieldsTokenizer reached explicit end of input")
		t.pos = len(t.input)
		return MakeDefaultToken(EOF, lexeme, span)
	}
	return MakeDefaultToken(Input, lexeme, span)
}

func (t *FieldsTokenizer) skipSpace(pos int) int {
	for pos < len(t.input) {
		r, w := utf8.DecodeRuneInString(t.input[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += w
	}
	return pos
}

// --- Go-like tokens --------------------------------------------------------

// DefaultTokenizer is a tokenizer backed by scanner.Scanner. It recognizes
// tokens similar to the Go language, operators being single characters.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	lastToken rune          // last token this scanner has produced
	pending   *DefaultToken // token read ahead after a "$"
	Error     func(error)   // error handler
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface. A "$" is taken as the end of
// input if nothing but white space follows it; otherwise it is delivered as
// an ordinary token.
func (t *DefaultTokenizer) NextToken() ll1.Token {
	token := t.next()
	if token.kind == Input && token.lexeme == EndMarker {
		ahead := t.next()
		if ahead.kind == EOF {
			tracer().Debugf("DefaultTokenizer reached explicit end of input")
			return MakeDefaultToken(EOF, EndMarker, token.span)
		}
		t.pending = &ahead
	}
	return token
}

// next returns a token looked ahead at, or scans a new one.
func (t *DefaultTokenizer) next() DefaultToken {
	if t.pending != nil {
		token := *t.pending
		t.pending = nil
		return token
	}
	t.lastToken = t.Scan()
	span := ll1.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)}
	if t.lastToken == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
		return MakeDefaultToken(EOF, "", span)
	}
	return MakeDefaultToken(Input, t.TokenText(), span)
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// tokenizers of this package as well as the LexMachine scanner.
type DefaultToken struct {
	kind   ll1.TokType
	lexeme string
	span   ll1.Span
}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ ll1.TokType, lexeme string, span ll1.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() ll1.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() ll1.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == EOF {
		return EndMarker
	}
	return t.lexeme
}

// --- Scanner options for the default (Go) tokenizer ---------------------------

// Option configures a default tokenier.
type Option func(p *DefaultTokenizer)

// SkipComments set or clears mode-flag SkipComments.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// --- Helpers ---------------------------------------------------------------

// Tokenize reads all tokens from a tokenizer up to and including the first
// EOF token.
func Tokenize(t Tokenizer) []ll1.Token {
	var tokens []ll1.Token
	for {
		token := t.NextToken()
		tokens = append(tokens, token)
		if token.TokType() == EOF {
			return tokens
		}
	}
}
