package lexmach

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/timtadh/lexmachine"
)

// TerminalsAdapter creates an adapter which recognizes a fixed set of
// terminals, e.g. the terminals of a grammar, and skips white space.
// Terminals need not be separated by white space in the input; the
// longest match wins. Token ids are the positions of the terminals in the
// list, starting at 1.
func TerminalsAdapter(terminals []string) (*LMAdapter, error) {
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
		for i, term := range terminals {
			if term == "" {
				continue
			}
			lexer.Add([]byte(quote(term)), MakeToken(term, i+1))
		}
	}
	adapter, err := NewLMAdapter(init, nil, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create scanner for terminals %v: %w", terminals, err)
	}
	return adapter, nil
}

// quote escapes every character of a terminal which is not a letter or a digit.
func quote(term string) string {
	var b strings.Builder
	for _, r := range term {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
