package ll

import (
	"fmt"
	"regexp"

	"github.com/emirpasic/gods/utils"
)

// SymbolKind tags a grammar symbol.
type SymbolKind uint8

// The four kinds of grammar symbols.
const (
	TerminalSymbol SymbolKind = iota + 1
	NonTerminalSymbol
	EpsilonSymbol
	EndMarkerSymbol
)

func (k SymbolKind) String() string {
	switch k {
	case TerminalSymbol:
		return "terminal"
	case NonTerminalSymbol:
		return "non-terminal"
	case EpsilonSymbol:
		return "epsilon"
	case EndMarkerSymbol:
		return "end-marker"
	}
	return "<invalid>"
}

// Names of the reserved symbols.
const (
	EpsilonName   = "ε"
	EndMarkerName = "$"
)

// Symbol is a grammar symbol: a terminal, a non-terminal, epsilon or the
// end-of-input marker. Symbols are small values and compare with ==.
type Symbol struct {
	Kind SymbolKind
	Name string
}

// Epsilon denotes the empty string.
var Epsilon = Symbol{Kind: EpsilonSymbol, Name: EpsilonName}

// EndMarker is the sentinel terminal at the end of the input.
var EndMarker = Symbol{Kind: EndMarkerSymbol, Name: EndMarkerName}

// T creates a terminal symbol.
func T(name string) Symbol {
	return Symbol{Kind: TerminalSymbol, Name: name}
}

// N creates a non-terminal symbol.
func N(name string) Symbol {
	return Symbol{Kind: NonTerminalSymbol, Name: name}
}

// IsTerminal is true for terminals and for the end marker.
func (A Symbol) IsTerminal() bool {
	return A.Kind == TerminalSymbol || A.Kind == EndMarkerSymbol
}

// IsNonTerminal is true for non-terminals.
func (A Symbol) IsNonTerminal() bool {
	return A.Kind == NonTerminalSymbol
}

// IsEpsilon is true for ε.
func (A Symbol) IsEpsilon() bool {
	return A.Kind == EpsilonSymbol
}

// IsEndMarker is true for $.
func (A Symbol) IsEndMarker() bool {
	return A.Kind == EndMarkerSymbol
}

func (A Symbol) String() string {
	return A.Name
}

// GoString is a debugging helper.
func (A Symbol) GoString() string {
	return fmt.Sprintf("<%s %q>", A.Kind, A.Name)
}

var nonTermPattern = regexp.MustCompile(`^[A-Z][0-9_']*$`)

// IsNonTerminalName reports whether a name follows the naming convention
// for non-terminals: a single upper case letter, optionally decorated with
// digits, underscores or primes (E, T1, E').
func IsNonTerminalName(name string) bool {
	return nonTermPattern.MatchString(name)
}

// Classify creates a symbol from its textual representation.
// "ε" is epsilon, "$" is the end marker, names following the non-terminal
// naming convention are non-terminals and everything else is a terminal.
func Classify(text string) Symbol {
	switch {
	case text == EpsilonName:
		return Epsilon
	case text == EndMarkerName:
		return EndMarker
	case IsNonTerminalName(text):
		return N(text)
	}
	return T(text)
}

// symbolComparator orders symbols by kind first and by name second.
// Within a set this puts terminals before ε and $.
func symbolComparator(a, b interface{}) int {
	A, B := a.(Symbol), b.(Symbol)
	if c := rank(A.Kind) - rank(B.Kind); c != 0 {
		return c
	}
	return utils.StringComparator(A.Name, B.Name)
}

func rank(k SymbolKind) int {
	switch k {
	case TerminalSymbol:
		return 0
	case EndMarkerSymbol:
		return 1
	case EpsilonSymbol:
		return 2
	}
	return 3
}
