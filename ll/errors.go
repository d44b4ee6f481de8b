package ll

import "errors"

// Structural grammar errors. They abort analysis of a grammar; errors returned
// by this package wrap one of them, test with errors.Is.
var (
	// ErrEmptyGrammar is returned for a grammar without any rule.
	ErrEmptyGrammar = errors.New("grammar has no rules")
	// ErrDanglingReference flags a non-terminal used on a right hand side
	// which has no rules of its own.
	ErrDanglingReference = errors.New("reference to undefined non-terminal")
	// ErrReservedSymbol flags the end marker used on a right hand side.
	ErrReservedSymbol = errors.New("reserved symbol on right hand side")
	// ErrDegenerateRecursion flags a non-terminal which is left with no
	// rules after removing left recursion, i.e. all of its rules are
	// left recursive.
	ErrDegenerateRecursion = errors.New("non-terminal has only left recursive rules")
	// ErrAuxiliaryCollision flags an auxiliary non-terminal A' which would
	// clash with a non-terminal already present in the grammar.
	ErrAuxiliaryCollision = errors.New("auxiliary non-terminal collides with existing non-terminal")
)
