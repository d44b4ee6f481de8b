/*
Package predictive provides a table-driven LL(1) parser. Clients have to
use the tools of package ll to prepare a parsing table. The parser utilizes
this table to create a leftmost derivation for a given input, provided
through a scanner interface.

The parser is a stack automaton. The stack initially holds the end marker $
and the start symbol on top of it. On each step, the symbol on top of the
stack is compared to the current input token:

- a terminal (or $) equal to the token is popped, and the token is consumed,

- a non-terminal A is replaced by the right hand side of rule M[A,a], where
a is the current token; ε-rules just pop A,

- anything else stops the parser and rejects the input.

The input is accepted as soon as $ on the stack matches the end of input.
Cells of the table holding conflicting rules are never used for an expansion;
consulting one rejects the input as well.

Usage

	g, _, err := notation.LoadString("G", "S -> a S b | ε")
	table, err := ll.BuildTable(g)
	if !table.IsLL1() { ... }  // parser will reject input hitting a conflict
	p := predictive.NewParser(table)
	result, err := p.Parse(scanner.Fields("a a b b $"))
	if result.Accepted { ... }

Each step of the automaton is recorded, including snapshots of the stack and
of the remaining input (see Step). result.Derivation() returns the rules of
the leftmost derivation found.

To guard against non-terminating expansion sequences, the number of steps is
capped (see IterationCap). If the configuration flag panic-on-parser-stuck is
set, exceeding the cap panics with a diagnostic message instead of returning
an error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package predictive

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.ll'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.ll")
}
