/*
Package ll implements prerequisites for LL(1) parsing.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals are
identified by name, this is the lexeme a scanner will deliver for them.
Grammars may contain epsilon-productions.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS("E").N("E").T("+").N("T").End()  // E  ->  E + T
    b.LHS("E").N("T").End()                // E  ->  T
    b.LHS("T").T("id").End()               // T  ->  id
    b.LHS("T").Epsilon()                   // T  ->  ε
    g, err := b.Grammar()

The first non-terminal introduced with LHS is the start symbol.
b.Grammar() will fail if a non-terminal is referenced on a right hand side
which never receives a rule of its own.

Static Grammar Analysis

After the grammar is complete, it has to be analysed. Analysis first
removes immediate left recursion, introducing primed auxiliary
non-terminals, and then computes FIRST and FOLLOW sets for the result.

    ga, err := ll.Analysis(g)
    ga.Grammar().Dump()     // left-recursion free grammar
    //
    //  0: [E]  ::= [T E']
    //  1: [E'] ::= [+ T E']
    //  2: [E'] ::= [ε]
    //  ...
    ga.Grammar().EachNonTerminal(func(A ll.Symbol) interface{} {
        fmt.Printf("FIRST(%s) = %v\n", A, ga.First(A))
        return nil
    })

Parser Construction

Using the grammar analysis as input, an LL(1) parsing table is constructed.
Multiply defined cells are kept as conflicts and flag the grammar as not
being LL(1).

    gen := ll.NewTableGenerator(ga)
    table := gen.CreateTable()
    if gen.HasConflicts { ... }    // inspect table.Conflicts()

The table is all a predictive parser needs, see package predictive.
___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.ll'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.ll")
}
