/*
Package ll1 is a toolbox for deterministic top-down parsing.

It analyses context-free grammars and derives everything needed to
run a table-driven LL(1) parser on them: a grammar free of immediate
left recursion, FIRST and FOLLOW sets, the predictive parsing table
(conflicts included) and a stack-based parser consuming it.
Package structure is as follows:

■ ll: Package ll implements grammars, grammar analysis and the construction
of LL(1) parsing tables.

■ ll/predictive: Package predictive implements a predictive parser producing
a step trace and a verdict for an input.

■ ll/notation: Package notation loads grammars from a line-oriented notation
or from JSON/YAML documents.

■ ll/scanner: Package scanner defines the tokenizer interface used by the parser,
with sub-package lexmach adapting the lexmachine DFA scanner.

■ ll/sparse: Package sparse provides the sparse matrix backing parsing tables.

■ cmd/ll1repl: An interactive shell to enter grammars, inspect their analysis
and parse input strings.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package ll1
