/*
Command ll1repl provides an interactive command line tool for exploring
LL(1) grammars. Users enter grammar rules in line notation, let the tool
analyse them and parse input strings with the resulting predictive parser.

	ll1> E -> E + T | T
	ll1> T -> T * F | F
	ll1> F -> ( E ) | id
	ll1> :analyze
	ll1> :parse id + id * id $

Enter :help for a list of commands.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.ll'
func tracer() tracing.Trace {
	return tracing.Select("ll1.ll")
}
