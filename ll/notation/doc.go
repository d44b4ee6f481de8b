/*
Package notation loads grammars from text.

Two formats are supported. The line notation has one non-terminal per line,
alternatives separated by '|':

    E  -> T E'
    E' -> + T E' | ε
    T  -> F T'
    T' -> * F T' | ε
    F  -> ( E ) | id

Symbols are separated by white space. Non-terminals are single upper case
letters, optionally decorated by digits, underscores or primes; everything
else is a terminal. 'ε' denotes the empty production. Empty lines and lines
starting with '#' are ignored. Lines not containing exactly one '->' are
malformed; they are skipped and reported, but do not abort loading.

The document notation is a JSON or YAML mapping from non-terminal to a list
of productions, each production being a list of symbols:

    { "E": [["T", "E'"]], "E'": [["+", "T", "E'"], ["ε"]], ... }

Productions may alternatively be given as a single string of white space
separated symbols. The order of keys is significant: the first key is the
start symbol.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package notation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.scanner")
}
