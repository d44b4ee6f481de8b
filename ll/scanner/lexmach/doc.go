/*
Package lexmach provides an adapter for lexmachine, a DFA based lexer
generator, to be used as a scanner for package ll.

Clients set up a lexmachine.Lexer with their token patterns, then
wrap it into an LMAdapter:

    init := func(lexer *lexmachine.Lexer) {
        lexer.Add([]byte(`( |\t)+`), lexmach.Skip)
        lexer.Add([]byte(`[a-z]+`), lexmach.MakeToken("ID", 1))
    }
    adapter, err := lexmach.NewLMAdapter(init, []string{"+", "*"}, nil, tokenIds)
    scanner, err := adapter.Scanner("a + b")
    token := scanner.NextToken()

Literals are added as exact byte sequences, keywords as lower case patterns.
Token ids for literals and keywords are taken from tokenIds.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package lexmach
