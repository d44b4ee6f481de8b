package lexmach

import (
	"strings"
	"testing"

	"github.com/Venkata-Vasanth/LL1-Parser/ll/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"id",
	"id+id*id",
	"( id )",
	"x = nil // comment",
}

var tokenCounts = []int{1, 5, 3, 3}

const (
	ID = iota + 1
	PLUS
	STAR
	LPAREN
	RPAREN
	EQUALS
	NIL
)

var tokenIds = map[string]int{
	"+":   PLUS,
	"*":   STAR,
	"(":   LPAREN,
	")":   RPAREN,
	"=":   EQUALS,
	"nil": NIL,
}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.scanner")
	defer teardown()
	//
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), Skip)
		lexer.Add([]byte(`[a-z]+`), MakeToken("ID", ID))
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	literals := []string{"+", "*", "(", ")", "="}
	LM, err := NewLMAdapter(init, literals, []string{"nil"}, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		scan, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		scan.SetErrorHandler(func(e error) {
			t.Errorf("scanner error: %v", e)
		})
		token := scan.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = scan.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestTerminalsAdapter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.scanner")
	defer teardown()
	//
	LM, err := TerminalsAdapter([]string{"id", "+", "*", "(", ")", "->"})
	if err != nil {
		t.Fatal(err)
	}
	scan, err := LM.Scanner("(id+id) *id->id")
	if err != nil {
		t.Fatal(err)
	}
	scan.SetErrorHandler(func(e error) {
		t.Errorf("scanner error: %v", e)
	})
	var lexemes []string
	for _, token := range scanner.Tokenize(scan) {
		if token.TokType() != scanner.EOF {
			lexemes = append(lexemes, token.Lexeme())
		}
	}
	expect := "( id + id ) * id -> id"
	if strings.Join(lexemes, " ") != expect {
		t.Errorf("expected tokens %q, have %q", expect, strings.Join(lexemes, " "))
	}
}

func TestTerminalsAdapterUnmatchedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.scanner")
	defer teardown()
	//
	LM, err := TerminalsAdapter([]string{"id", "+"})
	if err != nil {
		t.Fatal(err)
	}
	scan, err := LM.Scanner("id # + @ id")
	if err != nil {
		t.Fatal(err)
	}
	errcnt := 0
	scan.SetErrorHandler(func(e error) {
		errcnt++
	})
	var lexemes []string
	for _, token := range scanner.Tokenize(scan) {
		if token.TokType() == scanner.Input {
			if token.Span().From() != 3 && token.Span().From() != 7 {
				t.Errorf("unexpected unmatched token %q at %v", token.Lexeme(), token.Span())
			}
			lexemes = append(lexemes, token.Lexeme())
		}
	}
	if strings.Join(lexemes, " ") != "# @" || errcnt != 2 {
		t.Errorf("expected unmatched input to be delivered as 2 tokens, have %v (%d errors)", lexemes, errcnt)
	}
}
