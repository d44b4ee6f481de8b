package scanner

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputStrings = []string{
	"id",
	"id + id * id",
	"  ( id )\t$",
	"b $ a",
	"",
}

var tokenCounts = []int{1, 5, 3, 3, 0}

func TestFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		scanner := Fields(input)
		token := scanner.NextToken()
		count := 0
		for token.TokType() != EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = scanner.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
		if next := scanner.NextToken(); next.TokType() != EOF {
			t.Errorf("Expected EOF to repeat after end of input #%d, got %q", i, next.Lexeme())
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestFieldsSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.scanner")
	defer teardown()
	//
	tokens := Tokenize(Fields("ab  c $"))
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens including EOF, have %d", len(tokens))
	}
	if tokens[1].Lexeme() != "c" || tokens[1].Span().From() != 4 || tokens[1].Span().To() != 5 {
		t.Errorf("Expected token 'c' at (4…5), have %q at %v", tokens[1].Lexeme(), tokens[1].Span())
	}
	if tokens[2].TokType() != EOF || tokens[2].Lexeme() != "$" {
		t.Errorf("Expected explicit $ to be EOF, have %v", tokens[2])
	}
}

func TestFieldsInnerEndMarker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.scanner")
	defer teardown()
	//
	tokens := Tokenize(Fields("b $ a"))
	if len(tokens) != 4 || tokens[1].TokType() != Input || tokens[1].Lexeme() != "$" {
		t.Errorf("Expected inner $ to be an ordinary token, have %v", tokens)
	}
}

func TestGoTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.scanner")
	defer teardown()
	//
	tokens := Tokenize(GoTokenizer("test", strings.NewReader("id+id*(id)")))
	var lexemes []string
	for _, token := range tokens {
		if token.TokType() != EOF {
			lexemes = append(lexemes, token.Lexeme())
		}
	}
	if strings.Join(lexemes, " ") != "id + id * ( id )" {
		t.Errorf("Unexpected tokens %v", lexemes)
	}
	tokens = Tokenize(GoTokenizer("test", strings.NewReader("a b $")))
	if len(tokens) != 3 || tokens[2].Lexeme() != "$" {
		t.Errorf("Expected $ to end input, have %v", tokens)
	}
}

func TestGoTokenizerInnerEndMarker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.scanner")
	defer teardown()
	//
	tokens := Tokenize(GoTokenizer("test", strings.NewReader("id $ + ) $ $")))
	var lexemes []string
	for _, token := range tokens {
		if token.TokType() == Input {
			lexemes = append(lexemes, token.Lexeme())
		}
	}
	if strings.Join(lexemes, " ") != "id $ + ) $" {
		t.Errorf("Expected inner $ to be ordinary tokens, have %v", lexemes)
	}
	last := tokens[len(tokens)-1]
	if last.TokType() != EOF || last.Lexeme() != "$" || last.Span().From() != 11 {
		t.Errorf("Expected trailing $ at 11 to end input, have %q at %v", last.Lexeme(), last.Span())
	}
	if next := Tokenize(GoTokenizer("test", strings.NewReader("$"))); len(next) != 1 || next[0].TokType() != EOF {
		t.Errorf("Expected lone $ to be end of input, have %v", next)
	}
}
