package predictive

import (
	"errors"
	"strings"
	"testing"

	"github.com/Venkata-Vasanth/LL1-Parser/ll"
	"github.com/Venkata-Vasanth/LL1-Parser/ll/notation"
	"github.com/Venkata-Vasanth/LL1-Parser/ll/scanner"
	"github.com/Venkata-Vasanth/LL1-Parser/ll/scanner/lexmach"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildTable(t *testing.T, lines string) *ll.ParsingTable {
	g, malformed, err := notation.LoadString("G", lines)
	if err != nil || len(malformed) > 0 {
		t.Fatalf("cannot load grammar: %v %v", err, malformed)
	}
	table, err := ll.BuildTable(g)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

const exprGrammar = `
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`

func TestParseExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	table := buildTable(t, exprGrammar)
	p := NewParser(table)
	res, err := p.Parse(scanner.Fields("id + id * id $"))
	if err != nil {
		t.Fatalf("expected input to be accepted, got %v", err)
	}
	if !res.Accepted || res.Err != nil {
		t.Fatalf("expected input to be accepted")
	}
	res.Dump()
	steps := res.Steps()
	if len(steps) != 17 {
		t.Errorf("expected 17 steps, have %d", len(steps))
	}
	last, ok := res.Last()
	if !ok || last.Action.Kind != MatchAction || last.Action.Symbol != ll.EndMarker {
		t.Errorf("expected last step to match $, is %v", last)
	}
	first := steps[0]
	if first.StackString() != "$ E" || first.InputString() != "id + id * id $" {
		t.Errorf("unexpected first step %v", first)
	}
	if first.Action.Kind != ExpandAction || first.Action.Rule.RHSString() != "T E'" {
		t.Errorf("expected first step to expand E -> T E', is %v", first.Action)
	}
	if steps[1].Stack[0] != ll.N("T") || len(steps[1].Stack) != 3 {
		t.Errorf("expected T on top of stack after first expansion, stack is %v", steps[1].Stack)
	}
	deriv := res.Derivation()
	expect := []string{"T E'", "F T'", "id", "ε", "+ T E'", "F T'", "id", "* F T'", "id", "ε", "ε"}
	if len(deriv) != len(expect) {
		t.Fatalf("expected derivation of length %d, have %d", len(expect), len(deriv))
	}
	for i, r := range deriv {
		if r.RHSString() != expect[i] {
			t.Errorf("expected rule #%d of derivation to be %s, is %v", i, expect[i], r)
		}
	}
}

func TestParseSimpleRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	table := buildTable(t, "A -> A a | b")
	res := ParseString(table, "b a a $")
	if !res.Accepted {
		t.Fatalf("expected 'b a a' to be accepted, got %v", res.Err)
	}
	if len(res.Steps()) != 8 {
		t.Errorf("expected 8 steps, have %d", len(res.Steps()))
	}
	if r := res.Derivation()[0]; r.LHS != ll.N("A") || r.RHSString() != "b A'" {
		t.Errorf("expected first expansion to be A -> b A', is %v", r)
	}
}

func TestParseConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	table := buildTable(t, "S -> a A | a B\nA -> x\nB -> y")
	if table.IsLL1() {
		t.Fatalf("expected grammar to have a conflict")
	}
	res := ParseString(table, "a x")
	if res.Accepted {
		t.Fatalf("expected input to be rejected at conflict")
	}
	if res.Err.Reason != Conflict || len(res.Err.Candidates) != 2 {
		t.Errorf("expected conflict with 2 candidates, have %v", res.Err)
	}
	if res.Err.Top != ll.N("S") || res.Err.Token != "a" {
		t.Errorf("expected conflict at (S,a), have (%v,%s)", res.Err.Top, res.Err.Token)
	}
	if res.Err.At.From() != 0 || res.Err.At.To() != 1 || !strings.HasSuffix(res.Err.Error(), "at (0…1)") {
		t.Errorf("expected error to name input position (0…1), have %q", res.Err.Error())
	}
	last, _ := res.Last()
	if last.Action.Kind != ErrorAction || len(res.Steps()) != 1 {
		t.Errorf("expected a single error step, have %v", res.Steps())
	}
}

func TestParseReject(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	table := buildTable(t, exprGrammar)
	for _, x := range []struct {
		input  string
		reason Reason
		top    ll.Symbol
		token  string
	}{
		{"id + $", NoRule, ll.N("T"), "$"},
		{"id +", NoRule, ll.N("T"), "$"},
		{"id id", NoRule, ll.N("T'"), "id"},
		{"( id", Mismatch, ll.T(")"), "$"},
		{"id $ + id", NoRule, ll.N("T'"), "$"},
		{"id ) $", TrailingInput, ll.EndMarker, ")"},
		{"", NoRule, ll.N("E"), "$"},
	} {
		res := ParseString(table, x.input)
		if res.Accepted {
			t.Errorf("expected %q to be rejected", x.input)
			continue
		}
		if res.Err.Reason != x.reason || res.Err.Top != x.top || res.Err.Token != x.token {
			t.Errorf("%q: expected %s at (%v,%s), have %v", x.input, x.reason, x.top, x.token, res.Err)
		}
	}
}

func TestParseTrailingInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	table := buildTable(t, "S -> a")
	res, err := NewParser(table).Parse(scanner.Fields("a a $"))
	if res.Accepted || err == nil {
		t.Fatalf("expected input to be rejected")
	}
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Reason != TrailingInput || perr.Top != ll.EndMarker {
		t.Errorf("expected trailing input error, have %v", err)
	}
	res = ParseString(table, "a b")
	if res.Accepted || res.Err.Reason != TrailingInput || res.Err.Token != "b" {
		t.Errorf("expected trailing input error, have %v", res.Err)
	}
}

func TestParseIterationCap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	table := buildTable(t, exprGrammar)
	p := NewParser(table, IterationCap(3))
	res, err := p.Parse(scanner.Fields("id $"))
	if res.Accepted {
		t.Fatalf("expected parser to stop at iteration cap")
	}
	if !errors.Is(err, ErrNonTermination) {
		t.Errorf("expected non-termination, have %v", err)
	}
	if res.Err.Reason != NonTermination || res.Err.Step != 4 {
		t.Errorf("expected parser to stop at step 4, have %v", res.Err)
	}
	if errors.Is(ParseString(table, "id id").Err, ErrNonTermination) {
		t.Errorf("syntax errors should not match ErrNonTermination")
	}
	p = NewParser(table, IterationCap(0))
	if _, err := p.Parse(scanner.Fields("id $")); err != nil {
		t.Errorf("expected default iteration cap to permit parse, have %v", err)
	}
}

func TestParseLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	table := buildTable(t, "S -> a S b | ε")
	for _, x := range []struct {
		input  string
		accept bool
	}{
		{"", true},
		{"$", true},
		{"a b", true},
		{"a a b b $", true},
		{"a a a b b b", true},
		{"a", false},
		{"b a", false},
		{"a b b", false},
		{"a a b", false},
		{"a $ b", false},
	} {
		res := ParseString(table, x.input)
		if res.Accepted != x.accept {
			t.Errorf("%q: expected accept=%v, have %v (%v)", x.input, x.accept, res.Accepted, res.Err)
		}
		if !res.Accepted && res.Err == nil {
			t.Errorf("%q: rejected input must have an error", x.input)
		}
	}
}

func TestParseGoTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	table := buildTable(t, exprGrammar)
	p := NewParser(table, Tracing(tracing.LevelDebug))
	level := tracer().GetTraceLevel()
	res, err := p.Parse(scanner.GoTokenizer("expr", strings.NewReader("(id+id)*id")))
	if err != nil || !res.Accepted {
		t.Fatalf("expected input to be accepted, have %v", err)
	}
	if tracer().GetTraceLevel() != level {
		t.Errorf("expected trace level to be restored after parse")
	}
}

func TestParseGoTokenizerInnerEndMarker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	table := buildTable(t, exprGrammar)
	res, err := NewParser(table).Parse(scanner.GoTokenizer("expr", strings.NewReader("id $ + + ) id")))
	if err == nil || res.Accepted {
		t.Fatalf("expected input with inner $ to be rejected")
	}
	if res.Err.Reason != NoRule || res.Err.Top != ll.N("T'") || res.Err.Token != "$" {
		t.Errorf("expected no rule for (T',$), have %v", res.Err)
	}
	res, err = NewParser(table).Parse(scanner.GoTokenizer("expr", strings.NewReader("id+id $")))
	if err != nil || !res.Accepted {
		t.Errorf("expected input with trailing $ to be accepted, have %v", err)
	}
}

func TestParseUnmatchedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	table := buildTable(t, exprGrammar)
	var terminals []string
	for _, a := range table.Grammar().Terminals() {
		terminals = append(terminals, a.Name)
	}
	LM, err := lexmach.TerminalsAdapter(terminals)
	if err != nil {
		t.Fatal(err)
	}
	scan, err := LM.Scanner("id # + @ id")
	if err != nil {
		t.Fatal(err)
	}
	scan.SetErrorHandler(func(error) {})
	res, err := NewParser(table).Parse(scan)
	if err == nil || res.Accepted {
		t.Fatalf("expected input with unmatched text to be rejected")
	}
	if res.Err.Token != "#" || res.Err.At.From() != 3 {
		t.Errorf("expected parser to stop at '#', have %v", res.Err)
	}
}

func TestParserNotInitialized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	if _, err := NewParser(nil).Parse(scanner.Fields("a")); err == nil {
		t.Errorf("expected parser without table to fail")
	}
	if res := ParseString(nil, "a"); res.Accepted || res.Err == nil || res.Err.Reason != Uninitialized {
		t.Errorf("expected parse without table to be rejected as uninitialized, have %v", res.Err)
	}
}
