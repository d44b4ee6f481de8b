package notation

import (
	"errors"
	"strings"
	"testing"

	"github.com/Venkata-Vasanth/LL1-Parser/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

const exprLines = `
# expression grammar, left recursive
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`

func Test_Load(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.scanner")
	defer teardown()
	//
	testCases := []struct {
		name      string
		input     string
		expect    string
		malformed []int
		expectErr error
	}{
		{
			name:   "expression grammar",
			input:  exprLines,
			expect: "E -> E + T | T\nT -> T * F | F\nF -> ( E ) | id\n",
		},
		{
			name:   "epsilon and primes",
			input:  "E -> T E'\nE' -> + T E' | ε\nT -> id",
			expect: "E -> T E'\nE' -> + T E' | ε\nT -> id\n",
		},
		{
			name:   "rules for a non-terminal on several lines",
			input:  "S -> a S\nS -> ε",
			expect: "S -> a S | ε\n",
		},
		{
			name:   "no spaces around arrow",
			input:  "S->a-b | -",
			expect: "S -> a-b | -\n",
		},
		{
			name:      "malformed lines are skipped",
			input:     "S -> a B\nB b\nB -> b -> c\nB -> b\nb -> c\nB -> |",
			expect:    "S -> a B\nB -> b\n",
			malformed: []int{2, 3, 5, 6},
		},
		{
			name:      "dangling reference",
			input:     "S -> a B",
			expectErr: ll.ErrDanglingReference,
		},
		{
			name:      "empty grammar",
			input:     "x y z",
			malformed: []int{1},
			expectErr: ll.ErrEmptyGrammar,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			g, malformed, err := LoadString(tc.name, tc.input)

			lines := make([]int, len(malformed))
			for i, m := range malformed {
				lines[i] = m.Line
			}
			if len(tc.malformed) == 0 {
				assert.Empty(lines)
			} else {
				assert.Equal(tc.malformed, lines)
			}
			if tc.expectErr != nil {
				assert.True(errors.Is(err, tc.expectErr), "expected %v, got %v", tc.expectErr, err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, g.String())
		})
	}
}

func Test_LoadClassifiesSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.scanner")
	defer teardown()
	//
	assert := assert.New(t)
	g, _, err := LoadString("G", "S -> A id ε\nA -> Abc")
	if !assert.NoError(err) {
		return
	}
	rhs := g.RulesFor(ll.N("S"))[0].RHS()
	assert.Equal([]ll.Symbol{ll.N("A"), ll.T("id")}, rhs)
	assert.Equal([]ll.Symbol{ll.T("Abc")}, g.RulesFor(ll.N("A"))[0].RHS())
	assert.Equal(ll.N("S"), g.Start())
}

func Test_MalformedLineMessage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.scanner")
	defer teardown()
	//
	_, malformed, _ := LoadString("G", "S -> a\nS => b")
	if assert.Len(t, malformed, 1) {
		assert.Contains(t, malformed[0].Error(), "line 2")
		assert.Contains(t, malformed[0].Error(), "'->'")
	}
}

func Test_ParseDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.scanner")
	defer teardown()
	//
	testCases := []struct {
		name      string
		doc       string
		expect    string
		expectErr bool
	}{
		{
			name: "JSON document",
			doc: `{"E": [["T", "E'"]], "E'": [["+", "T", "E'"], ["ε"]],
			       "T": [["F", "T'"]], "T'": [["*", "F", "T'"], ["ε"]],
			       "F": [["(", "E", ")"], ["id"]]}`,
			expect: "E -> T E'\nE' -> + T E' | ε\nT -> F T'\nT' -> * F T' | ε\nF -> ( E ) | id\n",
		},
		{
			name:   "YAML with string productions",
			doc:    "S:\n  - a S b\n  - []\n",
			expect: "S -> a S b | ε\n",
		},
		{
			name:   "key order defines the start symbol",
			doc:    `{"B": [["b"]], "A": [["B", "a"]]}`,
			expect: "B -> b\nA -> B a\n",
		},
		{
			name:      "not a mapping",
			doc:       `[["a"]]`,
			expectErr: true,
		},
		{
			name:      "terminal as key",
			doc:       `{"x": [["a"]]}`,
			expectErr: true,
		},
		{
			name:      "end marker in production",
			doc:       `{"S": [["a", "$"]]}`,
			expectErr: true,
		},
		{
			name:      "dangling reference",
			doc:       `{"S": [["a", "B"]]}`,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			g, err := LoadDocument(tc.name, strings.NewReader(tc.doc))
			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, g.String())
		})
	}
}
