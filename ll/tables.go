package ll

import (
	"fmt"
	"strings"

	"github.com/Venkata-Vasanth/LL1-Parser/ll/sparse"
)

// === Parsing Table =========================================================

// ParsingTable is an LL(1) parsing table M[A,a] for a grammar. Rows are the
// non-terminals, columns are the terminals plus the end marker $. A cell is
// either empty (syntax error), holds a single rule, or holds a conflict of
// several competing rules in the order they have been entered.
//
// A parsing table is the complete context a predictive parser needs: it
// knows the normalized grammar, its start symbol and the analysis it has been
// built from. It is read-only after construction.
type ParsingTable struct {
	ga       *LLAnalysis
	rows     []Symbol
	columns  []Symbol
	rowIndex map[string]int
	colIndex map[Symbol]int
	matrix   *sparse.IntMatrix
}

func newParsingTable(ga *LLAnalysis) *ParsingTable {
	g := ga.Grammar()
	t := &ParsingTable{
		ga:       ga,
		rows:     g.NonTerminals(),
		columns:  append(g.Terminals(), EndMarker),
		rowIndex: make(map[string]int),
		colIndex: make(map[Symbol]int),
	}
	for i, A := range t.rows {
		t.rowIndex[A.Name] = i
	}
	for j, a := range t.columns {
		t.colIndex[a] = j
	}
	t.matrix = sparse.NewIntMatrix(len(t.rows), len(t.columns), sparse.DefaultNullValue)
	return t
}

// Cell is an entry of a parsing table.
type Cell struct {
	NonTerminal Symbol
	Terminal    Symbol
	Rules       []*Rule // empty, a single rule, or conflicting rules
}

// IsEmpty is true for cells without a rule.
func (c Cell) IsEmpty() bool {
	return len(c.Rules) == 0
}

// IsConflict is true for multiply defined cells.
func (c Cell) IsConflict() bool {
	return len(c.Rules) > 1
}

// Rule returns the rule of a cell, if it holds exactly one.
func (c Cell) Rule() *Rule {
	if len(c.Rules) != 1 {
		return nil
	}
	return c.Rules[0]
}

func (c Cell) String() string {
	switch len(c.Rules) {
	case 0:
		return ""
	case 1:
		return c.NonTerminal.Name + " -> " + c.Rules[0].RHSString()
	}
	alts := make([]string, len(c.Rules))
	for i, r := range c.Rules {
		alts[i] = c.NonTerminal.Name + " -> " + r.RHSString()
	}
	return "conflict(" + strings.Join(alts, " / ") + ")"
}

// Analysis returns the grammar analysis the table has been built from.
func (t *ParsingTable) Analysis() *LLAnalysis {
	return t.ga
}

// Grammar returns the (normalized) grammar of the table.
func (t *ParsingTable) Grammar() *Grammar {
	return t.ga.Grammar()
}

// Start returns the start symbol of the grammar.
func (t *ParsingTable) Start() Symbol {
	return t.ga.Grammar().Start()
}

// Rows returns the non-terminals labelling the rows of the table.
func (t *ParsingTable) Rows() []Symbol {
	return append([]Symbol(nil), t.rows...)
}

// Columns returns the terminals labelling the columns of the table, with the
// end marker last.
func (t *ParsingTable) Columns() []Symbol {
	return append([]Symbol(nil), t.columns...)
}

// Cell returns the table entry M[A,a]. Unknown symbols yield an empty cell.
func (t *ParsingTable) Cell(A, a Symbol) Cell {
	c := Cell{NonTerminal: A, Terminal: a}
	i, ok1 := t.rowIndex[A.Name]
	j, ok2 := t.colIndex[a]
	if !A.IsNonTerminal() || !ok1 || !ok2 {
		return c
	}
	for _, no := range t.matrix.Values(i, j) {
		c.Rules = append(c.Rules, t.Grammar().Rule(int(no)))
	}
	return c
}

// Entry is a shortcut for Cell(A, a).Rules.
func (t *ParsingTable) Entry(A, a Symbol) []*Rule {
	return t.Cell(A, a).Rules
}

// Conflicts returns all multiply defined cells, in row-major order.
func (t *ParsingTable) Conflicts() []Cell {
	var conflicts []Cell
	t.matrix.Each(func(i, j int, values []int32) {
		if len(values) > 1 {
			conflicts = append(conflicts, t.Cell(t.rows[i], t.columns[j]))
		}
	})
	return conflicts
}

// IsLL1 is true if no cell of the table is a conflict.
func (t *ParsingTable) IsLL1() bool {
	return len(t.Conflicts()) == 0
}

// Size returns the number of non-empty cells.
func (t *ParsingTable) Size() int {
	return t.matrix.ValueCount()
}

// set tries to enter rule r into cell M[A,a]. It returns false if the cell
// has already been holding a different rule, i.e. on a conflict.
func (t *ParsingTable) set(A, a Symbol, r *Rule) bool {
	i, j := t.rowIndex[A.Name], t.colIndex[a]
	if t.matrix.Value(i, j) == t.matrix.NullValue() {
		t.matrix.Add(i, j, int32(r.Serial))
		return true
	}
	present := t.matrix.Values(i, j)
	t.matrix.Add(i, j, int32(r.Serial))
	for _, no := range present {
		if !t.Grammar().Rule(int(no)).Equals(r) {
			return false
		}
	}
	return true
}

// Dump is a debugging helper, tracing all non-empty cells.
func (t *ParsingTable) Dump() {
	tracer().Debugf("--- LL(1) table for %s -----------------------------", t.Grammar().Name)
	tracer().Debugf("%d x %d cells, %d set", t.matrix.M(), t.matrix.N(), t.matrix.ValueCount())
	for _, A := range t.rows {
		for _, a := range t.columns {
			if c := t.Cell(A, a); !c.IsEmpty() {
				tracer().Debugf("M[%s,%s] = %s", A, a, c)
			}
		}
	}
	tracer().Debugf("-------------------------------------------------------")
}

// === Table Generator =======================================================

// TableGenerator is a generator object to construct LL(1) parsing tables.
// Clients usually create a Grammar G, then an LLAnalysis-object for G,
// and then a table generator. TableGenerator.CreateTable() constructs
// the parsing table for a predictive parser recognizing grammar G.
type TableGenerator struct {
	g            *Grammar
	ga           *LLAnalysis
	table        *ParsingTable
	HasConflicts bool
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
func NewTableGenerator(ga *LLAnalysis) *TableGenerator {
	return &TableGenerator{g: ga.Grammar(), ga: ga}
}

// ParsingTable returns the table. The table has to be built by calling
// CreateTable() previously.
func (gen *TableGenerator) ParsingTable() *ParsingTable {
	if gen.table == nil {
		tracer().P("ll", "gen").Errorf("table not yet initialized")
	}
	return gen.table
}

// CreateTable builds the LL(1) parsing table. For every rule A -> α and
// every terminal a in FIRST(α), α is entered into M[A,a]. If α is nullable,
// α is entered into M[A,b] for every b in FOLLOW(A), including $.
//
// Cells receiving different rules are kept as conflicts; HasConflicts is
// set for them. Conflicts never abort table construction.
func (gen *TableGenerator) CreateTable() *ParsingTable {
	tracer().Debugf("=== build LL(1) table ===========================================")
	gen.table = newParsingTable(gen.ga)
	gen.HasConflicts = false
	for _, r := range gen.g.Rules() {
		F := gen.ga.FirstOf(r.rhs)
		tracer().Debugf("FIRST(%s) = %v", r.RHSString(), F)
		for _, a := range F.Symbols() {
			if !a.IsEpsilon() {
				gen.enter(r.LHS, a, r)
			}
		}
		if F.HasEpsilon() {
			for _, b := range gen.ga.Follow(r.LHS).Symbols() {
				gen.enter(r.LHS, b, r)
			}
		}
	}
	if gen.HasConflicts {
		tracer().Infof("grammar %q is not LL(1), table has %d conflicts",
			gen.g.Name, len(gen.table.Conflicts()))
	}
	gen.table.Dump()
	return gen.table
}

func (gen *TableGenerator) enter(A, a Symbol, r *Rule) {
	if !gen.table.set(A, a, r) {
		gen.HasConflicts = true
		tracer().Errorf("conflict at M[%s,%s]: %s", A, a, gen.table.Cell(A, a))
		return
	}
	tracer().Debugf("M[%s,%s] = %v", A, a, r)
}

// BuildTable analyses a grammar and creates its LL(1) parsing table in one go.
// Structural errors of the grammar are returned, conflicts are not errors;
// check table.IsLL1().
func BuildTable(g *Grammar) (*ParsingTable, error) {
	ga, err := Analysis(g)
	if err != nil {
		return nil, fmt.Errorf("cannot build parsing table: %w", err)
	}
	return NewTableGenerator(ga).CreateTable(), nil
}
