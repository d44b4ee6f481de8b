package ll

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// --- Rules -----------------------------------------------------------------

// Rule is a type for productions of a grammar. The right hand side is
// a non-empty sequence of symbols; epsilon-rules have [ε] as their RHS.
type Rule struct {
	Serial int    // order number of this rule within a grammar
	LHS    Symbol // symbol of left hand side
	rhs    []Symbol
}

func newRule(serial int, lhs Symbol, rhs []Symbol) *Rule {
	r := &Rule{Serial: serial, LHS: lhs}
	for _, A := range rhs {
		if !A.IsEpsilon() {
			r.rhs = append(r.rhs, A)
		}
	}
	if len(r.rhs) == 0 {
		r.rhs = []Symbol{Epsilon}
	}
	return r
}

// RHS returns a copy of the right hand side of a rule.
func (r *Rule) RHS() []Symbol {
	return append([]Symbol(nil), r.rhs...)
}

// Len returns the number of symbols on the right hand side, where an
// epsilon-rule has length 0.
func (r *Rule) Len() int {
	if r.IsEpsilon() {
		return 0
	}
	return len(r.rhs)
}

// IsEpsilon is true for rules A -> ε.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 1 && r.rhs[0].IsEpsilon()
}

// IsLeftRecursive is true for rules A -> A α.
func (r *Rule) IsLeftRecursive() bool {
	return r.rhs[0] == r.LHS
}

// Hash returns a structural fingerprint of a rule. Rules with equal LHS and
// RHS have equal hashes, regardless of their serial number.
func (r *Rule) Hash() string {
	h, err := structhash.Hash(shapeOf(r), 1)
	if err != nil {
		panic(fmt.Sprintf("cannot hash rule %v: %v", r, err))
	}
	return h
}

// Equals compares two rules by their LHS and RHS.
func (r *Rule) Equals(other *Rule) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Hash() == other.Hash()
}

func (r *Rule) String() string {
	return fmt.Sprintf("[%s] ::= %v", r.LHS, r.rhs)
}

// RHSString returns the right hand side in grammar notation ("T E'").
func (r *Rule) RHSString() string {
	syms := make([]string, len(r.rhs))
	for i, A := range r.rhs {
		syms[i] = A.Name
	}
	return strings.Join(syms, " ")
}

// ruleShape is the hashable shape of a rule.
type ruleShape struct {
	LHS string
	RHS []string
}

func shapeOf(r *Rule) ruleShape {
	sh := ruleShape{LHS: r.LHS.Name, RHS: make([]string, len(r.rhs))}
	for i, A := range r.rhs {
		sh.RHS[i] = A.Kind.String() + ":" + A.Name
	}
	return sh
}

// --- Grammars --------------------------------------------------------------

// Grammar is a type for a context-free grammar. Grammars are created with a
// GrammarBuilder and are immutable afterwards. The first non-terminal
// receiving rules is the start symbol.
type Grammar struct {
	Name      string
	rules     []*Rule
	nonterms  *linkedhashmap.Map // non-terminal name -> []*Rule, in insertion order
	terminals []Symbol           // in order of first appearance
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:     name,
		rules:    make([]*Rule, 0, 16),
		nonterms: linkedhashmap.New(),
	}
}

// declare makes a non-terminal known to the grammar, without adding rules.
func (g *Grammar) declare(A Symbol) {
	if _, found := g.nonterms.Get(A.Name); !found {
		g.nonterms.Put(A.Name, []*Rule{})
	}
}

// addRule appends a rule to the grammar. Duplicate rules are dropped.
// It returns the new rule, or the already present equal one.
func (g *Grammar) addRule(lhs Symbol, rhs []Symbol) *Rule {
	r := newRule(len(g.rules), lhs, rhs)
	g.declare(lhs)
	rules := g.RulesFor(lhs)
	for _, old := range rules {
		if old.Equals(r) {
			tracer().Infof("dropping duplicate rule %v", r)
			return old
		}
	}
	g.nonterms.Put(lhs.Name, append(rules, r))
	g.rules = append(g.rules, r)
	for _, A := range r.rhs {
		if A.Kind == TerminalSymbol && !g.hasTerminal(A) {
			g.terminals = append(g.terminals, A)
		}
	}
	return r
}

func (g *Grammar) hasTerminal(A Symbol) bool {
	for _, t := range g.terminals {
		if t == A {
			return true
		}
	}
	return false
}

// Start returns the start symbol of the grammar.
func (g *Grammar) Start() Symbol {
	keys := g.nonterms.Keys()
	if len(keys) == 0 {
		return Symbol{}
	}
	return N(keys[0].(string))
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule gets a grammar rule by serial number.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// Rules returns all rules in serial order.
func (g *Grammar) Rules() []*Rule {
	return append([]*Rule(nil), g.rules...)
}

// RulesFor returns the rules for non-terminal A, in order.
func (g *Grammar) RulesFor(A Symbol) []*Rule {
	if !A.IsNonTerminal() {
		return nil
	}
	if rules, found := g.nonterms.Get(A.Name); found {
		return rules.([]*Rule)
	}
	return nil
}

// HasNonTerminal checks if A is a non-terminal of g.
func (g *Grammar) HasNonTerminal(A Symbol) bool {
	if !A.IsNonTerminal() {
		return false
	}
	_, found := g.nonterms.Get(A.Name)
	return found
}

// NonTerminals returns all non-terminals, the start symbol first.
func (g *Grammar) NonTerminals() []Symbol {
	keys := g.nonterms.Keys()
	syms := make([]Symbol, len(keys))
	for i, k := range keys {
		syms[i] = N(k.(string))
	}
	return syms
}

// Terminals returns all terminals in order of first appearance.
func (g *Grammar) Terminals() []Symbol {
	return append([]Symbol(nil), g.terminals...)
}

// EachNonTerminal iterates over all non-terminals of the grammar, calling a
// mapper function for each. It returns the results of the mapper calls.
func (g *Grammar) EachNonTerminal(mapper func(A Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.NonTerminals() {
		r = append(r, mapper(A))
	}
	return r
}

// Fingerprint returns a structural hash over all rules of the grammar, in
// order. The name of the grammar and rule serials do not contribute.
func (g *Grammar) Fingerprint() string {
	shapes := make([]ruleShape, len(g.rules))
	for i, r := range g.rules {
		shapes[i] = shapeOf(r)
	}
	h, err := structhash.Hash(struct{ Rules []ruleShape }{shapes}, 1)
	if err != nil {
		panic(fmt.Sprintf("cannot hash grammar %q: %v", g.Name, err))
	}
	return h
}

// validate checks that every non-terminal referenced on a right hand side
// has rules of its own.
func (g *Grammar) validate() error {
	if len(g.rules) == 0 {
		return fmt.Errorf("grammar %q: %w", g.Name, ErrEmptyGrammar)
	}
	for _, A := range g.NonTerminals() {
		if len(g.RulesFor(A)) == 0 {
			return fmt.Errorf("grammar %q, %s has no rules: %w", g.Name, A, ErrDanglingReference)
		}
	}
	for _, r := range g.rules {
		for _, A := range r.rhs {
			if A.IsEndMarker() {
				return fmt.Errorf("grammar %q, rule %v: %w", g.Name, r, ErrReservedSymbol)
			}
			if A.IsNonTerminal() && len(g.RulesFor(A)) == 0 {
				return fmt.Errorf("grammar %q, rule %v references %s: %w",
					g.Name, r, A, ErrDanglingReference)
			}
		}
	}
	return nil
}

// Dump is a debugging helper, tracing all the rules of a grammar.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("#Terminals = %d", len(g.terminals))
	tracer().Debugf("#NonTerminals = %d", g.nonterms.Size())
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r.String())
	}
	tracer().Debugf("-------------------------------------------------------")
}

// String returns the grammar in line notation, one line per non-terminal.
func (g *Grammar) String() string {
	var b strings.Builder
	for _, A := range g.NonTerminals() {
		b.WriteString(A.Name)
		b.WriteString(" -> ")
		for i, r := range g.RulesFor(A) {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(r.RHSString())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is a builder type to construct grammars. Create one with
// NewGrammarBuilder(name) and add rules with LHS(…).
type GrammarBuilder struct {
	g *Grammar
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar
// to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{g: newGrammar(gname)}
}

// RuleBuilder is a builder type for rules. Clients do not create them
// directly, but call GrammarBuilder.LHS(…).
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs Symbol
	rhs []Symbol
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	rb := &RuleBuilder{gb: gb, lhs: N(name)}
	gb.g.declare(rb.lhs)
	return rb
}

// N appends a non-terminal to the builder.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, N(name))
	return rb
}

// T appends a terminal to the builder.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, T(name))
	return rb
}

// Sym appends an arbitrary symbol to the builder. ε is ignored unless it is
// the only symbol of the rule.
func (rb *RuleBuilder) Sym(A Symbol) *RuleBuilder {
	rb.rhs = append(rb.rhs, A)
	return rb
}

// Epsilon sets ε as the RHS of a rule and ends the rule.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rhs = nil
	return rb.End()
}

// End ends a rule. A rule without RHS symbols is an epsilon-rule.
func (rb *RuleBuilder) End() *Rule {
	r := rb.gb.g.addRule(rb.lhs, rb.rhs)
	tracer().Debugf("adding rule %v", r)
	return r
}

// Grammar returns the grammar constructed by the builder. It is an error to
// reference a non-terminal which never received a rule.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if err := gb.g.validate(); err != nil {
		return nil, err
	}
	return gb.g, nil
}
