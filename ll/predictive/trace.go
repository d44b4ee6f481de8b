package predictive

import (
	"fmt"
	"strings"

	"github.com/Venkata-Vasanth/LL1-Parser/ll"
	"github.com/emirpasic/gods/lists/arraylist"
)

// ActionKind is the kind of transition the parser performed in a step.
type ActionKind int

// Kinds of parser actions.
const (
	MatchAction  ActionKind = iota // pop a terminal and consume input
	ExpandAction                   // replace a non-terminal by a right hand side
	ErrorAction                    // no transition applies
)

func (k ActionKind) String() string {
	switch k {
	case MatchAction:
		return "match"
	case ExpandAction:
		return "expand"
	}
	return "error"
}

// Action is what the parser did in a step.
type Action struct {
	Kind   ActionKind
	Symbol ll.Symbol // matched terminal or expanded non-terminal
	Rule   *ll.Rule  // rule used for an expansion
	Err    *ParseError
}

func (a Action) String() string {
	switch a.Kind {
	case MatchAction:
		return "match " + a.Symbol.String()
	case ExpandAction:
		return fmt.Sprintf("expand %s -> %s", a.Rule.LHS, a.Rule.RHSString())
	}
	if a.Err != nil {
		return "error: " + a.Err.Error()
	}
	return "error"
}

// Step is an entry of a parser trace.
type Step struct {
	No     int
	Stack  []ll.Symbol // stack before the action, top first
	Input  []string    // remaining input before the action, ending with "$"
	Action Action
}

// StackString returns the stack in conventional notation, bottom to the left.
func (s Step) StackString() string {
	syms := make([]string, len(s.Stack))
	for i, A := range s.Stack {
		syms[len(s.Stack)-1-i] = A.Name
	}
	return strings.Join(syms, " ")
}

// InputString returns the remaining input.
func (s Step) InputString() string {
	return strings.Join(s.Input, " ")
}

func (s Step) String() string {
	return fmt.Sprintf("%3d | %s | %s | %s", s.No, s.StackString(), s.InputString(), s.Action)
}

// Result is the outcome of a parse: the verdict and the trace of steps.
type Result struct {
	Accepted bool
	Err      *ParseError // reason for rejection, nil if accepted
	trace    *arraylist.List
}

func newResult() *Result {
	return &Result{trace: arraylist.New()}
}

func (res *Result) record(step Step) {
	res.trace.Add(step)
}

// Steps returns the trace of parser steps.
func (res *Result) Steps() []Step {
	steps := make([]Step, 0, res.trace.Size())
	it := res.trace.Iterator()
	for it.Next() {
		steps = append(steps, it.Value().(Step))
	}
	return steps
}

// Last returns the final step of the trace.
func (res *Result) Last() (Step, bool) {
	v, ok := res.trace.Get(res.trace.Size() - 1)
	if !ok {
		return Step{}, false
	}
	return v.(Step), true
}

// Derivation returns the rules applied, in order. For accepted input this is
// the leftmost derivation of the input.
func (res *Result) Derivation() []*ll.Rule {
	var rules []*ll.Rule
	it := res.trace.Iterator()
	for it.Next() {
		if step := it.Value().(Step); step.Action.Kind == ExpandAction {
			rules = append(rules, step.Action.Rule)
		}
	}
	return rules
}

// Dump is a debugging helper, tracing all the steps of a parse.
func (res *Result) Dump() {
	it := res.trace.Iterator()
	for it.Next() {
		tracer().Debugf("%v", it.Value())
	}
	if res.Accepted {
		tracer().Debugf("input accepted")
	} else {
		tracer().Debugf("input rejected: %v", res.Err)
	}
}
