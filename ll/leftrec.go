package ll

import "fmt"

// AuxiliaryMark is appended to the name of a non-terminal A to form the
// auxiliary non-terminal A' introduced by removing left recursion from A.
const AuxiliaryMark = "'"

// EliminateLeftRecursion removes immediate left recursion from every
// non-terminal of a grammar. The rules of each non-terminal A are
// partitioned into left recursive ones (A -> A α) and others (A -> β).
// If there are any left recursive rules, A is rewritten as
//
//     A  -> β A'
//     A' -> α A' | ε
//
// A new grammar is returned, g itself is not modified. A' is inserted right
// after A, so the start symbol does not change. Rules A -> A are cycles not
// contributing to the language and are dropped.
//
// Indirect left recursion (A -> B …, B -> A …) is neither detected nor
// removed.
//
// Errors returned wrap ErrAuxiliaryCollision, if A' is already in use, or
// ErrDegenerateRecursion, if A has no rules other than left recursive ones.
// Structural errors of g (see errors.go) are reported first.
func EliminateLeftRecursion(g *Grammar) (*Grammar, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	gnew := newGrammar(g.Name)
	for _, A := range g.NonTerminals() {
		var alphas, betas []*Rule
		for _, r := range g.RulesFor(A) {
			if r.IsLeftRecursive() {
				if r.Len() == 1 {
					tracer().Infof("dropping cyclic rule %v", r)
					continue
				}
				alphas = append(alphas, r)
			} else {
				betas = append(betas, r)
			}
		}
		if len(alphas) == 0 {
			if len(betas) == 0 {
				return nil, fmt.Errorf("grammar %q, %s: %w", g.Name, A, ErrDegenerateRecursion)
			}
			for _, r := range betas {
				gnew.addRule(A, r.rhs)
			}
			continue
		}
		if len(betas) == 0 {
			return nil, fmt.Errorf("grammar %q, %s: %w", g.Name, A, ErrDegenerateRecursion)
		}
		aux := N(A.Name + AuxiliaryMark)
		if g.HasNonTerminal(aux) || gnew.HasNonTerminal(aux) {
			return nil, fmt.Errorf("grammar %q, %s for %s: %w", g.Name, aux, A, ErrAuxiliaryCollision)
		}
		tracer().Debugf("removing left recursion from %s, introducing %s", A, aux)
		for _, r := range betas {
			gnew.addRule(A, appendSymbol(r.rhs, aux))
		}
		for _, r := range alphas {
			gnew.addRule(aux, appendSymbol(r.rhs[1:], aux))
		}
		gnew.addRule(aux, []Symbol{Epsilon})
	}
	return gnew, nil
}

// HasLeftRecursion reports whether any rule of g is immediately left recursive.
func HasLeftRecursion(g *Grammar) bool {
	for _, r := range g.rules {
		if r.IsLeftRecursive() {
			return true
		}
	}
	return false
}

// appendSymbol returns β A', where an epsilon β yields A' alone.
func appendSymbol(rhs []Symbol, A Symbol) []Symbol {
	seq := make([]Symbol, 0, len(rhs)+1)
	for _, X := range rhs {
		if !X.IsEpsilon() {
			seq = append(seq, X)
		}
	}
	return append(seq, A)
}
