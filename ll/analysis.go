package ll

// === Grammar Analysis ======================================================

// LLAnalysis is an object for grammar analysis (compute FIRST and FOLLOW sets).
// It holds the left-recursion free version of a grammar and the sets computed
// for it. Create one with Analysis(g); its content is read-only afterwards.
type LLAnalysis struct {
	original *Grammar
	g        *Grammar
	first    map[string]*SymbolSet
	follow   map[string]*SymbolSet
}

// Analysis creates an analysis object for a grammar. First immediate left
// recursion is removed (see EliminateLeftRecursion), then FIRST and FOLLOW
// sets are computed for the normalized grammar.
//
// Structural errors of the grammar (see errors.go) abort the analysis.
func Analysis(g *Grammar) (*LLAnalysis, error) {
	normalized, err := EliminateLeftRecursion(g) // validates g
	if err != nil {
		return nil, err
	}
	ga := &LLAnalysis{original: g, g: normalized}
	ga.first = computeFirstSets(normalized)
	ga.follow = computeFollowSets(normalized, ga.first)
	tracer().Infof("analysed grammar %q: %d rules, %d non-terminals",
		g.Name, normalized.Size(), len(ga.first))
	return ga, nil
}

// Grammar returns the normalized (left-recursion free) grammar.
func (ga *LLAnalysis) Grammar() *Grammar {
	return ga.g
}

// Original returns the grammar the analysis has been created for.
func (ga *LLAnalysis) Original() *Grammar {
	return ga.original
}

// First returns FIRST(A) for a non-terminal A. For terminals, ε and $ it
// returns the set containing just that symbol. The result must not be
// modified.
func (ga *LLAnalysis) First(A Symbol) *SymbolSet {
	if !A.IsNonTerminal() {
		return NewSymbolSet(A)
	}
	if S, ok := ga.first[A.Name]; ok {
		return S
	}
	return NewSymbolSet()
}

// Follow returns FOLLOW(A) for a non-terminal A. The result must not be
// modified.
func (ga *LLAnalysis) Follow(A Symbol) *SymbolSet {
	if S, ok := ga.follow[A.Name]; ok && A.IsNonTerminal() {
		return S
	}
	return NewSymbolSet()
}

// Nullable is true if A is able to derive the empty string.
func (ga *LLAnalysis) Nullable(A Symbol) bool {
	return ga.First(A).HasEpsilon()
}

// FirstOf returns FIRST(X1 … Xn) of a sequence of symbols. The result contains
// ε iff every symbol of the sequence is nullable.
func (ga *LLAnalysis) FirstOf(seq []Symbol) *SymbolSet {
	return firstOfSequence(seq, ga.first)
}

// --- FIRST sets ------------------------------------------------------------

// computeFirstSets iterates over all rules until no FIRST set changes during
// a full pass. Sets are updated in place.
func computeFirstSets(g *Grammar) map[string]*SymbolSet {
	first := make(map[string]*SymbolSet)
	for _, A := range g.NonTerminals() {
		first[A.Name] = NewSymbolSet()
	}
	changed, pass := true, 0
	for changed {
		changed = false
		pass++
		for _, r := range g.rules {
			S := first[r.LHS.Name]
			if S.Union(firstOfSequence(r.rhs, first)) {
				changed = true
			}
		}
		tracer().Debugf("FIRST pass %d, changed = %v", pass, changed)
	}
	return first
}

// firstOfSequence returns FIRST of a sequence, given the FIRST sets of
// non-terminals. Missing FIRST sets count as empty. An empty sequence or
// [ε] yields {ε}.
func firstOfSequence(seq []Symbol, first map[string]*SymbolSet) *SymbolSet {
	S := NewSymbolSet()
	for _, X := range seq {
		switch {
		case X.IsEpsilon():
			continue
		case !X.IsNonTerminal():
			S.Add(X)
			return S
		}
		FX := first[X.Name]
		S.UnionWithoutEpsilon(FX)
		if !FX.HasEpsilon() {
			return S
		}
	}
	S.Add(Epsilon) // every symbol is nullable
	return S
}

// --- FOLLOW sets -----------------------------------------------------------

// computeFollowSets iterates over all rules until no FOLLOW set changes
// during a full pass. Every rule is scanned from right to left, carrying a
// trailer of terminals which may follow the current position.
func computeFollowSets(g *Grammar, first map[string]*SymbolSet) map[string]*SymbolSet {
	follow := make(map[string]*SymbolSet)
	for _, A := range g.NonTerminals() {
		follow[A.Name] = NewSymbolSet()
	}
	if start := g.Start(); start.IsNonTerminal() {
		follow[start.Name].Add(EndMarker)
	}
	changed, pass := true, 0
	for changed {
		changed = false
		pass++
		for _, r := range g.rules {
			trailer := NewSymbolSet()
			trailer.Union(follow[r.LHS.Name])
			for i := len(r.rhs) - 1; i >= 0; i-- {
				X := r.rhs[i]
				switch {
				case X.IsEpsilon():
					continue
				case !X.IsNonTerminal():
					trailer = NewSymbolSet(X)
					continue
				}
				FB, ok := follow[X.Name]
				if !ok { // undefined non-terminal, treated as having an empty FOLLOW set
					FB = NewSymbolSet()
					follow[X.Name] = FB
				}
				if FB.Union(trailer) {
					changed = true
				}
				FX := first[X.Name]
				if FX.HasEpsilon() {
					trailer.UnionWithoutEpsilon(FX)
				} else {
					trailer = NewSymbolSet()
					trailer.UnionWithoutEpsilon(FX)
				}
			}
		}
		tracer().Debugf("FOLLOW pass %d, changed = %v", pass, changed)
	}
	return follow
}
