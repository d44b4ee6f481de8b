package ll

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// SymbolSet is an ordered set of grammar symbols. FIRST- and FOLLOW-sets are
// symbol sets. Iteration order is deterministic: terminals in lexical order,
// then $, then ε.
type SymbolSet struct {
	set *treeset.Set
}

// NewSymbolSet creates a set, optionally pre-filled with symbols.
func NewSymbolSet(syms ...Symbol) *SymbolSet {
	S := &SymbolSet{set: treeset.NewWith(symbolComparator)}
	for _, A := range syms {
		S.set.Add(A)
	}
	return S
}

// Add adds a symbol and reports whether the set has changed.
func (S *SymbolSet) Add(A Symbol) bool {
	if S.set.Contains(A) {
		return false
	}
	S.set.Add(A)
	return true
}

// Union adds all symbols of T to S and reports whether S has changed.
// A nil T is treated as the empty set.
func (S *SymbolSet) Union(T *SymbolSet) bool {
	if T == nil {
		return false
	}
	changed := false
	for _, x := range T.set.Values() {
		if S.Add(x.(Symbol)) {
			changed = true
		}
	}
	return changed
}

// UnionWithoutEpsilon adds all symbols of T except ε to S and reports whether
// S has changed.
func (S *SymbolSet) UnionWithoutEpsilon(T *SymbolSet) bool {
	if T == nil {
		return false
	}
	changed := false
	for _, x := range T.set.Values() {
		if A := x.(Symbol); !A.IsEpsilon() && S.Add(A) {
			changed = true
		}
	}
	return changed
}

// Remove deletes a symbol from the set.
func (S *SymbolSet) Remove(A Symbol) {
	S.set.Remove(A)
}

// Contains checks for membership of a symbol. A nil set contains nothing.
func (S *SymbolSet) Contains(A Symbol) bool {
	if S == nil {
		return false
	}
	return S.set.Contains(A)
}

// HasEpsilon is a shortcut for Contains(Epsilon).
func (S *SymbolSet) HasEpsilon() bool {
	return S.Contains(Epsilon)
}

// Size returns the number of symbols in the set.
func (S *SymbolSet) Size() int {
	if S == nil {
		return 0
	}
	return S.set.Size()
}

// Empty is true for empty (or nil) sets.
func (S *SymbolSet) Empty() bool {
	return S.Size() == 0
}

// Symbols returns the members of the set in order.
func (S *SymbolSet) Symbols() []Symbol {
	if S == nil {
		return nil
	}
	syms := make([]Symbol, 0, S.set.Size())
	for _, x := range S.set.Values() {
		syms = append(syms, x.(Symbol))
	}
	return syms
}

// Copy returns an independent copy of S.
func (S *SymbolSet) Copy() *SymbolSet {
	C := NewSymbolSet()
	C.Union(S)
	return C
}

// Equals compares two sets member-wise.
func (S *SymbolSet) Equals(T *SymbolSet) bool {
	if S.Size() != T.Size() {
		return false
	}
	for _, A := range S.Symbols() {
		if !T.Contains(A) {
			return false
		}
	}
	return true
}

func (S *SymbolSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, A := range S.Symbols() {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(A.Name)
	}
	b.WriteString(" }")
	return b.String()
}
