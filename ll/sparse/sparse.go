/*
Package sparse implements a simple type for sparse integer matrices.
It is used for LL(1) parser tables, where rows are non-terminals and columns
are terminals. Every entry in the table is an ordered list of int32 values,
usually holding one rule number. Entries holding more than one value
represent conflicts.

This implementation uses the COO algorithm (a.k.a. triplet-encoding).

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package sparse

import (
	"fmt"
)

// IntMatrix is a type for a spare matrix of integer lists. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Add(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     M.Add(2, 3, 123)               // add a second value
//     vs := M.Values(2, 3)           // returns [4711 123]
//     cnt := M.ValueCount()          // still returns 1 (one position set)
//     v = M.Value(9, 9)              // returns -1, i.e. the null-value
//
// Values cannot be deleted.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

// Triplet values to store
type triplet struct {
	row, col int
	value    []int32
}

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		values:  []triplet{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of positions set in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the primary value at position (i,j), or NullValue
func (m *IntMatrix) Value(i, j int) int32 {
	if t := m.find(i, j); t != nil {
		return t.value[0]
	}
	return m.nullval
}

// Values returns all values at position (i,j) in the order they have been
// added, or nil.
func (m *IntMatrix) Values(i, j int) []int32 {
	if t := m.find(i, j); t != nil {
		return append([]int32(nil), t.value...)
	}
	return nil
}

// Add a value in the matrix at position (i,j). Values already present at
// (i,j) are not added a second time.
func (m *IntMatrix) Add(i, j int, value int32) *IntMatrix {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse.IntMatrix index (%d,%d) out of range %dx%d", i, j, m.rowcnt, m.colcnt))
	}
	at := 0 // will be position of new value
	for k, t := range m.values {
		if !t.storedLeftOf(i, j) { // have skipped all lesser indices
			if t.storedAt(i, j) { // value already present
				m.values[k].value = addIntValue(t.value, value)
				return m // and done
			}
			break // no old value present
		}
		at++
	}
	tnew := triplet{row: i, col: j, value: []int32{value}}
	// the following 3 lines have to work for k being the right edge of v or not
	m.values = append(m.values, tnew)    // make room
	copy(m.values[at+1:], m.values[at:]) // copy remainder values one index to right
	m.values[at] = tnew                  // if not append-case: insert new triplet
	return m
}

// Each calls f for every position set, in row-major order.
func (m *IntMatrix) Each(f func(i, j int, values []int32)) {
	for _, t := range m.values {
		f(t.row, t.col, append([]int32(nil), t.value...))
	}
}

func (m *IntMatrix) find(i, j int) *triplet {
	for k, t := range m.values {
		if !t.storedLeftOf(i, j) { // have skipped all lesser indices
			if t.storedAt(i, j) {
				return &m.values[k]
			}
			break
		}
	}
	return nil
}

func addIntValue(v []int32, n int32) []int32 {
	for _, x := range v {
		if x == n {
			return v
		}
	}
	return append(v, n)
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return (t.row == i && t.col == j)
}

func (t triplet) String() string {
	return fmt.Sprintf("(%d,%d)=%v", t.row, t.col, t.value)
}
