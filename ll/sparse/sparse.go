/*
Package sparse implements a sparse matrix of small integer values, used for
LL(1) decision tables. Every entry is either a single int32 or a pair
(int32,int32); a pair records two competing entries at one position.

Entries are stored as triplets (row, column, value), sorted in row-major order
(COO encoding).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// IntMatrix is a sparse m x n matrix of int32 values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     M.Add(2, 3, 123)               // add a second value
//     cnt := M.ValueCount()          // still returns 1 (one position set)
//     v = M.Value(9, 9)              // returns -1, i.e. the null-value
//
// A position holds at most two values. Positions cannot be deleted.
type IntMatrix struct {
	entries []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

type triplet struct {
	row, col int
	a, b     int32
}

// NewIntMatrix creates a matrix of size m x n. nullValue marks empty entries.
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value.
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of positions set.
func (m *IntMatrix) ValueCount() int {
	return len(m.entries)
}

// search returns the index of the first entry not stored left of (i,j).
func (m *IntMatrix) search(i, j int) int {
	return sort.Search(len(m.entries), func(k int) bool {
		e := m.entries[k]
		return e.row > i || e.row == i && e.col >= j
	})
}

func (m *IntMatrix) find(i, j int) (int, bool) {
	k := m.search(i, j)
	return k, k < len(m.entries) && m.entries[k].row == i && m.entries[k].col == j
}

// Value returns the primary value at position (i,j), or NullValue.
func (m *IntMatrix) Value(i, j int) int32 {
	a, _ := m.Values(i, j)
	return a
}

// Values returns the pair of values at position (i,j), or (NullValue, NullValue).
func (m *IntMatrix) Values(i, j int) (int32, int32) {
	if k, ok := m.find(i, j); ok {
		return m.entries[k].a, m.entries[k].b
	}
	return m.nullval, m.nullval
}

// Set a value at position (i,j), replacing all values present.
// Set panics if (i,j) is outside of the matrix.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	return m.setOrAdd(i, j, value, false)
}

// Add a value at position (i,j). If the position already holds two values, the
// second one is overwritten.
// Add panics if (i,j) is outside of the matrix.
func (m *IntMatrix) Add(i, j int, value int32) *IntMatrix {
	return m.setOrAdd(i, j, value, true)
}

func (m *IntMatrix) setOrAdd(i, j int, value int32, add bool) *IntMatrix {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse: position (%d,%d) outside of %d x %d matrix", i, j, m.rowcnt, m.colcnt))
	}
	k, ok := m.find(i, j)
	if ok {
		e := &m.entries[k]
		switch {
		case !add || e.a == m.nullval:
			e.a, e.b = value, m.nullval
		default:
			e.b = value
		}
		return m
	}
	m.entries = append(m.entries, triplet{})
	copy(m.entries[k+1:], m.entries[k:])
	m.entries[k] = triplet{row: i, col: j, a: value, b: m.nullval}
	return m
}

// Each calls f for every position set, in row-major order.
func (m *IntMatrix) Each(f func(i, j int, a, b int32)) {
	for _, e := range m.entries {
		f(e.row, e.col, e.a, e.b)
	}
}

// Row returns the positions set in row i as a slice of column indices.
func (m *IntMatrix) Row(i int) []int {
	var cols []int
	for k := m.search(i, 0); k < len(m.entries) && m.entries[k].row == i; k++ {
		cols = append(cols, m.entries[k].col)
	}
	return cols
}
