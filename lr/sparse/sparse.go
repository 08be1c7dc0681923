/*
Package sparse implements a sparse integer matrix, used by this module for
lr.GotoMatrix's state x symbol debug view of the GOTO table. The GOTO table
itself is held in a map and written to disk from that map, not from this
matrix.

This implementation uses the COO algorithm (a.k.a. triplet encoding).

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package sparse

import "fmt"

// IntMatrix is a sparse m x n matrix of int32. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Values cannot be deleted, but may be overwritten with the null-value.
// Space for null-values is not reclaimed.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

type triplet struct {
	row, col int
	value    int32
}

// DefaultNullValue is the conventional empty-cell marker (min int32).
const DefaultNullValue = -2147483648

// NewIntMatrix creates a new m x n sparse matrix. Use DefaultNullValue
// unless the domain has a specific reason not to.
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{rowcnt: m, colcnt: n, nullval: nullValue}
}

// M returns the row count.
func (m *IntMatrix) M() int { return m.rowcnt }

// N returns the column count.
func (m *IntMatrix) N() int { return m.colcnt }

// NullValue returns this matrix's null value.
func (m *IntMatrix) NullValue() int32 { return m.nullval }

// ValueCount returns the number of non-null entries.
func (m *IntMatrix) ValueCount() int { return len(m.values) }

// Value returns the value at (i,j), or NullValue if unset.
func (m *IntMatrix) Value(i, j int) int32 {
	for _, t := range m.values {
		if !t.storedLeftOf(i, j) {
			if t.storedAt(i, j) {
				return t.value
			}
			break
		}
	}
	return m.nullval
}

// Set stores value at (i,j), overwriting any previous value there.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	at := 0
	for k, t := range m.values {
		if !t.storedLeftOf(i, j) {
			if t.storedAt(i, j) {
				m.values[k].value = value
				return m
			}
			break
		}
		at++
	}
	tnew := triplet{row: i, col: j, value: value}
	m.values = append(m.values, tnew)
	copy(m.values[at+1:], m.values[at:])
	m.values[at] = tnew
	return m
}

// Each calls fn once per populated cell, in row-major triplet order.
func (m *IntMatrix) Each(fn func(i, j int, v int32)) {
	for _, t := range m.values {
		fn(t.row, t.col, t.value)
	}
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || (t.row == i && t.col < j)
}

func (t *triplet) storedAt(i, j int) bool {
	return t.row == i && t.col == j
}

func (m *IntMatrix) String() string {
	return fmt.Sprintf("sparse.IntMatrix(%dx%d, %d entries)", m.rowcnt, m.colcnt, len(m.values))
}
