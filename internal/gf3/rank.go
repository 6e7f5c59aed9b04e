// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf3 implements Gaussian elimination over the field GF(3), used
// to compute the rank of the tensor matrices that distinguish projective
// from exceptional Veldkamp lines. The matrix is held in a gonum
// mat.Dense the way the rest of the corpus holds numeric matrices; since
// every entry is one of {0,1,2} the mod-3 arithmetic is exact in
// float64, so no custom storage type is needed.
package gf3

import "gonum.org/v1/gonum/mat"

// Rank returns the rank over GF(3) of the matrix whose rows are given,
// each entry expected to be in {0,1,2}. Rank mutates a private working
// copy; it never modifies rows.
//
// The elimination follows a standard partial-pivot scheme specialised to
// GF(3): when the diagonal entry is zero, the first row below with a
// nonzero entry in that column is swapped in; when no such row exists,
// the current row index becomes the tentative rank, and any later column
// with a nonzero entry among the unprocessed rows still counts toward
// the rank. When the diagonal is 2, the row is negated (multiplying by 2
// mod 3), then used to eliminate every entry below it in that column.
func Rank(rows [][]int8) int {
	nRows := len(rows)
	if nRows == 0 {
		return 0
	}
	nCols := len(rows[0])
	m := mat.NewDense(nRows, nCols, nil)
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, float64(v))
		}
	}

	rank := nCols
	for i := 0; i < nCols; i++ {
		// A geometry with fewer points set than nCols runs out of rows
		// before the elimination reaches the last column; that row is
		// treated as an all-zero diagonal, driving the pivot search below
		// to its "no such row" branch instead of indexing past nRows.
		diag := 0.0
		if i < nRows {
			diag = m.At(i, i)
		}
		if diag == 0 {
			k := i
			for k < nRows && m.At(k, i) == 0 {
				k++
			}
			if k != nRows {
				swapRows(m, i, k)
			} else {
				rank = i
				break
			}
		}

		if m.At(i, i) == 2 {
			for j := 0; j < nCols; j++ {
				m.Set(i, j, mod3(m.At(i, j)*2))
			}
		}

		for j := i + 1; j < nRows; j++ {
			aij := m.At(j, i)
			if aij == 0 {
				continue
			}
			for k := i; k < nCols; k++ {
				m.Set(j, k, mod3(6+m.At(j, k)-aij*m.At(i, k)))
			}
		}
	}

	if rank != nCols {
		for i := rank + 1; i < nCols; i++ {
			for k := rank; k < nRows; k++ {
				if m.At(k, i) != 0 {
					rank++
					break
				}
			}
		}
	}

	return rank
}

func mod3(v float64) float64 {
	n := int(v) % 3
	if n < 0 {
		n += 3
	}
	return float64(n)
}

func swapRows(m *mat.Dense, i, j int) {
	if i == j {
		return
	}
	_, cols := m.Dims()
	for k := 0; k < cols; k++ {
		vi, vj := m.At(i, k), m.At(j, k)
		m.Set(i, k, vj)
		m.Set(j, k, vi)
	}
}
