// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package automorphism computes the action of a geometry's symmetry
// group on its hyperplanes. A symmetry is the combination of an
// independent 4-point reordering along each axis and a relabelling of
// the axes themselves; the group has order (4!)^Dimension * Dimension!.
// This refines the single flat lexicographic ordering the classifier
// uses into the coordinate-permutation-aware structure needed to report
// a hyperplane's stabiliser and to verify that a hyperplane list is
// closed under the geometry's full symmetry group.
package automorphism

import (
	"github.com/lomadriel/hyperplanefinder/internal/bitset"
	"github.com/lomadriel/hyperplanefinder/internal/combin"
	"github.com/lomadriel/hyperplanefinder/internal/geom"
	"github.com/lomadriel/hyperplanefinder/internal/segre"
)

// Symmetry is one element of a dimension-D geometry's automorphism
// group: AxisPerms[d] reorders the 4 points of axis d, and AxisOrder
// relabels which axis each reordered digit lands on.
type Symmetry struct {
	AxisPerms [][]int
	AxisOrder []int
}

// Generator enumerates every Symmetry of a fixed dimension exactly once,
// built on top of combin.MultiPermGen: one size-4 permutation generator
// per axis, plus one size-Dimension generator for the axis relabelling.
type Generator struct {
	dimension int
	gen       *combin.MultiPermGen
}

// NewGenerator returns a Generator over the (4!)^dimension * dimension!
// symmetries of a dimension-d geometry. dimension must be >= 1.
func NewGenerator(dimension int) *Generator {
	ns := make([]int, dimension+1)
	for d := 0; d < dimension; d++ {
		ns[d] = geom.PointsPerLine
	}
	ns[dimension] = dimension
	return &Generator{dimension: dimension, gen: combin.NewMultiPermGen(ns)}
}

// Next advances the generator and reports whether a symmetry is
// available.
func (g *Generator) Next() bool { return g.gen.Next() }

// Current returns the symmetry at the generator's current position. The
// returned value owns independent copies of its slices.
func (g *Generator) Current() Symmetry {
	perms := g.gen.Permutations()
	axisPerms := make([][]int, g.dimension)
	for d := 0; d < g.dimension; d++ {
		axisPerms[d] = append([]int(nil), perms[d]...)
	}
	return Symmetry{
		AxisPerms: axisPerms,
		AxisOrder: append([]int(nil), perms[g.dimension]...),
	}
}

// Apply maps a point index under sym: p's base-4 digits are permuted
// independently per axis by sym.AxisPerms, then the digits themselves
// are moved to the axis positions named by sym.AxisOrder.
func Apply(dimension int, sym Symmetry, p int) int {
	digits := make([]int, dimension)
	for d := 0; d < dimension; d++ {
		digits[d] = (p / geom.PointCount(d)) % geom.PointsPerLine
	}

	relabeled := make([]int, dimension)
	for d := 0; d < dimension; d++ {
		relabeled[d] = sym.AxisPerms[d][digits[d]]
	}

	newDigits := make([]int, dimension)
	for d := 0; d < dimension; d++ {
		newDigits[sym.AxisOrder[d]] = relabeled[d]
	}

	newP := 0
	for d := 0; d < dimension; d++ {
		newP += newDigits[d] * geom.PointCount(d)
	}
	return newP
}

// ApplyToSet maps every point of h under sym.
func ApplyToSet(dimension int, sym Symmetry, h bitset.Set) bitset.Set {
	out := bitset.New(h.Width())
	for _, p := range h.Indices() {
		out.SetBit(Apply(dimension, sym, p))
	}
	return out
}

// StabilizerCount returns the number of symmetries of g's dimension that
// fix h setwise.
func StabilizerCount(g *geom.Geometry, h bitset.Set) int {
	count := 0
	gen := NewGenerator(g.Dimension)
	for gen.Next() {
		if ApplyToSet(g.Dimension, gen.Current(), h).Equal(h) {
			count++
		}
	}
	return count
}

// PermutationTable returns, for each hyperplane and each symmetry of
// g's dimension (in generator order), the index within hyperplanes of
// the hyperplane reached by applying that symmetry. It panics with an
// UnreachableInvariantError if hyperplanes is not closed under the
// geometry's symmetry group, which indicates the caller passed an
// incomplete hyperplane list rather than a bug in this package.
func PermutationTable(g *geom.Geometry, hyperplanes []bitset.Set) [][]int {
	index := make(map[string]int, len(hyperplanes))
	for i, h := range hyperplanes {
		index[h.String()] = i
	}

	var symmetries []Symmetry
	gen := NewGenerator(g.Dimension)
	for gen.Next() {
		symmetries = append(symmetries, gen.Current())
	}

	table := make([][]int, len(hyperplanes))
	for i, h := range hyperplanes {
		row := make([]int, len(symmetries))
		for s, sym := range symmetries {
			mapped := ApplyToSet(g.Dimension, sym, h)
			pos, ok := index[mapped.String()]
			if !ok {
				segre.Unreachable("hyperplane list closed under symmetry group",
					"applying a geometry automorphism produced a hyperplane absent from the input list")
			}
			row[s] = pos
		}
		table[i] = row
	}
	return table
}
