// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hyperplane discovers the hyperplanes of a Segré-product
// geometry: by brute force for the smallest non-trivial dimension, and
// by lifting the Veldkamp lines of one dimension to build the
// hyperplanes of the next.
package hyperplane

import (
	"github.com/lomadriel/hyperplanefinder/internal/bitset"
	"github.com/lomadriel/hyperplanefinder/internal/combin"
	"github.com/lomadriel/hyperplanefinder/internal/geom"
	"github.com/lomadriel/hyperplanefinder/internal/veldkamp"
)

// BruteForce enumerates every non-trivial bit vector of width
// g.NumPoints with popcount in [2, NumPoints-1] and keeps those that
// satisfy g.IsHyperplane. It is only tractable for small geometries
// (dimension 2 in this module).
func BruteForce(g *geom.Geometry) []bitset.Set {
	var out []bitset.Set
	n := g.NumPoints
	for k := 2; k <= n-1; k++ {
		gen := combin.NewCombinationGenerator(n, k)
		for gen.Next() {
			h := bitset.FromIndices(n, gen.Combination())
			if g.IsHyperplane(h) {
				out = append(out, h)
			}
		}
	}
	return out
}

// FromVeldkampLift builds the hyperplanes of geom.Lift(g) from g's own
// hyperplane list and its projective Veldkamp lines, as the union of two
// families:
//
//  1. for each projective line {h0,h1,h2,h3}, every one of the 4! slab
//     orderings of those four hyperplanes;
//  2. for each hyperplane h and each axis s, the vector whose slab s is
//     the full mask and whose other three slabs are h.
//
// Every hyperplane of the lifted geometry belongs to at least one of
// these families, but the same bit vector is frequently produced more
// than once, both within family 1 (distinct slab orderings coinciding
// when a line's members repeat across slabs) and across the two
// families. The returned slice is de-duplicated and sorted into
// ascending lexicographic order before it is handed back, so every
// caller receives the ordered, duplicate-free collection hyperplanes
// are stored in.
func FromVeldkampLift(g *geom.Geometry, hyperplanes []bitset.Set, projective []veldkamp.Line) []bitset.Set {
	n := g.NumPoints
	newN := geom.PointsPerLine * n
	var out []bitset.Set

	for _, line := range projective {
		sorted := line.Indices
		sortFour(&sorted)

		perms := combin.NewPermGen(4)
		for perms.Next() {
			order := perms.Permutation()
			h := bitset.New(newN)
			for slab, pos := range order {
				h = h.Or(bitset.Embed(hyperplanes[sorted[pos]], newN, slab*n))
			}
			out = append(out, h)
		}
	}

	full := bitset.Full(n)
	for _, h := range hyperplanes {
		for s := 0; s < geom.PointsPerLine; s++ {
			candidate := bitset.New(newN)
			for t := 0; t < geom.PointsPerLine; t++ {
				if t == s {
					candidate = candidate.Or(bitset.Embed(full, newN, t*n))
				} else {
					candidate = candidate.Or(bitset.Embed(h, newN, t*n))
				}
			}
			out = append(out, candidate)
		}
	}

	return bitset.Dedup(out)
}

func sortFour(a *[4]int) {
	for i := 1; i < 4; i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}
