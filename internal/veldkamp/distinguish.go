// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package veldkamp

import (
	"github.com/lomadriel/hyperplanefinder/internal/bitset"
	"github.com/lomadriel/hyperplanefinder/internal/geom"
	"github.com/lomadriel/hyperplanefinder/internal/gf3"
)

// Distinguish re-examines the supposed exceptional lines of dimension
// g.Dimension by lifting each quadruple into dimension next.Dimension
// (next must be geom.Lift(g)) and computing the GF(3) rank of the
// resulting tensor matrix. A line whose lifted rank is strictly less
// than 2^(g.Dimension+1) is reclassified projective; the rest remain
// exceptional. Distinguish is deterministic in its inputs and performs
// no mutation of hyperplanes or candidates.
func Distinguish(candidates []Line, hyperplanes []bitset.Set, g, next *geom.Geometry) (reclassifiedProjective, stillExceptional []Line) {
	target := geom.TensorSize(next.Dimension)
	n := g.NumPoints

	for _, line := range candidates {
		lifted := bitset.New(next.NumPoints)
		for slab, idx := range line.Indices {
			lifted = lifted.Or(bitset.Embed(hyperplanes[idx], next.NumPoints, slab*n))
		}

		rank := gf3.Rank(next.BuildMatrix(lifted))
		if rank < target {
			reclassifiedProjective = append(reclassifiedProjective, Line{Indices: line.Indices, Projective: true})
		} else {
			stillExceptional = append(stillExceptional, Line{Indices: line.Indices, Projective: false})
		}
	}

	return reclassifiedProjective, stillExceptional
}
