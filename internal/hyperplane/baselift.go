// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyperplane

import (
	"github.com/lomadriel/hyperplanefinder/internal/bitset"
	"github.com/lomadriel/hyperplanefinder/internal/combin"
	"github.com/lomadriel/hyperplanefinder/internal/geom"
	"github.com/lomadriel/hyperplanefinder/internal/veldkamp"
)

// baseLevelHyperplanes enumerates the bit vectors of width g1.NumPoints
// that satisfy g1.IsHyperplane with popcount in [1, NumPoints-1]. This is
// one wider than the range BruteForce itself uses: at dimension 1 every
// candidate of popcount in [2, NumPoints-1] fails the predicate (the
// smallest non-trivial geometry has no "real" hyperplane), but the 4
// singletons at popcount 1 do satisfy it, each trivially meeting the
// geometry's one line in exactly 1 point. Those 4 singletons are the
// degenerate hyperplane list the lift formula needs to be exercised at
// all at the smallest scale.
func baseLevelHyperplanes(g1 *geom.Geometry) []bitset.Set {
	var out []bitset.Set
	n := g1.NumPoints
	for k := 1; k <= n-1; k++ {
		gen := combin.NewCombinationGenerator(n, k)
		for gen.Next() {
			h := bitset.FromIndices(n, gen.Combination())
			if g1.IsHyperplane(h) {
				out = append(out, h)
			}
		}
	}
	return out
}

// CheckLiftAgreesWithBruteForce runs the Veldkamp-lift construction from
// the degenerate hyperplane list of g1 (dimension D-1) and returns the
// resulting candidates for g2 = geom.Lift(g1). Every candidate it
// produces has popcount within BruteForce's own enumeration range, so a
// correct lift implementation must produce only candidates BruteForce(g2)
// also finds; that subset relationship, not equality with the full
// brute-force count, is what callers should check; see the accompanying
// CheckLiftAgreesWithBruteForce test and its Open Question note.
func CheckLiftAgreesWithBruteForce(g1 *geom.Geometry) []bitset.Set {
	base := baseLevelHyperplanes(g1)
	projective, _ := veldkamp.Find(base)
	return FromVeldkampLift(g1, base, projective)
}
