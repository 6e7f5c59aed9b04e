// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package veldkamp

import (
	"github.com/lomadriel/hyperplanefinder/internal/bitset"
	"github.com/lomadriel/hyperplanefinder/internal/combin"
)

// Find enumerates the Veldkamp lines of the given hyperplane list. Two
// hyperplanes h_i, h_j (i<j) share a core K = h_i & h_j with h_m if
// h_i&h_m == h_j&h_m == K; the set of such m > j is collected, and every
// ordered pair drawn from it that also shares the same core with h_i and
// h_j yields a quadruple. A quadruple is a supposed exceptional line if
// its core was shared by more than 2 trailing hyperplanes, otherwise it
// is projective.
func Find(hyperplanes []bitset.Set) (projective, exceptional []Line) {
	n := len(hyperplanes)
	if n < 2 {
		return nil, nil
	}

	pairs := combin.NewCombinationGenerator(n, 2)
	for pairs.Next() {
		pair := pairs.Combination()
		i, j := pair[0], pair[1]
		hi, hj := hyperplanes[i], hyperplanes[j]
		core := hi.And(hj)

		var sameCore []int
		for m := j + 1; m < n; m++ {
			if core.Equal(hi.And(hyperplanes[m])) && core.Equal(hj.And(hyperplanes[m])) {
				sameCore = append(sameCore, m)
			}
		}

		if len(sameCore) < 2 {
			continue
		}

		quadPairs := combin.NewCombinationGenerator(len(sameCore), 2)
		for quadPairs.Next() {
			qp := quadPairs.Combination()
			a, b := sameCore[qp[0]], sameCore[qp[1]]
			ha, hb := hyperplanes[a], hyperplanes[b]
			if !core.Equal(ha.And(hb)) {
				continue
			}

			line := Line{Indices: [4]int{i, j, a, b}, Projective: len(sameCore) == 2}
			if line.Projective {
				projective = append(projective, line)
			} else {
				exceptional = append(exceptional, line)
			}
		}
	}

	return projective, exceptional
}

// Core returns the common intersection h_i & h_j of the first two
// hyperplanes of a Veldkamp line; by construction this equals the
// intersection of every pair in the line.
func Core(hyperplanes []bitset.Set, l Line) bitset.Set {
	return hyperplanes[l.Indices[0]].And(hyperplanes[l.Indices[1]])
}
