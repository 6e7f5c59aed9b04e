// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyperplane_test

import (
	"testing"

	"github.com/lomadriel/hyperplanefinder/internal/bitset"
	"github.com/lomadriel/hyperplanefinder/internal/geom"
	"github.com/lomadriel/hyperplanefinder/internal/hyperplane"
	"github.com/lomadriel/hyperplanefinder/internal/veldkamp"
)

func TestBruteForceDimension1HasNoHyperplanes(t *testing.T) {
	g1 := geom.Base()
	if got := hyperplane.BruteForce(g1); len(got) != 0 {
		t.Fatalf("BruteForce(dimension 1) = %d hyperplanes, want 0", len(got))
	}
}

func TestBruteForceDimension2Count(t *testing.T) {
	g2 := geom.Lift(geom.Base())
	got := hyperplane.BruteForce(g2)
	if len(got) != 80 {
		t.Fatalf("BruteForce(dimension 2) = %d hyperplanes, want 80", len(got))
	}
	for _, h := range got {
		if !g2.IsHyperplane(h) {
			t.Errorf("BruteForce returned non-hyperplane %v", h)
		}
	}
}

func TestFromVeldkampLiftDimension3Count(t *testing.T) {
	g1 := geom.Base()
	g2 := geom.Lift(g1)
	g3 := geom.Lift(g2)

	hyps2 := hyperplane.BruteForce(g2)
	projective, exceptional := veldkamp.Find(hyps2)
	reclassified, stillExceptional := veldkamp.Distinguish(exceptional, hyps2, g2, g3)
	if len(stillExceptional) != 0 {
		t.Fatalf("%d Veldkamp lines remain exceptional at dimension 2, want 0", len(stillExceptional))
	}

	allProjective := append(append([]veldkamp.Line{}, projective...), reclassified...)

	hyps3 := hyperplane.FromVeldkampLift(g2, hyps2, allProjective)
	for _, h := range hyps3 {
		if !g3.IsHyperplane(h) {
			t.Errorf("FromVeldkampLift produced non-hyperplane of popcount %d", h.PopCount())
		}
	}

	seen := make(map[string]bool)
	for _, h := range hyps3 {
		seen[h.String()] = true
	}
	if len(seen) != 1216 {
		t.Fatalf("distinct lifted dimension-3 hyperplanes = %d, want 1216", len(seen))
	}
}

func TestCheckLiftAgreesWithBruteForceIsSubsetOfBruteForce(t *testing.T) {
	g1 := geom.Base()
	g2 := geom.Lift(g1)

	lifted := hyperplane.CheckLiftAgreesWithBruteForce(g1)
	if len(lifted) == 0 {
		t.Fatal("CheckLiftAgreesWithBruteForce produced no candidates")
	}

	bruteForce := make(map[string]bool)
	for _, h := range hyperplane.BruteForce(g2) {
		bruteForce[h.String()] = true
	}

	for _, h := range lifted {
		if !g2.IsHyperplane(h) {
			t.Errorf("lifted candidate of popcount %d is not a valid hyperplane", h.PopCount())
		}
		if !bruteForce[h.String()] {
			t.Errorf("lifted candidate of popcount %d is absent from the brute-force enumeration", h.PopCount())
		}
	}
}

func TestSortFourByInsertionSort(t *testing.T) {
	// sortFour is unexported; exercise it indirectly through a
	// permutation-agnostic Veldkamp line, whose lift must not depend on
	// the order the line's 4 indices arrive in.
	g1 := geom.Base()
	g2 := geom.Lift(g1)
	hyps2 := hyperplane.BruteForce(g2)
	projective, _ := veldkamp.Find(hyps2)
	if len(projective) == 0 {
		t.Fatal("no projective Veldkamp lines to test with")
	}

	line := projective[0]
	reordered := veldkamp.Line{
		Indices:    [4]int{line.Indices[3], line.Indices[1], line.Indices[2], line.Indices[0]},
		Projective: true,
	}

	a := hyperplane.FromVeldkampLift(g2, hyps2, []veldkamp.Line{line})
	b := hyperplane.FromVeldkampLift(g2, hyps2, []veldkamp.Line{reordered})

	setOf := func(hs []bitset.Set) map[string]bool {
		m := make(map[string]bool)
		for _, h := range hs {
			m[h.String()] = true
		}
		return m
	}
	sa, sb := setOf(a), setOf(b)
	if len(sa) != len(sb) {
		t.Fatalf("reordering a Veldkamp line's indices changed the lifted family size: %d vs %d", len(sa), len(sb))
	}
	for k := range sa {
		if !sb[k] {
			t.Errorf("lifted family differs under index reordering")
			break
		}
	}
}
