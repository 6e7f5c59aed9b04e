// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package veldkamp_test

import (
	"testing"

	"github.com/lomadriel/hyperplanefinder/internal/geom"
	"github.com/lomadriel/hyperplanefinder/internal/hyperplane"
	"github.com/lomadriel/hyperplanefinder/internal/veldkamp"
)

func TestDistinguishPartitionsExceptionalCandidates(t *testing.T) {
	g1 := geom.Base()
	g2 := geom.Lift(g1)
	g3 := geom.Lift(g2)

	hyps2 := hyperplane.BruteForce(g2)
	_, exceptional := veldkamp.Find(hyps2)
	if len(exceptional) == 0 {
		t.Skip("no supposed exceptional lines produced at dimension 2 to distinguish")
	}

	reclassified, stillExceptional := veldkamp.Distinguish(exceptional, hyps2, g2, g3)
	if len(reclassified)+len(stillExceptional) != len(exceptional) {
		t.Fatalf("Distinguish dropped or duplicated candidates: got %d+%d, want %d",
			len(reclassified), len(stillExceptional), len(exceptional))
	}
	for _, line := range reclassified {
		if !line.Projective {
			t.Errorf("reclassified line %v has Projective=false", line.Indices)
		}
	}
	for _, line := range stillExceptional {
		if line.Projective {
			t.Errorf("still-exceptional line %v has Projective=true", line.Indices)
		}
	}
}

func TestDistinguishOnEmptyCandidateList(t *testing.T) {
	g1 := geom.Base()
	g2 := geom.Lift(g1)
	g3 := geom.Lift(g2)
	hyps2 := hyperplane.BruteForce(g2)

	reclassified, stillExceptional := veldkamp.Distinguish(nil, hyps2, g2, g3)
	if reclassified != nil || stillExceptional != nil {
		t.Fatalf("Distinguish(nil) = %v, %v, want nil, nil", reclassified, stillExceptional)
	}
}
