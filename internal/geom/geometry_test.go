// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lomadriel/hyperplanefinder/internal/bitset"
)

func TestBase(t *testing.T) {
	g := Base()
	if g.NumPoints != 4 {
		t.Fatalf("NumPoints = %d, want 4", g.NumPoints)
	}
	if len(g.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(g.Lines))
	}
	want := bitset.FromIndices(4, []int{0, 1, 2, 3})
	if !g.Lines[0].Equal(want) {
		t.Errorf("Lines[0] = %v, want %v", g.Lines[0].Indices(), want.Indices())
	}
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		d    int
		want int
	}{
		{1, 1},
		{2, 8},
		{3, 48},
		{4, 256},
	}
	for _, test := range tests {
		if got := LineCount(test.d); got != test.want {
			t.Errorf("LineCount(%d) = %d, want %d", test.d, got, test.want)
		}
	}
}

func TestLiftDimension2Lines(t *testing.T) {
	g1 := Base()
	g2 := Lift(g1)

	if g2.NumPoints != 16 {
		t.Fatalf("NumPoints = %d, want 16", g2.NumPoints)
	}
	if len(g2.Lines) != 8 {
		t.Fatalf("len(Lines) = %d, want 8", len(g2.Lines))
	}

	want := []bitset.Set{
		bitset.FromIndices(16, []int{0, 1, 2, 3}),
		bitset.FromIndices(16, []int{4, 5, 6, 7}),
		bitset.FromIndices(16, []int{8, 9, 10, 11}),
		bitset.FromIndices(16, []int{12, 13, 14, 15}),
		bitset.FromIndices(16, []int{0, 4, 8, 12}),
		bitset.FromIndices(16, []int{1, 5, 9, 13}),
		bitset.FromIndices(16, []int{2, 6, 10, 14}),
		bitset.FromIndices(16, []int{3, 7, 11, 15}),
	}
	for i, line := range g2.Lines {
		if !line.Equal(want[i]) {
			t.Errorf("Lines[%d] = %v, want %v", i, line.Indices(), want[i].Indices())
		}
	}
}

func TestLiftTensorKronecker(t *testing.T) {
	g1 := Base()
	g2 := Lift(g1)
	g3 := Lift(g2)

	// Point index 1*16+0 in Geometry<3> equals row [0,1] tensored with
	// tensor of point 0 of Geometry<2>.
	point0g2 := g2.Tensors[0]
	got := g3.Tensors[1*16+0]
	want := make([]int8, 2*len(point0g2))
	u := [2]int8{0, 1}
	for i := 0; i < 2; i++ {
		for j, v := range point0g2 {
			want[i*len(point0g2)+j] = int8((int(u[i]) * int(v)) % 3)
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tensors[16] mismatch (-want +got):\n%s", diff)
	}
}

func TestSubGeometryMasksCountAndSize(t *testing.T) {
	g1 := Base()
	g2 := Lift(g1)
	g3 := Lift(g2)

	if g1.SubGeometryMasks != nil {
		t.Errorf("dimension-1 geometry should have no sub-geometry masks")
	}
	if len(g3.SubGeometryMasks) != 3 {
		t.Fatalf("len(SubGeometryMasks) = %d, want 3", len(g3.SubGeometryMasks))
	}
	for d, slices := range g3.SubGeometryMasks {
		if len(slices) != 4 {
			t.Fatalf("axis %d has %d slices, want 4", d, len(slices))
		}
		total := 0
		for _, mask := range slices {
			if got, want := mask.PopCount(), PointCount(2); got != want {
				t.Errorf("axis %d slice popcount = %d, want %d", d, got, want)
			}
			total += mask.PopCount()
		}
		if total != g3.NumPoints {
			t.Errorf("axis %d slices cover %d points, want %d", d, total, g3.NumPoints)
		}
	}
}
