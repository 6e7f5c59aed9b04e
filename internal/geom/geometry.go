// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements Geometry[D], the point/line incidence
// structure of the Segré product of D copies of a 4-point projective
// line, its base case, the cartesian lift from dimension D to D+1, and
// the axis-aligned sub-geometry masks consumed by the classifier.
package geom

import (
	"github.com/lomadriel/hyperplanefinder/internal/bitset"
	"github.com/lomadriel/hyperplanefinder/internal/segre"
)

// PointsPerLine is the fixed line cardinality of the geometries this
// module enumerates.
const PointsPerLine = 4

// tensor2D is the 4x2 table of GF(3) coefficients used to build the
// dimension-1 geometry and to extend tensors during the cartesian lift.
var tensor2D = [4][2]int8{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, 2},
}

// Geometry holds the incidence structure and tensor coordinates of a
// Segré-product geometry of a fixed dimension. A Geometry is immutable
// once constructed and is safe to share across consumers.
type Geometry struct {
	Dimension int
	NumPoints int

	// Lines holds one bitset.Set per line, each of width NumPoints.
	Lines []bitset.Set

	// Tensors holds one GF(3) coordinate row per point, each of length
	// 2^Dimension, entries in {0,1,2}.
	Tensors [][]int8

	// SubGeometryMasks[d][s] is the width-NumPoints mask of points whose
	// d-th base-4 digit equals s. Empty for Dimension == 1.
	SubGeometryMasks [][]bitset.Set
}

// PointCount returns 4^d.
func PointCount(d int) int {
	n := 1
	for i := 0; i < d; i++ {
		n *= PointsPerLine
	}
	return n
}

// LineCount returns L_d, the number of lines of a dimension-d geometry:
// L_1 = 1, L_{d+1} = 4*L_d + 4^d.
func LineCount(d int) int {
	if d < 1 {
		panic(&segre.InvalidInputError{Context: "geom.LineCount", Reason: "dimension must be >= 1"})
	}
	l := 1
	for i := 1; i < d; i++ {
		l = 4*l + PointCount(i)
	}
	return l
}

// TensorSize returns 2^d, the length of the GF(3) coordinate row of a
// point in dimension d.
func TensorSize(d int) int {
	n := 1
	for i := 0; i < d; i++ {
		n *= 2
	}
	return n
}

// Base returns the dimension-1 geometry: 4 points, the single line
// {0,1,2,3}, and tensors equal to the rows of the 4x2 table
// [[1,0],[0,1],[1,1],[1,2]].
func Base() *Geometry {
	line := bitset.FromIndices(4, []int{0, 1, 2, 3})
	tensors := make([][]int8, 4)
	for i := range tensors {
		tensors[i] = []int8{tensor2D[i][0], tensor2D[i][1]}
	}
	return &Geometry{
		Dimension: 1,
		NumPoints: 4,
		Lines:     []bitset.Set{line},
		Tensors:   tensors,
	}
}

// IsHyperplane reports whether h is a hyperplane of g: for every line l,
// popcount(l & h) is either 1 or PointsPerLine (in which case l is
// necessarily a subset of h, since a line has exactly PointsPerLine
// points).
func (g *Geometry) IsHyperplane(h bitset.Set) bool {
	for _, line := range g.Lines {
		c := line.And(h).PopCount()
		if c != 1 && c != PointsPerLine {
			return false
		}
	}
	return true
}

// ContainedLineCount returns the number of lines of g fully contained in
// h, i.e. the lines l with l & h == l.
func (g *Geometry) ContainedLineCount(h bitset.Set) int {
	n := 0
	for _, line := range g.Lines {
		if line.And(h).Equal(line) {
			n++
		}
	}
	return n
}

// BuildMatrix returns the GF(3) tensor rows of exactly the points set in
// h, in increasing point-index order.
func (g *Geometry) BuildMatrix(h bitset.Set) [][]int8 {
	rows := make([][]int8, 0, h.PopCount())
	for _, p := range h.Indices() {
		rows = append(rows, g.Tensors[p])
	}
	return rows
}
