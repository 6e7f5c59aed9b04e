// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/lomadriel/hyperplanefinder/internal/bitset"

// Lift builds Geometry<D+1> from Geometry<D>: for each of the 4 slabs, it
// embeds every line of g shifted by slab*NumPoints bits (4*L lines), then
// adds one vertical line {p, p+N, p+2N, p+3N} per point p of g (N more
// lines), for a total of 4*L+N lines over 4*N points. Point tensors are
// extended by the Kronecker product with the s-th row of the 4x2 table,
// computed entrywise mod 3.
func Lift(g *Geometry) *Geometry {
	n := g.NumPoints
	newN := PointsPerLine * n
	newDimension := g.Dimension + 1

	lines := make([]bitset.Set, 0, PointsPerLine*len(g.Lines)+n)
	for s := 0; s < PointsPerLine; s++ {
		shift := s * n
		for _, line := range g.Lines {
			lines = append(lines, bitset.Embed(line, newN, shift))
		}
	}
	for p := 0; p < n; p++ {
		indices := make([]int, PointsPerLine)
		for s := 0; s < PointsPerLine; s++ {
			indices[s] = p + s*n
		}
		lines = append(lines, bitset.FromIndices(newN, indices))
	}

	tensors := make([][]int8, newN)
	oldSize := TensorSize(g.Dimension)
	for s := 0; s < PointsPerLine; s++ {
		u := tensor2D[s]
		for p := 0; p < n; p++ {
			t := g.Tensors[p]
			row := make([]int8, 2*oldSize)
			for i := 0; i < 2; i++ {
				for j := 0; j < oldSize; j++ {
					row[i*oldSize+j] = int8((int(u[i]) * int(t[j])) % 3)
				}
			}
			tensors[s*n+p] = row
		}
	}

	return &Geometry{
		Dimension:        newDimension,
		NumPoints:        newN,
		Lines:            lines,
		Tensors:          tensors,
		SubGeometryMasks: subGeometryMasks(newDimension, newN),
	}
}

// subGeometryMasks returns, for each axis d in [0,dimension) and slice s
// in [0,PointsPerLine), the mask of points whose d-th base-4 digit
// equals s. There are none for dimension 1.
func subGeometryMasks(dimension, numPoints int) [][]bitset.Set {
	if dimension < 2 {
		return nil
	}
	masks := make([][]bitset.Set, dimension)
	for d := 0; d < dimension; d++ {
		masks[d] = make([]bitset.Set, PointsPerLine)
		for s := 0; s < PointsPerLine; s++ {
			masks[d][s] = bitset.New(numPoints)
		}
		divisor := PointCount(d)
		for p := 0; p < numPoints; p++ {
			digit := (p / divisor) % PointsPerLine
			masks[d][digit].SetBit(p)
		}
	}
	return masks
}
