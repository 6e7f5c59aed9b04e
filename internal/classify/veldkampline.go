// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classify

import (
	"sort"

	"github.com/lomadriel/hyperplanefinder/internal/bitset"
	"github.com/lomadriel/hyperplanefinder/internal/geom"
	"github.com/lomadriel/hyperplanefinder/internal/segre"
	"github.com/lomadriel/hyperplanefinder/internal/veldkamp"
)

// VeldkampLineTableRow is the structural fingerprint of one equivalence
// class of Veldkamp lines: whether the class is projective, the size and
// contained-line count of the shared core, and the multiset of
// hyperplane-table class indices its four members belong to.
type VeldkampLineTableRow struct {
	Projective    bool
	CoreNumPoints int
	CoreNumLines  int

	// PointsType maps a hyperplane-table class index to how many of the
	// line's 4 members belong to that class.
	PointsType map[int]int

	Count int

	// Lines lists the concrete Veldkamp lines contributing to this row,
	// for callers that want to report or render representative examples
	// rather than only the aggregate count.
	Lines []veldkamp.Line
}

// VeldkampLineTable partitions the given projective and exceptional
// Veldkamp lines into equivalence classes under VeldkampLineTableRow
// equality, projective lines first. hypTable is the already-built
// hyperplane table of the same dimension, used to resolve each member
// hyperplane's class index.
func VeldkampLineTable(g *geom.Geometry, hyperplanes []bitset.Set, hypTable []HyperplaneTableRow, projective, exceptional []veldkamp.Line) []VeldkampLineTableRow {
	var rows []VeldkampLineTableRow
	for _, line := range projective {
		addVeldkampLine(&rows, g, hyperplanes, hypTable, line, true)
	}
	for _, line := range exceptional {
		addVeldkampLine(&rows, g, hyperplanes, hypTable, line, false)
	}
	return rows
}

func addVeldkampLine(rows *[]VeldkampLineTableRow, g *geom.Geometry, hyperplanes []bitset.Set, hypTable []HyperplaneTableRow, line veldkamp.Line, projective bool) {
	core := veldkamp.Core(hyperplanes, line)

	pointsType := make(map[int]int)
	for _, idx := range line.Indices {
		n := hyperplanes[idx].PopCount()
		classIdx := -1
		for i, row := range hypTable {
			if row.Points == n {
				classIdx = i
				break
			}
		}
		if classIdx == -1 {
			segre.Unreachable("veldkamp line classification", "hyperplane point count matches no entry in the hyperplane table")
		}
		pointsType[classIdx]++
	}

	entry := VeldkampLineTableRow{
		Projective:    projective,
		CoreNumPoints: core.PopCount(),
		CoreNumLines:  g.ContainedLineCount(core),
		PointsType:    pointsType,
	}

	for i := range *rows {
		if veldkampLineEntriesEqual((*rows)[i], entry) {
			(*rows)[i].Count++
			(*rows)[i].Lines = append((*rows)[i].Lines, line)
			return
		}
	}
	entry.Count = 1
	entry.Lines = []veldkamp.Line{line}
	*rows = append(*rows, entry)
}

func veldkampLineEntriesEqual(a, b VeldkampLineTableRow) bool {
	if a.Projective != b.Projective {
		return false
	}
	if a.CoreNumPoints != b.CoreNumPoints || a.CoreNumLines != b.CoreNumLines {
		return false
	}
	return intIntMapEqual(a.PointsType, b.PointsType)
}

// SortVeldkampLineRows orders rows the way the reference implementation's
// table printer does: exceptional before projective, then by ascending
// core point count, then by ascending core line count.
func SortVeldkampLineRows(rows []VeldkampLineTableRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Projective != b.Projective {
			return !a.Projective
		}
		if a.CoreNumPoints != b.CoreNumPoints {
			return a.CoreNumPoints < b.CoreNumPoints
		}
		return a.CoreNumLines < b.CoreNumLines
	})
}
