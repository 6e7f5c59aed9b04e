// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package classify groups the hyperplanes and Veldkamp lines of a
// geometry into equivalence classes by structural fingerprint, and
// produces the plain-data table rows an external renderer can consume.
package classify

import (
	"sort"

	"github.com/lomadriel/hyperplanefinder/internal/bitset"
	"github.com/lomadriel/hyperplanefinder/internal/geom"
)

// HyperplaneTableRow is the structural fingerprint of one equivalence
// class of hyperplanes, plus how many hyperplanes of the geometry fall
// into it. PointsByOrder and SubGeometries are left nil when their
// computation was not requested.
type HyperplaneTableRow struct {
	Points int
	Lines  int

	// PointsByOrder maps an included-line count k to the number of
	// points of the hyperplane that lie on exactly k included lines.
	PointsByOrder map[int]int

	// SubGeometries holds one map per axis direction, from "class index
	// in the dimension D-1 table" (or -1 when no class matches, which
	// covers the full (D-1)-geometry case) to how many of the 4
	// axis-aligned slices along that direction fall into that class.
	SubGeometries []map[int]int

	Count int
}

// intset is the map[int]struct{} set-of-identifiers idiom, used here to
// track which entries of the other side have already been paired off
// during the multiset comparison of sub-geometry profiles.
type intset map[int]struct{}

func (s intset) add(i int)      { s[i] = struct{}{} }
func (s intset) has(i int) bool { _, ok := s[i]; return ok }

// HyperplaneTable partitions hyperplanes into equivalence classes under
// HyperplaneTableRow equality, preserving first-seen order. prev is the
// dimension D-1 hyperplane table, used to resolve sub-geometry class
// indices; it may be nil when withSubGeometries is false or g.Dimension
// has no sub-geometries (dimension 1).
//
// HyperplaneTable is the collection's de-duplication point: hyperplanes
// is a plain, possibly duplicate-laden list (hyperplane.FromVeldkampLift
// already returns a de-duplicated list, but the input is not required to
// be one), and the same exact bit vector must only ever
// contribute once to a class's Count. An earlier bit vector seen again
// later is dropped outright rather than double-counted; this is
// independent of, and in addition to, the structural equivalence
// grouping entries with a different bit pattern but the same fingerprint
// still share below.
func HyperplaneTable(g *geom.Geometry, hyperplanes []bitset.Set, prev []HyperplaneTableRow, withOrders, withSubGeometries bool) []HyperplaneTableRow {
	var rows []HyperplaneTableRow
	seen := make(map[string]bool, len(hyperplanes))
	for _, h := range hyperplanes {
		key := h.String()
		if seen[key] {
			continue
		}
		seen[key] = true

		entry := buildHyperplaneEntry(g, h, prev, withOrders, withSubGeometries)
		if idx := findHyperplaneClass(rows, entry); idx >= 0 {
			rows[idx].Count++
			continue
		}
		entry.Count = 1
		rows = append(rows, entry)
	}
	return rows
}

func buildHyperplaneEntry(g *geom.Geometry, h bitset.Set, prev []HyperplaneTableRow, withOrders, withSubGeometries bool) HyperplaneTableRow {
	var includedLines []bitset.Set
	for _, line := range g.Lines {
		if line.And(h).Equal(line) {
			includedLines = append(includedLines, line)
		}
	}

	entry := HyperplaneTableRow{
		Points: h.PopCount(),
		Lines:  len(includedLines),
	}

	if withOrders {
		entry.PointsByOrder = pointsByOrder(h, includedLines, entry.Points, entry.Lines)
	}

	if withSubGeometries && len(g.SubGeometryMasks) > 0 {
		entry.SubGeometries = subGeometryProfile(g, h, prev)
	}

	return entry
}

func pointsByOrder(h bitset.Set, includedLines []bitset.Set, points, lines int) map[int]int {
	counts := make(map[int]int)
	if lines == 0 {
		counts[0] = points
		return counts
	}

	pointOfOrder0 := points
	for _, p := range h.Indices() {
		order := 0
		for _, line := range includedLines {
			if line.Test(p) {
				order++
			}
		}
		if order != 0 {
			counts[order]++
			pointOfOrder0--
		}
	}
	if pointOfOrder0 != 0 {
		counts[0] = pointOfOrder0
	}
	return counts
}

// subGeometryProfile computes, per axis direction, the multiplicity of
// each dimension-(D-1) class among the 4 axis-aligned slices of h. A
// slice whose point count matches no class in prev (including when the
// slice is the full (D-1)-geometry) is recorded under the sentinel -1.
func subGeometryProfile(g *geom.Geometry, h bitset.Set, prev []HyperplaneTableRow) []map[int]int {
	profile := make([]map[int]int, len(g.SubGeometryMasks))
	for d, slices := range g.SubGeometryMasks {
		counts := make(map[int]int)
		for _, mask := range slices {
			n := h.And(mask).PopCount()
			classIdx := -1
			for i, row := range prev {
				if row.Points == n {
					classIdx = i
					break
				}
			}
			counts[classIdx]++
		}
		profile[d] = counts
	}
	return profile
}

// findHyperplaneClass returns the index of the row in rows equal to
// entry, or -1 if none matches.
func findHyperplaneClass(rows []HyperplaneTableRow, entry HyperplaneTableRow) int {
	for i, row := range rows {
		if hyperplaneEntriesEqual(row, entry) {
			return i
		}
	}
	return -1
}

func hyperplaneEntriesEqual(a, b HyperplaneTableRow) bool {
	if a.Points != b.Points || a.Lines != b.Lines {
		return false
	}
	if !intIntMapEqual(a.PointsByOrder, b.PointsByOrder) {
		return false
	}
	return subGeometryProfilesEqual(a.SubGeometries, b.SubGeometries)
}

// subGeometryProfilesEqual compares two per-direction profile vectors as
// multisets of maps: every per-axis map on one side must pair off with
// a distinct, exactly-equal map on the other side. Axis order carries no
// meaning by itself (relabelling directions does not change the
// hyperplane's class), which is why this is not a positional comparison.
func subGeometryProfilesEqual(a, b []map[int]int) bool {
	if len(a) != len(b) {
		return false
	}
	used := make(intset)
	for _, ma := range a {
		matched := false
		for j, mb := range b {
			if used.has(j) {
				continue
			}
			if intIntMapEqual(ma, mb) {
				used.add(j)
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func intIntMapEqual(a, b map[int]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// SortHyperplaneRows sorts rows by descending point count, the ordering
// the reference implementation's table printer uses.
func SortHyperplaneRows(rows []HyperplaneTableRow) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Points > rows[j].Points })
}
