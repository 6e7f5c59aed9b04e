// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitset implements a fixed-width bit vector of points, indexed
// from 0, used throughout the geometry packages to represent hyperplanes,
// lines and axis-aligned masks. The representation is an array of machine
// words. The width is a runtime value fixed when a Set is created, and
// bit N-1 is most significant for lexicographic ordering.
package bitset

import (
	"fmt"
	"math/bits"
	"sort"
)

const wordSize = 64

// Set is a fixed-width vector of bits, one per point index in [0, Width).
type Set struct {
	words []uint64
	width int
}

// New returns a zero-valued Set of the given width.
func New(width int) Set {
	if width < 0 {
		panic("bitset: negative width")
	}
	return Set{words: make([]uint64, (width+wordSize-1)/wordSize), width: width}
}

// Width reports the number of addressable bit positions.
func (s Set) Width() int { return s.width }

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return Set{words: words, width: s.width}
}

func (s Set) wordIndex(i int) (word, bit int) {
	return i / wordSize, i % wordSize
}

// Test reports whether bit i is set.
func (s Set) Test(i int) bool {
	if i < 0 || i >= s.width {
		panic("bitset: index out of range")
	}
	w, b := s.wordIndex(i)
	return s.words[w]&(uint64(1)<<uint(b)) != 0
}

// SetBit sets bit i to 1.
func (s Set) SetBit(i int) {
	if i < 0 || i >= s.width {
		panic("bitset: index out of range")
	}
	w, b := s.wordIndex(i)
	s.words[w] |= uint64(1) << uint(b)
}

// ClearBit sets bit i to 0.
func (s Set) ClearBit(i int) {
	if i < 0 || i >= s.width {
		panic("bitset: index out of range")
	}
	w, b := s.wordIndex(i)
	s.words[w] &^= uint64(1) << uint(b)
}

func (s Set) checkSameWidth(other Set) {
	if s.width != other.width {
		panic("bitset: width mismatch")
	}
}

// And returns the bitwise AND of s and other.
func (s Set) And(other Set) Set {
	s.checkSameWidth(other)
	out := New(s.width)
	for i := range out.words {
		out.words[i] = s.words[i] & other.words[i]
	}
	return out
}

// Or returns the bitwise OR of s and other.
func (s Set) Or(other Set) Set {
	s.checkSameWidth(other)
	out := New(s.width)
	for i := range out.words {
		out.words[i] = s.words[i] | other.words[i]
	}
	return out
}

// Xor returns the bitwise XOR of s and other.
func (s Set) Xor(other Set) Set {
	s.checkSameWidth(other)
	out := New(s.width)
	for i := range out.words {
		out.words[i] = s.words[i] ^ other.words[i]
	}
	return out
}

// Complement returns the bitwise NOT of s, masked to its width.
func (s Set) Complement() Set {
	out := New(s.width)
	for i := range out.words {
		out.words[i] = ^s.words[i]
	}
	out.maskHighBits()
	return out
}

// maskHighBits clears the bits beyond width in the final word so that
// PopCount, Equal and Less never see stray high bits.
func (s Set) maskHighBits() {
	if s.width == 0 {
		return
	}
	rem := s.width % wordSize
	if rem == 0 {
		return
	}
	last := len(s.words) - 1
	s.words[last] &= (uint64(1) << uint(rem)) - 1
}

// Shl returns s shifted left by k bit positions, truncated to the
// original width.
func (s Set) Shl(k int) Set {
	if k < 0 {
		panic("bitset: negative shift")
	}
	out := New(s.width)
	if k >= s.width {
		return out
	}
	wordShift := k / wordSize
	bitShift := uint(k % wordSize)
	for i := len(s.words) - 1; i >= 0; i-- {
		srcIdx := i - wordShift
		if srcIdx < 0 {
			continue
		}
		var v uint64 = s.words[srcIdx] << bitShift
		if bitShift != 0 && srcIdx > 0 {
			v |= s.words[srcIdx-1] >> (wordSize - bitShift)
		}
		out.words[i] = v
	}
	out.maskHighBits()
	return out
}

// PopCount returns the number of bits set.
func (s Set) PopCount() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsZero reports whether no bit is set.
func (s Set) IsZero() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether s and other have the same width and bits.
func (s Set) Equal(other Set) bool {
	if s.width != other.width {
		return false
	}
	for i := range s.words {
		if s.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// Less reports whether s is lexicographically before other, treating bit
// Width-1 as most significant, per §4.3.
func (s Set) Less(other Set) bool {
	s.checkSameWidth(other)
	for i := len(s.words) - 1; i >= 0; i-- {
		if s.words[i] != other.words[i] {
			return s.words[i] < other.words[i]
		}
	}
	return false
}

// Indices returns the sorted list of set bit positions.
func (s Set) Indices() []int {
	out := make([]int, 0, s.PopCount())
	for i := 0; i < s.width; i++ {
		if s.Test(i) {
			out = append(out, i)
		}
	}
	return out
}

// FromIndices returns a Set of the given width with exactly the listed
// bits set.
func FromIndices(width int, indices []int) Set {
	s := New(width)
	for _, i := range indices {
		s.SetBit(i)
	}
	return s
}

// Embed returns a Set of the given width containing s's bits shifted by
// shift positions. It is used to place a smaller geometry's lines,
// hyperplanes or masks into a larger ambient point space, the way the
// cartesian lift embeds each of the four slabs of a dimension-D geometry
// into dimension D+1.
func Embed(s Set, width, shift int) Set {
	out := New(width)
	for _, idx := range s.Indices() {
		out.SetBit(idx + shift)
	}
	return out
}

// String returns a canonical representation of s as its width followed
// by its set bit positions, suitable as a map key for de-duplication.
func (s Set) String() string {
	return fmt.Sprintf("%d:%v", s.width, s.Indices())
}

// Dedup returns the distinct elements of sets, sorted into ascending
// lexicographic order (per Less). This is the canonical ordered,
// duplicate-free form hyperplane collections are stored in once built.
func Dedup(sets []Set) []Set {
	out := make([]Set, len(sets))
	copy(out, sets)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	n := 0
	for i, s := range out {
		if i == 0 || !s.Equal(out[n-1]) {
			out[n] = s
			n++
		}
	}
	return out[:n]
}

// Full returns a Set of the given width with every bit set.
func Full(width int) Set {
	s := New(width)
	for i := range s.words {
		s.words[i] = ^uint64(0)
	}
	s.maskHighBits()
	return s
}
