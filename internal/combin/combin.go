// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package combin implements the lazy combination and permutation
// generators used to enumerate k-subsets and orderings of small index
// sets. The combination generator mirrors the lexicographic advance used
// by gonum.org/v1/gonum/stat/combin, adapted to borrow its internal
// buffer instead of allocating a fresh slice on every step.
package combin

import "gonum.org/v1/gonum/stat/combin"

const (
	badNegInput = "combin: negative input"
	badSetSize  = "combin: n < k"
)

// CombinationGenerator lazily produces, in lexicographic order, every
// k-subset of {0,...,n-1} as an ordered slice of length k. n and k must
// satisfy n >= k >= 1 and n >= 2.
type CombinationGenerator struct {
	n, k      int
	previous  []int
	remaining uint64
}

// NewCombinationGenerator returns a generator for the k-subsets of a set
// of size n. It panics if n < k, k < 1, or n < 2.
func NewCombinationGenerator(n, k int) *CombinationGenerator {
	if n < 0 || k < 0 {
		panic(badNegInput)
	}
	if n < k {
		panic(badSetSize)
	}
	if k < 1 || n < 2 {
		panic("combin: k must be >= 1 and n must be >= 2")
	}
	return &CombinationGenerator{
		n:         n,
		k:         k,
		remaining: uint64(combin.Binomial(n, k)),
	}
}

// Next advances the generator and reports whether a combination is
// available. It must be called before the first call to Combination.
func (c *CombinationGenerator) Next() bool {
	if c.remaining == 0 {
		return false
	}
	if c.previous == nil {
		c.previous = make([]int, c.k)
		for i := range c.previous {
			c.previous[i] = i
		}
	} else {
		nextCombination(c.previous, c.n, c.k)
	}
	c.remaining--
	return true
}

// Combination returns the current combination. The returned slice is
// owned by the generator: it is valid only until the next call to Next,
// and must not be modified by the caller.
func (c *CombinationGenerator) Combination() []int {
	if c.previous == nil {
		panic("combin: Combination called before Next")
	}
	return c.previous
}

// Remaining reports the number of combinations not yet produced,
// including the one that would be returned by the next call to Next.
func (c *CombinationGenerator) Remaining() uint64 {
	return c.remaining
}

// nextCombination advances s, a combination of k elements drawn from
// {0,...,n-1} stored in increasing order, to the lexicographically next
// combination. It is the in-place step gonum's stat/combin package uses
// for its own CombinationGenerator.
func nextCombination(s []int, n, k int) {
	for j := k - 1; j >= 0; j-- {
		if s[j] == n+j-k {
			continue
		}
		s[j]++
		for l := j + 1; l < k; l++ {
			s[l] = s[j] + l - j
		}
		break
	}
}
