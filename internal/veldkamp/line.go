// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package veldkamp enumerates the Veldkamp lines of a geometry's
// hyperplane list and separates them into the projective lines used to
// lift to the next dimension and the exceptional lines that are not.
package veldkamp

// Line is an ordered 4-tuple of indices into a hyperplane list sharing a
// common core, together with the projective/exceptional classification
// assigned once the GF(3) rank test has run.
type Line struct {
	Indices    [4]int
	Projective bool
}
