// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package segre collects the error taxonomy shared by the geometry,
// hyperplane, Veldkamp-line and classification packages that build the
// Segré-product incidence structures.
package segre

import "fmt"

// InvalidInputError is returned when a construction-time argument cannot
// describe a valid Segré geometry: an out-of-range dimension, or a line
// set whose length or point indices are inconsistent with the declared
// dimension.
type InvalidInputError struct {
	// Context names the constructor or field that rejected the input.
	Context string
	Reason  string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("segre: invalid input in %s: %s", e.Context, e.Reason)
}

// UnreachableInvariantError marks a violated internal invariant: a lookup
// or case analysis that the algorithm guarantees will succeed has failed.
// It always indicates a bug in the core, never an environmental failure,
// so callers are expected to let it propagate as a panic rather than
// recover from it.
type UnreachableInvariantError struct {
	Invariant string
	Detail    string
}

func (e *UnreachableInvariantError) Error() string {
	return fmt.Sprintf("segre: unreachable invariant %q violated: %s", e.Invariant, e.Detail)
}

// Unreachable panics with an UnreachableInvariantError naming invariant
// and detail. It is the single call site used whenever the core detects
// that a guaranteed postcondition failed to hold.
func Unreachable(invariant, detail string) {
	panic(&UnreachableInvariantError{Invariant: invariant, Detail: detail})
}
