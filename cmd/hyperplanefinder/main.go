// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hyperplanefinder builds the Segré-product geometry ladder,
// discovers and classifies each dimension's hyperplanes and Veldkamp
// lines, and optionally renders the classification tables as LaTeX.
package main

func main() {
	Execute()
}
