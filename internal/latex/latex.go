// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package latex renders hyperplane and Veldkamp-line tables as LaTeX
// tabular environments, for inclusion directly in a paper or report.
package latex

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/lomadriel/hyperplanefinder/internal/classify"
)

var hyperplaneTemplate = template.Must(template.New("hyperplaneTable").Funcs(funcs).Parse(`% dimension {{.Dimension}} hyperplane classification
\begin{tabular}{|r|r|r|l|r|}
\hline
Points & Lines & Point orders & Sub-geometries & Count \\
\hline
{{- range .Rows}}
{{.Points}} & {{.Lines}} & {{formatIntMap .PointsByOrder}} & {{formatSubGeometries .SubGeometries}} & {{.Count}} \\
{{- end}}
\hline
\end{tabular}
`))

var veldkampLineTemplate = template.Must(template.New("veldkampLineTable").Funcs(funcs).Parse(`% dimension {{.Dimension}} Veldkamp line classification
\begin{tabular}{|l|r|r|r|r|}
\hline
Kind & Core points & Core lines & Point types & Count \\
\hline
{{- range .Rows}}
{{if .Projective}}projective{{else}}exceptional{{end}} & {{.CoreNumPoints}} & {{.CoreNumLines}} & {{formatIntMap .PointsType}} & {{.Count}} \\
{{- end}}
\hline
\end{tabular}
`))

var funcs = template.FuncMap{
	"formatIntMap":        formatIntMap,
	"formatSubGeometries": formatSubGeometries,
}

// formatIntMap renders a map[int]int as a sorted "k:v" comma list, so
// output is deterministic regardless of Go's randomized map iteration.
func formatIntMap(m map[int]int) string {
	if len(m) == 0 {
		return "--"
	}
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	s := ""
	for i, k := range keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d:%d", k, m[k])
	}
	return s
}

// formatSubGeometries renders a hyperplane's per-axis sub-geometry
// profile as one formatIntMap per axis, joined in axis order.
func formatSubGeometries(profile []map[int]int) string {
	if len(profile) == 0 {
		return "--"
	}
	parts := make([]string, len(profile))
	for i, m := range profile {
		parts[i] = formatIntMap(m)
	}
	return strings.Join(parts, "; ")
}

// RenderHyperplaneTable writes rows as a LaTeX tabular environment
// describing the hyperplane classification of the given dimension.
func RenderHyperplaneTable(w io.Writer, dimension int, rows []classify.HyperplaneTableRow) error {
	return hyperplaneTemplate.Execute(w, struct {
		Dimension int
		Rows      []classify.HyperplaneTableRow
	}{dimension, rows})
}

// RenderVeldkampLineTable writes rows as a LaTeX tabular environment
// describing the Veldkamp-line classification of the given dimension.
func RenderVeldkampLineTable(w io.Writer, dimension int, rows []classify.VeldkampLineTableRow) error {
	return veldkampLineTemplate.Execute(w, struct {
		Dimension int
		Rows      []classify.VeldkampLineTableRow
	}{dimension, rows})
}
