// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/lomadriel/hyperplanefinder/internal/segre/config"
)

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRunPipelineDimension2Counts(t *testing.T) {
	cfg := config.Default()
	cfg.MaxDimension = 2

	reports := runPipeline(cfg, silentLogger())
	require.Len(t, reports, 2)

	require.Equal(t, 1, reports[0].Dimension)
	require.Empty(t, reports[0].Hyperplanes)

	require.Equal(t, 2, reports[1].Dimension)
	require.Len(t, reports[1].Hyperplanes, 80)

	total := 0
	for _, row := range reports[1].HyperplaneTable {
		total += row.Count
	}
	require.Equal(t, 80, total)
}

func TestRunPipelineDimension3LiftsFromVeldkampLines(t *testing.T) {
	cfg := config.Default()
	cfg.MaxDimension = 3

	reports := runPipeline(cfg, silentLogger())
	require.Len(t, reports, 3)

	dim2 := reports[1]
	require.NotEmpty(t, dim2.Projective, "dimension 2 must resolve at least one projective Veldkamp line to seed the lift")
	require.Empty(t, dim2.Exceptional, "every supposed exceptional line at dimension 2 is expected to be reclassified projective")

	dim3 := reports[2]
	require.NotEmpty(t, dim3.Hyperplanes)
	for _, h := range dim3.Hyperplanes {
		require.True(t, dim3.Geometry.IsHyperplane(h))
	}
}

func TestRunPipelineWithAutomorphismsDoesNotPanic(t *testing.T) {
	cfg := config.Default()
	cfg.MaxDimension = 2
	cfg.WithAutomorphisms = true
	cfg.AutomorphismMaxDimension = 2

	require.NotPanics(t, func() {
		runPipeline(cfg, silentLogger())
	})
}

func TestRunPipelineRespectsTableOptions(t *testing.T) {
	cfg := config.Default()
	cfg.MaxDimension = 2
	cfg.WithPointOrders = false
	cfg.WithSubGeometries = false

	reports := runPipeline(cfg, silentLogger())
	for _, row := range reports[1].HyperplaneTable {
		require.Nil(t, row.PointsByOrder)
		require.Nil(t, row.SubGeometries)
	}
}
