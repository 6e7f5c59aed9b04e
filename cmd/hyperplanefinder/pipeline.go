// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/sirupsen/logrus"

	"github.com/lomadriel/hyperplanefinder/internal/automorphism"
	"github.com/lomadriel/hyperplanefinder/internal/bitset"
	"github.com/lomadriel/hyperplanefinder/internal/classify"
	"github.com/lomadriel/hyperplanefinder/internal/geom"
	"github.com/lomadriel/hyperplanefinder/internal/hyperplane"
	"github.com/lomadriel/hyperplanefinder/internal/segre/config"
	"github.com/lomadriel/hyperplanefinder/internal/veldkamp"
)

// DimensionReport holds every table the pipeline computed for one
// dimension of the geometry ladder.
type DimensionReport struct {
	Dimension         int
	Geometry          *geom.Geometry
	Hyperplanes       []bitset.Set
	HyperplaneTable   []classify.HyperplaneTableRow
	Projective        []veldkamp.Line
	Exceptional       []veldkamp.Line
	VeldkampLineTable []classify.VeldkampLineTableRow
}

// runPipeline builds Geometry<1> through Geometry<cfg.MaxDimension>,
// discovering each dimension's hyperplanes (brute force at dimension 2,
// Veldkamp lift from then on), classifying them, and resolving the
// Veldkamp lines needed to lift to the next dimension.
func runPipeline(cfg config.Config, log *logrus.Logger) []DimensionReport {
	dims := make([]*geom.Geometry, cfg.MaxDimension)
	dims[0] = geom.Base()
	for d := 1; d < cfg.MaxDimension; d++ {
		dims[d] = geom.Lift(dims[d-1])
	}

	reports := make([]DimensionReport, 0, cfg.MaxDimension)

	var prevHyps []bitset.Set
	var prevTable []classify.HyperplaneTableRow
	var allProjective []veldkamp.Line

	for idx, g := range dims {
		d := idx + 1
		log.WithFields(logrus.Fields{"dimension": d, "points": g.NumPoints, "lines": len(g.Lines)}).Info("geometry built")

		var hyps []bitset.Set
		switch {
		case d <= 2:
			hyps = hyperplane.BruteForce(g)
		default:
			hyps = hyperplane.FromVeldkampLift(dims[idx-1], prevHyps, allProjective)
		}
		log.WithFields(logrus.Fields{"dimension": d, "count": len(hyps)}).Info("hyperplanes discovered")

		table := classify.HyperplaneTable(g, hyps, prevTable, cfg.WithPointOrders, cfg.WithSubGeometries && d >= 2)
		classify.SortHyperplaneRows(table)

		if cfg.WithAutomorphisms && d <= cfg.AutomorphismMaxDimension && len(hyps) > 0 {
			logAutomorphismSummary(log, d, g, hyps)
		}

		var projective, exceptional []veldkamp.Line
		var lineTable []classify.VeldkampLineTableRow
		if d >= 2 && d < cfg.MaxDimension {
			var supposedExceptional []veldkamp.Line
			projective, supposedExceptional = veldkamp.Find(hyps)
			next := dims[idx+1]
			reclassified, stillExceptional := veldkamp.Distinguish(supposedExceptional, hyps, g, next)
			projective = append(projective, reclassified...)
			exceptional = stillExceptional

			log.WithFields(logrus.Fields{
				"dimension":   d,
				"projective":  len(projective),
				"exceptional": len(exceptional),
			}).Info("Veldkamp lines classified")

			lineTable = classify.VeldkampLineTable(g, hyps, table, projective, exceptional)
			classify.SortVeldkampLineRows(lineTable)
		}

		reports = append(reports, DimensionReport{
			Dimension:         d,
			Geometry:          g,
			Hyperplanes:       hyps,
			HyperplaneTable:   table,
			Projective:        projective,
			Exceptional:       exceptional,
			VeldkampLineTable: lineTable,
		})

		prevHyps, prevTable, allProjective = hyps, table, projective
	}

	return reports
}

// logAutomorphismSummary reports the minimum and maximum stabiliser size
// among hyps under g's symmetry group, a cheap sanity signal that the
// hyperplane list is being acted on by a group of the expected order.
func logAutomorphismSummary(log *logrus.Logger, dimension int, g *geom.Geometry, hyps []bitset.Set) {
	min, max := -1, -1
	for _, h := range hyps {
		count := automorphism.StabilizerCount(g, h)
		if min == -1 || count < min {
			min = count
		}
		if count > max {
			max = count
		}
	}
	log.WithFields(logrus.Fields{
		"dimension":    dimension,
		"minStabilizer": min,
		"maxStabilizer": max,
	}).Info("automorphism stabiliser range")
}
