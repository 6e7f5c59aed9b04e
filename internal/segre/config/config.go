// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the driver's run parameters from a YAML file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lomadriel/hyperplanefinder/internal/segre"
)

// Config controls how far the driver climbs the dimension ladder and
// which optional, more expensive computations it performs along the way.
type Config struct {
	// MaxDimension is the highest dimension to build and classify.
	// Must be at least 2, since dimension 1 has no hyperplanes to report.
	MaxDimension int `yaml:"max_dimension"`

	// WithPointOrders enables the per-hyperplane included-line-order
	// breakdown in the hyperplane table.
	WithPointOrders bool `yaml:"with_point_orders"`

	// WithSubGeometries enables the per-axis sub-geometry profile in the
	// hyperplane table. Requires dimension >= 2 to have any effect.
	WithSubGeometries bool `yaml:"with_sub_geometries"`

	// LatexOutputDir, when non-empty, is the directory the driver writes
	// its LaTeX table files into: per dimension, one for the hyperplane
	// table and one for the Veldkamp-line table, each only when that
	// table has rows. Left empty, LaTeX rendering is skipped.
	LatexOutputDir string `yaml:"latex_output_dir"`

	// WithAutomorphisms enables logging, per dimension, the smallest and
	// largest stabiliser size among the hyperplanes under the geometry's
	// full symmetry group. The group has
	// order (4!)^d * d!, so this is only computed for dimensions at or
	// below AutomorphismMaxDimension.
	WithAutomorphisms bool `yaml:"with_automorphisms"`

	// AutomorphismMaxDimension caps the dimension WithAutomorphisms
	// applies to, since the symmetry group's order grows factorially.
	AutomorphismMaxDimension int `yaml:"automorphism_max_dimension"`
}

// Default returns the configuration the driver falls back to when no
// file is given on the command line.
func Default() Config {
	return Config{
		MaxDimension:             4,
		WithPointOrders:          true,
		WithSubGeometries:        true,
		LatexOutputDir:           "",
		WithAutomorphisms:        false,
		AutomorphismMaxDimension: 2,
	}
}

// Load reads and validates a Config from a YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &segre.InvalidInputError{
			Context: "config.Load",
			Reason:  err.Error(),
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &segre.InvalidInputError{
			Context: "config.Load",
			Reason:  "malformed YAML: " + err.Error(),
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether cfg's fields are within the ranges the driver
// can act on.
func (cfg Config) Validate() error {
	if cfg.MaxDimension < 2 {
		return &segre.InvalidInputError{
			Context: "config.Validate",
			Reason:  "max_dimension must be at least 2",
		}
	}
	return nil
}
