// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lomadriel/hyperplanefinder/internal/latex"
	"github.com/lomadriel/hyperplanefinder/internal/segre/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "hyperplanefinder",
	Short: "Classify the hyperplanes and Veldkamp lines of Segré-product geometries",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logrus.New()
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

		cfg := config.Default()
		if cfgPath != "" {
			loaded, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		reports := runPipeline(cfg, log)

		for _, r := range reports {
			log.WithFields(logrus.Fields{
				"dimension":        r.Dimension,
				"hyperplaneClasses": len(r.HyperplaneTable),
				"lineClasses":       len(r.VeldkampLineTable),
			}).Info("dimension summary")
		}

		if cfg.LatexOutputDir != "" {
			if err := writeLatexReports(cfg.LatexOutputDir, reports); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to a YAML config file (defaults to a built-in configuration)")
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Fatal("hyperplanefinder failed")
	}
}

func writeLatexReports(dir string, reports []DimensionReport) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, r := range reports {
		if len(r.HyperplaneTable) > 0 {
			if err := writeLatexFile(filepath.Join(dir, hyperplaneFileName(r.Dimension)), func(w *os.File) error {
				return latex.RenderHyperplaneTable(w, r.Dimension, r.HyperplaneTable)
			}); err != nil {
				return err
			}
		}
		if len(r.VeldkampLineTable) > 0 {
			if err := writeLatexFile(filepath.Join(dir, veldkampLineFileName(r.Dimension)), func(w *os.File) error {
				return latex.RenderVeldkampLineTable(w, r.Dimension, r.VeldkampLineTable)
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeLatexFile(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render(f)
}

func hyperplaneFileName(dimension int) string {
	return "hyperplanes-" + strconv.Itoa(dimension) + ".tex"
}

func veldkampLineFileName(dimension int) string {
	return "veldkamp-lines-" + strconv.Itoa(dimension) + ".tex"
}
