/*
Copyright © 2026 the focalfilter authors.
This file is part of focalfilter.

focalfilter is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

focalfilter is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with focalfilter.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command filter computes focal (neighborhood) statistics over an
// ArcInfo ASCII raster grid using a circular window.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hrtgeomatics/focalfilter"
	"github.com/hrtgeomatics/focalfilter/asciigrid"
)

var log = logrus.StandardLogger()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "filter <input_path> <radius> <code> <output_path> [coverage]",
		Short: "Compute focal (neighborhood) statistics over a raster grid",
		Long: `filter computes a focal statistic - mean, sum, minimum, or maximum -
over a circular neighborhood window centered on every cell of an ArcInfo
ASCII raster grid.

Arguments:
  input_path   ArcGIS ASCII raster to read
  radius       window radius, in cells (e.g. 3.5)
  code         function code: m=mean, s=sum, f=minimum, c=maximum
  output_path  ArcGIS ASCII raster to write
  coverage     optional, default 1.0: the fraction of the window that
               must be non-nodata for a cell to receive a value`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.RangeArgs(4, 5)(cmd, args); err != nil {
				// SilenceUsage below keeps runtime failures terse; a wrong
				// argument count still gets the usage text.
				cmd.Println(cmd.UsageString())
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, workers)
		},
		SilenceUsage: true,
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "number of worker goroutines (default: GOMAXPROCS)")
	return cmd
}

func run(cmd *cobra.Command, args []string, workers int) error {
	inputPath, radiusArg, codeArg, outputPath := args[0], args[1], args[2], args[3]
	coverage := 1.0
	if len(args) == 5 {
		v, err := strconv.ParseFloat(args[4], 64)
		if err != nil {
			return fmt.Errorf("coverage argument %q is not a number: %w", args[4], err)
		}
		coverage = v
	}
	radius, err := strconv.ParseFloat(radiusArg, 64)
	if err != nil {
		return fmt.Errorf("radius argument %q is not a number: %w", radiusArg, err)
	}
	aggregate, err := focal.ParseAggregateCode(codeArg)
	if err != nil {
		return err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	log.Infof("focalfilter: neighborhood statistics, starting %s", time.Now().Format(time.RFC3339))
	log.WithFields(logrus.Fields{
		"input":    inputPath,
		"radius":   radius,
		"function": aggregate,
		"output":   outputPath,
		"coverage": coverage,
		"workers":  workers,
	}).Info("run parameters")

	config := focal.NewFilterConfig(radius, aggregate)
	config.CoverageMin = coverage
	engine, err := focal.NewFilterEngine(config)
	if err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	log.WithFields(logrus.Fields{
		"mask_side": engine.Mask().Side,
		"mask_sum":  engine.Mask().MaskSum,
		"required":  engine.RequiredCount(),
	}).Info("window built")

	fs := afero.NewOsFs()

	readStart := time.Now()
	in, err := asciigrid.Read(fs, inputPath)
	if err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	log.WithField("elapsed", time.Since(readStart)).Infof("read %d x %d grid", in.Nrows(), in.Ncols())

	out := focal.NewGrid(in.Nrows(), in.Ncols(), in.XLLCorner, in.YLLCorner, in.CellSize)

	runStart := time.Now()
	if err := engine.Run(in, out, workers); err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	log.WithFields(logrus.Fields{
		"elapsed": time.Since(runStart),
		"workers": workers,
	}).Info("filter pass complete")

	writeStart := time.Now()
	if err := asciigrid.Write(fs, outputPath, out); err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	log.WithField("elapsed", time.Since(writeStart)).Infof("wrote %s", outputPath)
	return nil
}
