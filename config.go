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

package focal

import "fmt"

// Aggregate identifies which statistic a FilterEngine computes.
type Aggregate int

const (
	AggregateMean Aggregate = iota
	AggregateSum
	AggregateMin
	AggregateMax
)

// String returns the human-readable name used in logging.
func (a Aggregate) String() string {
	switch a {
	case AggregateMean:
		return "mean"
	case AggregateSum:
		return "sum"
	case AggregateMin:
		return "min"
	case AggregateMax:
		return "max"
	default:
		return "unknown"
	}
}

// ParseAggregateCode maps a single-letter function code to an Aggregate,
// per the command-line contract: m/M mean, s/S sum, f/F minimum, c/C
// maximum.
func ParseAggregateCode(code string) (Aggregate, error) {
	switch code {
	case "m", "M":
		return AggregateMean, nil
	case "s", "S":
		return AggregateSum, nil
	case "f", "F":
		return AggregateMin, nil
	case "c", "C":
		return AggregateMax, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAggregate, code)
	}
}

func (a Aggregate) newAggregator() Aggregator {
	switch a {
	case AggregateMean:
		return &MeanAggregator{}
	case AggregateSum:
		return &SumAggregator{}
	case AggregateMin:
		return &MinAggregator{}
	case AggregateMax:
		return &MaxAggregator{}
	default:
		panic(fmt.Sprintf("focal: unhandled aggregate %v", a))
	}
}

// FilterConfig parameterizes a FilterEngine.
type FilterConfig struct {
	// Radius is the window radius, in cells.
	Radius float64
	// Aggregate selects the statistic to compute.
	Aggregate Aggregate
	// CoverageMin is the fraction of the window that must be non-nodata
	// for an output cell to be produced. Zero value of a zero-valued
	// FilterConfig is NOT a usable default (it means a single non-nodata
	// cell in the window is enough, since FilterEngine never requires
	// fewer than one); use NewFilterConfig or set it explicitly.
	CoverageMin float64
	// MaxMaskSide bounds the mask's bounding square side length. Zero
	// means DefaultMaxMaskSide.
	MaxMaskSide int
}

// NewFilterConfig returns a FilterConfig with CoverageMin defaulted to
// 1.0, matching the command-line contract's default.
func NewFilterConfig(radius float64, aggregate Aggregate) FilterConfig {
	return FilterConfig{Radius: radius, Aggregate: aggregate, CoverageMin: 1.0}
}

func (c FilterConfig) maxMaskSide() int {
	if c.MaxMaskSide > 0 {
		return c.MaxMaskSide
	}
	return DefaultMaxMaskSide
}
