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

import "math"

// Aggregator is the per-window running statistic a FilterEngine row loop
// drives through a seed scan followed by repeated shifts. Coverage
// counting (how many non-nodata cells are currently in the window) is the
// engine's job, not the aggregator's - Value takes the current coverage
// count so Mean can divide by it without every aggregator needing to
// track it redundantly.
type Aggregator interface {
	// Reset clears all running state, as if newly constructed. Called
	// once per output row, and again mid-row when NeedsReseed is true.
	Reset()
	// Admit folds a newly-in-window value into the running state. row
	// and col are the value's grid coordinates, used by Min/Max to
	// remember where the current extremum lives.
	Admit(value float64, row, col int)
	// Retire removes a leaving-the-window value from the running state.
	Retire(value float64, row, col int)
	// NeedsReseed reports whether the running state can no longer be
	// trusted and the caller must Reset and rescan the full window. Only
	// Min and Max ever return true.
	NeedsReseed() bool
	// Value returns the current aggregate, given the current coverage
	// count.
	Value(coverageCount int) float64
}

// SumAggregator computes a running sum.
type SumAggregator struct {
	runsum float64
}

func (a *SumAggregator) Reset()                         { a.runsum = 0 }
func (a *SumAggregator) Admit(value float64, _, _ int)  { a.runsum += value }
func (a *SumAggregator) Retire(value float64, _, _ int) { a.runsum -= value }
func (a *SumAggregator) NeedsReseed() bool              { return false }
func (a *SumAggregator) Value(_ int) float64            { return a.runsum }

// MeanAggregator computes a running sum and divides by coverage on Value.
type MeanAggregator struct {
	runsum float64
}

func (a *MeanAggregator) Reset()                         { a.runsum = 0 }
func (a *MeanAggregator) Admit(value float64, _, _ int)  { a.runsum += value }
func (a *MeanAggregator) Retire(value float64, _, _ int) { a.runsum -= value }
func (a *MeanAggregator) NeedsReseed() bool              { return false }
func (a *MeanAggregator) Value(coverageCount int) float64 {
	return a.runsum / float64(coverageCount)
}

// MinAggregator tracks a running minimum, falling back to a full reseed
// when the cell holding the current minimum retires from the window.
type MinAggregator struct {
	val      float64
	row, col int
	reseed   bool
}

func (a *MinAggregator) Reset() {
	a.val = math.Inf(1)
	a.row, a.col = -1, -1
	a.reseed = false
}

func (a *MinAggregator) Admit(value float64, row, col int) {
	if a.reseed {
		// A pending reseed will redo extremum tracking from scratch;
		// don't bother recording an intermediate candidate.
		return
	}
	if value < a.val {
		a.val, a.row, a.col = value, row, col
	}
}

func (a *MinAggregator) Retire(_ float64, row, col int) {
	if row == a.row && col == a.col {
		a.reseed = true
	}
}

func (a *MinAggregator) NeedsReseed() bool   { return a.reseed }
func (a *MinAggregator) Value(_ int) float64 { return a.val }

// MaxAggregator is the mirror image of MinAggregator.
type MaxAggregator struct {
	val      float64
	row, col int
	reseed   bool
}

func (a *MaxAggregator) Reset() {
	a.val = math.Inf(-1)
	a.row, a.col = -1, -1
	a.reseed = false
}

func (a *MaxAggregator) Admit(value float64, row, col int) {
	if a.reseed {
		return
	}
	if value > a.val {
		a.val, a.row, a.col = value, row, col
	}
}

func (a *MaxAggregator) Retire(_ float64, row, col int) {
	if row == a.row && col == a.col {
		a.reseed = true
	}
}

func (a *MaxAggregator) NeedsReseed() bool   { return a.reseed }
func (a *MaxAggregator) Value(_ int) float64 { return a.val }
