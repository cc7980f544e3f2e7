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

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
)

// DefaultChunkSize is the number of rows handed to a worker at a time.
// Matches the granularity the original OpenMP implementation used
// (#pragma omp parallel for schedule(dynamic, CHUNKSIZE) with
// CHUNKSIZE=100): small enough to balance load across workers when
// per-row cost varies (Min/Max reseeds are not evenly distributed),
// large enough to keep dispatch overhead negligible.
const DefaultChunkSize = 100

// FilterEngine drives a focal-statistics pass: it validates a
// FilterConfig, builds the CircularMask and EdgeLists once, computes the
// usable interior bounding box, and dispatches output rows to worker
// goroutines.
type FilterEngine struct {
	config        FilterConfig
	mask          *CircularMask
	edges         *EdgeLists
	requiredCount int
	edgeGuard     int
}

// NewFilterEngine validates config and builds the engine's mask and edge
// lists. The mask and edge lists are immutable and shared read-only by
// every worker goroutine Run spawns.
func NewFilterEngine(config FilterConfig) (*FilterEngine, error) {
	if config.CoverageMin < 0 || config.CoverageMin > 1 || math.IsNaN(config.CoverageMin) {
		return nil, fmt.Errorf("coverage_min %v is outside [0,1]", config.CoverageMin)
	}
	mask, err := NewCircularMask(config.Radius, config.maxMaskSide())
	if err != nil {
		return nil, err
	}
	edges := NewEdgeLists(mask)

	required := int(math.Ceil(config.CoverageMin * float64(mask.MaskSum)))
	if required < 1 {
		// A coverage_min of 0 still requires at least one non-nodata
		// value in the window: an aggregate over zero values is
		// undefined (and would divide by zero for Mean), not "zero
		// coverage needed".
		required = 1
	}

	return &FilterEngine{
		config:        config,
		mask:          mask,
		edges:         edges,
		requiredCount: required,
		edgeGuard:     mask.Center - mask.MinRow,
	}, nil
}

// Mask returns the engine's circular window mask.
func (e *FilterEngine) Mask() *CircularMask { return e.mask }

// EdgeLists returns the engine's trailing/leading edge offsets.
func (e *FilterEngine) EdgeLists() *EdgeLists { return e.edges }

// EdgeGuard returns the border thickness, in cells, that is left as
// nodata on every side of the output.
func (e *FilterEngine) EdgeGuard() int { return e.edgeGuard }

// RequiredCount returns the minimum number of non-nodata window cells
// needed to emit a value, derived from config.CoverageMin.
func (e *FilterEngine) RequiredCount() int { return e.requiredCount }

// Bounds returns the processed output region [rowStart,rowEnd) x
// [colStart,colEnd) for a grid of the given dimensions, or
// ErrGridTooSmall if that region is empty.
func (e *FilterEngine) Bounds(nrows, ncols int) (rowStart, rowEnd, colStart, colEnd int, err error) {
	rowStart, rowEnd = e.edgeGuard, nrows-e.edgeGuard
	colStart, colEnd = e.edgeGuard, ncols-e.edgeGuard
	if rowEnd <= rowStart || colEnd <= colStart {
		return 0, 0, 0, 0, fmt.Errorf("%w: %dx%d grid has no usable interior for edge guard %d", ErrGridTooSmall, nrows, ncols, e.edgeGuard)
	}
	return rowStart, rowEnd, colStart, colEnd, nil
}

// Run computes the focal statistic over in's interior and writes it into
// out, which must already be allocated to the same dimensions as in (and
// is conventionally pre-filled with Nodata, since the border is never
// touched). workers is the number of goroutines to use; zero or negative
// means runtime.GOMAXPROCS(0).
//
// Input is read-only and output rows are disjoint across workers, so no
// locking is needed: rows are handed out dynamically from a shared
// counter in chunks of DefaultChunkSize, the same dynamic-scheduling
// granularity the original OpenMP implementation used, adapted here to a
// lock-free atomic work queue instead of a compiler pragma.
func (e *FilterEngine) Run(in, out *Grid, workers int) error {
	if in.Nrows() != out.Nrows() || in.Ncols() != out.Ncols() {
		return fmt.Errorf("focal: input grid %dx%d and output grid %dx%d have different dimensions",
			in.Nrows(), in.Ncols(), out.Nrows(), out.Ncols())
	}
	rowStart, rowEnd, colStart, colEnd, err := e.Bounds(in.Nrows(), in.Ncols())
	if err != nil {
		return err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var nextRow int64 = int64(rowStart)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				start := int(atomic.AddInt64(&nextRow, DefaultChunkSize)) - DefaultChunkSize
				if start >= rowEnd {
					return
				}
				end := start + DefaultChunkSize
				if end > rowEnd {
					end = rowEnd
				}
				for row := start; row < end; row++ {
					e.processRow(in, out, row, colStart, colEnd)
				}
			}
		}()
	}
	wg.Wait()
	return nil
}

// processRow computes one output row: a seed scan at colStart followed by
// incremental shifts across the rest of the row. Aggregator state is
// freshly initialized here and never carried over between rows.
func (e *FilterEngine) processRow(in, out *Grid, row, colStart, colEnd int) {
	agg := e.config.Aggregate.newAggregator()
	agg.Reset()

	coverage := e.seedWindow(in, agg, row, colStart)
	e.emit(out, row, colStart, agg, coverage)

	for col := colStart + 1; col < colEnd; col++ {
		coverage = e.shift(in, agg, row, col, coverage)
		if agg.NeedsReseed() {
			agg.Reset()
			coverage = e.seedWindow(in, agg, row, col)
		}
		e.emit(out, row, col, agg, coverage)
	}
}

// seedWindow performs a full-window scan at (row, col), the algorithm's
// "seed" phase, returning the resulting coverage count. Used both for a
// row's leading column and for a Min/Max reseed mid-row.
func (e *FilterEngine) seedWindow(in *Grid, agg Aggregator, row, col int) int {
	coverage := 0
	c := e.mask.Center
	for i := 0; i < e.mask.Side; i++ {
		rowIn := row + i - c
		for j := 0; j < e.mask.Side; j++ {
			if !e.mask.Included(i, j) {
				continue
			}
			colIn := col + j - c
			v := in.At(rowIn, colIn)
			if v == Nodata {
				continue
			}
			coverage++
			agg.Admit(v, rowIn, colIn)
		}
	}
	return coverage
}

// shift applies EdgeLists to transition the window from column col-1 to
// col, retiring trailing cells and admitting leading ones.
func (e *FilterEngine) shift(in *Grid, agg Aggregator, row, col, coverage int) int {
	for _, t := range e.edges.Trailing {
		r, cc := row+t.DRow, col+t.DCol
		v := in.At(r, cc)
		if v != Nodata {
			coverage--
			agg.Retire(v, r, cc)
		}
	}
	for _, l := range e.edges.Leading {
		r, cc := row+l.DRow, col+l.DCol
		v := in.At(r, cc)
		if v != Nodata {
			coverage++
			agg.Admit(v, r, cc)
		}
	}
	return coverage
}

func (e *FilterEngine) emit(out *Grid, row, col int, agg Aggregator, coverage int) {
	if coverage >= e.requiredCount {
		out.Set(row, col, agg.Value(coverage))
	} else {
		out.Set(row, col, Nodata)
	}
}
