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

import "bitbucket.org/ctessum/sparse"

// Nodata is the canonical sentinel for a missing measurement. Cells are
// compared against it with exact float equality, never a tolerance: the
// value only ever gets into a cell by being written verbatim, either by
// asciigrid.Read substituting a file's own NODATA_value or by NewGrid's
// initial fill.
const Nodata = -9999.0

// Grid is a dense row-major raster of 64-bit measurements, plus the
// ArcInfo ASCII header fields a round trip needs to preserve. Cell
// storage is a *sparse.DenseArray of shape [nrows, ncols] - the same
// dense-array type the wider InMAP model uses for its meteorology and
// concentration fields, here holding a 2D elevation/measurement surface
// instead of a 3D atmospheric one.
type Grid struct {
	data *sparse.DenseArray

	XLLCorner string
	YLLCorner string
	CellSize  string
}

// NewGrid allocates a Grid of the given dimensions, pre-filled with
// Nodata, carrying the given header fields verbatim for later round-trip.
func NewGrid(nrows, ncols int, xllcorner, yllcorner, cellsize string) *Grid {
	g := &Grid{
		data:      sparse.ZerosDense(nrows, ncols),
		XLLCorner: xllcorner,
		YLLCorner: yllcorner,
		CellSize:  cellsize,
	}
	for i := range g.data.Elements {
		g.data.Elements[i] = Nodata
	}
	return g
}

// Nrows returns the number of rows.
func (g *Grid) Nrows() int { return g.data.Shape[0] }

// Ncols returns the number of columns.
func (g *Grid) Ncols() int { return g.data.Shape[1] }

// At returns the value at (row, col).
func (g *Grid) At(row, col int) float64 { return g.data.Get(row, col) }

// Set assigns the value at (row, col).
func (g *Grid) Set(row, col int, v float64) { g.data.Set(v, row, col) }
