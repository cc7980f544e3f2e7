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

// Package focal computes focal (neighborhood) statistics over a dense 2D
// raster: for every interior cell it aggregates (mean, sum, min, or max)
// the values lying within a circular window of a given radius.
//
// The package is organized the way the underlying algorithm is described:
// a Grid holds the raster, a CircularMask describes the window shape, an
// EdgeLists pair lets a FilterEngine slide that window one column at a
// time in O(perimeter) rather than O(area) work, and an Aggregator family
// implements the per-statistic seed/shift kernels. FilterEngine ties these
// together and parallelizes across rows.
package focal
