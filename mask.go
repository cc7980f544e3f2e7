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
)

// DefaultMaxMaskSide bounds how large a circular mask's bounding square
// may grow, protecting against an unreasonably large radius allocating
// an enormous boolean matrix. The original program enforced a similar
// limit by way of a fixed-size compile-time array; this implementation
// sizes the mask dynamically from the radius but keeps the same failure
// mode (ErrInvalidRadius) for a radius that would blow past any sane
// bound.
const DefaultMaxMaskSide = 4001

// CircularMask is the boolean window of cells lying within a given
// Euclidean radius of a focal cell. It is square, odd-sided, and centered
// on Center.
type CircularMask struct {
	// Side is the mask's side length, always odd.
	Side int
	// Center is the index of the middle row/column, (Side-1)/2.
	Center int
	// MaskSum is the number of included cells.
	MaskSum int
	// MinRow is the smallest row index containing any included cell.
	MinRow int

	included [][]bool
}

// NewCircularMask builds the mask for the given radius, in cells. Radius
// must be non-negative and must not require a bounding square wider than
// maxSide; pass DefaultMaxMaskSide for the usual limit.
func NewCircularMask(radius float64, maxSide int) (*CircularMask, error) {
	if radius < 0 || math.IsNaN(radius) {
		return nil, fmt.Errorf("%w: radius %v is negative", ErrInvalidRadius, radius)
	}
	side := 2*int(math.Ceil(radius)) + 1
	if side > maxSide {
		return nil, fmt.Errorf("%w: radius %v requires mask side %d, exceeding limit %d", ErrInvalidRadius, radius, side, maxSide)
	}
	center := (side - 1) / 2

	included := make([][]bool, side)
	sum := 0
	minRow := side
	for i := 0; i < side; i++ {
		included[i] = make([]bool, side)
		di := float64(i - center)
		for j := 0; j < side; j++ {
			dj := float64(j - center)
			d := math.Sqrt(di*di + dj*dj)
			if d <= radius {
				included[i][j] = true
				sum++
				if i < minRow {
					minRow = i
				}
			}
		}
	}
	if sum == 0 {
		return nil, ErrEmptyMask
	}
	return &CircularMask{Side: side, Center: center, MaskSum: sum, MinRow: minRow, included: included}, nil
}

// Included reports whether mask cell (i, j) lies within the circle.
func (m *CircularMask) Included(i, j int) bool {
	return m.included[i][j]
}
