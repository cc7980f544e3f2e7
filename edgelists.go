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

// Edge is a (ΔRow, ΔCol) offset from a focal cell.
type Edge struct {
	DRow, DCol int
}

// EdgeLists holds the trailing and leading edge offsets derived from a
// CircularMask: the cells that leave and enter the window, respectively,
// when the focal cell advances one column to the right. Trailing and
// Leading always have the same length, one entry per mask row that
// contains an included cell - the mask's intersection with each row is a
// single contiguous interval, since a circle is convex.
type EdgeLists struct {
	Trailing []Edge
	Leading  []Edge
}

// NewEdgeLists derives the edge lists from m.
func NewEdgeLists(m *CircularMask) *EdgeLists {
	c := m.Center
	rows := m.Side - m.MinRow - m.MinRow
	trailing := make([]Edge, 0, rows)
	leading := make([]Edge, 0, rows)

	for i := m.MinRow; i < m.Side-m.MinRow; i++ {
		trailingCol, leadingCol := -1, -1
		for j := 0; j < m.Side; j++ {
			if !m.Included(i, j) {
				continue
			}
			leftIncluded := j > 0 && m.Included(i, j-1)
			if !leftIncluded {
				trailingCol = j
			}
			rightIncluded := j < m.Side-1 && m.Included(i, j+1)
			if !rightIncluded {
				leadingCol = j
			}
		}
		if trailingCol >= 0 {
			trailing = append(trailing, Edge{DRow: i - c, DCol: trailingCol - c - 1})
		}
		if leadingCol >= 0 {
			leading = append(leading, Edge{DRow: i - c, DCol: leadingCol - c})
		}
	}
	return &EdgeLists{Trailing: trailing, Leading: leading}
}
