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

package asciigrid

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/afero"

	"github.com/hrtgeomatics/focalfilter"
)

// Write serializes g to path on fs as an ArcInfo ASCII grid, always using
// focal.Nodata as the declared NODATA_value: this package never produces
// a file whose header and body disagree about what the sentinel is.
//
// Body rows are formatted with a single space between values and no
// trailing whitespace, the simplest of the several conventions ArcGIS
// readers tolerate. The original writer's irregular spacing around the
// last two columns of each row is not reproduced.
func Write(fs afero.Fs, path string, g *focal.Grid) error {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("asciigrid: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "ncols %d\n", g.Ncols())
	fmt.Fprintf(w, "nrows %d\n", g.Nrows())
	fmt.Fprintf(w, "xllcorner %s\n", g.XLLCorner)
	fmt.Fprintf(w, "yllcorner %s\n", g.YLLCorner)
	fmt.Fprintf(w, "cellsize %s\n", g.CellSize)
	fmt.Fprintf(w, "NODATA_value %s\n", strconv.FormatFloat(focal.Nodata, 'f', -1, 64))

	for row := 0; row < g.Nrows(); row++ {
		for col := 0; col < g.Ncols(); col++ {
			if col > 0 {
				w.WriteByte(' ')
			}
			w.WriteString(strconv.FormatFloat(g.At(row, col), 'f', -1, 64))
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}
