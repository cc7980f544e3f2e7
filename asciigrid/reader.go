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
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/hrtgeomatics/focalfilter"
)

// Read parses the ArcInfo ASCII grid file at path on fs into a
// focal.Grid. Unlike the fscanf-and-sextuple-rewind approach the format
// originated from, this reads the header fields in a single forward
// token scan (whichever order they appear in, and however they're cased)
// before switching to parsing the body - one pass over the file instead
// of six.
//
// Any body value equal to the file's declared NODATA_value, if that value
// is not already focal.Nodata, is rewritten to focal.Nodata and a warning
// is logged: downstream code only ever compares against the one canonical
// sentinel.
func Read(fs afero.Fs, path string) (*focal.Grid, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("asciigrid: opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	scanner.Split(bufio.ScanWords)

	h := &header{}
	for len(headerKeysRemaining(h)) > 0 {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: %s: ran out of tokens before finding %v", focal.ErrBadHeader, path, headerKeysRemaining(h))
		}
		key := scanner.Text()
		if _, known := headerKeys[strings.ToLower(key)]; !known {
			// Not a header keyword we recognize; tolerate unknown leading
			// tokens the way the six independent rewinding scans did,
			// rather than failing on the first surprise.
			continue
		}
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: %s: keyword %q has no value", focal.ErrBadHeader, path, key)
		}
		if err := h.set(key, scanner.Text()); err != nil {
			return nil, fmt.Errorf("asciigrid: %s: %w", path, err)
		}
	}
	if err := h.validate(); err != nil {
		return nil, fmt.Errorf("asciigrid: %s: %w", path, err)
	}
	// Compare by division: nrows*ncols itself can overflow int for an
	// absurd header and wrap to a small value.
	if h.nrows > MaxCells/h.ncols {
		return nil, fmt.Errorf("%w: %s: %dx%d grid exceeds the %d-cell limit", focal.ErrGridTooLarge, path, h.nrows, h.ncols, MaxCells)
	}

	grid := focal.NewGrid(h.nrows, h.ncols, h.xllcorner, h.yllcorner, h.cellsize)

	substituted := 0
	for row := 0; row < h.nrows; row++ {
		for col := 0; col < h.ncols; col++ {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil && err != io.EOF {
					return nil, fmt.Errorf("asciigrid: %s: reading body: %w", path, err)
				}
				return nil, fmt.Errorf("%w: %s: expected %d values, stopped at row %d col %d", focal.ErrTruncatedBody, path, h.nrows*h.ncols, row, col)
			}
			v, err := strconv.ParseFloat(scanner.Text(), 64)
			if err != nil {
				return nil, fmt.Errorf("asciigrid: %s: row %d col %d: %w", path, row, col, err)
			}
			if v == h.nodataValue && h.nodataValue != focal.Nodata {
				v = focal.Nodata
				substituted++
			}
			grid.Set(row, col, v)
		}
	}
	if h.nodataValue != focal.Nodata {
		logrus.WithFields(logrus.Fields{
			"file":              path,
			"declared_nodata":   h.nodataValue,
			"cells_substituted": substituted,
		}).Warnf("NODATA_value %v is not the canonical %v; rewriting to %v", h.nodataValue, focal.Nodata, focal.Nodata)
	}
	return grid, nil
}

func headerKeysRemaining(h *header) []string {
	var missing []string
	if h.ncols == 0 {
		missing = append(missing, "ncols")
	}
	if h.nrows == 0 {
		missing = append(missing, "nrows")
	}
	if h.xllcorner == "" {
		missing = append(missing, "xllcorner")
	}
	if h.yllcorner == "" {
		missing = append(missing, "yllcorner")
	}
	if h.cellsize == "" {
		missing = append(missing, "cellsize")
	}
	if !h.haveNodata {
		missing = append(missing, "NODATA_value")
	}
	return missing
}
