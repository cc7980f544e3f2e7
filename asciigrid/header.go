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

// Package asciigrid reads and writes ArcInfo ASCII grid files, the de
// facto interchange format for the focal.Grid raster type.
package asciigrid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hrtgeomatics/focalfilter"
)

// MaxCells bounds the number of cells (nrows * ncols) Read will accept,
// guarding against a corrupt or malicious header declaring an absurd
// raster size before any allocation happens. The input is assumed to fit
// in memory in full (no streaming or out-of-core processing), so this is
// a sanity ceiling rather than a tuned capacity limit.
const MaxCells = 500_000_000

// header holds the six required ArcInfo grid header fields, in the order
// they conventionally appear. Keyword matching is case-insensitive, per
// the format's lack of a real standard.
type header struct {
	ncols, nrows                   int
	xllcorner, yllcorner, cellsize string
	nodataValue                    float64
	haveNodata                     bool
}

const (
	keyUnknown = iota
	keyNcols
	keyNrows
	keyXLLCorner
	keyYLLCorner
	keyCellSize
	keyNodataValue
)

var headerKeys = map[string]int{
	"ncols":        keyNcols,
	"nrows":        keyNrows,
	"xllcorner":    keyXLLCorner,
	"yllcorner":    keyYLLCorner,
	"cellsize":     keyCellSize,
	"nodata_value": keyNodataValue,
}

func (h *header) set(key, value string) error {
	switch headerKeys[strings.ToLower(key)] {
	case keyNcols:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: ncols %q: %v", focal.ErrBadHeader, value, err)
		}
		h.ncols = n
	case keyNrows:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: nrows %q: %v", focal.ErrBadHeader, value, err)
		}
		h.nrows = n
	case keyXLLCorner:
		h.xllcorner = value
	case keyYLLCorner:
		h.yllcorner = value
	case keyCellSize:
		h.cellsize = value
	case keyNodataValue:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: NODATA_value %q: %v", focal.ErrBadHeader, value, err)
		}
		h.nodataValue = f
		h.haveNodata = true
	default:
		return fmt.Errorf("%w: unrecognized header keyword %q", focal.ErrBadHeader, key)
	}
	return nil
}

func (h *header) validate() error {
	if h.ncols <= 0 || h.nrows <= 0 {
		return fmt.Errorf("%w: ncols/nrows not set or non-positive (ncols=%d, nrows=%d)", focal.ErrBadHeader, h.ncols, h.nrows)
	}
	if h.xllcorner == "" || h.yllcorner == "" || h.cellsize == "" {
		return fmt.Errorf("%w: missing xllcorner, yllcorner, or cellsize", focal.ErrBadHeader)
	}
	if !h.haveNodata {
		return fmt.Errorf("%w: missing NODATA_value", focal.ErrBadHeader)
	}
	return nil
}
