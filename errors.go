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

import "errors"

// Sentinel errors identifying the fatal conditions a filter run can hit.
// Failure paths return or wrap one of these (wrapping uses fmt.Errorf's
// %w verb), so callers can distinguish failure classes with errors.Is
// without depending on message text. Two argument checks return plain
// errors with no sentinel: a CoverageMin outside [0,1] in
// NewFilterEngine, and mismatched input/output dimensions in Run.
var (
	// ErrInvalidRadius is returned when a radius is negative or too large
	// for the mask side the engine is configured to support.
	ErrInvalidRadius = errors.New("invalid radius")

	// ErrEmptyMask is returned when a circular mask would contain zero
	// cells (should not occur for any non-negative radius, but is kept
	// as a defensive invariant check).
	ErrEmptyMask = errors.New("circular mask contains no cells")

	// ErrGridTooSmall is returned when a grid has no usable interior for
	// the configured edge guard.
	ErrGridTooSmall = errors.New("grid too small for requested radius")

	// ErrGridTooLarge is returned when a grid's declared dimensions
	// exceed a configured cell-count limit.
	ErrGridTooLarge = errors.New("grid dimensions exceed configured maximum")

	// ErrBadHeader is returned when a required ArcInfo ASCII grid header
	// key is absent or malformed.
	ErrBadHeader = errors.New("missing or malformed grid header")

	// ErrTruncatedBody is returned when a grid file has fewer numeric
	// tokens than its header declares.
	ErrTruncatedBody = errors.New("grid body has fewer values than declared dimensions")

	// ErrInvalidAggregate is returned for an unrecognized aggregate
	// function code.
	ErrInvalidAggregate = errors.New("unrecognized aggregate function code")
)
