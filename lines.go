// seehuhn.de/go/tilescan - rule-based scanning of tile grids
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tilescan

import (
	"cmp"
	"slices"
)

// LineOptions controls [Lines].
type LineOptions struct {
	// MinLength is the shortest run reported.  Values < 1 mean 1.
	MinLength int

	// MaxLength is the longest run reported.  Values <= 0, or values
	// smaller than the effective MinLength, mean max(width, height).
	MaxLength int
}

func (o LineOptions) resolve(w, h int) (minLen, maxLen int) {
	minLen = max(o.MinLength, 1)
	maxLen = o.MaxLength
	if maxLen <= 0 || maxLen < minLen {
		maxLen = max(w, h)
	}
	return minLen, maxLen
}

// Lines finds maximal horizontal and/or vertical runs of consecutive cells
// matching rule.  Each run is returned as a list of locations in
// left-to-right or top-to-bottom order.  Runs whose length is outside the
// range given by opt are dropped.
//
// The result is ordered by decreasing length.  Runs of equal length keep the
// order in which they were found: horizontal runs row by row before vertical
// runs column by column.
func Lines(g Grid, t LineType, rule Rule, opt LineOptions) [][]Location {
	if g == nil {
		return nil
	}
	w, h := g.Width(), g.Height()
	minLen, maxLen := opt.resolve(w, h)

	var lines [][]Location
	emit := func(run []Location) {
		if n := len(run); n >= minLen && n <= maxLen {
			lines = append(lines, run)
		}
	}

	if t.horizontal() {
		for r := range h {
			start := -1
			for c := 0; c <= w; c++ {
				if c < w && Evaluate(rule, c, r, g) {
					if start < 0 {
						start = c
					}
					continue
				}
				if start >= 0 {
					emit(hrun(start, c, r))
					start = -1
				}
			}
		}
	}

	if t.vertical() {
		for c := range w {
			start := -1
			for r := 0; r <= h; r++ {
				if r < h && Evaluate(rule, c, r, g) {
					if start < 0 {
						start = r
					}
					continue
				}
				if start >= 0 {
					emit(vrun(start, r, c))
					start = -1
				}
			}
		}
	}

	slices.SortStableFunc(lines, func(a, b []Location) int {
		return cmp.Compare(len(b), len(a))
	})
	return lines
}

// hrun returns the cells of row from column start (inclusive) to end
// (exclusive).
func hrun(start, end, row int) []Location {
	run := make([]Location, 0, end-start)
	for c := start; c < end; c++ {
		run = append(run, Location{Column: c, Row: row})
	}
	return run
}

// vrun returns the cells of column from row start (inclusive) to end
// (exclusive).
func vrun(start, end, column int) []Location {
	run := make([]Location, 0, end-start)
	for r := start; r < end; r++ {
		run = append(run, Location{Column: column, Row: r})
	}
	return run
}
