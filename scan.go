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

import "math"

// ScanOptions controls [Ray], [Scan] and [Flood].
type ScanOptions struct {
	// MaxDistance limits how far a scan travels from the origin, in steps.
	// Values <= 0 mean no limit.
	MaxDistance int

	// Rule decides which cells are included.  If Rule is nil, [Ray] and
	// [Scan] accept every cell inside the grid, and [Flood] accepts cells
	// whose occupant matches the occupant at the origin.
	Rule Rule
}

// unbounded is the distance limit used when MaxDistance is not set.
const unbounded = math.MaxInt

// resolve returns the effective distance limit and rule.
func (o ScanOptions) resolve(defaultRule func() Rule) (int, Rule) {
	maxDist := o.MaxDistance
	if maxDist <= 0 {
		maxDist = unbounded
	}
	rule := o.Rule
	if rule == nil {
		rule = defaultRule()
	}
	return maxDist, rule
}

// Ray walks from origin in direction d and returns the cells passed, in
// order of increasing distance.  The origin itself is not included.
//
// The rule is first checked at the origin; if it fails there the result is
// empty.  Otherwise the walk stops before the first cell which is further
// than MaxDistance, outside the grid, or rejected by the rule.
func Ray(g Grid, origin Location, d Direction, opt ScanOptions) []Location {
	if g == nil {
		return nil
	}
	maxDist, rule := opt.resolve(True)
	if !Evaluate(rule, origin.Column, origin.Row, g) {
		return nil
	}
	return ray(g, origin, d, maxDist, rule, nil)
}

// ray appends the cells of a ray scan to res.
// The caller has already checked the origin.
func ray(g Grid, origin Location, d Direction, maxDist int, rule Rule, res []Location) []Location {
	dc, dr := d.Step()
	cur := origin
	for dist := 1; ; dist++ {
		if dist > maxDist {
			break
		}
		cur = Location{Column: cur.Column + dc, Row: cur.Row + dr}
		if g.IsOutside(cur.Column, cur.Row) {
			break
		}
		if !Evaluate(rule, cur.Column, cur.Row, g) {
			break
		}
		res = append(res, cur)
	}
	return res
}

// Scan performs a [Ray] scan in every direction of dirs.  The result starts
// with the origin, followed by the cells found in each direction, with
// directions visited in the order given by [ScanDirection.Directions].
// If the rule fails at the origin, the result is empty.
func Scan(g Grid, origin Location, dirs ScanDirection, opt ScanOptions) []Location {
	if g == nil {
		return nil
	}
	maxDist, rule := opt.resolve(True)
	if !Evaluate(rule, origin.Column, origin.Row, g) {
		return nil
	}

	res := []Location{origin}
	for _, d := range dirs.Directions() {
		res = ray(g, origin, d, maxDist, rule, res)
	}
	return res
}

// Flood performs a breadth-first search from origin over 4-connected cells
// which match the rule, and returns the matching cells in the order they
// were visited.
//
// A cell is only expanded if it matches the rule.  Cells more than
// MaxDistance steps away from the origin are never visited.  The origin is
// included only if it matches the rule.  Each cell appears at most once.
func Flood(g Grid, origin Location, opt ScanOptions) []Location {
	if g == nil {
		return nil
	}
	maxDist, rule := opt.resolve(func() Rule {
		return OccupantIs(g.OccupantAt(origin.Column, origin.Row))
	})

	w, h := g.Width(), g.Height()
	if w <= 0 || h <= 0 {
		return nil
	}
	visited := make([]bool, w*h)

	type node struct {
		loc  Location
		dist int
	}
	var queue []node

	// push enqueues a neighbour of a cell at distance parent.
	push := func(c, r, parent int) {
		if parent >= maxDist || g.IsOutside(c, r) {
			return
		}
		if c < 0 || r < 0 || c >= w || r >= h {
			return
		}
		idx := r*w + c
		if visited[idx] {
			return
		}
		visited[idx] = true
		queue = append(queue, node{loc: Location{Column: c, Row: r}, dist: parent + 1})
	}

	push(origin.Column, origin.Row, -1)

	var res []Location
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		c, r := cur.loc.Column, cur.loc.Row
		if !Evaluate(rule, c, r, g) {
			continue
		}
		res = append(res, cur.loc)
		push(c+1, r, cur.dist)
		push(c-1, r, cur.dist)
		push(c, r+1, cur.dist)
		push(c, r-1, cur.dist)
	}
	return res
}

// All returns every cell of the grid which matches rule, ordered by column
// and then by row.
func All(g Grid, rule Rule) []Location {
	if g == nil {
		return nil
	}
	var res []Location
	w, h := g.Width(), g.Height()
	for c := range w {
		for r := range h {
			if Evaluate(rule, c, r, g) {
				res = append(res, Location{Column: c, Row: r})
			}
		}
	}
	return res
}

// ForEachAdjacent calls fn for the neighbours of (column, row) selected by
// mode.  Edge neighbours are visited first, in the order left, top, right,
// bottom, followed by the corner neighbours top-left, top-right,
// bottom-left, bottom-right.  Neighbours outside the grid are skipped unless
// includeOutside is set.
//
// This is the same enumeration used by the [Borders] rule.
func ForEachAdjacent(g Grid, column, row int, mode BorderMode, includeOutside bool, fn func(column, row int)) {
	if g == nil {
		return
	}
	forEachNeighbor(g, column, row, mode.sides(), includeOutside, func(_ SideMask, c, r int) bool {
		fn(c, r)
		return true
	})
}

// AdjacentLocations returns the neighbours of origin inside the grid which
// are selected by mode and match rule.  A nil rule accepts all neighbours.
func AdjacentLocations(g Grid, origin Location, mode BorderMode, rule Rule) []Location {
	var res []Location
	ForEachAdjacent(g, origin.Column, origin.Row, mode, false, func(c, r int) {
		if Evaluate(rule, c, r, g) {
			res = append(res, Location{Column: c, Row: r})
		}
	})
	return res
}
