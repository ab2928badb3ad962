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

import "seehuhn.de/go/geom/rect"

// Bounds is the bounding box of a non-empty set of locations, in tiles.
// All four limits are inclusive.
type Bounds struct {
	MinColumn int `json:"min_column"`
	MinRow    int `json:"min_row"`
	MaxColumn int `json:"max_column"`
	MaxRow    int `json:"max_row"`
}

// BoundsOf returns the smallest box containing all of locs.
// The second return value is false if locs is empty; in this case the
// returned Bounds is the zero value and must not be used.
func BoundsOf(locs []Location) (Bounds, bool) {
	if len(locs) == 0 {
		return Bounds{}, false
	}
	b := Bounds{
		MinColumn: locs[0].Column,
		MinRow:    locs[0].Row,
		MaxColumn: locs[0].Column,
		MaxRow:    locs[0].Row,
	}
	for _, l := range locs[1:] {
		b.MinColumn = min(b.MinColumn, l.Column)
		b.MaxColumn = max(b.MaxColumn, l.Column)
		b.MinRow = min(b.MinRow, l.Row)
		b.MaxRow = max(b.MaxRow, l.Row)
	}
	return b, true
}

// Width returns the number of columns covered by b.
func (b Bounds) Width() int {
	return b.MaxColumn - b.MinColumn + 1
}

// Height returns the number of rows covered by b.
func (b Bounds) Height() int {
	return b.MaxRow - b.MinRow + 1
}

// Contains reports whether loc lies inside b.
func (b Bounds) Contains(loc Location) bool {
	return loc.Column >= b.MinColumn && loc.Column <= b.MaxColumn &&
		loc.Row >= b.MinRow && loc.Row <= b.MaxRow
}

// Pixels returns the area covered by b in pixel coordinates, for tiles of
// size 1<<scale.  The y axis points down, so LLy is the top edge.
func (b Bounds) Pixels(scale int) rect.Rect {
	s := shift(scale)
	return rect.Rect{
		LLx: float64(b.MinColumn << s),
		LLy: float64(b.MinRow << s),
		URx: float64((b.MaxColumn + 1) << s),
		URy: float64((b.MaxRow + 1) << s),
	}
}
