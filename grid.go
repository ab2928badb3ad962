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

// Package tilescan selects cells of a bounded tile grid.
//
// Callers compose a [Rule] from leaf predicates and combinators, then run one
// of the scanners ([Ray], [Scan], [Flood], [All], [AdjacentLocations], [Lines]) to
// obtain an ordered list of [Location] values.  The results can be combined
// with [Join], sorted, summarised with [BoundsOf], or turned into an
// [Outline] for drawing.
//
// The package only reads the grid, through the [Grid] interface.  All
// functions are synchronous and allocate their working storage per call, so
// rules and results can be shared freely.
package tilescan

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Grid is the read-only view of a tile map that the scanners need.
//
// Implementations must not change while a scan is running.
type Grid interface {
	// Width and Height give the grid size in tiles.
	Width() int
	Height() int

	// Scale is the base-2 logarithm of the tile size in pixels.
	Scale() int

	// IsOutside reports whether (column, row) lies outside the grid.
	IsOutside(column, row int) bool

	// IsWall reports whether the tile at (column, row) is a wall.
	IsWall(column, row int) bool

	// OccupantAt returns the tile at (column, row), or nil if there is none.
	// Out-of-bounds coordinates must not panic.
	OccupantAt(column, row int) Occupant
}

// Occupant is an opaque handle for the content of a grid cell.
//
// Two occupants match if they are identical (==) or if Equal reports true.
// The dynamic type must be comparable; pointer types are the usual choice.
// Equal may be called with a nil argument, and on a nil pointer receiver;
// a nil pointer should be equal to a nil Occupant, since both describe an
// empty cell.
type Occupant interface {
	Equal(other Occupant) bool
}

// sameOccupant implements the matching rule for occupants.
func sameOccupant(a, b Occupant) bool {
	if a == b {
		return true
	}
	if a != nil {
		return a.Equal(b)
	}
	return b.Equal(a)
}

// Location is the position of a grid cell.
// Two locations are equal iff both fields match.
type Location struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

// Loc is shorthand for Location{Column: column, Row: row}.
func Loc(column, row int) Location {
	return Location{Column: column, Row: row}
}

func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Column, l.Row)
}

// Neighbor returns the location one step away in direction d.
func (l Location) Neighbor(d Direction) Location {
	dc, dr := d.Step()
	return Location{Column: l.Column + dc, Row: l.Row + dr}
}

// Center returns the pixel coordinates of the centre of the cell,
// for tiles of size 1<<scale.
func (l Location) Center(scale int) vec.Vec2 {
	s := shift(scale)
	half := (1 << s) / 2
	return vec.Vec2{
		X: float64(l.Column<<s + half),
		Y: float64(l.Row<<s + half),
	}
}

// shift converts a grid scale into a shift count.
// Negative scales are treated as 0.
func shift(scale int) uint {
	if scale < 0 {
		return 0
	}
	return uint(scale)
}

// Direction is one of the four cardinal directions.
type Direction uint8

// These are the cardinal directions, in the order used by [Scan].
const (
	Up Direction = iota
	Right
	Down
	Left
)

// Step returns the column and row offsets for one step in direction d.
func (d Direction) Step() (dc, dr int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}
