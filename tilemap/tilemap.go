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

// Package tilemap provides a simple in-memory tile map which implements
// [tilescan.Grid].
package tilemap

import (
	"bytes"

	"github.com/go-errors/errors"

	"seehuhn.de/go/tilescan"
)

// Tile is the content of a map cell.
//
// Tiles are compared by value: two distinct *Tile values with the same name
// and pixel data match each other in occupant rules.
type Tile struct {
	Name   string
	Pixels []byte // optional image data, row-major
}

// Equal implements [tilescan.Occupant].
// A nil *Tile stands for an empty cell and equals a nil Occupant.
func (t *Tile) Equal(other tilescan.Occupant) bool {
	var o *Tile
	if other != nil {
		var ok bool
		o, ok = other.(*Tile)
		if !ok {
			return false
		}
	}
	if t == nil || o == nil {
		return t == o
	}
	return t.Name == o.Name && bytes.Equal(t.Pixels, o.Pixels)
}

func (t *Tile) String() string {
	if t == nil {
		return "<empty>"
	}
	return t.Name
}

// TileMap is a rectangular grid of tiles with optional walls.
type TileMap struct {
	width, height int
	scale         int
	tiles         []*Tile
	walls         []bool
}

var _ tilescan.Grid = (*TileMap)(nil)

// New allocates an empty map.  The tile size in pixels is 1<<scale.
func New(width, height, scale int) *TileMap {
	width = max(width, 0)
	height = max(height, 0)
	return &TileMap{
		width:  width,
		height: height,
		scale:  max(scale, 0),
		tiles:  make([]*Tile, width*height),
		walls:  make([]bool, width*height),
	}
}

// Width implements [tilescan.Grid].
func (m *TileMap) Width() int { return m.width }

// Height implements [tilescan.Grid].
func (m *TileMap) Height() int { return m.height }

// Scale implements [tilescan.Grid].
func (m *TileMap) Scale() int { return m.scale }

// IsOutside implements [tilescan.Grid].
func (m *TileMap) IsOutside(column, row int) bool {
	return column < 0 || row < 0 || column >= m.width || row >= m.height
}

// IsWall implements [tilescan.Grid].
func (m *TileMap) IsWall(column, row int) bool {
	if m.IsOutside(column, row) {
		return false
	}
	return m.walls[row*m.width+column]
}

// OccupantAt implements [tilescan.Grid].
func (m *TileMap) OccupantAt(column, row int) tilescan.Occupant {
	t := m.TileAt(column, row)
	if t == nil {
		return nil
	}
	return t
}

// TileAt returns the tile at (column, row), or nil if the cell is empty or
// outside the map.
func (m *TileMap) TileAt(column, row int) *Tile {
	if m.IsOutside(column, row) {
		return nil
	}
	return m.tiles[row*m.width+column]
}

// SetTile places t at (column, row).  A nil tile clears the cell.
func (m *TileMap) SetTile(column, row int, t *Tile) error {
	if m.IsOutside(column, row) {
		return errors.Errorf("cell (%d,%d) outside %dx%d map", column, row, m.width, m.height)
	}
	m.tiles[row*m.width+column] = t
	return nil
}

// SetWall marks or unmarks (column, row) as a wall.
func (m *TileMap) SetWall(column, row int, wall bool) error {
	if m.IsOutside(column, row) {
		return errors.Errorf("cell (%d,%d) outside %dx%d map", column, row, m.width, m.height)
	}
	m.walls[row*m.width+column] = wall
	return nil
}
