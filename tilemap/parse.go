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

package tilemap

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/go-errors/errors"
)

// Legend maps the characters of a text map to tiles.
type Legend map[rune]*Tile

// These characters have a fixed meaning in text maps.
const (
	WallChar  = '#' // a wall; the legend may also give it a tile
	EmptyChar = '.' // an empty cell
)

// Parse builds a map from its text form.  Each non-blank line is one row of
// the map and each character one cell.  [WallChar] marks walls and
// [EmptyChar] empty cells.  Other characters are looked up in legend; if
// legend is nil, every other character gets its own tile, named after the
// character.
//
// Leading and trailing blank lines are ignored.  All rows must have the same
// length.
func Parse(text string, scale int, legend Legend) (*TileMap, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	rows := strings.Split(strings.Trim(text, "\n"), "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, errors.New("empty map")
	}

	width := utf8.RuneCountInString(rows[0])
	for i, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, errors.Errorf("row %d has %d cells, expected %d", i+1, n, width)
		}
	}

	auto := legend == nil
	if auto {
		legend = Legend{}
	}

	m := New(width, len(rows), scale)
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			idx := r*width + c
			switch {
			case ch == EmptyChar:
				// nothing to do
			case ch == WallChar:
				m.walls[idx] = true
				m.tiles[idx] = legend[ch]
			default:
				t, ok := legend[ch]
				if !ok && auto {
					t = &Tile{Name: string(ch)}
					legend[ch] = t
				} else if !ok {
					return nil, errors.Errorf("row %d, column %d: unknown character %q", r+1, c+1, ch)
				}
				m.tiles[idx] = t
			}
			c++
		}
	}
	return m, nil
}

// Load reads a text map from a file, see [Parse].
func Load(fname string, scale int, legend Legend) (*TileMap, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, errors.WrapPrefix(err, "load map", 0)
	}
	m, err := Parse(string(data), scale, legend)
	if err != nil {
		return nil, errors.WrapPrefix(err, fname, 0)
	}
	return m, nil
}

// String returns the text form of the map.  Tiles are written using the
// first character of their name, walls as [WallChar] and empty cells as
// [EmptyChar].
//
// The result can be read back by [Parse] only if all tile names start with
// distinct characters other than WallChar and EmptyChar.  Otherwise
// different tiles share a character, or a tile reads back as a wall or an
// empty cell.
func (m *TileMap) String() string {
	var b strings.Builder
	for r := range m.height {
		for c := range m.width {
			idx := r*m.width + c
			switch {
			case m.walls[idx]:
				b.WriteRune(WallChar)
			case m.tiles[idx] == nil || m.tiles[idx].Name == "":
				b.WriteRune(EmptyChar)
			default:
				ch, _ := utf8.DecodeRuneInString(m.tiles[idx].Name)
				b.WriteRune(ch)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
