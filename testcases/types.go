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

// Package testcases contains sample maps and scans, shared by the tests,
// the benchmarks and the preview and export tools.
package testcases

import (
	"seehuhn.de/go/tilescan"
	"seehuhn.de/go/tilescan/tilemap"
)

// TestCase defines a single scan on a small map.
type TestCase struct {
	Name  string // lowercase a-z and _ only
	Map   string // the map in the text form read by tilemap.Parse
	Scale int    // base-2 logarithm of the tile size in pixels
	Op    Scan   // the scan to run
}

// Scan is the scanning operation to apply to the map.
type Scan interface {
	isScan()
}

// Ray runs [tilescan.Scan] from Origin.
type Ray struct {
	Origin      tilescan.Location
	Directions  tilescan.ScanDirection
	MaxDistance int
	Rule        tilescan.Rule
}

func (Ray) isScan() {}

// Flood runs [tilescan.Flood] from Origin.
type Flood struct {
	Origin      tilescan.Location
	MaxDistance int
	Rule        tilescan.Rule // nil selects the tile at the origin
}

func (Flood) isScan() {}

// Everything runs [tilescan.All].
type Everything struct {
	Rule tilescan.Rule
}

func (Everything) isScan() {}

// Neighbours runs [tilescan.AdjacentLocations] around Origin.
type Neighbours struct {
	Origin tilescan.Location
	Mode   tilescan.BorderMode
	Rule   tilescan.Rule
}

func (Neighbours) isScan() {}

// LineScan runs [tilescan.Lines].
type LineScan struct {
	Type      tilescan.LineType
	Rule      tilescan.Rule
	MinLength int
	MaxLength int
}

func (LineScan) isScan() {}

// tile returns a rule matching tiles with the given name, as created by
// tilemap.Parse without a legend.
func tile(name string) tilescan.Rule {
	return tilescan.OccupantIs(&tilemap.Tile{Name: name})
}

// floor matches all cells which are not walls.
var floor = tilescan.Not(tilescan.IsWall())
