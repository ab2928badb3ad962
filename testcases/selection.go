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

package testcases

import "seehuhn.de/go/tilescan"

var allCases = []TestCase{
	{
		Name:  "walls",
		Map:   rooms,
		Scale: 4,
		Op:    Everything{Rule: tilescan.IsWall()},
	},
	{
		Name:  "along_walls",
		Map:   rooms,
		Scale: 4,
		Op: Everything{
			Rule: tilescan.And(floor, tilescan.Borders(tilescan.IsWall(), tilescan.Adjacent)),
		},
	},
	{
		Name:  "top_left_corners",
		Map:   rooms,
		Scale: 4,
		Op: Everything{
			Rule: tilescan.And(
				floor,
				tilescan.BordersOn(tilescan.IsWall(), tilescan.Side(tilescan.SideTop)),
				tilescan.BordersOn(tilescan.IsWall(), tilescan.Side(tilescan.SideLeft)),
			),
		},
	},
	{
		Name:  "open_diagonal",
		Map:   rooms,
		Scale: 4,
		Op: Everything{
			Rule: tilescan.And(
				floor,
				tilescan.Not(tilescan.BordersOn(tilescan.IsWall(),
					tilescan.SidesAnd(
						tilescan.Side(tilescan.AllSides),
						tilescan.SidesNot(tilescan.Side(tilescan.TopSide)),
					))),
			),
		},
	},
	{
		Name:  "right_half",
		Map:   rooms,
		Scale: 4,
		Op: Everything{
			Rule: tilescan.And(floor, tilescan.Compare(tilescan.PropX, tilescan.OpGreaterEqual, 80)),
		},
	},
	{
		Name:  "cave_coast",
		Map:   cave,
		Scale: 3,
		Op: Everything{
			Rule: tilescan.And(
				floor,
				tilescan.Borders(tilescan.Not(tilescan.IsInBounds()), tilescan.AdjacentOrDiagonal),
			),
		},
	},
}

var adjacentCases = []TestCase{
	{
		Name:  "door",
		Map:   rooms,
		Scale: 4,
		Op: Neighbours{
			Origin: tilescan.Loc(5, 3),
			Mode:   tilescan.Adjacent,
			Rule:   floor,
		},
	},
	{
		Name:  "around_pond",
		Map:   rooms,
		Scale: 4,
		Op: Neighbours{
			Origin: tilescan.Loc(7, 2),
			Mode:   tilescan.AdjacentOrDiagonal,
		},
	},
	{
		Name:  "corner_walls",
		Map:   rooms,
		Scale: 4,
		Op: Neighbours{
			Origin: tilescan.Loc(1, 1),
			Mode:   tilescan.Diagonal,
			Rule:   tilescan.IsWall(),
		},
	},
	{
		Name:  "map_corner",
		Map:   cave,
		Scale: 3,
		Op: Neighbours{
			Origin: tilescan.Loc(0, 0),
			Mode:   tilescan.AdjacentOrDiagonal,
		},
	},
}
