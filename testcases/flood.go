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

var floodCases = []TestCase{
	{
		Name:  "both_rooms",
		Map:   rooms,
		Scale: 4,
		Op: Flood{
			Origin: tilescan.Loc(1, 1),
			Rule:   floor,
		},
	},
	{
		Name:  "grass",
		Map:   rooms,
		Scale: 4,
		Op: Flood{
			Origin: tilescan.Loc(3, 3),
		},
	},
	{
		Name:  "limited",
		Map:   rooms,
		Scale: 4,
		Op: Flood{
			Origin:      tilescan.Loc(4, 3),
			MaxDistance: 3,
			Rule:        floor,
		},
	},
	{
		Name:  "cave",
		Map:   cave,
		Scale: 3,
		Op: Flood{
			Origin: tilescan.Loc(0, 0),
			Rule:   floor,
		},
	},
	{
		Name:  "cave_pocket",
		Map:   cave,
		Scale: 3,
		Op: Flood{
			Origin: tilescan.Loc(7, 4),
			Rule:   floor,
		},
	},
}
