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

var lineCases = []TestCase{
	{
		Name:  "horizontal",
		Map:   stripes,
		Scale: 3,
		Op: LineScan{
			Type:      tilescan.Horizontal,
			Rule:      tile("a"),
			MinLength: 2,
		},
	},
	{
		Name:  "vertical",
		Map:   stripes,
		Scale: 3,
		Op: LineScan{
			Type: tilescan.Vertical,
			Rule: tile("a"),
		},
	},
	{
		Name:  "short_runs",
		Map:   stripes,
		Scale: 3,
		Op: LineScan{
			Type:      tilescan.HorizontalAndVertical,
			Rule:      tile("a"),
			MinLength: 2,
			MaxLength: 3,
		},
	},
	{
		Name:  "room_walls",
		Map:   rooms,
		Scale: 4,
		Op: LineScan{
			Type:      tilescan.HorizontalAndVertical,
			Rule:      tilescan.IsWall(),
			MinLength: 4,
		},
	},
}
