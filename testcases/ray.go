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

var rayCases = []TestCase{
	{
		Name:  "across_room",
		Map:   rooms,
		Scale: 4,
		Op: Ray{
			Origin:     tilescan.Loc(2, 3),
			Directions: tilescan.ScanAllDirections,
			Rule:       floor,
		},
	},
	{
		Name:  "through_door",
		Map:   rooms,
		Scale: 4,
		Op: Ray{
			Origin:     tilescan.Loc(1, 3),
			Directions: tilescan.ScanRight,
			Rule:       floor,
		},
	},
	{
		Name:  "limited",
		Map:   rooms,
		Scale: 4,
		Op: Ray{
			Origin:      tilescan.Loc(7, 3),
			Directions:  tilescan.ScanLeftAndRight,
			MaxDistance: 2,
			Rule:        floor,
		},
	},
	{
		Name:  "grass_column",
		Map:   rooms,
		Scale: 4,
		Op: Ray{
			Origin:     tilescan.Loc(2, 2),
			Directions: tilescan.ScanTopAndBottom,
			Rule:       tile("g"),
		},
	},
	{
		Name:  "origin_on_wall",
		Map:   rooms,
		Scale: 4,
		Op: Ray{
			Origin:     tilescan.Loc(0, 0),
			Directions: tilescan.ScanAllDirections,
			Rule:       floor,
		},
	},
	{
		Name:  "open_edge",
		Map:   cave,
		Scale: 3,
		Op: Ray{
			Origin:     tilescan.Loc(1, 3),
			Directions: tilescan.ScanAllDirections,
		},
	},
}
