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

// rooms has two rooms joined by a door, with a patch of grass ("g") and a
// pond ("w").
const rooms = `
##########
#....#...#
#.gg.#.w.#
#.gg.....#
#....#...#
##########
`

// cave is an irregular open area without an outer wall.  Cells on the map
// boundary border the outside.
const cave = `
..##....
.....#..
#..##...
#.......
##..#.##
`

// stripes has runs of different lengths, for line scans.
const stripes = `
aaaa.aa.a
.........
aaa.aaaaa
a........
a.aa.a..a
`
