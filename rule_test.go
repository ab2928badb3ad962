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

package tilescan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/tilescan"
	"seehuhn.de/go/tilescan/tilemap"
)

// mustParse builds a tile map from its text form.
func mustParse(t testing.TB, text string, scale int) *tilemap.TileMap {
	t.Helper()
	m, err := tilemap.Parse(text, scale, nil)
	require.NoError(t, err)
	return m
}

func TestEvaluateLeaves(t *testing.T) {
	t.Parallel()

	m := mustParse(t, `
a#
.b
`, 0)

	a := m.TileAt(0, 0)
	tests := []struct {
		name string
		rule tilescan.Rule
		col  int
		row  int
		want bool
	}{
		{"nil", nil, 0, 0, true},
		{"true", tilescan.True(), 5, 5, true},
		{"occupant", tilescan.OccupantIs(a), 0, 0, true},
		{"occupant-other", tilescan.OccupantIs(a), 1, 1, false},
		{"occupant-equal-copy", tilescan.OccupantIs(&tilemap.Tile{Name: "a"}), 0, 0, true},
		{"occupant-empty", tilescan.OccupantIs(nil), 0, 1, true},
		{"occupant-nil-vs-tile", tilescan.OccupantIs(nil), 0, 0, false},
		{"occupant-empty-tile", tilescan.OccupantIs(m.TileAt(0, 1)), 0, 1, true},
		{"occupant-empty-tile-vs-tile", tilescan.OccupantIs(m.TileAt(0, 1)), 0, 0, false},
		{"wall", tilescan.IsWall(), 1, 0, true},
		{"wall-floor", tilescan.IsWall(), 0, 1, false},
		{"wall-outside", tilescan.IsWall(), -1, 0, true},
		{"in-bounds", tilescan.IsInBounds(), 1, 1, true},
		{"in-bounds-outside", tilescan.IsInBounds(), 2, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tilescan.Evaluate(tc.rule, tc.col, tc.row, m)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestComparePixels(t *testing.T) {
	t.Parallel()

	// tiles are 16 pixels wide
	m := tilemap.New(10, 10, 4)

	tests := []struct {
		prop tilescan.Property
		want int
	}{
		{tilescan.PropColumn, 3},
		{tilescan.PropRow, 2},
		{tilescan.PropX, 56},
		{tilescan.PropY, 40},
		{tilescan.PropLeft, 48},
		{tilescan.PropTop, 32},
		{tilescan.PropRight, 64},
		{tilescan.PropBottom, 48},
	}
	for _, tc := range tests {
		t.Run(tc.prop.String(), func(t *testing.T) {
			eq := tilescan.Compare(tc.prop, tilescan.OpEqual, tc.want)
			assert.True(t, tilescan.Evaluate(eq, 3, 2, m))

			gt := tilescan.Compare(tc.prop, tilescan.OpGreater, tc.want)
			assert.False(t, tilescan.Evaluate(gt, 3, 2, m))

			le := tilescan.Compare(tc.prop, tilescan.OpLessEqual, tc.want)
			assert.True(t, tilescan.Evaluate(le, 3, 2, m))
		})
	}
}

func TestCompareOps(t *testing.T) {
	t.Parallel()

	m := tilemap.New(5, 1, 0)
	tests := []struct {
		op   tilescan.Op
		want []bool // for columns 0..4, compared against 2
	}{
		{tilescan.OpEqual, []bool{false, false, true, false, false}},
		{tilescan.OpNotEqual, []bool{true, true, false, true, true}},
		{tilescan.OpGreater, []bool{false, false, false, true, true}},
		{tilescan.OpLess, []bool{true, true, false, false, false}},
		{tilescan.OpGreaterEqual, []bool{false, false, true, true, true}},
		{tilescan.OpLessEqual, []bool{true, true, true, false, false}},
	}
	for _, tc := range tests {
		t.Run(tc.op.String(), func(t *testing.T) {
			rule := tilescan.Compare(tilescan.PropColumn, tc.op, 2)
			for c, want := range tc.want {
				assert.Equal(t, want, tilescan.Evaluate(rule, c, 0, m), "column %d", c)
			}
		})
	}
}

func TestCombinators(t *testing.T) {
	t.Parallel()

	m := mustParse(t, `
ab#
ba.
`, 0)

	leaves := []tilescan.Rule{
		tilescan.True(),
		tilescan.IsWall(),
		tilescan.OccupantIs(m.TileAt(0, 0)),
		tilescan.Compare(tilescan.PropRow, tilescan.OpEqual, 1),
		tilescan.Not(tilescan.IsInBounds()),
	}

	for c := -1; c <= 3; c++ {
		for r := -1; r <= 2; r++ {
			for _, x := range leaves {
				vx := tilescan.Evaluate(x, c, r, m)
				assert.Equal(t, !vx, tilescan.Evaluate(tilescan.Not(x), c, r, m))
				assert.Equal(t, vx, tilescan.Evaluate(tilescan.Not(tilescan.Not(x)), c, r, m))

				for _, y := range leaves {
					vy := tilescan.Evaluate(y, c, r, m)
					assert.Equal(t, vx && vy, tilescan.Evaluate(tilescan.And(x, y), c, r, m))
					assert.Equal(t, vx || vy, tilescan.Evaluate(tilescan.Or(x, y), c, r, m))
				}
			}
		}
	}

	// variadic forms
	all := tilescan.And(leaves[0], leaves[3], tilescan.Not(leaves[1]))
	assert.True(t, tilescan.Evaluate(all, 1, 1, m))
	assert.False(t, tilescan.Evaluate(all, 2, 0, m))
	some := tilescan.Or(leaves[1], leaves[3], leaves[2])
	assert.True(t, tilescan.Evaluate(some, 2, 0, m))
	assert.False(t, tilescan.Evaluate(some, 1, 0, m))
}

func TestBorders(t *testing.T) {
	t.Parallel()

	m := mustParse(t, `
.....
.#...
.....
.....
`, 0)

	wall := tilescan.IsWall()
	tests := []struct {
		name string
		mode tilescan.BorderMode
		col  int
		row  int
		want bool
	}{
		{"adjacent-right", tilescan.Adjacent, 0, 1, true},
		{"adjacent-below", tilescan.Adjacent, 1, 2, true},
		{"adjacent-misses-corner", tilescan.Adjacent, 2, 2, false},
		{"diagonal-corner", tilescan.Diagonal, 2, 2, true},
		{"diagonal-misses-edge", tilescan.Diagonal, 2, 1, false},
		{"both", tilescan.AdjacentOrDiagonal, 2, 2, true},
		{"far", tilescan.AdjacentOrDiagonal, 3, 3, true}, // outside counts as wall
		{"inner", tilescan.AdjacentOrDiagonal, 3, 2, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rule := tilescan.Borders(wall, tc.mode)
			assert.Equal(t, tc.want, tilescan.Evaluate(rule, tc.col, tc.row, m))
		})
	}
}

func TestBordersOutside(t *testing.T) {
	t.Parallel()

	m := tilemap.New(3, 3, 0)
	outside := tilescan.Not(tilescan.IsInBounds())
	rule := tilescan.Borders(outside, tilescan.Adjacent)

	// The border rule sees neighbours outside the grid.
	assert.True(t, tilescan.Evaluate(rule, 0, 1, m))
	assert.True(t, tilescan.Evaluate(rule, 2, 2, m))
	assert.False(t, tilescan.Evaluate(rule, 1, 1, m))
}

func TestBordersOn(t *testing.T) {
	t.Parallel()

	m := mustParse(t, `
#..
...
...
`, 0)

	wall := tilescan.Not(tilescan.IsInBounds())
	below := tilescan.BordersOn(wall, tilescan.Side(tilescan.BottomSide))
	assert.True(t, tilescan.Evaluate(below, 1, 2, m))
	assert.False(t, tilescan.Evaluate(below, 1, 1, m))

	sides, err := tilescan.ParseSides("top-side and not top")
	require.NoError(t, err)
	corner := tilescan.BordersOn(tilescan.IsWall(), sides)
	assert.True(t, tilescan.Evaluate(corner, 1, 1, m)) // top-left is a wall
	assert.True(t, tilescan.Evaluate(corner, 0, 1, m)) // top-left is outside
	assert.False(t, tilescan.Evaluate(corner, 1, 2, m))

	// (1,1) only has a wall straight above, which the expression excludes
	m2 := mustParse(t, `
.#.
...
`, 0)
	assert.False(t, tilescan.Evaluate(corner, 1, 1, m2))
}

func TestMatches(t *testing.T) {
	t.Parallel()

	m := tilemap.New(2, 2, 0)
	assert.True(t, tilescan.Matches(m, tilescan.Loc(1, 1), tilescan.True()))
	assert.False(t, tilescan.Matches(nil, tilescan.Loc(1, 1), tilescan.True()))
}

func TestRuleString(t *testing.T) {
	t.Parallel()

	rule := tilescan.And(
		tilescan.Compare(tilescan.PropX, tilescan.OpGreaterEqual, 8),
		tilescan.Not(tilescan.IsWall()),
	)
	assert.Equal(t, "(x ≥ 8) and (not (is wall))", rule.String())

	b := tilescan.Borders(nil, tilescan.Diagonal)
	assert.Equal(t, "borders (true) diagonal", b.String())
}
