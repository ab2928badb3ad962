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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/tilescan"
)

func TestIndexOf(t *testing.T) {
	t.Parallel()

	l := locs(1, 1, 2, 2, 1, 1)
	assert.Equal(t, 0, tilescan.IndexOf(l, tilescan.Loc(1, 1)))
	assert.Equal(t, 1, tilescan.IndexOf(l, tilescan.Loc(2, 2)))
	assert.Equal(t, -1, tilescan.IndexOf(l, tilescan.Loc(2, 1)))
	assert.True(t, tilescan.Contains(l, tilescan.Loc(2, 2)))
	assert.False(t, tilescan.Contains(nil, tilescan.Loc(2, 2)))
}

func TestDeduplicate(t *testing.T) {
	t.Parallel()

	in := locs(3, 0, 1, 1, 3, 0, 2, 2, 1, 1)
	got := tilescan.Deduplicate(in)
	assert.Equal(t, locs(3, 0, 1, 1, 2, 2), got)
	assert.Equal(t, got, tilescan.Deduplicate(got))
	assert.Len(t, in, 5) // input unchanged
}

func TestJoin(t *testing.T) {
	t.Parallel()

	a := locs(0, 0, 1, 0, 2, 0, 1, 0)
	b := locs(2, 0, 3, 0, 0, 0)

	tests := []struct {
		op   tilescan.JoinOp
		want []tilescan.Location
	}{
		{tilescan.Concatenate, locs(0, 0, 1, 0, 2, 0, 1, 0, 2, 0, 3, 0, 0, 0)},
		{tilescan.Union, locs(0, 0, 1, 0, 2, 0, 3, 0)},
		{tilescan.Intersection, locs(0, 0, 2, 0)},
		{tilescan.SymmetricDifference, locs(1, 0, 3, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.op.String(), func(t *testing.T) {
			got := tilescan.Join(tc.op, a, b)
			assert.Equal(t, tc.want, got)
		})
	}

	assert.Empty(t, tilescan.Join(tilescan.Intersection, a, nil))
	assert.Empty(t, tilescan.Join(tilescan.Intersection, locs(0, 0, 1, 0), locs(0, 1, 1, 1)))
	assert.Empty(t, tilescan.Join(tilescan.SymmetricDifference, a, a))
	assert.Equal(t, locs(0, 0, 1, 0, 2, 0), tilescan.Join(tilescan.SymmetricDifference, a, nil))
}

func TestSort(t *testing.T) {
	t.Parallel()

	in := locs(3, 3, 1, 0, 0, 1, 2, 2, 0, 0)
	origin := tilescan.Loc(0, 0)

	got := tilescan.SortByDistance(origin, in)
	// (1,0) and (0,1) are equally far away and keep their order
	assert.Equal(t, locs(0, 0, 1, 0, 0, 1, 2, 2, 3, 3), got)
	assert.Equal(t, tilescan.Loc(3, 3), in[0])

	got = tilescan.SortByColumnRow(in)
	assert.Equal(t, locs(0, 0, 0, 1, 1, 0, 2, 2, 3, 3), got)
	assert.Equal(t, got, tilescan.SortByColumnRow(got))
}

func TestBoundsOf(t *testing.T) {
	t.Parallel()

	_, ok := tilescan.BoundsOf(nil)
	assert.False(t, ok)

	b, ok := tilescan.BoundsOf(locs(2, 5, 4, 1, 3, 3))
	assert.True(t, ok)
	assert.Equal(t, tilescan.Bounds{MinColumn: 2, MinRow: 1, MaxColumn: 4, MaxRow: 5}, b)
	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 5, b.Height())
	assert.True(t, b.Contains(tilescan.Loc(2, 1)))
	assert.False(t, b.Contains(tilescan.Loc(5, 1)))

	assert.Equal(t, rect.Rect{LLx: 8, LLy: 4, URx: 20, URy: 24}, b.Pixels(2))
}

func TestLocation(t *testing.T) {
	t.Parallel()

	l := tilescan.Loc(3, 4)
	assert.Equal(t, "(3,4)", l.String())
	assert.Equal(t, tilescan.Loc(3, 3), l.Neighbor(tilescan.Up))
	assert.Equal(t, tilescan.Loc(4, 4), l.Neighbor(tilescan.Right))
	assert.Equal(t, tilescan.Loc(3, 5), l.Neighbor(tilescan.Down))
	assert.Equal(t, tilescan.Loc(2, 4), l.Neighbor(tilescan.Left))

	c := l.Center(3)
	assert.Equal(t, 28.0, c.X)
	assert.Equal(t, 36.0, c.Y)
}
