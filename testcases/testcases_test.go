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

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/tilescan"
)

func loc(c, r int) tilescan.Location { return tilescan.Loc(c, r) }

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			name := category + "_" + tc.Name
			assert.Regexp(t, "^[a-z_]+$", tc.Name)
			assert.False(t, seen[name], "duplicate test case %s", name)
			seen[name] = true
		}
	}
}

// TestRunAll checks properties which hold for every scan.
func TestRunAll(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				res, err := Run(tc)
				require.NoError(t, err)

				for _, l := range res.Locations {
					assert.False(t, res.Grid.IsOutside(l.Column, l.Row), "%s outside the map", l)
				}
				if len(res.Locations) > 0 {
					assert.Equal(t, tilescan.Deduplicate(res.Locations), res.Locations)
				}

				switch op := tc.Op.(type) {
				case Ray:
					if len(res.Locations) > 0 {
						assert.Equal(t, op.Origin, res.Locations[0])
					}
				case Flood:
					if op.Rule != nil {
						for _, l := range res.Locations {
							assert.True(t, tilescan.Matches(res.Grid, l, op.Rule))
						}
					}
				case Everything:
					assert.Equal(t, tilescan.SortByColumnRow(res.Locations), res.Locations)
				case LineScan:
					for i := 1; i < len(res.Lines); i++ {
						assert.GreaterOrEqual(t, len(res.Lines[i-1]), len(res.Lines[i]))
					}
				}

				o := res.Outline()
				assert.Equal(t, len(res.Locations) == 0, o.Empty())
			})
		}
	}
}

func TestRunKnownResults(t *testing.T) {
	t.Parallel()

	find := func(category, name string) TestCase {
		for _, tc := range All[category] {
			if tc.Name == name {
				return tc
			}
		}
		t.Fatalf("missing test case %s_%s", category, name)
		return TestCase{}
	}

	tests := []struct {
		category, name string
		want           []tilescan.Location
	}{
		{"ray", "through_door", []tilescan.Location{
			loc(1, 3), loc(2, 3), loc(3, 3), loc(4, 3), loc(5, 3), loc(6, 3), loc(7, 3), loc(8, 3),
		}},
		{"ray", "origin_on_wall", nil},
		{"flood", "grass", []tilescan.Location{loc(3, 3), loc(2, 3), loc(3, 2), loc(2, 2)}},
		{"adjacent", "door", []tilescan.Location{loc(4, 3), loc(6, 3)}},
		{"adjacent", "corner_walls", []tilescan.Location{loc(0, 0), loc(2, 0), loc(0, 2)}},
	}
	for _, tc := range tests {
		t.Run(tc.category+"_"+tc.name, func(t *testing.T) {
			res, err := Run(find(tc.category, tc.name))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Locations)
		})
	}
}

func TestRunLines(t *testing.T) {
	t.Parallel()

	res, err := Run(lineCases[0])
	require.NoError(t, err)

	var got [][2]tilescan.Location
	for _, line := range res.Lines {
		got = append(got, [2]tilescan.Location{line[0], line[len(line)-1]})
	}
	want := [][2]tilescan.Location{
		{loc(4, 2), loc(8, 2)},
		{loc(0, 0), loc(3, 0)},
		{loc(0, 2), loc(2, 2)},
		{loc(5, 0), loc(6, 0)},
		{loc(2, 4), loc(3, 4)},
	}
	assert.Equal(t, want, got)
}

func TestRunBadMap(t *testing.T) {
	t.Parallel()

	_, err := Run(TestCase{Name: "ragged", Map: "..\n.\n", Op: Everything{}})
	assert.Error(t, err)
}
