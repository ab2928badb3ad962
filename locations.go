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

package tilescan

import (
	"cmp"
	"slices"
)

// IndexOf returns the index of the first occurrence of loc in locs,
// or -1 if loc is not present.
func IndexOf(locs []Location, loc Location) int {
	return slices.Index(locs, loc)
}

// Contains reports whether loc is present in locs.
func Contains(locs []Location, loc Location) bool {
	return slices.Contains(locs, loc)
}

// Deduplicate returns the locations of locs with repeated entries removed.
// The first occurrence of each location is kept, and the order of the
// remaining entries is unchanged.  The input is not modified.
func Deduplicate(locs []Location) []Location {
	seen := make(map[Location]struct{}, len(locs))
	res := make([]Location, 0, len(locs))
	for _, l := range locs {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		res = append(res, l)
	}
	return res
}

// Join combines two location lists:
//
//   - Concatenate appends b to a, keeping duplicates.
//   - Union is the deduplicated concatenation.
//   - Intersection keeps the locations of a which also occur in b.
//   - SymmetricDifference keeps the locations of a which are not in b,
//     followed by the locations of b which are not in a.
//
// Apart from Concatenate the results contain no duplicates, and locations
// keep the order of their first occurrence.  The inputs are not modified.
func Join(op JoinOp, a, b []Location) []Location {
	switch op {
	case Union:
		return Deduplicate(slices.Concat(a, b))

	case Intersection:
		inB := locationSet(b)
		var res []Location
		for _, l := range a {
			if _, ok := inB[l]; ok {
				res = append(res, l)
			}
		}
		return Deduplicate(res)

	case SymmetricDifference:
		inA := locationSet(a)
		inB := locationSet(b)
		var res []Location
		for _, l := range a {
			if _, ok := inB[l]; !ok {
				res = append(res, l)
			}
		}
		for _, l := range b {
			if _, ok := inA[l]; !ok {
				res = append(res, l)
			}
		}
		return Deduplicate(res)
	}
	return slices.Concat(a, b)
}

func locationSet(locs []Location) map[Location]struct{} {
	set := make(map[Location]struct{}, len(locs))
	for _, l := range locs {
		set[l] = struct{}{}
	}
	return set
}

// SortByDistance returns a copy of locs, sorted by Euclidean distance from
// origin.  Locations at equal distance keep their relative order.
func SortByDistance(origin Location, locs []Location) []Location {
	res := slices.Clone(locs)
	slices.SortStableFunc(res, func(a, b Location) int {
		return cmp.Compare(distance2(origin, a), distance2(origin, b))
	})
	return res
}

// distance2 returns the squared Euclidean distance between a and b.
func distance2(a, b Location) int {
	dc := a.Column - b.Column
	dr := a.Row - b.Row
	return dc*dc + dr*dr
}

// SortByColumnRow returns a copy of locs, sorted by column and then by row.
func SortByColumnRow(locs []Location) []Location {
	res := slices.Clone(locs)
	slices.SortStableFunc(res, compareColumnRow)
	return res
}

func compareColumnRow(a, b Location) int {
	if c := cmp.Compare(a.Column, b.Column); c != 0 {
		return c
	}
	return cmp.Compare(a.Row, b.Row)
}
