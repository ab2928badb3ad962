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
	"fmt"

	"github.com/go-errors/errors"

	"seehuhn.de/go/tilescan"
	"seehuhn.de/go/tilescan/tilemap"
)

// Result is the outcome of running a test case.
type Result struct {
	Grid *tilemap.TileMap

	// Locations holds the cells found by location scans.
	// For line scans it holds the cells of all lines, without duplicates.
	Locations []tilescan.Location

	// Lines is only set for line scans.
	Lines [][]tilescan.Location
}

// Outline returns the outline of the selected cells.
func (r *Result) Outline() tilescan.Outline {
	return tilescan.NewOutline(r.Locations)
}

// Run parses the map of tc and performs the scan.
func Run(tc TestCase) (*Result, error) {
	m, err := tilemap.Parse(tc.Map, tc.Scale, nil)
	if err != nil {
		return nil, errors.WrapPrefix(err, tc.Name, 0)
	}

	res := &Result{Grid: m}
	switch op := tc.Op.(type) {
	case Ray:
		res.Locations = tilescan.Scan(m, op.Origin, op.Directions, tilescan.ScanOptions{
			MaxDistance: op.MaxDistance,
			Rule:        op.Rule,
		})
	case Flood:
		res.Locations = tilescan.Flood(m, op.Origin, tilescan.ScanOptions{
			MaxDistance: op.MaxDistance,
			Rule:        op.Rule,
		})
	case Everything:
		res.Locations = tilescan.All(m, op.Rule)
	case Neighbours:
		res.Locations = tilescan.AdjacentLocations(m, op.Origin, op.Mode, op.Rule)
	case LineScan:
		res.Lines = tilescan.Lines(m, op.Type, op.Rule, tilescan.LineOptions{
			MinLength: op.MinLength,
			MaxLength: op.MaxLength,
		})
		var all []tilescan.Location
		for _, line := range res.Lines {
			all = tilescan.Join(tilescan.Union, all, line)
		}
		res.Locations = all
	default:
		return nil, errors.Errorf("%s: unknown scan %T", tc.Name, tc.Op)
	}
	return res, nil
}

// Describe returns a one-line summary of the scan, for logging.
func Describe(op Scan) string {
	switch op := op.(type) {
	case Ray:
		return fmt.Sprintf("ray from %s, %s, rule %s", op.Origin, op.Directions, ruleString(op.Rule))
	case Flood:
		return fmt.Sprintf("flood from %s, rule %s", op.Origin, ruleString(op.Rule))
	case Everything:
		return fmt.Sprintf("all cells, rule %s", ruleString(op.Rule))
	case Neighbours:
		return fmt.Sprintf("%s neighbours of %s, rule %s", op.Mode, op.Origin, ruleString(op.Rule))
	case LineScan:
		return fmt.Sprintf("%s lines, rule %s", op.Type, ruleString(op.Rule))
	}
	return fmt.Sprintf("%T", op)
}

func ruleString(r tilescan.Rule) string {
	if r == nil {
		return "default"
	}
	return r.String()
}
