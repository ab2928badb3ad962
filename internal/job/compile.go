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

package job

import (
	"github.com/go-errors/errors"

	"seehuhn.de/go/tilescan"
	"seehuhn.de/go/tilescan/tilemap"
)

// Compile converts a rule block into a rule.
func (b *RuleBlock) Compile() (tilescan.Rule, error) {
	args := make([]tilescan.Rule, len(b.Rules))
	for i, sub := range b.Rules {
		r, err := sub.Compile()
		if err != nil {
			return nil, err
		}
		args[i] = r
	}

	need := func(n int) error {
		if len(args) != n {
			return errors.Errorf("rule %q needs %d nested rule(s), got %d", b.Kind, n, len(args))
		}
		return nil
	}
	leaf := func() error { return need(0) }

	switch b.Kind {
	case "true":
		return tilescan.True(), leaf()

	case "tile":
		if b.Tile == "" {
			return tilescan.OccupantIs(nil), leaf()
		}
		return tilescan.OccupantIs(&tilemap.Tile{Name: b.Tile}), leaf()

	case "empty":
		return tilescan.OccupantIs(nil), leaf()

	case "wall":
		return tilescan.IsWall(), leaf()

	case "in_bounds":
		return tilescan.IsInBounds(), leaf()

	case "compare":
		prop, err := tilescan.ParseProperty(b.Property)
		if err != nil {
			return nil, err
		}
		op, err := tilescan.ParseOp(b.Op)
		if err != nil {
			return nil, err
		}
		return tilescan.Compare(prop, op, b.Value), leaf()

	case "not":
		if err := need(1); err != nil {
			return nil, err
		}
		return tilescan.Not(args[0]), nil

	case "and", "or":
		if len(args) < 2 {
			return nil, errors.Errorf("rule %q needs at least 2 nested rules, got %d", b.Kind, len(args))
		}
		if b.Kind == "and" {
			return tilescan.And(args[0], args[1], args[2:]...), nil
		}
		return tilescan.Or(args[0], args[1], args[2:]...), nil

	case "borders":
		if err := need(1); err != nil {
			return nil, err
		}
		if b.Sides != "" {
			if b.Mode != "" {
				return nil, errors.New("rule \"borders\" accepts either mode or sides, not both")
			}
			sides, err := tilescan.ParseSides(b.Sides)
			if err != nil {
				return nil, err
			}
			return tilescan.BordersOn(args[0], sides), nil
		}
		mode, err := tilescan.ParseBorderMode(b.Mode)
		if err != nil {
			return nil, err
		}
		return tilescan.Borders(args[0], mode), nil
	}
	return nil, errors.Errorf("unknown rule %q", b.Kind)
}

// rule compiles the optional rule of a scan.  A scan without a rule block
// uses the default rule of the scanner.
func (s *ScanBlock) rule() (tilescan.Rule, error) {
	switch len(s.Rules) {
	case 0:
		return nil, nil
	case 1:
		return s.Rules[0].Compile()
	}
	return nil, errors.Errorf("expected at most one rule block, got %d", len(s.Rules))
}

func (s *ScanBlock) origin() (tilescan.Location, error) {
	if len(s.Origin) != 2 {
		return tilescan.Location{}, errors.Errorf("origin must be [column, row], got %v", s.Origin)
	}
	return tilescan.Loc(s.Origin[0], s.Origin[1]), nil
}
