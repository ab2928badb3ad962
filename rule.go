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
	"fmt"
	"strings"
)

// Rule is a boolean predicate over grid cells.
//
// The set of rule types is closed: the values returned by the constructors in
// this package are the only implementations.  Rules are immutable and can be
// evaluated any number of times, from any number of scans.
type Rule interface {
	isRule()
	fmt.Stringer
}

// TrueRule matches every location.
type TrueRule struct{}

// OccupantRule matches locations whose occupant matches a reference.
type OccupantRule struct {
	ref Occupant
}

// WallRule matches walls and locations outside the grid.
type WallRule struct{}

// InBoundsRule matches locations inside the grid.
type InBoundsRule struct{}

// CompareRule compares a numeric property of the location with a constant.
type CompareRule struct {
	prop  Property
	op    Op
	value int
}

// NotRule inverts another rule.
type NotRule struct {
	arg Rule
}

// AndRule matches if all of its arguments match.
type AndRule struct {
	args []Rule
}

// OrRule matches if at least one of its arguments matches.
type OrRule struct {
	args []Rule
}

// BordersRule matches if a neighbour selected by the mode matches the
// argument rule.
type BordersRule struct {
	arg  Rule
	mode BorderMode
}

// SidesRule matches if a neighbour on one of the selected sides matches the
// argument rule.
type SidesRule struct {
	arg    Rule
	groups []SideMask
	mask   SideMask // union of groups; a side is accepted iff it is in some group
}

func (TrueRule) isRule()     {}
func (OccupantRule) isRule() {}
func (WallRule) isRule()     {}
func (InBoundsRule) isRule() {}
func (CompareRule) isRule()  {}
func (NotRule) isRule()      {}
func (AndRule) isRule()      {}
func (OrRule) isRule()       {}
func (BordersRule) isRule()  {}
func (SidesRule) isRule()    {}

// True returns a rule which matches every location.
func True() Rule {
	return TrueRule{}
}

// OccupantIs returns a rule which matches locations whose occupant is ref,
// either by identity or by [Occupant.Equal].
func OccupantIs(ref Occupant) Rule {
	return OccupantRule{ref: ref}
}

// IsWall returns a rule which matches wall tiles.
// Locations outside the grid count as walls.
func IsWall() Rule {
	return WallRule{}
}

// IsInBounds returns a rule which matches all locations inside the grid.
func IsInBounds() Rule {
	return InBoundsRule{}
}

// Compare returns a rule which matches if "prop op value" holds.
func Compare(prop Property, op Op, value int) Rule {
	return CompareRule{prop: prop, op: op, value: value}
}

// Not returns a rule which matches where r does not.
func Not(r Rule) Rule {
	return NotRule{arg: r}
}

// And returns a rule which matches where all arguments match.
// Arguments are evaluated left to right, stopping at the first failure.
func And(a, b Rule, more ...Rule) Rule {
	args := make([]Rule, 0, 2+len(more))
	args = append(args, a, b)
	args = append(args, more...)
	return AndRule{args: args}
}

// Or returns a rule which matches where at least one argument matches.
// Arguments are evaluated left to right, stopping at the first success.
func Or(a, b Rule, more ...Rule) Rule {
	args := make([]Rule, 0, 2+len(more))
	args = append(args, a, b)
	args = append(args, more...)
	return OrRule{args: args}
}

// Borders returns a rule which matches locations with at least one
// neighbour, chosen according to mode, that matches r.
// Neighbours outside the grid are included, so that for example
// Borders(IsWall(), Adjacent) matches all cells along the grid edge.
func Borders(r Rule, mode BorderMode) Rule {
	return BordersRule{arg: r, mode: mode}
}

// BordersOn is like [Borders], but only considers the neighbours selected by
// the side expression.
func BordersOn(r Rule, sides SideExpr) Rule {
	groups := CompileSides(sides)
	var mask SideMask
	for _, g := range groups {
		mask |= g
	}
	return SidesRule{arg: r, groups: groups, mask: mask}
}

// Groups returns the compiled side groups of the rule.
func (r SidesRule) Groups() []SideMask {
	return append([]SideMask(nil), r.groups...)
}

// Evaluate reports whether rule matches the location (column, row) of g.
// A nil rule matches everything.
//
// Evaluation never modifies g.
func Evaluate(rule Rule, column, row int, g Grid) bool {
	switch r := rule.(type) {
	case nil, TrueRule:
		return true

	case OccupantRule:
		return sameOccupant(r.ref, g.OccupantAt(column, row))

	case WallRule:
		return g.IsWall(column, row) || g.IsOutside(column, row)

	case InBoundsRule:
		return !g.IsOutside(column, row)

	case CompareRule:
		return r.op.apply(r.prop.value(column, row, g.Scale()), r.value)

	case NotRule:
		return !Evaluate(r.arg, column, row, g)

	case AndRule:
		for _, arg := range r.args {
			if !Evaluate(arg, column, row, g) {
				return false
			}
		}
		return true

	case OrRule:
		for _, arg := range r.args {
			if Evaluate(arg, column, row, g) {
				return true
			}
		}
		return false

	case BordersRule:
		found := false
		forEachNeighbor(g, column, row, r.mode.sides(), true, func(_ SideMask, c, rr int) bool {
			found = Evaluate(r.arg, c, rr, g)
			return !found
		})
		return found

	case SidesRule:
		found := false
		forEachNeighbor(g, column, row, r.mask, true, func(_ SideMask, c, rr int) bool {
			found = Evaluate(r.arg, c, rr, g)
			return !found
		})
		return found
	}
	panic(fmt.Sprintf("tilescan: unknown rule type %T", rule))
}

// Matches reports whether loc matches rule.  It returns false if g is nil.
func Matches(g Grid, loc Location, rule Rule) bool {
	if g == nil {
		return false
	}
	return Evaluate(rule, loc.Column, loc.Row, g)
}

func (TrueRule) String() string { return "true" }

func (r OccupantRule) String() string { return fmt.Sprintf("tile is %v", r.ref) }

func (WallRule) String() string { return "is wall" }

func (InBoundsRule) String() string { return "is in bounds" }

func (r CompareRule) String() string {
	return fmt.Sprintf("%s %s %d", r.prop, r.op, r.value)
}

func (r NotRule) String() string { return "not (" + ruleString(r.arg) + ")" }

func (r AndRule) String() string { return joinRules(r.args, " and ") }

func (r OrRule) String() string { return joinRules(r.args, " or ") }

func (r BordersRule) String() string {
	return fmt.Sprintf("borders (%s) %s", ruleString(r.arg), r.mode)
}

func (r SidesRule) String() string {
	return fmt.Sprintf("borders (%s) on %s", ruleString(r.arg), r.mask)
}

func joinRules(args []Rule, sep string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = "(" + ruleString(a) + ")"
	}
	return strings.Join(parts, sep)
}

func ruleString(r Rule) string {
	if r == nil {
		return "true"
	}
	return r.String()
}
