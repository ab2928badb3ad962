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

	"github.com/go-errors/errors"
)

// Property is a numeric property of a location, used by [Compare].
type Property uint8

// These are the supported properties.  X and Y give the pixel coordinates
// of the tile centre, Left, Top, Right and Bottom the pixel coordinates of
// the tile edges.
const (
	PropColumn Property = iota
	PropRow
	PropX
	PropY
	PropLeft
	PropTop
	PropRight
	PropBottom
)

var propertyNames = [...]string{
	PropColumn: "column",
	PropRow:    "row",
	PropX:      "x",
	PropY:      "y",
	PropLeft:   "left",
	PropTop:    "top",
	PropRight:  "right",
	PropBottom: "bottom",
}

// value computes the property for the cell (column, row) with tiles of size
// 1<<scale.
func (p Property) value(column, row, scale int) int {
	s := shift(scale)
	switch p {
	case PropRow:
		return row
	case PropX:
		return column<<s + (1<<s)/2
	case PropY:
		return row<<s + (1<<s)/2
	case PropLeft:
		return column << s
	case PropTop:
		return row << s
	case PropRight:
		return (column + 1) << s
	case PropBottom:
		return (row + 1) << s
	}
	return column
}

func (p Property) String() string {
	if int(p) < len(propertyNames) {
		return propertyNames[p]
	}
	return fmt.Sprintf("Property(%d)", int(p))
}

// ParseProperty converts a property name, as returned by
// [Property.String], back into a Property.
func ParseProperty(s string) (Property, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range propertyNames {
		if name == s {
			return Property(i), nil
		}
	}
	return 0, errors.Errorf("unknown property %q", s)
}

// Op is a comparison operator, used by [Compare].
type Op uint8

// These are the supported comparison operators.
const (
	OpEqual Op = iota
	OpNotEqual
	OpGreater
	OpLess
	OpGreaterEqual
	OpLessEqual
)

var opNames = [...]string{
	OpEqual:        "=",
	OpNotEqual:     "≠",
	OpGreater:      ">",
	OpLess:         "<",
	OpGreaterEqual: "≥",
	OpLessEqual:    "≤",
}

// opAliases lists ASCII spellings accepted by ParseOp.
var opAliases = map[string]Op{
	"==": OpEqual,
	"!=": OpNotEqual,
	"<>": OpNotEqual,
	">=": OpGreaterEqual,
	"<=": OpLessEqual,
}

func (op Op) apply(a, b int) bool {
	switch op {
	case OpEqual:
		return a == b
	case OpNotEqual:
		return a != b
	case OpGreater:
		return a > b
	case OpLess:
		return a < b
	case OpGreaterEqual:
		return a >= b
	case OpLessEqual:
		return a <= b
	}
	return false
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// ParseOp converts an operator symbol into an Op.  Both the symbols
// returned by [Op.String] and the ASCII forms "==", "!=", ">=" and "<="
// are recognised.
func ParseOp(s string) (Op, error) {
	s = strings.TrimSpace(s)
	for i, name := range opNames {
		if name == s {
			return Op(i), nil
		}
	}
	if op, ok := opAliases[s]; ok {
		return op, nil
	}
	return 0, errors.Errorf("unknown comparison operator %q", s)
}

// BorderMode selects which neighbours of a cell are considered.
// The zero value is Adjacent.
type BorderMode uint8

// These are the supported neighbourhoods.
const (
	Adjacent           BorderMode = iota // the four edge-sharing neighbours
	Diagonal                             // the four corner-sharing neighbours
	AdjacentOrDiagonal                   // all eight neighbours
)

// sides returns the neighbour directions selected by the mode.
func (m BorderMode) sides() SideMask {
	switch m {
	case Diagonal:
		return diagonalSides
	case AdjacentOrDiagonal:
		return AllSides
	}
	return cardinalSides
}

func (m BorderMode) String() string {
	switch m {
	case Adjacent:
		return "adjacent"
	case Diagonal:
		return "diagonal"
	case AdjacentOrDiagonal:
		return "adjacent or diagonal"
	}
	return fmt.Sprintf("BorderMode(%d)", int(m))
}

// ParseBorderMode converts a mode name into a BorderMode.  The empty
// string gives Adjacent.
func ParseBorderMode(s string) (BorderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "adjacent":
		return Adjacent, nil
	case "diagonal":
		return Diagonal, nil
	case "adjacent or diagonal", "adjacent_or_diagonal", "any":
		return AdjacentOrDiagonal, nil
	}
	return 0, errors.Errorf("unknown border mode %q", s)
}

// ScanDirection selects the directions searched by [Scan].
type ScanDirection uint8

// These are the supported direction groups.
const (
	ScanTop ScanDirection = iota
	ScanRight
	ScanBottom
	ScanLeft
	ScanTopAndBottom
	ScanLeftAndRight
	ScanAllDirections
)

// Directions returns the cardinal directions in the group, in the order in
// which [Scan] visits them.
func (d ScanDirection) Directions() []Direction {
	switch d {
	case ScanTop:
		return []Direction{Up}
	case ScanRight:
		return []Direction{Right}
	case ScanBottom:
		return []Direction{Down}
	case ScanLeft:
		return []Direction{Left}
	case ScanTopAndBottom:
		return []Direction{Up, Down}
	case ScanLeftAndRight:
		return []Direction{Left, Right}
	case ScanAllDirections:
		return []Direction{Up, Right, Down, Left}
	}
	return nil
}

var scanDirectionNames = [...]string{
	ScanTop:           "top",
	ScanRight:         "right",
	ScanBottom:        "bottom",
	ScanLeft:          "left",
	ScanTopAndBottom:  "top and bottom",
	ScanLeftAndRight:  "left and right",
	ScanAllDirections: "all directions",
}

func (d ScanDirection) String() string {
	if int(d) < len(scanDirectionNames) {
		return scanDirectionNames[d]
	}
	return fmt.Sprintf("ScanDirection(%d)", int(d))
}

// ParseScanDirection converts a direction name into a ScanDirection.
// Underscores may be used in place of spaces, and "all" is accepted for
// "all directions".
func ParseScanDirection(s string) (ScanDirection, error) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", " ")
	if s == "all" {
		return ScanAllDirections, nil
	}
	for i, name := range scanDirectionNames {
		if name == s {
			return ScanDirection(i), nil
		}
	}
	return 0, errors.Errorf("unknown scan direction %q", s)
}

// LineType selects the orientation of lines found by [Lines].
type LineType uint8

// These are the supported line orientations.
const (
	Horizontal LineType = iota
	Vertical
	HorizontalAndVertical
)

func (t LineType) horizontal() bool { return t == Horizontal || t == HorizontalAndVertical }
func (t LineType) vertical() bool   { return t == Vertical || t == HorizontalAndVertical }

func (t LineType) String() string {
	switch t {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case HorizontalAndVertical:
		return "both"
	}
	return fmt.Sprintf("LineType(%d)", int(t))
}

// ParseLineType converts "horizontal", "vertical" or "both" into a LineType.
func ParseLineType(s string) (LineType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	case "both":
		return HorizontalAndVertical, nil
	}
	return 0, errors.Errorf("unknown line type %q", s)
}

// JoinOp selects how [Join] combines two location lists.
type JoinOp uint8

// These are the supported join operations.
const (
	Concatenate JoinOp = iota
	Union
	Intersection
	SymmetricDifference
)

var joinOpNames = [...]string{
	Concatenate:         "concatenate",
	Union:               "union",
	Intersection:        "intersection",
	SymmetricDifference: "symmetric difference",
}

func (op JoinOp) String() string {
	if int(op) < len(joinOpNames) {
		return joinOpNames[op]
	}
	return fmt.Sprintf("JoinOp(%d)", int(op))
}

// ParseJoinOp converts a join operation name into a JoinOp.
func ParseJoinOp(s string) (JoinOp, error) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", " ")
	for i, name := range joinOpNames {
		if name == s {
			return JoinOp(i), nil
		}
	}
	return 0, errors.Errorf("unknown join operation %q", s)
}
