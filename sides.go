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
	"slices"
	"strings"
	"unicode"

	"github.com/go-errors/errors"
)

// SideMask is a set of neighbour directions, one bit per neighbour.
type SideMask uint8

// The eight neighbours of a cell.
const (
	SideTop SideMask = 1 << iota
	SideTopRight
	SideRight
	SideBottomRight
	SideBottom
	SideBottomLeft
	SideLeft
	SideTopLeft

	// AllSides contains all eight neighbours.
	AllSides SideMask = 0xff
)

// Sides of a cell, each consisting of an edge neighbour and the two
// adjacent corner neighbours.
const (
	TopSide    = SideTopLeft | SideTop | SideTopRight
	RightSide  = SideTopRight | SideRight | SideBottomRight
	BottomSide = SideBottomLeft | SideBottom | SideBottomRight
	LeftSide   = SideTopLeft | SideLeft | SideBottomLeft
)

const (
	cardinalSides = SideTop | SideRight | SideBottom | SideLeft
	diagonalSides = SideTopLeft | SideTopRight | SideBottomLeft | SideBottomRight
)

// neighbor describes one of the eight neighbours.
// The order matches the enumeration order of [ForEachAdjacent].
type neighbor struct {
	side   SideMask
	dc, dr int
}

var neighbors = [8]neighbor{
	{SideLeft, -1, 0},
	{SideTop, 0, -1},
	{SideRight, 1, 0},
	{SideBottom, 0, 1},
	{SideTopLeft, -1, -1},
	{SideTopRight, 1, -1},
	{SideBottomLeft, -1, 1},
	{SideBottomRight, 1, 1},
}

// forEachNeighbor calls fn for every neighbour of (column, row) whose side is
// in mask.  Neighbours outside the grid are skipped unless includeOutside is
// set.  Iteration stops when fn returns false.
func forEachNeighbor(g Grid, column, row int, mask SideMask, includeOutside bool, fn func(side SideMask, c, r int) bool) {
	for _, n := range neighbors {
		if mask&n.side == 0 {
			continue
		}
		c, r := column+n.dc, row+n.dr
		if !includeOutside && g.IsOutside(c, r) {
			continue
		}
		if !fn(n.side, c, r) {
			return
		}
	}
}

var sideTerms = []struct {
	name string
	mask SideMask
}{
	{"top", SideTop},
	{"top-right", SideTopRight},
	{"right", SideRight},
	{"bottom-right", SideBottomRight},
	{"bottom", SideBottom},
	{"bottom-left", SideBottomLeft},
	{"left", SideLeft},
	{"top-left", SideTopLeft},
	{"top-side", TopSide},
	{"right-side", RightSide},
	{"bottom-side", BottomSide},
	{"left-side", LeftSide},
}

// MaxSideTerms is the maximal number of terms in a side expression accepted
// by [ParseSides].
const MaxSideTerms = 12

func (m SideMask) String() string {
	if m == 0 {
		return "none"
	}
	if m == AllSides {
		return "all sides"
	}
	var parts []string
	for _, t := range sideTerms[:8] {
		if m&t.mask != 0 {
			parts = append(parts, t.name)
		}
	}
	return strings.Join(parts, "|")
}

// SideExpr is a boolean expression over neighbour directions.
// Use [Side], [SidesAnd], [SidesOr] and [SidesNot] to construct
// expressions, or parse them from text with [ParseSides].
type SideExpr interface {
	isSideExpr()
}

type sideTerm SideMask

type sideAnd []SideExpr

type sideOr []SideExpr

type sideNot struct{ arg SideExpr }

func (sideTerm) isSideExpr() {}
func (sideAnd) isSideExpr()  {}
func (sideOr) isSideExpr()   {}
func (sideNot) isSideExpr()  {}

// Side returns an expression selecting the neighbours in m.
func Side(m SideMask) SideExpr {
	return sideTerm(m)
}

// SidesAnd selects the neighbours selected by all arguments.
func SidesAnd(a, b SideExpr, more ...SideExpr) SideExpr {
	return append(sideAnd{a, b}, more...)
}

// SidesOr selects the neighbours selected by at least one argument.
func SidesOr(a, b SideExpr, more ...SideExpr) SideExpr {
	return append(sideOr{a, b}, more...)
}

// SidesNot selects the neighbours not selected by e.
func SidesNot(e SideExpr) SideExpr {
	return sideNot{arg: e}
}

// CompileSides converts a side expression into disjunctive normal form.
// Each returned group is the set of neighbours selected by one conjunction;
// a neighbour is selected by the expression iff it belongs to at least one
// group.  Empty groups and duplicates are removed.  A nil expression,
// also when nested inside And, Or or Not, selects all sides.
func CompileSides(e SideExpr) []SideMask {
	if e == nil {
		return []SideMask{AllSides}
	}
	groups := compileSides(e)

	res := groups[:0]
	for _, g := range groups {
		if g != 0 && !slices.Contains(res, g) {
			res = append(res, g)
		}
	}
	return res
}

func compileSides(e SideExpr) []SideMask {
	switch e := e.(type) {
	case nil:
		return []SideMask{AllSides}

	case sideTerm:
		return []SideMask{SideMask(e)}

	case sideOr:
		var groups []SideMask
		for _, arg := range e {
			groups = append(groups, compileSides(arg)...)
		}
		return groups

	case sideAnd:
		groups := []SideMask{AllSides}
		for _, arg := range e {
			argGroups := compileSides(arg)
			// at most 255 distinct non-empty groups
			var seen [256]bool
			var next []SideMask
			for _, g := range groups {
				for _, h := range argGroups {
					if x := g & h; x != 0 && !seen[x] {
						seen[x] = true
						next = append(next, x)
					}
				}
			}
			groups = next
		}
		return groups

	case sideNot:
		var union SideMask
		for _, g := range compileSides(e.arg) {
			union |= g
		}
		return []SideMask{AllSides &^ union}
	}
	return nil
}

// ParseSides parses a side expression like "top-side and not top-left or
// bottom".  The terms are the eight neighbours "top", "top-right", "right",
// "bottom-right", "bottom", "bottom-left", "left", "top-left" and the four
// sides "top-side", "right-side", "bottom-side", "left-side".  Terms can be
// combined using "and", "or", "not" and parentheses; "not" binds tightest
// and "or" loosest.  At most [MaxSideTerms] terms are allowed.
func ParseSides(text string) (SideExpr, error) {
	p := &sideParser{tokens: tokenizeSides(text)}
	if len(p.tokens) == 0 {
		return nil, errors.New("empty side expression")
	}
	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		return nil, errors.Errorf("unexpected %q in side expression", p.tokens[p.pos])
	}
	if p.terms > MaxSideTerms {
		return nil, errors.Errorf("side expression has %d terms, at most %d are allowed",
			p.terms, MaxSideTerms)
	}
	return e, nil
}

func tokenizeSides(text string) []string {
	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, strings.ToLower(cur.String()))
			cur.Reset()
		}
	}
	for _, r := range text {
		switch {
		case r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
		case unicode.IsSpace(r):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}

type sideParser struct {
	tokens []string
	pos    int
	terms  int
}

func (p *sideParser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

func (p *sideParser) parseOr() (SideExpr, error) {
	var args []SideExpr
	for {
		e, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
		if p.peek() != "or" {
			break
		}
		p.pos++
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return sideOr(args), nil
}

func (p *sideParser) parseAnd() (SideExpr, error) {
	var args []SideExpr
	for {
		e, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
		if p.peek() != "and" {
			break
		}
		p.pos++
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return sideAnd(args), nil
}

func (p *sideParser) parseUnary() (SideExpr, error) {
	tok := p.peek()
	switch tok {
	case "":
		return nil, errors.New("unexpected end of side expression")
	case "not":
		p.pos++
		e, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return sideNot{arg: e}, nil
	case "(":
		p.pos++
		e, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ")" {
			return nil, errors.New("missing ) in side expression")
		}
		p.pos++
		return e, nil
	}

	for _, t := range sideTerms {
		if t.name == tok {
			p.pos++
			p.terms++
			return sideTerm(t.mask), nil
		}
	}
	return nil, errors.Errorf("unknown side %q", tok)
}
