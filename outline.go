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
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Edge is a set of cell edges which lie on the outline of a region.
type Edge uint8

// The four edges of a cell.
const (
	EdgeTop Edge = 1 << iota
	EdgeRight
	EdgeBottom
	EdgeLeft

	allEdges = EdgeTop | EdgeRight | EdgeBottom | EdgeLeft
)

// Has reports whether all edges in x are set in e.
func (e Edge) Has(x Edge) bool { return e&x == x }

func (e Edge) String() string {
	if e == 0 {
		return "none"
	}
	var parts []string
	for _, x := range []struct {
		e    Edge
		name string
	}{{EdgeTop, "top"}, {EdgeRight, "right"}, {EdgeBottom, "bottom"}, {EdgeLeft, "left"}} {
		if e.Has(x.e) {
			parts = append(parts, x.name)
		}
	}
	return strings.Join(parts, "|")
}

// Outline describes the boundary of a set of selected cells.
//
// For every selected cell, the outline records which of its edges face a
// cell which is not selected.  Outlines are computed by [NewOutline] and
// are not modified afterwards, except by [Outline.Recompute] which replaces
// the whole value.
type Outline struct {
	bounds Bounds
	empty  bool
	mask   []Edge // row-major, bounds.Width() × bounds.Height()
}

// NewOutline computes the outline of the given set of cells.
// Duplicate locations are allowed.
func NewOutline(locs []Location) Outline {
	b, ok := BoundsOf(locs)
	if !ok {
		return Outline{empty: true}
	}

	w, h := b.Width(), b.Height()
	selected := make([]bool, w*h)
	for _, l := range locs {
		selected[(l.Row-b.MinRow)*w+(l.Column-b.MinColumn)] = true
	}
	isSelected := func(x, y int) bool {
		return x >= 0 && y >= 0 && x < w && y < h && selected[y*w+x]
	}

	mask := make([]Edge, w*h)
	for y := range h {
		for x := range w {
			if !selected[y*w+x] {
				continue
			}
			var e Edge
			if !isSelected(x, y-1) {
				e |= EdgeTop
			}
			if !isSelected(x+1, y) {
				e |= EdgeRight
			}
			if !isSelected(x, y+1) {
				e |= EdgeBottom
			}
			if !isSelected(x-1, y) {
				e |= EdgeLeft
			}
			mask[y*w+x] = e
		}
	}

	return Outline{bounds: b, mask: mask}
}

// Recompute replaces o with the outline of locs.
func (o *Outline) Recompute(locs []Location) {
	*o = NewOutline(locs)
}

// Empty reports whether the outline was computed from an empty set.
func (o Outline) Empty() bool {
	return o.empty || len(o.mask) == 0
}

// Bounds returns the bounding box of the selected cells.
// The second return value is false for empty outlines.
func (o Outline) Bounds() (Bounds, bool) {
	return o.bounds, !o.Empty()
}

// At returns the outline edges of the cell at (column, row), in grid
// coordinates.  The result is 0 for cells which are not selected.
func (o Outline) At(column, row int) Edge {
	if o.Empty() || !o.bounds.Contains(Location{Column: column, Row: row}) {
		return 0
	}
	w := o.bounds.Width()
	return o.mask[(row-o.bounds.MinRow)*w+(column-o.bounds.MinColumn)]
}

// Rows returns a copy of the edge mask, one slice per row of the bounding
// box, starting at the top-left corner.
func (o Outline) Rows() [][]Edge {
	if o.Empty() {
		return nil
	}
	w, h := o.bounds.Width(), o.bounds.Height()
	rows := make([][]Edge, h)
	for y := range h {
		rows[y] = append([]Edge(nil), o.mask[y*w:(y+1)*w]...)
	}
	return rows
}

// Frame returns the pixel area of the bounding box, for tiles of size
// 1<<scale.  Outline segments drawn with positive thickness extend beyond
// this frame.
func (o Outline) Frame(scale int) rect.Rect {
	if o.Empty() {
		return rect.Rect{}
	}
	return o.bounds.Pixels(scale)
}

// Path returns the outline as a set of filled rectangles in pixel
// coordinates, for tiles of size 1<<scale.  Each outline edge becomes a
// bar of the given thickness just outside the cell, and where two outline
// edges of a cell meet, a square closes the corner.  Thickness values below
// 1 are treated as 1.
//
// All rectangles have the same orientation, so the path can be filled with
// either fill rule.
func (o Outline) Path(scale, thickness int) *path.Data {
	p := &path.Data{}
	if o.Empty() {
		return p
	}
	s := shift(scale)
	tw := 1 << s
	th := max(thickness, 1)

	w, h := o.bounds.Width(), o.bounds.Height()
	left := o.bounds.MinColumn << s
	top := o.bounds.MinRow << s
	for y := range h {
		for x := range w {
			e := o.mask[y*w+x]
			if e == 0 {
				continue
			}
			cl := left + x<<s
			ct := top + y<<s

			if e.Has(EdgeTop) {
				addRect(p, cl, ct-th, tw, th)
				if e.Has(EdgeRight) {
					addRect(p, cl+tw, ct-th, th, th)
				}
				if e.Has(EdgeLeft) {
					addRect(p, cl-th, ct-th, th, th)
				}
			}
			if e.Has(EdgeRight) {
				addRect(p, cl+tw, ct, th, tw)
			}
			if e.Has(EdgeBottom) {
				addRect(p, cl, ct+tw, tw, th)
				if e.Has(EdgeRight) {
					addRect(p, cl+tw, ct+tw, th, th)
				}
				if e.Has(EdgeLeft) {
					addRect(p, cl-th, ct+tw, th, th)
				}
			}
			if e.Has(EdgeLeft) {
				addRect(p, cl-th, ct, th, tw)
			}
		}
	}
	return p
}

// addRect appends a closed, axis-aligned rectangle to p.
func addRect(p *path.Data, x, y, w, h int) {
	x0, y0 := float64(x), float64(y)
	x1, y1 := float64(x+w), float64(y+h)
	p.MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}
