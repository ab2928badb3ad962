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
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/tilescan"
	"seehuhn.de/go/tilescan/tilemap"
)

var benchSizes = []int{20, 200, 2000}

// makeMaze returns a size×size map with a regular pattern of walls, so that
// scans have to work around obstacles.
func makeMaze(b *testing.B, size int) *tilemap.TileMap {
	b.Helper()
	m := tilemap.New(size, size, 4)
	for r := 2; r < size; r += 4 {
		for c := range size {
			if c%8 != 3 {
				require.NoError(b, m.SetWall(c, r, true))
			}
		}
	}
	return m
}

func BenchmarkFlood(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			m := makeMaze(b, size)
			opt := tilescan.ScanOptions{Rule: tilescan.Not(tilescan.IsWall())}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				tilescan.Flood(m, tilescan.Loc(0, 0), opt)
			}
		})
	}
}

func BenchmarkLines(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			m := makeMaze(b, size)
			rule := tilescan.IsWall()
			opt := tilescan.LineOptions{MinLength: 2}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				tilescan.Lines(m, tilescan.HorizontalAndVertical, rule, opt)
			}
		})
	}
}

// BenchmarkOutline measures computing an outline and rasterising its path
// with x/image/vector.
func BenchmarkOutline(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			m := makeMaze(b, size)
			sel := tilescan.All(m, tilescan.Not(tilescan.IsWall()))

			const scale = 0
			r := vector.NewRasterizer(size+2, size+2)
			dst := image.NewAlpha(image.Rect(0, 0, size+2, size+2))
			src := image.NewUniform(color.Alpha{255})

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				o := tilescan.NewOutline(sel)
				r.Reset(size+2, size+2)
				addPath(r, o.Path(scale, 1), 1)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// addPath adds a path made of straight line segments to r, shifted by
// (d, d).
func addPath(r *vector.Rasterizer, p *path.Data, d float32) {
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(float32(pts[0].X)+d, float32(pts[0].Y)+d)
		case path.CmdLineTo:
			r.LineTo(float32(pts[0].X)+d, float32(pts[0].Y)+d)
		case path.CmdClose:
			r.ClosePath()
		}
	}
}
