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

// Command genpdf draws the test cases as PDF files, for visual inspection.
// Each page shows the map, the cells selected by the scan and the outline
// of the selection.  With -png, the PDFs are also rendered to PNG images
// using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/tilescan/testcases"
)

const previewDir = "testdata/preview"

// margin leaves room for the outline around cells on the map boundary.
const margin = 4

func main() {
	withPNG := flag.Bool("png", false, "also render PNG images using Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(previewDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(previewDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *withPNG {
				pngPath := filepath.Join(previewDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	res, err := testcases.Run(tc)
	if err != nil {
		return err
	}
	m := res.Grid
	tile := float64(int(1) << m.Scale())
	width := float64(m.Width())*tile + 2*margin
	height := float64(m.Height())*tile + 2*margin

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: width,
		URy: height,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, width, height)
	page.Fill()

	// PDF origin is bottom-left; maps use top-left.
	// Apply Y-axis flip and move the map inside the margin.
	page.Transform(matrix.Matrix{1, 0, 0, -1, margin, height - margin})

	// map contents
	for r := range m.Height() {
		for c := range m.Width() {
			var gray float64
			switch {
			case m.IsWall(c, r):
				gray = 0.3
			case m.TileAt(c, r) != nil:
				gray = tileGray(m.TileAt(c, r).Name)
			default:
				continue
			}
			page.SetFillColor(color.DeviceGray(gray))
			page.Rectangle(float64(c)*tile, float64(r)*tile, tile, tile)
			page.Fill()
		}
	}

	// selected cells, drawn as smaller squares so that the map stays visible
	inset := tile / 4
	page.SetFillColor(color.DeviceGray(0.5))
	for _, l := range res.Locations {
		page.Rectangle(float64(l.Column)*tile+inset, float64(l.Row)*tile+inset, tile-2*inset, tile-2*inset)
	}
	if len(res.Locations) > 0 {
		page.Fill()
	}

	// outline
	o := res.Outline()
	if !o.Empty() {
		thickness := max(m.Scale()-2, 1)
		page.SetFillColor(color.DeviceGray(0))
		for cmd, pts := range o.Path(m.Scale(), thickness).Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	return page.Close()
}

// tileGray chooses a light shade of gray for a tile name.
func tileGray(name string) float64 {
	var h uint32
	for _, b := range []byte(name) {
		h = h*31 + uint32(b)
	}
	return 0.7 + 0.25*float64(h%8)/7
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
