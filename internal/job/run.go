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
	"github.com/sirupsen/logrus"

	"seehuhn.de/go/tilescan"
)

// Output is the result of one scan or join.
type Output struct {
	Name      string                `json:"name"`
	Kind      string                `json:"kind"`
	Locations []tilescan.Location   `json:"locations"`
	Lines     [][]tilescan.Location `json:"lines,omitempty"`
	Bounds    *tilescan.Bounds      `json:"bounds,omitempty"`
	Outline   [][]int               `json:"outline,omitempty"`
}

// Runner executes jobs on a grid.
type Runner struct {
	Grid tilescan.Grid
	Log  *logrus.Entry
}

// Run performs all scans of f, followed by all joins, and returns their
// results in this order.
func (r *Runner) Run(f *File) ([]*Output, error) {
	log := r.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	byName := make(map[string]*Output)
	var res []*Output
	for _, s := range f.Scans {
		entry := log.WithField("scan", s.Name)
		out, err := r.runScan(s)
		if err != nil {
			return nil, errors.WrapPrefix(err, "scan "+s.Name, 0)
		}
		finish(out, s.Outline)
		entry.WithField("kind", s.Kind).Debugf("%d cells", len(out.Locations))

		byName[s.Name] = out
		res = append(res, out)
	}

	for _, j := range f.Joins {
		jlog := log.WithField("scan", j.Name)
		op, err := tilescan.ParseJoinOp(j.Op)
		if err != nil {
			return nil, errors.WrapPrefix(err, "join "+j.Name, 0)
		}
		left, right := byName[j.Left], byName[j.Right]
		if left == nil || right == nil {
			return nil, errors.Errorf("join %s: unknown input", j.Name)
		}
		out := &Output{
			Name:      j.Name,
			Kind:      "join",
			Locations: tilescan.Join(op, left.Locations, right.Locations),
		}
		finish(out, j.Outline)
		jlog.WithField("op", op.String()).Debugf("%d cells", len(out.Locations))

		byName[j.Name] = out
		res = append(res, out)
	}
	return res, nil
}

func (r *Runner) runScan(s *ScanBlock) (*Output, error) {
	rule, err := s.rule()
	if err != nil {
		return nil, err
	}
	out := &Output{Name: s.Name, Kind: s.Kind}
	opt := tilescan.ScanOptions{MaxDistance: s.MaxDistance, Rule: rule}

	switch s.Kind {
	case "ray":
		origin, err := s.origin()
		if err != nil {
			return nil, err
		}
		dirs := tilescan.ScanAllDirections
		if s.Direction != "" {
			dirs, err = tilescan.ParseScanDirection(s.Direction)
			if err != nil {
				return nil, err
			}
		}
		out.Locations = tilescan.Scan(r.Grid, origin, dirs, opt)

	case "flood":
		origin, err := s.origin()
		if err != nil {
			return nil, err
		}
		out.Locations = tilescan.Flood(r.Grid, origin, opt)

	case "all":
		out.Locations = tilescan.All(r.Grid, rule)

	case "adjacent":
		origin, err := s.origin()
		if err != nil {
			return nil, err
		}
		mode, err := tilescan.ParseBorderMode(s.Mode)
		if err != nil {
			return nil, err
		}
		out.Locations = tilescan.AdjacentLocations(r.Grid, origin, mode, rule)

	case "lines":
		lt := tilescan.HorizontalAndVertical
		if s.LineType != "" {
			lt, err = tilescan.ParseLineType(s.LineType)
			if err != nil {
				return nil, err
			}
		}
		out.Lines = tilescan.Lines(r.Grid, lt, rule, tilescan.LineOptions{
			MinLength: s.MinLength,
			MaxLength: s.MaxLength,
		})
		for _, line := range out.Lines {
			out.Locations = tilescan.Join(tilescan.Union, out.Locations, line)
		}

	default:
		return nil, errors.Errorf("unknown scan kind %q", s.Kind)
	}
	return out, nil
}

// finish adds the bounding box and, if requested, the outline.
func finish(out *Output, withOutline bool) {
	if out.Locations == nil {
		out.Locations = []tilescan.Location{}
	}
	if b, ok := tilescan.BoundsOf(out.Locations); ok {
		out.Bounds = &b
	}
	if !withOutline {
		return
	}
	for _, row := range tilescan.NewOutline(out.Locations).Rows() {
		cells := make([]int, len(row))
		for i, e := range row {
			cells[i] = int(e)
		}
		out.Outline = append(out.Outline, cells)
	}
}
