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

package main

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"seehuhn.de/go/tilescan"
	"seehuhn.de/go/tilescan/testcases"
)

type jsonTestCase struct {
	Name      string                `json:"name"`
	Scan      string                `json:"scan"`
	Map       []string              `json:"map"`
	Scale     int                   `json:"scale"`
	Locations []tilescan.Location   `json:"locations"`
	Lines     [][]tilescan.Location `json:"lines,omitempty"`
	Bounds    *tilescan.Bounds      `json:"bounds,omitempty"`
}

func exportCommand(log *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "run all built-in test cases and write the results as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output file",
				Value:   "testdata/testcases.json",
			},
		},
		Action: func(c *cli.Context) error {
			var out struct {
				TestCases []jsonTestCase `json:"testcases"`
			}

			for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
				for _, tc := range testcases.All[category] {
					name := category + "_" + tc.Name
					res, err := testcases.Run(tc)
					if err != nil {
						return err
					}
					log.WithField("case", name).Debug(testcases.Describe(tc.Op))
					out.TestCases = append(out.TestCases, toJSON(name, tc, res))
				}
			}

			fname := c.String("out")
			if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
				return errors.WrapPrefix(err, "export", 0)
			}
			f, err := os.Create(fname)
			if err != nil {
				return errors.WrapPrefix(err, "export", 0)
			}

			enc := json.NewEncoder(f)
			enc.SetIndent("", "  ")
			err = enc.Encode(out)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return errors.WrapPrefix(err, fname, 0)
			}
			log.Infof("wrote %d test cases to %s", len(out.TestCases), fname)
			return nil
		},
	}
}

func toJSON(name string, tc testcases.TestCase, res *testcases.Result) jsonTestCase {
	jtc := jsonTestCase{
		Name:      name,
		Scan:      testcases.Describe(tc.Op),
		Scale:     tc.Scale,
		Locations: res.Locations,
		Lines:     res.Lines,
	}
	jtc.Map = strings.Split(strings.TrimSuffix(res.Grid.String(), "\n"), "\n")
	if jtc.Locations == nil {
		jtc.Locations = []tilescan.Location{}
	}
	if b, ok := tilescan.BoundsOf(res.Locations); ok {
		jtc.Bounds = &b
	}
	return jtc
}
