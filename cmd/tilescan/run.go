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
	"path/filepath"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"seehuhn.de/go/tilescan/internal/job"
	"seehuhn.de/go/tilescan/tilemap"
)

func runCommand(log *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "run the scans of a job file and print the results as JSON",
		ArgsUsage: "job.hcl",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "map",
				Aliases: []string{"m"},
				Usage:   "map file, overrides the map given in the job",
			},
			&cli.IntFlag{
				Name:  "scale",
				Usage: "base-2 logarithm of the tile size, overrides the job",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("expected exactly one job file")
			}
			jobFile := c.Args().First()
			entry := log.WithField("job", jobFile)

			f, err := job.Load(jobFile)
			if err != nil {
				return err
			}

			mapFile := c.String("map")
			if mapFile == "" {
				if f.Map == "" {
					return errors.New("no map given, use --map or set map in the job")
				}
				mapFile = f.Map
				if !filepath.IsAbs(mapFile) {
					mapFile = filepath.Join(filepath.Dir(jobFile), mapFile)
				}
			}

			scale := 0
			if f.Scale != nil {
				scale = *f.Scale
			}
			if c.IsSet("scale") {
				scale = c.Int("scale")
			}

			m, err := tilemap.Load(mapFile, scale, nil)
			if err != nil {
				return err
			}
			entry.WithField("map", mapFile).Debugf("%dx%d tiles", m.Width(), m.Height())

			r := &job.Runner{Grid: m, Log: entry}
			out, err := r.Run(f)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.App.Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}
