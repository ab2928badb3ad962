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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/tilescan/testcases"
)

const testJob = `
map = "level.txt"

scan "floor" {
  kind    = "flood"
  origin  = [1, 1]
  outline = true
  rule "not" {
    rule "wall" {}
  }
}
`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestRunCommand(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"level.txt": "####\n#..#\n#.##\n####\n",
		"job.hcl":   testJob,
	})

	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	err := app.Run([]string{"tilescan", "--verbose", "run", filepath.Join(dir, "job.hcl")})
	require.NoError(t, err)

	var out []struct {
		Name      string `json:"name"`
		Locations []struct {
			Column int `json:"column"`
			Row    int `json:"row"`
		} `json:"locations"`
		Outline [][]int `json:"outline"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "floor", out[0].Name)
	assert.Len(t, out[0].Locations, 3)
	assert.Equal(t, [][]int{{9, 7}, {14, 0}}, out[0].Outline)

	assert.Contains(t, stderr.String(), "scan=floor")
}

func TestRunCommandMapFlag(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"other.txt": "...\n...\n",
		"job.hcl":   testJob,
	})

	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	err := app.Run([]string{"tilescan", "run", "--map", filepath.Join(dir, "other.txt"), filepath.Join(dir, "job.hcl")})
	require.NoError(t, err)
	assert.Empty(t, stderr.String())

	var out []map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Len(t, out[0]["locations"], 6)
}

func TestRunCommandErrors(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"job.hcl":   testJob,
		"nomap.hcl": "scan \"a\" {\n kind = \"all\"\n}\n",
	})

	for _, args := range [][]string{
		{"tilescan", "run"},
		{"tilescan", "run", filepath.Join(dir, "missing.hcl")},
		{"tilescan", "run", filepath.Join(dir, "job.hcl")}, // level.txt does not exist
		{"tilescan", "run", filepath.Join(dir, "nomap.hcl")},
	} {
		var stdout, stderr bytes.Buffer
		app := newApp(&stdout, &stderr)
		assert.Error(t, app.Run(args), "%v", args)
	}
}

func TestExportCommand(t *testing.T) {
	t.Parallel()

	fname := filepath.Join(t.TempDir(), "out", "testcases.json")

	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	require.NoError(t, app.Run([]string{"tilescan", "export", "--out", fname}))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	require.NoError(t, json.Unmarshal(data, &out))

	total := 0
	for _, cases := range testcases.All {
		total += len(cases)
	}
	assert.Len(t, out.TestCases, total)
	for _, tc := range out.TestCases {
		assert.NotEmpty(t, tc.Map, tc.Name)
		assert.NotNil(t, tc.Locations, tc.Name)
	}
}
