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

// Package job reads scan jobs from HCL files.
//
// A job file lists named scans, each with a rule built from nested rule
// blocks, and optional joins which combine the results of earlier scans:
//
//	scale = 4
//
//	scan "shore" {
//	  kind = "all"
//	  rule "and" {
//	    rule "not" {
//	      rule "tile" { tile = "w" }
//	    }
//	    rule "borders" {
//	      mode = "adjacent_or_diagonal"
//	      rule "tile" { tile = "w" }
//	    }
//	  }
//	}
//
//	join "both" {
//	  op    = "union"
//	  left  = "shore"
//	  right = "other"
//	}
package job

import (
	"os"

	"github.com/go-errors/errors"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// File is the decoded content of a job file.
type File struct {
	Map   string       `hcl:"map,optional"`
	Scale *int         `hcl:"scale,optional"`
	Scans []*ScanBlock `hcl:"scan,block"`
	Joins []*JoinBlock `hcl:"join,block"`
}

// ScanBlock describes one scan.  Which attributes are used depends on Kind.
type ScanBlock struct {
	Name string `hcl:"name,label"`
	Kind string `hcl:"kind"`

	Origin      []int  `hcl:"origin,optional"`
	Direction   string `hcl:"direction,optional"`
	MaxDistance int    `hcl:"max_distance,optional"`
	Mode        string `hcl:"mode,optional"`
	LineType    string `hcl:"line_type,optional"`
	MinLength   int    `hcl:"min_length,optional"`
	MaxLength   int    `hcl:"max_length,optional"`
	Outline     bool   `hcl:"outline,optional"`

	Rules []*RuleBlock `hcl:"rule,block"`
}

// RuleBlock describes a rule.  The label gives the rule type, nested rule
// blocks give the arguments of combinators.
type RuleBlock struct {
	Kind string `hcl:"kind,label"`

	Tile     string `hcl:"tile,optional"`
	Property string `hcl:"property,optional"`
	Op       string `hcl:"op,optional"`
	Value    int    `hcl:"value,optional"`
	Mode     string `hcl:"mode,optional"`
	Sides    string `hcl:"sides,optional"`

	Rules []*RuleBlock `hcl:"rule,block"`
}

// JoinBlock combines the results of two earlier scans or joins.
type JoinBlock struct {
	Name    string `hcl:"name,label"`
	Op      string `hcl:"op"`
	Left    string `hcl:"left"`
	Right   string `hcl:"right"`
	Outline bool   `hcl:"outline,optional"`
}

// Parse decodes a job file.  The file name is only used in error messages.
func Parse(src []byte, filename string) (file *File, err error) {
	// gohcl panics on some malformed input
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.Errorf("%s: panic while decoding job: %v", filename, recovered)
		}
	}()

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.New(diags)
	}

	file = &File{}
	if diags := gohcl.DecodeBody(hclFile.Body, nil, file); diags.HasErrors() {
		return nil, errors.New(diags)
	}
	if err := file.validate(); err != nil {
		return nil, errors.WrapPrefix(err, filename, 0)
	}
	return file, nil
}

// Load reads and decodes a job file.
func Load(filename string) (*File, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.WrapPrefix(err, "load job", 0)
	}
	return Parse(src, filename)
}

// validate checks names and references.  Rules and options are checked
// when the job is compiled.
func (f *File) validate() error {
	names := make(map[string]bool)
	for _, s := range f.Scans {
		if names[s.Name] {
			return errors.Errorf("duplicate name %q", s.Name)
		}
		names[s.Name] = true
	}
	for _, j := range f.Joins {
		if names[j.Name] {
			return errors.Errorf("duplicate name %q", j.Name)
		}
		for _, ref := range []string{j.Left, j.Right} {
			if !names[ref] {
				return errors.Errorf("join %q: unknown scan %q", j.Name, ref)
			}
		}
		names[j.Name] = true
	}
	return nil
}
