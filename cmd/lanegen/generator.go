// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// laneLetters lists the lanes in bit order: lane i is bit i of a mask.
var laneLetters = []string{"x", "y", "z", "w"}

// Generator writes the lane selector file.
type Generator struct {
	OutputFile string
	Package    string
}

// maskType describes one generated selector type.
type maskType struct {
	Name string
	Bits uint8
	Doc  string
}

// maskTypes returns the sixteen selectors ordered by their bit pattern.
func maskTypes() []maskType {
	upper := cases.Upper(language.Und)
	title := cases.Title(language.English)

	types := make([]maskType, 0, 1<<len(laneLetters))
	for bits := range 1 << len(laneLetters) {
		var letters []string
		for i, l := range laneLetters {
			if bits&(1<<i) != 0 {
				letters = append(letters, upper.String(l))
			}
		}
		suffix := title.String("none")
		if len(letters) > 0 {
			suffix = strings.Join(letters, "")
		}
		types = append(types, maskType{
			Name: "Lanes" + suffix,
			Bits: uint8(bits),
			Doc:  describe(letters),
		})
	}
	return types
}

func describe(letters []string) string {
	switch len(letters) {
	case 0:
		return "no lane"
	case 1:
		return "lane " + letters[0]
	case len(laneLetters):
		return "all lanes"
	default:
		last := len(letters) - 1
		return "lanes " + strings.Join(letters[:last], ", ") + " and " + letters[last]
	}
}

// Source renders the formatted Go file.
func (g *Generator) Source() ([]byte, error) {
	pkg := g.Package
	if pkg == "" {
		pkg = "hwy"
	}
	types := maskTypes()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by lanegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	names := make([]string, len(types))
	for i, mt := range types {
		names[i] = mt.Name
	}
	fmt.Fprintf(&buf, "// LaneMask is satisfied only by the lane selector types below. Bit i of\n")
	fmt.Fprintf(&buf, "// Bits selects lane i, with lane X in bit 0.\n")
	fmt.Fprintf(&buf, "type LaneMask interface {\n\t%s\n\tBits() uint8\n}\n", strings.Join(names, " | "))

	for _, mt := range types {
		fmt.Fprintf(&buf, "\n// %s selects %s.\n", mt.Name, mt.Doc)
		fmt.Fprintf(&buf, "type %s struct{}\n\n", mt.Name)
		fmt.Fprintf(&buf, "// Bits returns 0b%04b.\n", mt.Bits)
		fmt.Fprintf(&buf, "func (%s) Bits() uint8 { return 0b%04b }\n", mt.Name, mt.Bits)
	}

	filename := g.OutputFile
	if filename == "" {
		filename = "lanemask_gen.go"
	}
	formatted, err := imports.Process(filepath.Base(filename), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", filename, err)
	}
	return formatted, nil
}

// Run renders the file and writes it to OutputFile.
func (g *Generator) Run() error {
	src, err := g.Source()
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.OutputFile, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", g.OutputFile, err)
	}
	return nil
}
