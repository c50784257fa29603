// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"go/ast"
	"go/token"
	"strconv"

	"golang.org/x/tools/go/analysis"
)

const fmtPath = "fmt"

// Imports describes how generated code in a file refers to package fmt.
type Imports struct {
	// Qualifier is the local package name, empty for a dot import.
	Qualifier string

	edit    analysis.TextEdit
	missing bool
}

// FmtImport inspects the imports of a file.
// When needed is false, no import edit is produced.
func FmtImport(file *ast.File, needed bool) Imports {
	for _, spec := range file.Imports {
		if path, err := strconv.Unquote(spec.Path.Value); err != nil || path != fmtPath {
			continue
		}

		switch {
		case spec.Name == nil:
			return Imports{Qualifier: fmtPath}

		case spec.Name.Name == ".":
			return Imports{}

		case spec.Name.Name != "_":
			return Imports{Qualifier: spec.Name.Name}
		}
	}

	if !needed {
		return Imports{Qualifier: fmtPath}
	}

	return Imports{Qualifier: fmtPath, edit: importEdit(file), missing: true}
}

// Edit returns the text edit adding the import, if one is needed.
func (i Imports) Edit() (analysis.TextEdit, bool) {
	return i.edit, i.missing
}

// importEdit adds `import "fmt"` to the first import declaration, or after the package clause.
func importEdit(file *ast.File) analysis.TextEdit {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.IMPORT {
			break
		}

		if gen.Lparen.IsValid() {
			pos := gen.Lparen + 1

			return analysis.TextEdit{Pos: pos, End: pos, NewText: []byte("\n\t\"fmt\"")}
		}

		pos := gen.End()

		return analysis.TextEdit{Pos: pos, End: pos, NewText: []byte("\nimport \"fmt\"")}
	}

	pos := file.Name.End()

	return analysis.TextEdit{Pos: pos, End: pos, NewText: []byte("\n\nimport \"fmt\"")}
}
