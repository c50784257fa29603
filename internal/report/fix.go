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
	"bytes"
	"cmp"
	"go/ast"
	"go/printer"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/boundguard/internal/stmt"
)

var printcfg = &printer.Config{Mode: printer.UseSpaces | printer.TabIndent, Tabwidth: 8}

// insertEdits creates the text edit inserting the bound checks after the leading delegation calls.
func insertEdits(p *analysis.Pass, file *ast.File, block *ast.BlockStmt, head []stmt.Stmt, inserted []*stmt.If) ([]analysis.TextEdit, error) {
	pos := block.Lbrace + 1
	if len(head) > 0 {
		pos = head[len(head)-1].Source().End()
	}

	next := block.Rbrace
	if n := len(head); n < len(block.List) {
		next = block.List[n].Pos()
	}

	pos = afterLineComment(p.Fset, file, pos, next)

	var buf bytes.Buffer

	for _, s := range inserted {
		buf.WriteString("\n\t") // ignore error

		if err := fprintIndented(&buf, p.Fset, s.Source()); err != nil {
			return nil, err
		}
	}

	if sameLine(p.Fset, pos, next) {
		buf.WriteByte('\n') // ignore error
	}

	return []analysis.TextEdit{{Pos: pos, End: pos, NewText: buf.Bytes()}}, nil
}

// fprintIndented prints a statement, indenting continuation lines by one level.
func fprintIndented(buf *bytes.Buffer, fset *token.FileSet, node ast.Node) error {
	var tmp bytes.Buffer
	if err := printcfg.Fprint(&tmp, fset, node); err != nil {
		return err
	}

	buf.Write(bytes.ReplaceAll(tmp.Bytes(), []byte("\n"), []byte("\n\t"))) // ignore error

	return nil
}

// afterLineComment moves pos behind a comment starting on the same line before limit.
func afterLineComment(fset *token.FileSet, file *ast.File, pos, limit token.Pos) token.Pos {
	// find the first comment starting after pos
	i, _ := slices.BinarySearchFunc(file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return cmp.Compare(c.Pos(), p) })
	if i >= len(file.Comments) {
		return pos
	}

	if comment := file.Comments[i]; comment.End() <= limit && sameLine(fset, comment.Pos(), pos) {
		return comment.End()
	}

	return pos
}

func sameLine(fset *token.FileSet, a, b token.Pos) bool {
	return fset.Position(a).Line == fset.Position(b).Line
}
