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

// Package report turns handler results into diagnostics and suggested fixes.
package report

import (
	"context"
	"fmt"
	"go/ast"
	"runtime/trace"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/boundguard/internal/astutil"
	"fillmore-labs.com/boundguard/internal/guard"
	"fillmore-labs.com/boundguard/internal/inject"
	"fillmore-labs.com/boundguard/internal/stmt"
)

// PassSink reports handler diagnostics to an [analysis.Pass].
type PassSink struct {
	Pass *analysis.Pass
}

// Error reports a rejected directive.
func (s PassSink) Error(at ast.Node, err error) {
	s.Pass.Report(analysis.Diagnostic{Pos: at.Pos(), End: at.End(), Category: "error", Message: err.Error()})
}

// Warning reports a skipped bound check.
func (s PassSink) Warning(at ast.Node, msg string) {
	s.Pass.Report(analysis.Diagnostic{Pos: at.Pos(), End: at.End(), Category: "warning", Message: msg})
}

// Changed reports a function whose body received bound checks, with a suggested fix inserting them.
func Changed(ctx context.Context, p *analysis.Pass, file *ast.File, fn *ast.FuncDecl, body *inject.Body, imports Imports) {
	if !body.Changed() {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	inserted := body.Inserted()

	edits, err := insertEdits(p, file, fn.Body, body.Head(), inserted)
	if err != nil {
		astutil.InternalError(p, fn.Name, "Can't render bound checks: %s", err)

		return
	}

	if edit, ok := imports.Edit(); ok {
		edits = append([]analysis.TextEdit{edit}, edits...)
	}

	p.Report(analysis.Diagnostic{
		Pos:     fn.Name.Pos(),
		End:     fn.Name.End(),
		Message: fmt.Sprintf("Missing bound checks for %s", concatNames(subjects(inserted))),
		SuggestedFixes: []analysis.SuggestedFix{{
			Message:   "Add bound checks",
			TextEdits: edits,
		}},
	})
}

// subjects returns the distinct checked identifiers in statement order.
func subjects(inserted []*stmt.If) []string {
	var names []string

	seen := make(map[string]struct{}, len(inserted))

	for _, s := range inserted {
		c, ok := guard.Match(s)
		if !ok {
			continue
		}

		if _, ok := seen[c.Subject]; ok {
			continue
		}

		seen[c.Subject] = struct{}{}
		names = append(names, c.Subject)
	}

	return names
}

// concatNames formats a list of variable names into a human-readable string (e.g., "'a', 'b' and 'c'").
func concatNames(varNames []string) string {
	var allNames strings.Builder

	for i, name := range varNames {
		if i > 0 {
			var separator string
			if i == len(varNames)-1 {
				separator = " and "
			} else {
				separator = ", "
			}

			allNames.WriteString(separator) // ignore error
		}

		allNames.WriteByte('\'')   // ignore error
		allNames.WriteString(name) // ignore error
		allNames.WriteByte('\'')   // ignore error
	}

	return allNames.String()
}
