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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/boundguard/internal/astutil"
	"fillmore-labs.com/boundguard/internal/config"
	"fillmore-labs.com/boundguard/internal/directive"
	"fillmore-labs.com/boundguard/internal/handle"
	"fillmore-labs.com/boundguard/internal/inject"
	"fillmore-labs.com/boundguard/internal/report"
	"fillmore-labs.com/boundguard/internal/schedule"
	"fillmore-labs.com/boundguard/internal/stmt"
	"fillmore-labs.com/boundguard/internal/target"
)

// ErrUnknownParameter is reported for function directives naming a missing parameter.
var ErrUnknownParameter = errors.New("names unknown parameter")

// fileStage processes the declarations of one file.
type fileStage struct {
	*Options

	pass    *analysis.Pass
	file    *ast.File
	imports report.Imports
	handler handle.Handler
}

// function handles the directives of a function or method declaration.
func (fs fileStage) function(ctx context.Context, fn *ast.FuncDecl) {
	// Skip functions with nolint comment
	if astutil.NoLint(fn.Doc) {
		return
	}

	var body *inject.Body
	if fn.Body != nil {
		body = inject.NewBody(stmt.ContextOf(fn).Convert(fn.Body.List))
	}

	occurrences := fs.parameters(fn.Doc, fn.Type, body)
	if len(occurrences) == 0 {
		return
	}

	schedule.Run(ctx, fs.handler, occurrences)

	if body != nil {
		report.Changed(ctx, fs.pass, fs.file, fn, body, fs.imports)
	}
}

// methods handles the directives of interface methods, which have no body.
func (fs fileStage) methods(ctx context.Context, it *ast.InterfaceType) {
	for _, method := range it.Methods.List {
		ftype, ok := method.Type.(*ast.FuncType)
		if !ok || astutil.NoLint(method.Doc) {
			continue // embedded interface
		}

		if occurrences := fs.parameters(method.Doc, ftype, nil); len(occurrences) > 0 {
			schedule.Run(ctx, fs.handler, occurrences)
		}
	}
}

// fields handles the directives of struct fields.
func (fs fileStage) fields(ctx context.Context, st *ast.StructType) {
	for _, field := range st.Fields.List {
		var occurrences []handle.Occurrence

		for _, group := range [...]*ast.CommentGroup{field.Doc, field.Comment} {
			for d, err := range directive.All(group, false) {
				if !fs.enabled(d, err) {
					continue
				}

				for _, name := range fieldNames(field) {
					occurrences = append(occurrences, handle.Occurrence{
						Kind:   d.Kind,
						Values: d.Values,
						Target: target.Field(name, field.Type),
						At:     d.Comment,
					})
				}
			}
		}

		if len(occurrences) > 0 {
			schedule.Run(ctx, fs.handler, occurrences)
		}
	}
}

// parameters collects the directive occurrences of a function doc comment.
func (fs fileStage) parameters(doc *ast.CommentGroup, ftype *ast.FuncType, body *inject.Body) []handle.Occurrence {
	var occurrences []handle.Occurrence

	for d, err := range directive.All(doc, true) {
		if !fs.enabled(d, err) {
			continue
		}

		typ, ok := parameterType(ftype, d.Subject)
		if !ok {
			fs.handler.Sink.Error(d.Comment, fmt.Errorf("`%s` %w `%s`", d.Kind.Directive(), ErrUnknownParameter, d.Subject))

			continue
		}

		occurrences = append(occurrences, handle.Occurrence{
			Kind:   d.Kind,
			Values: d.Values,
			Target: target.Parameter(d.Subject, typ, body),
			At:     d.Comment,
		})
	}

	return occurrences
}

// enabled reports front end errors and filters disabled directive kinds.
func (fs fileStage) enabled(d directive.Directive, err error) bool {
	if !errors.Is(err, directive.ErrUnknownDirective) && !fs.Directives.Enabled(config.ForKind(d.Kind)) {
		return false
	}

	if err != nil {
		fs.handler.Sink.Error(d.Comment, err)

		return false
	}

	return true
}

// parameterType returns the declared type of the named parameter.
func parameterType(ftype *ast.FuncType, name string) (ast.Expr, bool) {
	if ftype.Params == nil || name == "_" {
		return nil, false
	}

	for _, field := range ftype.Params.List {
		for _, id := range field.Names {
			if id.Name == name {
				return field.Type, true
			}
		}
	}

	return nil, false
}

// fieldNames returns the names declared by a struct field, the type name for embedded fields.
func fieldNames(field *ast.Field) []string {
	if len(field.Names) == 0 {
		return []string{types.ExprString(field.Type)}
	}

	names := make([]string, 0, len(field.Names))
	for _, id := range field.Names {
		names = append(names, id.Name)
	}

	return names
}
