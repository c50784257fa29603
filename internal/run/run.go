// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/boundguard/internal/astutil"
	"fillmore-labs.com/boundguard/internal/config"
	"fillmore-labs.com/boundguard/internal/guard"
	"fillmore-labs.com/boundguard/internal/handle"
	"fillmore-labs.com/boundguard/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the boundguard analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("boundguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if !r.Directives.Any() {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "BoundGuard")
	defer task.End()

	if p.Pkg != nil {
		trace.Log(ctx, "package", p.Pkg.Path())
	}

	sink := report.PassSink{Pass: p}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.NoLint(file.Doc) {
			continue
		}

		imports := report.FmtImport(file, r.Failure.NeedsFmt())

		fs := fileStage{
			Options: r,
			pass:    p,
			file:    currentFile.File(),
			imports: imports,
			handler: handle.Handler{
				Synthesizer: guard.Synthesizer{Failure: r.Failure, Qualifier: imports.Qualifier},
				Sink:        sink,
			},
		}

		// Loop over all declarations carrying directives in this file
		for c := range f.Preorder((*ast.FuncDecl)(nil), (*ast.StructType)(nil), (*ast.InterfaceType)(nil)) {
			switch node := c.Node().(type) {
			case *ast.FuncDecl:
				fs.function(ctx, node)

			case *ast.StructType:
				fs.fields(ctx, node)

			case *ast.InterfaceType:
				fs.methods(ctx, node)

			default:
				astutil.InternalError(p, node, "Unexpected node type: %T", node)
			}
		}
	}

	return nil, nil
}
