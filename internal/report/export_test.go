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

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/boundguard/internal/stmt"
)

var ConcatNames = concatNames

func InsertEdits(fset *token.FileSet, file *ast.File, block *ast.BlockStmt, head []stmt.Stmt, inserted []*stmt.If) ([]analysis.TextEdit, error) {
	return insertEdits(&analysis.Pass{Fset: fset}, file, block, head, inserted)
}
