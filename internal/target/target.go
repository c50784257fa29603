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

// Package target describes the declarations a bounds directive can be attached to.
package target

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/boundguard/internal/inject"
)

// Kind distinguishes struct fields from function parameters.
type Kind uint8

const (
	// FieldKind is a struct field.
	FieldKind Kind = iota

	// ParameterKind is a function or method parameter.
	ParameterKind
)

// Target is an annotated declaration.
type Target struct {
	kind Kind
	name string
	typ  ast.Expr
	body *inject.Body
}

// Field creates a struct field target.
func Field(name string, typ ast.Expr) Target {
	return Target{kind: FieldKind, name: name, typ: typ}
}

// Parameter creates a parameter target.
// body is nil for declarations without body, like interface methods.
func Parameter(name string, typ ast.Expr, body *inject.Body) Target {
	return Target{kind: ParameterKind, name: name, typ: typ, body: body}
}

// Kind returns whether this is a field or a parameter.
func (t Target) Kind() Kind { return t.kind }

// Name returns the declared name.
func (t Target) Name() string { return t.name }

// Body returns the body the target's checks belong to, nil for fields and bodiless declarations.
func (t Target) Body() *inject.Body { return t.body }

// TypeName returns the declared type spelling.
// It reports false when the type expression is missing or malformed.
func (t Target) TypeName() (string, bool) {
	switch typ := t.typ.(type) {
	case nil, *ast.BadExpr:
		return "", false

	case *ast.Ellipsis:
		// variadic parameters are slices
		return "..." + types.ExprString(typ.Elt), typ.Elt != nil

	default:
		return types.ExprString(typ), true
	}
}
