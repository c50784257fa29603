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

package stmt

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
)

// Context describes the declaration a statement sequence belongs to.
type Context struct {
	// Receiver is the receiver name of a method, empty for functions.
	Receiver string
	// Method is the name of the enclosing method.
	Method string
}

// ContextOf returns the [Context] of a function or method declaration.
func ContextOf(fn *ast.FuncDecl) Context {
	if fn.Recv == nil || len(fn.Recv.List) == 0 || len(fn.Recv.List[0].Names) == 0 {
		return Context{}
	}

	recv := fn.Recv.List[0].Names[0].Name
	if recv == "_" {
		return Context{}
	}

	return Context{Receiver: recv, Method: fn.Name.Name}
}

// Convert converts a statement list into the model.
func (c Context) Convert(list []ast.Stmt) []Stmt {
	result := make([]Stmt, 0, len(list))
	for _, s := range list {
		result = append(result, c.convert(s))
	}

	return result
}

func (c Context) convert(s ast.Stmt) Stmt {
	switch s := s.(type) {
	case *ast.IfStmt:
		if s.Init != nil {
			break
		}

		return &If{Node: s, Cond: ConvertExpr(s.Cond), Then: &Block{Node: s.Body, List: c.Convert(s.Body.List)}}

	case *ast.BlockStmt:
		if monitor, ok := lockedBy(s); ok {
			return &Synchronized{Node: s, Monitor: monitor, Body: c.Convert(s.List[1:])}
		}

		return &Block{Node: s, List: c.Convert(s.List)}

	case *ast.ExprStmt:
		call, ok := ast.Unparen(s.X).(*ast.CallExpr)
		if !ok {
			break
		}

		if isPanic(call) {
			return &Throw{Node: s}
		}

		if lit, ok := ast.Unparen(call.Fun).(*ast.FuncLit); ok && len(call.Args) == 0 {
			return &Try{Node: s, Body: c.Convert(lit.Body.List)}
		}

		if callee, ok := c.delegation(call); ok {
			return &Delegation{Node: s, Callee: callee}
		}
	}

	return &Other{Node: s}
}

// lockedBy reports whether the first statement of a block acquires a lock, returning the monitor expression.
func lockedBy(b *ast.BlockStmt) (string, bool) {
	if len(b.List) == 0 {
		return "", false
	}

	es, ok := b.List[0].(*ast.ExprStmt)
	if !ok {
		return "", false
	}

	call, ok := es.X.(*ast.CallExpr)
	if !ok || len(call.Args) != 0 {
		return "", false
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return "", false
	}

	switch sel.Sel.Name {
	case "Lock", "RLock":
		return types.ExprString(sel.X), true

	default:
		return "", false
	}
}

func isPanic(call *ast.CallExpr) bool {
	id, ok := ast.Unparen(call.Fun).(*ast.Ident)

	return ok && id.Name == "panic" && len(call.Args) == 1
}

// delegation matches recv.Embedded.Method(...) where Method is the enclosing method.
func (c Context) delegation(call *ast.CallExpr) (string, bool) {
	if c.Receiver == "" {
		return "", false
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != c.Method {
		return "", false
	}

	embedded, ok := sel.X.(*ast.SelectorExpr)
	if !ok {
		return "", false
	}

	if recv, ok := embedded.X.(*ast.Ident); !ok || recv.Name != c.Receiver {
		return "", false
	}

	return types.ExprString(sel), true
}

// ConvertExpr converts an expression into the model.
func ConvertExpr(e ast.Expr) Expr {
	switch e := e.(type) {
	case *ast.ParenExpr:
		return &Paren{X: ConvertExpr(e.X)}

	case *ast.Ident:
		return &Ident{Name: e.Name}

	case *ast.BasicLit:
		if lit, ok := literal(e, false); ok {
			return lit
		}

	case *ast.UnaryExpr:
		if e.Op != token.SUB && e.Op != token.ADD {
			break
		}

		if b, ok := e.X.(*ast.BasicLit); ok {
			if lit, ok := literal(b, e.Op == token.SUB); ok {
				return lit
			}
		}

	case *ast.BinaryExpr:
		return &Binary{Op: e.Op, X: ConvertExpr(e.X), Y: ConvertExpr(e.Y)}
	}

	return &Opaque{}
}

func literal(b *ast.BasicLit, negate bool) (*Literal, bool) {
	if b.Kind != token.INT && b.Kind != token.FLOAT {
		return nil, false
	}

	v := constant.MakeFromLiteral(b.Value, b.Kind, 0)
	if v.Kind() == constant.Unknown {
		return nil, false
	}

	f, _ := constant.Float64Val(v)
	if negate {
		f = -f
	}

	return &Literal{Value: f, Float: b.Kind == token.FLOAT}, true
}
