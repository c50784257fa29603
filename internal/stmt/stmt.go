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

// Package stmt defines the closed statement model the injection engine works on.
//
// Only the shapes the engine needs to tell apart are modeled; every other
// statement is [Other]. Each variant keeps the [ast.Stmt] it was converted from,
// or the synthesized node for generated guards.
package stmt

import (
	"go/ast"
	"go/token"
)

// Stmt is a statement of the model. The set of implementations is closed.
type Stmt interface {
	// Source returns the underlying syntax node.
	Source() ast.Stmt
	isStmt()
}

// If is an if statement without init statement and without else branch inspection.
type If struct {
	Node ast.Stmt
	Cond Expr
	Then Stmt
}

// Throw is a panic call statement.
type Throw struct {
	Node ast.Stmt
}

// Block is a bare block statement.
type Block struct {
	Node ast.Stmt
	List []Stmt
}

// Try is a pass-through wrapper: an immediately invoked function literal.
type Try struct {
	Node ast.Stmt
	Body []Stmt
}

// Synchronized is a pass-through wrapper: a block guarded by a lock on Monitor.
type Synchronized struct {
	Node    ast.Stmt
	Monitor string
	Body    []Stmt
}

// Delegation is a call of the same method on an embedded value of the receiver.
type Delegation struct {
	Node   ast.Stmt
	Callee string
}

// Other is any statement not inspected further.
type Other struct {
	Node ast.Stmt
}

func (s *If) Source() ast.Stmt           { return s.Node }
func (s *Throw) Source() ast.Stmt        { return s.Node }
func (s *Block) Source() ast.Stmt        { return s.Node }
func (s *Try) Source() ast.Stmt          { return s.Node }
func (s *Synchronized) Source() ast.Stmt { return s.Node }
func (s *Delegation) Source() ast.Stmt   { return s.Node }
func (s *Other) Source() ast.Stmt        { return s.Node }

func (*If) isStmt()           {}
func (*Throw) isStmt()        {}
func (*Block) isStmt()        {}
func (*Try) isStmt()          {}
func (*Synchronized) isStmt() {}
func (*Delegation) isStmt()   {}
func (*Other) isStmt()        {}

// Expr is an expression of the model. The set of implementations is closed.
type Expr interface {
	isExpr()
}

// Binary is a binary expression.
type Binary struct {
	Op   token.Token
	X, Y Expr
}

// Ident is a plain identifier.
type Ident struct {
	Name string
}

// Literal is a numeric literal, possibly signed.
type Literal struct {
	Value float64
	// Float is set when the literal is spelled as a floating-point literal.
	Float bool
}

// Paren is a parenthesized expression.
type Paren struct {
	X Expr
}

// Opaque is any expression not inspected further.
type Opaque struct{}

func (*Binary) isExpr()  {}
func (*Ident) isExpr()   {}
func (*Literal) isExpr() {}
func (*Paren) isExpr()   {}
func (*Opaque) isExpr()  {}

// Unparen strips any number of redundant parentheses.
func Unparen(e Expr) Expr {
	for {
		p, ok := e.(*Paren)
		if !ok {
			return e
		}

		e = p.X
	}
}

// Wrapped returns the inner statement sequence of a pass-through wrapper.
func Wrapped(s Stmt) ([]Stmt, bool) {
	switch s := s.(type) {
	case *Try:
		return s.Body, true

	case *Synchronized:
		return s.Body, true

	default:
		return nil, false
	}
}
