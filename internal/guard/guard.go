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

// Package guard synthesizes bound checks and recognizes them in existing code.
package guard

import (
	"go/ast"
	"go/token"
	"math"
	"strconv"
	"strings"

	"fillmore-labs.com/boundguard/analyzer/level"
	"fillmore-labs.com/boundguard/internal/stmt"
)

// Guard is a synthesized bound check.
type Guard struct {
	// Subject is the checked identifier.
	Subject string
	// Op is [token.LSS] for a lower bound and [token.GTR] for an upper bound.
	Op token.Token
	// Bound is the limit value.
	Bound float64
	// Stmt is the model statement, backed by a synthesized [ast.IfStmt].
	Stmt *stmt.If
}

// Lower reports whether the guard checks a lower bound.
func (g Guard) Lower() bool { return g.Op == token.LSS }

// Synthesizer builds guard statements.
type Synthesizer struct {
	// Failure selects the panic payload.
	Failure level.Failure
	// Qualifier is the local name of package fmt, empty for a dot import.
	Qualifier string
}

// Synthesize creates the guard `if subject OP bound { panic(...) }`.
func (s Synthesizer) Synthesize(subject string, op token.Token, bound float64) Guard {
	cond := &ast.BinaryExpr{
		X:  ast.NewIdent(subject),
		Op: op,
		Y:  Literal(bound),
	}

	panicCall := &ast.CallExpr{
		Fun:  ast.NewIdent("panic"),
		Args: []ast.Expr{s.payload(subject, op, bound)},
	}

	node := &ast.IfStmt{
		Cond: cond,
		Body: &ast.BlockStmt{List: []ast.Stmt{&ast.ExprStmt{X: panicCall}}},
	}

	return Guard{
		Subject: subject,
		Op:      op,
		Bound:   bound,
		Stmt:    &stmt.If{Node: node, Cond: stmt.ConvertExpr(cond), Then: &stmt.Block{Node: node.Body, List: []stmt.Stmt{&stmt.Throw{Node: node.Body.List[0]}}}},
	}
}

// Message returns the failure message of a guard.
func Message(subject string, op token.Token, bound float64) string {
	var rel string
	if op == token.LSS {
		rel = ">="
	} else {
		rel = "<="
	}

	return subject + " must be " + rel + " " + FormatLiteral(bound)
}

func (s Synthesizer) payload(subject string, op token.Token, bound float64) ast.Expr {
	msg := Message(subject, op, bound)

	var fun string

	switch s.Failure {
	case level.FailurePlain:
		return &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(msg)}

	case level.FailureErrorf:
		fun = "Errorf"

	default:
		fun = "Sprintf"
	}

	format := msg + ", but was %v"

	return &ast.CallExpr{
		Fun:  s.qualified(fun),
		Args: []ast.Expr{&ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(format)}, ast.NewIdent(subject)},
	}
}

func (s Synthesizer) qualified(name string) ast.Expr {
	if s.Qualifier == "" {
		return ast.NewIdent(name)
	}

	return &ast.SelectorExpr{X: ast.NewIdent(s.Qualifier), Sel: ast.NewIdent(name)}
}

// Literal returns a floating-point literal expression for v.
func Literal(v float64) ast.Expr {
	if v < 0 {
		return &ast.UnaryExpr{Op: token.SUB, X: &ast.BasicLit{Kind: token.FLOAT, Value: FormatLiteral(-v)}}
	}

	return &ast.BasicLit{Kind: token.FLOAT, Value: FormatLiteral(v)}
}

// FormatLiteral formats v as a Go floating-point literal.
func FormatLiteral(v float64) string {
	if v == 0 {
		v = math.Abs(v) // no "-0.0"
	}

	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}
