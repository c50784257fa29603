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

// Package directive discovers `//bounds:` comment directives and extracts their literal values.
//
// Function and interface method documentation uses
//
//	//bounds:min   <param> <value>
//	//bounds:max   <param> <value>
//	//bounds:range <param> <lo> <hi>
//
// struct fields use the same forms without parameter name. Text after a nested `//` is ignored.
package directive

import (
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"iter"
	"strings"

	"fillmore-labs.com/boundguard/internal/bound"
)

const prefix = "//bounds:"

var (
	// ErrUnknownDirective is returned for a `//bounds:` directive with an unknown name.
	ErrUnknownDirective = errors.New("unknown directive")

	// ErrMissingSubject is returned when a function directive does not name a parameter.
	ErrMissingSubject = errors.New("requires a parameter name")

	// ErrNotLiteral is returned for values that are not numeric literals.
	ErrNotLiteral = errors.New("is not a numeric literal")
)

// Directive is a parsed bounds directive.
type Directive struct {
	Kind bound.Kind
	// Subject is the parameter name, empty for field directives.
	Subject string
	Values  []float64
	Comment *ast.Comment
}

var kinds = map[string]bound.Kind{
	"min":   bound.LowerBound,
	"max":   bound.UpperBound,
	"range": bound.RangeBound,
}

// IsDirective reports whether the comment is a bounds directive.
func IsDirective(c *ast.Comment) bool {
	return strings.HasPrefix(c.Text, prefix)
}

// All yields the bounds directives of a comment group.
//
// Malformed directives are yielded with a non-nil error. Their Kind is valid
// unless the error is [ErrUnknownDirective].
func All(group *ast.CommentGroup, withSubject bool) iter.Seq2[Directive, error] {
	return func(yield func(Directive, error) bool) {
		if group == nil {
			return
		}

		for _, c := range group.List {
			if !IsDirective(c) {
				continue
			}

			if !yield(Parse(c, withSubject)) {
				return
			}
		}
	}
}

// Parse parses a bounds directive comment.
func Parse(c *ast.Comment, withSubject bool) (Directive, error) {
	d := Directive{Comment: c}

	text := strings.TrimPrefix(c.Text, prefix)
	if i := strings.Index(text, "//"); i >= 0 {
		text = text[:i]
	}

	fields := strings.Fields(text)
	if len(fields) == 0 || strings.HasPrefix(text, " ") {
		return d, fmt.Errorf("%w %q", ErrUnknownDirective, strings.TrimSpace(c.Text))
	}

	kind, ok := kinds[fields[0]]
	if !ok {
		return d, fmt.Errorf("%w `bounds:%s`", ErrUnknownDirective, fields[0])
	}

	d.Kind, fields = kind, fields[1:]

	if withSubject {
		if len(fields) == 0 || !token.IsIdentifier(fields[0]) {
			return d, fmt.Errorf("`%s` %w", kind.Directive(), ErrMissingSubject)
		}

		d.Subject, fields = fields[0], fields[1:]
	}

	d.Values = make([]float64, 0, len(fields))

	for _, field := range fields {
		v, err := Value(field)
		if err != nil {
			return d, fmt.Errorf("`%s` value %w", kind.Directive(), err)
		}

		d.Values = append(d.Values, v)
	}

	return d, nil
}

// Value extracts the value of a numeric literal with optional sign.
func Value(src string) (float64, error) {
	expr, err := parser.ParseExpr(src)
	if err != nil {
		return 0, fmt.Errorf("`%s` %w", src, ErrNotLiteral)
	}

	v := constantOf(expr)
	if v.Kind() != constant.Int && v.Kind() != constant.Float {
		return 0, fmt.Errorf("`%s` %w", src, ErrNotLiteral)
	}

	f, _ := constant.Float64Val(v)

	return f, nil
}

func constantOf(expr ast.Expr) constant.Value {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind != token.INT && e.Kind != token.FLOAT {
			break
		}

		return constant.MakeFromLiteral(e.Value, e.Kind, 0)

	case *ast.UnaryExpr:
		if e.Op != token.SUB && e.Op != token.ADD {
			break
		}

		if lit, ok := e.X.(*ast.BasicLit); ok {
			x := constantOf(lit)
			if x.Kind() == constant.Unknown {
				break
			}

			return constant.UnaryOp(e.Op, x, 0)
		}
	}

	return constant.MakeUnknown()
}
