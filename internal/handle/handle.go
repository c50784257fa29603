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

// Package handle runs a single bounds directive occurrence to completion.
package handle

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"

	"fillmore-labs.com/boundguard/internal/bound"
	"fillmore-labs.com/boundguard/internal/detect"
	"fillmore-labs.com/boundguard/internal/guard"
	"fillmore-labs.com/boundguard/internal/inject"
	"fillmore-labs.com/boundguard/internal/target"
)

// Outcome classifies the result of handling an occurrence.
//
//go:generate go tool stringer -type Outcome
type Outcome uint8

const (
	// NotApplicable means the occurrence produced no code and no error.
	NotApplicable Outcome = iota

	// Rejected means the occurrence was refused with an error.
	Rejected

	// Inserted means at least one bound check was added.
	Inserted

	// AlreadyPresent means all bound checks already existed.
	AlreadyPresent
)

// Result is the outcome of one occurrence.
type Result struct {
	Outcome  Outcome
	Err      error
	Inserted []guard.Guard
}

// Occurrence is one directive attached to a target.
type Occurrence struct {
	Kind   bound.Kind
	Values []float64
	Target target.Target
	// At is the directive comment, used to position diagnostics.
	At ast.Node
}

// Sink receives diagnostics.
type Sink interface {
	Error(at ast.Node, err error)
	Warning(at ast.Node, msg string)
}

// ErrNotNumeric is returned for directives on declarations with a non-numeric type.
var ErrNotNumeric = errors.New("can only be used on numbers")

// RepresentableError is returned when a bound cannot be compared against the declared type.
type RepresentableError struct {
	Value    float64
	TypeName string
}

func (e *RepresentableError) Error() string {
	return fmt.Sprintf("`%s` is not representable as %s", guard.FormatLiteral(e.Value), e.TypeName)
}

// Handler processes occurrences of all three kinds.
type Handler struct {
	Synthesizer guard.Synthesizer
	Sink        Sink
}

// Handle runs the pipeline construct → gate → synthesize → detect → inject for one occurrence.
func (h Handler) Handle(o Occurrence) Result {
	spec, err := bound.New(o.Kind, o.Values)
	if err != nil {
		return h.reject(o, err)
	}

	typeName, ok := o.Target.TypeName()
	if !ok {
		return Result{Outcome: NotApplicable}
	}

	if !bound.Numeric(typeName) {
		return h.reject(o, fmt.Errorf("`%s` %w", o.Kind.Directive(), ErrNotNumeric))
	}

	body := o.Target.Body()
	if body == nil {
		return Result{Outcome: NotApplicable}
	}

	candidates := h.candidates(o.Target.Name(), spec)

	for _, g := range candidates {
		if !bound.Representable(typeName, g.Bound) {
			return h.reject(o, &RepresentableError{Value: g.Bound, TypeName: typeName})
		}
	}

	var survivors, skipped []guard.Guard

	for _, g := range candidates {
		if detect.Find(body.Statements(), g.Subject, g.Op) {
			skipped = append(skipped, g)
		} else {
			survivors = append(survivors, g)
		}
	}

	res := inject.Inject(body, survivors)

	h.warnPresent(o.At, append(skipped, res.Present...))

	if len(res.Inserted) == 0 {
		return Result{Outcome: AlreadyPresent}
	}

	return Result{Outcome: Inserted, Inserted: res.Inserted}
}

// candidates synthesizes the bound checks of a spec, lower before upper.
func (h Handler) candidates(subject string, spec bound.Spec) []guard.Guard {
	var guards []guard.Guard

	if lo, ok := spec.Lower(); ok {
		guards = append(guards, h.Synthesizer.Synthesize(subject, token.LSS, lo))
	}

	if hi, ok := spec.Upper(); ok {
		guards = append(guards, h.Synthesizer.Synthesize(subject, token.GTR, hi))
	}

	return guards
}

func (h Handler) reject(o Occurrence, err error) Result {
	h.Sink.Error(o.At, err)

	return Result{Outcome: Rejected, Err: err}
}

func (h Handler) warnPresent(at ast.Node, present []guard.Guard) {
	for _, lower := range [...]bool{true, false} {
		for _, g := range present {
			if g.Lower() != lower {
				continue
			}

			if lower {
				h.Sink.Warning(at, "not generating lower bound check, one is already present")
			} else {
				h.Sink.Warning(at, "not generating upper bound check, one is already present")
			}
		}
	}
}
