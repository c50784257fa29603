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

// Package bound holds the validated payload of a bounds directive and the
// numeric type gate deciding which declarations may carry one.
package bound

import (
	"errors"
	"fmt"
	"math"
)

// Kind identifies one of the three directive kinds.
//
//go:generate go tool stringer -type Kind
type Kind uint8

const (
	// LowerBound requires a value to be at least the bound.
	LowerBound Kind = iota

	// UpperBound requires a value to be at most the bound.
	UpperBound

	// RangeBound combines a lower and an upper bound.
	RangeBound
)

// Directive returns the comment directive spelling of this kind, as used in diagnostics.
func (k Kind) Directive() string {
	switch k {
	case LowerBound:
		return "bounds:min"

	case UpperBound:
		return "bounds:max"

	case RangeBound:
		return "bounds:range"

	default:
		return "bounds:?"
	}
}

// ErrInvertedRange is returned when the lower value of a range is not strictly less than the upper value.
var ErrInvertedRange = errors.New("min value must be less than max value")

// ErrNotFinite is returned for infinite or NaN bound values.
var ErrNotFinite = errors.New("bound value must be finite")

// ArityError is returned when a range directive does not supply exactly two values.
type ArityError struct {
	Given int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("must have exactly two values for %s (given: %d)", RangeBound.Directive(), e.Given)
}

// Spec is an immutable, validated bounds payload.
//
// The zero value is a lower bound of 0.
type Spec struct {
	kind   Kind
	lo, hi float64
}

// NewLower creates a [LowerBound] spec.
func NewLower(value float64) (Spec, error) {
	if !finite(value) {
		return Spec{}, ErrNotFinite
	}

	return Spec{kind: LowerBound, lo: value}, nil
}

// NewUpper creates an [UpperBound] spec.
func NewUpper(value float64) (Spec, error) {
	if !finite(value) {
		return Spec{}, ErrNotFinite
	}

	return Spec{kind: UpperBound, hi: value}, nil
}

// NewRange creates a [RangeBound] spec from exactly two values, lo < hi.
func NewRange(values []float64) (Spec, error) {
	if len(values) != 2 {
		return Spec{}, &ArityError{Given: len(values)}
	}

	lo, hi := values[0], values[1]
	if !finite(lo) || !finite(hi) {
		return Spec{}, ErrNotFinite
	}

	if lo >= hi {
		return Spec{}, ErrInvertedRange
	}

	return Spec{kind: RangeBound, lo: lo, hi: hi}, nil
}

// New creates a spec of the given kind from the directive values.
func New(kind Kind, values []float64) (Spec, error) {
	switch kind {
	case RangeBound:
		return NewRange(values)

	case LowerBound, UpperBound:
		if len(values) != 1 {
			return Spec{}, fmt.Errorf("%s requires exactly one value (given: %d)", kind.Directive(), len(values))
		}

		if kind == LowerBound {
			return NewLower(values[0])
		}

		return NewUpper(values[0])

	default:
		return Spec{}, fmt.Errorf("unknown bound kind %d", kind)
	}
}

// Kind returns the directive kind of this spec.
func (s Spec) Kind() Kind { return s.kind }

// Lower returns the lower bound, if this spec has one.
func (s Spec) Lower() (float64, bool) {
	return s.lo, s.kind == LowerBound || s.kind == RangeBound
}

// Upper returns the upper bound, if this spec has one.
func (s Spec) Upper() (float64, bool) {
	return s.hi, s.kind == UpperBound || s.kind == RangeBound
}

func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }
