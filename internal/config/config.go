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

package config

import "fillmore-labs.com/boundguard/internal/bound"

// DirectiveFlags represents the enabled directive kinds.
type DirectiveFlags uint8

const (
	// LowerBoundDirective enables `//bounds:min`.
	LowerBoundDirective DirectiveFlags = 1 << iota

	// UpperBoundDirective enables `//bounds:max`.
	UpperBoundDirective

	// RangeDirective enables `//bounds:range`.
	RangeDirective

	// AllDirectives enables all directive kinds.
	AllDirectives = LowerBoundDirective | UpperBoundDirective | RangeDirective
)

// ForKind returns the flag enabling a directive kind.
func ForKind(kind bound.Kind) DirectiveFlags {
	switch kind {
	case bound.LowerBound:
		return LowerBoundDirective

	case bound.UpperBound:
		return UpperBoundDirective

	case bound.RangeBound:
		return RangeDirective

	default:
		return 0
	}
}

// Config represents configuration options for the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to fix generated files.
	IncludeGenerated Config = 1 << iota
)
