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

// Package schedule orders the evaluation of directive occurrences.
package schedule

import (
	"context"
	"runtime/trace"

	"fillmore-labs.com/boundguard/internal/bound"
	"fillmore-labs.com/boundguard/internal/handle"
)

// stages is the evaluation order. Ranges run first, so that their checks
// are found as already present by single bounds on the same target.
var stages = [...]bound.Kind{bound.RangeBound, bound.LowerBound, bound.UpperBound}

// Stages returns the evaluation order of directive kinds.
func Stages() []bound.Kind {
	return stages[:]
}

// Entry is an evaluated occurrence.
type Entry struct {
	handle.Occurrence
	handle.Result
}

// Handler processes a single occurrence.
type Handler interface {
	Handle(o handle.Occurrence) handle.Result
}

// Run evaluates the occurrences of one target body stage by stage, in source order within a stage.
func Run(ctx context.Context, h Handler, occurrences []handle.Occurrence) []Entry {
	entries := make([]Entry, 0, len(occurrences))

	for _, kind := range stages {
		trace.WithRegion(ctx, kind.String(), func() {
			for _, o := range occurrences {
				if o.Kind != kind {
					continue
				}

				entries = append(entries, Entry{Occurrence: o, Result: h.Handle(o)})
			}
		})
	}

	return entries
}
