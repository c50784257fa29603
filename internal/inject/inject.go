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

// Package inject places synthesized bound checks into a function body.
package inject

import (
	"slices"

	"fillmore-labs.com/boundguard/internal/guard"
	"fillmore-labs.com/boundguard/internal/stmt"
)

// Body is the replaceable top-level statement sequence of one function.
//
// A Body is not safe for concurrent use.
type Body struct {
	list     []stmt.Stmt
	inserted map[*stmt.If]struct{}
	changed  bool
}

// NewBody creates a [Body] for the given top-level statements.
func NewBody(list []stmt.Stmt) *Body {
	return &Body{list: list}
}

// Statements returns the current top-level statements.
func (b *Body) Statements() []stmt.Stmt { return b.list }

// Changed reports whether any bound check has been inserted.
func (b *Body) Changed() bool { return b.changed }

// Inserted returns the inserted bound checks in statement order.
func (b *Body) Inserted() []*stmt.If {
	var inserted []*stmt.If

	for _, s := range b.list {
		if s, ok := s.(*stmt.If); ok {
			if _, ok := b.inserted[s]; ok {
				inserted = append(inserted, s)
			}
		}
	}

	return inserted
}

// Head returns the original statements preceding all inserted bound checks.
func (b *Body) Head() []stmt.Stmt {
	head, _ := Partition(b.list)

	return head
}

// Partition splits a top-level sequence into the leading run of delegation calls and the rest.
func Partition(list []stmt.Stmt) (head, tail []stmt.Stmt) {
	i := 0
	for i < len(list) {
		if _, ok := list[i].(*stmt.Delegation); !ok {
			break
		}

		i++
	}

	return list[:i], list[i:]
}

// Result describes the effect of an [Inject] call.
type Result struct {
	// Inserted are the bound checks added to the body, lower before upper.
	Inserted []guard.Guard
	// Present are the bound checks skipped because a top-level statement already matches.
	Present []guard.Guard
}

// Inject inserts the guards at the front of the tail, after the leading delegation calls.
//
// Every top-level statement is tested against the guards; a match makes the guard present
// and it is skipped. When no guard survives, the body stays unchanged.
func Inject(b *Body, guards []guard.Guard) Result {
	present := make([]bool, len(guards))

	for _, s := range b.list {
		for i, g := range guards {
			if guard.Matches(s, g.Subject, g.Op) {
				present[i] = true
			}
		}
	}

	var result Result

	for i, g := range guards {
		if present[i] {
			result.Present = append(result.Present, g)
		} else {
			result.Inserted = append(result.Inserted, g)
		}
	}

	if len(result.Inserted) == 0 {
		return result
	}

	slices.SortStableFunc(result.Inserted, lowerFirst)

	head, tail := Partition(b.list)

	list := make([]stmt.Stmt, 0, len(b.list)+len(result.Inserted))
	list = append(list, head...)

	if b.inserted == nil {
		b.inserted = make(map[*stmt.If]struct{})
	}

	for _, g := range result.Inserted {
		list = append(list, g.Stmt)
		b.inserted[g.Stmt] = struct{}{}
	}

	list = append(list, tail...)

	b.list = list
	b.changed = true

	return result
}

func lowerFirst(a, b guard.Guard) int {
	switch {
	case a.Lower() == b.Lower():
		return 0

	case a.Lower():
		return -1

	default:
		return 1
	}
}
