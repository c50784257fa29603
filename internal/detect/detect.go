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

// Package detect finds existing bound checks in a statement sequence.
package detect

import (
	"go/token"

	"fillmore-labs.com/boundguard/internal/guard"
	"fillmore-labs.com/boundguard/internal/stmt"
)

// Find reports whether body already contains a bound check on subject with operator op.
//
// The scan skips delegation calls and passes through try and synchronized wrappers:
// on reaching one, the scan continues at the head of the wrapped sequence and the
// remainder of the enclosing sequence is not examined. The bound value is ignored.
func Find(body []stmt.Stmt, subject string, op token.Token) bool {
	work := [][]stmt.Stmt{body}

	for len(work) > 0 {
		list := work[len(work)-1]
		work = work[:len(work)-1]

	scan:
		for _, s := range list {
			if _, ok := s.(*stmt.Delegation); ok {
				continue
			}

			if inner, ok := stmt.Wrapped(s); ok {
				work = append(work, inner)

				break scan
			}

			if guard.Matches(s, subject, op) {
				return true
			}
		}
	}

	return false
}
