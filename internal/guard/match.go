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

package guard

import (
	"go/token"

	"fillmore-labs.com/boundguard/internal/stmt"
)

// Clause is the derived view of an existing bound check.
type Clause struct {
	Subject string
	Op      token.Token
	Bound   float64
}

// Match recognizes `if ident OP floatLiteral { panic(...) ... }` with OP `<` or `>`.
//
// Redundant parentheses around the condition and its operands are accepted.
// The panic must be the first statement of the then-branch.
func Match(s stmt.Stmt) (Clause, bool) {
	ifStmt, ok := s.(*stmt.If)
	if !ok || !throws(ifStmt.Then) {
		return Clause{}, false
	}

	cond, ok := stmt.Unparen(ifStmt.Cond).(*stmt.Binary)
	if !ok || (cond.Op != token.LSS && cond.Op != token.GTR) {
		return Clause{}, false
	}

	subject, ok := stmt.Unparen(cond.X).(*stmt.Ident)
	if !ok {
		return Clause{}, false
	}

	bound, ok := stmt.Unparen(cond.Y).(*stmt.Literal)
	if !ok || !bound.Float {
		return Clause{}, false
	}

	return Clause{Subject: subject.Name, Op: cond.Op, Bound: bound.Value}, true
}

// Matches reports whether s is a bound check on subject with the given operator.
// The bound value is not compared.
func Matches(s stmt.Stmt, subject string, op token.Token) bool {
	c, ok := Match(s)

	return ok && c.Subject == subject && c.Op == op
}

func throws(then stmt.Stmt) bool {
	switch then := then.(type) {
	case *stmt.Throw:
		return true

	case *stmt.Block:
		if len(then.List) == 0 {
			return false
		}

		_, ok := then.List[0].(*stmt.Throw)

		return ok

	default:
		return false
	}
}
