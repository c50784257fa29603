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

package level

import (
	"fmt"
	"strings"
)

// Failure specifies the payload of a synthesized bound check.
type Failure uint8

const (
	// FailureSprintf panics with a formatted message that includes the offending value.
	FailureSprintf Failure = iota

	// FailureErrorf panics with an error that includes the offending value.
	FailureErrorf

	// FailurePlain panics with a constant message and needs no import.
	FailurePlain
)

// String returns the textual representation of the failure policy.
func (o Failure) String() string {
	b, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Failure(%d)", o)
	}

	return string(b)
}

// NeedsFmt reports whether the policy calls into package fmt.
func (o Failure) NeedsFmt() bool {
	return o != FailurePlain
}

// MarshalText implements [encoding.TextMarshaler].
func (o Failure) MarshalText() ([]byte, error) {
	switch o {
	case FailureSprintf:
		return []byte("sprintf"), nil

	case FailureErrorf:
		return []byte("errorf"), nil

	case FailurePlain:
		return []byte("plain"), nil

	default:
		return nil, fmt.Errorf("unknown failure policy %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Failure) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "sprintf":
		*o = FailureSprintf

	case "errorf":
		*o = FailureErrorf

	case "plain":
		*o = FailurePlain

	default:
		return fmt.Errorf("unknown failure policy %q", string(text))
	}

	return nil
}
