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

package gclplugin

import (
	boundguard "fillmore-labs.com/boundguard/analyzer"
	"fillmore-labs.com/boundguard/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Min enables `//bounds:min` directives.
	Min *bool `json:"min,omitzero"`
	// Max enables `//bounds:max` directives.
	Max *bool `json:"max,omitzero"`
	// Range enables `//bounds:range` directives.
	Range *bool `json:"range,omitzero"`
	// Failure selects the panic payload: sprintf, errorf or plain.
	Failure *string `json:"failure,omitzero"`
}

// Options converts [Settings] into a list of [boundguard.Option] for the boundguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() ([]boundguard.Option, error) {
	var opts []boundguard.Option

	opts = appendOption(opts, s.Min, boundguard.WithLowerBound)
	opts = appendOption(opts, s.Max, boundguard.WithUpperBound)
	opts = appendOption(opts, s.Range, boundguard.WithRange)

	if s.Failure != nil {
		var failure level.Failure
		if err := failure.UnmarshalText([]byte(*s.Failure)); err != nil {
			return nil, err
		}

		opts = append(opts, boundguard.WithFailure(failure))
	}

	return opts, nil
}

// appendOption appends a non-nil setting to a [boundguard.Option] list.
func appendOption[T any](opts []boundguard.Option, value *T, constructor func(T) boundguard.Option) []boundguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
