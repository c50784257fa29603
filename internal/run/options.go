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

package run

import (
	"log/slog"

	"fillmore-labs.com/boundguard/analyzer/level"
	"fillmore-labs.com/boundguard/internal/config"
)

// Options represent configuration options for the boundguard analyzer.
type Options struct {
	// Directives represents the enabled directive kinds.
	Directives config.BitMask[config.DirectiveFlags]

	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Config]

	// Failure selects the panic payload of synthesized bound checks.
	Failure level.Failure
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Directives: config.NewBitMask(config.AllDirectives),
		Failure:    level.FailureSprintf,
	}
}

// LogValue implements [slog.LogValuer].
func (r *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("min", r.Directives.Enabled(config.LowerBoundDirective)),
		slog.Bool("max", r.Directives.Enabled(config.UpperBoundDirective)),
		slog.Bool("range", r.Directives.Enabled(config.RangeDirective)),
		slog.Bool("generated", r.Behavior.Enabled(config.IncludeGenerated)),
		slog.String("failure", r.Failure.String()),
	)
}
