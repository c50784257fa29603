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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/boundguard/analyzer/level"
	"fillmore-labs.com/boundguard/internal/config"
	"fillmore-labs.com/boundguard/internal/run"
)

// Option configures specific behavior of a [New] boundguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithLowerBound is an [Option] to configure whether `//bounds:min` directives are processed.
func WithLowerBound(lower bool) Option {
	return directiveOption{name: "min", flag: config.LowerBoundDirective, enabled: lower}
}

// WithUpperBound is an [Option] to configure whether `//bounds:max` directives are processed.
func WithUpperBound(upper bool) Option {
	return directiveOption{name: "max", flag: config.UpperBoundDirective, enabled: upper}
}

// WithRange is an [Option] to configure whether `//bounds:range` directives are processed.
func WithRange(rng bool) Option {
	return directiveOption{name: "range", flag: config.RangeDirective, enabled: rng}
}

type directiveOption struct {
	name    string
	flag    config.DirectiveFlags
	enabled bool
}

func (o directiveOption) apply(r *run.Options) {
	r.Directives.Set(o.flag, o.enabled)
}

func (o directiveOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.enabled)
}

// WithFailure is an [Option] to configure the panic payload of synthesized bound checks.
func WithFailure(failure level.Failure) Option { return failureOption{failure: failure} }

type failureOption struct{ failure level.Failure }

func (o failureOption) apply(r *run.Options) {
	r.Failure = o.failure
}

func (o failureOption) LogAttr() slog.Attr {
	return slog.String("failure", o.failure.String())
}
