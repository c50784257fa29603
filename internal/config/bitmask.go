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

package config

// Unsigned is the set of flag types a [BitMask] can hold.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitMask is a set of flags of type T.
//
// The zero value has no flags enabled.
type BitMask[T Unsigned] struct {
	bits T
}

// NewBitMask returns a [BitMask] with the given flags enabled.
func NewBitMask[T Unsigned](flags ...T) BitMask[T] {
	var bits T
	for _, f := range flags {
		bits |= f
	}

	return BitMask[T]{bits: bits}
}

// Set enables or disables flag.
func (b *BitMask[T]) Set(flag T, enabled bool) {
	if enabled {
		b.bits |= flag
	} else {
		b.bits &^= flag
	}
}

// Enable enables flag.
func (b *BitMask[T]) Enable(flag T) { b.Set(flag, true) }

// Disable disables flag.
func (b *BitMask[T]) Disable(flag T) { b.Set(flag, false) }

// Enabled reports whether any bit of flag is enabled.
func (b BitMask[T]) Enabled(flag T) bool {
	return b.bits&flag != 0
}

// Any reports whether at least one flag is enabled.
func (b BitMask[T]) Any() bool {
	return b.bits != 0
}
