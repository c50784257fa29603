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

package analyzer

import (
	"strconv"
	"strings"

	"fillmore-labs.com/boundguard/internal/config"
)

// bitValue is a boolean [flag.Value] toggling a single flag of a [config.BitMask].
type bitValue[T ~uint8 | ~uint16 | ~uint32 | ~uint64] struct {
	mask *config.BitMask[T]
	flag T
}

func newBitValue[T ~uint8 | ~uint16 | ~uint32 | ~uint64](mask *config.BitMask[T], flag T) bitValue[T] {
	return bitValue[T]{mask: mask, flag: flag}
}

// Set implements [flag.Value].
func (v bitValue[_]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	v.mask.Set(v.flag, b)

	return nil
}

// String implements [flag.Value].
func (v bitValue[_]) String() string {
	return strconv.FormatBool(v.enabled())
}

// Get implements [flag.Getter].
func (v bitValue[_]) Get() any {
	return v.enabled()
}

// IsBoolFlag marks this as a boolean [flag.Value].
func (v bitValue[_]) IsBoolFlag() bool { return true }

// enabled handles the zero value the flag package creates for usage messages.
func (v bitValue[_]) enabled() bool {
	return v.mask != nil && v.mask.Enabled(v.flag)
}

// parseBool extends [strconv.ParseBool] with "on"/"off" and "yes"/"no".
func parseBool(str string) (bool, error) {
	switch strings.ToLower(str) {
	case "on", "yes":
		return true, nil

	case "off", "no":
		return false, nil
	}

	return strconv.ParseBool(str)
}
