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

package bound

import "math"

// numericType describes the value range of a numeric type spelling.
//
// For integer types limit is exclusive, so it stays exact as a float64.
type numericType struct {
	integer    bool
	min, limit float64
}

// numericTypes is the closed set of accepted type spellings.
var numericTypes = map[string]numericType{
	"byte":    {integer: true, min: 0, limit: 1 << 8},
	"rune":    {integer: true, min: math.MinInt32, limit: 1 << 31},
	"int":     {integer: true, min: math.MinInt64, limit: 1 << 63},
	"int8":    {integer: true, min: math.MinInt8, limit: 1 << 7},
	"int16":   {integer: true, min: math.MinInt16, limit: 1 << 15},
	"int32":   {integer: true, min: math.MinInt32, limit: 1 << 31},
	"int64":   {integer: true, min: math.MinInt64, limit: 1 << 63},
	"uint":    {integer: true, min: 0, limit: 1 << 64},
	"uint8":   {integer: true, min: 0, limit: 1 << 8},
	"uint16":  {integer: true, min: 0, limit: 1 << 16},
	"uint32":  {integer: true, min: 0, limit: 1 << 32},
	"uint64":  {integer: true, min: 0, limit: 1 << 64},
	"uintptr": {integer: true, min: 0, limit: 1 << 64},
	"float32": {min: -math.MaxFloat32, limit: math.MaxFloat32},
	"float64": {min: -math.MaxFloat64, limit: math.MaxFloat64},
}

// Numeric reports whether typeName is one of the accepted numeric spellings.
//
// The check is purely syntactic: named types with a numeric underlying type are rejected.
func Numeric(typeName string) bool {
	_, ok := numericTypes[typeName]

	return ok
}

// Representable reports whether v can be compared against a value of the numeric type
// without a constant conversion error, i.e. is integral for integer types and within range.
func Representable(typeName string, v float64) bool {
	t, ok := numericTypes[typeName]
	if !ok {
		return false
	}

	if !t.integer {
		return t.min <= v && v <= t.limit
	}

	return v == math.Trunc(v) && t.min <= v && v < t.limit
}
