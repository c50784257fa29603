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

package a

// Scale doubles a non-negative value.
//
//bounds:min x 0
func Scale(x float64) float64 { // want "Missing bound checks for 'x'"
	return x * 2
}

//bounds:range ratio 0 1
func Mix(ratio float64) float64 { // want "Missing bound checks for 'ratio'"
	return ratio / 2
}

//bounds:max n 100
//bounds:min m -2.5
func Two(n int, m float32) int { // want "Missing bound checks for 'n' and 'm'"
	_ = m
	return n
}

//bounds:max x 10
func Empty(x int) {} // want "Missing bound checks for 'x'"

//bounds:min a 1
//bounds:min b 2
func Pair(a, b uint8) uint8 { return a + b } // want "Missing bound checks for 'b' and 'a'"

//bounds:range x 0 10
//bounds:max x 5 // want "not generating upper bound check, one is already present"
func Clamp(x int) int { // want "Missing bound checks for 'x'"
	return x
}

//bounds:range x 0 10 // want "not generating upper bound check, one is already present"
func Partial(x int) { // want "Missing bound checks for 'x'"
	if x > 20.0 {
		panic(x)
	}
}

//bounds:max x 10
func IntLiteral(x int) { // want "Missing bound checks for 'x'"
	if x > 10 {
		panic(x)
	}
}
