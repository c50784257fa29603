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

//bounds:min s 0 // want "`bounds:min` can only be used on numbers"
func NotNumeric(s string) {}

//bounds:max p 1 // want "`bounds:max` can only be used on numbers"
func Pointer(p *int) {}

//bounds:min xs 0 // want "`bounds:min` can only be used on numbers"
func Variadic(xs ...int) {}

//bounds:range x 1 // want "must have exactly two values for bounds:range \\(given: 1\\)"
func Arity(x int) {}

//bounds:min x 1 2 // want "bounds:min requires exactly one value \\(given: 2\\)"
func TooMany(x int) {}

//bounds:range x 10 0 // want "min value must be less than max value"
func Inverted(x int) {}

//bounds:range x 1 1 // want "min value must be less than max value"
func EmptyRange(x float64) {}

//bounds:min y 0 // want "`bounds:min` names unknown parameter `y`"
func Unknown(x int) {}

//bounds:min 0 // want "`bounds:min` requires a parameter name"
func NoSubject(x int) {}

//bounds:minimum x 0 // want "unknown directive `bounds:minimum`"
func Misspelled(x int) {}

//bounds:max x abc // want "`bounds:max` value `abc` is not a numeric literal"
func NotLiteral(x int) {}

//bounds:max x 1e400 // want "bound value must be finite"
func Infinite(x float64) {}

//bounds:max x 0.5 // want "`0.5` is not representable as int"
func Fraction(x int) {}

//bounds:min x -1 // want "`-1.0` is not representable as uint"
func Negative(x uint) {}

//bounds:max x 300 // want "`300.0` is not representable as byte"
func Overflow(x byte) {}
