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

type Config struct {
	//bounds:range 1 65535
	Port int

	Ratio float64 //bounds:max 1

	Weight int //bounds:max 0.5

	Name string //bounds:min 0 // want "`bounds:min` can only be used on numbers"

	Level int //bounds:range 5 1 // want "min value must be less than max value"

	//bounds:mean 0 // want "unknown directive `bounds:mean`"
	Mean float64

	Low, High int8 //bounds:min x // want "`bounds:min` value `x` is not a numeric literal"
}
