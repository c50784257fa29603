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

import (
	"fmt"
	"sync"
)

//bounds:min x 0 // want "not generating lower bound check, one is already present"
func Present(x int) {
	if x < 1.0 {
		panic("too small")
	}
	fmt.Println(x)
}

//bounds:max x 10 // want "not generating upper bound check, one is already present"
func PresentParen(x int) {
	if x > (10.0) {
		panic(fmt.Sprintf("x must be <= 10.0, but was %v", x))
	}
}

//bounds:min x 0 // want "not generating lower bound check, one is already present"
func PresentInClosure(x int) {
	func() {
		if x < 0.0 {
			panic(x)
		}
	}()
}

var mu sync.RWMutex

//bounds:max x 10 // want "not generating upper bound check, one is already present"
func PresentLocked(x int) {
	{
		mu.RLock()
		defer mu.RUnlock()
		if x > 10.0 {
			panic(x)
		}
	}
}

//bounds:max x 10 // want "not generating upper bound check, one is already present"
func PresentAfterClosure(x int) {
	func() {}()
	if x > 10.0 {
		panic(x)
	}
}

//bounds:range ratio 0 1 // want "not generating lower bound check, one is already present" "not generating upper bound check, one is already present"
func Fixed(ratio float64) float64 {
	if ratio < 0.0 {
		panic(fmt.Sprintf("ratio must be >= 0.0, but was %v", ratio))
	}
	if ratio > 1.0 {
		panic(fmt.Sprintf("ratio must be <= 1.0, but was %v", ratio))
	}
	return ratio / 2
}

//bounds:range x -1 1 // want "not generating lower bound check, one is already present" "not generating upper bound check, one is already present"
//bounds:min x 0 // want "not generating lower bound check, one is already present"
//bounds:max x 0 // want "not generating upper bound check, one is already present"
func FixedPrecedence(x float32) {
	if x < -1.0 {
		panic(fmt.Sprintf("x must be >= -1.0, but was %v", x))
	}
	if x > 1.0 {
		panic(fmt.Sprintf("x must be <= 1.0, but was %v", x))
	}
}
