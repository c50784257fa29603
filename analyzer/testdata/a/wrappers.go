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

type Base struct{}

func (Base) Set(v int) { fmt.Println(v) }

func (Base) Reset(v int) { fmt.Println(v) }

type Derived struct {
	Base
	mu sync.Mutex
}

//bounds:min v 0
func (d *Derived) Set(v int) { // want "Missing bound checks for 'v'"
	d.Base.Set(v)
	d.mu.Lock()
	defer d.mu.Unlock()
}

//bounds:max v 10 // want "not generating upper bound check, one is already present"
func (d *Derived) Reset(v int) {
	d.Base.Reset(v)
	{
		d.mu.Lock()
		defer d.mu.Unlock()
		func() {
			if v > 10.0 {
				panic(v)
			}
		}()
	}
}

//bounds:min x 0
func Nested(x int, ok bool) { // want "Missing bound checks for 'x'"
	if ok {
		if x < 0.0 {
			panic(x)
		}
	}
}

//bounds:min x 0
func Deferred(x int) { // want "Missing bound checks for 'x'"
	defer func() {
		if x < 0.0 {
			panic(x)
		}
	}()
}
