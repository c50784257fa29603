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

package disabled

//bounds:range x 5 1
//bounds:max x 0.5
//bounds:min x 0
func Lower(x float64) { // want "Missing bound checks for 'x'"
}

//bounds:ranges x 0 1 // want "unknown directive `bounds:ranges`"
func Misspelled(x int) {}

type Config struct {
	Port int //bounds:range 1 0
	Name string //bounds:max 1
}
