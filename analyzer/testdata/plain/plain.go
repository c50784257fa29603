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

package plain

//bounds:range percent 0 100
func Percent(percent int) int { // want "Missing bound checks for 'percent'"
	return percent
}

type Meter struct{ Base }

type Base struct{}

func (Base) Move(dx, dy float64) {}

//bounds:max dx 1e21
//bounds:min dy -0.5
func (m Meter) Move(dx, dy float64) { // want "Missing bound checks for 'dx' and 'dy'"
	m.Base.Move(dx, dy)
}
