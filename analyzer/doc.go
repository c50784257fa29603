// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the boundguard static analysis pass.
//
// # Overview
//
// BoundGuard inserts runtime bound checks into function bodies, driven by
// `//bounds:` directives in the function documentation.
//
// # Example
//
// Before:
//
//	//bounds:range ratio 0 1
//	func scale(ratio float64) float64 {
//	    return ratio * 100
//	}
//
// After applying boundguard's suggested fix:
//
//	//bounds:range ratio 0 1
//	func scale(ratio float64) float64 {
//	    if ratio < 0.0 {
//	        panic(fmt.Sprintf("ratio must be >= 0.0, but was %v", ratio))
//	    }
//	    if ratio > 1.0 {
//	        panic(fmt.Sprintf("ratio must be <= 1.0, but was %v", ratio))
//	    }
//	    return ratio * 100
//	}
//
// # Directives
//
//   - `//bounds:min <param> <value>` requires the parameter to be at least value.
//   - `//bounds:max <param> <value>` requires the parameter to be at most value.
//   - `//bounds:range <param> <lo> <hi>` combines both, lo must be less than hi.
//
// A range takes precedence over single bounds on the same parameter. Existing
// checks are detected, so applying the fix twice is harmless. Checks are placed
// after leading calls of the same method on an embedded field.
//
// Struct fields and interface methods accept the same directives (without
// parameter name for fields). They are validated, but produce no code.
package analyzer
