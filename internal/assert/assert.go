// SPDX-License-Identifier: Apache-2.0
/*
 * mktree: install directory trees with modes and ownership
 * Copyright (C) 2025-2026 The mktree Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package assert provides basic assertion helpers for programmer errors.
package assert

import (
	"fmt"
)

// Assert panics with the provided value if the predicate is false.
func Assert(predicate bool, msg any) {
	if !predicate {
		panic(msg)
	}
}

// NoError panics with the error if it is non-nil. Shorthand for
// "Assert(err == nil, err)".
func NoError(err error) {
	Assert(err == nil, err)
}

// Assertf panics if the predicate is false, formatting the message with the
// same verbs as [fmt.Printf].
//
// [fmt.Printf]: https://pkg.go.dev/fmt#Printf
func Assertf(predicate bool, fmtMsg string, args ...any) {
	Assert(predicate, fmt.Sprintf(fmtMsg, args...))
}
