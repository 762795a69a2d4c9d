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

// Package funchelpers provides helpers for dealing with functions whose
// errors are easy to lose, most notably deferred Close calls.
package funchelpers

import (
	"io"

	"github.com/mktree-dev/mktree/internal/assert"
)

// VerifyError makes it ergonomic to verify deferred functions that return
// errors. It is intended to be used with named return values:
//
//	func foo() (Err error) {
//		fh, err := os.Create("foobar")
//		if err != nil {
//			return err
//		}
//		defer funchelpers.VerifyError(&Err, fh.Close)
//		return nil
//	}
//
// The deferred function's error is only kept if no error was already set.
func VerifyError(Err *error, fn func() error) {
	assert.Assert(Err != nil,
		"VerifyError must be called with non-nil Err slot") // programmer error
	if err := fn(); err != nil && *Err == nil {
		*Err = err
	}
}

// VerifyClose is shorthand for VerifyError(Err, closer.Close).
func VerifyClose(Err *error, closer io.Closer) {
	VerifyError(Err, closer.Close)
}
