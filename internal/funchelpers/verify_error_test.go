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

package funchelpers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyError(t *testing.T) {
	t.Run("NoError", func(t *testing.T) {
		testFn := func() (Err error) {
			defer VerifyError(&Err, func() error { return nil })
			return nil
		}
		assert.NoError(t, testFn(), "no error returned")
	})

	t.Run("DeferredError", func(t *testing.T) {
		testErr := errors.New("deferred error")
		testFn := func() (Err error) {
			defer VerifyError(&Err, func() error { return testErr })
			return nil
		}
		assert.ErrorIs(t, testFn(), testErr, "deferred error should be returned")
	})

	t.Run("MainErrorWins", func(t *testing.T) {
		mainErr := errors.New("main error")
		deferErr := errors.New("deferred error")
		testFn := func() (Err error) {
			defer VerifyError(&Err, func() error { return deferErr })
			return mainErr
		}
		assert.ErrorIs(t, testFn(), mainErr, "main error should be kept over deferred errors")
	})

	t.Run("FirstDeferredErrorWins", func(t *testing.T) {
		wantErr := errors.New("wanted error")
		badErr := errors.New("unwanted error")
		var numCalled int
		testFn := func() (Err error) {
			for _, err := range []error{badErr, wantErr, nil} {
				defer VerifyError(&Err, func() error {
					numCalled++
					return err
				})
			}
			return nil
		}
		// Deferred functions run in reverse order, so the innermost non-nil
		// error is the one kept.
		assert.ErrorIs(t, testFn(), wantErr, "first-run deferred error should be kept")
		assert.Equal(t, 3, numCalled, "every deferred function should still run")
	})
}
