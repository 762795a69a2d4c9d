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

package mktree

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// ChownFailedMessage is the stable prefix used when rendering an
// OwnershipError. Automated harnesses grep diagnostics for this exact
// phrase, so changing it is a breaking change to the CLI contract. It is
// never emitted unless an ownership change was explicitly requested.
const ChownFailedMessage = "failed to chown"

// NotADirectoryError is returned when a component of the requested path
// exists but is not a directory. Components created before the offending one
// are not removed.
type NotADirectoryError struct {
	// Path is the offending component, in the caller's coordinates.
	Path string
}

// Error returns a human-readable version of the error.
func (err *NotADirectoryError) Error() string {
	return fmt.Sprintf("path component %q exists but is not a directory", err.Path)
}

// Unwrap returns unix.ENOTDIR, so callers can detect this case with
// errors.Is without caring about the concrete type.
func (err *NotADirectoryError) Unwrap() error {
	return unix.ENOTDIR
}

// OwnershipError is returned when an explicitly requested ownership change
// failed. The directories created on the way to the target are left in
// place.
type OwnershipError struct {
	// Path is the target the ownership change was attempted on.
	Path string

	// UID and GID are the requested owner.
	UID, GID int

	// Err is the underlying error from the ownership syscall.
	Err error
}

// Error returns a human-readable version of the error, always prefixed with
// ChownFailedMessage.
func (err *OwnershipError) Error() string {
	return fmt.Sprintf("%s %s to %d:%d: %v", ChownFailedMessage, err.Path, err.UID, err.GID, err.Err)
}

// Unwrap returns the underlying syscall error.
func (err *OwnershipError) Unwrap() error {
	return err.Err
}
