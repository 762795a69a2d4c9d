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

// Package fseval abstracts the filesystem operations the directory installer
// consumes, so that environments which intercept privileged syscalls (and
// tests which want to simulate them) can be modelled without a real sandbox.
package fseval

import (
	"os"

	"github.com/vbatts/go-mtree"
	"golang.org/x/sys/unix"
)

// FsEval is a super-interface that implements everything required for
// mtree.FsEval as well as the os.* wrapper functions needed by the directory
// installer. Implementations are not required to succeed at every operation:
// in particular Lchown may be denied by the environment regardless of the
// apparent privilege level of the process, so callers must treat a denied
// ownership change as a real failure rather than assuming root can always
// chown.
type FsEval interface {
	// We inherit all of the base methods from mtree.FsEval.
	mtree.FsEval

	// Readlink is equivalent to os.Readlink.
	Readlink(path string) (string, error)

	// Lstatx is equivalent to unix.Lstat.
	Lstatx(path string) (unix.Stat_t, error)

	// Mkdir is equivalent to os.Mkdir.
	Mkdir(path string, perm os.FileMode) error

	// Chmod is equivalent to os.Chmod.
	Chmod(path string, mode os.FileMode) error

	// Lchown is equivalent to os.Lchown.
	Lchown(path string, uid, gid int) error
}
