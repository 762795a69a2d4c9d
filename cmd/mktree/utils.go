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

package main

import (
	"fmt"
	"os"
	"strconv"
)

// parseMode parses an octal permission mode string ("755", "0755", "1777")
// into an os.FileMode, mapping the setuid, setgid and sticky bits onto their
// os.FileMode equivalents.
func parseMode(s string) (os.FileMode, error) {
	mode, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("parse mode %q: %w", s, err)
	}
	if mode&^uint64(0o7777) != 0 {
		return 0, fmt.Errorf("parse mode %q: not a valid permission mode", s)
	}

	perm := os.FileMode(mode & 0o777)
	if mode&0o4000 != 0 {
		perm |= os.ModeSetuid
	}
	if mode&0o2000 != 0 {
		perm |= os.ModeSetgid
	}
	if mode&0o1000 != 0 {
		perm |= os.ModeSticky
	}
	return perm, nil
}
