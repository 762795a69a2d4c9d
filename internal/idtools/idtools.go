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

// Package idtools provides helpers for resolving textual owner
// specifications into numeric user and group IDs.
package idtools

import (
	"errors"
	"fmt"

	"github.com/moby/sys/user"
)

// Owner is a resolved user/group pair.
type Owner struct {
	UID int
	GID int
}

// String returns the owner in "uid:gid" form.
func (o Owner) String() string {
	return fmt.Sprintf("%d:%d", o.UID, o.GID)
}

// ParseOwner resolves an owner specification of the form "user[:group]"
// against the host user and group databases. Either half may be a name or a
// numeric ID; numeric IDs do not need to exist in the databases. If no group
// is given, the user's primary group is used.
func ParseOwner(spec string) (Owner, error) {
	return ParseOwnerPath(spec, "/etc/passwd", "/etc/group")
}

// ParseOwnerPath is ParseOwner with explicit passwd and group database
// paths, which is mainly useful for tests.
func ParseOwnerPath(spec, passwdPath, groupPath string) (Owner, error) {
	if spec == "" {
		return Owner{}, errors.New("owner specification is empty")
	}
	execUser, err := user.GetExecUserPath(spec, nil, passwdPath, groupPath)
	if err != nil {
		return Owner{}, fmt.Errorf("resolve owner %q: %w", spec, err)
	}
	return Owner{UID: execUser.Uid, GID: execUser.Gid}, nil
}
