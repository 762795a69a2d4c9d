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
	"github.com/blang/semver/v4"
)

// Version is the version of mktree. Must parse as a valid semantic version.
const Version = "0.1.0"

// gitCommit is the commit the binary was built from, set at build time via
// -ldflags.
var gitCommit = ""

// FullVersion returns the full version string, including build metadata
// when available.
func FullVersion() string {
	version := semver.MustParse(Version)
	if gitCommit != "" {
		version.Build = append(version.Build, gitCommit)
	}
	return version.String()
}
