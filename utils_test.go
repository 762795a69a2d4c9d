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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbatts/go-mtree"
)

func installTestTree(t *testing.T, dir string) {
	t.Helper()
	for _, path := range []string{"a/b/c", "a/d"} {
		_, err := Install(InstallRequest{
			Root:        dir,
			Path:        path,
			Mode:        0o755,
			MakeParents: true,
		}, nil)
		require.NoErrorf(t, err, "install %s", path)
	}
}

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	installTestTree(t, dir)

	var buf bytes.Buffer
	require.NoError(t, WriteManifest(&buf, dir, nil), "generate manifest")
	assert.NotZero(t, buf.Len(), "manifest should not be empty")

	manifest, err := mtree.ParseSpec(&buf)
	require.NoError(t, err, "parse generated manifest")

	diff, err := ValidateManifest(dir, manifest, manifest.UsedKeywords(), nil)
	require.NoError(t, err, "validate unchanged tree")
	assert.Empty(t, diff, "freshly installed tree should match its own manifest")
}

func TestManifestDetectsDrift(t *testing.T) {
	dir := t.TempDir()
	installTestTree(t, dir)

	var buf bytes.Buffer
	require.NoError(t, WriteManifest(&buf, dir, nil), "generate manifest")
	manifest, err := mtree.ParseSpec(&buf)
	require.NoError(t, err, "parse generated manifest")

	require.NoError(t, os.Remove(filepath.Join(dir, "a", "b", "c")), "remove a directory")

	diff, err := ValidateManifest(dir, manifest, manifest.UsedKeywords(), nil)
	require.NoError(t, err, "validate drifted tree")
	assert.NotEmpty(t, diff, "a removed directory should show up as a difference")
}

func TestFullVersion(t *testing.T) {
	// FullVersion panics if Version stops being a valid semantic version.
	assert.NotPanics(t, func() { _ = FullVersion() })
	assert.Contains(t, FullVersion(), Version)
}
