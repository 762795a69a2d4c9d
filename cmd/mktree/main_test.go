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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMkdirCommand(t *testing.T) {
	dir := t.TempDir()

	err := Main([]string{"mktree", "mkdir", "--root", dir, "--parents", "a/b/c"})
	require.NoError(t, err, "mktree mkdir --parents")
	assert.DirExists(t, filepath.Join(dir, "a", "b", "c"))
}

func TestMkdirCommandMultipleTargets(t *testing.T) {
	dir := t.TempDir()

	err := Main([]string{"mktree", "mkdir", "--root", dir, "-p", "one/two", "three"})
	require.NoError(t, err, "mktree mkdir with several targets")
	assert.DirExists(t, filepath.Join(dir, "one", "two"))
	assert.DirExists(t, filepath.Join(dir, "three"))
}

func TestMkdirCommandMissingParent(t *testing.T) {
	dir := t.TempDir()

	err := Main([]string{"mktree", "mkdir", "--root", dir, "x/y"})
	require.Error(t, err, "mkdir without --parents should fail on missing ancestors")
	assert.NoDirExists(t, filepath.Join(dir, "x"))
}

func TestMkdirCommandMode(t *testing.T) {
	dir := t.TempDir()

	err := Main([]string{"mktree", "mkdir", "--root", dir, "--mode", "700", "private"})
	require.NoError(t, err)

	fi, err := os.Lstat(filepath.Join(dir, "private"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), fi.Mode().Perm())
}

func TestMkdirCommandNoArgs(t *testing.T) {
	err := Main([]string{"mktree", "mkdir"})
	assert.Error(t, err, "mkdir with no targets should fail")
}

func TestManifestValidateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(t.TempDir(), "tree.mtree")

	require.NoError(t, Main([]string{"mktree", "mkdir", "--root", dir, "-p", "a/b"}))
	require.NoError(t, Main([]string{"mktree", "manifest", "--path", dir, "--output", manifestPath}),
		"generate manifest")
	require.NoError(t, Main([]string{"mktree", "validate", "--manifest", manifestPath, "--path", dir}),
		"validate unchanged tree")

	// Drift: removing an installed directory must fail validation.
	require.NoError(t, os.Remove(filepath.Join(dir, "a", "b")))
	err := Main([]string{"mktree", "validate", "--manifest", manifestPath, "--path", dir})
	require.Error(t, err, "validation of a drifted tree should fail")
	assert.Contains(t, err.Error(), "validation failed")
}

func TestMainVersion(t *testing.T) {
	// --version writes to stdout and exits the action early.
	assert.NoError(t, Main([]string{"mktree", "--version"}))
}

func ExampleMain() {
	dir, err := os.MkdirTemp("", "mktree-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir) //nolint:errcheck

	if err := Main([]string{"mktree", "mkdir", "--root", dir, "-p", "srv/data"}); err != nil {
		panic(err)
	}
	if _, err := os.Lstat(filepath.Join(dir, "srv", "data")); err == nil {
		fmt.Println("installed")
	}
	// Output: installed
}
