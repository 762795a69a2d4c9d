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
	"io"

	"github.com/apex/log"
	"github.com/vbatts/go-mtree"

	"github.com/mktree-dev/mktree/pkg/fseval"
)

// ManifestKeywords is the set of mtree(8) keywords we record for installed
// trees. This is the subset of mtree.DefaultKeywords that installation can
// actually influence: content keywords (checksums, sizes) are not
// interesting for directory chains.
var ManifestKeywords = []mtree.Keyword{
	"type",
	"mode",
	"uid",
	"gid",
	"link",
}

// WriteManifest walks the tree rooted at rootPath and writes an mtree(8)
// manifest describing it, recording ManifestKeywords. A nil fsEval uses
// fseval.Default.
func WriteManifest(w io.Writer, rootPath string, fsEval fseval.FsEval) error {
	if fsEval == nil {
		fsEval = fseval.Default
	}
	log.WithFields(log.Fields{
		"root": rootPath,
	}).Debug("generating mtree manifest")

	dh, err := mtree.Walk(rootPath, nil, ManifestKeywords, fsEval)
	if err != nil {
		return fmt.Errorf("generate mtree spec: %w", err)
	}
	if _, err := dh.WriteTo(w); err != nil {
		return fmt.Errorf("write mtree spec: %w", err)
	}
	return nil
}

// ValidateManifest checks the tree rooted at rootPath against a parsed
// mtree manifest with the given keywords, returning the set of differences
// found. A nil fsEval uses fseval.Default.
func ValidateManifest(rootPath string, manifest *mtree.DirectoryHierarchy, keywords []mtree.Keyword, fsEval fseval.FsEval) ([]mtree.InodeDelta, error) {
	if fsEval == nil {
		fsEval = fseval.Default
	}
	diff, err := mtree.Check(rootPath, manifest, keywords, fsEval)
	if err != nil {
		return nil, fmt.Errorf("check mtree manifest against %s: %w", rootPath, err)
	}
	return diff, nil
}
