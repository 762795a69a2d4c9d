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

// Package mktree implements directory installation: ensuring a directory
// chain exists, creating missing components with a requested mode, and
// applying ownership only when the caller explicitly asked for it.
package mktree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/moby/sys/userns"

	"github.com/mktree-dev/mktree/internal/idtools"
	"github.com/mktree-dev/mktree/pkg/fseval"
)

// DefaultDirMode is the permission mode used for intermediate directories
// created on the way to the final component, matching install(1) and
// mkdir -p. The final component always gets InstallRequest.Mode.
const DefaultDirMode os.FileMode = 0o755

// inUserNamespace is a cached return value of userns.RunningInUserNS. We
// never spawn or join new namespaces, so this cannot change during our
// lifetime.
var inUserNamespace = userns.RunningInUserNS()

// InstallRequest describes a single directory installation. A request is
// consumed once and holds no state; re-running an identical request against
// a tree the first run already created is safe and succeeds with no
// CreatedPaths.
type InstallRequest struct {
	// Root optionally confines the installation. When set, every component
	// of Path is resolved beneath Root (symlinks cannot escape it), in the
	// style of a DESTDIR staging install. Empty means Path is used as given.
	Root string

	// Path is the directory to install. Must be non-empty.
	Path string

	// Mode is the permission mode for the final component, before umask.
	Mode os.FileMode

	// Owner is the user/group to assign to the final component. Ownership
	// is applied only when Owner is non-nil; when it is nil the ownership
	// primitive is never invoked at all.
	Owner *idtools.Owner

	// MakeParents creates missing ancestor components (mkdir -p semantics).
	// Without it, a missing parent is an error.
	MakeParents bool
}

// InstallResult describes what an Install call actually did.
type InstallResult struct {
	// CreatedPaths lists every directory actually created, in root-to-leaf
	// order and in the same coordinates as InstallRequest.Path. Empty if
	// the target already existed.
	CreatedPaths []string

	// OwnershipApplied is true if an ownership change was requested and
	// succeeded.
	OwnershipApplied bool

	// Warnings holds non-fatal notes about the installation, such as a
	// pre-existing target whose mode differs from the requested one.
	Warnings []string
}

// Install ensures the directory chain named by req exists, creating missing
// components root-to-leaf. Already-created components are not removed on
// failure (conventional mkdir -p semantics), which keeps retries idempotent.
// A nil fsEval uses fseval.Default.
//
// Possible failures: *NotADirectoryError if a component exists but is not a
// directory, *OwnershipError if a requested ownership change was denied,
// and wrapped OS errors for plain creation failures.
func Install(req InstallRequest, fsEval fseval.FsEval) (*InstallResult, error) {
	if fsEval == nil {
		fsEval = fseval.Default
	}
	if req.Path == "" {
		return nil, errors.New("install: target path is empty")
	}

	target := filepath.Clean(req.Path)
	prefixes := pathPrefixes(target)
	if len(prefixes) == 0 {
		return nil, fmt.Errorf("install: target path %q has no components", req.Path)
	}
	if !req.MakeParents {
		// Only the final component may be created; missing ancestors
		// surface as ENOENT from Mkdir.
		prefixes = prefixes[len(prefixes)-1:]
	}

	result := &InstallResult{}
	for idx, prefix := range prefixes {
		final := idx == len(prefixes)-1
		mode := DefaultDirMode
		if final {
			mode = req.Mode
		}

		onDisk, err := resolvePath(req.Root, prefix, fsEval)
		if err != nil {
			return nil, err
		}

		created, err := ensureDirectory(fsEval, onDisk, prefix, mode)
		if err != nil {
			return nil, err
		}
		if created {
			result.CreatedPaths = append(result.CreatedPaths, prefix)
		} else if final {
			if fi, err := fsEval.Lstat(onDisk); err == nil && fi.Mode().Perm() != req.Mode.Perm() {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s already exists with mode %#o (requested %#o), mode left unchanged", prefix, fi.Mode().Perm(), req.Mode.Perm()))
			}
		}
	}

	// Ownership is only ever touched when the caller asked for it.
	// Interposition sandboxes (fakeroot and friends) fake euid 0 but can
	// still deny chown for certain paths, so an unrequested chown is not a
	// harmless no-op even for an apparently privileged process -- the call
	// must not be issued at all.
	if req.Owner != nil {
		owner := *req.Owner
		onDisk, err := resolvePath(req.Root, target, fsEval)
		if err != nil {
			return nil, err
		}
		log.WithFields(log.Fields{
			"path":  target,
			"owner": owner.String(),
		}).Debug("applying requested ownership")
		if err := fsEval.Lchown(onDisk, owner.UID, owner.GID); err != nil {
			if os.Geteuid() == 0 || inUserNamespace {
				log.Warnf("ownership change denied despite apparent privilege: a syscall interposition layer may be rejecting chown for %s", target)
			}
			return nil, &OwnershipError{Path: target, UID: owner.UID, GID: owner.GID, Err: err}
		}
		result.OwnershipApplied = true
	}

	return result, nil
}

// ensureDirectory makes sure a single path component is a directory,
// creating it with the given mode if absent. displayPath is the component in
// the caller's coordinates, used for error reporting.
func ensureDirectory(fsEval fseval.FsEval, onDisk, displayPath string, mode os.FileMode) (bool, error) {
	fi, err := fsEval.Lstat(onDisk)
	if err == nil {
		if !fi.IsDir() {
			return false, &NotADirectoryError{Path: displayPath}
		}
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("lstat %s: %w", displayPath, err)
	}

	if err := fsEval.Mkdir(onDisk, mode); err != nil {
		// Losing a creation race is fine as long as the winner made a
		// directory.
		if errors.Is(err, os.ErrExist) {
			if fi, lerr := fsEval.Lstat(onDisk); lerr == nil && fi.IsDir() {
				return false, nil
			}
			return false, &NotADirectoryError{Path: displayPath}
		}
		return false, fmt.Errorf("mkdir %s: %w", displayPath, err)
	}
	return true, nil
}

// resolvePath maps a caller-facing path to the on-disk path, confining it
// beneath root if one was given.
func resolvePath(root, path string, fsEval fseval.FsEval) (string, error) {
	if root == "" {
		return path, nil
	}
	resolved, err := securejoin.SecureJoinVFS(root, path, fsEval)
	if err != nil {
		return "", fmt.Errorf("resolve %s under root %s: %w", path, root, err)
	}
	return resolved, nil
}

// pathPrefixes expands a cleaned path into its cumulative prefixes in
// root-to-leaf order ("a/b/c" yields ["a", "a/b", "a/b/c"]). The root
// directory itself is never a prefix.
func pathPrefixes(path string) []string {
	sep := string(filepath.Separator)
	var lead string
	if filepath.IsAbs(path) {
		lead = sep
		path = strings.TrimPrefix(path, sep)
	}

	var prefixes []string
	for _, part := range strings.Split(path, sep) {
		if part == "" || part == "." {
			continue
		}
		if len(prefixes) == 0 {
			prefixes = append(prefixes, lead+part)
		} else {
			prefixes = append(prefixes, filepath.Join(prefixes[len(prefixes)-1], part))
		}
	}
	return prefixes
}
