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
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/mktree-dev/mktree"
	"github.com/mktree-dev/mktree/internal/funchelpers"
	"github.com/mktree-dev/mktree/pkg/fseval"
)

var manifestCommand = cli.Command{
	Name:  "manifest",
	Usage: "generate an mtree(8) manifest for an installed tree",
	ArgsUsage: `--path <directory> [--output <file>]

Walks "<directory>" and emits an mtree(8) manifest recording the type, mode
and ownership of every entry. The manifest can later be fed to
"mktree validate" to assert that an installed tree has not drifted.`,

	Flags: []cli.Flag{
		cli.StringFlag{
			Name:     "path,p",
			Required: true,
			Usage:    "root of the tree to describe",
		},
		cli.StringFlag{
			Name:  "output,o",
			Usage: "write the manifest to a file instead of stdout",
		},
	},

	Action: doManifest,

	Before: func(ctx *cli.Context) error {
		if ctx.String("path") == "" {
			return errors.New("--path must be a valid path")
		}
		return nil
	},
}

func doManifest(ctx *cli.Context) (Err error) {
	rootPath := ctx.String("path")

	out := os.Stdout
	if file := ctx.String("output"); file != "" {
		fh, err := os.Create(file)
		if err != nil {
			return fmt.Errorf("create manifest output: %w", err)
		}
		defer funchelpers.VerifyClose(&Err, fh)
		out = fh
	}

	return mktree.WriteManifest(out, rootPath, fseval.Default)
}
