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

	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/mktree-dev/mktree"
	"github.com/mktree-dev/mktree/internal/idtools"
	"github.com/mktree-dev/mktree/pkg/fseval"
)

var mkdirCommand = uxOwner(cli.Command{
	Name:  "mkdir",
	Usage: "create directories with the requested mode and ownership",
	ArgsUsage: `[--parents] [--mode <octal>] [--owner <user[:group]>] [--root <dir>] <dir>...

Ensures each "<dir>" exists as a directory, creating missing components.
Intermediate components get mode 0755; the final component gets --mode.
Ownership is only ever applied when --owner is given -- without it the
ownership syscall is not issued at all, which keeps mktree usable inside
sandboxes that fake superuser identity but deny chown.

Directories created before a failure are left in place, so re-running the
same invocation after fixing the problem is safe.`,

	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "parents,p",
			Usage: "create missing ancestor directories",
		},
		cli.StringFlag{
			Name:  "mode,m",
			Usage: "octal permission mode for the final component",
			Value: "0755",
		},
		cli.StringFlag{
			Name:  "root",
			Usage: "resolve all paths beneath this directory (paths can never escape it)",
		},
	},

	Action: doMkdir,

	Before: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			return errors.New("invalid number of positional arguments: expected at least one <dir>")
		}
		for _, arg := range ctx.Args() {
			if arg == "" {
				return errors.New("directory path cannot be empty")
			}
		}
		return nil
	},
})

func doMkdir(ctx *cli.Context) error {
	mode, err := parseMode(ctx.String("mode"))
	if err != nil {
		return err
	}
	owner := fetchMeta[*idtools.Owner](ctx, "--owner")

	for _, dir := range ctx.Args() {
		result, err := mktree.Install(mktree.InstallRequest{
			Root:        ctx.String("root"),
			Path:        dir,
			Mode:        mode,
			Owner:       owner,
			MakeParents: ctx.Bool("parents"),
		}, fseval.Default)
		if err != nil {
			return err
		}
		for _, warning := range result.Warnings {
			log.Warn(warning)
		}
		log.WithFields(log.Fields{
			"path":    dir,
			"created": len(result.CreatedPaths),
			"chown":   result.OwnershipApplied,
		}).Info("installed directory")
	}
	return nil
}
