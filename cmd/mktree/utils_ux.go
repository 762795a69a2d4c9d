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

	"github.com/urfave/cli"

	"github.com/mktree-dev/mktree/internal/assert"
	"github.com/mktree-dev/mktree/internal/idtools"
)

// fetchMeta fetches a typed value from the app metadata, returning the zero
// value if the key was never stored.
func fetchMeta[T any](ctx *cli.Context, key string) T {
	var zero T
	val, ok := ctx.App.Metadata[key]
	if !ok {
		return zero
	}
	cast, ok := val.(T)
	assert.Assertf(ok, "metadata key %q has wrong type %T", key, val) // programmer error
	return cast
}

// uxOwner adds an --owner flag to the given cli.Command as well as adding
// relevant resolution logic to the .Before of the command. The resolved
// owner is stored in ctx.App.Metadata["--owner"] as *idtools.Owner (left
// unset when --owner was not given, so that no ownership change is ever
// requested by accident).
func uxOwner(cmd cli.Command) cli.Command {
	cmd.Flags = append(cmd.Flags, cli.StringFlag{
		Name:  "owner,o",
		Usage: "apply this user[:group] to the installed directory",
	})

	oldBefore := cmd.Before
	cmd.Before = func(ctx *cli.Context) error {
		if ctx.IsSet("owner") {
			owner, err := idtools.ParseOwner(ctx.String("owner"))
			if err != nil {
				return fmt.Errorf("invalid --owner: %w", err)
			}
			ctx.App.Metadata["--owner"] = &owner
		}

		// Include any old befores set.
		if oldBefore != nil {
			return oldBefore(ctx)
		}
		return nil
	}

	return cmd
}
