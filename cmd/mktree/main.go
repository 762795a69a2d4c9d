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

// Package main is the cli implementation of mktree.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/apex/log"
	logcli "github.com/apex/log/handlers/cli"
	"github.com/urfave/cli"

	"github.com/mktree-dev/mktree"
)

const usage = `mktree installs directory trees`

// Main is the underlying main() implementation. You can call this directly
// as though it were the command-line arguments of the mktree binary (this is
// needed for the integration hacks in main_test.go).
func Main(args []string) error {
	app := cli.NewApp()
	app.Name = "mktree"
	app.Usage = usage
	app.Version = mktree.FullVersion()

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "alias for --log=info",
		},
		cli.StringFlag{
			Name:  "log",
			Usage: "set the log level (debug, info, [warn], error, fatal)",
			Value: "warn",
		},
		cli.StringFlag{
			Name:   "cpu-profile",
			Usage:  "profile mktree during execution and output it to a file",
			Hidden: true,
		},
	}

	app.Before = func(ctx *cli.Context) error {
		log.SetHandler(logcli.New(os.Stderr))

		if ctx.GlobalBool("verbose") {
			if ctx.GlobalIsSet("log") {
				return errors.New("--log=* and --verbose are mutually exclusive")
			}
			if err := ctx.GlobalSet("log", "info"); err != nil {
				// Should _never_ be reached.
				return fmt.Errorf("[internal error] failure auto-setting --log=info: %w", err)
			}
		}
		level, err := log.ParseLevel(ctx.GlobalString("log"))
		if err != nil {
			return fmt.Errorf("parsing log level: %w", err)
		}
		log.SetLevel(level)

		if path := ctx.GlobalString("cpu-profile"); path != "" {
			fh, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("opening cpu-profile path: %w", err)
			}
			if err := pprof.StartCPUProfile(fh); err != nil {
				return fmt.Errorf("start cpu-profile: %w", err)
			}
		}
		return nil
	}

	app.After = func(*cli.Context) error {
		pprof.StopCPUProfile()
		return nil
	}

	app.Commands = []cli.Command{
		mkdirCommand,
		manifestCommand,
		validateCommand,
	}

	app.Metadata = map[string]any{}

	err := app.Run(args)
	if err != nil {
		// Distinguish filesystem permission errors from denied ownership
		// changes: the former come from the filesystem itself, while chown
		// denial can happen even when the process looks privileged (user
		// namespaces, syscall interposition layers like fakeroot).
		if errors.Is(err, os.ErrPermission) {
			log.Warn("mktree encountered a permission error from the filesystem itself")
		}
		log.Debugf("%+v", err)
	}
	return err
}

func main() {
	if err := Main(os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}
