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
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli"
	"github.com/vbatts/go-mtree"

	"github.com/mktree-dev/mktree"
	"github.com/mktree-dev/mktree/internal/funchelpers"
	"github.com/mktree-dev/mktree/pkg/fseval"
)

func parseKeywordArg(arg string) []mtree.Keyword {
	names := strings.FieldsFunc(arg, func(ch rune) bool { return ch == ',' || ch == ' ' })
	keywords := make([]mtree.Keyword, 0, len(names))
	for _, name := range names {
		keywords = append(keywords, mtree.KeywordSynonym(name))
	}
	return keywords
}

var validateCommand = cli.Command{
	Name:  "validate",
	Usage: "validate a directory against an mtree(8) manifest",
	ArgsUsage: `--manifest <manifest.mtree> --path <directory>

Validates "<directory>" against the mtree(8) manifest in "<manifest.mtree>",
printing any differences found. A non-empty diff is a failure.`,

	Flags: []cli.Flag{
		cli.StringFlag{
			Name:     "manifest,f",
			Required: true,
			Usage:    "mtree manifest to validate against",
		},
		cli.StringFlag{
			Name:     "path,p",
			Required: true,
			Usage:    "root path the mtree manifest is relative to",
		},
		cli.StringFlag{
			Name:  "use-keywords,k",
			Usage: "use only the specified keywords for validation (delimited by comma or space)",
		},
	},

	Action: doValidate,

	Before: func(ctx *cli.Context) error {
		if ctx.String("manifest") == "" {
			return errors.New("--manifest must be a valid path")
		}
		if ctx.String("path") == "" {
			return errors.New("--path must be a valid path")
		}
		return nil
	},
}

func doValidate(ctx *cli.Context) (Err error) {
	manifestPath := ctx.String("manifest")
	rootPath := ctx.String("path")

	manifestFile, err := os.Open(manifestPath)
	if err != nil {
		return fmt.Errorf("open mtree manifest: %w", err)
	}
	defer funchelpers.VerifyClose(&Err, manifestFile)
	manifest, err := mtree.ParseSpec(manifestFile)
	if err != nil {
		return fmt.Errorf("parse mtree manifest: %w", err)
	}

	// Figure out the set of keywords to use for the comparison.
	keywords := manifest.UsedKeywords()
	if ctx.IsSet("use-keywords") {
		keywords = parseKeywordArg(ctx.String("use-keywords"))
	}
	// "type" is necessary for any comparison to make sense.
	if !mtree.InKeywordSlice("type", keywords) {
		keywords = append([]mtree.Keyword{"type"}, keywords...)
	}
	log.WithFields(log.Fields{
		"manifest": manifestPath,
		"path":     rootPath,
		"keywords": keywords,
	}).Debug("validating directory against mtree manifest")

	diff, err := mktree.ValidateManifest(rootPath, manifest, keywords, fseval.Default)
	if err != nil {
		return err
	}

	for _, delta := range diff {
		fmt.Println(delta)
	}
	if n := len(diff); n > 0 {
		return fmt.Errorf("validation failed: %d differences found", n)
	}
	log.Infof("no errors found during mtree validation")
	return nil
}
