// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package batch finds style modules on disk and transforms them with a
// bounded pool of workers.
package batch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/petar-djukic/vextract/internal/transform"
)

// skipDirs contains directory names that Collect never enters.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
}

// Ignorer reports whether a path should be left out of a walk.
// *git.Repo implements it with the repository's .gitignore rules.
type Ignorer interface {
	Ignored(path string, isDir bool) bool
}

// Collect expands paths into the style modules to transform. Directories
// are walked recursively, skipping .git, node_modules, vendor and anything
// ign reports as ignored; files are kept when transform.IsTarget accepts
// them. Explicit file arguments are never checked against ign. With no
// paths, root is walked. The result is sorted and free of duplicates.
func Collect(ctx context.Context, root string, paths []string, ign Ignorer) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{root}
	}

	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			if transform.IsTarget(p) {
				add(filepath.Clean(p))
			}
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // skip inaccessible entries
			}
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}
			if d.IsDir() {
				if path == p {
					return nil
				}
				if skipDirs[d.Name()] || (ign != nil && ign.Ignored(absPath(path), true)) {
					return filepath.SkipDir
				}
				return nil
			}
			if !transform.IsTarget(d.Name()) {
				return nil
			}
			if ign != nil && ign.Ignored(absPath(path), false) {
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", p, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
