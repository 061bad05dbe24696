// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package git locates the enclosing repository and answers the questions a
// run needs: where the worktree root is, which files changed, and which
// paths are ignored.
package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ErrNoGit is returned when the directory is not inside a git repository.
var ErrNoGit = errors.New("not a git repository")

// Repo wraps a go-git repository for the operations we need.
type Repo struct {
	repo   *gogit.Repository
	root   string
	ignore gitignore.Matcher
}

// Open finds the repository containing dir, searching parent directories.
// Returns ErrNoGit if there is none.
func Open(dir string) (*Repo, error) {
	r, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}

	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	patterns, err := gitignore.ReadPatterns(wt.Filesystem, nil)
	if err != nil {
		return nil, fmt.Errorf("reading ignore patterns: %w", err)
	}

	return &Repo{
		repo:   r,
		root:   wt.Filesystem.Root(),
		ignore: gitignore.NewMatcher(patterns),
	}, nil
}

// Root returns the absolute path of the worktree root.
func (r *Repo) Root() string {
	return r.root
}

// ChangedFiles lists files that are added, modified or untracked, relative
// to the root with forward slashes. Deleted files are left out.
func (r *Repo) ChangedFiles() ([]string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("getting status: %w", err)
	}

	var files []string
	for path, s := range status {
		if s.Staging == gogit.Deleted || s.Worktree == gogit.Deleted {
			continue
		}
		if s.Staging == gogit.Unmodified && s.Worktree == gogit.Unmodified {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

// DirtyFiles returns the paths among paths that have uncommitted changes.
// Paths may be absolute or relative to the root.
func (r *Repo) DirtyFiles(paths []string) ([]string, error) {
	changed, err := r.ChangedFiles()
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(changed))
	for _, c := range changed {
		set[c] = true
	}

	var dirty []string
	for _, p := range paths {
		if rel, ok := r.rel(p); ok && set[rel] {
			dirty = append(dirty, p)
		}
	}
	return dirty, nil
}

// Ignored reports whether path matches the repository's .gitignore rules.
// Paths outside the worktree are never ignored.
func (r *Repo) Ignored(path string, isDir bool) bool {
	rel, ok := r.rel(path)
	if !ok || rel == "." {
		return false
	}
	return r.ignore.Match(strings.Split(rel, "/"), isDir)
}

// rel converts path to a slash-separated path relative to the root.
func (r *Repo) rel(path string) (string, bool) {
	if !filepath.IsAbs(path) {
		return filepath.ToSlash(filepath.Clean(path)), true
	}
	rel, err := filepath.Rel(r.root, path)
	if err != nil || !filepath.IsLocal(rel) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
