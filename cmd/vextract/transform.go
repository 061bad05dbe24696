// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/vextract/internal/feedback"
	gitpkg "github.com/petar-djukic/vextract/internal/git"
	"github.com/petar-djukic/vextract/internal/transform"
	"github.com/petar-djukic/vextract/pkg/types"
	"github.com/petar-djukic/vextract/pkg/vextract"
)

// settings holds the values shared by every command.
type settings struct {
	root        string
	packageName string
	repo        *gitpkg.Repo // nil when git is disabled or absent
}

// loadSettings resolves flags, environment and config file. The root
// defaults to the enclosing git worktree, then to the working directory.
func loadSettings() (*settings, error) {
	s := &settings{root: viper.GetString("root")}

	if !viper.GetBool("no-git") {
		start := s.root
		if start == "" {
			start = transform.DefaultRoot
		}
		repo, err := gitpkg.Open(start)
		switch {
		case err == nil:
			s.repo = repo
		case errors.Is(err, gitpkg.ErrNoGit):
			slog.Debug("no git repository", slog.String("dir", start))
		default:
			return nil, fmt.Errorf("opening repository: %w", err)
		}
	}
	if s.root == "" {
		s.root = transform.DefaultRoot
		if s.repo != nil {
			s.root = s.repo.Root()
		}
	}

	s.packageName = viper.GetString("package-name")
	if s.packageName == "" {
		name, err := vextract.PackageNameFromPluginConfig(viper.GetString("plugin-config"))
		if err != nil {
			return nil, err
		}
		s.packageName = name
	}
	return s, nil
}

// newTransformCmd creates the "transform" command.
func newTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform [paths...]",
		Short: "Add debug ids and file scopes to style modules",
		Long: `Transform finds style modules under the given paths (the root when none
are given) and reports what it would change. With --write the files are
rewritten in place; with --stdin-filename one module is read from stdin
and the result written to stdout.`,
		RunE: runTransform,
	}

	cmd.Flags().BoolP("write", "w", false, "Write changed files back to disk")
	cmd.Flags().BoolP("diff", "d", false, "Show a diff for each changed file")
	cmd.Flags().Bool("check", false, "Exit non-zero if any file would change")
	cmd.Flags().Bool("changed", false, "Only consider files git reports as changed")
	cmd.Flags().Bool("verify", true, "Re-parse transformed output before accepting it")
	cmd.Flags().Bool("json", false, "Print results as JSON")
	cmd.Flags().String("stdin-filename", "", "Transform stdin as this file and print the result")

	return cmd
}

// runTransform executes the transform command.
func runTransform(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")
	showDiff, _ := cmd.Flags().GetBool("diff")
	check, _ := cmd.Flags().GetBool("check")
	changed, _ := cmd.Flags().GetBool("changed")
	verify, _ := cmd.Flags().GetBool("verify")
	asJSON, _ := cmd.Flags().GetBool("json")
	stdinName, _ := cmd.Flags().GetString("stdin-filename")

	s, err := loadSettings()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	tr, err := vextract.New(vextract.Config{
		Root:        s.root,
		PackageName: s.packageName,
		Workers:     viper.GetInt("workers"),
		Write:       write,
		Diff:        showDiff,
		Verify:      verify,
		GitIgnore:   s.repo != nil,
		Logger:      slog.Default(),
	})
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if stdinName != "" {
		return transformStdin(ctx, cmd, tr, stdinName)
	}

	paths := args
	if changed {
		if len(args) > 0 {
			return errors.New("--changed cannot be combined with paths")
		}
		if s.repo == nil {
			return errors.New("--changed needs a git repository")
		}
		if paths, err = changedPaths(s.repo); err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No changed files.")
			return nil
		}
	}

	files, err := tr.Collect(ctx, paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No style modules found.")
		return nil
	}
	if write && s.repo != nil {
		warnDirty(s.repo, files)
	}

	result, err := tr.TransformFiles(ctx, files)
	if asJSON {
		printResults(cmd.OutOrStdout(), result.Files)
	} else {
		fmt.Fprint(cmd.OutOrStdout(), feedback.FormatReport(result.Files, feedback.FormatConfig{
			ShowSkipped: viper.GetBool("verbose"),
			ShowDiffs:   showDiff,
		}))
	}
	if err != nil {
		return err
	}

	if result.Failed() {
		return fmt.Errorf("%d of %d files failed", result.Stats.Failed, result.Stats.Processed)
	}
	if check && !write && result.Stats.Changed > 0 {
		return fmt.Errorf("%d files need transforming", result.Stats.Changed)
	}
	return nil
}

// transformStdin transforms one module read from stdin.
func transformStdin(ctx context.Context, cmd *cobra.Command, tr vextract.Transformer, filename string) error {
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	if abs, err := filepath.Abs(filename); err == nil {
		filename = abs
	}
	res, err := tr.TransformSource(ctx, filename, src)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(res.Output)
	return err
}

// changedPaths lists the changed files of repo as absolute paths.
func changedPaths(repo *gitpkg.Repo) ([]string, error) {
	rel, err := repo.ChangedFiles()
	if err != nil {
		return nil, fmt.Errorf("listing changed files: %w", err)
	}
	paths := make([]string, len(rel))
	for i, p := range rel {
		paths[i] = filepath.Join(repo.Root(), filepath.FromSlash(p))
	}
	return paths, nil
}

// warnDirty logs the files about to be rewritten that have uncommitted
// changes.
func warnDirty(repo *gitpkg.Repo, files []string) {
	abs := make([]string, len(files))
	for i, f := range files {
		abs[i] = f
		if a, err := filepath.Abs(f); err == nil {
			abs[i] = a
		}
	}
	dirty, err := repo.DirtyFiles(abs)
	if err != nil {
		slog.Warn("checking for uncommitted changes", slog.Any("error", err))
		return
	}
	for _, f := range dirty {
		slog.Warn("rewriting file with uncommitted changes", slog.String("file", f))
	}
}

// jsonResult is the JSON form of a types.FileResult.
type jsonResult struct {
	File     string   `json:"file"`
	State    string   `json:"state"`
	DebugIDs []string `json:"debugIds,omitempty"`
	ESM      bool     `json:"esm"`
	Changed  bool     `json:"changed"`
	Error    string   `json:"error,omitempty"`
}

// printResults outputs the results as JSON.
func printResults(w io.Writer, results []*types.FileResult) {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		jr := jsonResult{
			File:     r.FilePath,
			State:    r.State.String(),
			DebugIDs: r.DebugIDs,
			ESM:      r.ESM,
			Changed:  r.Changed,
		}
		if r.Err != nil {
			jr.State = "failed"
			jr.Error = r.Err.Error()
		}
		out = append(out, jr)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling results: %v\n", err)
		return
	}
	fmt.Fprintln(w, string(data))
}

// newScopeCmd creates the "scope" command.
func newScopeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scope <file>...",
		Short: "Print the file scope path of style modules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings()
			if err != nil {
				return fmt.Errorf("configuration: %w", err)
			}
			for _, f := range args {
				if !transform.IsTarget(f) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t(not a target)\n", f)
					continue
				}
				abs := f
				if a, err := filepath.Abs(f); err == nil {
					abs = a
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", f, transform.ScopePath(abs, s.root), s.packageName)
			}
			return nil
		},
	}
}
