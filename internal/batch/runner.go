// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package batch

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/petar-djukic/vextract/internal/ast"
	"github.com/petar-djukic/vextract/internal/editor"
	"github.com/petar-djukic/vextract/internal/feedback"
	"github.com/petar-djukic/vextract/internal/parser"
	"github.com/petar-djukic/vextract/internal/transform"
	"github.com/petar-djukic/vextract/pkg/types"
)

// Options configures a Runner.
type Options struct {
	Root        string       // Directory scope paths are relative to
	PackageName string       // Package name passed to setFileScope
	Workers     int          // Parallel files; runtime.NumCPU() when <= 0
	Write       bool         // Write changed files back to disk
	Diff        bool         // Record a diff in each changed result
	Verify      bool         // Re-parse transformed output before accepting it
	Logger      *slog.Logger // Defaults to slog.Default()
}

// Runner transforms files. It is safe for concurrent use.
type Runner struct {
	opts   Options
	parser *parser.Parser
	log    *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(opts Options) *Runner {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Root == "" {
		opts.Root = transform.DefaultRoot
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Runner{
		opts:   opts,
		parser: parser.New(parser.WithLogger(opts.Logger)),
		log:    opts.Logger,
	}
}

// Run transforms files concurrently. A failing file is recorded in its
// result and does not stop the others; the returned error is only set when
// ctx is cancelled. Results are in the order of files.
func (r *Runner) Run(ctx context.Context, files []string) ([]*types.FileResult, types.Stats, error) {
	results := make([]*types.FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.runFile(gctx, path)
			return nil
		})
	}
	err := g.Wait()

	for i, res := range results {
		if res == nil {
			results[i] = &types.FileResult{FilePath: files[i], Err: fmt.Errorf("not processed: %w", ctx.Err())}
		}
	}
	stats := types.Summarize(results)
	r.log.Debug("batch finished",
		slog.Int("files", stats.Processed),
		slog.Int("wrapped", stats.Wrapped),
		slog.Int("failed", stats.Failed),
	)
	return results, stats, err
}

// runFile reads, transforms and optionally writes one file.
func (r *Runner) runFile(ctx context.Context, path string) *types.FileResult {
	src, err := os.ReadFile(path)
	if err != nil {
		return &types.FileResult{FilePath: path, Err: fmt.Errorf("reading %s: %w", path, err)}
	}

	// Absolute names make scope paths relative to the configured root
	// rather than the working directory.
	filename := path
	if abs, err := filepath.Abs(path); err == nil {
		filename = abs
	}

	res := r.process(ctx, path, filename, src)
	if res.Err != nil || !res.Changed || !r.opts.Write {
		return res
	}
	if err := editor.WriteFile(path, res.Output); err != nil {
		res.Err = fmt.Errorf("writing %s: %w", path, err)
		return res
	}
	r.log.Debug("wrote file", slog.String("file", path))
	return res
}

// TransformSource transforms src as the module named filename without
// touching the filesystem.
func (r *Runner) TransformSource(ctx context.Context, filename string, src []byte) *types.FileResult {
	return r.process(ctx, filename, filename, src)
}

// process runs the pipeline on one module. display is the name reported in
// the result; filename is the name the module is parsed and scoped under.
func (r *Runner) process(ctx context.Context, display, filename string, src []byte) *types.FileResult {
	if !transform.IsTarget(filename) {
		return &types.FileResult{FilePath: display, State: types.StateNotTarget, Output: src}
	}

	m, err := r.parser.Parse(ctx, filename, src)
	if err != nil {
		return &types.FileResult{FilePath: display, Err: err}
	}

	res, err := transform.Transform(m, transform.Options{
		Filename:    filename,
		Root:        r.opts.Root,
		PackageName: r.opts.PackageName,
		Logger:      r.log,
	})
	if err != nil {
		return &types.FileResult{FilePath: display, Err: err}
	}
	res.FilePath = display
	res.Output = src
	if !res.Changed {
		return res
	}

	out, err := ast.Reprint(src, m)
	if err != nil {
		res.Err = fmt.Errorf("printing %s: %w", display, err)
		return res
	}
	res.Output = out
	res.Changed = !bytes.Equal(out, src)

	if r.opts.Verify {
		if err := feedback.Verify(ctx, r.parser, res); err != nil {
			res.Err = err
			return res
		}
	}
	if r.opts.Diff {
		res.Diff = editor.Diff(filepath.ToSlash(display), string(src), string(out))
	}
	return res
}
