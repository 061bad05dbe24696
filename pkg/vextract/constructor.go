// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package vextract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/petar-djukic/vextract/internal/batch"
	"github.com/petar-djukic/vextract/internal/git"
	"github.com/petar-djukic/vextract/internal/transform"
	"github.com/petar-djukic/vextract/pkg/types"
)

// New validates the config and returns a ready-to-use Transformer.
func New(cfg Config) (Transformer, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	applyDefaults(&cfg)

	var ign batch.Ignorer
	if cfg.GitIgnore {
		repo, err := git.Open(cfg.Root)
		switch {
		case err == nil:
			ign = repo
		case errors.Is(err, git.ErrNoGit):
			cfg.Logger.Debug("no git repository, ignore rules disabled", slog.String("root", cfg.Root))
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	runner := batch.NewRunner(batch.Options{
		Root:        cfg.Root,
		PackageName: cfg.PackageName,
		Workers:     cfg.Workers,
		Write:       cfg.Write,
		Diff:        cfg.Diff,
		Verify:      cfg.Verify,
		Logger:      cfg.Logger,
	})

	return &transformerAdapter{root: cfg.Root, runner: runner, ignore: ign}, nil
}

// transformerAdapter adapts internal/batch.Runner to the public
// Transformer interface.
type transformerAdapter struct {
	root   string
	runner *batch.Runner
	ignore batch.Ignorer
}

func (a *transformerAdapter) TransformSource(ctx context.Context, filename string, src []byte) (*types.FileResult, error) {
	res := a.runner.TransformSource(ctx, filename, src)
	return res, res.Err
}

func (a *transformerAdapter) Collect(ctx context.Context, paths []string) ([]string, error) {
	files, err := batch.Collect(ctx, a.root, paths, a.ignore)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCollect, err)
	}
	return files, nil
}

func (a *transformerAdapter) TransformFiles(ctx context.Context, paths []string) (*Result, error) {
	files, err := a.Collect(ctx, paths)
	if err != nil {
		return &Result{}, err
	}
	results, stats, err := a.runner.Run(ctx, files)
	return &Result{Files: results, Stats: stats}, err
}

// validateConfig checks that the fields that are set hold usable values.
func validateConfig(cfg Config) error {
	if cfg.Root != "" {
		if info, err := os.Stat(cfg.Root); err != nil || !info.IsDir() {
			return fmt.Errorf("Root %q does not exist or is not a directory", cfg.Root)
		}
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("Workers must not be negative, got %d", cfg.Workers)
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Root == "" {
		cfg.Root = transform.DefaultRoot
	}
	if cfg.PackageName == "" {
		cfg.PackageName = transform.DefaultPackageName
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
}
