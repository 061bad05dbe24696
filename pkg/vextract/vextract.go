// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package vextract is the public interface of vextract, a source transform
// that adds debug ids to vanilla-extract style calls and wraps each style
// module in a file scope.
package vextract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/petar-djukic/vextract/internal/transform"
	"github.com/petar-djukic/vextract/pkg/types"
)

// Error types for the vextract API.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrCollect       = errors.New("failed to collect input files")
)

// Config configures a Transformer.
type Config struct {
	Root        string       // Directory scope paths are relative to (default ".")
	PackageName string       // Package name recorded in each file scope (default "swc-plugin-vanilla-extract")
	Workers     int          // Parallel files; 0 selects the CPU count
	Write       bool         // Write changed files back to disk
	Diff        bool         // Record a unified diff for changed files
	Verify      bool         // Re-parse output before accepting it
	GitIgnore   bool         // Skip paths ignored by the enclosing git repository
	Logger      *slog.Logger // Defaults to slog.Default()
}

// Result holds the outcome of a TransformFiles invocation.
type Result struct {
	Files []*types.FileResult // One entry per collected file, sorted by path
	Stats types.Stats         // Counts by outcome
}

// Failed reports whether any file failed.
func (r *Result) Failed() bool { return r.Stats.Failed > 0 }

// Transformer applies the transform to sources and files.
type Transformer interface {
	// TransformSource transforms src as the module named filename. The
	// returned error is the file's failure, also recorded in the result.
	TransformSource(ctx context.Context, filename string, src []byte) (*types.FileResult, error)

	// Collect expands paths (the root when empty) into the target files a
	// TransformFiles call would process, sorted by path.
	Collect(ctx context.Context, paths []string) ([]string, error)

	// TransformFiles collects the target files below paths (the root when
	// empty) and transforms them. Per-file failures are recorded in the
	// result; the error is set only when collection fails or ctx ends.
	TransformFiles(ctx context.Context, paths []string) (*Result, error)
}

// PackageNameFromPluginConfig reads the package name from a JSON plugin
// configuration such as {"packageName": "@acme/ui"}. An empty config or
// one without packageName yields the default name.
func PackageNameFromPluginConfig(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return transform.DefaultPackageName, nil
	}
	v := viper.New()
	v.SetConfigType("json")
	if err := v.ReadConfig(strings.NewReader(raw)); err != nil {
		return "", fmt.Errorf("%w: plugin config: %v", ErrInvalidConfig, err)
	}
	if name := v.GetString("packageName"); name != "" {
		return name, nil
	}
	return transform.DefaultPackageName, nil
}
