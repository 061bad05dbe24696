// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package feedback checks transformed output and reports results.
package feedback

import (
	"context"
	"errors"
	"fmt"

	"github.com/petar-djukic/vextract/internal/ast"
	"github.com/petar-djukic/vextract/internal/transform"
	"github.com/petar-djukic/vextract/pkg/types"
)

// ErrNotIdempotent is returned when wrapped output would be transformed
// again because the file-scope import is not recognised.
var ErrNotIdempotent = errors.New("output is not recognised as compiled")

// Parser parses a module. *parser.Parser implements it.
type Parser interface {
	Parse(ctx context.Context, filename string, src []byte) (*ast.Module, error)
}

// Verify re-parses the transformed output of res. Output that no longer
// parses yields the parser's diagnostic. Wrapped output must also carry a
// file-scope import a second run would detect.
func Verify(ctx context.Context, p Parser, res *types.FileResult) error {
	if res == nil || res.Output == nil {
		return nil
	}

	m, err := p.Parse(ctx, res.FilePath, res.Output)
	if err != nil {
		return fmt.Errorf("verifying output: %w", err)
	}

	if res.State == types.StateWrapped && !transform.CollectImports(m.Body).Compiled {
		return &types.Diagnostic{
			FilePath: res.FilePath,
			Line:     1,
			Message:  "missing " + transform.FileScopePackage + " import",
			Err:      ErrNotIdempotent,
		}
	}
	return nil
}
