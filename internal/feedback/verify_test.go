// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package feedback

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/vextract/internal/parser"
	"github.com/petar-djukic/vextract/pkg/types"
)

func TestVerify(t *testing.T) {
	wrapped := "import * as __vanilla_filescope__ from \"@vanilla-extract/css/fileScope\";\n" +
		"__vanilla_filescope__.setFileScope(\"a.css.ts\", \"vextract\");\n" +
		"export const a = 1;\n" +
		"__vanilla_filescope__.endFileScope();\n"

	tests := []struct {
		name    string
		res     *types.FileResult
		wantErr error
	}{
		{
			name: "wrapped output",
			res:  &types.FileResult{FilePath: "a.css.ts", State: types.StateWrapped, Output: []byte(wrapped)},
		},
		{
			name: "no output",
			res:  &types.FileResult{FilePath: "a.css.ts", State: types.StateNotTarget},
		},
		{
			name:    "syntax error",
			res:     &types.FileResult{FilePath: "a.css.ts", State: types.StateWrapped, Output: []byte("export const = ;\n")},
			wantErr: parser.ErrSyntax,
		},
		{
			name:    "wrapped without marker",
			res:     &types.FileResult{FilePath: "a.css.ts", State: types.StateWrapped, Output: []byte("export const a = 1;\n")},
			wantErr: ErrNotIdempotent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(context.Background(), parser.New(), tt.res)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var diag *types.Diagnostic
			assert.True(t, errors.As(err, &diag))
		})
	}
}
