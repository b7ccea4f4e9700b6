// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"testing"

	"github.com/regview/regview/pkg/types"
)

func TestLoadOptions_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       LoadOptions
		wantErrors int
	}{
		{name: "all empty", opts: LoadOptions{}},
		{name: "all valid", opts: LoadOptions{ConfigFilePath: "/tmp/config.cue", ConfigDirPath: "/tmp/regview"}},
		{name: "whitespace file path", opts: LoadOptions{ConfigFilePath: types.FilesystemPath("   ")}, wantErrors: 1},
		{name: "whitespace dir path", opts: LoadOptions{ConfigDirPath: types.FilesystemPath("\t")}, wantErrors: 1},
		{
			name:       "both invalid",
			opts:       LoadOptions{ConfigFilePath: " ", ConfigDirPath: "\t"},
			wantErrors: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if tt.wantErrors == 0 {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidLoadOptions) {
				t.Fatalf("Validate() = %v, want ErrInvalidLoadOptions", err)
			}
			var loadErr *InvalidLoadOptionsError
			if !errors.As(err, &loadErr) {
				t.Fatalf("error should be *InvalidLoadOptionsError, got %T", err)
			}
			if len(loadErr.FieldErrors) != tt.wantErrors {
				t.Errorf("FieldErrors = %d, want %d", len(loadErr.FieldErrors), tt.wantErrors)
			}
		})
	}
}

func TestInvalidLoadOptionsError_Error(t *testing.T) {
	t.Parallel()

	single := &InvalidLoadOptionsError{FieldErrors: []error{errors.New("test error")}}
	if got := single.Error(); got != "invalid load options: test error" {
		t.Errorf("Error() = %q", got)
	}

	multiple := &InvalidLoadOptionsError{FieldErrors: []error{errors.New("a"), errors.New("b")}}
	if got := multiple.Error(); got != "invalid load options: 2 field errors" {
		t.Errorf("Error() = %q", got)
	}
}

func TestProvider_RejectsInvalidOptions(t *testing.T) {
	t.Parallel()

	opts := LoadOptions{ConfigFilePath: "  "}
	if _, err := NewProvider().Load(context.Background(), opts); !errors.Is(err, ErrInvalidLoadOptions) {
		t.Errorf("Load() error = %v, want ErrInvalidLoadOptions", err)
	}
	if _, err := NewProvider().Source(opts); !errors.Is(err, ErrInvalidLoadOptions) {
		t.Errorf("Source() error = %v, want ErrInvalidLoadOptions", err)
	}
}
