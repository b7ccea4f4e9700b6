// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "load entry store"},
			expected: "failed to load entry store",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "load entry store", Resource: "./entries.cue"},
			expected: "failed to load entry store: ./entries.cue",
		},
		{
			name:     "operation with cause",
			err:      &ActionableError{Operation: "parse config", Cause: errors.New("syntax error at line 5")},
			expected: "failed to parse config: syntax error at line 5",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load entry store",
				Resource:  "./entries.cue",
				Cause:     errors.New("file not found"),
			},
			expected: "failed to load entry store: ./entries.cue: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	t.Parallel()

	err := WrapWithContext(fs.ErrNotExist, "load entry store", "entries.cue")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should find the wrapped cause")
	}

	var ae *ActionableError
	wrapped := errors.Join(errors.New("outer"), err)
	if !errors.As(wrapped, &ae) || ae.Resource != "entries.cue" {
		t.Errorf("errors.As = %+v", ae)
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		verbose  bool
		contains []string
		excludes []string
	}{
		{
			name: "with suggestions",
			err: &ActionableError{
				Operation:   "load entry store",
				Resource:    "./entries.cue",
				Suggestions: []string{"Run 'regview list'", "Check file permissions"},
			},
			contains: []string{
				"failed to load entry store",
				"./entries.cue",
				"• Run 'regview list'",
				"• Check file permissions",
			},
		},
		{
			name:     "non-verbose hides chain",
			err:      &ActionableError{Operation: "parse config", Cause: errors.New("syntax error")},
			contains: []string{"failed to parse config: syntax error"},
			excludes: []string{"Error chain:"},
		},
		{
			name: "nested error chain verbose",
			err: &ActionableError{
				Operation: "pick entry",
				Cause: &ActionableError{
					Operation: "read entry key",
					Cause:     errors.New("terminal closed"),
				},
			},
			verbose: true,
			contains: []string{
				"Error chain:",
				"1. failed to read entry key: terminal closed",
				"2. terminal closed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.err.Format(tt.verbose)
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Format() missing %q\ngot:\n%s", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("Format() should not contain %q\ngot:\n%s", s, got)
				}
			}
		})
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("some/path").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want untyped nil", err)
	}

	cause := errors.New("parse error")
	ae := NewErrorContext().
		WithOperation("load configuration").
		WithResource("/home/u/.config/regview/config.cue").
		WithSuggestion("Check syntax").
		WithSuggestions("Verify permissions", "Run 'regview config init'").
		WithIssue(ConfigLoadFailedId).
		Wrap(cause).
		Build()

	if ae.Operation != "load configuration" || ae.Resource != "/home/u/.config/regview/config.cue" {
		t.Errorf("Build() = %+v", ae)
	}
	if len(ae.Suggestions) != 3 {
		t.Errorf("Suggestions = %v, want 3", ae.Suggestions)
	}
	if !errors.Is(ae, cause) {
		t.Error("Build() should keep the cause")
	}
	if got := ae.CatalogIssue(); got == nil || got.Id() != ConfigLoadFailedId {
		t.Errorf("CatalogIssue() = %v", got)
	}
	if !ae.HasSuggestions() {
		t.Error("HasSuggestions() = false")
	}
}

func TestActionableError_CatalogIssueUnset(t *testing.T) {
	t.Parallel()

	if got := NewActionableError("pick entry").CatalogIssue(); got != nil {
		t.Errorf("CatalogIssue() = %v, want nil", got)
	}
}

func TestWrapHelpers_Nil(t *testing.T) {
	t.Parallel()

	if WrapWithOperation(nil, "x") != nil {
		t.Error("WrapWithOperation(nil) should be nil")
	}
	if WrapWithContext(nil, "x", "y") != nil {
		t.Error("WrapWithContext(nil) should be nil")
	}
}

func TestErrorContext_Reuse(t *testing.T) {
	t.Parallel()

	ec := NewErrorContext().WithOperation("load entry store").WithResource("entries.toml")

	err1 := ec.Wrap(errors.New("error 1")).Build()
	err2 := ec.Wrap(errors.New("error 2")).Build()

	if err1.Cause.Error() == err2.Cause.Error() {
		t.Error("reused context should allow different causes")
	}
	if err1.Operation != err2.Operation {
		t.Error("reused context should preserve operation")
	}
}
