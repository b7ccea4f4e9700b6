// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"os"
	"testing"

	"github.com/regview/regview/internal/testutil"
)

func TestIsNestedInteractive(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected bool
	}{
		{name: "not set", envValue: "", expected: false},
		{name: "set to 1", envValue: "1", expected: true},
		{name: "set to any value", envValue: "yes", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore := testutil.MustSetenv(t, InteractiveEnv, tt.envValue)
			defer restore()
			if tt.envValue == "" {
				_ = os.Unsetenv(InteractiveEnv)
			}

			if got := IsNestedInteractive(); got != tt.expected {
				t.Errorf("IsNestedInteractive() = %v, want %v", got, tt.expected)
			}
			if tt.expected && IsInteractive() {
				t.Error("IsInteractive() = true while nested")
			}
		})
	}
}

func TestSetInteractiveEnv(t *testing.T) {
	restore := testutil.MustSetenv(t, InteractiveEnv, "outer")
	defer restore()

	undo := setInteractiveEnv()
	if got := os.Getenv(InteractiveEnv); got != "1" {
		t.Errorf("during picker %s = %q, want 1", InteractiveEnv, got)
	}
	undo()
	if got := os.Getenv(InteractiveEnv); got != "outer" {
		t.Errorf("after picker %s = %q, want outer", InteractiveEnv, got)
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Theme != ThemeDefault || cfg.Output != os.Stderr || cfg.Width != 0 {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
}

func TestTheme_Validate(t *testing.T) {
	t.Parallel()

	for _, th := range []Theme{ThemeDefault, ThemeCharm, ThemeDracula, ThemeCatppuccin, ThemeBase16} {
		if err := th.Validate(); err != nil {
			t.Errorf("Theme(%q).Validate() = %v", th, err)
		}
		// Every theme renders a non-empty styled key.
		if StylesFor(th).Key.Render("a") == "" {
			t.Errorf("StylesFor(%q).Key rendered nothing", th)
		}
	}

	err := Theme("neon").Validate()
	if !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("Validate() = %v, want ErrInvalidTheme", err)
	}
	var themeErr *InvalidThemeError
	if !errors.As(err, &themeErr) || themeErr.Value != "neon" {
		t.Errorf("errors.As() = %+v", themeErr)
	}
}

func TestParsePanePosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    PanePosition
		wantErr bool
	}{
		{"", PaneBottom, false},
		{"bottom", PaneBottom, false},
		{" TOP ", PaneTop, false},
		{"left", PaneBottom, true},
	}
	for _, tt := range tests {
		got, err := ParsePanePosition(tt.in)
		if got != tt.want || (err != nil) != tt.wantErr {
			t.Errorf("ParsePanePosition(%q) = %q, %v", tt.in, got, err)
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidPanePosition) {
			t.Errorf("ParsePanePosition(%q) error does not wrap ErrInvalidPanePosition", tt.in)
		}
	}
}
