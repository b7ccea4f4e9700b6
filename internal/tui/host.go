// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/regview/regview/internal/keymap"
	"github.com/regview/regview/internal/preview"
	"github.com/regview/regview/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// PaneBottom draws the pane below the prompt.
	PaneBottom PanePosition = "bottom"
	// PaneTop draws the pane above the prompt.
	PaneTop PanePosition = "top"
)

// ErrInvalidPanePosition is the sentinel error wrapped by InvalidPanePositionError.
var ErrInvalidPanePosition = errors.New("invalid pane position")

type (
	// PanePosition places the preview pane relative to the prompt.
	PanePosition string

	// InvalidPanePositionError is returned when a PanePosition value is not recognized.
	// It wraps ErrInvalidPanePosition for errors.Is() compatibility.
	InvalidPanePositionError struct {
		Value PanePosition
	}

	// HostOptions configures a Host.
	HostOptions struct {
		Config Config
		Keymap keymap.Keymap
		Border BorderStyle
		// MaxHeight caps the pane rows; 0 fits the terminal.
		MaxHeight TerminalDimension
		Position  PanePosition
		// RefreshInterval coalesces edits; 0 dispatches every edit at once.
		RefreshInterval time.Duration
	}

	// Host is the interactive session.Host.
	Host struct {
		opts    HostOptions
		surface *paneSurface
	}
)

var _ session.Host = (*Host)(nil)

// DefaultHostOptions returns options with the default config and keymap, a
// rounded border and the pane below the prompt.
func DefaultHostOptions() HostOptions {
	return HostOptions{
		Config:    DefaultConfig(),
		Keymap:    keymap.Default(),
		Border:    BorderRounded,
		MaxHeight: 10,
		Position:  PaneBottom,
	}
}

// NewHost creates an interactive host.
func NewHost(opts HostOptions) *Host {
	if opts.Config.Output == nil {
		opts.Config.Output = os.Stderr
	}
	if opts.Position == "" {
		opts.Position = PaneBottom
	}
	return &Host{
		opts:    opts,
		surface: newPaneSurface(StylesFor(opts.Config.Theme), opts.Border, opts.MaxHeight),
	}
}

// Surface implements session.Host.
func (h *Host) Surface() preview.Surface { return h.surface }

// Nested implements session.Host. A terminal runs one picker at a time.
func (h *Host) Nested() bool { return false }

// Read implements session.Host by running one Bubble Tea program.
func (h *Host) Read(ctx context.Context, req session.Request) error {
	m := newPickerModel(req, h.surface, h.opts)

	popts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(h.opts.Config.Output),
	}
	if h.opts.Config.Input != nil {
		popts = append(popts, tea.WithInput(h.opts.Config.Input))
	}

	restore := setInteractiveEnv()
	defer restore()

	if _, err := tea.NewProgram(m, popts...).Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("running picker: %w", err)
	}
	return nil
}

// ParsePanePosition converts a configuration value to a PanePosition.
func ParsePanePosition(s string) (PanePosition, error) {
	p := PanePosition(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return PaneBottom, nil
	}
	if err := p.Validate(); err != nil {
		return PaneBottom, err
	}
	return p, nil
}

// String returns the position name.
func (p PanePosition) String() string { return string(p) }

// Validate returns nil if the position is top or bottom.
func (p PanePosition) Validate() error {
	switch p {
	case PaneBottom, PaneTop:
		return nil
	default:
		return &InvalidPanePositionError{Value: p}
	}
}

// Error implements the error interface for InvalidPanePositionError.
func (e *InvalidPanePositionError) Error() string {
	return fmt.Sprintf("invalid pane position %q (valid: top, bottom)", e.Value)
}

// Unwrap returns ErrInvalidPanePosition for errors.Is() compatibility.
func (e *InvalidPanePositionError) Unwrap() error { return ErrInvalidPanePosition }

// setInteractiveEnv marks the process as owning the terminal until restore is
// called.
func setInteractiveEnv() (restore func()) {
	prev, had := os.LookupEnv(InteractiveEnv)
	_ = os.Setenv(InteractiveEnv, "1")
	return func() {
		if had {
			_ = os.Setenv(InteractiveEnv, prev)
		} else {
			_ = os.Unsetenv(InteractiveEnv)
		}
	}
}
