// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/regview/regview/internal/keymap"
	"github.com/regview/regview/internal/session"
	"github.com/regview/regview/internal/tui"
	"github.com/regview/regview/pkg/types"
)

const (
	// BorderNone disables the pane border. The tui package spells it "".
	BorderNone BorderStyle = "none"
)

var (
	// ErrInvalidEntryKey is the sentinel error wrapped by InvalidEntryKeyError.
	ErrInvalidEntryKey = errors.New("invalid entry key")
	// ErrInvalidRefreshInterval is the sentinel error wrapped by InvalidRefreshIntervalError.
	ErrInvalidRefreshInterval = errors.New("invalid refresh interval")
	// ErrInvalidPreviewConfig is the sentinel error wrapped by InvalidPreviewConfigError.
	ErrInvalidPreviewConfig = errors.New("invalid preview config")
	// ErrInvalidPaneConfig is the sentinel error wrapped by InvalidPaneConfigError.
	ErrInvalidPaneConfig = errors.New("invalid pane config")
	// ErrInvalidKeysConfig is the sentinel error wrapped by InvalidKeysConfigError.
	ErrInvalidKeysConfig = errors.New("invalid keys config")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// PreviewMode selects when the preview pane is shown. Defined locally so the
	// file format does not follow renames in the session package; the CLI casts
	// at the boundary.
	PreviewMode string

	// BorderStyle is the pane border as written in the config file ("none" for no border).
	BorderStyle string

	// PanePosition places the pane relative to the prompt.
	PanePosition string

	// Theme is the color theme of the picker.
	Theme string

	// EntryKey is one default key candidate; it must be a single character.
	EntryKey string

	// InvalidEntryKeyError is returned when an EntryKey is not exactly one character.
	// It wraps ErrInvalidEntryKey for errors.Is() compatibility.
	InvalidEntryKeyError struct {
		Value EntryKey
	}

	// RefreshInterval is the pane refresh coalescing window in milliseconds.
	// The zero value refreshes on every edit.
	RefreshInterval int

	// InvalidRefreshIntervalError is returned when a RefreshInterval is negative.
	InvalidRefreshIntervalError struct {
		Value RefreshInterval
	}

	// Config is the root configuration structure.
	Config struct {
		Preview PreviewConfig `json:"preview" mapstructure:"preview"`
		Pane    PaneConfig    `json:"pane" mapstructure:"pane"`
		Keys    KeysConfig    `json:"keys" mapstructure:"keys"`
		UI      UIConfig      `json:"ui" mapstructure:"ui"`
		Store   StoreConfig   `json:"store" mapstructure:"store"`
	}

	// PreviewConfig controls when and how entries are previewed.
	PreviewConfig struct {
		Mode PreviewMode `json:"mode" mapstructure:"mode"`
		// DefaultKeys are offered by the suggest key for set-style commands.
		DefaultKeys []EntryKey `json:"default_keys" mapstructure:"default_keys"`
		// RefreshIntervalMs coalesces pane refreshes while typing.
		RefreshIntervalMs RefreshInterval `json:"refresh_interval_ms" mapstructure:"refresh_interval_ms"`
	}

	// PaneConfig shapes the interactive preview pane.
	PaneConfig struct {
		Border    BorderStyle           `json:"border" mapstructure:"border"`
		MaxHeight tui.TerminalDimension `json:"max_height" mapstructure:"max_height"`
		Width     tui.TerminalDimension `json:"width" mapstructure:"width"`
		Position  PanePosition          `json:"position" mapstructure:"position"`
	}

	// KeysConfig overrides key bindings. An empty list keeps the default keys.
	KeysConfig struct {
		Next     []string `json:"next" mapstructure:"next"`
		Previous []string `json:"previous" mapstructure:"previous"`
		Reveal   []string `json:"reveal" mapstructure:"reveal"`
		Suggest  []string `json:"suggest" mapstructure:"suggest"`
		Submit   []string `json:"submit" mapstructure:"submit"`
		Abort    []string `json:"abort" mapstructure:"abort"`
	}

	// UIConfig contains UI-related settings.
	UIConfig struct {
		Theme Theme `json:"theme" mapstructure:"theme"`
		// Verbose enables debug logging.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// StoreConfig locates the entry snapshot used when --store is not given.
	StoreConfig struct {
		Path types.FilesystemPath `json:"path" mapstructure:"path"`
	}

	// InvalidPreviewConfigError collects field-level errors of a PreviewConfig.
	InvalidPreviewConfigError struct {
		FieldErrors []error
	}

	// InvalidPaneConfigError collects field-level errors of a PaneConfig.
	InvalidPaneConfigError struct {
		FieldErrors []error
	}

	// InvalidKeysConfigError wraps the key map error of a KeysConfig.
	InvalidKeysConfigError struct {
		FieldErrors []error
	}

	// InvalidUIConfigError collects field-level errors of a UIConfig.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	keys := make([]EntryKey, 0, 26)
	for _, k := range session.DefaultKeys() {
		keys = append(keys, EntryKey(k.String()))
	}
	return &Config{
		Preview: PreviewConfig{
			Mode:        PreviewMode(session.ModeAlways),
			DefaultKeys: keys,
		},
		Pane: PaneConfig{
			Border:    BorderStyle(tui.BorderRounded),
			MaxHeight: 10,
			Position:  PanePosition(tui.PaneBottom),
		},
		UI: UIConfig{
			Theme: Theme(tui.ThemeDefault),
		},
	}
}

// Bindings converts the key overrides for keymap.New.
func (c KeysConfig) Bindings() keymap.Bindings {
	return keymap.Bindings{
		Next:     c.Next,
		Previous: c.Previous,
		Reveal:   c.Reveal,
		Suggest:  c.Suggest,
		Submit:   c.Submit,
		Abort:    c.Abort,
	}
}

// IsValid reports whether the overrides form a key map without conflicts.
func (c KeysConfig) IsValid() (bool, []error) {
	if _, err := keymap.New(c.Bindings()); err != nil {
		return false, []error{&InvalidKeysConfigError{FieldErrors: []error{err}}}
	}
	return true, nil
}

// IsValid returns whether the PreviewConfig is valid.
func (c PreviewConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Mode.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	for _, k := range c.DefaultKeys {
		if valid, fieldErrs := k.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if valid, fieldErrs := c.RefreshIntervalMs.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidPreviewConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// IsValid returns whether the PaneConfig is valid.
func (c PaneConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Border.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.MaxHeight.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Width.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Position.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidPaneConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// IsValid returns whether the UIConfig is valid.
func (c UIConfig) IsValid() (bool, []error) {
	if valid, fieldErrs := c.Theme.IsValid(); !valid {
		return false, []error{&InvalidUIConfigError{FieldErrors: fieldErrs}}
	}
	return true, nil
}

// IsValid returns whether the Config is valid, collecting the errors of
// every section.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Preview.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Pane.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Keys.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if c.Store.Path != "" {
		if err := c.Store.Path.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Validate returns the InvalidConfigError of IsValid, or nil.
func (c Config) Validate() error {
	if valid, errs := c.IsValid(); !valid {
		return errs[0]
	}
	return nil
}

func (m PreviewMode) String() string { return string(m) }

// IsValid returns whether m names a session preview mode.
func (m PreviewMode) IsValid() (bool, []error) {
	if err := session.PreviewMode(m).Validate(); err != nil {
		return false, []error{err}
	}
	return true, nil
}

func (b BorderStyle) String() string { return string(b) }

// IsValid returns whether b names a pane border.
func (b BorderStyle) IsValid() (bool, []error) {
	if _, err := tui.ParseBorderStyle(string(b)); err != nil {
		return false, []error{err}
	}
	return true, nil
}

func (p PanePosition) String() string { return string(p) }

// IsValid returns whether p is "top" or "bottom".
func (p PanePosition) IsValid() (bool, []error) {
	if _, err := tui.ParsePanePosition(string(p)); err != nil {
		return false, []error{err}
	}
	return true, nil
}

func (t Theme) String() string { return string(t) }

// IsValid returns whether t names a picker theme.
func (t Theme) IsValid() (bool, []error) {
	if err := tui.Theme(t).Validate(); err != nil {
		return false, []error{err}
	}
	return true, nil
}

func (k EntryKey) String() string { return string(k) }

// IsValid returns whether k is exactly one character.
func (k EntryKey) IsValid() (bool, []error) {
	if utf8.RuneCountInString(string(k)) != 1 {
		return false, []error{&InvalidEntryKeyError{Value: k}}
	}
	return true, nil
}

// IsValid returns whether the interval is non-negative.
func (r RefreshInterval) IsValid() (bool, []error) {
	if r < 0 {
		return false, []error{&InvalidRefreshIntervalError{Value: r}}
	}
	return true, nil
}

func (e *InvalidEntryKeyError) Error() string {
	return fmt.Sprintf("invalid entry key %q: must be a single character", e.Value)
}

func (e *InvalidEntryKeyError) Unwrap() error { return ErrInvalidEntryKey }

func (e *InvalidRefreshIntervalError) Error() string {
	return fmt.Sprintf("invalid refresh interval %dms: must be >= 0", e.Value)
}

func (e *InvalidRefreshIntervalError) Unwrap() error { return ErrInvalidRefreshInterval }

func (e *InvalidPreviewConfigError) Error() string {
	return fmt.Sprintf("invalid preview config: %d field error(s)", len(e.FieldErrors))
}

func (e *InvalidPreviewConfigError) Unwrap() error { return ErrInvalidPreviewConfig }

func (e *InvalidPaneConfigError) Error() string {
	return fmt.Sprintf("invalid pane config: %d field error(s)", len(e.FieldErrors))
}

func (e *InvalidPaneConfigError) Unwrap() error { return ErrInvalidPaneConfig }

func (e *InvalidKeysConfigError) Error() string {
	return fmt.Sprintf("invalid keys config: %v", errors.Join(e.FieldErrors...))
}

func (e *InvalidKeysConfigError) Unwrap() error { return ErrInvalidKeysConfig }

func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
