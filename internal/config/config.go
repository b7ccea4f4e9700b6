// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/regview/regview/internal/issue"
	"github.com/regview/regview/pkg/cueutil"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "regview"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the regview configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// ConfigFilePath returns the path of the config file inside dir, or inside
// ConfigDir when dir is empty.
func ConfigFilePath(dir string) (string, error) {
	cfgDir, err := configDirWithOverride(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// loadWithOptions performs option-driven config loading without mutating
// package-level state. It returns the path of the file that was read, or ""
// when only defaults apply.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	setDefaults(v)

	resolvedPath, err := resolveSource(opts)
	if err != nil {
		return nil, "", err
	}
	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", loadError(resolvedPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	// CUE checks shapes; key conflicts and cross-package enums are checked here.
	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Bind each key name under 'keys' to a single action").
			WithSuggestion("Use 'regview config show' to see the configuration in effect").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// resolveSource picks the config file: the explicit path, else the file in the
// config directory, else ./config.cue. It returns "" when none exists.
func resolveSource(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		path := opts.ConfigFilePath.String()
		if !fileExists(path) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Use 'regview config show' to see the default configuration").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(fmt.Errorf("config file not found: %s", path)).
				BuildError()
		}
		return path, nil
	}

	cuePath, err := ConfigFilePath(opts.ConfigDirPath.String())
	if err != nil {
		return "", err
	}
	for _, candidate := range []string{cuePath, ConfigFileName + "." + ConfigFileExt} {
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("preview.mode", defaults.Preview.Mode)
	v.SetDefault("preview.default_keys", defaults.Preview.DefaultKeys)
	v.SetDefault("preview.refresh_interval_ms", defaults.Preview.RefreshIntervalMs)
	v.SetDefault("pane.border", defaults.Pane.Border)
	v.SetDefault("pane.max_height", defaults.Pane.MaxHeight)
	v.SetDefault("pane.width", defaults.Pane.Width)
	v.SetDefault("pane.position", defaults.Pane.Position)
	v.SetDefault("keys.next", defaults.Keys.Next)
	v.SetDefault("keys.previous", defaults.Keys.Previous)
	v.SetDefault("keys.reveal", defaults.Keys.Reveal)
	v.SetDefault("keys.suggest", defaults.Keys.Suggest)
	v.SetDefault("keys.submit", defaults.Keys.Submit)
	v.SetDefault("keys.abort", defaults.Keys.Abort)
	v.SetDefault("ui.theme", defaults.UI.Theme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("store.path", defaults.Store.Path)
}

func loadError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check that the file contains valid CUE syntax").
		WithSuggestion("Verify the configuration values match the expected schema").
		WithSuggestion("See 'regview config --help' for configuration options").
		WithIssue(issue.ConfigLoadFailedId).
		Wrap(err).
		BuildError()
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
//
// cueutil.ParseAndDecode is not used here: the file is decoded into a map for
// Viper, and fields are optional, so concreteness is not required.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return cueutil.FormatError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return cueutil.FormatError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return cueutil.FormatError(err, path)
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes the default config file into dir (or ConfigDir)
// unless one exists. It returns the file path and whether it was created.
func CreateDefaultConfig(dir string) (string, bool, error) {
	cfgPath, err := ConfigFilePath(dir)
	if err != nil {
		return "", false, err
	}

	if _, err := os.Stat(cfgPath); err == nil {
		return cfgPath, false, nil
	}

	if err := Save(DefaultConfig(), cfgPath); err != nil {
		return "", false, err
	}
	return cfgPath, true, nil
}

// Save writes cfg as CUE to path, creating its directory.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(GenerateCUE(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// regview configuration file\n")
	sb.WriteString("// See https://github.com/regview/regview for documentation.\n\n")

	sb.WriteString("preview: {\n")
	fmt.Fprintf(&sb, "\tmode: %q\n", cfg.Preview.Mode)
	if len(cfg.Preview.DefaultKeys) > 0 {
		keys := make([]string, 0, len(cfg.Preview.DefaultKeys))
		for _, k := range cfg.Preview.DefaultKeys {
			keys = append(keys, fmt.Sprintf("%q", k))
		}
		fmt.Fprintf(&sb, "\tdefault_keys: [%s]\n", strings.Join(keys, ", "))
	}
	fmt.Fprintf(&sb, "\trefresh_interval_ms: %d\n", cfg.Preview.RefreshIntervalMs)
	sb.WriteString("}\n")

	sb.WriteString("\npane: {\n")
	border := cfg.Pane.Border
	if border == "" {
		border = BorderNone
	}
	fmt.Fprintf(&sb, "\tborder: %q\n", border)
	fmt.Fprintf(&sb, "\tmax_height: %d\n", cfg.Pane.MaxHeight)
	fmt.Fprintf(&sb, "\twidth: %d\n", cfg.Pane.Width)
	fmt.Fprintf(&sb, "\tposition: %q\n", cfg.Pane.Position)
	sb.WriteString("}\n")

	keys := []struct {
		name  string
		names []string
	}{
		{"next", cfg.Keys.Next},
		{"previous", cfg.Keys.Previous},
		{"reveal", cfg.Keys.Reveal},
		{"suggest", cfg.Keys.Suggest},
		{"submit", cfg.Keys.Submit},
		{"abort", cfg.Keys.Abort},
	}
	var bound []string
	for _, k := range keys {
		if len(k.names) == 0 {
			continue
		}
		quoted := make([]string, 0, len(k.names))
		for _, n := range k.names {
			quoted = append(quoted, fmt.Sprintf("%q", n))
		}
		bound = append(bound, fmt.Sprintf("\t%s: [%s]\n", k.name, strings.Join(quoted, ", ")))
	}
	if len(bound) > 0 {
		sb.WriteString("\nkeys: {\n")
		for _, line := range bound {
			sb.WriteString(line)
		}
		sb.WriteString("}\n")
	}

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\ttheme: %q\n", cfg.UI.Theme)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	if cfg.Store.Path != "" {
		sb.WriteString("\nstore: {\n")
		fmt.Fprintf(&sb, "\tpath: %q\n", cfg.Store.Path)
		sb.WriteString("}\n")
	}

	return sb.String()
}
