// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/regview/regview/internal/config"
	"github.com/regview/regview/internal/issue"
	"github.com/regview/regview/internal/tui"
	"github.com/regview/regview/pkg/types"

	"github.com/spf13/cobra"
)

// settableKeys lists the keys accepted by `regview config set`.
var settableKeys = []string{
	"preview.mode", "preview.refresh_interval_ms",
	"pane.border", "pane.max_height", "pane.width", "pane.position",
	"ui.theme", "ui.verbose", "store.path",
}

// newConfigCommand creates the `regview config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage regview configuration",
		Long: `Manage regview configuration.

Configuration is stored in:
  - Linux: ~/.config/regview/config.cue
  - macOS: ~/Library/Application Support/regview/config.cue
  - Windows: %APPDATA%\regview\config.cue`,
		PersistentPreRunE: configSubcommandPreRun(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  "Set a configuration value.\n\nValid keys: " + strings.Join(settableKeys, ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigValue(cmd.Context(), app, args[0], args[1])
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), app.loadOptions())
			if err != nil {
				return err
			}

			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.Config.Load(ctx, app.loadOptions())
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render(app.issueStyle())
		fmt.Fprint(app.stderr, rendered)
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	w := app.stdout

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	source, err := app.Config.Source(app.loadOptions())
	if err != nil || source == "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), source)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s:\n", keyStyle.Render("preview"))
	fmt.Fprintf(w, "  mode: %s\n", valueStyle.Render(string(cfg.Preview.Mode)))
	keys := make([]string, 0, len(cfg.Preview.DefaultKeys))
	for _, k := range cfg.Preview.DefaultKeys {
		keys = append(keys, string(k))
	}
	fmt.Fprintf(w, "  default_keys: %s\n", valueStyle.Render(strings.Join(keys, "")))
	fmt.Fprintf(w, "  refresh_interval_ms: %s\n", valueStyle.Render(strconv.Itoa(int(cfg.Preview.RefreshIntervalMs))))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("pane"))
	fmt.Fprintf(w, "  border: %s\n", valueStyle.Render(string(cfg.Pane.Border)))
	fmt.Fprintf(w, "  max_height: %s\n", valueStyle.Render(cfg.Pane.MaxHeight.String()))
	fmt.Fprintf(w, "  width: %s\n", valueStyle.Render(cfg.Pane.Width.String()))
	fmt.Fprintf(w, "  position: %s\n", valueStyle.Render(string(cfg.Pane.Position)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("keys"))
	bindings := cfg.Keys.Bindings()
	for _, b := range []struct {
		name string
		keys []string
	}{
		{"next", bindings.Next},
		{"previous", bindings.Previous},
		{"reveal", bindings.Reveal},
		{"suggest", bindings.Suggest},
		{"submit", bindings.Submit},
		{"abort", bindings.Abort},
	} {
		if len(b.keys) == 0 {
			fmt.Fprintf(w, "  %s: %s\n", b.name, SubtitleStyle.Render("(default)"))
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", b.name, valueStyle.Render(strings.Join(b.keys, ", ")))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  theme: %s\n", valueStyle.Render(string(cfg.UI.Theme)))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(strconv.FormatBool(cfg.UI.Verbose)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("store"))
	if cfg.Store.Path == "" {
		fmt.Fprintf(w, "  path: %s\n", SubtitleStyle.Render("(none configured)"))
	} else {
		fmt.Fprintf(w, "  path: %s\n", valueStyle.Render(cfg.Store.Path.String()))
	}

	return nil
}

func initConfig(app *App) error {
	path, created, err := config.CreateDefaultConfig("")
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	if !created {
		fmt.Fprintf(app.stdout, "%s Configuration already exists at %s\n", WarningStyle.Render("!"), path)
		return nil
	}

	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

func showConfigPath(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigFilePath("")
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(app.stdout, "Config file: %s\n", cfgPath)
	return nil
}

func setConfigValue(ctx context.Context, app *App, key, value string) error {
	cfg, err := app.Config.Load(ctx, app.loadOptions())
	if err != nil {
		return err
	}

	switch key {
	case "preview.mode":
		cfg.Preview.Mode = config.PreviewMode(value)
	case "preview.refresh_interval_ms":
		n, convErr := strconv.Atoi(value)
		if convErr != nil {
			return fmt.Errorf("invalid %s: %w", key, convErr)
		}
		cfg.Preview.RefreshIntervalMs = config.RefreshInterval(n)
	case "pane.border":
		cfg.Pane.Border = config.BorderStyle(value)
	case "pane.max_height", "pane.width":
		n, convErr := strconv.Atoi(value)
		if convErr != nil {
			return fmt.Errorf("invalid %s: %w", key, convErr)
		}
		if key == "pane.width" {
			cfg.Pane.Width = tui.TerminalDimension(n)
		} else {
			cfg.Pane.MaxHeight = tui.TerminalDimension(n)
		}
	case "pane.position":
		cfg.Pane.Position = config.PanePosition(value)
	case "ui.theme":
		cfg.UI.Theme = config.Theme(value)
	case "ui.verbose":
		cfg.UI.Verbose = value == "true" || value == "1"
	case "store.path":
		cfg.Store.Path = types.FilesystemPath(value)
	default:
		return fmt.Errorf("unknown configuration key: %s\nValid keys: %s", key, strings.Join(settableKeys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := app.Config.Source(app.loadOptions())
	if err != nil {
		return err
	}
	if path == "" {
		if path, err = config.ConfigFilePath(""); err != nil {
			return err
		}
	}
	if err := config.Save(cfg, path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(app.stdout, "%s Set %s = %s\n", SuccessStyle.Render("✓"), key, value)
	return nil
}
