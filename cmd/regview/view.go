// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/regview/regview/internal/descriptor"
	"github.com/regview/regview/internal/register"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const viewWordWrap = 80

func newViewCommand(app *App) *cobra.Command {
	req := pickRequest{command: descriptor.CommandView}

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Pick an entry and show its contents",
		Long: `Pick an entry with the view-entry policy and render its contents.

Any entry type can be viewed; the key must name an existing entry.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.replayed = cmd.Flags().Changed("keys")

			k, store, err := app.pick(cmd.Context(), req)
			if err != nil {
				return err
			}
			v, _ := store.Get(k)
			tag := app.Classifier.Classify(v)

			r, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle(app.viewStyle()),
				glamour.WithWordWrap(viewWordWrap),
			)
			if err != nil {
				return err
			}
			out, err := r.Render(entryMarkdown(k, tag.String(), v))
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.prompt, "prompt", "", "prompt shown before the input line")
	cmd.Flags().StringVar(&req.script, "keys", "", "play a key script instead of reading the terminal")
	cmd.Flags().BoolVarP(&req.watch, "watch", "w", false, "reload the entry store when its file changes")

	return cmd
}

// viewStyle picks the glamour style for stdout.
func (a *App) viewStyle() string {
	if f, ok := a.stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "dark"
	}
	return "notty"
}

// entryMarkdown renders one entry as a Markdown document.
func entryMarkdown(k register.Key, tag string, v any) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Entry `%s`\n\n", k)
	fmt.Fprintf(&sb, "**Type:** %s\n\n", tag)

	switch val := v.(type) {
	case register.Text:
		writeFenced(&sb, string(val))
	case string:
		writeFenced(&sb, val)
	case register.Number:
		fmt.Fprintf(&sb, "Value: %d\n", int64(val))
	case register.Location:
		fmt.Fprintf(&sb, "- Buffer: %s\n- Offset: %d\n", val.Buffer, val.Offset)
	case register.BufferRef:
		fmt.Fprintf(&sb, "- Buffer: %s\n", val.Name)
	case register.FilePath:
		fmt.Fprintf(&sb, "- File: %s\n", val.Path)
	case register.FileQuery:
		fmt.Fprintf(&sb, "- File: %s\n\n", val.Path)
		writeFenced(&sb, val.Query)
	case register.WindowLayout:
		fmt.Fprintf(&sb, "- Windows: %d\n- Selected: %s\n", val.Windows, val.Selected)
	case register.FrameLayout:
		fmt.Fprintf(&sb, "- Frames: %d\n- Windows: %d\n", val.Frames, val.Windows)
	case register.KeyMacro:
		for _, key := range val.Keys {
			fmt.Fprintf(&sb, "- `%s`\n", key)
		}
	default:
		sb.WriteString(register.Describe(v))
		sb.WriteString("\n")
	}
	return sb.String()
}

func writeFenced(sb *strings.Builder, s string) {
	sb.WriteString("```\n")
	sb.WriteString(s)
	if !strings.HasSuffix(s, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("```\n")
}
