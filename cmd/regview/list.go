// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/regview/regview/internal/descriptor"
	"github.com/regview/regview/internal/filter"
	"github.com/regview/regview/internal/issue"
	"github.com/regview/regview/internal/preview"

	"github.com/spf13/cobra"
)

func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [command-id]",
		Short: "List the entries a command accepts",
		Long: `List the entries a command accepts, one line per entry, in the same
form the preview pane shows them. The command identity defaults to insert-entry.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.loadStore()
			if err != nil {
				return err
			}
			d := app.Registry.Lookup(commandArg(args))

			r := preview.Renderer{Store: store, Width: int(app.config().Pane.Width)}
			lines := r.Lines(filter.Entries(store, d.Types, app.Classifier))
			if len(lines) == 0 {
				fmt.Fprintln(app.stderr, SubtitleStyle.Render("(no eligible entries)"))
				return nil
			}
			for _, l := range lines {
				fmt.Fprintln(app.stdout, l.String())
			}
			return nil
		},
	}
}

func newCommandsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "commands [command-id]",
		Short: "List command descriptors",
		Long: `List the registered command descriptors, or show the policy one command
resolves to. Set-style commands are listed with the default policy.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return describeCommand(app, descriptor.CommandID(args[0]))
			}

			for _, reg := range app.Registry.All() {
				fmt.Fprintln(app.stdout, formatDescriptor(reg.Command, reg.Descriptor))
			}
			for _, id := range descriptor.SetStyleCommands() {
				if app.Registry.Registered(id) {
					continue
				}
				fmt.Fprintln(app.stdout, formatDescriptor(id, descriptor.Default())+" "+SubtitleStyle.Render("(default)"))
			}
			return nil
		},
	}
}

func describeCommand(app *App, id descriptor.CommandID) error {
	if !app.Registry.Registered(id) && !slices.Contains(descriptor.SetStyleCommands(), id) {
		return issue.NewErrorContext().
			WithOperation("describe command").
			WithResource(string(id)).
			WithSuggestion("Run 'regview commands' to list the known command identities").
			WithIssue(issue.CommandNotFoundId).
			Wrap(errors.New("no descriptor registered")).
			BuildError()
	}
	d := app.Registry.Lookup(id)
	fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("command"), id)
	fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("action"), d.Action)
	fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("types"), joinTypes(d))
	fmt.Fprintf(app.stdout, "%s: %v\n", CmdStyle.Render("strict"), d.Strict)
	fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("prompt"), d.Prompt)
	return nil
}

// formatDescriptor renders one descriptor as a single listing line.
func formatDescriptor(id descriptor.CommandID, d descriptor.Descriptor) string {
	strictness := "lenient"
	if d.Strict {
		strictness = "strict"
	}
	return fmt.Sprintf("%-24s %-7s %-8s %s", id, d.Action, strictness, joinTypes(d))
}

func joinTypes(d descriptor.Descriptor) string {
	tags := make([]string, 0, len(d.Types))
	for _, t := range d.Types {
		tags = append(tags, t.String())
	}
	return strings.Join(tags, ",")
}
