// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/regview/regview/internal/descriptor"
	"github.com/regview/regview/internal/engine"
	"github.com/regview/regview/internal/issue"
	"github.com/regview/regview/internal/register"
	"github.com/regview/regview/internal/replay"
	"github.com/regview/regview/internal/session"
	"github.com/regview/regview/internal/tui"
	"github.com/regview/regview/internal/watch"
	"github.com/regview/regview/pkg/types"

	"github.com/spf13/cobra"
)

// pickRequest is one picking session as requested on the command line.
type pickRequest struct {
	command descriptor.CommandID
	prompt  string
	// script is played instead of reading the terminal when replayed is set.
	script   string
	replayed bool
	// watch reloads the snapshot into the store while the session runs.
	watch bool
}

func newPickCommand(app *App) *cobra.Command {
	var req pickRequest

	cmd := &cobra.Command{
		Use:   "pick [command-id]",
		Short: "Pick an entry key for a command",
		Long: `Pick an entry key for a command and print it to stdout.

The command identity selects which entries are eligible and how strict the
match is; it defaults to insert-entry. Commands without a descriptor accept
any key. Run 'regview commands' to list the registered descriptors.

The picker is drawn on stderr. Use --keys to play a key script instead, for
example 'ab<backspace><enter>'. Named keys are written in angle brackets and
a literal '<' is written '<<'.

Exit status is 1 when the session is aborted and 2 when no entry is eligible
or an empty line is submitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.command = commandArg(args)
			req.replayed = cmd.Flags().Changed("keys")

			k, _, err := app.pick(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, k.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&req.prompt, "prompt", "", "prompt shown before the input line (default \""+session.DefaultPrompt+"\")")
	cmd.Flags().StringVar(&req.script, "keys", "", "play a key script instead of reading the terminal")
	cmd.Flags().BoolVarP(&req.watch, "watch", "w", false, "reload the entry store when its file changes")

	return cmd
}

func commandArg(args []string) descriptor.CommandID {
	if len(args) == 0 {
		return descriptor.CommandInsert
	}
	return descriptor.CommandID(args[0])
}

// pick runs one session and returns the confirmed key with the store it was
// picked from.
func (a *App) pick(ctx context.Context, req pickRequest) (register.Key, register.Store, error) {
	store, err := a.loadStore()
	if err != nil {
		return 0, nil, err
	}
	opts, err := a.sessionOptions()
	if err != nil {
		return 0, nil, err
	}
	km, err := a.keymap()
	if err != nil {
		return 0, nil, err
	}

	var host session.Host
	if req.replayed {
		h, scriptErr := replay.NewHost(req.script, km, a.stderr)
		if scriptErr != nil {
			return 0, nil, issue.NewErrorContext().
				WithOperation("parse key script").
				WithResource(req.script).
				WithSuggestion("Write named keys in angle brackets, e.g. <enter> or <backspace>").
				WithSuggestion("Write a literal '<' as '<<'").
				Wrap(scriptErr).
				BuildError()
		}
		host = h
		opts.Unattended = true
	} else {
		if !a.Interactive() {
			return 0, nil, issue.NewErrorContext().
				WithOperation("start picker").
				WithSuggestion("Run regview from an interactive terminal").
				WithSuggestion("Pass --keys to play a key script instead").
				WithIssue(issue.NotInteractiveId).
				Wrap(errors.New("stdin is not a terminal")).
				BuildError()
		}
		hopts, optsErr := a.hostOptions(km)
		if optsErr != nil {
			return 0, nil, optsErr
		}
		host = tui.NewHost(hopts)
	}

	if !a.Registry.Registered(req.command) && !slices.Contains(descriptor.SetStyleCommands(), req.command) {
		slog.Warn("command has no descriptor; any key is accepted", "command", req.command)
	}

	if req.watch {
		stop, watchErr := a.watchStore(ctx, store)
		if watchErr != nil {
			return 0, nil, watchErr
		}
		defer stop()
	}

	o := session.NewOrchestrator(store, a.Registry, a.Classifier, host, opts)
	k, err := o.Start(ctx, req.command, req.prompt)
	if err != nil {
		return 0, nil, sessionError(err)
	}
	slog.Debug("entry picked", "command", req.command, "key", k.String())
	return k, store, nil
}

// watchStore follows the snapshot file until the returned stop is called.
func (a *App) watchStore(ctx context.Context, store register.Store) (stop func(), err error) {
	mem, ok := store.(*register.MemStore)
	path := a.storePath()
	if !ok || path == "" {
		slog.Warn("--watch needs an entry store file; ignoring")
		return func() {}, nil
	}

	w, err := watch.New(watch.Config{Path: path}, mem)
	if err != nil {
		return nil, issue.WrapWithContext(err, "watch entry store", path.String())
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if runErr := w.Run(ctx); runErr != nil {
			slog.Warn("entry store watcher stopped", "error", runErr)
		}
	}()
	return func() {
		cancel()
		<-done
	}, nil
}

// sessionError maps a session failure to an exit code and a user-facing error.
func sessionError(err error) error {
	var ve *engine.ValidationError
	switch {
	case errors.Is(err, engine.ErrAborted):
		return &ExitError{Code: types.ExitAborted, Err: err}
	case errors.As(err, &ve):
		ec := issue.NewErrorContext().WithOperation("pick entry")
		if ve.EmptySubmit() {
			ec = ec.WithIssue(issue.EmptySubmitId).
				WithSuggestion("Type an entry key before submitting")
		} else {
			ec = ec.WithIssue(issue.NoEntrySuitableId).
				WithSuggestion("Run 'regview list' to see which entries exist").
				WithSuggestion("Load a store with --store that holds an entry of the accepted type")
		}
		return &ExitError{Code: types.ExitValidation, Err: ec.Wrap(err).BuildError()}
	case errors.Is(err, session.ErrSessionActive):
		return issue.NewErrorContext().
			WithOperation("pick entry").
			WithIssue(issue.SessionActiveId).
			Wrap(err).
			BuildError()
	default:
		return issue.WrapWithOperation(err, "pick entry")
	}
}
