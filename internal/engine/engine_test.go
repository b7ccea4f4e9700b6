// SPDX-License-Identifier: MPL-2.0

package engine_test

import (
	"errors"
	"testing"

	"github.com/regview/regview/internal/classify"
	"github.com/regview/regview/internal/descriptor"
	"github.com/regview/regview/internal/engine"
	"github.com/regview/regview/internal/preview"
	"github.com/regview/regview/internal/register"
	"github.com/regview/regview/internal/testutil"
)

var modifyStrict = descriptor.Descriptor{
	Types:  []classify.TypeTag{classify.Text, classify.Number},
	Prompt: "Increment entry '%s'",
	Action: descriptor.ActionModify,
	Strict: true,
}

func openPane(t *testing.T, keys ...register.Key) (*preview.Pane, *testutil.RecordingSurface) {
	t.Helper()
	surface := testutil.NewRecordingSurface()
	p := preview.NewPane(surface)
	lines := make([]preview.Line, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, preview.Line{Key: k, Text: "text: x"})
	}
	if !p.Show(lines) {
		t.Fatal("Show() failed")
	}
	return p, surface
}

func TestStrictTypedKeyConfirmsOnSubmit(t *testing.T) {
	t.Parallel()

	pane, surface := openPane(t, 'a', 'b')
	e := engine.New(engine.Params{Keys: []register.Key{'a', 'b'}, Descriptor: modifyStrict, Pane: pane})
	line := &testutil.Line{}

	if e.Step(line.Type("a")) {
		t.Fatal("Step() ended the session with the pane open")
	}
	if e.State() != engine.StatePrefix || e.Pattern() != "a" {
		t.Fatalf("state=%v pattern=%q, want prefix a", e.State(), e.Pattern())
	}
	if surface.Highlighted != 0 {
		t.Errorf("Highlighted = %d, want 0", surface.Highlighted)
	}
	if got := line.LastNotice(); got != "Increment entry 'a'" {
		t.Errorf("notice = %q", got)
	}

	if !e.Submit(line) {
		t.Fatal("Submit() did not end the session")
	}
	k, err := e.Outcome().Result()
	if err != nil || k != 'a' {
		t.Errorf("Result() = %q, %v; want a, nil", k, err)
	}
}

func TestStrictRejectsIneligibleKey(t *testing.T) {
	t.Parallel()

	pane, surface := openPane(t, 'a', 'b')
	e := engine.New(engine.Params{Keys: []register.Key{'a', 'b'}, Descriptor: modifyStrict, Pane: pane})
	line := &testutil.Line{}

	e.Step(line.Type("a"))
	line.SetContents("c")
	if e.Step(line) {
		t.Fatal("rejected pattern ended the session")
	}
	if e.State() != engine.StateNotMatching || e.Pattern() != "" {
		t.Errorf("state=%v pattern=%q, want not-matching and empty", e.State(), e.Pattern())
	}
	if line.Contents() != "" {
		t.Errorf("line = %q, want cleared", line.Contents())
	}
	if line.LastNotice() != engine.NoticeNotMatching {
		t.Errorf("notice = %q", line.LastNotice())
	}
	// The highlight from "a" is left alone on a rejected cycle.
	if surface.Highlighted != 0 {
		t.Errorf("Highlighted = %d, want 0", surface.Highlighted)
	}
}

func TestStrictNeverConfirmsIneligibleKey(t *testing.T) {
	t.Parallel()

	keys := []register.Key{'a', 'b'}
	inputs := []string{"c", "z", "ac", "ca", "zz", "aé", "!"}

	for _, noConfirm := range []bool{false, true} {
		for _, in := range inputs {
			e := engine.New(engine.Params{Keys: keys, Descriptor: modifyStrict, NoConfirm: noConfirm, ConfirmOnRepeat: true})
			line := &testutil.Line{Text: in}
			e.Step(line)
			if !e.Done() {
				e.Submit(line)
			}
			o := e.Outcome()
			if o.State == engine.StateConfirmed && o.Key != 'a' && o.Key != 'b' {
				t.Errorf("input %q (noConfirm=%v) confirmed ineligible key %q", in, noConfirm, o.Key)
			}
		}
	}
}

func TestNonStrictAcceptsAnyKey(t *testing.T) {
	t.Parallel()

	e := engine.New(engine.Params{Keys: []register.Key{'a'}, Descriptor: descriptor.Default()})
	for _, in := range []string{"q", "Z", "7", "ab"} {
		line := &testutil.Line{Text: in}
		e.Step(line)
		for _, n := range line.Notices {
			if n == engine.NoticeNotMatching {
				t.Errorf("input %q produced a not-matching notice", in)
			}
		}
		if e.Done() {
			t.Fatalf("input %q ended a set session without a pane and without no-confirm", in)
		}
	}
	if e.Pattern() != "b" {
		t.Errorf("Pattern() = %q, want b (last character of the burst)", e.Pattern())
	}
}

func TestOverflowBurst(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		desc        descriptor.Descriptor
		raw         string
		wantPattern string
	}{
		{name: "strict adopts eligible incoming", desc: modifyStrict, raw: "ab", wantPattern: "b"},
		{name: "strict reverts to previous", desc: modifyStrict, raw: "az", wantPattern: "a"},
		{name: "non-strict adopts incoming", desc: descriptor.Default(), raw: "az", wantPattern: "z"},
		{name: "long burst keeps last character", desc: descriptor.Default(), raw: "xyz", wantPattern: "z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := engine.New(engine.Params{Keys: []register.Key{'a', 'b'}, Descriptor: tt.desc})
			line := &testutil.Line{Text: tt.raw}
			e.Step(line)
			if e.Pattern() != tt.wantPattern || line.Contents() != tt.wantPattern {
				t.Errorf("pattern=%q line=%q, want %q", e.Pattern(), line.Contents(), tt.wantPattern)
			}
		})
	}
}

func TestConfirmOnRepeat(t *testing.T) {
	t.Parallel()

	store := register.NewMemStore(register.Entry{Key: 'a', Value: register.Text("x")})
	pane, _ := openPane(t, 'a')
	e := engine.New(engine.Params{
		Keys:            store.Keys(),
		Descriptor:      modifyStrict,
		Pane:            pane,
		ConfirmOnRepeat: true,
	})

	if !e.Step(&testutil.Line{Text: "aa"}) {
		t.Fatal("repeated key did not end the session")
	}
	if k, err := e.Outcome().Result(); err != nil || k != 'a' {
		t.Errorf("Result() = %q, %v; want a, nil", k, err)
	}
}

func TestConfirmOnRepeatNeedsSameKey(t *testing.T) {
	t.Parallel()

	pane, _ := openPane(t, 'a', 'b')
	e := engine.New(engine.Params{
		Keys:            []register.Key{'a', 'b'},
		Descriptor:      modifyStrict,
		Pane:            pane,
		ConfirmOnRepeat: true,
	})
	if e.Step(&testutil.Line{Text: "ab"}) {
		t.Error("different keys ended the session")
	}

	plain := engine.New(engine.Params{Keys: []register.Key{'a'}, Descriptor: modifyStrict, Pane: pane})
	if plain.Step(&testutil.Line{Text: "aa"}) {
		t.Error("repeat confirmed without confirm-on-repeat")
	}
}

func TestNoPaneConfirmsImmediately(t *testing.T) {
	t.Parallel()

	jump := descriptor.Descriptor{
		Types:  []classify.TypeTag{classify.Location},
		Prompt: "Jump to entry '%s'",
		Action: descriptor.ActionJump,
		Strict: true,
	}

	tests := []struct {
		name      string
		desc      descriptor.Descriptor
		noConfirm bool
		wantDone  bool
	}{
		{name: "jump", desc: jump, wantDone: true},
		{name: "modify waits", desc: modifyStrict, wantDone: false},
		{name: "modify with no-confirm", desc: modifyStrict, noConfirm: true, wantDone: true},
		{name: "set with no-confirm", desc: descriptor.Default(), noConfirm: true, wantDone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := engine.New(engine.Params{Keys: []register.Key{'a'}, Descriptor: tt.desc, NoConfirm: tt.noConfirm})
			line := &testutil.Line{Text: "a"}
			if got := e.Step(line); got != tt.wantDone {
				t.Fatalf("Step() = %v, want %v", got, tt.wantDone)
			}
			if tt.desc.Message('a') != line.LastNotice() {
				t.Errorf("notice = %q, want prompt message", line.LastNotice())
			}
		})
	}
}

func TestNoPaneIneligibleKey(t *testing.T) {
	t.Parallel()

	lenient := func(action descriptor.ActionKind) descriptor.Descriptor {
		return descriptor.Descriptor{
			Types:  []classify.TypeTag{classify.Text},
			Prompt: "Use entry '%s'",
			Action: action,
		}
	}

	tests := []struct {
		name       string
		desc       descriptor.Descriptor
		noConfirm  bool
		wantDone   bool
		wantNotice string
	}{
		{name: "insert waits", desc: lenient(descriptor.ActionInsert), wantNotice: "Entry 'z' is empty"},
		{name: "jump waits", desc: lenient(descriptor.ActionJump), noConfirm: true, wantNotice: "Entry 'z' is empty"},
		{name: "view waits", desc: lenient(descriptor.ActionView), wantNotice: "Entry 'z' is empty"},
		{name: "modify waits", desc: lenient(descriptor.ActionModify), noConfirm: true},
		{name: "set waits for submit", desc: descriptor.Default(), wantNotice: ""},
		{name: "set with no-confirm takes a fresh key", desc: descriptor.Default(), noConfirm: true, wantDone: true, wantNotice: "Overwrite entry 'z'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := engine.New(engine.Params{Keys: []register.Key{'a'}, Descriptor: tt.desc, NoConfirm: tt.noConfirm})
			line := &testutil.Line{Text: "z"}
			if got := e.Step(line); got != tt.wantDone {
				t.Fatalf("Step() = %v, want %v", got, tt.wantDone)
			}
			if got := line.LastNotice(); got != tt.wantNotice {
				t.Errorf("notice = %q, want %q", got, tt.wantNotice)
			}
			if !tt.wantDone && e.Pattern() != "z" {
				t.Errorf("Pattern() = %q, want z kept for an explicit submit", e.Pattern())
			}
		})
	}
}

func TestPassivePaneBehavesLikeNoPane(t *testing.T) {
	t.Parallel()

	surface := testutil.NewRecordingSurface()
	pane := preview.NewPassivePane(surface)
	pane.Show([]preview.Line{{Key: 'a', Text: "text: x"}})

	e := engine.New(engine.Params{Keys: []register.Key{'a'}, Descriptor: modifyStrict, Pane: pane, NoConfirm: true})
	if !e.Step(&testutil.Line{Text: "a"}) {
		t.Fatal("passive pane with no-confirm did not complete on first key")
	}
	if surface.Highlighted != -1 {
		t.Errorf("passive pane was highlighted at %d", surface.Highlighted)
	}
}

func TestEmptyEntryNotice(t *testing.T) {
	t.Parallel()

	// Eligible when the session started, removed from the pane since.
	pane, surface := openPane(t, 'b')
	e := engine.New(engine.Params{Keys: []register.Key{'a', 'b'}, Descriptor: modifyStrict, Pane: pane})
	line := &testutil.Line{Text: "a"}

	if e.Step(line) {
		t.Fatal("Step() ended the session")
	}
	if got, want := line.LastNotice(), "Entry 'a' is empty"; got != want {
		t.Errorf("notice = %q, want %q", got, want)
	}
	if surface.Highlighted != -1 {
		t.Errorf("Highlighted = %d, want none", surface.Highlighted)
	}
}

func TestClearingLineClearsHighlight(t *testing.T) {
	t.Parallel()

	pane, surface := openPane(t, 'a')
	e := engine.New(engine.Params{Keys: []register.Key{'a'}, Descriptor: modifyStrict, Pane: pane})
	line := &testutil.Line{Text: "a"}
	e.Step(line)
	line.SetContents("")
	e.Step(line)

	if e.State() != engine.StateEmpty || surface.Highlighted != -1 {
		t.Errorf("state=%v highlighted=%d, want empty with no highlight", e.State(), surface.Highlighted)
	}
}

func TestSubmitEmpty(t *testing.T) {
	t.Parallel()

	e := engine.New(engine.Params{Keys: []register.Key{'a'}, Descriptor: modifyStrict})
	if !e.Submit(&testutil.Line{}) {
		t.Fatal("Submit() on empty line did not end the session")
	}
	if e.State() != engine.StateAborted {
		t.Errorf("State() = %v, want aborted", e.State())
	}
	_, err := e.Outcome().Result()
	var ve *engine.ValidationError
	if !errors.As(err, &ve) || !ve.EmptySubmit() || !errors.Is(err, engine.ErrValidation) {
		t.Errorf("Result() error = %v, want empty-submit ValidationError", err)
	}
}

func TestAbort(t *testing.T) {
	t.Parallel()

	e := engine.New(engine.Params{Keys: []register.Key{'a'}, Descriptor: modifyStrict})
	e.Abort()
	if _, err := e.Outcome().Result(); !errors.Is(err, engine.ErrAborted) {
		t.Errorf("Result() error = %v, want ErrAborted", err)
	}

	// Later input is ignored once the session has ended.
	if !e.Step(&testutil.Line{Text: "a"}) || e.State() != engine.StateAborted {
		t.Error("Step() after Abort() changed the outcome")
	}
}

func TestCheckEligible(t *testing.T) {
	t.Parallel()

	insertAll := descriptor.Descriptor{
		Types:  []classify.TypeTag{classify.All},
		Prompt: "Insert entry '%s'",
		Action: descriptor.ActionInsert,
		Strict: true,
	}

	err := engine.CheckEligible(insertAll, nil)
	if err == nil || err.Error() != "no entry suitable for insert" {
		t.Fatalf("CheckEligible() = %v, want no entry suitable for insert", err)
	}
	var ve *engine.ValidationError
	if !errors.As(err, &ve) || ve.Action != descriptor.ActionInsert || ve.EmptySubmit() {
		t.Errorf("error details = %+v", ve)
	}

	if err := engine.CheckEligible(insertAll, []register.Key{'a'}); err != nil {
		t.Errorf("CheckEligible() with keys = %v", err)
	}
	if err := engine.CheckEligible(descriptor.Default(), nil); err != nil {
		t.Errorf("CheckEligible() for set action = %v", err)
	}
	if err := engine.CheckEligible(modifyStrict, nil); err != nil {
		t.Errorf("CheckEligible() for modify action = %v", err)
	}
}
