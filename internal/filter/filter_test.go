// SPDX-License-Identifier: MPL-2.0

package filter

import (
	"slices"
	"testing"

	"github.com/regview/regview/internal/classify"
	"github.com/regview/regview/internal/register"
)

func sampleStore() *register.MemStore {
	return register.NewMemStore(
		register.Entry{Key: 'a', Value: register.Text("hi")},
		register.Entry{Key: 'b', Value: register.Number(3)},
		register.Entry{Key: 'c', Value: register.BufferRef{Name: "main.go"}},
		register.Entry{Key: 'd', Value: register.Location{Buffer: "main.go", Offset: 4}},
		register.Entry{Key: 'e', Value: struct{}{}},
		register.Entry{Key: 'f', Value: register.Text("later")},
	)
}

func TestEntries(t *testing.T) {
	t.Parallel()

	c := classify.Default()
	tests := []struct {
		name     string
		accepted []classify.TypeTag
		want     []register.Key
	}{
		{name: "all keeps full order", accepted: []classify.TypeTag{classify.All}, want: []register.Key{'a', 'b', 'c', 'd', 'e', 'f'}},
		{name: "all mixed with tags", accepted: []classify.TypeTag{classify.Text, classify.All}, want: []register.Key{'a', 'b', 'c', 'd', 'e', 'f'}},
		{name: "text and number", accepted: []classify.TypeTag{classify.Text, classify.Number}, want: []register.Key{'a', 'b', 'f'}},
		{name: "tag order does not matter", accepted: []classify.TypeTag{classify.Number, classify.Text}, want: []register.Key{'a', 'b', 'f'}},
		{name: "buffer only", accepted: []classify.TypeTag{classify.BufferRef}, want: []register.Key{'c'}},
		{name: "nothing matches", accepted: []classify.TypeTag{classify.KeyMacro}, want: []register.Key{}},
		{name: "empty accepted set", accepted: nil, want: []register.Key{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Keys(Entries(sampleStore(), tt.accepted, c))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Entries(%v) keys = %q, want %q", tt.accepted, got, tt.want)
			}
		})
	}
}

func TestEntries_MatchesClassification(t *testing.T) {
	t.Parallel()

	c := classify.Default()
	s := sampleStore()
	accepted := []classify.TypeTag{classify.Text, classify.Location}

	got := Entries(s, accepted, c)
	for _, e := range got {
		if tag := c.Classify(e.Value); !slices.Contains(accepted, tag) {
			t.Errorf("entry %q classified %q is not accepted", e.Key, tag)
		}
	}
	for _, e := range register.Entries(s) {
		tag := c.Classify(e.Value)
		in := slices.ContainsFunc(got, func(g register.Entry) bool { return g.Key == e.Key })
		if slices.Contains(accepted, tag) != in {
			t.Errorf("entry %q (%q): included = %v", e.Key, tag, in)
		}
	}
}

func TestEntries_Idempotent(t *testing.T) {
	t.Parallel()

	c := classify.Default()
	accepted := []classify.TypeTag{classify.Text, classify.Number}
	once := Entries(sampleStore(), accepted, c)
	twice := Entries(register.NewMemStore(once...), accepted, c)

	if !slices.Equal(Keys(once), Keys(twice)) {
		t.Errorf("filtering twice = %q, want %q", Keys(twice), Keys(once))
	}
}

func TestEntries_EmptyStore(t *testing.T) {
	t.Parallel()

	got := Entries(register.NewMemStore(), []classify.TypeTag{classify.All}, classify.Default())
	if len(got) != 0 {
		t.Errorf("Entries(empty) = %v, want none", got)
	}
}
