// SPDX-License-Identifier: MPL-2.0

package register

import (
	"errors"
	"testing"
)

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    Key
		wantErr bool
	}{
		{name: "lowercase letter", in: "a", want: 'a'},
		{name: "digit", in: "7", want: '7'},
		{name: "punctuation", in: "?", want: '?'},
		{name: "multibyte letter", in: "é", want: 'é'},
		{name: "empty", in: "", wantErr: true},
		{name: "two characters", in: "ab", wantErr: true},
		{name: "control character", in: "\t", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseKey(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidKey) {
					t.Errorf("ParseKey(%q) error should wrap ErrInvalidKey, got %v", tt.in, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	t.Parallel()
	if got := Key('x').String(); got != "x" {
		t.Errorf("Key.String() = %q, want %q", got, "x")
	}
}
