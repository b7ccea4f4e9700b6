// SPDX-License-Identifier: MPL-2.0

package register

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidKey is the sentinel error wrapped by InvalidKeyError.
var ErrInvalidKey = errors.New("invalid entry key")

type (
	// Key addresses an entry. It is a single printable character.
	Key rune

	// InvalidKeyError is returned when a Key is zero or not printable.
	// It wraps ErrInvalidKey for errors.Is() compatibility.
	InvalidKeyError struct {
		Value Key
	}
)

// String returns the key as a one-character string.
func (k Key) String() string { return string(rune(k)) }

// Validate returns an error if the key is zero, a control character or not valid UTF-8.
func (k Key) Validate() error {
	r := rune(k)
	if r == 0 || !utf8.ValidRune(r) || unicode.IsControl(r) || !unicode.IsPrint(r) {
		return &InvalidKeyError{Value: k}
	}
	return nil
}

// ParseKey converts a one-character string into a Key.
func ParseKey(s string) (Key, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q must be exactly one character", ErrInvalidKey, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	k := Key(r)
	if err := k.Validate(); err != nil {
		return 0, err
	}
	return k, nil
}

// Error implements the error interface for InvalidKeyError.
func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid entry key %q: must be a single printable character", rune(e.Value))
}

// Unwrap returns ErrInvalidKey for errors.Is() compatibility.
func (e *InvalidKeyError) Unwrap() error { return ErrInvalidKey }
