// SPDX-License-Identifier: MPL-2.0

package replay

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// KeyBackspace deletes the last character of the input line.
const KeyBackspace = "backspace"

// ErrInvalidScript is the sentinel error wrapped by InvalidScriptError.
var ErrInvalidScript = errors.New("invalid key script")

type (
	// Token is one script step: a literal character or a named key.
	Token struct {
		Char rune
		Name string
		// Offset is the rune offset of the token in the script.
		Offset int
	}

	// InvalidScriptError is returned for a malformed key script.
	// It wraps ErrInvalidScript for errors.Is() compatibility.
	InvalidScriptError struct {
		Offset int
		Reason string
	}
)

// Named reports whether the token is a named key.
func (t Token) Named() bool { return t.Name != "" }

// String renders the token in script form.
func (t Token) String() string {
	switch {
	case t.Named():
		return "<" + t.Name + ">"
	case t.Char == '<':
		return "<<"
	default:
		return string(t.Char)
	}
}

// Parse splits a key script into tokens.
func Parse(script string) ([]Token, error) {
	var tokens []Token
	runes := []rune(script)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '<' {
			tokens = append(tokens, Token{Char: r, Offset: i})
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '<' {
			tokens = append(tokens, Token{Char: '<', Offset: i})
			i++
			continue
		}
		end := slices.Index(runes[i+1:], '>')
		if end < 0 {
			return nil, &InvalidScriptError{Offset: i, Reason: "unterminated key name"}
		}
		name := strings.ToLower(strings.TrimSpace(string(runes[i+1 : i+1+end])))
		if name == "" {
			return nil, &InvalidScriptError{Offset: i, Reason: "empty key name"}
		}
		tokens = append(tokens, Token{Name: name, Offset: i})
		i += end + 1
	}
	return tokens, nil
}

// Error implements the error interface.
func (e *InvalidScriptError) Error() string {
	return fmt.Sprintf("key script offset %d: %s", e.Offset, e.Reason)
}

// Unwrap returns ErrInvalidScript for errors.Is() compatibility.
func (e *InvalidScriptError) Unwrap() error { return ErrInvalidScript }
