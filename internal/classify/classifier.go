// SPDX-License-Identifier: MPL-2.0

package classify

import (
	"reflect"
	"sync"

	"github.com/regview/regview/internal/register"
)

type (
	// Predicate reports whether a value belongs to a tag.
	Predicate func(v any) bool

	// Rule pairs a predicate with the tag it assigns.
	Rule struct {
		Match Predicate
		Tag   TypeTag
	}

	// Classifier dispatches values to tags through an ordered rule list.
	// The zero value has no rules and classifies everything as Unknown; use New
	// or Default.
	Classifier struct {
		mu         sync.RWMutex
		builtin    []Rule
		extensions []Rule
	}
)

// New returns a classifier holding only the built-in structural rules.
func New() *Classifier {
	return &Classifier{builtin: builtinRules()}
}

// Default returns a classifier with the built-in rules followed by the standard
// extensions for frame layouts and keyboard macros.
func Default() *Classifier {
	c := New()
	c.Register(isType[register.FrameLayout], FrameLayout)
	c.Register(isType[register.KeyMacro], KeyMacro)
	return c
}

// Register appends an extension rule. Extension rules run after the built-in rules
// in registration order.
func (c *Classifier) Register(match Predicate, tag TypeTag) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.extensions = append(c.extensions, Rule{Match: match, Tag: tag})
}

// Classify returns the tag of the first rule matching v, or Unknown.
func (c *Classifier) Classify(v any) TypeTag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.builtin {
		if r.Match(v) {
			return r.Tag
		}
	}
	for _, r := range c.extensions {
		if r.Match(v) {
			return r.Tag
		}
	}
	return Unknown
}

func builtinRules() []Rule {
	return []Rule{
		{Match: isStringLike, Tag: Text},
		{Match: isNumeric, Tag: Number},
		{Match: isType[register.Location], Tag: Location},
		{Match: isType[register.BufferRef], Tag: BufferRef},
		{Match: isType[register.FilePath], Tag: FilePath},
		{Match: isType[register.FileQuery], Tag: FileQuery},
		{Match: isType[register.WindowLayout], Tag: WindowLayout},
	}
}

func isType[T any](v any) bool {
	switch v.(type) {
	case T, *T:
		return true
	}
	return false
}

func isStringLike(v any) bool {
	switch v.(type) {
	case register.Text, string, []byte:
		return true
	}
	return false
}

func isNumeric(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
