// SPDX-License-Identifier: MPL-2.0

// Package filter projects an entry store down to the entries a command accepts.
package filter

import (
	"github.com/regview/regview/internal/classify"
	"github.com/regview/regview/internal/register"
)

// Classifier is the part of classify.Classifier the filter needs.
type Classifier interface {
	Classify(v any) classify.TypeTag
}

// Entries returns the entries of s whose class is in accepted, in store order.
// When accepted contains classify.All the whole store is returned unchanged.
// Keys that vanish between listing and reading are skipped.
func Entries(s register.Store, accepted []classify.TypeTag, c Classifier) []register.Entry {
	all := register.Entries(s)
	if classify.Accepts(accepted, classify.All) {
		return all
	}
	out := make([]register.Entry, 0, len(all))
	for _, e := range all {
		if classify.Accepts(accepted, c.Classify(e.Value)) {
			out = append(out, e)
		}
	}
	return out
}

// Keys returns the keys of entries in order.
func Keys(entries []register.Entry) []register.Key {
	keys := make([]register.Key, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}
