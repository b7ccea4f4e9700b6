// SPDX-License-Identifier: MPL-2.0

package classify

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	// Text is a string-like value.
	Text TypeTag = "text"
	// Number is a numeric value.
	Number TypeTag = "number"
	// Location is a position marker inside a buffer.
	Location TypeTag = "location"
	// BufferRef refers to a buffer by name.
	BufferRef TypeTag = "buffer"
	// FilePath refers to a file.
	FilePath TypeTag = "file"
	// FileQuery refers to a file plus a query.
	FileQuery TypeTag = "file-query"
	// WindowLayout is a window-arrangement snapshot.
	WindowLayout TypeTag = "window"
	// FrameLayout is a frame-arrangement snapshot.
	FrameLayout TypeTag = "frame"
	// KeyMacro is a recorded keyboard macro.
	KeyMacro TypeTag = "kmacro"

	// All is the pseudo-tag that accepts every value. It is only meaningful in
	// accepted-type sets, never as the result of Classify.
	All TypeTag = "all"
	// Unknown is returned by Classify when no rule matches.
	Unknown TypeTag = "unknown"
)

// ErrInvalidTypeTag is the sentinel error wrapped by InvalidTypeTagError.
var ErrInvalidTypeTag = errors.New("invalid type tag")

type (
	// TypeTag is the semantic class of an entry value.
	TypeTag string

	// InvalidTypeTagError is returned when a TypeTag is empty or malformed.
	// It wraps ErrInvalidTypeTag for errors.Is() compatibility.
	InvalidTypeTagError struct {
		Value TypeTag
	}
)

// String returns the tag name.
func (t TypeTag) String() string { return string(t) }

// Validate accepts any non-empty lowercase tag name so that extension tags do not
// have to be declared here. Unknown is rejected since it names the absence of a tag.
func (t TypeTag) Validate() error {
	s := string(t)
	if s == "" || s != strings.ToLower(strings.TrimSpace(s)) || strings.ContainsAny(s, " ,") || t == Unknown {
		return &InvalidTypeTagError{Value: t}
	}
	return nil
}

// Builtin returns the tags known without extension, in classification order.
func Builtin() []TypeTag {
	return []TypeTag{Text, Number, Location, BufferRef, FilePath, FileQuery, WindowLayout, FrameLayout, KeyMacro}
}

// ParseTags parses a comma-separated tag list such as "text,number".
func ParseTags(s string) ([]TypeTag, error) {
	var tags []TypeTag
	for part := range strings.SplitSeq(s, ",") {
		tag := TypeTag(strings.TrimSpace(part))
		if tag == "" {
			continue
		}
		if err := tag.Validate(); err != nil {
			return nil, err
		}
		if !slices.Contains(tags, tag) {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

// Accepts reports whether tag is admitted by the accepted set.
// A set containing All admits everything, including Unknown.
func Accepts(accepted []TypeTag, tag TypeTag) bool {
	return slices.Contains(accepted, All) || slices.Contains(accepted, tag)
}

// Error implements the error interface for InvalidTypeTagError.
func (e *InvalidTypeTagError) Error() string {
	return fmt.Sprintf("invalid type tag %q", string(e.Value))
}

// Unwrap returns ErrInvalidTypeTag for errors.Is() compatibility.
func (e *InvalidTypeTagError) Unwrap() error { return ErrInvalidTypeTag }
