// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize bounds user files read by ParseAndDecode and ParseFile.
const DefaultMaxFileSize int64 = 4 << 20

type (
	// Option configures ParseAndDecode.
	Option func(*options)

	options struct {
		filename    string
		maxFileSize int64
		concrete    bool
	}
)

func defaultOptions() options {
	return options{
		maxFileSize: DefaultMaxFileSize,
		concrete:    true,
	}
}

// WithFilename names the user data in error messages.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithMaxFileSize overrides DefaultMaxFileSize.
func WithMaxFileSize(n int64) Option {
	return func(o *options) { o.maxFileSize = n }
}

// WithConcrete controls whether every value must be concrete after unification.
// It is on by default.
func WithConcrete(concrete bool) Option {
	return func(o *options) { o.concrete = concrete }
}
