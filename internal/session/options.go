// SPDX-License-Identifier: MPL-2.0

package session

import (
	"github.com/regview/regview/internal/preview"
	"github.com/regview/regview/internal/register"
)

// DefaultPrompt is used when Start is called without a prompt.
const DefaultPrompt = "Entry: "

// Options configures an Orchestrator.
type Options struct {
	Mode PreviewMode
	// DefaultKeys are the candidates offered by EventSuggest for set actions.
	DefaultKeys []register.Key
	// Unattended disables navigation and reveal, e.g. during replay.
	Unattended bool
	// Width truncates pane lines; 0 disables truncation.
	Width int
	// Describe formats entry values; nil means register.Describe.
	Describe preview.Describer
}

// DefaultOptions returns options with ModeAlways and the keys a to z.
func DefaultOptions() Options {
	return Options{
		Mode:        ModeAlways,
		DefaultKeys: DefaultKeys(),
	}
}

// DefaultKeys returns the lowercase letters a to z.
func DefaultKeys() []register.Key {
	keys := make([]register.Key, 0, 26)
	for r := 'a'; r <= 'z'; r++ {
		keys = append(keys, register.Key(r))
	}
	return keys
}
