// SPDX-License-Identifier: MPL-2.0

package descriptor

import (
	"slices"
	"strings"
	"sync"

	"github.com/regview/regview/internal/classify"
)

// Standard command identities.
const (
	CommandInsert        CommandID = "insert-entry"
	CommandJump          CommandID = "jump-to-entry"
	CommandView          CommandID = "view-entry"
	CommandAppend        CommandID = "append-to-entry"
	CommandPrepend       CommandID = "prepend-to-entry"
	CommandIncrement     CommandID = "increment-entry"
	CommandCopy          CommandID = "copy-to-entry"
	CommandPoint         CommandID = "point-to-entry"
	CommandNumber        CommandID = "number-to-entry"
	CommandWindowLayout  CommandID = "window-layout-to-entry"
	CommandFrameLayout   CommandID = "frame-layout-to-entry"
	CommandKeyMacro      CommandID = "kmacro-to-entry"
	CommandCopyRectangle CommandID = "copy-rectangle-to-entry"
)

type (
	// CommandID names a calling command.
	CommandID string

	// Registry maps command identities to descriptors. It is safe for concurrent use.
	Registry struct {
		mu          sync.RWMutex
		descriptors map[CommandID]Descriptor
	}

	// Registration is one (command, descriptor) pair as listed by Registry.All.
	Registration struct {
		Command    CommandID
		Descriptor Descriptor
	}
)

// NewRegistry returns an empty registry; every lookup resolves to Default.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[CommandID]Descriptor)}
}

// Builtin returns a registry holding the descriptors of the standard commands.
// Set-style commands (copy, point, number, layouts, macros) are not registered and
// resolve to Default.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register(CommandInsert, Descriptor{
		Types:  []classify.TypeTag{classify.Text, classify.Number},
		Prompt: "Insert entry '%s'",
		Action: ActionInsert,
		Strict: true,
	})
	r.Register(CommandJump, Descriptor{
		Types: []classify.TypeTag{
			classify.WindowLayout, classify.FrameLayout, classify.Location,
			classify.KeyMacro, classify.FilePath, classify.BufferRef, classify.FileQuery,
		},
		Prompt: "Jump to entry '%s'",
		Action: ActionJump,
		Strict: true,
	})
	r.Register(CommandView, Descriptor{
		Types:  []classify.TypeTag{classify.All},
		Prompt: "View entry '%s'",
		Action: ActionView,
		Strict: true,
	})
	r.Register(CommandAppend, Descriptor{
		Types:  []classify.TypeTag{classify.Text},
		Prompt: "Append to entry '%s'",
		Action: ActionModify,
		Strict: true,
	})
	r.Register(CommandPrepend, Descriptor{
		Types:  []classify.TypeTag{classify.Text},
		Prompt: "Prepend to entry '%s'",
		Action: ActionModify,
		Strict: true,
	})
	r.Register(CommandIncrement, Descriptor{
		Types:  []classify.TypeTag{classify.Text, classify.Number},
		Prompt: "Increment entry '%s'",
		Action: ActionModify,
		Strict: true,
	})
	return r
}

// Register adds or replaces the descriptor for id. The descriptor's type list is
// copied so later changes by the caller do not leak into the registry.
func (r *Registry) Register(id CommandID, d Descriptor) {
	d.Types = slices.Clone(d.Types)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.descriptors[id] = d
}

// Default returns the policy for commands without a registered descriptor.
func Default() Descriptor {
	return Descriptor{
		Types:  []classify.TypeTag{classify.All},
		Prompt: "Overwrite entry '%s'",
		Action: ActionSet,
		Strict: false,
	}
}

// Lookup returns the descriptor registered for id, or Default. The returned type
// list is a copy.
func (r *Registry) Lookup(id CommandID) Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.descriptors[id]
	if !ok {
		return Default()
	}
	d.Types = slices.Clone(d.Types)
	return d
}

// Registered reports whether id has its own descriptor.
func (r *Registry) Registered(id CommandID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.descriptors[id]
	return ok
}

// All lists every registration sorted by command identity.
func (r *Registry) All() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Registration, 0, len(r.descriptors))
	for id, d := range r.descriptors {
		d.Types = slices.Clone(d.Types)
		out = append(out, Registration{Command: id, Descriptor: d})
	}
	slices.SortFunc(out, func(a, b Registration) int {
		return strings.Compare(string(a.Command), string(b.Command))
	})
	return out
}

// SetStyleCommands lists the standard commands that intentionally use Default.
func SetStyleCommands() []CommandID {
	return []CommandID{
		CommandCopy, CommandPoint, CommandNumber, CommandWindowLayout,
		CommandFrameLayout, CommandKeyMacro, CommandCopyRectangle,
	}
}
