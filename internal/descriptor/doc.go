// SPDX-License-Identifier: MPL-2.0

// Package descriptor maps command identities to selection policies.
//
// A Descriptor states which value types a command accepts, the prompt shown when a
// key is matched, what kind of action the command performs and whether the typed key
// must name an existing eligible entry. Lookups never fail: commands that never
// registered a descriptor get Default, which accepts everything and asks before
// overwriting.
package descriptor
