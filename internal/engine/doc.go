// SPDX-License-Identifier: MPL-2.0

// Package engine implements the incremental input state machine of a picking
// session.
//
// An Engine is fed the raw contents of the input line after every edit (Step), on
// explicit accept (Submit) and on the abort gesture (Abort). It reconciles overflow
// bursts against the strict-match policy, keeps the pane highlight in sync with the
// committed one-character pattern, emits transient notices, and decides when the
// session ends. The engine never reads input itself and never opens or closes the
// pane; those belong to the host and the session orchestrator.
package engine
