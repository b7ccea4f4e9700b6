// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides benchmarks for PGO profile generation.
// They cover the hot paths of a picking session:
//   - snapshot parsing (CUE and TOML)
//   - type filtering and pane rendering over large stores
//   - a full replayed session from Start to the confirmed key
//
// To generate a profile, run:
//
//	go test -run='^$' -bench=. -cpuprofile=default.pgo ./internal/benchmark
package benchmark
