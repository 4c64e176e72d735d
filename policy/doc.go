// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

// Package policy defines the container-configuration record, the
// declarative security predicate over it, and the two pure operations
// that act on it: [Validate], which classifies a configuration into a
// [Verdict], and [Harden], which rewrites a configuration so the
// predicate holds without ever escalating privilege.
//
// Every operation in this package is a pure function of its input.
// There is no I/O, no shared mutable state, and no allocation beyond
// the returned value, so all exported functions are safe to call
// concurrently from any number of goroutines.
package policy
