// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

// Package boundary adapts [parser] and [policy] to a stable,
// C-ABI-shaped surface: verify a JSON string, sanitise a JSON string,
// retrieve a message for a verdict code, retrieve a version string,
// and a one-shot initialisation hook.
//
// This package holds the surface's business logic as ordinary Go
// functions over string/[]byte and int; cmd/libgatekeeper wraps it
// with a cgo layer that does nothing but pointer and length validation
// at the true C boundary, so the surface is testable without cgo.
//
// No exception may cross an exported function in this package: every
// operation has a defined result for every input, including nil
// pointers represented as empty strings, oversize input, and integer
// codes outside the defined range. All operations are pure and safe
// for concurrent use — the package holds no mutable state beyond
// initOnce, which only records that Init has run.
package boundary
