// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

// Package audit produces a durable, ordered record of validation
// decisions without influencing them. A caller runs a validation
// through boundary or policy as usual, then hands the same input bytes
// and the resulting verdict to [Record] to obtain an [Entry] that can
// be appended to any log sink the caller already owns.
//
// audit never re-validates, re-parses, or otherwise second-guesses the
// verdict it is given; it only fingerprints and timestamps it.
package audit
