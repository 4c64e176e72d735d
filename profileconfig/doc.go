// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

// Package profileconfig loads named policy profiles from YAML and
// applies them to a [policy.Config] before it reaches
// [policy.Harden]/[policy.Validate]. A profile fills in the fields the
// parser package deliberately does not read from untrusted JSON —
// network mode chief among them — so a host can opt into a
// non-default, pre-reviewed posture by name instead of hand-assembling
// overrides on every call.
//
// Profiles are operator-authored configuration loaded once at process
// startup, a different trust boundary from the attacker-controlled
// runtime JSON the parser package scans; profile parsing is not bound
// by parser.MaxJSON.
package profileconfig
