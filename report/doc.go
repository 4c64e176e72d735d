// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

// Package report explains a validation verdict clause by clause. Where
// policy.Validate stops at the first failing clause of the security
// predicate, [Explain] walks every clause and records whether it
// passed, so a human or CI log can see the whole picture rather than
// just the first violation.
package report
