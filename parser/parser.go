// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package parser

import "github.com/vordr-project/gatekeeper/policy"

// Parse projects data onto a total [policy.Config], starting from
// policy.DefaultConfig() and overwriting each field for which the
// corresponding recognised path is found. It never
// panics and its scan position is strictly monotonic, so it always
// terminates in time bounded by len(data).
//
// Before returning an OK result, Parse hardens the produced
// configuration via [policy.Harden], so every OK result satisfies
// [policy.Secure] by construction.
func Parse(data []byte) Result {
	result := ParseUnhardened(data)
	if result.Status == OK {
		result.Config = policy.Harden(result.Config)
	}
	return result
}

// ParseUnhardened performs the same recognised-path scan as [Parse]
// but returns the configuration before [policy.Harden] runs. This is
// the seam a caller uses to apply overrides (see profileconfig) to
// exactly the fields the scan produced, before hardening and
// validation see them. Most callers want [Parse]; ParseUnhardened
// exists for callers that need to compose overrides ahead of
// hardening.
func ParseUnhardened(data []byte) Result {
	if len(data) > MaxJSON {
		return Result{Status: TooLong, Config: policy.DefaultConfig()}
	}
	if len(data) == 0 {
		return Result{Status: InvalidJson, Config: policy.DefaultConfig()}
	}

	cfg := policy.DefaultConfig()

	if userID, found := lookupUserID(data); found {
		cfg.UserID = userID
	}
	if readOnly, found := lookupRootReadOnly(data); found {
		cfg.RootReadOnly = readOnly
	}
	if detectUserNamespaceType(data) {
		cfg.UserNamespace = true
	}

	return Result{Status: OK, Config: cfg}
}
