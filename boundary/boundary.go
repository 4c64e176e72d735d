// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package boundary

import (
	"math"
	"sync"

	"github.com/vordr-project/gatekeeper/parser"
	"github.com/vordr-project/gatekeeper/policy"
)

// version is the module version reported by [Version]. It is a
// byte-stable string at the current major version, matching the
// gatekeeper_version() C-ABI contract.
const version = "0.1.0"

var initOnce sync.Once

// VerifyJSONConfig validates json against the security predicate and
// returns the resulting verdict code. json may be nil or empty; both
// degrade to Parse_Error, matching a null pointer or empty string at
// the C-ABI surface. Input longer than [parser.MaxJSON] also yields
// Parse_Error.
//
// VerifyJSONConfig never panics: any unexpected internal condition is
// caught and reported as Internal_Error rather than propagating.
func VerifyJSONConfig(json []byte) (code int) {
	defer func() {
		if recover() != nil {
			code = int(policy.InternalError)
		}
	}()

	result := parser.Parse(json)
	if result.Status != parser.OK {
		return int(policy.ParseError)
	}
	return int(policy.Validate(result.Config))
}

// SanitiseConfig validates json and, on success, copies as much of
// the original input as fits into out, returning the number of bytes
// written. This version copies the original input rather than a
// re-serialised hardened configuration; re-serialisation is reserved
// for a future major version.
//
// A nil or zero-length out, or a json that fails to parse, yields the
// negated Parse_Error code. Any unexpected internal condition yields
// the negated Internal_Error code. On success the return value is
// always non-negative.
func SanitiseConfig(json []byte, out []byte) (result int) {
	defer func() {
		if recover() != nil {
			result = -int(policy.InternalError)
		}
	}()

	if len(out) <= 0 {
		return -int(policy.ParseError)
	}

	parsed := parser.Parse(json)
	if parsed.Status != parser.OK {
		return -int(policy.ParseError)
	}

	return copy(out, json)
}

// GetErrorMessage returns the stable diagnostic message for code.
//
// Unlike [policy.FromCode], which collapses every code outside the
// closed verdict enumeration to Internal_Error, GetErrorMessage treats
// -1 (the defined Internal_Error code) and any other undefined code as
// two distinct cases: -1 reports "Internal error in security
// validation", while any other undefined code reports "Unknown error
// code".
func GetErrorMessage(code int) string {
	verdict := policy.Verdict(code)
	if verdict.ToCode() != code {
		// code lies outside the Verdict range and the conversion
		// wrapped it; report it with a value no defined verdict uses.
		verdict = policy.Verdict(math.MaxInt8)
	}
	return policy.MessageFor(verdict)
}

// Version returns the Gatekeeper module version string.
func Version() string {
	return version
}

// Init performs the module's one-shot initialisation. It is safe to
// call from multiple goroutines and safe to call more than once;
// subsequent calls are no-ops. This version has no initialisation
// work to perform and always succeeds; the hook exists so a future
// version can add startup checks without changing the C-ABI.
func Init() int {
	initOnce.Do(func() {})
	return 0
}
