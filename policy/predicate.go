// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package policy

// Secure reports whether the security predicate holds for cfg. It
// holds iff either cfg.IsPrivileged is true, or all four of:
//
//  1. SYS_ADMIN is absent.
//  2. UserID is non-zero, or a user namespace is enabled.
//  3. NET_ADMIN is absent, or the network mode is above Unprivileged.
//  4. UserID is non-zero, or no_new_privileges is set, or a user
//     namespace is enabled.
//
// Secure is the invariant the rest of this package is checked
// against: Validate returning Valid implies Secure holds, and Harden
// always produces a configuration for which Secure holds.
func Secure(cfg Config) bool {
	if cfg.IsPrivileged {
		return true
	}
	if cfg.Capabilities.Has(SYS_ADMIN) {
		return false
	}
	if cfg.UserID == 0 && !cfg.UserNamespace {
		return false
	}
	if cfg.Capabilities.Has(NET_ADMIN) && cfg.NetworkMode == Unprivileged {
		return false
	}
	if cfg.UserID == 0 && !cfg.NoNewPrivileges && !cfg.UserNamespace {
		return false
	}
	return true
}

// Validate is a pure total function classifying cfg into a Verdict.
// Clauses are evaluated in the fixed order below; the first failing
// clause selects the verdict. This order is part of the external
// contract — a configuration that fails multiple clauses always
// reports the earliest one.
//
// Validate(cfg) == Valid if and only if Secure(cfg): Validate runs
// the same five checks as Secure, in the same order, so it is Secure
// restated as a decision procedure that also names the failing clause,
// rather than a second, independent predicate.
func Validate(cfg Config) Verdict {
	if cfg.IsPrivileged {
		return Valid
	}
	if cfg.Capabilities.Has(SYS_ADMIN) {
		return InvalidCapabilities
	}
	if cfg.UserID == 0 && !cfg.UserNamespace {
		return InvalidUserNamespace
	}
	if cfg.Capabilities.Has(NET_ADMIN) && cfg.NetworkMode == Unprivileged {
		return InvalidNetworkMode
	}
	if cfg.UserID == 0 && !cfg.NoNewPrivileges && !cfg.UserNamespace {
		return InvalidPrivilegeEscape
	}
	return Valid
}

// IsSafeCapability reports whether cap may be granted under the given
// privilege and network mode. Privileged mode always permits every
// capability. Outside of privileged mode, SYS_ADMIN is never safe and
// NET_ADMIN is safe only above Unprivileged network mode; every other
// enumerated capability is safe.
func IsSafeCapability(cap Capability, isPrivileged bool, networkMode NetworkMode) bool {
	if isPrivileged {
		return true
	}
	switch cap {
	case SYS_ADMIN:
		return false
	case NET_ADMIN:
		return networkMode != Unprivileged
	default:
		return true
	}
}
