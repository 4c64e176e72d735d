// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package policy

// Harden rewrites cfg so that Secure holds, without ever escalating
// privilege: defaults flow toward constraint, never toward capability.
// When in doubt it removes a capability rather than raising the
// network mode or setting IsPrivileged.
//
// Harden has no effect when cfg.IsPrivileged is true. Otherwise it
// applies, in order:
//
//  1. Clear SYS_ADMIN.
//  2. If UserID is zero, enable the user namespace. Mapping
//     container-root onto an unprivileged host UID is a privilege
//     reduction, the one case where Harden turns a flag on rather
//     than off.
//  3. If NET_ADMIN is present and the network mode is Unprivileged,
//     clear NET_ADMIN. The network mode itself is never raised.
//  4. If, after the above, UserID is still zero and the user
//     namespace is still disabled, set no_new_privileges. This clause
//     is defensive: step 2 already guarantees the user namespace is
//     enabled whenever UserID is zero, so this branch is unreachable
//     in practice, but Harden checks it explicitly rather than relying
//     on that invariant holding forever.
//
// Harden(Harden(cfg)) == Harden(cfg): applying it twice has no
// additional effect, since every step above is already idempotent
// once applied.
func Harden(cfg Config) Config {
	if cfg.IsPrivileged {
		return cfg
	}

	cfg.Capabilities.Set(SYS_ADMIN, false)

	if cfg.UserID == 0 {
		cfg.UserNamespace = true
	}

	if cfg.Capabilities.Has(NET_ADMIN) && cfg.NetworkMode == Unprivileged {
		cfg.Capabilities.Set(NET_ADMIN, false)
	}

	if cfg.UserID == 0 && !cfg.UserNamespace {
		cfg.NoNewPrivileges = true
	}

	return cfg
}
