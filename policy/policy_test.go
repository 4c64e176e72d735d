// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import "testing"

func TestValidateScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		verdict Verdict
	}{
		{
			// S4: Invalid_User_Namespace fires before privilege escape.
			name: "root without namespace or no_new_privs",
			cfg: Config{
				IsPrivileged:    false,
				UserID:          0,
				UserNamespace:   false,
				NoNewPrivileges: false,
			},
			verdict: InvalidUserNamespace,
		},
		{
			// S5
			name: "SYS_ADMIN without privilege",
			cfg: func() Config {
				cfg := DefaultConfig()
				cfg.Capabilities.Set(SYS_ADMIN, true)
				return cfg
			}(),
			verdict: InvalidCapabilities,
		},
		{
			// S6
			name: "NET_ADMIN under unprivileged network",
			cfg: func() Config {
				cfg := DefaultConfig()
				cfg.Capabilities.Set(NET_ADMIN, true)
				cfg.NetworkMode = Unprivileged
				return cfg
			}(),
			verdict: InvalidNetworkMode,
		},
		{
			// S7: privileged bypass wins even with SYS_ADMIN present.
			name: "privileged bypass",
			cfg: func() Config {
				cfg := DefaultConfig()
				cfg.IsPrivileged = true
				cfg.Capabilities.Set(SYS_ADMIN, true)
				return cfg
			}(),
			verdict: Valid,
		},
		{
			name:    "defaults are secure",
			cfg:     DefaultConfig(),
			verdict: Valid,
		},
		{
			name: "root with user namespace is fine",
			cfg: func() Config {
				cfg := DefaultConfig()
				cfg.UserID = 0
				cfg.UserNamespace = true
				return cfg
			}(),
			verdict: Valid,
		},
		{
			name: "root without namespace but no_new_privs set",
			cfg: func() Config {
				cfg := DefaultConfig()
				cfg.UserID = 0
				cfg.UserNamespace = false
				cfg.NoNewPrivileges = true
				return cfg
			}(),
			// Clause 3 (Invalid_User_Namespace) fires first regardless
			// of no_new_privileges, since it is checked before clause 5.
			verdict: InvalidUserNamespace,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Validate(tt.cfg); got != tt.verdict {
				t.Errorf("Validate() = %v, want %v", got, tt.verdict)
			}
		})
	}
}

func TestValidateValidImpliesSecure(t *testing.T) {
	t.Parallel()

	configs := allSampleConfigs()
	for _, cfg := range configs {
		if Validate(cfg) == Valid && !Secure(cfg) {
			t.Errorf("Validate(%+v) = Valid but Secure() is false", cfg)
		}
	}
}

func TestPrivilegedAlwaysValid(t *testing.T) {
	t.Parallel()

	for _, cfg := range allSampleConfigs() {
		cfg.IsPrivileged = true
		if got := Validate(cfg); got != Valid {
			t.Errorf("Validate() with IsPrivileged=true = %v, want Valid", got)
		}
	}
}

func TestHardenSatisfiesSecure(t *testing.T) {
	t.Parallel()

	for _, cfg := range allSampleConfigs() {
		hardened := Harden(cfg)
		if !Secure(hardened) {
			t.Errorf("Secure(Harden(%+v)) = false, want true", cfg)
		}
	}
}

func TestHardenIdempotent(t *testing.T) {
	t.Parallel()

	for _, cfg := range allSampleConfigs() {
		once := Harden(cfg)
		twice := Harden(once)
		if once != twice {
			t.Errorf("Harden not idempotent: Harden(cfg)=%+v, Harden(Harden(cfg))=%+v", once, twice)
		}
	}
}

func TestHardenNeverEscalates(t *testing.T) {
	t.Parallel()

	for _, cfg := range allSampleConfigs() {
		hardened := Harden(cfg)

		if !cfg.IsPrivileged && hardened.IsPrivileged {
			t.Errorf("Harden set IsPrivileged for %+v", cfg)
		}
		if hardened.NetworkMode > cfg.NetworkMode {
			t.Errorf("Harden raised NetworkMode from %v to %v", cfg.NetworkMode, hardened.NetworkMode)
		}
		for capability := Capability(0); capability < numCapabilities; capability++ {
			if !cfg.Capabilities.Has(capability) && hardened.Capabilities.Has(capability) {
				t.Errorf("Harden added capability %v that was absent", capability)
			}
		}
	}
}

func TestIsSafeCapability(t *testing.T) {
	t.Parallel()

	if !IsSafeCapability(SYS_ADMIN, true, Unprivileged) {
		t.Error("SYS_ADMIN must be safe under privileged mode")
	}
	if IsSafeCapability(SYS_ADMIN, false, Admin) {
		t.Error("SYS_ADMIN must never be safe outside privileged mode")
	}
	if IsSafeCapability(NET_ADMIN, false, Unprivileged) {
		t.Error("NET_ADMIN must not be safe under Unprivileged network mode")
	}
	if !IsSafeCapability(NET_ADMIN, false, Restricted) {
		t.Error("NET_ADMIN must be safe under Restricted network mode")
	}
	if !IsSafeCapability(CHOWN, false, Unprivileged) {
		t.Error("CHOWN must be safe unconditionally outside privileged mode")
	}
}

func TestMessageForKnownAndUnknown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verdict Verdict
		message string
	}{
		{Valid, "Configuration is valid and secure"},
		{InvalidCapabilities, "SYS_ADMIN capability requires privileged mode"},
		{InvalidUserNamespace, "Root UID (0) requires user namespace to be enabled"},
		{InvalidNetworkMode, "NET_ADMIN capability requires Restricted or Admin network mode"},
		{InvalidPrivilegeEscape, "Potential privilege escalation: set no_new_privileges or enable user namespace"},
		{ParseError, "Failed to parse container configuration"},
		{InternalError, "Internal error in security validation"},
	}

	for _, tt := range tests {
		if got := MessageFor(tt.verdict); got != tt.message {
			t.Errorf("MessageFor(%v) = %q, want %q", tt.verdict, got, tt.message)
		}
	}

	if got := MessageFor(Verdict(42)); got != unknownMessage {
		t.Errorf("MessageFor(unknown) = %q, want %q", got, unknownMessage)
	}
}

func TestFromCodeToCodeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, code := range []int{0, 1, 2, 3, 4, 5, -1} {
		verdict := FromCode(code)
		if verdict.ToCode() != code {
			t.Errorf("FromCode(%d).ToCode() = %d, want %d", code, verdict.ToCode(), code)
		}
	}
}

func TestFromCodeUnknownIsInternalError(t *testing.T) {
	t.Parallel()

	for _, code := range []int{6, 100, -2, -100} {
		if got := FromCode(code); got != InternalError {
			t.Errorf("FromCode(%d) = %v, want InternalError", code, got)
		}
	}
}

func TestCapabilityByName(t *testing.T) {
	t.Parallel()

	if cap, ok := CapabilityByName("SYS_ADMIN"); !ok || cap != SYS_ADMIN {
		t.Errorf("CapabilityByName(SYS_ADMIN) = (%v, %v), want (SYS_ADMIN, true)", cap, ok)
	}
	if _, ok := CapabilityByName("CAP_NOT_REAL"); ok {
		t.Error("CapabilityByName should ignore unknown names, not resolve them")
	}
}

// allSampleConfigs builds a representative spread of configurations
// covering every branch of Validate and Harden: privileged/not,
// SYS_ADMIN and NET_ADMIN each toggled on and off, every UserID/UserNamespace/
// NoNewPrivileges/NetworkMode combination.
func allSampleConfigs() []Config {
	var configs []Config
	for _, privileged := range []bool{false, true} {
		for _, userID := range []uint64{0, 1, 1000} {
			for _, userNS := range []bool{false, true} {
				for _, noNewPrivs := range []bool{false, true} {
					for _, networkMode := range []NetworkMode{Unprivileged, Restricted, Admin} {
						for _, sysAdmin := range []bool{false, true} {
							for _, netAdmin := range []bool{false, true} {
								cfg := DefaultConfig()
								cfg.IsPrivileged = privileged
								cfg.UserID = userID
								cfg.UserNamespace = userNS
								cfg.NoNewPrivileges = noNewPrivs
								cfg.NetworkMode = networkMode
								cfg.Capabilities.Set(SYS_ADMIN, sysAdmin)
								cfg.Capabilities.Set(NET_ADMIN, netAdmin)
								configs = append(configs, cfg)
							}
						}
					}
				}
			}
		}
	}
	return configs
}
