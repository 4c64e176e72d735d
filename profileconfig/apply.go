// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package profileconfig

import "github.com/vordr-project/gatekeeper/policy"

// Apply returns a copy of cfg with the profile's overrides applied.
// Apply must run before policy.Harden and policy.Validate: it changes
// what enters the predicate, never bypasses it. Unset fields on the
// profile leave the corresponding field of cfg unchanged.
//
// Apply is idempotent: applying the same profile twice in immediate
// succession to the same starting configuration produces the same
// result as applying it once, since every override is computed from
// the profile alone, never from cfg's prior value.
func (p *Profile) Apply(cfg policy.Config) policy.Config {
	result := cfg

	if p.NetworkMode != "" {
		if mode, ok := policy.NetworkModeByName(p.NetworkMode); ok {
			result.NetworkMode = mode
		}
	}

	if p.IsPrivileged != nil {
		result.IsPrivileged = *p.IsPrivileged
	}

	for _, name := range p.EnableCapabilities {
		if cap, ok := policy.CapabilityByName(name); ok {
			result.Capabilities.Set(cap, true)
		}
	}
	for _, name := range p.DisableCapabilities {
		if cap, ok := policy.CapabilityByName(name); ok {
			result.Capabilities.Set(cap, false)
		}
	}

	return result
}
