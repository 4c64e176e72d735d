// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package profileconfig

import "fmt"

// Resolve resolves a profile by name, applying single inheritance:
// the named profile's non-empty fields override its parent's, walking
// up the Inherit chain. Resolved profiles are cached, so resolving the
// same name twice returns the same value without re-walking the
// chain.
//
// Resolve returns an error if name is not defined, or if the Inherit
// chain starting at name revisits a profile already on the chain
// (a cycle).
func (s *ProfileSet) Resolve(name string) (*Profile, error) {
	if resolved, ok := s.resolved[name]; ok {
		return resolved, nil
	}
	resolved, err := s.resolveChain(name, make(map[string]bool))
	if err != nil {
		return nil, err
	}
	s.resolved[name] = resolved
	return resolved, nil
}

func (s *ProfileSet) resolveChain(name string, visiting map[string]bool) (*Profile, error) {
	if visiting[name] {
		return nil, fmt.Errorf("profileconfig: inheritance cycle detected at profile %q", name)
	}
	visiting[name] = true

	base, ok := s.profiles[name]
	if !ok {
		return nil, fmt.Errorf("profileconfig: profile not found: %q", name)
	}

	if base.Inherit == "" {
		return base.clone(), nil
	}

	parent, err := s.resolveChain(base.Inherit, visiting)
	if err != nil {
		return nil, err
	}
	return mergeProfiles(parent, base), nil
}

// clone returns a deep copy of p.
func (p *Profile) clone() *Profile {
	clone := &Profile{
		Name:        p.Name,
		Description: p.Description,
		NetworkMode: p.NetworkMode,
	}
	if p.IsPrivileged != nil {
		v := *p.IsPrivileged
		clone.IsPrivileged = &v
	}
	if p.EnableCapabilities != nil {
		clone.EnableCapabilities = append([]string(nil), p.EnableCapabilities...)
	}
	if p.DisableCapabilities != nil {
		clone.DisableCapabilities = append([]string(nil), p.DisableCapabilities...)
	}
	return clone
}

// mergeProfiles merges child's non-empty fields onto a copy of parent.
// Capability lists are unioned, not replaced, following a
// merge-not-replace convention for list-valued profile fields.
func mergeProfiles(parent, child *Profile) *Profile {
	result := parent.clone()
	result.Name = child.Name
	result.Inherit = ""

	if child.Description != "" {
		result.Description = child.Description
	}
	if child.NetworkMode != "" {
		result.NetworkMode = child.NetworkMode
	}
	if child.IsPrivileged != nil {
		v := *child.IsPrivileged
		result.IsPrivileged = &v
	}
	result.EnableCapabilities = unionStrings(result.EnableCapabilities, child.EnableCapabilities)
	result.DisableCapabilities = unionStrings(result.DisableCapabilities, child.DisableCapabilities)

	return result
}

func unionStrings(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	seen := make(map[string]bool, len(a))
	result := append([]string(nil), a...)
	for _, v := range a {
		seen[v] = true
	}
	for _, v := range b {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
