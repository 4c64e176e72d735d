// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package profileconfig

// Profile is a named, pre-reviewed override set applied to a
// policy.Config before hardening and validation. Every field is
// optional; an unset field leaves the incoming configuration
// unchanged for that field.
type Profile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// Inherit names a parent profile whose fields this profile's
	// non-empty fields override. Single inheritance only: Inherit
	// cannot itself be a profile whose own Inherit forms a cycle back
	// to this profile.
	Inherit string `yaml:"inherit,omitempty"`

	// NetworkMode, when non-empty, must name one of "unprivileged",
	// "restricted", "admin" (policy.NetworkModeByName). Fills the seam
	// the parser package leaves open: network mode is never read from
	// untrusted JSON.
	NetworkMode string `yaml:"network_mode,omitempty"`

	// IsPrivileged, when non-nil, sets Config.IsPrivileged. A pointer
	// so a profile can distinguish "leave privileged bit alone" from
	// "explicitly force it false".
	IsPrivileged *bool `yaml:"is_privileged,omitempty"`

	// EnableCapabilities and DisableCapabilities name capabilities
	// (by their canonical Linux name, e.g. "NET_ADMIN") to force
	// present or force absent respectively. Disable is applied after
	// enable, so a name in both lists ends up disabled. Names outside
	// the closed sixteen-element enumeration are ignored, mirroring
	// the parser's "unknown capability is ignored" contract.
	EnableCapabilities  []string `yaml:"enable_capabilities,omitempty"`
	DisableCapabilities []string `yaml:"disable_capabilities,omitempty"`
}

// ProfileSet is a named collection of profiles loaded from one or more
// YAML documents. Later-loaded documents override earlier ones for
// profiles with the same name.
type ProfileSet struct {
	profiles map[string]*Profile
	resolved map[string]*Profile
}

// profileDocument is the top-level shape of a profiles YAML document.
type profileDocument struct {
	Profiles map[string]*Profile `yaml:"profiles"`
}
