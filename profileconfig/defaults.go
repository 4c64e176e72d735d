// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package profileconfig

// DefaultProfileSet returns the built-in profiles every Gatekeeper
// deployment ships with. Hosts that need additional profiles merge
// their own YAML on top with ProfileSet.Merge/MergeFile.
func DefaultProfileSet() *ProfileSet {
	set, err := ParseProfileSet([]byte(defaultProfilesYAML))
	if err != nil {
		panic("profileconfig: built-in default profiles failed to parse: " + err.Error())
	}
	return set
}

const defaultProfilesYAML = `
profiles:
  default:
    description: "Gatekeeper's own default posture: unprivileged network, no admin capabilities"

  strict:
    description: "Tightened defaults for untrusted workloads"
    inherit: default
    disable_capabilities:
      - NET_RAW
      - SYS_CHROOT

  ci-runner:
    description: "CI job runner: namespaced network access for package registries"
    inherit: default
    network_mode: restricted

  privileged-debug:
    description: "Full host privilege for local debugging only; never select this in production"
    is_privileged: true
`
