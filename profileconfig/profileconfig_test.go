// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package profileconfig

import (
	"strings"
	"testing"

	"github.com/vordr-project/gatekeeper/policy"
)

func TestParseProfileSetAndResolve(t *testing.T) {
	t.Parallel()

	set, err := ParseProfileSet([]byte(`
profiles:
  base:
    description: "base profile"
    network_mode: restricted
  child:
    description: "child profile"
    inherit: base
    disable_capabilities: [NET_BIND_SERVICE]
`))
	if err != nil {
		t.Fatalf("ParseProfileSet() error = %v", err)
	}

	child, err := set.Resolve("child")
	if err != nil {
		t.Fatalf("Resolve(child) error = %v", err)
	}
	if child.NetworkMode != "restricted" {
		t.Errorf("NetworkMode = %q, want %q (inherited)", child.NetworkMode, "restricted")
	}
	if len(child.DisableCapabilities) != 1 || child.DisableCapabilities[0] != "NET_BIND_SERVICE" {
		t.Errorf("DisableCapabilities = %v, want [NET_BIND_SERVICE]", child.DisableCapabilities)
	}
}

func TestResolveUnknownProfile(t *testing.T) {
	t.Parallel()

	set := NewProfileSet()
	if _, err := set.Resolve("missing"); err == nil {
		t.Error("Resolve(missing) succeeded, want error")
	}
}

func TestResolveDetectsSelfCycle(t *testing.T) {
	t.Parallel()

	set, err := ParseProfileSet([]byte(`
profiles:
  loop:
    inherit: loop
`))
	if err != nil {
		t.Fatalf("ParseProfileSet() error = %v", err)
	}
	if _, err := set.Resolve("loop"); err == nil {
		t.Error("Resolve(loop) succeeded, want cycle error")
	} else if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error = %v, want mention of a cycle", err)
	}
}

func TestResolveDetectsLongerCycle(t *testing.T) {
	t.Parallel()

	set, err := ParseProfileSet([]byte(`
profiles:
  a:
    inherit: b
  b:
    inherit: c
  c:
    inherit: a
`))
	if err != nil {
		t.Fatalf("ParseProfileSet() error = %v", err)
	}
	if _, err := set.Resolve("a"); err == nil {
		t.Error("Resolve(a) succeeded, want cycle error")
	}
}

func TestResolveCaches(t *testing.T) {
	t.Parallel()

	set, err := ParseProfileSet([]byte(`
profiles:
  solo:
    description: "no parent"
`))
	if err != nil {
		t.Fatalf("ParseProfileSet() error = %v", err)
	}

	first, err := set.Resolve("solo")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	second, err := set.Resolve("solo")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if first != second {
		t.Error("Resolve did not return the cached pointer on second call")
	}
}

func TestMergeInvalidatesCache(t *testing.T) {
	t.Parallel()

	set, err := ParseProfileSet([]byte(`
profiles:
  p:
    network_mode: unprivileged
`))
	if err != nil {
		t.Fatalf("ParseProfileSet() error = %v", err)
	}
	if _, err := set.Resolve("p"); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if err := set.Merge([]byte(`
profiles:
  p:
    network_mode: admin
`)); err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	resolved, err := set.Resolve("p")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resolved.NetworkMode != "admin" {
		t.Errorf("NetworkMode = %q, want %q after merge overrides", resolved.NetworkMode, "admin")
	}
}

func TestApplyNetworkMode(t *testing.T) {
	t.Parallel()

	p := &Profile{NetworkMode: "restricted"}
	cfg := p.Apply(policy.DefaultConfig())
	if cfg.NetworkMode != policy.Restricted {
		t.Errorf("NetworkMode = %v, want %v", cfg.NetworkMode, policy.Restricted)
	}
}

func TestApplyLeavesUnsetFieldsAlone(t *testing.T) {
	t.Parallel()

	p := &Profile{}
	cfg := p.Apply(policy.DefaultConfig())
	if cfg != policy.DefaultConfig() {
		t.Errorf("Apply(empty profile) changed the configuration: %+v", cfg)
	}
}

func TestApplyIsPrivilegedRequiresExplicitProfile(t *testing.T) {
	t.Parallel()

	yes := true
	p := &Profile{IsPrivileged: &yes}
	cfg := p.Apply(policy.DefaultConfig())
	if !cfg.IsPrivileged {
		t.Error("Apply did not set IsPrivileged from an explicit profile field")
	}

	unset := &Profile{}
	cfg2 := unset.Apply(policy.DefaultConfig())
	if cfg2.IsPrivileged {
		t.Error("Apply set IsPrivileged without an explicit profile field")
	}
}

func TestApplyEnableThenDisableCapabilities(t *testing.T) {
	t.Parallel()

	p := &Profile{
		EnableCapabilities:  []string{"NET_ADMIN"},
		DisableCapabilities: []string{"NET_ADMIN"},
	}
	cfg := p.Apply(policy.DefaultConfig())
	if cfg.Capabilities.Has(policy.NET_ADMIN) {
		t.Error("a capability named in both enable and disable lists should end up disabled")
	}
}

func TestApplyIgnoresUnknownCapabilityNames(t *testing.T) {
	t.Parallel()

	p := &Profile{EnableCapabilities: []string{"NOT_A_REAL_CAP"}}
	cfg := p.Apply(policy.DefaultConfig())
	if cfg != policy.DefaultConfig() {
		t.Errorf("Apply with an unknown capability name changed the configuration: %+v", cfg)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	t.Parallel()

	p := &Profile{NetworkMode: "admin", DisableCapabilities: []string{"NET_BIND_SERVICE"}}
	base := policy.DefaultConfig()
	once := p.Apply(base)
	twice := p.Apply(once)
	if once != twice {
		t.Errorf("Apply is not idempotent: once=%+v twice=%+v", once, twice)
	}
}

func TestDefaultProfileSetResolvesAllBuiltins(t *testing.T) {
	t.Parallel()

	set := DefaultProfileSet()
	for _, name := range []string{"default", "strict", "ci-runner", "privileged-debug"} {
		if _, err := set.Resolve(name); err != nil {
			t.Errorf("Resolve(%q) error = %v", name, err)
		}
	}
}

func TestPrivilegedDebugProfileIsExplicit(t *testing.T) {
	t.Parallel()

	set := DefaultProfileSet()
	profile, err := set.Resolve("privileged-debug")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	cfg := profile.Apply(policy.DefaultConfig())
	if !cfg.IsPrivileged {
		t.Error("privileged-debug profile did not set IsPrivileged")
	}

	other, err := set.Resolve("default")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if otherCfg := other.Apply(policy.DefaultConfig()); otherCfg.IsPrivileged {
		t.Error("default profile unexpectedly set IsPrivileged")
	}
}
