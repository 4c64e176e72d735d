// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package policy

// NetworkMode is an ordered privilege level for a container's network
// access. Zero value is Unprivileged, the most restrictive level.
type NetworkMode int

const (
	// Unprivileged is the default, most restrictive network mode.
	Unprivileged NetworkMode = iota
	// Restricted grants a container namespaced network access beyond
	// the unprivileged default.
	Restricted
	// Admin grants a container full network administration privilege.
	Admin
)

// String returns the human-readable name of the network mode.
func (m NetworkMode) String() string {
	switch m {
	case Unprivileged:
		return "unprivileged"
	case Restricted:
		return "restricted"
	case Admin:
		return "admin"
	default:
		return "unknown"
	}
}

// NetworkModeByName resolves a network mode name ("unprivileged",
// "restricted", "admin") to its NetworkMode value. It returns false
// for any other string.
func NetworkModeByName(name string) (NetworkMode, bool) {
	switch name {
	case "unprivileged":
		return Unprivileged, true
	case "restricted":
		return Restricted, true
	case "admin":
		return Admin, true
	default:
		return 0, false
	}
}

// Capability is one of a fixed, closed enumeration of sixteen Linux
// capability tags. No other capability is representable: unknown
// capability names encountered while parsing input are ignored, never
// mapped onto a Capability value.
type Capability int

const (
	CHOWN Capability = iota
	DAC_OVERRIDE
	FSETID
	FOWNER
	MKNOD
	NET_RAW
	SETGID
	SETUID
	SETFCAP
	SETPCAP
	NET_BIND_SERVICE
	SYS_CHROOT
	KILL
	AUDIT_WRITE
	NET_ADMIN
	SYS_ADMIN

	// numCapabilities is the size of the closed enumeration above. Not
	// itself a valid Capability value.
	numCapabilities
)

// capabilityNames maps each Capability to its canonical Linux name.
// Order matches the declaration order above and is used only for
// lookup and diagnostics, never for the wire encoding of CapabilitySet.
var capabilityNames = [numCapabilities]string{
	CHOWN:            "CHOWN",
	DAC_OVERRIDE:     "DAC_OVERRIDE",
	FSETID:           "FSETID",
	FOWNER:           "FOWNER",
	MKNOD:            "MKNOD",
	NET_RAW:          "NET_RAW",
	SETGID:           "SETGID",
	SETUID:           "SETUID",
	SETFCAP:          "SETFCAP",
	SETPCAP:          "SETPCAP",
	NET_BIND_SERVICE: "NET_BIND_SERVICE",
	SYS_CHROOT:       "SYS_CHROOT",
	KILL:             "KILL",
	AUDIT_WRITE:      "AUDIT_WRITE",
	NET_ADMIN:        "NET_ADMIN",
	SYS_ADMIN:        "SYS_ADMIN",
}

// String returns the canonical Linux name of the capability, or
// "UNKNOWN" if c is outside the closed enumeration.
func (c Capability) String() string {
	if c < 0 || c >= numCapabilities {
		return "UNKNOWN"
	}
	return capabilityNames[c]
}

// CapabilityByName resolves a capability name to its Capability value.
// It returns false for any name outside the closed sixteen-element
// enumeration; callers must treat that as "ignored", never as an
// error, since real containers carry capabilities this design does
// not represent.
func CapabilityByName(name string) (Capability, bool) {
	for i, n := range capabilityNames {
		if n == name {
			return Capability(i), true
		}
	}
	return 0, false
}

// CapabilitySet is a total mapping from Capability to presence. The
// zero value is the empty set (every capability absent).
type CapabilitySet [numCapabilities]bool

// DefaultCapabilitySet returns the capability set every capability is
// present in except NET_ADMIN and SYS_ADMIN, matching the container
// runtime's conventional default capability bounding set.
func DefaultCapabilitySet() CapabilitySet {
	var set CapabilitySet
	for i := range set {
		set[i] = true
	}
	set[NET_ADMIN] = false
	set[SYS_ADMIN] = false
	return set
}

// EmptyCapabilitySet returns the capability set with every capability
// absent.
func EmptyCapabilitySet() CapabilitySet {
	return CapabilitySet{}
}

// Has reports whether cap is present in the set. Capabilities outside
// the closed enumeration are always reported absent.
func (s CapabilitySet) Has(cap Capability) bool {
	if cap < 0 || cap >= numCapabilities {
		return false
	}
	return s[cap]
}

// Set records the presence of cap in the set. Out-of-range values are
// silently ignored, mirroring the parser's "unknown capability is
// ignored" contract.
func (s *CapabilitySet) Set(cap Capability, present bool) {
	if cap < 0 || cap >= numCapabilities {
		return
	}
	s[cap] = present
}

// Config is the total record of security-relevant container runtime
// fields the Gatekeeper predicate operates over. Every field has a
// value after parsing; there is no notion of "unset".
type Config struct {
	// IsPrivileged is the administrator-explicit bypass of every
	// other check.
	IsPrivileged bool
	// RootReadOnly indicates the container's root filesystem is
	// mounted read-only.
	RootReadOnly bool
	// Capabilities is the effective Linux capability set.
	Capabilities CapabilitySet
	// UserID is the UID the container process runs as. Zero means
	// root.
	UserID uint64
	// UserNamespace indicates a Linux user namespace maps the
	// container's UIDs onto unprivileged host UIDs.
	UserNamespace bool
	// NetworkMode is the container's network privilege level.
	NetworkMode NetworkMode
	// NoNewPrivileges indicates the no_new_privs process flag is set,
	// blocking setuid/file-capability privilege escalation.
	NoNewPrivileges bool
	// SeccompEnabled indicates a seccomp profile is applied to the
	// container process.
	SeccompEnabled bool
}

// DefaultConfig returns the configuration used as the starting point
// for both parsing and hardening. It already satisfies [Secure].
func DefaultConfig() Config {
	return Config{
		IsPrivileged:    false,
		RootReadOnly:    true,
		Capabilities:    DefaultCapabilitySet(),
		UserID:          1000,
		UserNamespace:   true,
		NetworkMode:     Unprivileged,
		NoNewPrivileges: true,
		SeccompEnabled:  true,
	}
}
