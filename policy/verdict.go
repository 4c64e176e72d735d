// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package policy

// Verdict is the closed enumeration of outcomes [Validate] can return.
// Its integer encoding is normative and stable across the module's
// current major version — downstream C-ABI callers depend on these
// exact values.
type Verdict int8

const (
	// Valid means the security predicate holds for the configuration.
	Valid Verdict = 0
	// InvalidCapabilities means SYS_ADMIN is present without
	// privileged mode.
	InvalidCapabilities Verdict = 1
	// InvalidUserNamespace means the configuration runs as root
	// without a user namespace.
	InvalidUserNamespace Verdict = 2
	// InvalidNetworkMode means NET_ADMIN is present without at least
	// Restricted network privilege.
	InvalidNetworkMode Verdict = 3
	// InvalidPrivilegeEscape means the configuration runs as root
	// without no_new_privileges or a user namespace.
	InvalidPrivilegeEscape Verdict = 4
	// ParseError means the input was unparseable, too long, or empty.
	ParseError Verdict = 5
	// InternalError means an unexpected internal condition occurred.
	// Every integer outside the defined range decodes to this value.
	InternalError Verdict = -1
)

// String returns the symbol name of the verdict.
func (v Verdict) String() string {
	switch v {
	case Valid:
		return "Valid"
	case InvalidCapabilities:
		return "Invalid_Capabilities"
	case InvalidUserNamespace:
		return "Invalid_User_Namespace"
	case InvalidNetworkMode:
		return "Invalid_Network_Mode"
	case InvalidPrivilegeEscape:
		return "Invalid_Privilege_Escape"
	case ParseError:
		return "Parse_Error"
	default:
		return "Internal_Error"
	}
}

// FromCode decodes an integer verdict code from the C-ABI boundary
// into a Verdict. Any code outside {0,1,2,3,4,5,-1} decodes to
// InternalError, never to a zero value or a panic.
func FromCode(code int) Verdict {
	switch code {
	case 0:
		return Valid
	case 1:
		return InvalidCapabilities
	case 2:
		return InvalidUserNamespace
	case 3:
		return InvalidNetworkMode
	case 4:
		return InvalidPrivilegeEscape
	case 5:
		return ParseError
	default:
		return InternalError
	}
}

// ToCode encodes a Verdict back into its stable integer form.
func (v Verdict) ToCode() int {
	return int(v)
}

// messages holds the byte-stable diagnostic text for each verdict.
// These strings are part of the module's external contract at the
// current major version; changing any of them is a breaking change.
var messages = map[Verdict]string{
	Valid:                  "Configuration is valid and secure",
	InvalidCapabilities:    "SYS_ADMIN capability requires privileged mode",
	InvalidUserNamespace:   "Root UID (0) requires user namespace to be enabled",
	InvalidNetworkMode:     "NET_ADMIN capability requires Restricted or Admin network mode",
	InvalidPrivilegeEscape: "Potential privilege escalation: set no_new_privileges or enable user namespace",
	ParseError:             "Failed to parse container configuration",
	InternalError:          "Internal error in security validation",
}

// unknownMessage is returned by MessageFor for any verdict outside the
// closed enumeration above (which, since Verdict decodes every
// integer via FromCode, can only happen if a caller constructs a
// Verdict value directly instead of going through FromCode).
const unknownMessage = "Unknown error code"

// MessageFor returns the short, stable human-readable diagnostic for
// v. Messages are part of the external contract and must be changed
// only at a major version.
func MessageFor(v Verdict) string {
	if msg, ok := messages[v]; ok {
		return msg
	}
	return unknownMessage
}
