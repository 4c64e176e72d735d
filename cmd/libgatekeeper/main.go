// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

// libgatekeeper builds the Gatekeeper validator as a C shared library
// (-buildmode=c-shared) or static archive (-buildmode=c-archive),
// exporting the five symbols in this package's cgo comments. It is a
// thin adapter: every exported function does pointer and length
// validation only, then calls straight into the pure Go boundary
// package. No business logic lives here, so the boundary package
// remains fully testable without cgo.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/vordr-project/gatekeeper/boundary"
	"github.com/vordr-project/gatekeeper/policy"
)

// verify_json_config validates a NUL-terminated JSON string and
// returns the verdict code. A NULL pointer is treated as an empty
// string, matching boundary.VerifyJSONConfig(nil).
//
//export verify_json_config
func verify_json_config(jsonStr *C.char) C.int {
	return C.int(boundary.VerifyJSONConfig(cStringToBytes(jsonStr)))
}

// sanitise_config validates a NUL-terminated JSON string and
// writes as much of it as fits into a caller-owned buffer of outLen
// bytes, returning the number of bytes written. The caller retains
// ownership of buf; this function never allocates C-visible memory.
//
//export sanitise_config
func sanitise_config(jsonStr *C.char, buf *C.char, outLen C.int) C.int {
	if buf == nil || outLen <= 0 {
		return C.int(-policy.ParseError.ToCode())
	}
	out := unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(outLen))
	return C.int(boundary.SanitiseConfig(cStringToBytes(jsonStr), out))
}

// get_error_message returns a pointer to a static, NUL-terminated
// string describing code. The returned pointer has static lifetime
// for the life of the process; the caller must not free it.
//
//export get_error_message
func get_error_message(code C.int) *C.char {
	return messageFor(int(code))
}

// gatekeeper_version returns a pointer to a static, NUL-terminated
// version string. The caller must not free it.
//
//export gatekeeper_version
func gatekeeper_version() *C.char {
	return versionString()
}

// gatekeeper_init performs one-shot initialisation and is safe to call
// more than once. It always returns 0 in this version.
//
//export gatekeeper_init
func gatekeeper_init() C.int {
	return C.int(boundary.Init())
}

// cStringToBytes copies a NUL-terminated C string into a Go byte
// slice by way of C.GoString. A NULL
// pointer converts to nil, which boundary treats identically to an
// empty input.
func cStringToBytes(s *C.char) []byte {
	if s == nil {
		return nil
	}
	return []byte(C.GoString(s))
}
