// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"sync"

	"github.com/vordr-project/gatekeeper/boundary"
)

// cStringCache holds process-lifetime C strings so gatekeeper_version
// and get_error_message can return a pointer the caller never has to
// free. Entries are created once, on first use, and kept forever — the
// set of distinct messages and the version string are both small and
// fixed for the life of the process.
var (
	cStringCacheMu sync.Mutex
	cStringCache   = make(map[string]*C.char)

	versionOnce sync.Once
	versionPtr  *C.char
)

func internedCString(s string) *C.char {
	cStringCacheMu.Lock()
	defer cStringCacheMu.Unlock()

	if ptr, ok := cStringCache[s]; ok {
		return ptr
	}
	ptr := C.CString(s)
	cStringCache[s] = ptr
	return ptr
}

// messageFor returns a static pointer to the diagnostic message for
// code.
func messageFor(code int) *C.char {
	return internedCString(boundary.GetErrorMessage(code))
}

// versionString returns a static pointer to the module version.
func versionString() *C.char {
	versionOnce.Do(func() {
		versionPtr = C.CString(boundary.Version())
	})
	return versionPtr
}
