// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package audit

import "github.com/zeebo/blake3"

// Fingerprint returns the BLAKE3-256 digest of input. It is a pure
// function of the byte content: it never inspects the parsed
// configuration, and it is not bounded by parser.MaxJSON — it
// fingerprints exactly the bytes a caller received, including inputs
// large enough to fail with a Parse_Error verdict.
func Fingerprint(input []byte) [32]byte {
	hasher := blake3.New()
	hasher.Write(input)

	var sum [32]byte
	copy(sum[:], hasher.Sum(nil))
	return sum
}
