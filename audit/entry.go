// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/vordr-project/gatekeeper/lib/codec"
	"github.com/vordr-project/gatekeeper/policy"
)

// Entry is a single tamper-evident audit record: the content
// fingerprint of a validated input, the verdict it produced, the
// human-readable message for that verdict, and when the record was
// observed. Encoded with CBOR Core Deterministic Encoding, two entries
// with equal field values are byte-identical. [Record] gives every
// entry a fresh random ID, so two records of identical input at an
// identical instant still differ in their ID.
type Entry struct {
	ID          uuid.UUID      `cbor:"id"`
	Fingerprint [32]byte       `cbor:"fingerprint"`
	Verdict     policy.Verdict `cbor:"verdict"`
	Message     string         `cbor:"message"`
	ObservedAt  time.Time      `cbor:"observed_at"`
}

// Record builds an Entry for input and the verdict/message already
// produced for it. Record never re-validates input; it fingerprints
// the raw bytes and stamps the record with a fresh random (version 4)
// UUID and the given timestamp.
func Record(input []byte, verdict policy.Verdict, message string, now time.Time) Entry {
	return Entry{
		ID:          uuid.New(),
		Fingerprint: Fingerprint(input),
		Verdict:     verdict,
		Message:     message,
		ObservedAt:  now,
	}
}

// MarshalCBOR encodes e using Core Deterministic Encoding (RFC 8949
// §4.2), suitable for appending to an audit log file as a CBOR
// sequence.
func (e Entry) MarshalCBOR() ([]byte, error) {
	type entryAlias Entry
	return codec.Marshal(entryAlias(e))
}

// UnmarshalEntry decodes a single Entry from data.
func UnmarshalEntry(data []byte) (Entry, error) {
	type entryAlias Entry
	var e entryAlias
	if err := codec.Unmarshal(data, &e); err != nil {
		return Entry{}, err
	}
	return Entry(e), nil
}
