// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// entryTag identifies the compression applied to one on-disk record.
type entryTag uint8

const (
	entryTagNone entryTag = 0
	entryTagLZ4  entryTag = 1
)

// errIncompressible signals that LZ4 did not shrink the input, so the
// caller should fall back to storing it uncompressed.
var errIncompressible = errors.New("audit: entry incompressible")

// recordHeaderLen is the fixed size of the framing header written
// before every entry: 1 tag byte, a 4-byte uncompressed length, and a
// 4-byte payload length, all big-endian.
const recordHeaderLen = 9

// WriteEntry appends e to w as one length-framed record. The encoded
// CBOR entry is LZ4-compressed when doing so shrinks it; otherwise the
// raw encoding is stored with the none tag, mirroring the
// incompressible-input fallback of chunk compression: compression is
// skipped rather than paid for when it doesn't help.
func WriteEntry(w io.Writer, e Entry) error {
	encoded, err := e.MarshalCBOR()
	if err != nil {
		return fmt.Errorf("audit: encode entry: %w", err)
	}

	tag := entryTagLZ4
	payload, err := compressLZ4(encoded)
	if err != nil {
		tag = entryTagNone
		payload = encoded
	}

	var header [recordHeaderLen]byte
	header[0] = byte(tag)
	binary.BigEndian.PutUint32(header[1:5], uint32(len(encoded)))
	binary.BigEndian.PutUint32(header[5:9], uint32(len(payload)))

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("audit: write record header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("audit: write record payload: %w", err)
	}
	return nil
}

// ReadEntry reads one record written by [WriteEntry] from r. It
// returns io.EOF (unwrapped) when r has no more records.
func ReadEntry(r io.Reader) (Entry, error) {
	var header [recordHeaderLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Entry{}, fmt.Errorf("audit: truncated record header: %w", err)
		}
		return Entry{}, err
	}

	tag := entryTag(header[0])
	uncompressedLen := binary.BigEndian.Uint32(header[1:5])
	payloadLen := binary.BigEndian.Uint32(header[5:9])

	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Entry{}, fmt.Errorf("audit: read record payload: %w", err)
	}

	var encoded []byte
	switch tag {
	case entryTagNone:
		encoded = payload
	case entryTagLZ4:
		decoded, err := decompressLZ4(payload, int(uncompressedLen))
		if err != nil {
			return Entry{}, err
		}
		encoded = decoded
	default:
		return Entry{}, fmt.Errorf("audit: unknown record tag %d", tag)
	}

	return UnmarshalEntry(encoded)
}

func compressLZ4(data []byte) ([]byte, error) {
	bound := lz4.CompressBlockBound(len(data))
	destination := make([]byte, bound)

	written, err := lz4.CompressBlock(data, destination, nil)
	if err != nil {
		return nil, fmt.Errorf("audit: lz4 compress: %w", err)
	}
	if written == 0 || written >= len(data) {
		return nil, errIncompressible
	}
	return destination[:written], nil
}

func decompressLZ4(compressed []byte, uncompressedSize int) ([]byte, error) {
	destination := make([]byte, uncompressedSize)
	read, err := lz4.UncompressBlock(compressed, destination)
	if err != nil {
		return nil, fmt.Errorf("audit: lz4 decompress: %w", err)
	}
	if read != uncompressedSize {
		return nil, fmt.Errorf("audit: lz4 decompress: got %d bytes, want %d", read, uncompressedSize)
	}
	return destination, nil
}
