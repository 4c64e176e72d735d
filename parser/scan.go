// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package parser

import "math"

// isWhitespace reports whether b is JSON insignificant whitespace.
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// skipWhitespace advances i past any run of JSON whitespace.
func skipWhitespace(data []byte, i int) int {
	for i < len(data) && isWhitespace(data[i]) {
		i++
	}
	return i
}

// scanString reads a JSON string token starting at data[i] (which must
// be '"'). It returns the token's content copied into a buffer bounded
// by fieldScratchSize (excess bytes are silently dropped, matching the
// design's bounded scratch buffer), the index immediately after the
// closing quote, and whether a well-formed closing quote was found.
//
// Escape handling is simplified per design: "\x" consumes two
// characters without decoding, so the scan position never falls out
// of alignment with the real token boundaries, at the cost of not
// producing a decoded string. This is sufficient because every string
// this scanner compares against is a short literal with no escapes.
func scanString(data []byte, i int) (content []byte, next int, ok bool) {
	if i >= len(data) || data[i] != '"' {
		return nil, i, false
	}
	i++
	var buf [fieldScratchSize]byte
	n := 0
	for i < len(data) {
		b := data[i]
		if b == '"' {
			return buf[:n], i + 1, true
		}
		if b == '\\' {
			// Consume the escape marker and the following byte
			// without decoding it.
			i += 2
			continue
		}
		if n < len(buf) {
			buf[n] = b
			n++
		}
		i++
	}
	// Unterminated string: malformed input, treated as not found by
	// the caller rather than aborting the scan. An escape marker in the
	// last byte steps i one past the end; clamp it so callers can slice
	// data with it.
	if i > len(data) {
		i = len(data)
	}
	return buf[:n], i, false
}

// skipValue advances past one complete JSON value (string, number,
// object, array, or literal) starting at data[i], returning the index
// immediately after it. Malformed input still advances the position
// monotonically, guaranteeing termination.
func skipValue(data []byte, i int) int {
	i = skipWhitespace(data, i)
	if i >= len(data) {
		return i
	}
	switch data[i] {
	case '"':
		_, next, _ := scanString(data, i)
		return next
	case '{', '[':
		open := data[i]
		close := byte('}')
		if open == '[' {
			close = ']'
		}
		depth := 1
		i++
		for i < len(data) && depth > 0 {
			b := data[i]
			switch {
			case b == '"':
				_, next, _ := scanString(data, i)
				i = next
				continue
			case b == open:
				depth++
			case b == close:
				depth--
			}
			i++
		}
		return i
	default:
		// Number, true, false, null: run until a structural
		// delimiter or whitespace terminates the token.
		for i < len(data) {
			b := data[i]
			if isWhitespace(b) || b == ',' || b == '}' || b == ']' || b == ':' {
				break
			}
			i++
		}
		return i
	}
}

// findChildValue scans data, which is expected to hold (or begin
// with) a JSON object, for a key equal to name at depth 1 relative to
// data's own origin — i.e. an immediate member of the outermost
// object found in data. It returns the raw byte span of that member's
// value (whitespace-trimmed) and true, or (nil, false) if no such key
// is found before the object closes or the input is exhausted.
//
// Each call is an independent, self-contained scan: it holds no state
// beyond its local loop, so looking up a nested path is a sequence of
// independent calls (see lookupUserID, lookupRootReadOnly) rather than
// a single recursive-descent parse.
func findChildValue(data []byte, name string) ([]byte, bool) {
	i := skipWhitespace(data, 0)
	if i >= len(data) || data[i] != '{' {
		return nil, false
	}
	i++ // enter the object; now at depth 1

	for {
		i = skipWhitespace(data, i)
		if i >= len(data) || data[i] == '}' {
			return nil, false
		}
		if data[i] == ',' {
			i++
			continue
		}
		if data[i] != '"' {
			// Malformed region: skip forward one byte and keep
			// looking rather than aborting.
			i++
			continue
		}

		key, next, ok := scanString(data, i)
		if !ok {
			return nil, false
		}
		i = skipWhitespace(data, next)
		if i >= len(data) || data[i] != ':' {
			// Not actually a key:value pair; keep scanning.
			continue
		}
		i = skipWhitespace(data, i+1)
		valueStart := i
		valueEnd := skipValue(data, i)

		if string(key) == name {
			return trimSpan(data, valueStart, valueEnd), true
		}
		i = valueEnd
	}
}

// trimSpan trims JSON whitespace from both ends of data[start:end].
func trimSpan(data []byte, start, end int) []byte {
	start = skipWhitespace(data, start)
	for end > start && isWhitespace(data[end-1]) {
		end--
	}
	if start >= end {
		return nil
	}
	return data[start:end]
}

// parseUintSaturating accepts a run of ASCII digits, skipping leading
// whitespace, and returns the accumulated value. The accumulator
// saturates at math.MaxUint64 rather than overflowing, so a
// pathologically long digit run (e.g. one thousand digits) always
// yields a well-defined, non-negative result. Returns false if no
// digit is found.
func parseUintSaturating(data []byte) (uint64, bool) {
	i := skipWhitespace(data, 0)
	start := i
	var acc uint64
	for i < len(data) && data[i] >= '0' && data[i] <= '9' {
		digit := uint64(data[i] - '0')
		if acc > (math.MaxUint64-digit)/10 {
			acc = math.MaxUint64
		} else {
			acc = acc*10 + digit
		}
		i++
	}
	if i == start {
		return 0, false
	}
	return acc, true
}

// parseBoolLiteral accepts exactly the JSON literals "true" or
// "false"; any other token yields false, per design.
func parseBoolLiteral(data []byte) bool {
	return string(trimSpan(data, 0, len(data))) == "true"
}
