// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package parser

// lookupUserID implements the .process.user.uid recognised path: an
// independent scan for "process" at depth 1 of the document, then for
// "user" at depth 1 of that value, then for "uid" at depth 1 of that.
func lookupUserID(data []byte) (uint64, bool) {
	processValue, ok := findChildValue(data, "process")
	if !ok {
		return 0, false
	}
	userValue, ok := findChildValue(processValue, "user")
	if !ok {
		return 0, false
	}
	uidValue, ok := findChildValue(userValue, "uid")
	if !ok {
		return 0, false
	}
	return parseUintSaturating(uidValue)
}

// lookupRootReadOnly implements the .root.readonly recognised path.
func lookupRootReadOnly(data []byte) (bool, bool) {
	rootValue, ok := findChildValue(data, "root")
	if !ok {
		return false, false
	}
	readonlyValue, ok := findChildValue(rootValue, "readonly")
	if !ok {
		return false, false
	}
	return parseBoolLiteral(readonlyValue), true
}

// detectUserNamespaceType implements the .linux.namespaces[*].type ==
// "user" recognised path.
//
// By design, this scan does not enforce that the "type" key it
// matches actually belongs to an element of the namespaces array: it
// looks for any string key literally named "type" anywhere in the
// input whose value is the string "user". A structurally-adjacent
// "type":"user" pair outside namespaces would also set the flag.
// Strengthening the scope of this match is left for later.
func detectUserNamespaceType(data []byte) bool {
	i := 0
	var prevKey []byte
	havePrevKey := false

	for i < len(data) {
		if data[i] == '"' {
			token, next, ok := scanString(data, i)
			if !ok {
				return false
			}
			i = skipWhitespace(data, next)
			if i < len(data) && data[i] == ':' {
				// token is a key; remember it and continue past the
				// colon so the next token can be inspected as its
				// value.
				prevKey = token
				havePrevKey = true
				i++
				i = skipWhitespace(data, i)
				continue
			}
			// token is a value (string). Check whether the preceding
			// key was "type" and this value is "user".
			if havePrevKey && string(prevKey) == "type" && string(token) == "user" {
				return true
			}
			havePrevKey = false
			continue
		}
		// Any other byte (structural delimiter, digit, letter of a
		// literal) ends a pending key without it having matched a
		// string value.
		havePrevKey = false
		i++
	}
	return false
}
