// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package parser

import "github.com/vordr-project/gatekeeper/policy"

// MaxJSON is the largest input, in bytes, the scanner will attempt to
// read. Inputs longer than this are rejected without partial parsing.
const MaxJSON = 65536

// fieldScratchSize bounds the scratch buffer used to copy string
// token bytes while scanning. Content beyond this size is silently
// truncated; truncation only affects diagnostic fidelity, never
// correctness, since the only string tokens the scanner compares
// against are short fixed literals ("process", "user", "uid", "root",
// "readonly", "type").
const fieldScratchSize = 256

// Status classifies the outcome of a parse attempt.
type Status int

const (
	// OK means the input was scanned and a total configuration was
	// produced, starting from defaults and overwritten field by
	// field wherever a recognised path was found.
	OK Status = iota
	// TooLong means the input exceeded MaxJSON bytes and was rejected
	// without any scanning.
	TooLong
	// InvalidJson means the input was empty.
	InvalidJson
	// MissingField is reserved for a stricter parsing mode that
	// requires specific fields to be present. The scanner in this
	// version never produces it: an absent recognised path simply
	// takes its default value under OK.
	MissingField
	// InvalidValue is reserved for a stricter parsing mode that
	// rejects a recognised path holding a value of the wrong JSON
	// type. The scanner in this version never produces it: a
	// malformed value at a recognised path is treated the same as an
	// absent one.
	InvalidValue
)

// String names the status, for diagnostics and test failure messages.
func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case TooLong:
		return "TooLong"
	case InvalidJson:
		return "InvalidJson"
	case MissingField:
		return "MissingField"
	case InvalidValue:
		return "InvalidValue"
	default:
		return "Unknown"
	}
}

// Result is the outcome of a call to Parse: a status and the total
// configuration record produced. Config is exactly
// policy.DefaultConfig() when Status is not OK.
type Result struct {
	Status Status
	Config policy.Config
}
