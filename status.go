// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package tl1

import "strings"

// Status is a TL1 completion code. Besides the two well-known values below,
// vendor-specific codes pass through unmodified.
type Status string

// Well-known TL1 completion codes
const (
	// StatusCompleted indicates the command succeeded.
	StatusCompleted Status = "COMPLD"

	// StatusDenied indicates the device rejected the command.
	StatusDenied Status = "DENY"
)

// alreadyMarker suppresses DENY classification: a denial whose text carries
// it means the requested state already holds, which callers treat as a
// benign no-op.
const alreadyMarker = "ALREADY"

// OK reports whether the status is a successful completion.
func (s Status) OK() bool {
	return s == StatusCompleted
}

// Denied reports whether a raw device response is an effective rejection:
// it contains DENY without an accompanying ALREADY marker.
//
// This is free-text matching over vendor responses, kept exactly as the
// devices have been observed to behave. Do not generalize it without
// validating against real device text.
func Denied(raw string) bool {
	return strings.Contains(raw, string(StatusDenied)) &&
		!strings.Contains(raw, alreadyMarker)
}
