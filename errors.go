// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package tl1

import "fmt"

// ProtocolError indicates a malformed or untagged device response. It is
// fatal at this layer: the response cannot be correlated to the request, so
// retrying here would be meaningless.
type ProtocolError struct {
	// Tag is the correlation tag that was searched for.
	Tag string

	// Response is the raw device text.
	Response string

	// Reason is a human-readable description of the defect.
	Reason string
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	return fmt.Sprintf("tl1: protocol error: %s (tag %q)", e.Reason, e.Tag)
}

// CommandDeniedError indicates the device explicitly rejected a command.
// It carries everything needed to diagnose the rejection.
type CommandDeniedError struct {
	// DeviceID identifies the device that rejected the command.
	DeviceID string

	// Command is the exact wire text that was sent.
	Command string

	// Response is the raw device text.
	Response string
}

// Error implements the error interface.
func (e *CommandDeniedError) Error() string {
	return fmt.Sprintf("tl1: device %s denied command %q: %s", e.DeviceID, e.Command, e.Response)
}

// UnknownCommandError indicates a command name that is not present in the
// registry.
type UnknownCommandError struct {
	// Name is the method name that missed.
	Name string
}

// Error implements the error interface.
func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("tl1: unknown command %q", e.Name)
}

// ValidationError indicates a field set that violates the command template:
// a required field is missing or a supplied field is not declared. The
// serializer enforces this defensively even though most callers build field
// maps from the template itself.
type ValidationError struct {
	// Command is the method name of the offending command, when known.
	Command string

	// Field is the offending field name, when known.
	Field string

	// Reason describes the violation.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Command == "" && e.Field == "" {
		return fmt.Sprintf("tl1: validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("tl1: validation failed for %s: field %q: %s", e.Command, e.Field, e.Reason)
}
