// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package tl1

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Record is the flat decoding of one quoted response line: field name to
// scalar string, flat list ([]string) or list of lists ([][]string).
//
// Bare fields carry synthetic positional_param_{section}_{index} names until
// the command's rename hook gives them their documented names.
type Record map[string]any

// RenameFunc is a pure per-command record transformation, typically renaming
// positional_param keys. It must not modify its input.
type RenameFunc func(Record) Record

// ResponseEnvelope is a parsed TL1 response.
type ResponseEnvelope struct {
	// Status is the completion code, e.g. COMPLD or DENY. Vendor-specific
	// codes pass through unmodified.
	Status Status

	// CTag is the correlation tag the response was matched with.
	CTag string

	// Raw is the response body, starting at the first occurrence of the
	// correlation tag.
	Raw string

	// Records holds the decoded data lines in response order.
	Records []Record
}

// OK reports whether the response completed successfully.
func (e *ResponseEnvelope) OK() bool {
	return e.Status.OK()
}

// JSON returns the envelope as a JSON string with the records under the
// "record" array. This is useful for debugging, logging, or custom parsing
// with gjson.
//
// Example:
//
//	res, err := client.Do(ctx, "rtrv_ots", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.JSON())
func (e *ResponseEnvelope) JSON() string {
	out := `{"record":[]}`
	out, _ = sjson.Set(out, "status", string(e.Status))
	out, _ = sjson.Set(out, "ctag", e.CTag)
	out, _ = sjson.Set(out, "ok", e.OK())
	for _, record := range e.Records {
		out, _ = sjson.Set(out, "record.-1", map[string]any(record))
	}
	return out
}

// GetValue retrieves a value from the envelope using a gjson path.
//
// Example paths:
//   - "status" - the completion code
//   - "record.#" - the number of records
//   - "record.0.AID" - the AID field of the first record
//   - "record.#.OPERSTATE" - the OPERSTATE of every record
//
// Returns a gjson.Result which can be converted to specific types with
// result.String(), result.Int(), result.Array() and friends.
//
// Example:
//
//	res, err := client.Do(ctx, "rtrv_ots", tl1.Fields{"aid": "1-A-1-L1"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	operstate := res.GetValue("record.0.OPERSTATE").String()
func (e *ResponseEnvelope) GetValue(path string) gjson.Result {
	return gjson.Get(e.JSON(), path)
}

// renameRecords applies a rename hook to every record, leaving the envelope
// untouched when the hook is nil.
func (e *ResponseEnvelope) renameRecords(rename RenameFunc) {
	if rename == nil {
		return
	}
	renamed := make([]Record, len(e.Records))
	for i, record := range e.Records {
		renamed[i] = rename(record)
	}
	e.Records = renamed
}
