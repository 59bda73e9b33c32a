// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package tl1

import (
	"fmt"
	"regexp"
	"strings"
)

// statusWord matches the completion code following the correlation tag.
var statusWord = regexp.MustCompile(`\s*(\w+)`)

// Parse parses a raw TL1 response into a structured envelope.
//
// The completion status is the first word after the last occurrence of the
// correlation tag; the response body starts at the first occurrence. Within
// the body, only lines that (once trimmed) begin with a double quote are data
// lines; each becomes one Record. A response that does not contain the tag at
// all fails with *ProtocolError, which is fatal at this layer, no retry.
//
// Record lines are tokenized quote-aware: the scanner enters quoted mode on
// the sequences `="` and `:"` and leaves it on `",` and `":`, so colons and
// commas inside quoted values are not treated as delimiters. Lines are first
// split on ":" into sections, then each section on "," into fields. A field
// of the form NAME=value keeps its name (value quotes stripped, "&"/"&-"
// lists decoded); a bare field is keyed positional_param_{section}_{index}.
//
// Parse does not apply any per-command rename hook; the client facade does.
func Parse(raw, tag string) (*ResponseEnvelope, error) {
	last := strings.LastIndex(raw, tag)
	if last < 0 {
		return nil, &ProtocolError{
			Tag:      tag,
			Response: raw,
			Reason:   "correlation tag not found in response",
		}
	}

	status := ""
	if m := statusWord.FindStringSubmatch(raw[last+len(tag):]); m != nil {
		status = m[1]
	}

	body := raw[strings.Index(raw, tag):]
	lines := strings.Split(strings.TrimSpace(body), "\n")

	var records []Record
	for _, line := range lines[1:] {
		line = strings.Trim(line, " ;\r")
		if line == "" || line[0] != '"' {
			continue
		}
		line = strings.TrimPrefix(line, `"`)
		line = strings.TrimSuffix(line, `"`)
		records = append(records, parseRecordLine(line))
	}

	return &ResponseEnvelope{
		Status:  Status(status),
		CTag:    tag,
		Raw:     body,
		Records: records,
	}, nil
}

// parseRecordLine turns one quoted response line into a flat record.
func parseRecordLine(line string) Record {
	record := Record{}
	for i, section := range splitPreservingQuotes(line, ':') {
		if strings.TrimSpace(section) == "" {
			continue
		}
		for j, field := range splitPreservingQuotes(section, ',') {
			name, value, ok := strings.Cut(field, "=")
			if !ok {
				record[fmt.Sprintf("positional_param_%d_%d", i, j)] = strings.TrimSpace(field)
				continue
			}
			record[strings.TrimSpace(name)] = decodeValue(strings.TrimSpace(value))
		}
	}
	return record
}

// decodeValue strips value quotes and decodes "&"-joined lists: a value
// containing "&-" becomes a list of lists, a value containing only "&"
// becomes a flat list, anything else stays a scalar string.
func decodeValue(value string) any {
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	if strings.Contains(value, "&-") {
		chunks := strings.Split(value, "&-")
		lists := make([][]string, len(chunks))
		for i, chunk := range chunks {
			lists[i] = strings.Split(chunk, "&")
		}
		return lists
	}
	if strings.Contains(value, "&") {
		return strings.Split(value, "&")
	}
	return value
}

// splitPreservingQuotes splits text on delim while tracking quoted mode, so
// delimiters inside quoted values are preserved. Device text occasionally
// carries backslash-escaped quotes; the escaped opening sequences are
// recognized too.
func splitPreservingQuotes(text string, delim byte) []string {
	var parts []string
	var current strings.Builder
	inQuotes := false
	for i := 0; i < len(text); i++ {
		if i+1 < len(text) {
			switch text[i : i+2] {
			case `="`, `:"`:
				inQuotes = true
			case `",`, `":`:
				inQuotes = false
			}
		}
		if i+2 < len(text) {
			switch text[i : i+3] {
			case `=\"`, `:\"`:
				inQuotes = true
			case `\",`, `\":`:
				inQuotes = false
			}
		}
		if text[i] == delim && !inQuotes {
			parts = append(parts, current.String())
			current.Reset()
			continue
		}
		current.WriteByte(text[i])
	}
	parts = append(parts, current.String())
	return parts
}
