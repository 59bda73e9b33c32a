// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package tl1

import "strings"

// FieldKind distinguishes how a field is emitted on the wire.
type FieldKind int

const (
	// FieldPositional fields are emitted by position within their section
	// (TID, AID, CTAG, ...); a required positional field keeps its column
	// with an empty placeholder even when no value is set.
	FieldPositional FieldKind = iota

	// FieldNamed fields are emitted as NAME=value and omitted entirely when
	// no value is set.
	FieldNamed
)

// String returns the string representation of a FieldKind.
func (k FieldKind) String() string {
	switch k {
	case FieldPositional:
		return "positional"
	case FieldNamed:
		return "named"
	default:
		return "unknown"
	}
}

// FieldSpec describes one field of a command template section.
//
// FieldSpecs are derived deterministically from the template text: parsing
// the same template always yields the same specs in the same order.
type FieldSpec struct {
	// Name is the derived field key used in Fields maps: lowercased, with
	// "-" (and, for positional fields, "|") replaced by "_".
	Name string

	// Wire is the on-the-wire parameter name of a named field (the text left
	// of "="). Empty for positional fields.
	Wire string

	// Kind is FieldPositional or FieldNamed.
	Kind FieldKind

	// Required is false for bracket-wrapped template tokens.
	Required bool

	// Section is the index of the template section the field belongs to.
	// Section 0 is the verb-modifier literal and never carries fields.
	Section int

	// Domain lists the "|"-delimited values documented for a named field.
	// Informational only: values are not validated against it.
	Domain []string
}

// CommandTemplate is the classified form of a TL1 command's help-text
// template, e.g. "RTRV-OTS:[<TID>]:[<AID>]:<CTAG>::::".
//
// The canonical section layout is
// verb-modifier : TID : AID-section : CTAG : ... : named-params : [status].
type CommandTemplate struct {
	// Verb is the declared command verb, e.g. "RTRV".
	Verb string

	// Modifier is the declared command modifier, e.g. "OCRS".
	Modifier string

	// Raw is the original template text.
	Raw string

	// Sections holds the classified fields per template section, indexed by
	// section position. Sections[0] is always empty.
	Sections [][]FieldSpec
}

// ParseTemplate classifies a command help-text template into ordered sections
// of field descriptors. It is a pure function: identical template text always
// produces an identical result.
func ParseTemplate(verb, modifier, raw string) CommandTemplate {
	parts := strings.Split(raw, ":")
	sections := make([][]FieldSpec, len(parts))
	for i := 1; i < len(parts); i++ {
		sections[i] = classifySection(parts[i], i)
	}
	return CommandTemplate{
		Verb:     verb,
		Modifier: modifier,
		Raw:      raw,
		Sections: sections,
	}
}

// HasField reports whether any section declares a field with the given name.
func (t CommandTemplate) HasField(name string) bool {
	for _, section := range t.Sections {
		for _, spec := range section {
			if spec.Name == name {
				return true
			}
		}
	}
	return false
}

// Fields returns all field descriptors of the template in section order.
func (t CommandTemplate) Fields() []FieldSpec {
	var fields []FieldSpec
	for _, section := range t.Sections {
		fields = append(fields, section...)
	}
	return fields
}

// classifySection splits one template section into field descriptors.
//
// Bracket/comma placement is normalized first so that optionality brackets
// always wrap whole tokens: ",]" becomes "]," and "[," becomes ",[".
func classifySection(section string, index int) []FieldSpec {
	if strings.TrimSpace(section) == "" {
		return nil
	}
	section = strings.ReplaceAll(section, ",]", "],")
	section = strings.ReplaceAll(section, "[,", ",[")

	var fields []FieldSpec
	depth := 0
	for _, token := range strings.Split(section, ",") {
		// A token is optional when it opens a bracket itself or sits inside a
		// bracket opened by an earlier token, e.g. [<FROMAID>,<TOAID>].
		optional := depth > 0 || strings.Contains(token, "[")
		depth += strings.Count(token, "[") - strings.Count(token, "]")
		token = strings.Trim(token, "[]<>")
		if token == "" {
			continue
		}

		if wire, domain, ok := strings.Cut(token, "="); ok {
			var values []string
			if strings.Contains(domain, "|") {
				values = strings.Split(domain, "|")
			}
			fields = append(fields, FieldSpec{
				Name:     fieldKey(wire),
				Wire:     wire,
				Kind:     FieldNamed,
				Required: !optional,
				Section:  index,
				Domain:   values,
			})
			continue
		}

		fields = append(fields, FieldSpec{
			Name:     strings.ReplaceAll(fieldKey(token), "|", "_"),
			Kind:     FieldPositional,
			Required: !optional,
			Section:  index,
		})
	}
	return fields
}

// fieldKey derives the Fields map key for a template name.
func fieldKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "-", "_")
}
