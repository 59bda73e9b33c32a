// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package tl1

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Wire serializes the command value into its exact TL1 wire string.
//
// Section 0 emits the wire verb-modifier pair, honoring the descriptor's
// WireVerb and WireModifierField overrides. Every other section emits its
// fields in template order:
//
//   - named field with a value: NAME=value, lists joined with "&" and lists
//     of lists joined inner-with-"&", outer-with-"&-"
//   - named field without a value: nothing
//   - positional field with a value: the value text
//   - required positional field without a value: an empty placeholder, so
//     later fields keep their column
//   - optional positional field without a value: nothing
//
// Fields within a section are joined with ","; a section whose emissions are
// all empty collapses to an empty string so no stray commas appear. Sections
// are joined with ":" and the command is terminated with ";".
//
// Serialization fails with *ValidationError when a required named field is
// missing or when the field map carries a name the template does not declare.
func (v CommandValue) Wire() (string, error) {
	d := v.Descriptor
	if d == nil {
		return "", &ValidationError{Reason: "nil command descriptor"}
	}
	if err := v.validate(); err != nil {
		return "", err
	}

	sections := make([]string, 0, len(d.Template.Sections))
	head, err := v.wireHead()
	if err != nil {
		return "", err
	}
	sections = append(sections, head)
	for i := 1; i < len(d.Template.Sections); i++ {
		sections = append(sections, v.wireSection(d.Template.Sections[i]))
	}
	return strings.Join(sections, ":") + ";", nil
}

// wireHead emits the verb-modifier section, applying the descriptor's
// explicit overrides.
func (v CommandValue) wireHead() (string, error) {
	d := v.Descriptor
	verb := d.Verb
	if d.WireVerb != "" {
		verb = d.WireVerb
	}
	modifier := d.Modifier
	if d.WireModifierField != "" {
		value, ok := v.Fields[d.WireModifierField]
		if !ok || value == nil {
			return "", &ValidationError{
				Command: d.Name,
				Field:   d.WireModifierField,
				Reason:  "required field missing",
			}
		}
		modifier = scalarString(value)
	}
	return verb + "-" + modifier, nil
}

// wireSection emits one template section from the field values.
func (v CommandValue) wireSection(specs []FieldSpec) string {
	var tokens []string
	empty := true
	for _, spec := range specs {
		value, ok := v.Fields[spec.Name]
		if ok && value == nil {
			ok = false
		}
		switch spec.Kind {
		case FieldNamed:
			if !ok {
				continue
			}
			tokens = append(tokens, spec.Wire+"="+encodeValue(value))
			empty = false
		case FieldPositional:
			if ok {
				text := scalarString(value)
				tokens = append(tokens, text)
				if text != "" {
					empty = false
				}
			} else if spec.Required {
				tokens = append(tokens, "")
			}
		}
	}
	if empty {
		return ""
	}
	return strings.Join(tokens, ",")
}

// validate enforces the template contract before serialization: required
// named fields must be resolvable and every supplied field must be declared.
func (v CommandValue) validate() error {
	d := v.Descriptor
	declared := make(map[string]bool)
	if d.WireModifierField != "" {
		declared[d.WireModifierField] = true
	}
	for _, section := range d.Template.Sections {
		for _, spec := range section {
			declared[spec.Name] = true
			if spec.Kind != FieldNamed || !spec.Required {
				continue
			}
			if value, ok := v.Fields[spec.Name]; !ok || value == nil {
				return &ValidationError{
					Command: d.Name,
					Field:   spec.Name,
					Reason:  "required field missing",
				}
			}
		}
	}

	var unknown []string
	for name := range v.Fields {
		if !declared[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &ValidationError{
			Command: d.Name,
			Field:   unknown[0],
			Reason:  "field not declared by command template",
		}
	}
	return nil
}

// scalarString renders a scalar field value.
func scalarString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(value)
	}
}

// encodeValue renders a named field value, joining flat lists with "&" and
// lists of lists inner-with-"&", outer-with-"&-".
func encodeValue(value any) string {
	switch v := value.(type) {
	case []string:
		return strings.Join(v, "&")
	case []int:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, "&")
	case [][]string:
		outer := make([]string, len(v))
		for i, inner := range v {
			outer[i] = strings.Join(inner, "&")
		}
		return strings.Join(outer, "&-")
	case [][]any:
		outer := make([]string, len(v))
		for i, inner := range v {
			outer[i] = joinScalars(inner)
		}
		return strings.Join(outer, "&-")
	case []any:
		parts := make([]string, len(v))
		nested := false
		for i, item := range v {
			switch inner := item.(type) {
			case []string:
				parts[i] = strings.Join(inner, "&")
				nested = true
			case []any:
				parts[i] = joinScalars(inner)
				nested = true
			default:
				parts[i] = scalarString(item)
			}
		}
		if nested {
			return strings.Join(parts, "&-")
		}
		return strings.Join(parts, "&")
	default:
		return scalarString(value)
	}
}

// joinScalars joins the scalar renderings of a list with "&".
func joinScalars(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = scalarString(item)
	}
	return strings.Join(parts, "&")
}
