// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package tl1

import "strings"

// CommandDescriptor is the immutable description of one TL1 command: its
// declared verb/modifier, its classified template, and optional wire
// overrides and response post-processing.
type CommandDescriptor struct {
	// Name is the derived method name, e.g. "rtrv_ots" or "opr_valroute_oel".
	// It must be unique within a Registry.
	Name string

	// Verb is the declared verb, e.g. "RTRV".
	Verb string

	// Modifier is the declared modifier, e.g. "VALROUTE-OEL".
	Modifier string

	// WireVerb, when set, replaces Verb in the serialized verb-modifier
	// section. State-transition commands declare one logical verb but emit
	// another on the wire; the substitution is always explicit here, never
	// inferred from context.
	WireVerb string

	// WireModifierField, when set, names the field whose value replaces
	// Modifier in the serialized verb-modifier section. Used by the
	// maintenance-state commands, where the wire modifier is the entity type
	// being removed from or restored to service.
	WireModifierField string

	// Template is the classified help-text template.
	Template CommandTemplate

	// Rename post-processes each parsed response record, typically giving
	// positional_param_{i}_{j} keys their documented names. Nil means
	// identity.
	Rename RenameFunc
}

// NewCommandDescriptor builds a descriptor from a verb, a modifier and the
// command's help-text template, deriving the registry name.
func NewCommandDescriptor(verb, modifier, template string) *CommandDescriptor {
	return &CommandDescriptor{
		Name:     MethodName(verb, modifier),
		Verb:     verb,
		Modifier: modifier,
		Template: ParseTemplate(verb, modifier, template),
	}
}

// MethodName derives the registry key for a verb/modifier pair:
// lowercased, joined with "_", with "-" in the modifier replaced by "_".
// Example: ("OPR", "VALROUTE-OEL") -> "opr_valroute_oel".
func MethodName(verb, modifier string) string {
	return strings.ToLower(verb) + "_" + strings.ReplaceAll(strings.ToLower(modifier), "-", "_")
}

// Fields holds a command's field values keyed by derived field name.
//
// Supported value shapes:
//   - scalars: string (or anything fmt.Sprint can render)
//   - flat lists: []string, []int, []any, joined with "&" on the wire
//   - lists of lists: [][]string, [][]any, or []any holding lists, with inner
//     elements joined with "&" and outer with "&-"
//
// A nil value behaves like an absent field.
//
// Example:
//
//	fields := tl1.Fields{}.
//	    Set("aid", "1-A-1-L1").
//	    Set("label", "milan-rome").
//	    Set("carrierlist", []int{1, 2, 3})
type Fields map[string]any

// Set stores a field value and returns the map for chaining.
func (f Fields) Set(name string, value any) Fields {
	if f == nil {
		f = Fields{}
	}
	f[name] = value
	return f
}

// Clone returns a shallow copy of the field map. Cloning nil yields an empty
// non-nil map.
func (f Fields) Clone() Fields {
	clone := make(Fields, len(f))
	for name, value := range f {
		clone[name] = value
	}
	return clone
}

// CommandValue pairs a command descriptor with the field values of one
// invocation. It is the unit of serialization.
type CommandValue struct {
	// Descriptor identifies the command being invoked.
	Descriptor *CommandDescriptor

	// Fields holds the invocation's field values.
	Fields Fields
}
