// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package tl1

import (
	"fmt"
	"sort"
)

// Registry maps method names to command descriptors. It is populated once and
// treated as read-only afterwards, which makes it safe for concurrent lookup
// without synchronization.
type Registry map[string]*CommandDescriptor

// NewRegistry builds a registry from descriptors. Duplicate method names are
// rejected rather than silently shadowed.
func NewRegistry(descriptors []*CommandDescriptor) (Registry, error) {
	registry := make(Registry, len(descriptors))
	for _, d := range descriptors {
		if existing, ok := registry[d.Name]; ok {
			return nil, fmt.Errorf("tl1: duplicate command name %q (verb %s, modifier %s)",
				d.Name, existing.Verb, existing.Modifier)
		}
		registry[d.Name] = d
	}
	return registry, nil
}

// Lookup resolves a method name to its descriptor. A miss fails with
// *UnknownCommandError.
func (r Registry) Lookup(name string) (*CommandDescriptor, error) {
	d, ok := r[name]
	if !ok {
		return nil, &UnknownCommandError{Name: name}
	}
	return d, nil
}

// Names returns the registered method names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
