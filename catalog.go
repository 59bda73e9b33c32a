// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package tl1

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed catalog.toml
var catalogTOML []byte

type catalogFile struct {
	Commands []catalogCommand `toml:"command"`
}

type catalogCommand struct {
	Verb              string            `toml:"verb"`
	Modifier          string            `toml:"modifier"`
	Template          string            `toml:"template"`
	WireVerb          string            `toml:"wire_verb"`
	WireModifierField string            `toml:"wire_modifier_field"`
	Rename            map[string]string `toml:"rename"`
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     Registry
	defaultRegistryErr  error
)

// DefaultRegistry returns the registry built from the embedded command
// catalog. The catalog is parsed once; subsequent calls return the same
// registry.
func DefaultRegistry() (Registry, error) {
	defaultRegistryOnce.Do(func() {
		defaultRegistry, defaultRegistryErr = loadCatalog(catalogTOML)
	})
	return defaultRegistry, defaultRegistryErr
}

// loadCatalog parses catalog TOML into a registry.
func loadCatalog(data []byte) (Registry, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("tl1: parsing command catalog: %w", err)
	}

	descriptors := make([]*CommandDescriptor, 0, len(file.Commands))
	for _, entry := range file.Commands {
		if entry.Verb == "" || entry.Modifier == "" || entry.Template == "" {
			return nil, fmt.Errorf("tl1: catalog entry %s-%s: verb, modifier and template are required",
				entry.Verb, entry.Modifier)
		}
		d := NewCommandDescriptor(entry.Verb, entry.Modifier, entry.Template)
		d.WireVerb = entry.WireVerb
		d.WireModifierField = entry.WireModifierField
		if len(entry.Rename) > 0 {
			d.Rename = renameTable(entry.Rename)
		}
		descriptors = append(descriptors, d)
	}
	return NewRegistry(descriptors)
}

// renameTable compiles a key mapping into a rename hook. The hook copies the
// record, moves each mapped key to its new name, and fills a missing source
// key with an empty string so downstream consumers see a stable shape.
func renameTable(mapping map[string]string) RenameFunc {
	table := make(map[string]string, len(mapping))
	for from, to := range mapping {
		table[from] = to
	}
	return func(record Record) Record {
		out := make(Record, len(record))
		for key, value := range record {
			out[key] = value
		}
		for from, to := range table {
			value, ok := out[from]
			if !ok {
				out[to] = ""
				continue
			}
			delete(out, from)
			out[to] = value
		}
		return out
	}
}
