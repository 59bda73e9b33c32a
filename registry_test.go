// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package tl1

import (
	"errors"
	"strings"
	"testing"
)

func TestNewRegistry(t *testing.T) {
	registry, err := NewRegistry([]*CommandDescriptor{
		NewCommandDescriptor("RTRV", "OTS", "RTRV-OTS:[<TID>]:[<AID>]:<CTAG>::::"),
		NewCommandDescriptor("ED", "OTS", "ED-OTS:[<TID>]:<AID>:<CTAG>:::[<LABEL=label>]"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(registry) != 2 {
		t.Errorf("expected 2 entries, got %d", len(registry))
	}
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	_, err := NewRegistry([]*CommandDescriptor{
		NewCommandDescriptor("RMV", "SCH", "RMV-SCH:[<TID>]:<AID>:<CTAG>::"),
		NewCommandDescriptor("RMV", "SCH", "RMV-SCH:[<TID>]:<AID>:<CTAG>::"),
	})
	if err == nil {
		t.Fatal("expected duplicate name error")
	}
	if !strings.Contains(err.Error(), "rmv_sch") {
		t.Errorf("error should name the duplicate, got %v", err)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	registry, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("loading default registry: %v", err)
	}

	d, err := registry.Lookup("rtrv_ots")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Verb != "RTRV" || d.Modifier != "OTS" {
		t.Errorf("unexpected descriptor: %+v", d)
	}

	_, err = registry.Lookup("rtrv_bogus")
	var uerr *UnknownCommandError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *UnknownCommandError, got %v", err)
	}
	if uerr.Name != "rtrv_bogus" {
		t.Errorf("error should carry the name, got %q", uerr.Name)
	}
}

func TestRegistry_Names(t *testing.T) {
	registry, err := NewRegistry([]*CommandDescriptor{
		NewCommandDescriptor("RTRV", "SCH", "RTRV-SCH:[<TID>]:[<AID>]:<CTAG>::::"),
		NewCommandDescriptor("DLT", "SCH", "DLT-SCH:[<TID>]:<AID>:<CTAG>::::"),
		NewCommandDescriptor("ENT", "SCH", "ENT-SCH:[<TID>]:<AID>:<CTAG>::::"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := registry.Names()
	want := []string{"dlt_sch", "ent_sch", "rtrv_sch"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("Names() = %v, want sorted %v", names, want)
		}
	}
}
