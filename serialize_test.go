// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package tl1

import (
	"errors"
	"testing"
)

func mustDescriptor(t *testing.T, name string) *CommandDescriptor {
	t.Helper()
	registry, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("loading default registry: %v", err)
	}
	d, err := registry.Lookup(name)
	if err != nil {
		t.Fatalf("looking up %s: %v", name, err)
	}
	return d
}

func TestWire_RetrieveOts(t *testing.T) {
	d := mustDescriptor(t, "rtrv_ots")

	tests := []struct {
		name   string
		fields Fields
		want   string
	}{
		{
			name:   "aid only",
			fields: Fields{"aid": "1-A-1-L1", "ctag": DefaultCTAG},
			want:   "RTRV-OTS::1-A-1-L1:<CTAG>::::;",
		},
		{
			name:   "tid and aid",
			fields: Fields{"tid": "MILAN-01", "aid": "1-A-1-L1", "ctag": DefaultCTAG},
			want:   "RTRV-OTS:MILAN-01:1-A-1-L1:<CTAG>::::;",
		},
		{
			name:   "bare retrieve",
			fields: Fields{"ctag": DefaultCTAG},
			want:   "RTRV-OTS:::<CTAG>::::;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (CommandValue{Descriptor: d, Fields: tt.fields}).Wire()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWire_NamedFields(t *testing.T) {
	d := mustDescriptor(t, "ed_ots")

	got, err := (CommandValue{Descriptor: d, Fields: Fields{
		"aid":   "1-A-1-L1",
		"ctag":  "AB12",
		"label": "milan-rome",
	}}).Wire()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "ED-OTS::1-A-1-L1:AB12:::LABEL=milan-rome;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWire_ListEncodings(t *testing.T) {
	d := NewCommandDescriptor("ED", "TEST",
		"ED-TEST:[<TID>]:<AID>:<CTAG>:::[<FLAT=flat>][,<NESTED=nested>]")

	tests := []struct {
		name   string
		fields Fields
		want   string
	}{
		{
			name:   "flat string list",
			fields: Fields{"aid": "1", "ctag": "C", "flat": []string{"a", "b", "c"}},
			want:   "ED-TEST::1:C:::FLAT=a&b&c;",
		},
		{
			name:   "flat int list",
			fields: Fields{"aid": "1", "ctag": "C", "flat": []int{1, 2, 3}},
			want:   "ED-TEST::1:C:::FLAT=1&2&3;",
		},
		{
			name:   "list of lists",
			fields: Fields{"aid": "1", "ctag": "C", "nested": [][]string{{"1", "2"}, {"3", "4"}}},
			want:   "ED-TEST::1:C:::NESTED=1&2&-3&4;",
		},
		{
			name: "mixed any list of lists",
			fields: Fields{"aid": "1", "ctag": "C",
				"nested": []any{[]any{"x", 1}, []any{"y", 2}}},
			want: "ED-TEST::1:C:::NESTED=x&1&-y&2;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (CommandValue{Descriptor: d, Fields: tt.fields}).Wire()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWire_RequiredNamedMissing(t *testing.T) {
	d := mustDescriptor(t, "ent_ocrs")

	_, err := (CommandValue{Descriptor: d, Fields: Fields{
		"fromaid": "1-A-1",
		"toaid":   "1-A-2",
		"ctag":    "C",
	}}).Wire()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Field != "freqslotplantype" {
		t.Errorf("expected freqslotplantype to be reported, got %q", verr.Field)
	}
}

func TestWire_UndeclaredField(t *testing.T) {
	d := mustDescriptor(t, "rtrv_ots")

	_, err := (CommandValue{Descriptor: d, Fields: Fields{
		"aid":   "1-A-1-L1",
		"ctag":  "C",
		"bogus": "x",
	}}).Wire()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Field != "bogus" {
		t.Errorf("expected bogus to be reported, got %q", verr.Field)
	}
}

func TestWire_RequiredPositionalPlaceholder(t *testing.T) {
	d := mustDescriptor(t, "dlt_ocrs")

	// toaid missing keeps its column so fromaid stays addressable.
	got, err := (CommandValue{Descriptor: d, Fields: Fields{
		"fromaid": "1-A-1",
		"ctag":    "C",
	}}).Wire()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "DLT-OCRS::1-A-1,:C::;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWire_MaintenanceVerbSubstitution(t *testing.T) {
	tests := []struct {
		name    string
		command string
		fields  Fields
		want    string
	}{
		{
			name:    "put maintenance emits RMV with entity type",
			command: "put_maintenance",
			fields:  Fields{"aidtype": "OCH", "aid": "1-A-1-L1", "ctag": "C"},
			want:    "RMV-OCH::1-A-1-L1:C::;",
		},
		{
			name:    "put maintenance with mode",
			command: "put_maintenance",
			fields:  Fields{"aidtype": "SCH", "aid": "1-A-1-L1-1", "ctag": "C", "mode": "NORM"},
			want:    "RMV-SCH::1-A-1-L1-1:C::NORM;",
		},
		{
			name:    "restore keeps declared verb",
			command: "rst_maintenance",
			fields:  Fields{"aidtype": "OTS", "aid": "1-A-1-L1", "ctag": "C"},
			want:    "RST-OTS::1-A-1-L1:C::::;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustDescriptor(t, tt.command)
			got, err := (CommandValue{Descriptor: d, Fields: tt.fields}).Wire()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWire_MissingModifierField(t *testing.T) {
	d := mustDescriptor(t, "put_maintenance")

	_, err := (CommandValue{Descriptor: d, Fields: Fields{
		"aid":  "1-A-1-L1",
		"ctag": "C",
	}}).Wire()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Field != "aidtype" {
		t.Errorf("expected aidtype to be reported, got %q", verr.Field)
	}
}

func TestWire_NilDescriptor(t *testing.T) {
	_, err := (CommandValue{Fields: Fields{"aid": "1"}}).Wire()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}
