// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

// Package tl1 provides a simple, declarative API for driving optical network
// elements with the TL1 command protocol.
//
// The library models TL1 commands as data: each command carries the vendor
// help-text template it was documented with, and the template itself is
// classified into typed field descriptors. Serialization to the exact wire
// string, response parsing into structured records, and error classification
// all derive from those descriptors. The raw transport is external: callers
// inject any implementation of the Transport interface (typically an NMS CLI
// channel) and the library performs exactly one synchronous round-trip per
// command invocation.
//
// # Quick Start
//
// Create a client bound to a device and invoke registered commands by name:
//
//	client, err := tl1.NewClient(transport, "device-uuid-1",
//	    tl1.TID("FLEX.MI01"),
//	    tl1.WithLogger(tl1.NewDefaultLogger(tl1.LogLevelInfo)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	res, err := client.Do(ctx, "rtrv_ots", tl1.Fields{"aid": "1-A-1-L1"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, record := range res.Records {
//	    fmt.Println(record["AID"], record["OPERSTATE"])
//	}
//
// # Command Resolution
//
// Every registered command is reachable two ways, and both produce
// byte-identical wire requests:
//
//   - Eagerly: Commands() returns the callables bound at construction,
//     useful for discovering the command surface up front.
//   - Lazily: Do() resolves the command name in the registry at call time.
//
// # Response Querying
//
// Responses expose their records as JSON for path-based querying with gjson:
//
//	operstate := res.GetValue("record.0.OPERSTATE").String()
//
// # Error Handling
//
// Device rejections (DENY without an ALREADY marker) surface as
// *CommandDeniedError carrying the device id, the exact command text, and the
// raw response. Malformed or untagged responses surface as *ProtocolError.
// The library never retries; retry and backoff policy belongs to the
// transport or its caller.
//
// # Thread Safety
//
// Registries are immutable after construction and serialization/parsing are
// pure functions, so a client may be used from any number of goroutines.
// Ordering per device (one in-flight command at a time, so correlation tags
// stay meaningful) is the caller's responsibility.
//
// # References
//
//   - TL1 (Transaction Language 1): Telcordia GR-831
//   - gjson: https://github.com/tidwall/gjson
//   - sjson: https://github.com/tidwall/sjson
package tl1
