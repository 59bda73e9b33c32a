// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package tl1

import (
	"context"
	"fmt"
)

// Commands returns the eagerly bound command functions keyed by method name,
// e.g. "rtrv_ots" or "opr_valroute_oel". The returned map is a copy; mutating
// it does not affect the client.
//
// Example:
//
//	for name, run := range client.Commands() {
//	    fmt.Println("available:", name)
//	    _ = run
//	}
func (c *Client) Commands() map[string]CommandFunc {
	commands := make(map[string]CommandFunc, len(c.commands))
	for name, fn := range c.commands {
		commands[name] = fn
	}
	return commands
}

// Command returns the bound function for one method name. An unknown name
// fails with *UnknownCommandError.
func (c *Client) Command(name string) (CommandFunc, error) {
	fn, ok := c.commands[name]
	if !ok {
		return nil, &UnknownCommandError{Name: name}
	}
	return fn, nil
}

// Do resolves a method name in the registry and executes it with the given
// fields. It is the lazy twin of the eagerly bound Commands(): both paths
// produce identical wire text for identical inputs.
//
// Example:
//
//	res, err := client.Do(ctx, "rtrv_ots", tl1.Fields{"aid": "1-A-1-L1"})
func (c *Client) Do(ctx context.Context, name string, fields Fields) (*ResponseEnvelope, error) {
	d, err := c.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	return c.execute(ctx, d, fields)
}

// execute runs the full command pipeline: default injection, serialization,
// transport execution, denial classification, parsing and record renaming.
func (c *Client) execute(ctx context.Context, d *CommandDescriptor, fields Fields) (*ResponseEnvelope, error) {
	merged := c.mergeDefaults(d, fields)

	wire, err := CommandValue{Descriptor: d, Fields: merged}.Wire()
	if err != nil {
		return nil, err
	}

	c.logger.Debug(ctx, "TL1 command request",
		"device_id", c.DeviceID,
		"command", d.Name,
		"wire", wire)

	raw, err := c.transport.ExecuteRawCommand(ctx, c.DeviceID, wire)
	if err != nil {
		return nil, fmt.Errorf("executing %s on device %s: %w", d.Name, c.DeviceID, err)
	}

	if Denied(raw) {
		c.logger.Warn(ctx, "TL1 command denied",
			"device_id", c.DeviceID,
			"command", d.Name,
			"response", raw)
		return nil, &CommandDeniedError{
			DeviceID: c.DeviceID,
			Command:  wire,
			Response: raw,
		}
	}

	ctag := DefaultCTAG
	if value, ok := merged["ctag"]; ok && value != nil {
		ctag = scalarString(value)
	}
	res, err := Parse(raw, ctag)
	if err != nil {
		return nil, err
	}
	res.renameRecords(d.Rename)

	c.logger.Debug(ctx, "TL1 command response",
		"device_id", c.DeviceID,
		"command", d.Name,
		"status", string(res.Status),
		"records", len(res.Records))

	return res, nil
}

// mergeDefaults injects the client's TID and correlation tag into commands
// whose template declares them, without overriding caller-supplied values.
// The caller's map is never mutated.
func (c *Client) mergeDefaults(d *CommandDescriptor, fields Fields) Fields {
	merged := fields.Clone()
	if c.TID != "" && d.Template.HasField("tid") {
		if _, ok := merged["tid"]; !ok {
			merged["tid"] = c.TID
		}
	}
	if d.Template.HasField("ctag") {
		if _, ok := merged["ctag"]; !ok {
			merged["ctag"] = c.CTag
		}
	}
	return merged
}
