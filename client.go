// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package tl1

import (
	"context"
	"fmt"
)

// DefaultCTAG is the correlation tag used when none is configured. The
// literal placeholder is intentional: the management channel substitutes a
// real tag downstream, and responses echo whatever was sent.
const DefaultCTAG = "<CTAG>"

// Transport executes a raw TL1 command string against a device and returns
// the raw response text. Implementations own session management, framing and
// timeouts; the client never retries, a transport may.
//
// Implementations must be safe for concurrent use: the client issues calls
// from multiple goroutines without synchronization.
type Transport interface {
	ExecuteRawCommand(ctx context.Context, deviceID, command string) (string, error)
}

// CommandFunc executes one bound command against the client's device.
type CommandFunc func(ctx context.Context, fields Fields) (*ResponseEnvelope, error)

// Client represents a TL1 command facade for a single network element.
//
// The client is stateless with respect to the device: every invocation
// serializes, executes via the transport, and parses. All fields are fixed at
// construction, which makes the client safe for concurrent use.
type Client struct {
	// DeviceID identifies the device on the transport.
	DeviceID string

	// TID is the target identifier injected into commands that declare a
	// "tid" field. Empty means no injection.
	TID string

	// CTag is the correlation tag injected into commands that declare a
	// "ctag" field (default: DefaultCTAG).
	CTag string

	transport Transport
	registry  Registry
	logger    Logger

	// commands holds the eagerly bound command functions, one per registry
	// entry. Built once at construction, read-only afterwards.
	commands map[string]CommandFunc
}

// NewClient creates a TL1 client for the given device with the specified
// transport and options.
//
// Unless WithRegistry overrides it, the client binds the embedded FlexILS
// command catalog.
//
// Example:
//
//	client, err := tl1.NewClient(transport, "flex.mi01",
//	    tl1.TID("MILAN-01"),
//	    tl1.WithLogger(tl1.NewDefaultLogger(tl1.LogLevelInfo)))
func NewClient(transport Transport, deviceID string, opts ...func(*Client)) (*Client, error) {
	client := &Client{
		DeviceID:  deviceID,
		CTag:      DefaultCTAG,
		transport: transport,
		logger:    NewNoOpLogger(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if err := client.validateConfig(); err != nil {
		return nil, err
	}

	if client.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			return nil, err
		}
		client.registry = registry
	}
	client.bindCommands()

	client.logger.Info(context.Background(), "TL1 client created",
		"device_id", client.DeviceID,
		"tid", client.TID,
		"commands", len(client.commands))

	return client, nil
}

// validateConfig checks the configuration assembled from options.
func (c *Client) validateConfig() error {
	if c.transport == nil {
		return fmt.Errorf("tl1: transport must not be nil")
	}
	if c.DeviceID == "" {
		return fmt.Errorf("tl1: device ID must not be empty")
	}
	return nil
}

// bindCommands builds one closure per registry entry. Binding captures the
// descriptor only; field values are supplied per invocation.
func (c *Client) bindCommands() {
	c.commands = make(map[string]CommandFunc, len(c.registry))
	for name, d := range c.registry {
		descriptor := d
		c.commands[name] = func(ctx context.Context, fields Fields) (*ResponseEnvelope, error) {
			return c.execute(ctx, descriptor, fields)
		}
	}
}
