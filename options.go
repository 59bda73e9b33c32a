// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package tl1

// Client configuration options using the functional options pattern

// TID sets the target identifier injected into commands that declare a "tid"
// field. A caller-supplied "tid" value always wins over the injected one.
func TID(tid string) func(*Client) {
	return func(c *Client) {
		c.TID = tid
	}
}

// CTag sets the correlation tag injected into commands that declare a "ctag"
// field (default: DefaultCTAG)
func CTag(ctag string) func(*Client) {
	return func(c *Client) {
		c.CTag = ctag
	}
}

// WithRegistry replaces the embedded command catalog with a custom registry
//
// Example:
//
//	registry, _ := tl1.NewRegistry([]*tl1.CommandDescriptor{
//	    tl1.NewCommandDescriptor("RTRV", "ALM", "RTRV-ALM:[<TID>]:[<AID>]:<CTAG>::::"),
//	})
//	client, _ := tl1.NewClient(transport, "flex.mi01",
//	    tl1.WithRegistry(registry))
func WithRegistry(registry Registry) func(*Client) {
	return func(c *Client) {
		c.registry = registry
	}
}

// WithLogger sets a custom logger for the client (default: NoOpLogger)
func WithLogger(logger Logger) func(*Client) {
	return func(c *Client) {
		c.logger = logger
	}
}
