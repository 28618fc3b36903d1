// Package app wires a share together from validated configuration.
//
// It builds the payload, the random URL prefix, the access counter and the
// HTTP server from Config, and runs the share until either budget is spent
// or the operator interrupts it.
package app
