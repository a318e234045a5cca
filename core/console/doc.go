// Package console renders the human-facing output of the deployer: the startup
// banner, usage instructions, one line per completed request and the terminal
// error messages.
//
// Request lines look like
//
//	[14:03:22] ✓ GET /websocket-test.html - 200
//	[14:03:25] ✗ GET /missing.js - 404
//
// Colours come from fatih/color and are dropped when the output is not a terminal.
package console
