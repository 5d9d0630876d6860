// Package server runs the HTTP transport of the quickdo market API.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured timeout.
package server
