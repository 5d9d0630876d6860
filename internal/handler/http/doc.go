// Package http implements the REST transport of the quickdo market API.
//
// It wires the chi router, decodes requests, maps service errors to HTTP
// statuses and carries the cross-cutting middleware: request tracing, access
// logging, request timeouts, the application key gate, token authentication
// and the administrator gate.
package http
