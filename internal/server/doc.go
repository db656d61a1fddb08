// Package server implements the MCP (Model Context Protocol) server exposing
// Street View tools.
//
// This package provides a JSON-RPC 2.0 server that wraps the Street View
// client and the output-directory artifact store behind the MCP protocol.
// It's designed to work with Claude and other MCP-compatible clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - get_street_view: Fetch an image by address, coordinates, or panorama ID
//     and save it to the output directory
//   - get_metadata: Check panorama availability and capture details
//   - open_image_locally: Open a saved image with the OS default viewer
//   - create_html_page: Assemble an HTML page from caller-supplied fragments
//
// Each tool call is a single-shot validate, delegate, persist sequence. There
// is no retry and no partial-completion recovery: a failed write after a
// successful fetch is reported and the fetched bytes are discarded.
//
// # Location Selectors
//
// The fetching tools accept exactly one of three mutually exclusive selector
// arguments: location (address), lat_lng (coordinates), or pano_id. Zero or
// multiple selectors are rejected before any network request is made.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(client, store, logger)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
