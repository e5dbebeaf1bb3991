// Package server implements the MCP (Model Context Protocol) server for LaTeX rendering tools.
//
// This package provides a JSON-RPC 2.0 server that exposes LaTeX-to-image
// rendering through the MCP protocol. It's designed to work with Claude and
// other MCP-compatible clients, letting AI systems hand callers a readable
// picture of a formula or a worked solution.
//
// # Protocol
//
// The default transport is stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// An HTTP transport is also available (see Handler): POST /mcp carries one
// JSON-RPC request per call, and GET /health answers "OK" for liveness
// probes.
//
// # Available Tools
//
//   - render_latex: Render an expression to a base64 PNG attachment
//   - render_solution: Render labeled solution steps plus a boldfaced
//     answer as one stacked image
//   - get_image_url: Build the rendering URL without fetching bytes
//   - check_latex_syntax: Best-effort lint with an optional dry-run render
//
// # Rendering Backends
//
// The backend is fixed at startup via Config: "local" runs an in-process
// mathtext engine; "remote" fetches from a rendering endpoint and degrades
// to a fallback URL when the fetch fails. Tool handlers depend only on the
// render.Renderer interface, never on the selected backend.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Remote fetch failures are not errors: the tool answers with a text block
// carrying the locator instead of an image block.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(server.Config{})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
