// Package mcp exposes the rotation puzzle as Model Context Protocol tools.
//
// The MCP client is another puzzle client: every tool call becomes exactly
// one request to the running server, so the server stays the only owner of
// the grid.
//
// Tools:
//
//   - rotate: {direction: "clockwise"|"counter", row, col}
//   - show: prints the grid
//
// Usage:
//
//	client := mcp.NewClient(api.NewClient(socketPath), version)
//	server.ServeStdio(client.GetMCPServer())
package mcp
