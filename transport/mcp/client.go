package mcp

import (
	"context"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/rotpuzzle/game/service"
)

// Requester performs one request/response exchange with the puzzle server
type Requester interface {
	Request(ctx context.Context, text string) (string, error)
}

// Client is a thin MCP client that forwards tool calls to the puzzle server
type Client struct {
	requester Requester
	version   string
	mcpServer *server.MCPServer
}

// NewClient creates a new MCP client that calls the puzzle server
func NewClient(requester Requester, version string) *Client {
	c := &Client{
		requester: requester,
		version:   version,
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Rotation Puzzle",
		c.version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Rotation Puzzle - MCP Interface

Each tool call is forwarded to a running puzzle server as one request.

GAME OBJECTIVE:
The grid holds the numbers 1..rows*cols. Rotate 2x2 blocks until the grid
reads 1, 2, 3, ... left to right, top to bottom.

AVAILABLE TOOLS:
- rotate: Rotate the 2x2 block whose top-left corner is (row, col)
- show: Print the current grid

Rows and columns are zero-based. A block must fit inside the grid.`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "rotate",
		Description: "Rotate a 2x2 block of the puzzle grid",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{service.WordClockwise, service.WordCounter},
					"description": "Rotation direction",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Zero-based row of the block's top-left cell",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Zero-based column of the block's top-left cell",
				},
			},
			Required: []string{"direction", "row", "col"},
		},
	}, c.handleRotate)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "show",
		Description: "Show the current puzzle grid",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleShow)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Tool handlers

func (c *Client) handleRotate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	direction, _ := args["direction"].(string)

	if direction != service.WordClockwise && direction != service.WordCounter {
		return mcp.NewToolResultError(fmt.Sprintf("direction must be %q or %q", service.WordClockwise, service.WordCounter)), nil
	}

	row, err := intArg(args, "row")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	col, err := intArg(args, "col")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	reply, err := c.requester.Request(ctx, fmt.Sprintf("%s %d %d", direction, row, col))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	switch reply {
	case service.ReplyOK:
		return mcp.NewToolResultText(fmt.Sprintf("Rotated block at (%d,%d) %s.", row, col, direction)), nil
	case service.ReplySolved:
		return mcp.NewToolResultText(fmt.Sprintf("Rotated block at (%d,%d) %s. The puzzle is solved!", row, col, direction)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("The server rejected the move (%s). Check that the block fits inside the grid.", reply)), nil
	}
}

func (c *Client) handleShow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reply, err := c.requester.Request(ctx, service.WordShow)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(reply), nil
}

// intArg reads a whole number argument. JSON numbers arrive as float64.
func intArg(args map[string]interface{}, name string) (int, error) {
	switch v := args[name].(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%s must be a whole number, got %v", name, v)
		}
		return int(v), nil
	case int:
		return v, nil
	case nil:
		return 0, fmt.Errorf("%s is required", name)
	default:
		return 0, fmt.Errorf("%s must be a number, got %T", name, v)
	}
}
