package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

// fakeRequester answers from a fixed table and records requests
type fakeRequester struct {
	replies  map[string]string
	err      error
	requests []string
}

func (f *fakeRequester) Request(ctx context.Context, text string) (string, error) {
	f.requests = append(f.requests, text)
	if f.err != nil {
		return "", f.err
	}
	if reply, ok := f.replies[text]; ok {
		return reply, nil
	}
	return "error", nil
}

func callTool(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("Expected result content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}
	return text.Text
}

func TestNewClient(t *testing.T) {
	client := NewClient(&fakeRequester{}, "1.0.0")

	if client.GetMCPServer() == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_handleRotate(t *testing.T) {
	requester := &fakeRequester{replies: map[string]string{
		"clockwise 0 1": "OK",
		"counter 1 1":   "solved",
	}}
	client := NewClient(requester, "1.0.0")
	ctx := context.Background()

	tests := []struct {
		name        string
		args        map[string]interface{}
		wantError   bool
		wantContain string
	}{
		{"ok", map[string]interface{}{"direction": "clockwise", "row": float64(0), "col": float64(1)}, false, "Rotated block at (0,1) clockwise"},
		{"solved", map[string]interface{}{"direction": "counter", "row": 1, "col": 1}, false, "solved"},
		{"rejected", map[string]interface{}{"direction": "counter", "row": float64(8), "col": float64(8)}, true, "rejected"},
		{"bad direction", map[string]interface{}{"direction": "left", "row": float64(0), "col": float64(0)}, true, "direction must be"},
		{"fractional row", map[string]interface{}{"direction": "clockwise", "row": 0.5, "col": float64(0)}, true, "whole number"},
		{"missing col", map[string]interface{}{"direction": "clockwise", "row": float64(0)}, true, "col is required"},
		{"string row", map[string]interface{}{"direction": "clockwise", "row": "1", "col": float64(0)}, true, "must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := client.handleRotate(ctx, callTool("rotate", tt.args))
			if err != nil {
				t.Fatalf("handleRotate failed: %v", err)
			}
			if result.IsError != tt.wantError {
				t.Errorf("Expected IsError=%v, got %v", tt.wantError, result.IsError)
			}
			if text := resultText(t, result); !strings.Contains(text, tt.wantContain) {
				t.Errorf("Expected %q in result, got: %s", tt.wantContain, text)
			}
		})
	}

	// Invalid arguments never reach the server
	want := []string{"clockwise 0 1", "counter 1 1", "counter 8 8"}
	if strings.Join(requester.requests, ",") != strings.Join(want, ",") {
		t.Errorf("Unexpected requests %q", requester.requests)
	}
}

func TestClient_handleShow(t *testing.T) {
	render := "+---+---+\n|  1|  2|\n+---+---+\n|  3|  4|\n+---+---+\n"
	client := NewClient(&fakeRequester{replies: map[string]string{"show": render}}, "1.0.0")

	result, err := client.handleShow(context.Background(), callTool("show", nil))
	if err != nil {
		t.Fatalf("handleShow failed: %v", err)
	}
	if got := resultText(t, result); got != render {
		t.Errorf("Expected grid render, got %q", got)
	}
}

func TestClient_RequestFailure(t *testing.T) {
	client := NewClient(&fakeRequester{err: errors.New("queue not found")}, "1.0.0")

	result, err := client.handleShow(context.Background(), callTool("show", nil))
	if err != nil {
		t.Fatalf("handleShow failed: %v", err)
	}
	if !result.IsError {
		t.Error("Expected an error result")
	}
	if text := resultText(t, result); !strings.Contains(text, "queue not found") {
		t.Errorf("Expected transport error in result, got %q", text)
	}
}
