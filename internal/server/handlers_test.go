package server

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestParamHelpers(t *testing.T) {
	params := map[string]interface{}{
		"text":    "hello",
		"x":       float64(42),
		"visible": true,
	}

	if got := stringParam(params, "text", ""); got != "hello" {
		t.Errorf("stringParam = %q, want hello", got)
	}
	if got := stringParam(params, "missing", "def"); got != "def" {
		t.Errorf("stringParam default = %q, want def", got)
	}

	// JSON numbers arrive as float64.
	if got := intParam(params, "x", 0); got != 42 {
		t.Errorf("intParam = %d, want 42", got)
	}
	if got := intParam(params, "missing", 7); got != 7 {
		t.Errorf("intParam default = %d, want 7", got)
	}
	if got := intParam(params, "text", 7); got != 7 {
		t.Errorf("intParam on non-number = %d, want default", got)
	}

	if !boolParam(params, "visible", false) {
		t.Error("boolParam = false, want true")
	}
	if boolParam(params, "missing", false) {
		t.Error("boolParam default = true, want false")
	}
}

// A lone coordinate must be rejected before any input is synthesized.
func TestMouseClickRequiresCoordinatePair(t *testing.T) {
	s := &Server{}
	for _, args := range []map[string]interface{}{
		{"x": float64(10)},
		{"y": float64(10)},
	} {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = args
		res, err := s.handleMouseClick(context.Background(), req)
		if err != nil {
			t.Fatalf("args %v: unexpected error: %v", args, err)
		}
		if !res.IsError {
			t.Errorf("args %v: want error result for a lone coordinate", args)
		}
	}
}
