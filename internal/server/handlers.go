package server

import (
	"context"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/deskhand/deskhand/internal/output"
	"github.com/deskhand/deskhand/internal/platform"
)

func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

func intParam(params map[string]interface{}, key string, def int) int {
	if v, ok := params[key].(float64); ok {
		return int(v)
	}
	return def
}

func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}

// resultText serializes a result to YAML for an MCP text response.
func resultText(v interface{}) *mcp.CallToolResult {
	text, err := output.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(text)
}

func (s *Server) handleMouseMove(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	x := intParam(params, "x", 0)
	y := intParam(params, "y", 0)
	relative := boolParam(params, "relative", false)
	duration := time.Duration(intParam(params, "duration_ms", 0)) * time.Millisecond

	s.backendMu.Lock()
	defer s.backendMu.Unlock()

	var err error
	if relative {
		err = s.backend.MouseMoveRel(x, y, duration)
	} else {
		err = s.backend.MouseMoveTo(x, y, duration)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pos, _ := s.backend.MousePosition()
	return resultText(map[string]interface{}{"ok": true, "x": pos.X, "y": pos.Y}), nil
}

func (s *Server) handleMouseClick(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	button, err := platform.ParseMouseButton(stringParam(params, "button", "left"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	_, hasX := params["x"]
	_, hasY := params["y"]
	if hasX != hasY {
		return mcp.NewToolResultError("x and y must be provided together"), nil
	}

	s.backendMu.Lock()
	defer s.backendMu.Unlock()

	if hasX {
		x := intParam(params, "x", 0)
		y := intParam(params, "y", 0)
		if err := s.backend.MouseMoveTo(x, y, 0); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	clicks := 1
	if boolParam(params, "double", false) {
		clicks = 2
	}
	for i := 0; i < clicks; i++ {
		if err := s.backend.MousePress(button); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := s.backend.MouseRelease(button); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if clicks > 1 && i == 0 {
			time.Sleep(50 * time.Millisecond)
		}
	}
	return resultText(map[string]interface{}{"ok": true, "action": "mouse-click"}), nil
}

func (s *Server) handleMouseScroll(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.backendMu.Lock()
	defer s.backendMu.Unlock()

	if err := s.backend.MouseScroll(intParam(params, "dx", 0), intParam(params, "dy", 0)); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultText(map[string]interface{}{"ok": true, "action": "mouse-scroll"}), nil
}

func (s *Server) handleKeyboardType(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := stringParam(request.GetArguments(), "text", "")

	s.backendMu.Lock()
	defer s.backendMu.Unlock()

	if err := s.backend.TypeUnicode(text); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultText(map[string]interface{}{"ok": true, "action": "keyboard-type"}), nil
}

func (s *Server) handleKeyboardKey(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	key := platform.Key(stringParam(params, "key", ""))

	var modifiers []platform.Key
	if raw := stringParam(params, "modifiers", ""); raw != "" {
		for _, m := range strings.Split(raw, ",") {
			modifiers = append(modifiers, platform.Key(strings.TrimSpace(m)))
		}
	}

	s.backendMu.Lock()
	defer s.backendMu.Unlock()

	var held []platform.Key
	releaseHeld := func() {
		for i := len(held) - 1; i >= 0; i-- {
			s.backend.KeyRelease(held[i])
		}
	}
	for _, m := range modifiers {
		if err := s.backend.KeyPress(m); err != nil {
			releaseHeld()
			return mcp.NewToolResultError(err.Error()), nil
		}
		held = append(held, m)
	}
	if err := s.backend.KeyPress(key); err != nil {
		releaseHeld()
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.backend.KeyRelease(key); err != nil {
		releaseHeld()
		return mcp.NewToolResultError(err.Error()), nil
	}
	releaseHeld()
	return resultText(map[string]interface{}{"ok": true, "action": "keyboard-key"}), nil
}

func (s *Server) handleDisplayList(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.backendMu.Lock()
	defer s.backendMu.Unlock()

	displays, err := s.backend.Displays()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultText(map[string]interface{}{"ok": true, "displays": displays}), nil
}

func (s *Server) handleWindowList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	visible := boolParam(request.GetArguments(), "visible", false)

	s.backendMu.Lock()
	defer s.backendMu.Unlock()

	windows, err := s.backend.ListWindows(visible)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultText(map[string]interface{}{"ok": true, "windows": windows}), nil
}

func (s *Server) handleWindowFocus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	handle := platform.WindowHandle(intParam(request.GetArguments(), "handle", 0))

	s.backendMu.Lock()
	defer s.backendMu.Unlock()

	if err := s.backend.FocusWindow(handle); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultText(map[string]interface{}{"ok": true, "action": "window-focus"}), nil
}

func (s *Server) handleClipboardRead(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.backendMu.Lock()
	defer s.backendMu.Unlock()

	text, err := s.backend.ClipboardGetText()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultText(map[string]interface{}{"ok": true, "text": text}), nil
}

func (s *Server) handleClipboardWrite(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := stringParam(request.GetArguments(), "text", "")

	s.backendMu.Lock()
	defer s.backendMu.Unlock()

	if err := s.backend.ClipboardSetText(text); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultText(map[string]interface{}{"ok": true, "action": "clipboard-write"}), nil
}

func (s *Server) handlePermissions(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.backendMu.Lock()
	defer s.backendMu.Unlock()

	granted, err := s.backend.CheckPermissions()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultText(map[string]interface{}{
		"ok":      true,
		"backend": s.backend.Name(),
		"granted": granted,
	}), nil
}
