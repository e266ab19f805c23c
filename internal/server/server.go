// Package server exposes the automation backend as an MCP server so AI
// agents can drive the desktop over stdio or streamable HTTP.
package server

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/deskhand/deskhand/internal/platform"
	"github.com/deskhand/deskhand/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
}

// Server wraps the MCP server around the platform backend. The backend is
// single-goroutine by contract, so backendMu serializes every tool call.
type Server struct {
	backend   platform.Backend
	backendMu sync.Mutex
	mcp       *mcpserver.MCPServer
}

// New constructs the server and registers all tools.
func New() (*Server, error) {
	backend, err := platform.GetBackend()
	if err != nil {
		return nil, err
	}

	s := &Server{backend: backend}
	s.mcp = mcpserver.NewMCPServer(
		"deskhand",
		version.Version,
	)
	s.registerTools()
	return s, nil
}

// Serve starts the server on the configured transport and blocks.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("mouse_move",
			mcp.WithDescription("Move the mouse cursor to absolute screen coordinates, optionally animated over a duration"),
			mcp.WithNumber("x", mcp.Description("Target X coordinate"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Target Y coordinate"), mcp.Required()),
			mcp.WithBoolean("relative", mcp.Description("Treat x/y as a delta from the current position")),
			mcp.WithNumber("duration_ms", mcp.Description("Animate the move over this many milliseconds")),
		),
		s.handleMouseMove,
	)

	s.mcp.AddTool(
		mcp.NewTool("mouse_click",
			mcp.WithDescription("Click a mouse button at the current cursor position, or at given coordinates"),
			mcp.WithString("button", mcp.Description("Mouse button: left, right, middle, x1, x2 (default left)")),
			mcp.WithNumber("x", mcp.Description("Move here before clicking")),
			mcp.WithNumber("y", mcp.Description("Move here before clicking")),
			mcp.WithBoolean("double", mcp.Description("Double-click")),
		),
		s.handleMouseClick,
	)

	s.mcp.AddTool(
		mcp.NewTool("mouse_scroll",
			mcp.WithDescription("Scroll the mouse wheel. Positive dy scrolls up, positive dx scrolls right"),
			mcp.WithNumber("dx", mcp.Description("Horizontal scroll units")),
			mcp.WithNumber("dy", mcp.Description("Vertical scroll units")),
		),
		s.handleMouseScroll,
	)

	s.mcp.AddTool(
		mcp.NewTool("keyboard_type",
			mcp.WithDescription("Type text character by character into the focused window"),
			mcp.WithString("text", mcp.Description("Text to type"), mcp.Required()),
		),
		s.handleKeyboardType,
	)

	s.mcp.AddTool(
		mcp.NewTool("keyboard_key",
			mcp.WithDescription("Tap a key, optionally with modifiers held (e.g. key='c' modifiers='ctrl')"),
			mcp.WithString("key", mcp.Description("Key name, e.g. enter, tab, a, f5"), mcp.Required()),
			mcp.WithString("modifiers", mcp.Description("Comma-separated modifiers held during the tap, e.g. 'ctrl,shift'")),
		),
		s.handleKeyboardKey,
	)

	s.mcp.AddTool(
		mcp.NewTool("display_list",
			mcp.WithDescription("List connected displays with bounds, work area, scale, refresh rate and primary flag"),
		),
		s.handleDisplayList,
	)

	s.mcp.AddTool(
		mcp.NewTool("window_list",
			mcp.WithDescription("List top-level windows with handle, title, process, bounds and state"),
			mcp.WithBoolean("visible", mcp.Description("Only report visible windows")),
		),
		s.handleWindowList,
	)

	s.mcp.AddTool(
		mcp.NewTool("window_focus",
			mcp.WithDescription("Focus a window by its handle from window_list"),
			mcp.WithNumber("handle", mcp.Description("Window handle"), mcp.Required()),
		),
		s.handleWindowFocus,
	)

	s.mcp.AddTool(
		mcp.NewTool("clipboard_read",
			mcp.WithDescription("Read the system clipboard text"),
		),
		s.handleClipboardRead,
	)

	s.mcp.AddTool(
		mcp.NewTool("clipboard_write",
			mcp.WithDescription("Write text to the system clipboard"),
			mcp.WithString("text", mcp.Description("Text to place on the clipboard"), mcp.Required()),
		),
		s.handleClipboardWrite,
	)

	s.mcp.AddTool(
		mcp.NewTool("permissions",
			mcp.WithDescription("Report which platform automation permissions are granted"),
		),
		s.handlePermissions,
	)
}
