package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deskhand/deskhand/internal/output"
	"github.com/deskhand/deskhand/internal/platform"
)

// WindowListResult is the output of `window list`.
type WindowListResult struct {
	OK      bool                  `yaml:"ok"      json:"ok"`
	Windows []platform.WindowInfo `yaml:"windows" json:"windows"`
}

// WindowResult is the output of `window active` and `window at`.
type WindowResult struct {
	OK     bool                 `yaml:"ok"     json:"ok"`
	Found  bool                 `yaml:"found"  json:"found"`
	Window *platform.WindowInfo `yaml:"window,omitempty" json:"window,omitempty"`
}

// WindowActionResult is the output of the mutating window commands.
type WindowActionResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
}

// WindowStateResult is the output of `window state`.
type WindowStateResult struct {
	OK    bool   `yaml:"ok"    json:"ok"`
	State string `yaml:"state" json:"state"`
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Inspect and manage top-level windows",
}

var windowListCmd = &cobra.Command{
	Use:   "list",
	Short: "List top-level windows",
	RunE:  runWindowList,
}

var windowActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the focused window",
	RunE:  runWindowActive,
}

var windowAtCmd = &cobra.Command{
	Use:   "at",
	Short: "Show the window at a screen coordinate",
	RunE:  runWindowAt,
}

var windowFocusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Focus a window by handle",
	RunE:  runWindowFocus,
}

var windowMoveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move a window to a new position",
	RunE:  runWindowMove,
}

var windowResizeCmd = &cobra.Command{
	Use:   "resize",
	Short: "Resize a window",
	RunE:  runWindowResize,
}

var windowStateCmd = &cobra.Command{
	Use:   "state",
	Short: "Get or set a window's state",
	Long:  "Without --set, prints the window's state. With --set, transitions it to normal, minimized, maximized or fullscreen.",
	RunE:  runWindowState,
}

var windowCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Ask a window to close gracefully",
	RunE:  runWindowClose,
}

var windowOpacityCmd = &cobra.Command{
	Use:   "opacity",
	Short: "Set a window's opacity",
	RunE:  runWindowOpacity,
}

var windowOnTopCmd = &cobra.Command{
	Use:   "on-top",
	Short: "Toggle a window's always-on-top state",
	RunE:  runWindowOnTop,
}

func init() {
	rootCmd.AddCommand(windowCmd)
	windowCmd.AddCommand(windowListCmd)
	windowCmd.AddCommand(windowActiveCmd)
	windowCmd.AddCommand(windowAtCmd)
	windowCmd.AddCommand(windowFocusCmd)
	windowCmd.AddCommand(windowMoveCmd)
	windowCmd.AddCommand(windowResizeCmd)
	windowCmd.AddCommand(windowStateCmd)
	windowCmd.AddCommand(windowCloseCmd)
	windowCmd.AddCommand(windowOpacityCmd)
	windowCmd.AddCommand(windowOnTopCmd)

	windowListCmd.Flags().Bool("visible", false, "Only report visible windows")
	windowAtCmd.Flags().Int("x", 0, "X screen coordinate")
	windowAtCmd.Flags().Int("y", 0, "Y screen coordinate")

	for _, c := range []*cobra.Command{windowFocusCmd, windowMoveCmd, windowResizeCmd,
		windowStateCmd, windowCloseCmd, windowOpacityCmd, windowOnTopCmd} {
		c.Flags().Uint64("handle", 0, "Window handle from `window list`")
		c.MarkFlagRequired("handle")
	}

	windowMoveCmd.Flags().Int("x", 0, "New X position")
	windowMoveCmd.Flags().Int("y", 0, "New Y position")
	windowResizeCmd.Flags().Int("width", 0, "New width")
	windowResizeCmd.Flags().Int("height", 0, "New height")
	windowStateCmd.Flags().String("set", "", "Target state: normal, minimized, maximized, fullscreen")
	windowOpacityCmd.Flags().Float64("value", 1.0, "Opacity between 0.0 and 1.0")
	windowOnTopCmd.Flags().Bool("enable", true, "Enable or disable always-on-top")
}

func handleFlag(cmd *cobra.Command) platform.WindowHandle {
	handle, _ := cmd.Flags().GetUint64("handle")
	return platform.WindowHandle(handle)
}

func runWindowList(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	visible, _ := cmd.Flags().GetBool("visible")
	windows, err := backend.ListWindows(visible)
	if err != nil {
		return err
	}
	return output.Print(WindowListResult{OK: true, Windows: windows})
}

func runWindowActive(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	window, err := backend.ActiveWindow()
	if err != nil {
		return err
	}
	return output.Print(WindowResult{OK: true, Found: window != nil, Window: window})
}

func runWindowAt(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")
	window, err := backend.WindowAt(x, y)
	if err != nil {
		return err
	}
	return output.Print(WindowResult{OK: true, Found: window != nil, Window: window})
}

func runWindowFocus(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	if err := backend.FocusWindow(handleFlag(cmd)); err != nil {
		return err
	}
	return output.Print(WindowActionResult{OK: true, Action: "window-focus"})
}

func runWindowMove(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")
	if err := backend.MoveWindow(handleFlag(cmd), x, y); err != nil {
		return err
	}
	return output.Print(WindowActionResult{OK: true, Action: "window-move"})
}

func runWindowResize(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	if err := backend.ResizeWindow(handleFlag(cmd), width, height); err != nil {
		return err
	}
	return output.Print(WindowActionResult{OK: true, Action: "window-resize"})
}

func runWindowState(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	target, _ := cmd.Flags().GetString("set")
	if target == "" {
		state, err := backend.GetWindowState(handleFlag(cmd))
		if err != nil {
			return err
		}
		return output.Print(WindowStateResult{OK: true, State: state.String()})
	}
	state, err := platform.ParseWindowState(target)
	if err != nil {
		return err
	}
	if err := backend.SetWindowState(handleFlag(cmd), state); err != nil {
		return err
	}
	return output.Print(WindowActionResult{OK: true, Action: "window-state"})
}

func runWindowClose(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	if err := backend.CloseWindow(handleFlag(cmd)); err != nil {
		return err
	}
	return output.Print(WindowActionResult{OK: true, Action: "window-close"})
}

func runWindowOpacity(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	value, _ := cmd.Flags().GetFloat64("value")
	if err := backend.SetWindowOpacity(handleFlag(cmd), value); err != nil {
		return err
	}
	return output.Print(WindowActionResult{OK: true, Action: "window-opacity"})
}

func runWindowOnTop(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	enable, _ := cmd.Flags().GetBool("enable")
	if err := backend.SetWindowAlwaysOnTop(handleFlag(cmd), enable); err != nil {
		return err
	}
	return output.Print(WindowActionResult{OK: true, Action: "window-on-top"})
}
