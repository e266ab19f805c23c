package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/deskhand/deskhand/internal/output"
	"github.com/deskhand/deskhand/internal/platform"
)

// MousePositionResult is the output of `mouse position`.
type MousePositionResult struct {
	OK bool `yaml:"ok" json:"ok"`
	X  int  `yaml:"x"  json:"x"`
	Y  int  `yaml:"y"  json:"y"`
}

// MouseActionResult is the output of the mutating mouse commands.
type MouseActionResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
}

// MousePressedResult is the output of `mouse pressed`.
type MousePressedResult struct {
	OK      bool   `yaml:"ok"      json:"ok"`
	Button  string `yaml:"button"  json:"button"`
	Pressed bool   `yaml:"pressed" json:"pressed"`
}

var mouseCmd = &cobra.Command{
	Use:   "mouse",
	Short: "Query and synthesize mouse input",
}

var mousePositionCmd = &cobra.Command{
	Use:   "position",
	Short: "Print the cursor position in virtual-screen coordinates",
	RunE:  runMousePosition,
}

var mouseMoveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move the cursor to absolute or relative coordinates",
	RunE:  runMouseMove,
}

var mouseClickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click at the current cursor position",
	RunE:  runMouseClick,
}

var mousePressCmd = &cobra.Command{
	Use:   "press",
	Short: "Press and hold a mouse button",
	RunE:  runMousePress,
}

var mouseReleaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Release a held mouse button",
	RunE:  runMouseRelease,
}

var mouseScrollCmd = &cobra.Command{
	Use:   "scroll",
	Short: "Scroll vertically and/or horizontally",
	RunE:  runMouseScroll,
}

var mousePressedCmd = &cobra.Command{
	Use:   "pressed",
	Short: "Report whether a mouse button is held down",
	RunE:  runMousePressed,
}

func init() {
	rootCmd.AddCommand(mouseCmd)
	mouseCmd.AddCommand(mousePositionCmd)
	mouseCmd.AddCommand(mouseMoveCmd)
	mouseCmd.AddCommand(mouseClickCmd)
	mouseCmd.AddCommand(mousePressCmd)
	mouseCmd.AddCommand(mouseReleaseCmd)
	mouseCmd.AddCommand(mouseScrollCmd)
	mouseCmd.AddCommand(mousePressedCmd)

	mouseMoveCmd.Flags().Int("x", 0, "Target X coordinate")
	mouseMoveCmd.Flags().Int("y", 0, "Target Y coordinate")
	mouseMoveCmd.Flags().Bool("relative", false, "Treat coordinates as a delta from the current position")
	mouseMoveCmd.Flags().Duration("duration", 0, "Animate the move over this duration (e.g. 500ms)")

	mouseClickCmd.Flags().String("button", "left", "Mouse button: left, right, middle, x1, x2")
	mouseClickCmd.Flags().Bool("double", false, "Double-click")
	mousePressCmd.Flags().String("button", "left", "Mouse button: left, right, middle, x1, x2")
	mouseReleaseCmd.Flags().String("button", "left", "Mouse button: left, right, middle, x1, x2")
	mousePressedCmd.Flags().String("button", "left", "Mouse button: left, right, middle, x1, x2")

	mouseScrollCmd.Flags().Int("dx", 0, "Horizontal scroll units (positive is right)")
	mouseScrollCmd.Flags().Int("dy", 0, "Vertical scroll units (positive is up)")
}

func runMousePosition(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	pos, err := backend.MousePosition()
	if err != nil {
		return err
	}
	return output.Print(MousePositionResult{OK: true, X: pos.X, Y: pos.Y})
}

func runMouseMove(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")
	relative, _ := cmd.Flags().GetBool("relative")
	duration, _ := cmd.Flags().GetDuration("duration")

	if relative {
		err = backend.MouseMoveRel(x, y, duration)
	} else {
		err = backend.MouseMoveTo(x, y, duration)
	}
	if err != nil {
		return err
	}
	return output.Print(MouseActionResult{OK: true, Action: "mouse-move"})
}

func runMouseClick(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	button, err := buttonFlag(cmd)
	if err != nil {
		return err
	}
	clicks := 1
	if double, _ := cmd.Flags().GetBool("double"); double {
		clicks = 2
	}
	for i := 0; i < clicks; i++ {
		if err := backend.MousePress(button); err != nil {
			return err
		}
		if err := backend.MouseRelease(button); err != nil {
			return err
		}
		if clicks > 1 && i == 0 {
			time.Sleep(50 * time.Millisecond)
		}
	}
	return output.Print(MouseActionResult{OK: true, Action: "mouse-click"})
}

func runMousePress(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	button, err := buttonFlag(cmd)
	if err != nil {
		return err
	}
	if err := backend.MousePress(button); err != nil {
		return err
	}
	return output.Print(MouseActionResult{OK: true, Action: "mouse-press"})
}

func runMouseRelease(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	button, err := buttonFlag(cmd)
	if err != nil {
		return err
	}
	if err := backend.MouseRelease(button); err != nil {
		return err
	}
	return output.Print(MouseActionResult{OK: true, Action: "mouse-release"})
}

func runMouseScroll(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	dx, _ := cmd.Flags().GetInt("dx")
	dy, _ := cmd.Flags().GetInt("dy")
	if err := backend.MouseScroll(dx, dy); err != nil {
		return err
	}
	return output.Print(MouseActionResult{OK: true, Action: "mouse-scroll"})
}

func runMousePressed(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	button, err := buttonFlag(cmd)
	if err != nil {
		return err
	}
	pressed, err := backend.MouseIsPressed(button)
	if err != nil {
		return err
	}
	return output.Print(MousePressedResult{OK: true, Button: button.String(), Pressed: pressed})
}

func buttonFlag(cmd *cobra.Command) (platform.MouseButton, error) {
	name, _ := cmd.Flags().GetString("button")
	return platform.ParseMouseButton(name)
}
