package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/deskhand/deskhand/internal/output"
	"github.com/deskhand/deskhand/internal/platform"
)

// KeyboardActionResult is the output of the mutating keyboard commands.
type KeyboardActionResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
}

// KeyboardPressedResult is the output of `keyboard pressed`.
type KeyboardPressedResult struct {
	OK      bool   `yaml:"ok"      json:"ok"`
	Key     string `yaml:"key"     json:"key"`
	Pressed bool   `yaml:"pressed" json:"pressed"`
}

// KeyboardLayoutResult is the output of `keyboard layout`.
type KeyboardLayoutResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Layout string `yaml:"layout" json:"layout"`
}

var keyboardCmd = &cobra.Command{
	Use:   "keyboard",
	Short: "Query and synthesize keyboard input",
}

var keyboardTypeCmd = &cobra.Command{
	Use:   "type <text>",
	Short: "Type text character by character",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeyboardType,
}

var keyboardKeyCmd = &cobra.Command{
	Use:   "key <key>...",
	Short: "Tap a key, or a combo held in order (e.g. ctrl c)",
	Long:  "Press and release keys. With several keys the earlier ones are held as modifiers: `deskhand keyboard key ctrl c` presses ctrl, taps c, releases ctrl.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runKeyboardKey,
}

var keyboardPressCmd = &cobra.Command{
	Use:   "press <key>",
	Short: "Press and hold a key",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeyboardPress,
}

var keyboardReleaseCmd = &cobra.Command{
	Use:   "release <key>",
	Short: "Release a held key",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeyboardRelease,
}

var keyboardPressedCmd = &cobra.Command{
	Use:   "pressed <key>",
	Short: "Report whether a key is held down",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeyboardPressed,
}

var keyboardLayoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the active keyboard layout identifier",
	RunE:  runKeyboardLayout,
}

func init() {
	rootCmd.AddCommand(keyboardCmd)
	keyboardCmd.AddCommand(keyboardTypeCmd)
	keyboardCmd.AddCommand(keyboardKeyCmd)
	keyboardCmd.AddCommand(keyboardPressCmd)
	keyboardCmd.AddCommand(keyboardReleaseCmd)
	keyboardCmd.AddCommand(keyboardPressedCmd)
	keyboardCmd.AddCommand(keyboardLayoutCmd)

	keyboardKeyCmd.Flags().Duration("hold", 0, "Hold the final key down for this duration before releasing")
}

func runKeyboardType(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	if err := backend.TypeUnicode(args[0]); err != nil {
		return err
	}
	return output.Print(KeyboardActionResult{OK: true, Action: "keyboard-type"})
}

func runKeyboardKey(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	hold, _ := cmd.Flags().GetDuration("hold")

	modifiers := args[:len(args)-1]
	final := platform.Key(args[len(args)-1])

	var held []platform.Key
	releaseHeld := func() {
		for i := len(held) - 1; i >= 0; i-- {
			backend.KeyRelease(held[i])
		}
	}
	for _, m := range modifiers {
		key := platform.Key(m)
		if err := backend.KeyPress(key); err != nil {
			releaseHeld()
			return err
		}
		held = append(held, key)
	}

	if err := backend.KeyPress(final); err != nil {
		releaseHeld()
		return err
	}
	if hold > 0 {
		time.Sleep(hold)
	}
	if err := backend.KeyRelease(final); err != nil {
		releaseHeld()
		return err
	}
	releaseHeld()
	return output.Print(KeyboardActionResult{OK: true, Action: "keyboard-key"})
}

func runKeyboardPress(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	if err := backend.KeyPress(platform.Key(args[0])); err != nil {
		return err
	}
	return output.Print(KeyboardActionResult{OK: true, Action: "keyboard-press"})
}

func runKeyboardRelease(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	if err := backend.KeyRelease(platform.Key(args[0])); err != nil {
		return err
	}
	return output.Print(KeyboardActionResult{OK: true, Action: "keyboard-release"})
}

func runKeyboardPressed(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	pressed, err := backend.KeyIsPressed(platform.Key(args[0]))
	if err != nil {
		return err
	}
	return output.Print(KeyboardPressedResult{OK: true, Key: args[0], Pressed: pressed})
}

func runKeyboardLayout(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	layout, err := backend.KeyboardLayout()
	if err != nil {
		return err
	}
	return output.Print(KeyboardLayoutResult{OK: true, Layout: layout})
}
