package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deskhand/deskhand/internal/output"
	"github.com/deskhand/deskhand/internal/platform"
)

// ClipboardReadResult is the output of `clipboard read`.
type ClipboardReadResult struct {
	OK   bool   `yaml:"ok"   json:"ok"`
	Text string `yaml:"text" json:"text"`
}

// ClipboardActionResult is the output of `clipboard write` and `clipboard clear`.
type ClipboardActionResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
}

// ClipboardHasResult is the output of `clipboard has`.
type ClipboardHasResult struct {
	OK      bool `yaml:"ok"       json:"ok"`
	HasText bool `yaml:"has_text" json:"has_text"`
}

var clipboardCmd = &cobra.Command{
	Use:   "clipboard",
	Short: "Read, write, or clear the system clipboard",
}

var clipboardReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Read the current clipboard text",
	RunE:  runClipboardRead,
}

var clipboardWriteCmd = &cobra.Command{
	Use:   "write [text]",
	Short: "Write text to the clipboard",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClipboardWrite,
}

var clipboardClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the clipboard",
	RunE:  runClipboardClear,
}

var clipboardHasCmd = &cobra.Command{
	Use:   "has",
	Short: "Report whether the clipboard holds text",
	RunE:  runClipboardHas,
}

func init() {
	rootCmd.AddCommand(clipboardCmd)
	clipboardCmd.AddCommand(clipboardReadCmd)
	clipboardCmd.AddCommand(clipboardWriteCmd)
	clipboardCmd.AddCommand(clipboardClearCmd)
	clipboardCmd.AddCommand(clipboardHasCmd)

	clipboardWriteCmd.Flags().String("text", "", "Text to write to the clipboard")
}

func runClipboardRead(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	text, err := backend.ClipboardGetText()
	if err != nil {
		return err
	}
	return output.Print(ClipboardReadResult{OK: true, Text: text})
}

func runClipboardWrite(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}

	var text string
	if len(args) > 0 {
		text = args[0]
	}
	if flagText, _ := cmd.Flags().GetString("text"); flagText != "" {
		text = flagText
	}
	if text == "" {
		return fmt.Errorf("specify text as a positional argument or --text flag")
	}

	if err := backend.ClipboardSetText(text); err != nil {
		return err
	}
	return output.Print(ClipboardActionResult{OK: true, Action: "clipboard-write"})
}

func runClipboardClear(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	if err := backend.ClipboardClear(); err != nil {
		return err
	}
	return output.Print(ClipboardActionResult{OK: true, Action: "clipboard-clear"})
}

func runClipboardHas(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	has, err := backend.ClipboardHasText()
	if err != nil {
		return err
	}
	return output.Print(ClipboardHasResult{OK: true, HasText: has})
}
