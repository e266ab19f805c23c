//go:build darwin && cgo

package darwin

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// ClipboardGetText reads the general pasteboard through pbpaste.
func (b *Backend) ClipboardGetText() (string, error) {
	out, err := exec.Command("pbpaste").Output()
	if err != nil {
		return "", fmt.Errorf("pbpaste: %w", err)
	}
	return string(out), nil
}

// ClipboardSetText writes text to the general pasteboard through pbcopy.
func (b *Backend) ClipboardSetText(text string) error {
	cmd := exec.Command("pbcopy")
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pbcopy: %w", err)
	}
	return nil
}

// ClipboardClear empties the general pasteboard.
func (b *Backend) ClipboardClear() error {
	cmd := exec.Command("pbcopy")
	cmd.Stdin = bytes.NewReader(nil)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pbcopy: %w", err)
	}
	return nil
}

// ClipboardHasText reports whether the pasteboard currently holds any text.
func (b *Backend) ClipboardHasText() (bool, error) {
	text, err := b.ClipboardGetText()
	if err != nil {
		return false, err
	}
	return len(text) > 0, nil
}
