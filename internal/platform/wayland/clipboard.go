//go:build linux

package wayland

import (
	"fmt"
	"os/exec"
	"strings"
)

// ClipboardGetText reads the clipboard through wl-paste. An empty clipboard
// makes wl-paste exit non-zero; that is reported as empty text, not an error.
func (b *Backend) ClipboardGetText() (string, error) {
	if _, err := exec.LookPath("wl-paste"); err != nil {
		return "", fmt.Errorf("wl-paste not found: %w", err)
	}
	out, err := exec.Command("wl-paste", "--no-newline").Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 {
			return "", nil
		}
		return "", fmt.Errorf("wl-paste: %w", err)
	}
	return string(out), nil
}

// ClipboardSetText writes text to the clipboard through wl-copy. wl-copy
// forks itself to keep serving the selection after this process exits.
func (b *Backend) ClipboardSetText(text string) error {
	if _, err := exec.LookPath("wl-copy"); err != nil {
		return fmt.Errorf("wl-copy not found: %w", err)
	}
	cmd := exec.Command("wl-copy")
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("wl-copy: %w", err)
	}
	return nil
}

// ClipboardClear drops the selection entirely.
func (b *Backend) ClipboardClear() error {
	if _, err := exec.LookPath("wl-copy"); err != nil {
		return fmt.Errorf("wl-copy not found: %w", err)
	}
	if err := exec.Command("wl-copy", "--clear").Run(); err != nil {
		return fmt.Errorf("wl-copy --clear: %w", err)
	}
	return nil
}

// ClipboardHasText checks whether a text type is offered for the selection.
func (b *Backend) ClipboardHasText() (bool, error) {
	if _, err := exec.LookPath("wl-paste"); err != nil {
		return false, fmt.Errorf("wl-paste not found: %w", err)
	}
	out, err := exec.Command("wl-paste", "--list-types").Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 {
			return false, nil
		}
		return false, fmt.Errorf("wl-paste: %w", err)
	}
	return strings.Contains(string(out), "text"), nil
}
