//go:build linux

package x11

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/deskhand/deskhand/internal/config"
	"github.com/deskhand/deskhand/internal/logger"
)

// transferProperty is the property name selection data is delivered through.
const transferProperty = "DESKHAND_SELECTION"

// clipAtoms caches the interned atoms the selection protocol needs.
type clipAtoms struct {
	clipboard xproto.Atom
	utf8      xproto.Atom
	str       xproto.Atom
	targets   xproto.Atom
	property  xproto.Atom
}

func (b *Backend) clipboardAtoms() (clipAtoms, error) {
	if b.atoms.clipboard != 0 {
		return b.atoms, nil
	}
	var a clipAtoms
	var err error
	if a.clipboard, err = b.atom("CLIPBOARD"); err != nil {
		return a, err
	}
	if a.utf8, err = b.atom("UTF8_STRING"); err != nil {
		return a, err
	}
	a.str = xproto.AtomString
	if a.targets, err = b.atom("TARGETS"); err != nil {
		return a, err
	}
	if a.property, err = b.atom(transferProperty); err != nil {
		return a, err
	}
	b.atoms = a
	return a, nil
}

// ClipboardGetText reads the CLIPBOARD selection. When this process owns the
// selection the stored text is returned directly; otherwise the owner is
// asked to convert to UTF8_STRING (STRING as fallback) and the reply is
// awaited within the configured timeout.
func (b *Backend) ClipboardGetText() (string, error) {
	atoms, err := b.clipboardAtoms()
	if err != nil {
		return "", fmt.Errorf("clipboard atoms failed: %w", err)
	}
	owner, err := xproto.GetSelectionOwner(b.xu.Conn(), atoms.clipboard).Reply()
	if err != nil {
		return "", fmt.Errorf("selection owner query failed: %w", err)
	}
	if owner.Owner == 0 {
		return "", nil
	}
	if b.clipWindow != 0 && owner.Owner == b.clipWindow {
		return string(b.clipText), nil
	}

	win, err := b.clipboardWindow()
	if err != nil {
		return "", err
	}
	// Both target attempts share one deadline so a silent owner costs at
	// most the configured timeout, not one timeout per target.
	deadline := time.Now().Add(config.Get().ClipboardReadTimeout)
	text, err := b.convertSelection(win, atoms, atoms.utf8, deadline)
	if err != nil {
		text, err = b.convertSelection(win, atoms, atoms.str, deadline)
	}
	if err != nil {
		// A silent or refusing owner yields empty text, never a hang.
		logger.Debug("clipboard read failed", "error", err)
		return "", nil
	}
	return text, nil
}

// convertSelection runs one ConvertSelection round-trip for the given target
// and reads the delivered property, giving up at the deadline.
func (b *Backend) convertSelection(win xproto.Window, atoms clipAtoms, target xproto.Atom, deadline time.Time) (string, error) {
	conn := b.xu.Conn()
	err := xproto.ConvertSelectionChecked(conn, win, atoms.clipboard, target,
		atoms.property, xproto.TimeCurrentTime).Check()
	if err != nil {
		return "", fmt.Errorf("convert selection failed: %w", err)
	}

	for {
		ev, xerr := conn.PollForEvent()
		if xerr != nil {
			return "", fmt.Errorf("clipboard event error: %v", xerr)
		}
		if ev == nil {
			if time.Now().After(deadline) {
				return "", fmt.Errorf("clipboard read timed out")
			}
			time.Sleep(5 * time.Millisecond)
			continue
		}
		notify, ok := ev.(xproto.SelectionNotifyEvent)
		if !ok || notify.Requestor != win {
			continue
		}
		if notify.Property == xproto.AtomNone {
			return "", fmt.Errorf("selection owner refused target")
		}
		return b.readTransferProperty(win, notify.Property)
	}
}

func (b *Backend) readTransferProperty(win xproto.Window, prop xproto.Atom) (string, error) {
	conn := b.xu.Conn()
	reply, err := xproto.GetProperty(conn, true, win, prop,
		xproto.GetPropertyTypeAny, 0, 1<<24).Reply()
	if err != nil {
		return "", fmt.Errorf("read selection property failed: %w", err)
	}
	if incr, aerr := b.atom("INCR"); aerr == nil && reply.Type == incr {
		// Incremental transfers are not negotiated.
		return "", fmt.Errorf("clipboard content too large for a single transfer")
	}
	return string(reply.Value), nil
}

// ClipboardSetText claims CLIPBOARD ownership on a hidden window and answers
// a bounded number of pending conversion requests inline. Ownership lasts
// only as long as this process; long-lived serving belongs to the daemon
// surface, not a one-shot command.
func (b *Backend) ClipboardSetText(text string) error {
	atoms, err := b.clipboardAtoms()
	if err != nil {
		return fmt.Errorf("clipboard atoms failed: %w", err)
	}
	win, err := b.clipboardWindow()
	if err != nil {
		return err
	}
	conn := b.xu.Conn()
	if err := xproto.SetSelectionOwnerChecked(conn, win, atoms.clipboard,
		xproto.TimeCurrentTime).Check(); err != nil {
		return fmt.Errorf("claim selection failed: %w", err)
	}
	owner, err := xproto.GetSelectionOwner(conn, atoms.clipboard).Reply()
	if err != nil || owner.Owner != win {
		return fmt.Errorf("selection ownership not granted")
	}
	b.clipText = []byte(text)

	b.serviceSelectionRequests(atoms, config.Get().ClipboardServiceIterations)
	return nil
}

// ClipboardClear replaces the clipboard content with the empty string.
func (b *Backend) ClipboardClear() error {
	return b.ClipboardSetText("")
}

// ClipboardHasText reports whether any client currently owns the CLIPBOARD
// selection. When this process is the owner the stored text decides.
func (b *Backend) ClipboardHasText() (bool, error) {
	atoms, err := b.clipboardAtoms()
	if err != nil {
		return false, fmt.Errorf("clipboard atoms failed: %w", err)
	}
	owner, err := xproto.GetSelectionOwner(b.xu.Conn(), atoms.clipboard).Reply()
	if err != nil {
		return false, fmt.Errorf("selection owner query failed: %w", err)
	}
	if owner.Owner == 0 {
		return false, nil
	}
	if b.clipWindow != 0 && owner.Owner == b.clipWindow {
		return len(b.clipText) > 0, nil
	}
	return true, nil
}

// serviceSelectionRequests drains pending SelectionRequest events for a
// bounded number of poll iterations so immediate paste attempts succeed.
func (b *Backend) serviceSelectionRequests(atoms clipAtoms, iterations int) {
	conn := b.xu.Conn()
	for i := 0; i < iterations; i++ {
		ev, xerr := conn.PollForEvent()
		if xerr != nil {
			logger.Debug("clipboard service error", "error", xerr)
			return
		}
		if ev == nil {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		req, ok := ev.(xproto.SelectionRequestEvent)
		if !ok {
			continue
		}
		b.answerSelectionRequest(req, atoms)
	}
}

// answerSelectionRequest fulfils one conversion request. TARGETS advertises
// the text formats; UTF8_STRING and STRING deliver the stored bytes; anything
// else is refused with a None property.
func (b *Backend) answerSelectionRequest(req xproto.SelectionRequestEvent, atoms clipAtoms) {
	conn := b.xu.Conn()
	prop := req.Property
	if prop == xproto.AtomNone {
		prop = req.Target
	}

	switch req.Target {
	case atoms.targets:
		supported := atomsToBytes([]xproto.Atom{atoms.targets, atoms.utf8, atoms.str})
		xproto.ChangeProperty(conn, xproto.PropModeReplace, req.Requestor, prop,
			xproto.AtomAtom, 32, uint32(len(supported)/4), supported)
	case atoms.utf8, atoms.str:
		xproto.ChangeProperty(conn, xproto.PropModeReplace, req.Requestor, prop,
			req.Target, 8, uint32(len(b.clipText)), b.clipText)
	default:
		prop = xproto.AtomNone
	}

	notify := xproto.SelectionNotifyEvent{
		Time:      req.Time,
		Requestor: req.Requestor,
		Selection: req.Selection,
		Target:    req.Target,
		Property:  prop,
	}
	xproto.SendEvent(conn, false, req.Requestor, 0, string(notify.Bytes()))
	b.sync()
}

// clipboardWindow lazily creates the hidden 1x1 window used as selection
// owner and transfer requestor. It is never mapped.
func (b *Backend) clipboardWindow() (xproto.Window, error) {
	if b.clipWindow != 0 {
		return b.clipWindow, nil
	}
	conn := b.xu.Conn()
	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return 0, fmt.Errorf("allocate clipboard window id failed: %w", err)
	}
	screen := b.xu.Screen()
	err = xproto.CreateWindowChecked(conn, screen.RootDepth, wid, b.root,
		-1, -1, 1, 1, 0, xproto.WindowClassInputOutput, screen.RootVisual,
		0, nil).Check()
	if err != nil {
		return 0, fmt.Errorf("create clipboard window failed: %w", err)
	}
	b.clipWindow = wid
	return wid, nil
}

// atomsToBytes encodes atoms in the little-endian 32-bit wire layout used by
// format-32 properties.
func atomsToBytes(atoms []xproto.Atom) []byte {
	buf := make([]byte, 4*len(atoms))
	for i, a := range atoms {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(a))
	}
	return buf
}
