package grid

import (
	"strconv"

	"github.com/coreterm/vte"
)

// decTextCursorEnable is DECTCEM, the private mode controlling cursor
// visibility (CSI ?25h/l).
const decTextCursorEnable vte.PrivateMode = 25

func (g *Grid) SetMode(mode vte.Mode) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.modes[mode] = true
}

func (g *Grid) UnsetMode(mode vte.Mode) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.modes, mode)
}

func (g *Grid) SetPrivateMode(mode vte.PrivateMode) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.privateModes[mode] = true
	if mode == decTextCursorEnable {
		g.cursorVisible = true
	}
}

func (g *Grid) UnsetPrivateMode(mode vte.PrivateMode) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.privateModes, mode)
	if mode == decTextCursorEnable {
		g.cursorVisible = false
	}
}

// ReportMode writes a DECRPM reply (CSI Ps ; Pm $ y) reflecting whether
// mode is currently set (Pm 1) or reset (Pm 2).
func (g *Grid) ReportMode(mode vte.Mode) {
	if g.Out == nil {
		return
	}
	g.mu.Lock()
	set := g.modes[mode]
	g.mu.Unlock()

	pm := "2"
	if set {
		pm = "1"
	}
	g.Out.Write([]byte("\x1b[" + strconv.Itoa(int(mode)) + ";" + pm + "$y"))
}

// ReportKeyboardMode replies to a Kitty keyboard protocol query (CSI ?u)
// with flags 0: this Grid doesn't implement that protocol.
func (g *Grid) ReportKeyboardMode() {
	if g.Out == nil {
		return
	}
	g.Out.Write([]byte("\x1b[?0u"))
}

func (g *Grid) ClipboardStore(target byte, payload []byte) {
	g.mu.Lock()
	defer g.mu.Unlock()
	stored := make([]byte, len(payload))
	copy(stored, payload)
	g.clipboard[target] = stored
}

// ClipboardLoad replies to an OSC 52 query with the stored payload for
// target, base64 already encoded by the program that stored it (clipboard
// content is passed through untouched, matching what OSC 52 transports).
func (g *Grid) ClipboardLoad(target byte, terminator byte) {
	if g.Out == nil {
		return
	}
	g.mu.Lock()
	payload := g.clipboard[target]
	g.mu.Unlock()

	term := "\x1b\\"
	if terminator == 0x07 {
		term = "\x07"
	}
	g.Out.Write([]byte("\x1b]52;" + string(target) + ";" + string(payload) + term))
}
