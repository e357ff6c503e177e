package grid

import (
	"github.com/coreterm/vte"
	"github.com/mattn/go-runewidth"
)

// specialDrawing maps the DEC Special Character and Line Drawing charset's
// printable range (0x5f-0x7e) to the Unicode box-drawing glyphs xterm shows
// for it, per spec.md §4.3's `configure_charset`/`set_active_charset`.
var specialDrawing = map[rune]rune{
	'_': ' ', '`': '◆', 'a': '▒', 'b': '␉',
	'c': '␌', 'd': '␍', 'e': '␊', 'f': '°',
	'g': '±', 'h': '␤', 'i': '␋', 'j': '┘',
	'k': '┐', 'l': '┌', 'm': '└', 'n': '┼',
	'o': '⎺', 'p': '⎻', 'q': '─', 'r': '⎼',
	's': '⎽', 't': '├', 'u': '┤', 'v': '┴',
	'w': '┬', 'x': '│', 'y': '≤', 'z': '≥',
	'{': 'π', '|': '≠', '}': '£', '~': '·',
}

// Input writes one decoded rune at the cursor, applying the active
// charset's translation, runewidth's display width, line wrapping, and
// combining-mark merging into the previous cell.
func (g *Grid) Input(r rune) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.charsets[g.activeCharset] == vte.CharsetSpecialDrawing {
		if mapped, ok := specialDrawing[r]; ok {
			r = mapped
		}
	}

	width := runewidth.RuneWidth(r)
	if width == 0 {
		g.appendCombining(r)
		return
	}

	if g.cursorX+width > g.cols {
		g.cursorX = 0
		g.lineFeedLocked()
	}

	cell := Cell{Char: r, Width: width, Attrs: g.attrs, Hyperlink: g.hyperlink}
	g.cells[g.cursorY][g.cursorX] = cell
	for i := 1; i < width && g.cursorX+i < g.cols; i++ {
		g.cells[g.cursorY][g.cursorX+i] = Cell{Width: 0, Attrs: g.attrs}
	}
	// Filling the last column leaves the cursor one past it; the wrap (and
	// any scroll) happens when the next character is written.
	g.cursorX += width
}

func (g *Grid) appendCombining(r rune) {
	x, y := g.cursorX, g.cursorY
	if x > 0 {
		x--
	}
	if y < 0 || y >= g.rows || x < 0 || x >= g.cols {
		return
	}
	cell := &g.cells[y][x]
	cell.Combining = append(cell.Combining, r)
}

func (g *Grid) PutTab(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := 0; i < n; i++ {
		next := (g.cursorX/8 + 1) * 8
		if next >= g.cols {
			next = g.cols - 1
		}
		g.cursorX = next
	}
}

func (g *Grid) Bell() {}

func (g *Grid) Backspace() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cursorX > 0 {
		g.cursorX--
	}
}

// lineFeedLocked advances the cursor row, scrolling the scroll region up by
// one line when the cursor is already at its bottom. Caller holds g.mu.
func (g *Grid) lineFeedLocked() {
	if g.cursorY == g.scrollBottom {
		g.scrollUpLocked(1)
		return
	}
	g.cursorY++
	g.clampCursor()
}

func (g *Grid) scrollUpLocked(n int) {
	top, bottom := g.scrollTop, g.scrollBottom
	for i := 0; i < n; i++ {
		copy(g.cells[top:bottom], g.cells[top+1:bottom+1])
		g.cells[bottom] = g.blankRow()
	}
}

func (g *Grid) Linefeed() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lineFeedLocked()
}

func (g *Grid) CarriageReturn() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cursorX = 0
}

func (g *Grid) Substitute() {
	g.mu.Lock()
	defer g.mu.Unlock()
	x := g.cursorX
	if x >= g.cols {
		x = g.cols - 1
	}
	g.cells[g.cursorY][x] = Cell{Char: '�', Width: 1, Attrs: g.attrs}
}

func (g *Grid) SetTitle(title string, has bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if has {
		g.title = title
	} else {
		g.title = ""
	}
}

func (g *Grid) IdentifyTerminal(intermediate rune, has bool) {
	if g.Out == nil {
		return
	}
	// VT102-ish primary device attributes response; cmd/vteterm's terminal
	// doesn't need to claim any optional features.
	g.Out.Write([]byte("\x1b[?6c"))
}

func (g *Grid) ResetState() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.attrs = defaultAttrs()
	g.hyperlink = nil
	g.cursorX, g.cursorY = 0, 0
	g.cursorVisible = true
	g.charsets = [4]vte.Charset{}
	g.activeCharset = vte.CharsetG0
	g.scrollTop, g.scrollBottom = 0, g.rows-1
	for y := range g.cells {
		g.cells[y] = g.blankRow()
	}
}

func (g *Grid) TerminalAttribute(attr vte.Attribute) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.attrs = g.attrs.Apply(attr)
}

func (g *Grid) ConfigureCharset(index vte.CharsetIndex, charset vte.Charset) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.charsets[index] = charset
}

func (g *Grid) SetActiveCharset(index vte.CharsetIndex) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.activeCharset = index
}

func (g *Grid) SetHyperlink(link *vte.Hyperlink) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.hyperlink = link
}

// Hook/Put/Unhook: DCS passthrough has no semantic dispatch defined by
// spec.md §4.3 beyond the parser-level bookkeeping; a Grid has no DCS
// handler of its own (e.g. DECRQSS/Sixel) to delegate to.
func (g *Grid) Hook(params *vte.Params, intermediates []byte, ignoring bool, final byte) {}
func (g *Grid) Put(b byte)                                                               {}
func (g *Grid) Unhook()                                                                  {}
