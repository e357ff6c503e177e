package vte

// ScreenClearMode selects the extent of a clear_screen (CSI J) operation.
type ScreenClearMode int

const (
	ScreenClearBelow ScreenClearMode = iota
	ScreenClearAbove
	ScreenClearAll
	ScreenClearSaved
)

// LineClearMode selects the extent of a clear_line (CSI K) operation.
type LineClearMode int

const (
	LineClearRight LineClearMode = iota
	LineClearLeft
	LineClearAll
)

// CharsetIndex identifies one of the four G0-G3 character set slots.
type CharsetIndex int

const (
	CharsetG0 CharsetIndex = iota
	CharsetG1
	CharsetG2
	CharsetG3
)

// Charset is the character set designated into a CharsetIndex slot by
// ESC ( / ESC ) / ESC * / ESC +.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetSpecialDrawing
)

// Hyperlink is the payload of OSC 8. URI must begin with one of
// https://, http://, file://, mailto://, ftp://.
type Hyperlink struct {
	ID  string
	URI string
}

// Handler is the capability set the dispatcher calls into. Implementations
// range from a counting null sink through a test recorder to a real grid.
// The core never holds a Handler beyond the call it is currently making.
type Handler interface {
	Input(r rune)
	PutTab(n int)
	Bell()
	Backspace()
	Linefeed()
	CarriageReturn()
	Substitute()

	SetTitle(title string, has bool)
	IdentifyTerminal(intermediate rune, has bool)
	ResetState()

	MoveUp(n int)
	MoveDown(n int)
	MoveForward(n int)
	MoveBackward(n int)
	Goto(line, col int)
	GotoLine(line int)
	GotoCol(col int)
	SaveCursorPosition()
	RestoreCursorPosition()
	InsertBlank(n int)
	DeleteLines(n int)
	DeleteChars(n int)
	EraseChars(n int)

	ClearScreen(mode ScreenClearMode)
	ClearLine(mode LineClearMode)

	SetMode(mode Mode)
	UnsetMode(mode Mode)
	SetPrivateMode(mode PrivateMode)
	UnsetPrivateMode(mode PrivateMode)
	ReportMode(mode Mode)
	ReportKeyboardMode()

	TerminalAttribute(attr Attribute)

	SetColor(index int, rgb Rgb)
	ResetColor(index int)
	DynamicColorSequence(prefix string, index int, terminator byte)

	SetHyperlink(link *Hyperlink)
	ClipboardStore(target byte, payload []byte)
	ClipboardLoad(target byte, terminator byte)

	ConfigureCharset(index CharsetIndex, charset Charset)
	SetActiveCharset(index CharsetIndex)

	// DCS passthrough, exposed for completeness; the dispatcher's own DCS
	// support is limited to hook/unhook bookkeeping (spec.md §4.2/§4.3 do
	// not define DCS semantic dispatch beyond the parser-level actions).
	Hook(params *Params, intermediates []byte, ignoring bool, final byte)
	Put(b byte)
	Unhook()
}

// NopHandler discards every call. Useful for benchmarking the parser and
// dispatcher in isolation; it counts calls so tests can assert call volume
// without recording arguments.
type NopHandler struct {
	Calls int
}

func (h *NopHandler) inc() { h.Calls++ }

func (h *NopHandler) Input(r rune)                                          { h.inc() }
func (h *NopHandler) PutTab(n int)                                          { h.inc() }
func (h *NopHandler) Bell()                                                 { h.inc() }
func (h *NopHandler) Backspace()                                            { h.inc() }
func (h *NopHandler) Linefeed()                                             { h.inc() }
func (h *NopHandler) CarriageReturn()                                       { h.inc() }
func (h *NopHandler) Substitute()                                           { h.inc() }
func (h *NopHandler) SetTitle(title string, has bool)                      { h.inc() }
func (h *NopHandler) IdentifyTerminal(intermediate rune, has bool)          { h.inc() }
func (h *NopHandler) ResetState()                                           { h.inc() }
func (h *NopHandler) MoveUp(n int)                                          { h.inc() }
func (h *NopHandler) MoveDown(n int)                                        { h.inc() }
func (h *NopHandler) MoveForward(n int)                                     { h.inc() }
func (h *NopHandler) MoveBackward(n int)                                    { h.inc() }
func (h *NopHandler) Goto(line, col int)                                    { h.inc() }
func (h *NopHandler) GotoLine(line int)                                     { h.inc() }
func (h *NopHandler) GotoCol(col int)                                       { h.inc() }
func (h *NopHandler) SaveCursorPosition()                                   { h.inc() }
func (h *NopHandler) RestoreCursorPosition()                                { h.inc() }
func (h *NopHandler) InsertBlank(n int)                                     { h.inc() }
func (h *NopHandler) DeleteLines(n int)                                     { h.inc() }
func (h *NopHandler) DeleteChars(n int)                                     { h.inc() }
func (h *NopHandler) EraseChars(n int)                                      { h.inc() }
func (h *NopHandler) ClearScreen(mode ScreenClearMode)                      { h.inc() }
func (h *NopHandler) ClearLine(mode LineClearMode)                          { h.inc() }
func (h *NopHandler) SetMode(mode Mode)                                     { h.inc() }
func (h *NopHandler) UnsetMode(mode Mode)                                   { h.inc() }
func (h *NopHandler) SetPrivateMode(mode PrivateMode)                       { h.inc() }
func (h *NopHandler) UnsetPrivateMode(mode PrivateMode)                     { h.inc() }
func (h *NopHandler) ReportMode(mode Mode)                                  { h.inc() }
func (h *NopHandler) ReportKeyboardMode()                                   { h.inc() }
func (h *NopHandler) TerminalAttribute(attr Attribute)                      { h.inc() }
func (h *NopHandler) SetColor(index int, rgb Rgb)                           { h.inc() }
func (h *NopHandler) ResetColor(index int)                                  { h.inc() }
func (h *NopHandler) DynamicColorSequence(prefix string, index int, terminator byte) { h.inc() }
func (h *NopHandler) SetHyperlink(link *Hyperlink)                          { h.inc() }
func (h *NopHandler) ClipboardStore(target byte, payload []byte)            { h.inc() }
func (h *NopHandler) ClipboardLoad(target byte, terminator byte)            { h.inc() }
func (h *NopHandler) ConfigureCharset(index CharsetIndex, charset Charset)  { h.inc() }
func (h *NopHandler) SetActiveCharset(index CharsetIndex)                  { h.inc() }
func (h *NopHandler) Hook(params *Params, intermediates []byte, ignoring bool, final byte) {
	h.inc()
}
func (h *NopHandler) Put(b byte)    { h.inc() }
func (h *NopHandler) Unhook()       { h.inc() }

var _ Handler = (*NopHandler)(nil)
