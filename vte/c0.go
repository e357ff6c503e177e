package vte

// C0 control byte constants (ECMA-48).
const (
	c0NUL byte = 0x00
	c0BEL byte = 0x07
	c0BS  byte = 0x08
	c0HT  byte = 0x09
	c0LF  byte = 0x0A
	c0VT  byte = 0x0B
	c0FF  byte = 0x0C
	c0CR  byte = 0x0D
	c0SO  byte = 0x0E
	c0SI  byte = 0x0F
	c0SUB byte = 0x1A
	c0ESC byte = 0x1B
)

// execC0 maps a C0/C1 control byte to the corresponding Handler call. Bytes
// with no defined terminal semantics are dropped silently, per spec.md §7
// ("unknown sequence... log at debug and drop").
func execC0(h Handler, b byte) {
	switch b {
	case c0HT:
		h.PutTab(1)
	case c0CR:
		h.CarriageReturn()
	case c0BS:
		h.Backspace()
	case c0BEL:
		h.Bell()
	case c0LF, c0VT, c0FF:
		h.Linefeed()
	case c0SI:
		h.SetActiveCharset(CharsetG0)
	case c0SO:
		h.SetActiveCharset(CharsetG1)
	case c0SUB:
		h.Substitute()
	}
}
