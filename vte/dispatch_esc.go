package vte

// escDispatch implements spec.md §4.3's ESC dispatch table.
func (p *Parser) escDispatch(h Handler, b byte) {
	p.finishParams()
	intermediates := p.intermediates[:p.nIntermediates]
	action := rune(b)

	if len(intermediates) == 1 {
		switch intermediates[0] {
		case '(', ')', '*', '+':
			idx := charsetSlot(intermediates[0])
			cs := CharsetASCII
			if action == '0' {
				cs = CharsetSpecialDrawing
			}
			h.ConfigureCharset(idx, cs)
			return
		}
	}

	switch action {
	case 'D':
		h.Linefeed()
	case 'E':
		h.Linefeed()
		h.CarriageReturn()
	case 'Z':
		h.IdentifyTerminal(0, false)
	case 'c':
		h.ResetState()
	case '7':
		h.SaveCursorPosition()
	case '8':
		h.RestoreCursorPosition()
	case '\\':
		// String Terminator: no handler call by itself (spec.md §4.3); its
		// effect is the exit action of the string state it terminates.
	}
}

func charsetSlot(intermediate byte) CharsetIndex {
	switch intermediate {
	case '(':
		return CharsetG0
	case ')':
		return CharsetG1
	case '*':
		return CharsetG2
	case '+':
		return CharsetG3
	default:
		return CharsetG0
	}
}
