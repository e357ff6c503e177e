package key

// ctrlEscapedBytes maps the ASCII character a Ctrl-chord would otherwise
// produce to the C0 byte the terminal actually sends, per spec.md §4.5
// step 3 (e.g. 'a'->0x01, '['->0x1b, '@'->0x00, '8'/'?'->0x7f).
var ctrlEscapedBytes = buildCtrlEscapedBytes()

func buildCtrlEscapedBytes() [256][]byte {
	var table [256][]byte

	set := func(ch byte, b byte) { table[ch] = []byte{b} }

	set(' ', 0)
	set('/', 31)
	set('0', 48)
	set('1', 49)
	set('2', 0)
	set('3', 27)
	set('4', 28)
	set('5', 29)
	set('6', 30)
	set('7', 31)
	set('8', 127)
	set('9', 57)
	set('?', 127)
	set('@', 0)
	set('[', 27)
	set('\\', 28)
	set(']', 29)
	set('^', 30)
	set('_', 31)
	set('a', 1)
	set('b', 2)
	set('c', 3)
	set('d', 4)
	set('e', 5)
	set('f', 6)
	set('g', 7)
	set('h', 8)
	set('j', 10)
	set('k', 11)
	set('l', 12)
	set('n', 14)
	set('o', 15)
	set('p', 16)
	set('q', 17)
	set('r', 18)
	set('s', 19)
	set('t', 20)
	set('u', 21)
	set('v', 22)
	set('w', 23)
	set('x', 24)
	set('y', 25)
	set('z', 26)
	set('~', 30)

	return table
}

// ctrlSeq implements spec.md §4.5 step 3: derive the C0 byte for a held-Ctrl
// key event, or report no match. logicalKey is the event's logical Key
// (used only for its printable char when utf8 didn't carry exactly one
// byte); unshiftedChar lets an uppercase US letter recover its unshifted
// form when Shift also consumed the case change.
func ctrlSeq(logicalKey Key, utf8 string, unshiftedChar rune, mods Mods) ([]byte, bool) {
	if !mods.HasCtrl() {
		return nil, false
	}

	unsetMods := mods.Difference(LeftAltMod | RightAltMod)

	var ch rune
	if len(utf8) == 1 {
		ch = rune(utf8[0])
	} else if c, ok := logicalKey.Char(); ok {
		if unsetMods != LeftCtrlMod && unsetMods != RightCtrlMod {
			return nil, false
		}
		ch = c
	} else {
		return nil, false
	}

	isUSLetter := ch >= 'A' && ch <= 'Z'

	if (unsetMods.Contains(LeftShiftMod) || unsetMods.Contains(RightShiftMod)) && !isUSLetter && ch != '@' {
		unsetMods = unsetMods.Difference(LeftShiftMod | RightShiftMod)
	}

	if isUSLetter && unshiftedChar != 0 {
		ch = unshiftedChar
	}

	if unsetMods.Difference(LeftCtrlMod|RightCtrlMod) != 0 {
		return nil, false
	}

	if ch < 0 || int(ch) >= len(ctrlEscapedBytes) {
		return nil, false
	}
	if seq := ctrlEscapedBytes[ch]; seq != nil {
		return seq, true
	}
	return nil, false
}
