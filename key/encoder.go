package key

// Encoder turns a KeyEvent into PTY-bound bytes. ModifyOtherKeysState2
// mirrors the terminal-mode flag xterm calls modifyOtherKeys: some
// sequences (e.g. Shift+Tab) differ depending on whether that mode is set.
type Encoder struct {
	ModifyOtherKeysState2 bool
}

// Encode implements spec.md §4.5's algorithm: Release and IME-composing
// events never encode; otherwise try the PC-style function-key table, then
// a Ctrl C0 sequence, and report no match if neither applies.
func (e Encoder) Encode(event KeyEvent) ([]byte, bool) {
	if event.Action == ActionRelease || event.Composing {
		return nil, false
	}

	if seq, ok := pcStyleFunctionKey(event.Key, event.Mods, e.ModifyOtherKeysState2); ok {
		return seq, true
	}

	if seq, ok := ctrlSeq(event.Key, event.UTF8, event.UnshiftedChar, event.Mods); ok {
		return seq, true
	}

	return nil, false
}

// pcStyleFunctionKey implements spec.md §4.5 step 2: the first Entry for
// key whose modifyOtherKeys constraint and modifier mask both match.
func pcStyleFunctionKey(k Key, mods Mods, modifyOtherKeys bool) ([]byte, bool) {
	logical := logicalMods(mods)

	for _, entry := range GetKeyEntries(k) {
		switch entry.ModifyOtherKeys {
		case ModifySet:
			if modifyOtherKeys {
				continue
			}
		case ModifySetOther:
			if !modifyOtherKeys {
				continue
			}
		}

		if entry.Mods.IsEmpty() {
			if !logical.IsEmpty() && !entry.ModsEmptyIsAny {
				continue
			}
		} else if entry.Mods != logical {
			continue
		}

		return entry.Sequence, true
	}

	return nil, false
}
