package key

import "strconv"

// ModifyKeys constrains when a function-key Entry applies relative to the
// terminal's modifyOtherKeys state (xterm's modifyOtherKeys resource,
// surfaced to the encoder as Encoder.ModifyOtherKeysState2).
type ModifyKeys int

const (
	ModifyAny ModifyKeys = iota
	ModifySet
	ModifySetOther
)

// Entry is one precomputed byte sequence a key may encode to, gated by the
// modifier combination (and, for Tab, by modifyOtherKeys state).
type Entry struct {
	Mods           Mods
	ModsEmptyIsAny bool
	ModifyOtherKeys ModifyKeys
	Sequence       []byte
}

// modifierCodes holds the 15 modifier combinations the standard xterm
// 1-based modifier encoding distinguishes (code = index+2): bit0=Shift,
// bit1=Alt, bit2=Ctrl, bit3=Super, matching spec.md §4.5's
// "1 = none, 2 = Shift, ..., 16 = Shift+Alt+Ctrl+Super".
var modifierCodes = buildModifierCodes()

func buildModifierCodes() [15]Mods {
	var codes [15]Mods
	for i := range codes {
		bits := i + 1 // 1..15
		var m Mods
		if bits&1 != 0 {
			m |= LeftShiftMod
		}
		if bits&2 != 0 {
			m |= LeftAltMod
		}
		if bits&4 != 0 {
			m |= LeftCtrlMod
		}
		if bits&8 != 0 {
			m |= LeftSuperMod
		}
		codes[i] = m
	}
	return codes
}

// logicalMods collapses left/right modifier bits into the single LEFT_*
// flag each of modifierCodes uses, so a held RIGHT_SHIFT compares equal to
// the table's LEFT_SHIFT entry. The PC-style tables only ever distinguish
// the four modifier kinds, never which side was pressed.
func logicalMods(m Mods) Mods {
	var out Mods
	if m.HasShift() {
		out |= LeftShiftMod
	}
	if m.HasAlt() {
		out |= LeftAltMod
	}
	if m.HasCtrl() {
		out |= LeftCtrlMod
	}
	if m.HasSuper() {
		out |= LeftSuperMod
	}
	return out
}

// keyEntries maps a Key to its ordered list of candidate Entry sequences;
// pcStyleFunctionKey returns the first one whose constraints are satisfied.
var keyEntries = buildKeyEntries()

func buildKeyEntries() map[Key][]Entry {
	entries := make(map[Key][]Entry, 8)

	entries[Up] = pcStyle("\x1b[1;", "A")
	entries[Down] = pcStyle("\x1b[1;", "B")
	entries[Right] = pcStyle("\x1b[1;", "C")
	entries[Left] = pcStyle("\x1b[1;", "D")

	entries[Backspace] = []Entry{
		{Mods: LeftCtrlMod, ModsEmptyIsAny: true, Sequence: []byte("\x08")},
		{ModsEmptyIsAny: true, Sequence: []byte("\x7f")},
	}

	entries[Tab] = []Entry{
		{Mods: LeftShiftMod, Sequence: []byte("\x1b[Z"), ModifyOtherKeys: ModifySet},
		{Mods: LeftShiftMod, Sequence: []byte("\x1b[27;2;9~"), ModifyOtherKeys: ModifySetOther},
		{ModsEmptyIsAny: true, Sequence: []byte("\t")},
	}

	entries[Enter] = []Entry{{ModsEmptyIsAny: true, Sequence: []byte("\r")}}
	entries[Escape] = []Entry{{ModsEmptyIsAny: true, Sequence: []byte("\x1b")}}

	return entries
}

// pcStyle generates the 15 modifier-combination entries for a cursor key,
// each sequence "ESC [ 1 ; <code> <final>".
func pcStyle(prefix, final string) []Entry {
	entries := make([]Entry, len(modifierCodes))
	for i, mods := range modifierCodes {
		code := i + 2
		seq := prefix + strconv.Itoa(code) + final
		entries[i] = Entry{Mods: mods, Sequence: []byte(seq)}
	}
	return entries
}

// GetKeyEntries returns the candidate PC-style entries for key, or nil.
func GetKeyEntries(k Key) []Entry { return keyEntries[k] }
