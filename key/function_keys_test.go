package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifierCodesCoverAllFifteenCombinations(t *testing.T) {
	seen := map[Mods]bool{}
	for _, m := range modifierCodes {
		seen[m] = true
	}
	assert.Len(t, seen, 15, "all 15 combinations must be distinct")
	assert.Contains(t, seen, LeftShiftMod)
	assert.Contains(t, seen, LeftShiftMod|LeftAltMod|LeftCtrlMod|LeftSuperMod)
}

func TestModifierCodeOrderingMatchesXtermCodeNumbering(t *testing.T) {
	// code 2 (index 0) is Shift alone; code 9 (index 7) is Super alone.
	assert.Equal(t, LeftShiftMod, modifierCodes[0])
	assert.Equal(t, LeftSuperMod, modifierCodes[7])
	assert.Equal(t, LeftShiftMod|LeftAltMod|LeftCtrlMod|LeftSuperMod, modifierCodes[14])
}

func TestLogicalModsCollapsesLeftAndRight(t *testing.T) {
	assert.Equal(t, LeftShiftMod, logicalMods(RightShiftMod))
	assert.Equal(t, LeftCtrlMod, logicalMods(LeftCtrlMod))
	assert.Equal(t,
		LeftShiftMod|LeftAltMod|LeftCtrlMod|LeftSuperMod,
		logicalMods(RightShiftMod|RightAltMod|RightCtrlMod|RightSuperMod))
}

func TestPCStyleGeneratesFifteenEntriesPerArrowKey(t *testing.T) {
	entries := GetKeyEntries(Up)
	require.Len(t, entries, 15)
	assert.Equal(t, []byte("\x1b[1;2A"), entries[0].Sequence)
	assert.Equal(t, []byte("\x1b[1;16D"), GetKeyEntries(Left)[14].Sequence)
}

func TestBackspaceEntriesPreferCtrlThenPlain(t *testing.T) {
	entries := GetKeyEntries(Backspace)
	require.Len(t, entries, 2)
	assert.Equal(t, []byte("\x08"), entries[0].Sequence)
	assert.Equal(t, []byte("\x7f"), entries[1].Sequence)
}

func TestTabEntriesGatedByModifyOtherKeys(t *testing.T) {
	entries := GetKeyEntries(Tab)
	require.Len(t, entries, 3)
	assert.Equal(t, ModifySet, entries[0].ModifyOtherKeys)
	assert.Equal(t, ModifySetOther, entries[1].ModifyOtherKeys)
	assert.True(t, entries[2].ModsEmptyIsAny)
}

func TestGetKeyEntriesUnknownKeyReturnsNil(t *testing.T) {
	assert.Nil(t, GetKeyEntries(F13))
}
