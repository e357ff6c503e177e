package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharRoundTripsThroughFromASCII(t *testing.T) {
	for k := Key(1); k < keyCount; k++ {
		if k.IsKeypad() || k.IsModifier() {
			continue
		}
		r, ok := k.Char()
		if !ok || r >= 256 {
			continue
		}
		got, ok := FromASCII(byte(r))
		assert.True(t, ok, "key %d char %q", k, r)
		assert.Equal(t, k, got)
	}
}

func TestFromASCIIUnknownByte(t *testing.T) {
	_, ok := FromASCII('!')
	assert.False(t, ok)
}

func TestModifierPredicates(t *testing.T) {
	assert.True(t, LeftShift.IsShift())
	assert.True(t, RightShift.IsShift())
	assert.True(t, LeftAlt.IsAlt())
	assert.True(t, LeftControl.IsControl())
	assert.True(t, LeftSuper.IsSuper())
	assert.False(t, A.IsModifier())
	assert.True(t, LeftControl.IsModifier())
}

func TestModsHelpers(t *testing.T) {
	m := LeftShiftMod | RightCtrlMod
	assert.True(t, m.HasShift())
	assert.True(t, m.HasCtrl())
	assert.False(t, m.HasAlt())
	assert.True(t, m.Contains(LeftShiftMod))
	assert.False(t, m.Contains(LeftAltMod))

	union := m.Union(LeftAltMod)
	assert.True(t, union.HasAlt())

	diff := union.Difference(LeftAltMod)
	assert.False(t, diff.HasAlt())
	assert.True(t, diff.HasShift())
}

func TestEffectiveModsIgnoresConsumedWhenComposed(t *testing.T) {
	e := KeyEvent{
		Mods:         LeftShiftMod | LeftAltMod,
		ConsumedMods: LeftAltMod,
		UTF8:         "a",
	}
	assert.Equal(t, LeftShiftMod, e.EffectiveMods())
}

func TestEffectiveModsKeepsRawModsWithoutComposedText(t *testing.T) {
	e := KeyEvent{Mods: LeftShiftMod | LeftAltMod, ConsumedMods: LeftAltMod}
	assert.Equal(t, LeftShiftMod|LeftAltMod, e.EffectiveMods())
}
