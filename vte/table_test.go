package vte

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnywhereRuleESCAlwaysEntersEscape(t *testing.T) {
	for s := State(0); s < stateCount; s++ {
		tr := transitionTable[s][0x1B]
		assert.Equal(t, Escape, tr.next, "state %s on ESC", s)
	}
}

func TestAnywhereRuleCANAndSUBReturnToGround(t *testing.T) {
	for s := State(0); s < stateCount; s++ {
		for _, b := range []byte{0x18, 0x1A} {
			tr := transitionTable[s][b]
			assert.Equal(t, Ground, tr.next, "state %s on byte %#x", s, b)
			assert.Equal(t, Execute, tr.action)
		}
	}
}

func TestGroundPrintsASCIIAndExecutesC0(t *testing.T) {
	assert.Equal(t, Print, transitionTable[Ground]['A'].action)
	assert.Equal(t, Execute, transitionTable[Ground][0x07].action)
}

func TestCsiEntryDigitGoesToCsiParam(t *testing.T) {
	tr := transitionTable[CsiEntry]['5']
	assert.Equal(t, CsiParam, tr.next)
	assert.Equal(t, Param, tr.action)
}

func TestCsiParamColonAcceptedAsSubparamSeparator(t *testing.T) {
	// The one documented extension over the stock Williams DEC table: ':'
	// inside CsiParam is collected as a subparameter separator instead of
	// falling to CsiIgnore. The table encodes "stay in this state" as a
	// transition to the Anywhere sentinel, resolved by advanceByte.
	tr := transitionTable[CsiParam][':']
	assert.Equal(t, Anywhere, tr.next)
	assert.Equal(t, Param, tr.action)
}

func TestAnywhereSentinelMeansStayInCurrentState(t *testing.T) {
	// A C0 control byte collected mid-CSI-param must not knock the parser
	// out of CsiParam even though the table's raw entry targets the
	// Anywhere sentinel.
	p := NewParser()
	r := &recorder{}
	p.Advance(r, []byte("\x1b[1;\x00;2m"))
	require.Len(t, r.attrs, 3)
	assert.Equal(t, AttrBold, r.attrs[0].Kind)
}

func TestCsiEntryFinalByteDispatches(t *testing.T) {
	tr := transitionTable[CsiEntry]['m']
	assert.Equal(t, Ground, tr.next)
	assert.Equal(t, CsiDispatch, tr.action)
}

func TestOscStringPassesThroughNonTerminatorBytes(t *testing.T) {
	tr := transitionTable[OscString]['x']
	assert.Equal(t, Anywhere, tr.next)
	assert.Equal(t, OscPut, tr.action)
}

func TestStateStringersCoverEveryState(t *testing.T) {
	for s := State(0); s < stateCount; s++ {
		assert.NotEqual(t, "State(?)", s.String())
	}
}

func TestActionStringersCoverEveryAction(t *testing.T) {
	actions := []Action{NoAction, Clear, Collect, CsiDispatch, EscDispatch, Execute,
		Hook, Ignore, OscEnd, OscPut, OscStart, Param, Print, Put, Unhook}
	for _, a := range actions {
		assert.NotEqual(t, "Action(?)", a.String())
	}
}
