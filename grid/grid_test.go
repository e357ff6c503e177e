package grid

import (
	"bytes"
	"testing"

	"github.com/coreterm/vte"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridStartsAtOriginVisibleDefaultAttrs(t *testing.T) {
	g := NewGrid(80, 24)
	x, y, visible := g.Cursor()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.True(t, visible)
	assert.Equal(t, 80, g.Cols())
	assert.Equal(t, 24, g.Rows())
}

func TestNewGridClampsDegenerateSize(t *testing.T) {
	g := NewGrid(0, -5)
	assert.Equal(t, 1, g.Cols())
	assert.Equal(t, 1, g.Rows())
}

func TestInputWritesCellAndAdvancesCursor(t *testing.T) {
	g := NewGrid(10, 2)
	g.Input('A')
	assert.Equal(t, 'A', g.Cell(0, 0).Char)
	x, y, _ := g.Cursor()
	assert.Equal(t, 1, x)
	assert.Equal(t, 0, y)
}

func TestInputWrapsAtEndOfLine(t *testing.T) {
	g := NewGrid(3, 2)
	g.Input('a')
	g.Input('b')
	g.Input('c')
	g.Input('d')
	x, y, _ := g.Cursor()
	assert.Equal(t, 'd', g.Cell(0, 1).Char)
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)
}

func TestInputCombiningMarkMergesIntoPreviousCell(t *testing.T) {
	g := NewGrid(10, 2)
	g.Input('e')
	g.Input('́') // combining acute accent, zero width
	cell := g.Cell(0, 0)
	assert.Equal(t, 'e', cell.Char)
	require.Len(t, cell.Combining, 1)
	assert.Equal(t, rune(0x301), cell.Combining[0])
}

func TestInputWideCharOccupiesTwoCells(t *testing.T) {
	g := NewGrid(10, 2)
	g.Input('世')
	assert.Equal(t, '世', g.Cell(0, 0).Char)
	assert.Equal(t, 0, g.Cell(1, 0).Width)
	x, _, _ := g.Cursor()
	assert.Equal(t, 2, x)
}

func TestInputSpecialDrawingCharsetTranslatesBoxGlyphs(t *testing.T) {
	g := NewGrid(10, 2)
	g.ConfigureCharset(vte.CharsetG0, vte.CharsetSpecialDrawing)
	g.SetActiveCharset(vte.CharsetG0)
	g.Input('q') // horizontal line in DEC special graphics
	assert.Equal(t, '─', g.Cell(0, 0).Char)
}

func TestLinefeedScrollsAtBottomOfRegion(t *testing.T) {
	g := NewGrid(5, 3)
	g.Input('1')
	g.Linefeed()
	g.CarriageReturn()
	g.Input('2')
	g.Linefeed()
	g.CarriageReturn()
	g.Input('3')
	g.Linefeed() // cursor now on row 2 (bottom), this must scroll
	assert.Equal(t, '2', g.Cell(0, 0).Char)
	assert.Equal(t, '3', g.Cell(0, 1).Char)
	assert.Equal(t, ' ', g.Cell(0, 2).Char)
}

func TestCursorMotionClampsToBounds(t *testing.T) {
	g := NewGrid(5, 5)
	g.MoveUp(10)
	x, y, _ := g.Cursor()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	g.MoveDown(100)
	_, y, _ = g.Cursor()
	assert.Equal(t, 4, y)

	g.Goto(2, 2)
	g.MoveForward(100)
	x, _, _ = g.Cursor()
	assert.Equal(t, 4, x)
}

func TestSaveAndRestoreCursorPositionIncludesAttrs(t *testing.T) {
	g := NewGrid(10, 10)
	g.Goto(3, 4)
	g.TerminalAttribute(vte.Attribute{Kind: vte.AttrBold})
	g.SaveCursorPosition()

	g.Goto(0, 0)
	g.TerminalAttribute(vte.Attribute{Kind: vte.AttrReset})

	g.RestoreCursorPosition()
	x, y, _ := g.Cursor()
	assert.Equal(t, 4, x)
	assert.Equal(t, 3, y)

	g.Input('x')
	assert.True(t, g.Cell(4, 3).Attrs.Bold)
}

func TestClearLineRightLeavesLeftIntact(t *testing.T) {
	g := NewGrid(5, 1)
	for _, r := range "abcde" {
		g.Input(r)
	}
	g.Goto(0, 2)
	g.ClearLine(vte.LineClearRight)
	assert.Equal(t, 'a', g.Cell(0, 0).Char)
	assert.Equal(t, 'b', g.Cell(1, 0).Char)
	assert.Equal(t, ' ', g.Cell(2, 0).Char)
	assert.Equal(t, ' ', g.Cell(4, 0).Char)
}

func TestClearScreenAllBlanksEveryCell(t *testing.T) {
	g := NewGrid(3, 2)
	g.Input('a')
	g.ClearScreen(vte.ScreenClearAll)
	assert.Equal(t, ' ', g.Cell(0, 0).Char)
}

func TestDeleteCharsShiftsRowLeft(t *testing.T) {
	g := NewGrid(5, 1)
	for _, r := range "abcde" {
		g.Input(r)
	}
	g.Goto(0, 1)
	g.DeleteChars(2)
	assert.Equal(t, 'd', g.Cell(1, 0).Char)
	assert.Equal(t, 'e', g.Cell(2, 0).Char)
	assert.Equal(t, ' ', g.Cell(3, 0).Char)
	assert.Equal(t, ' ', g.Cell(4, 0).Char)
}

func TestInsertBlankShiftsRowRight(t *testing.T) {
	g := NewGrid(5, 1)
	for _, r := range "abc" {
		g.Input(r)
	}
	g.Goto(0, 0)
	g.InsertBlank(2)
	assert.Equal(t, ' ', g.Cell(0, 0).Char)
	assert.Equal(t, ' ', g.Cell(1, 0).Char)
	assert.Equal(t, 'a', g.Cell(2, 0).Char)
}

func TestTerminalAttributeAppliesSGR(t *testing.T) {
	g := NewGrid(10, 10)
	g.TerminalAttribute(vte.Attribute{Kind: vte.AttrBold})
	g.TerminalAttribute(vte.Attribute{Kind: vte.AttrForeground, Color: vte.NamedColorOf(vte.Red), HasColor: true})
	g.Input('x')
	cell := g.Cell(0, 0)
	assert.True(t, cell.Attrs.Bold)
	assert.Equal(t, vte.NamedColorOf(vte.Red), cell.Attrs.Foreground)
}

func TestResetStateClearsGridAndAttrs(t *testing.T) {
	g := NewGrid(5, 5)
	g.TerminalAttribute(vte.Attribute{Kind: vte.AttrBold})
	g.Input('x')
	g.ResetState()
	assert.Equal(t, ' ', g.Cell(0, 0).Char)
	x, y, visible := g.Cursor()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.True(t, visible)
}

func TestSetColorAndResolveIndexed(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetColor(200, vte.Rgb{10, 20, 30})
	got := g.Resolve(vte.IndexedColor(200))
	assert.Equal(t, vte.Rgb{10, 20, 30}, got)
}

func TestResetColorRestoresDefaultPalette(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetColor(1, vte.Rgb{1, 2, 3})
	g.ResetColor(1)
	assert.Equal(t, ansi16[1], g.Resolve(vte.IndexedColor(1)))
}

func TestDynamicColorSequenceWritesReply(t *testing.T) {
	g := NewGrid(5, 5)
	var buf bytes.Buffer
	g.Out = &buf
	g.SetColor(int(vte.Foreground), vte.Rgb{255, 0, 0})
	g.DynamicColorSequence("10", int(vte.Foreground), 0x07)
	assert.Equal(t, "\x1b]10;rgb:ffff/0000/0000\x07", buf.String())
}

func TestClipboardStoreAndLoadRoundTrip(t *testing.T) {
	g := NewGrid(5, 5)
	var buf bytes.Buffer
	g.Out = &buf
	g.ClipboardStore('c', []byte("aGk="))
	g.ClipboardLoad('c', 0x07)
	assert.Equal(t, "\x1b]52;c;aGk=\x07", buf.String())
}

func TestModeSetUnsetAndReport(t *testing.T) {
	g := NewGrid(5, 5)
	var buf bytes.Buffer
	g.Out = &buf
	g.SetMode(4)
	g.ReportMode(4)
	assert.Equal(t, "\x1b[4;1$y", buf.String())
}

func TestIdentifyTerminalWritesDAReply(t *testing.T) {
	g := NewGrid(5, 5)
	var buf bytes.Buffer
	g.Out = &buf
	g.IdentifyTerminal(0, false)
	assert.Equal(t, "\x1b[?6c", buf.String())
}
