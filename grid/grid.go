package grid

import (
	"io"
	"sync"

	"github.com/coreterm/vte"
)

// Grid is a vte.Handler backed by a plain row-major cell buffer: one
// viewport, no scrollback, no sprites. It exists to give the vte package a
// real consumer to drive end to end and for cmd/vteterm to render.
//
// A Grid is safe for concurrent use; Advance (run on the PTY-read goroutine)
// and any renderer (run on a different goroutine) may call it at once.
type Grid struct {
	mu sync.Mutex

	cols, rows int
	cells      [][]Cell

	cursorX, cursorY int
	cursorVisible    bool

	savedX, savedY int
	savedAttrs     Attrs

	attrs     Attrs
	hyperlink *vte.Hyperlink

	charsets      [4]vte.Charset
	activeCharset vte.CharsetIndex

	scrollTop, scrollBottom int

	title string

	modes        map[vte.Mode]bool
	privateModes map[vte.PrivateMode]bool

	palette [256]vte.Rgb

	clipboard map[byte][]byte

	// Out, if set, receives reply sequences generated by report/query
	// operations (DECRPM, dynamic color queries, clipboard load). It is
	// typically the PTY master side so replies reach the running program.
	Out io.Writer
}

// NewGrid returns a Grid sized cols x rows, cursor at the origin, default
// attributes, and all four charset slots designated ASCII.
func NewGrid(cols, rows int) *Grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g := &Grid{
		cols:          cols,
		rows:          rows,
		cursorVisible: true,
		attrs:         defaultAttrs(),
		scrollBottom:  rows - 1,
		modes:         make(map[vte.Mode]bool),
		privateModes:  make(map[vte.PrivateMode]bool),
		clipboard:     make(map[byte][]byte),
	}
	g.cells = make([][]Cell, rows)
	for y := range g.cells {
		g.cells[y] = g.blankRow()
	}
	for i := range g.palette {
		g.palette[i] = defaultPaletteEntry(i)
	}
	return g
}

func (g *Grid) blankRow() []Cell {
	row := make([]Cell, g.cols)
	for x := range row {
		row[x] = blankCell(g.attrs)
	}
	return row
}

// Cols, Rows, Cell, Cursor, Title give a renderer read access without
// exposing the lock or mutable slices.
func (g *Grid) Cols() int { g.mu.Lock(); defer g.mu.Unlock(); return g.cols }
func (g *Grid) Rows() int { g.mu.Lock(); defer g.mu.Unlock(); return g.rows }

func (g *Grid) Cell(x, y int) Cell {
	g.mu.Lock()
	defer g.mu.Unlock()
	if y < 0 || y >= g.rows || x < 0 || x >= g.cols {
		return Cell{}
	}
	return g.cells[y][x]
}

func (g *Grid) Cursor() (x, y int, visible bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cursorX, g.cursorY, g.cursorVisible
}

func (g *Grid) Title() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.title
}

var _ vte.Handler = (*Grid)(nil)
