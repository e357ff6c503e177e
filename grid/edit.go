package grid

import "github.com/coreterm/vte"

func (g *Grid) InsertBlank(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	row := g.cells[g.cursorY]
	if g.cursorX >= g.cols {
		return
	}
	if n > g.cols-g.cursorX {
		n = g.cols - g.cursorX
	}
	copy(row[g.cursorX+n:], row[g.cursorX:g.cols-n])
	for i := 0; i < n; i++ {
		row[g.cursorX+i] = blankCell(g.attrs)
	}
}

func (g *Grid) DeleteLines(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cursorY < g.scrollTop || g.cursorY > g.scrollBottom {
		return
	}
	if n > g.scrollBottom-g.cursorY+1 {
		n = g.scrollBottom - g.cursorY + 1
	}
	copy(g.cells[g.cursorY:g.scrollBottom+1-n], g.cells[g.cursorY+n:g.scrollBottom+1])
	for i := g.scrollBottom - n + 1; i <= g.scrollBottom; i++ {
		g.cells[i] = g.blankRow()
	}
}

func (g *Grid) DeleteChars(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	row := g.cells[g.cursorY]
	if g.cursorX >= g.cols {
		return
	}
	if n > g.cols-g.cursorX {
		n = g.cols - g.cursorX
	}
	copy(row[g.cursorX:g.cols-n], row[g.cursorX+n:])
	for i := g.cols - n; i < g.cols; i++ {
		row[i] = blankCell(g.attrs)
	}
}

func (g *Grid) EraseChars(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	row := g.cells[g.cursorY]
	end := g.cursorX + n
	if end > g.cols {
		end = g.cols
	}
	for i := g.cursorX; i < end; i++ {
		row[i] = blankCell(g.attrs)
	}
}

func (g *Grid) ClearScreen(mode vte.ScreenClearMode) {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch mode {
	case vte.ScreenClearBelow:
		g.clearRowsLocked(g.cursorY+1, g.rows-1)
		g.clearRowRangeLocked(g.cursorY, g.cursorX, g.cols)
	case vte.ScreenClearAbove:
		g.clearRowsLocked(0, g.cursorY-1)
		g.clearRowRangeLocked(g.cursorY, 0, g.cursorX+1)
	case vte.ScreenClearAll, vte.ScreenClearSaved:
		g.clearRowsLocked(0, g.rows-1)
	}
}

func (g *Grid) ClearLine(mode vte.LineClearMode) {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch mode {
	case vte.LineClearRight:
		g.clearRowRangeLocked(g.cursorY, g.cursorX, g.cols)
	case vte.LineClearLeft:
		g.clearRowRangeLocked(g.cursorY, 0, g.cursorX+1)
	case vte.LineClearAll:
		g.clearRowRangeLocked(g.cursorY, 0, g.cols)
	}
}

func (g *Grid) clearRowsLocked(from, to int) {
	for y := from; y <= to && y >= 0 && y < g.rows; y++ {
		g.cells[y] = g.blankRow()
	}
}

func (g *Grid) clearRowRangeLocked(y, from, to int) {
	if y < 0 || y >= g.rows {
		return
	}
	if from < 0 {
		from = 0
	}
	if to > g.cols {
		to = g.cols
	}
	for x := from; x < to; x++ {
		g.cells[y][x] = blankCell(g.attrs)
	}
}
