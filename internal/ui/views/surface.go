package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Attr is the display attribute of a written cell
type Attr int

const (
	AttrNormal Attr = iota
	AttrReverse
	AttrBold
	AttrBorder
)

// Surface is a rectangular, bordered drawing area addressed in rows and
// columns from its own top-left corner.
type Surface interface {
	// Erase blanks every cell
	Erase()
	// Box draws a border around the outermost cells
	Box()
	// AddStr writes text starting at (row, col). Cells that fall outside the
	// surface are dropped.
	AddStr(row, col int, text string, attr Attr)
	// Size returns the number of rows and columns
	Size() (rows, cols int)
}

type cell struct {
	r    rune // 0 marks the right half of a wide rune
	attr Attr
}

// Grid is an in-memory character cell screen
type Grid struct {
	rows  int
	cols  int
	cells [][]cell
}

// NewGrid creates a blank grid
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := &Grid{rows: rows, cols: cols, cells: make([][]cell, rows)}
	for i := range g.cells {
		g.cells[i] = make([]cell, cols)
	}
	g.Erase()
	return g
}

func (g *Grid) Size() (int, int) {
	return g.rows, g.cols
}

func (g *Grid) Erase() {
	g.fill(0, 0, g.rows, g.cols)
}

func (g *Grid) Box() {
	g.box(0, 0, g.rows, g.cols)
}

func (g *Grid) AddStr(row, col int, text string, attr Attr) {
	g.write(row, col, g.cols, text, attr)
}

// Region returns a sub-window of the grid. Regions may overlap; the last one
// drawn wins, as with stacked terminal panels.
func (g *Grid) Region(y, x, rows, cols int) *Region {
	return &Region{grid: g, y: y, x: x, rows: rows, cols: cols}
}

// Line returns row i as plain text
func (g *Grid) Line(i int) string {
	if i < 0 || i >= g.rows {
		return ""
	}
	var b strings.Builder
	for _, c := range g.cells[i] {
		if c.r != 0 {
			b.WriteRune(c.r)
		}
	}
	return b.String()
}

// String returns the whole grid as plain text, one line per row
func (g *Grid) String() string {
	lines := make([]string, g.rows)
	for i := range lines {
		lines[i] = g.Line(i)
	}
	return strings.Join(lines, "\n")
}

// AttrAt returns the attribute of the cell at (row, col)
func (g *Grid) AttrAt(row, col int) Attr {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return AttrNormal
	}
	return g.cells[row][col].attr
}

// Render returns the grid as styled text, one line per row
func (g *Grid) Render(styles *Styles) string {
	lines := make([]string, g.rows)
	for i, row := range g.cells {
		var b strings.Builder
		var run strings.Builder
		runAttr := AttrNormal
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(styles.For(runAttr).Render(run.String()))
				run.Reset()
			}
		}
		for _, c := range row {
			if c.r == 0 {
				continue
			}
			if c.attr != runAttr {
				flush()
				runAttr = c.attr
			}
			run.WriteRune(c.r)
		}
		flush()
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (g *Grid) set(row, col int, c cell) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	g.cells[row][col] = c
}

func (g *Grid) fill(y, x, rows, cols int) {
	for row := y; row < y+rows; row++ {
		for col := x; col < x+cols; col++ {
			g.set(row, col, cell{r: ' '})
		}
	}
}

func (g *Grid) box(y, x, rows, cols int) {
	if rows < 2 || cols < 2 {
		return
	}
	border := lipgloss.NormalBorder()
	top, bottom := []rune(border.Top)[0], []rune(border.Bottom)[0]
	left, right := []rune(border.Left)[0], []rune(border.Right)[0]

	for col := x + 1; col < x+cols-1; col++ {
		g.set(y, col, cell{r: top, attr: AttrBorder})
		g.set(y+rows-1, col, cell{r: bottom, attr: AttrBorder})
	}
	for row := y + 1; row < y+rows-1; row++ {
		g.set(row, x, cell{r: left, attr: AttrBorder})
		g.set(row, x+cols-1, cell{r: right, attr: AttrBorder})
	}
	g.set(y, x, cell{r: []rune(border.TopLeft)[0], attr: AttrBorder})
	g.set(y, x+cols-1, cell{r: []rune(border.TopRight)[0], attr: AttrBorder})
	g.set(y+rows-1, x, cell{r: []rune(border.BottomLeft)[0], attr: AttrBorder})
	g.set(y+rows-1, x+cols-1, cell{r: []rune(border.BottomRight)[0], attr: AttrBorder})
}

// write puts text on row starting at col, stopping before limit
func (g *Grid) write(row, col, limit int, text string, attr Attr) {
	if row < 0 || row >= g.rows {
		return
	}
	if limit > g.cols {
		limit = g.cols
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > limit {
			return
		}
		g.set(row, col, cell{r: r, attr: attr})
		if w == 2 {
			g.set(row, col+1, cell{r: 0, attr: attr})
		}
		col += w
	}
}

// Region is a rectangular window onto a Grid
type Region struct {
	grid       *Grid
	y, x       int
	rows, cols int
}

func (r *Region) Size() (int, int) {
	return r.rows, r.cols
}

func (r *Region) Erase() {
	r.grid.fill(r.y, r.x, r.rows, r.cols)
}

func (r *Region) Box() {
	r.grid.box(r.y, r.x, r.rows, r.cols)
}

func (r *Region) AddStr(row, col int, text string, attr Attr) {
	if row < 0 || row >= r.rows || col < 0 {
		return
	}
	r.grid.write(r.y+row, r.x+col, r.x+r.cols, text, attr)
}

// clip shortens text so that, written at col, it stays inside the border
func clip(s Surface, col int, text string) string {
	_, cols := s.Size()
	width := cols - 1 - col
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "")
}
