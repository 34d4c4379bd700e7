package term

import (
	"math"
	"unicode/utf8"

	"github.com/phanxgames/pong"
)

// Cell size in canvas pixels. A terminal cell is roughly twice as tall as it
// is wide.
const (
	CellWidth  = 8
	CellHeight = 16
)

const (
	glyphBlock   = '█'
	glyphBall    = '●'
	glyphDivider = '┊'
	glyphDash    = '┄'
)

// Cell is one character of the rasterized court.
type Cell struct {
	Rune  rune
	Color pong.Color
}

// Canvas is a grid of cells the draw list is rasterized into.
type Canvas struct {
	Cols, Rows int
	Background pong.Color
	Cells      []Cell
}

// NewCanvas returns a blank canvas.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Reset(cols, rows)
	return c
}

// Reset resizes the canvas and blanks every cell.
func (c *Canvas) Reset(cols, rows int) {
	c.Cols, c.Rows = max(cols, 0), max(rows, 0)
	n := c.Cols * c.Rows
	if cap(c.Cells) < n {
		c.Cells = make([]Cell, n)
	}
	c.Cells = c.Cells[:n]
	c.fill(Cell{Rune: ' '})
}

// At returns the cell at col, row. Out-of-range positions are blank.
func (c *Canvas) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
		return Cell{Rune: ' '}
	}
	return c.Cells[row*c.Cols+col]
}

func (c *Canvas) set(col, row int, r rune, clr pong.Color) {
	if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
		return
	}
	c.Cells[row*c.Cols+col] = Cell{Rune: r, Color: clr}
}

func (c *Canvas) fill(cell Cell) {
	for i := range c.Cells {
		c.Cells[i] = cell
	}
}

// Rasterize draws cmds onto the canvas in order.
func (c *Canvas) Rasterize(cmds []pong.DrawCommand) {
	for i := range cmds {
		cmd := &cmds[i]
		switch cmd.Type {
		case pong.CommandClear:
			c.Background = cmd.Color
			c.fill(Cell{Rune: ' ', Color: cmd.Color})
		case pong.CommandFillRect:
			if cmd.Rect.Width > 0 && cmd.Rect.Height > 0 {
				c.fillRect(cmd.Rect, cmd.Color)
			}
		case pong.CommandFillEllipse:
			if cmd.Rect.Width <= 0 || cmd.Rect.Height <= 0 {
				continue
			}
			ctr := cmd.Rect.Center()
			c.set(cellCol(ctr.X), cellRow(ctr.Y), glyphBall, cmd.Color)
		case pong.CommandDashedLine:
			pong.Dashes(cmd.From, cmd.To, cmd.Dash, cmd.Gap, func(a, b pong.Vec2) {
				c.segment(a, b, cmd.Color)
			})
		case pong.CommandText:
			c.text(cmd.Text, cmd.From, cmd.FontSize, cmd.Color)
		}
	}
}

// fillRect covers every cell the rectangle touches, and at least one.
func (c *Canvas) fillRect(r pong.Rect, clr pong.Color) {
	c0, r0 := cellCol(r.X), cellRow(r.Y)
	c1 := max(int(math.Ceil(r.Right()/CellWidth))-1, c0)
	r1 := max(int(math.Ceil(r.Bottom()/CellHeight))-1, r0)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			c.set(col, row, glyphBlock, clr)
		}
	}
}

// segment marks the blank cells along a dash whose centre falls inside it on
// the dash's major axis. Entities already drawn stay visible.
func (c *Canvas) segment(a, b pong.Vec2, clr pong.Color) {
	if math.Abs(b.Y-a.Y) >= math.Abs(b.X-a.X) {
		lo, hi := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
		col := cellCol((a.X + b.X) / 2)
		for row := cellRow(lo); row <= cellRow(hi); row++ {
			if y := float64(row)*CellHeight + CellHeight/2; y >= lo && y < hi && c.At(col, row).Rune == ' ' {
				c.set(col, row, glyphDivider, clr)
			}
		}
		return
	}
	lo, hi := math.Min(a.X, b.X), math.Max(a.X, b.X)
	row := cellRow((a.Y + b.Y) / 2)
	for col := cellCol(lo); col <= cellCol(hi); col++ {
		if x := float64(col)*CellWidth + CellWidth/2; x >= lo && x < hi && c.At(col, row).Rune == ' ' {
			c.set(col, row, glyphDash, clr)
		}
	}
}

// text centres s on at.X, in the row holding the middle of a size px tall
// line whose baseline is at.Y.
func (c *Canvas) text(s string, at pong.Vec2, size float64, clr pong.Color) {
	row := cellRow(at.Y - size/2)
	col := cellCol(at.X) - utf8.RuneCountInString(s)/2
	for _, r := range s {
		c.set(col, row, r, clr)
		col++
	}
}

func cellCol(x float64) int { return int(math.Floor(x / CellWidth)) }
func cellRow(y float64) int { return int(math.Floor(y / CellHeight)) }
