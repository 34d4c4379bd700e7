package term

import (
	"testing"

	"github.com/phanxgames/pong"
)

func TestCanvasReset(t *testing.T) {
	c := NewCanvas(4, 3)
	if len(c.Cells) != 12 {
		t.Fatalf("len(Cells) = %d, want 12", len(c.Cells))
	}
	c.set(1, 1, 'x', pong.ColorWhite)
	c.Reset(2, 2)
	if c.At(1, 1).Rune != ' ' {
		t.Error("Reset did not blank cells")
	}
	if c.At(5, 5).Rune != ' ' || c.At(-1, 0).Rune != ' ' {
		t.Error("out-of-range At not blank")
	}
}

func TestFillRect(t *testing.T) {
	tests := []struct {
		name   string
		r      pong.Rect
		c0, r0 int
		c1, r1 int
	}{
		{"aligned", pong.Rect{X: 8, Y: 16, Width: 16, Height: 32}, 1, 1, 2, 2},
		{"straddling", pong.Rect{X: 50, Y: 255, Width: 15, Height: 90}, 6, 15, 8, 21},
		{"thin", pong.Rect{X: 9, Y: 17, Width: 1, Height: 1}, 1, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(20, 30)
			c.fillRect(tt.r, pong.ColorWhite)
			for row := 0; row < c.Rows; row++ {
				for col := 0; col < c.Cols; col++ {
					in := col >= tt.c0 && col <= tt.c1 && row >= tt.r0 && row <= tt.r1
					if got := c.At(col, row).Rune == glyphBlock; got != in {
						t.Fatalf("cell (%d, %d) filled = %v, want %v", col, row, got, in)
					}
				}
			}
		})
	}
}

func TestVerticalDashes(t *testing.T) {
	c := NewCanvas(10, 8)
	c.Rasterize([]pong.DrawCommand{{
		Type: pong.CommandDashedLine,
		From: pong.Vec2{X: 40, Y: 0}, To: pong.Vec2{X: 40, Y: 128},
		Dash: 10, Gap: 10, Color: pong.ColorWhite,
	}})
	// Row centres at 8, 24, 40, ... fall in a dash when y mod 20 < 10.
	want := []bool{true, true, true, false, false, true, true, true}
	for row, w := range want {
		if got := c.At(5, row).Rune == glyphDivider; got != w {
			t.Errorf("row %d dashed = %v, want %v", row, got, w)
		}
	}
}

func TestRasterizeCourt(t *testing.T) {
	m := pong.NewMatch(pong.DefaultConfig(), pong.NewRandomSource(3))
	m.Resize(800, 640)
	m.Start()
	s := m.State()
	s.PlayerScore, s.OpponentScore = 4, 12

	c := NewCanvas(100, 40)
	c.Rasterize(pong.AppendDrawList(nil, s, pong.DefaultDrawStyle()))

	// Ball centre (400, 320) → cell (50, 20).
	if got := c.At(50, 20).Rune; got != glyphBall {
		t.Errorf("ball cell = %q, want %q", got, glyphBall)
	}
	// Player paddle spans x 50..65 and y 275..365.
	if got := c.At(7, 20).Rune; got != glyphBlock {
		t.Errorf("player paddle cell = %q", got)
	}
	// Opponent paddle x 735..750.
	if got := c.At(92, 20).Rune; got != glyphBlock {
		t.Errorf("opponent paddle cell = %q", got)
	}
	if got := c.At(50, 0).Rune; got != glyphDivider {
		t.Errorf("divider cell = %q", got)
	}
	// Scores: baseline 50, size 36 → row 2; centred on x 200 and 600.
	if got := c.At(25, 2).Rune; got != '4' {
		t.Errorf("player score cell = %q", got)
	}
	if got := string([]rune{c.At(74, 2).Rune, c.At(75, 2).Rune}); got != "12" {
		t.Errorf("opponent score = %q", got)
	}
	if c.Background != pong.ColorBlack {
		t.Errorf("background = %v", c.Background)
	}
}
