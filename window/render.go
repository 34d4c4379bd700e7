package window

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/pong"
)

const ellipseSegments = 24

// arrow selects the glyph drawn inside an on-screen button.
type arrow uint8

const (
	arrowNone arrow = iota
	arrowUp
	arrowDown
)

// renderer executes draw lists against an ebiten image.
type renderer struct {
	white  *ebiten.Image
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
	points []pong.Vec2
}

func newRenderer() *renderer {
	r := &renderer{faces: make(map[float64]*text.GoTextFace)}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[pong] font: %v\n", err)
		return r
	}
	r.source = source
	return r
}

// whitePixel returns a lazily-initialized 1x1 white image used as the
// source of untextured triangles.
func (r *renderer) whitePixel() *ebiten.Image {
	if r.white == nil {
		r.white = ebiten.NewImage(1, 1)
		r.white.Fill(color.White)
	}
	return r.white
}

// face returns a cached face for size, or nil when no font is loaded.
func (r *renderer) face(size float64) *text.GoTextFace {
	if r.source == nil {
		return nil
	}
	f, ok := r.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: r.source, Size: size}
		r.faces[size] = f
	}
	return f
}

// draw executes cmds in order. Text commands whose tag has an active pulse
// are scaled by it.
func (r *renderer) draw(dst *ebiten.Image, cmds []pong.DrawCommand, pulses pulseSet) {
	for i := range cmds {
		cmd := &cmds[i]
		clr := nrgba(cmd.Color)
		switch cmd.Type {
		case pong.CommandClear:
			dst.Fill(clr)
		case pong.CommandFillRect:
			rc := cmd.Rect
			vector.DrawFilledRect(dst, float32(rc.X), float32(rc.Y), float32(rc.Width), float32(rc.Height), clr, false)
		case pong.CommandFillEllipse:
			r.points = ellipsePoints(r.points[:0], cmd.Rect, ellipseSegments)
			r.fillPolygon(dst, r.points, cmd.Color)
		case pong.CommandDashedLine:
			width := float32(cmd.Width)
			pong.Dashes(cmd.From, cmd.To, cmd.Dash, cmd.Gap, func(a, b pong.Vec2) {
				vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, false)
			})
		case pong.CommandText:
			r.text(dst, cmd.Text, cmd.From, cmd.FontSize, pulses.scale(cmd.Tag), cmd.Color)
		}
	}
}

// text draws s horizontally centred on at with its baseline at at.Y.
func (r *renderer) text(dst *ebiten.Image, s string, at pong.Vec2, size, scale float64, c pong.Color) {
	face := r.face(size)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(0, -face.Metrics().HAscent)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(nrgba(c))
	text.Draw(dst, s, face, op)
}

func (r *renderer) label(dst *ebiten.Image, s string, at pong.Vec2, size float64, c pong.Color) {
	r.text(dst, s, at, size, 1, c)
}

// button draws an outlined control with an optional arrow glyph.
func (r *renderer) button(dst *ebiten.Image, rc pong.Rect, c pong.Color, a arrow) {
	vector.StrokeRect(dst, float32(rc.X), float32(rc.Y), float32(rc.Width), float32(rc.Height), 2, nrgba(c), false)
	if a == arrowNone {
		return
	}
	r.points = arrowPoints(r.points[:0], rc, a)
	r.fillPolygon(dst, r.points, c)
}

func (r *renderer) fillPolygon(dst *ebiten.Image, points []pong.Vec2, c pong.Color) {
	verts, inds := polygonFan(points, c)
	if len(verts) == 0 {
		return
	}
	dst.DrawTriangles(verts, inds, r.whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// ellipsePoints appends n points on the ellipse inscribed in rc.
func ellipsePoints(dst []pong.Vec2, rc pong.Rect, n int) []pong.Vec2 {
	c := rc.Center()
	rx, ry := rc.Width/2, rc.Height/2
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		dst = append(dst, pong.Vec2{X: c.X + rx*math.Cos(a), Y: c.Y + ry*math.Sin(a)})
	}
	return dst
}

// arrowPoints appends a triangle pointing up or down, inset in rc.
func arrowPoints(dst []pong.Vec2, rc pong.Rect, a arrow) []pong.Vec2 {
	inset := rc.Width / 4
	l, r := rc.X+inset, rc.Right()-inset
	t, b := rc.Y+inset, rc.Bottom()-inset
	mid := rc.X + rc.Width/2
	if a == arrowUp {
		return append(dst, pong.Vec2{X: mid, Y: t}, pong.Vec2{X: r, Y: b}, pong.Vec2{X: l, Y: b})
	}
	return append(dst, pong.Vec2{X: l, Y: t}, pong.Vec2{X: r, Y: t}, pong.Vec2{X: mid, Y: b})
}

// polygonFan generates vertices and indices for a fan-triangulated convex
// polygon filled with c. N vertices, 3*(N-2) indices.
func polygonFan(points []pong.Vec2, c pong.Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}

	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)

	for i, p := range points {
		v := &verts[i]
		v.DstX = float32(p.X)
		v.DstY = float32(p.Y)
		// Map to the centre of the white pixel.
		v.SrcX = 0.5
		v.SrcY = 0.5
		v.ColorR = float32(c.R)
		v.ColorG = float32(c.G)
		v.ColorB = float32(c.B)
		v.ColorA = float32(c.A)
	}

	// Vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}

	return verts, inds
}

func nrgba(c pong.Color) color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
