package ui

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type drawCmd interface {
	draw(dst *image.RGBA, face font.Face)
}

type fillCmd struct {
	r   image.Rectangle
	col color.RGBA
}

func (f fillCmd) draw(dst *image.RGBA, _ font.Face) { fillRect(dst, f.r, f.col) }

type strokeCmd struct {
	r   image.Rectangle
	col color.RGBA
}

func (s strokeCmd) draw(dst *image.RGBA, _ font.Face) { strokeRect(dst, s.r, s.col) }

type textCmd struct {
	at  image.Point
	s   string
	col color.RGBA
}

func (t textCmd) draw(dst *image.RGBA, face font.Face) { drawLabel(dst, face, t.at, t.s, t.col) }

// Theme colours are straight alpha, so they are composited as NRGBA.
func uniform(col color.RGBA) *image.Uniform {
	return image.NewUniform(color.NRGBA{R: col.R, G: col.G, B: col.B, A: col.A})
}

func fillRect(dst *image.RGBA, r image.Rectangle, col color.RGBA) {
	if col.A == 0 {
		return
	}
	op := draw.Over
	if col.A == 255 {
		op = draw.Src
	}
	draw.Draw(dst, r, uniform(col), image.Point{}, op)
}

func strokeRect(dst *image.RGBA, r image.Rectangle, col color.RGBA) {
	if r.Empty() {
		return
	}
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), col)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), col)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y+1, r.Min.X+1, r.Max.Y-1), col)
	fillRect(dst, image.Rect(r.Max.X-1, r.Min.Y+1, r.Max.X, r.Max.Y-1), col)
}

func drawLabel(dst *image.RGBA, face font.Face, at image.Point, s string, col color.RGBA) {
	d := &font.Drawer{Dst: dst, Src: uniform(col), Face: face, Dot: fixed.P(at.X, at.Y)}
	d.DrawString(s)
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// baseline returns the y coordinate that vertically centres a line of text
// in r.
func baseline(face font.Face, r image.Rectangle) int {
	m := face.Metrics()
	return r.Min.Y + (r.Dy()+m.Ascent.Ceil()-m.Descent.Ceil())/2
}

// window is the per-panel layout and draw list.
type window struct {
	title  string
	pos    image.Point
	cursor image.Point
	rect   image.Rectangle
	cmds   []drawCmd
}

func (w *window) id(label string) string { return w.title + "/" + label }

func (w *window) begin() {
	w.cmds = w.cmds[:0]
	w.cursor = image.Pt(w.pos.X+panelPad, w.pos.Y+titleHeight+panelPad)
}

func (w *window) end() {
	bottom := w.cursor.Y - itemSpacing + panelPad
	if bottom < w.pos.Y+titleHeight+panelPad {
		bottom = w.pos.Y + titleHeight + panelPad
	}
	w.rect = image.Rect(w.pos.X, w.pos.Y, w.pos.X+panelWidth, bottom)
}

// next lays out a widget row of the given size and advances the cursor.
func (w *window) next(width, height int) image.Rectangle {
	r := image.Rect(w.cursor.X, w.cursor.Y, w.cursor.X+width, w.cursor.Y+height)
	w.cursor.Y += height + itemSpacing
	return r
}

func (w *window) fill(r image.Rectangle, col color.RGBA) {
	w.cmds = append(w.cmds, fillCmd{r, col})
}

func (w *window) stroke(r image.Rectangle, col color.RGBA) {
	w.cmds = append(w.cmds, strokeCmd{r, col})
}

func (w *window) text(at image.Point, s string, col color.RGBA) {
	w.cmds = append(w.cmds, textCmd{at, s, col})
}
