// Package raster draws points and filled primitives onto a pixel surface.
package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Surface is the set of drawing primitives the renderer relies on. All calls
// use the colour set by the most recent SetDrawColor.
type Surface interface {
	SetDrawColor(c color.RGBA)
	Clear()
	DrawPoint(x, y int)
	FillRect(r image.Rectangle)
}

// Canvas is a Surface backed by an RGBA image. Pixels outside the image are
// silently dropped.
type Canvas struct {
	img *image.RGBA
	col color.RGBA
	src image.Uniform
}

var _ Surface = (*Canvas)(nil)

// NewCanvas wraps img. The initial draw colour is opaque black.
func NewCanvas(img *image.RGBA) *Canvas {
	c := &Canvas{img: img}
	c.SetDrawColor(color.RGBA{A: 255})
	return c
}

// SetTarget points the canvas at a different image, keeping the draw colour.
func (c *Canvas) SetTarget(img *image.RGBA) { c.img = img }

// SetDrawColor sets the colour for later calls. Alpha is ignored and pixels
// are written opaque.
func (c *Canvas) SetDrawColor(col color.RGBA) {
	col.A = 255
	c.col = col
	c.src.C = col
}

func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), &c.src, image.Point{}, draw.Src)
}

func (c *Canvas) DrawPoint(x, y int) {
	if image.Pt(x, y).In(c.img.Bounds()) {
		c.img.SetRGBA(x, y, c.col)
	}
}

// FillRect fills r. The rectangle is canonicalised first, so a rectangle
// given with negative width or height covers the same pixels as its mirror.
func (c *Canvas) FillRect(r image.Rectangle) {
	r = r.Canon().Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, &c.src, image.Point{}, draw.Src)
}
