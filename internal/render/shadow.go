// Package render holds compositing effects drawn around the control panel.
package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the panel drop shadow.
type ShadowOptions struct {
	Radius int
	Offset image.Point
}

// DefaultShadowOptions returns the shadow used under the control panel.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius: 6,
		Offset: image.Pt(4, 4),
	}
}

// Shadow draws a blurred drop shadow for rectangular panels. The blurred
// mask is cached per panel size, so a panel that keeps its size costs one
// DrawMask per frame.
type Shadow struct {
	opts ShadowOptions
	size image.Point
	mask *image.Gray
}

// NewShadow returns a Shadow using opts.
func NewShadow(opts ShadowOptions) *Shadow {
	if opts.Radius < 0 {
		opts.Radius = 0
	}
	return &Shadow{opts: opts}
}

// Draw composites the shadow of a panel occupying r onto dst. The alpha of
// col sets the shadow strength; a fully transparent col draws nothing.
func (s *Shadow) Draw(dst draw.Image, r image.Rectangle, col color.RGBA) {
	if r.Empty() || col.A == 0 {
		return
	}
	mask := s.maskFor(r.Size())
	at := r.Inset(-s.opts.Radius).Add(s.opts.Offset)
	src := image.NewUniform(color.NRGBA{R: col.R, G: col.G, B: col.B, A: col.A})
	draw.DrawMask(dst, at, src, image.Point{}, mask, image.Point{}, draw.Over)
}

// Mask returns the blurred alpha mask for a panel of the given size. The
// panel itself sits at (Radius, Radius) inside the mask.
func (s *Shadow) Mask(size image.Point) *image.Gray {
	return s.maskFor(size)
}

func (s *Shadow) maskFor(size image.Point) *image.Gray {
	if s.mask != nil && s.size == size {
		return s.mask
	}
	rad := s.opts.Radius
	bounds := image.Rect(0, 0, size.X+2*rad, size.Y+2*rad)
	solid := image.NewGray(bounds)
	draw.Draw(solid, image.Rect(rad, rad, rad+size.X, rad+size.Y), image.NewUniform(color.Gray{Y: 255}), image.Point{}, draw.Src)
	s.mask = blurGray(solid, rad)
	s.size = size
	return s.mask
}

// blurGray is a separable box blur using running sums per row and column.
func blurGray(src *image.Gray, radius int) *image.Gray {
	if radius <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	tmp := image.NewGray(b)
	dst := image.NewGray(b)

	sums := make([]int, max(w, h)+1)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w]
		for x := 0; x < w; x++ {
			sums[x+1] = sums[x] + int(row[x])
		}
		for x := 0; x < w; x++ {
			x0, x1 := max(x-radius, 0), min(x+radius, w-1)
			tmp.Pix[y*tmp.Stride+x] = uint8((sums[x1+1] - sums[x0]) / (x1 - x0 + 1))
		}
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			sums[y+1] = sums[y] + int(tmp.Pix[y*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			y0, y1 := max(y-radius, 0), min(y+radius, h-1)
			dst.Pix[y*dst.Stride+x] = uint8((sums[y1+1] - sums[y0]) / (y1 - y0 + 1))
		}
	}
	return dst
}
