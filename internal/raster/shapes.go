package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/example/drawpad/internal/shape"
)

// CircleGeometry returns the centre and radius of the circle spanned by a drag
// from start to end: the centre is the integer midpoint and the radius is half
// the drag length, rounded down.
func CircleGeometry(start, end image.Point) (image.Point, int) {
	center := image.Pt((start.X+end.X)/2, (start.Y+end.Y)/2)
	d := end.Sub(start)
	length := math.Sqrt(float64(d.X*d.X + d.Y*d.Y))
	return center, int(math.Floor(length / 2))
}

// RectFor returns the rectangle from start extended by the signed drag delta.
// The result is not canonicalised; FillRect takes care of that.
func RectFor(start, end image.Point) image.Rectangle {
	return image.Rectangle{Min: start, Max: end}
}

// SquareSide is the side of the square produced by a drag with delta d.
func SquareSide(d image.Point) int {
	w, h := abs(d.X), abs(d.Y)
	if w < h {
		return w
	}
	return h
}

// SquareFor returns the square anchored at start whose side is the smaller of
// the absolute drag extents. It always grows right and down from start.
func SquareFor(start, end image.Point) image.Rectangle {
	side := SquareSide(end.Sub(start))
	return image.Rectangle{Min: start, Max: start.Add(image.Pt(side, side))}
}

// FillCircle draws a filled disk by testing every pixel of the bounding box
// against the squared radius.
func FillCircle(s Surface, center image.Point, r int) {
	if r < 0 {
		return
	}
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= rr {
				s.DrawPoint(center.X+dx, center.Y+dy)
			}
		}
	}
}

// DrawShape rasterises sh in its own colour.
func DrawShape(s Surface, sh shape.Shape) {
	s.SetDrawColor(sh.Color.ToRGBA())
	switch sh.Mode {
	case shape.ModeCircle:
		center, r := CircleGeometry(sh.Start, sh.End)
		FillCircle(s, center, r)
	case shape.ModeRectangle:
		s.FillRect(RectFor(sh.Start, sh.End))
	case shape.ModeSquare:
		s.FillRect(SquareFor(sh.Start, sh.End))
	}
}

// DrawPoints draws every point in col. Points carry no colour of their own.
func DrawPoints(s Surface, pts []image.Point, col color.RGBA) {
	s.SetDrawColor(col)
	for _, p := range pts {
		s.DrawPoint(p.X, p.Y)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
