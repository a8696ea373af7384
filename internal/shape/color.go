package shape

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a normalised RGBA colour as edited by the control panel. Each
// channel is in the range [0, 1].
type Color struct {
	R, G, B, A float32
}

var _ color.Color = Color{}

// Red is the initial drawing colour.
var Red = Color{R: 1, A: 1}

// Black is the default canvas background.
var Black = Color{A: 1}

// FromRGBA converts an 8-bit colour to its normalised form.
func FromRGBA(c color.RGBA) Color {
	return Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// ToRGBA returns the colour quantised to 8 bits per channel. Channels outside
// [0, 1] are clamped.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: quantize(c.R), G: quantize(c.G), B: quantize(c.B), A: quantize(c.A)}
}

// RGBA implements color.Color. The stored channels are straight alpha, so the
// result is premultiplied on the way out.
func (c Color) RGBA() (r, g, b, a uint32) {
	q := c.ToRGBA()
	return color.NRGBA{R: q.R, G: q.G, B: q.B, A: q.A}.RGBA()
}

// Hex formats the colour as #RRGGBB, or #RRGGBBAA when not opaque.
func (c Color) Hex() string {
	q := c.ToRGBA()
	if q.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", q.R, q.G, q.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", q.R, q.G, q.B, q.A)
}

func (c Color) String() string { return c.Hex() }

func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// ParseColor accepts an SVG colour name, #RRGGBB or #RRGGBBAA.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Color{}, fmt.Errorf("color cannot be empty")
	}
	if c, ok := colornames.Map[name]; ok {
		return FromRGBA(c), nil
	}
	if strings.HasPrefix(name, "#") && (len(name) == 7 || len(name) == 9) {
		var ch [4]uint8
		ch[3] = 255
		for i := 0; i < (len(name)-1)/2; i++ {
			v, err := strconv.ParseUint(name[1+2*i:3+2*i], 16, 8)
			if err != nil {
				return Color{}, fmt.Errorf("invalid color %q", s)
			}
			ch[i] = uint8(v)
		}
		return FromRGBA(color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}), nil
	}
	return Color{}, fmt.Errorf("invalid color %q", s)
}

// NamedColor pairs a colour name with its value.
type NamedColor struct {
	Name  string
	Color color.RGBA
}

// NamedColors returns every colour name ParseColor understands, sorted.
func NamedColors() []NamedColor {
	out := make([]NamedColor, 0, len(colornames.Names))
	for _, name := range colornames.Names {
		out = append(out, NamedColor{Name: name, Color: colornames.Map[name]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
