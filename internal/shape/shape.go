// Package shape holds the drawing data model: colours, shape modes, committed
// shapes and the append-only store they live in.
package shape

import (
	"fmt"
	"image"
	"strings"
)

// Mode selects which primitive a drag produces.
type Mode int

const (
	ModeCircle Mode = iota
	ModeRectangle
	ModeSquare
)

var modeNames = []string{"Circle", "Rectangle", "Square"}

// Modes returns every mode in selector order.
func Modes() []Mode {
	return []Mode{ModeCircle, ModeRectangle, ModeSquare}
}

// ModeNames returns the display labels of Modes, index aligned.
func ModeNames() []string {
	out := make([]string, len(modeNames))
	copy(out, modeNames)
	return out
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode looks a mode up by name, ignoring case.
func ParseMode(s string) (Mode, error) {
	name := strings.TrimSpace(s)
	for i, n := range modeNames {
		if strings.EqualFold(n, name) {
			return Mode(i), nil
		}
	}
	// "rect" is what people type
	if strings.EqualFold(name, "rect") {
		return ModeRectangle, nil
	}
	return 0, fmt.Errorf("unknown shape mode %q", s)
}

// Shape is a completed drag. It is never modified after it is stored.
type Shape struct {
	ID    string
	Mode  Mode
	Start image.Point
	End   image.Point
	Color Color
}

// Delta returns the signed drag extent, end minus start.
func (s Shape) Delta() image.Point {
	return s.End.Sub(s.Start)
}

func (s Shape) String() string {
	return fmt.Sprintf("%s %v->%v %s", s.Mode, s.Start, s.End, s.Color.Hex())
}
