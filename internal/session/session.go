// Package session tracks the interaction state shared by the event loop, the
// control panel and the renderer.
package session

import (
	"image"

	"github.com/google/uuid"

	"github.com/example/drawpad/internal/shape"
)

// Variant selects how mouse input is turned into drawing data.
type Variant int

const (
	// VariantPoints records a point per left click. Points have no colour of
	// their own and are drawn in the live colour.
	VariantPoints Variant = iota
	// VariantShapes turns each left-button drag into a filled shape.
	VariantShapes
)

func (v Variant) String() string {
	switch v {
	case VariantPoints:
		return "points"
	case VariantShapes:
		return "shapes"
	}
	return "unknown"
}

// State is the drag state of the shapes variant.
type State int

const (
	StateIdle State = iota
	StateDragging
)

// Session is the mutable interaction state. It is owned by the frame loop.
type Session struct {
	Variant Variant
	Color   shape.Color
	Mode    shape.Mode

	Points *shape.Store[image.Point]
	Shapes *shape.Store[shape.Shape]

	running bool
	state   State
	start   image.Point
	bounds  image.Rectangle

	newID    func() string
	onCommit func(shape.Shape)
}

// Option configures a Session.
type Option func(*Session)

// WithColor sets the initial drawing colour.
func WithColor(c shape.Color) Option { return func(s *Session) { s.Color = c } }

// WithMode sets the initial shape mode.
func WithMode(m shape.Mode) Option { return func(s *Session) { s.Mode = m } }

// WithBounds sets the canvas rectangle release points are clamped to.
func WithBounds(r image.Rectangle) Option { return func(s *Session) { s.bounds = r } }

// WithIDFunc replaces the shape ID generator.
func WithIDFunc(fn func() string) Option { return func(s *Session) { s.newID = fn } }

// WithOnCommit registers a callback run after a shape is stored.
func WithOnCommit(fn func(shape.Shape)) Option { return func(s *Session) { s.onCommit = fn } }

// New returns a running session in the Idle state.
func New(v Variant, opts ...Option) *Session {
	s := &Session{
		Variant: v,
		Color:   shape.Red,
		Mode:    shape.ModeCircle,
		Points:  shape.NewStore[image.Point](),
		Shapes:  shape.NewStore[shape.Shape](),
		running: true,
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Running reports whether the loop should keep going.
func (s *Session) Running() bool { return s.running }

// Quit stops the session. Further presses and releases are ignored.
func (s *Session) Quit() { s.running = false }

// State returns the current drag state.
func (s *Session) State() State { return s.state }

// Press handles a left-button press at p.
func (s *Session) Press(p image.Point) {
	if !s.running {
		return
	}
	switch s.Variant {
	case VariantPoints:
		s.Points.Append(p)
	case VariantShapes:
		s.start = p
		s.state = StateDragging
	}
}

// Release handles a left-button release at p. In the shapes variant a drag in
// progress is committed with the current mode and colour. A release outside
// the canvas is clamped to its edge.
func (s *Session) Release(p image.Point) {
	if !s.running || s.Variant != VariantShapes || s.state != StateDragging {
		return
	}
	s.state = StateIdle
	sh := s.build(s.clamp(p))
	sh.ID = s.newID()
	s.Shapes.Append(sh)
	if s.onCommit != nil {
		s.onCommit(sh)
	}
}

// Preview returns the shape the current drag would commit if released at p.
// The result is never stored.
func (s *Session) Preview(p image.Point) (shape.Shape, bool) {
	if s.Variant != VariantShapes || s.state != StateDragging {
		return shape.Shape{}, false
	}
	return s.build(s.clamp(p)), true
}

func (s *Session) build(end image.Point) shape.Shape {
	return shape.Shape{Mode: s.Mode, Start: s.start, End: end, Color: s.Color}
}

// clamp keeps p inside the last pixel row and column of the canvas.
func (s *Session) clamp(p image.Point) image.Point {
	if s.bounds.Empty() {
		return p
	}
	if p.X < s.bounds.Min.X {
		p.X = s.bounds.Min.X
	}
	if p.Y < s.bounds.Min.Y {
		p.Y = s.bounds.Min.Y
	}
	if p.X >= s.bounds.Max.X {
		p.X = s.bounds.Max.X - 1
	}
	if p.Y >= s.bounds.Max.Y {
		p.Y = s.bounds.Max.Y - 1
	}
	return p
}
