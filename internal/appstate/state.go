package appstate

import (
	"image"
	"log"
	"sync"

	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/drawpad/internal/raster"
	"github.com/example/drawpad/internal/render"
	"github.com/example/drawpad/internal/session"
	"github.com/example/drawpad/internal/shape"
	"github.com/example/drawpad/internal/theme"
	"github.com/example/drawpad/internal/ui"
)

// AppState holds the window settings and the live drawing session.
type AppState struct {
	Title      string
	Width      int
	Height     int
	FPS        int
	Background shape.Color
	Preview    bool

	color   shape.Color
	mode    shape.Mode
	theme   *theme.Theme
	variant session.Variant

	session *session.Session
	ui      *ui.Context
	canvas  *raster.Canvas
	cursor  image.Point

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(a *AppState) { a.Title = title } }

// WithSize sets the window and canvas size in pixels.
func WithSize(w, h int) Option { return func(a *AppState) { a.Width, a.Height = w, h } }

// WithFPS sets how many frames are drawn per second.
func WithFPS(fps int) Option { return func(a *AppState) { a.FPS = fps } }

// WithBackground sets the colour the canvas is cleared to every frame.
func WithBackground(c shape.Color) Option { return func(a *AppState) { a.Background = c } }

// WithColor sets the initial drawing colour.
func WithColor(c shape.Color) Option { return func(a *AppState) { a.color = c } }

// WithMode sets the initial shape mode.
func WithMode(m shape.Mode) Option { return func(a *AppState) { a.mode = m } }

// WithPreview draws the shape being dragged before it is committed.
func WithPreview(on bool) Option { return func(a *AppState) { a.Preview = on } }

// WithTheme sets the control panel colours.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.theme = t } }

// WithOnClose registers a callback invoked once the window has been torn down.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState for the given variant.
func New(v session.Variant, opts ...Option) *AppState {
	a := &AppState{
		Title:      "Drawing App",
		Width:      800,
		Height:     600,
		FPS:        60,
		Background: shape.Black,
		color:      shape.Red,
		mode:       shape.ModeCircle,
		variant:    v,
	}
	for _, o := range opts {
		o(a)
	}
	if a.FPS <= 0 {
		a.FPS = 60
	}
	if a.theme == nil {
		a.theme = theme.Default()
	}
	a.session = session.New(v,
		session.WithColor(a.color),
		session.WithMode(a.mode),
		session.WithBounds(image.Rect(0, 0, a.Width, a.Height)),
		session.WithOnCommit(func(sh shape.Shape) {
			log.Printf("shape %s: %s", sh.ID, sh)
		}),
	)
	a.ui = ui.New(ui.WithTheme(a.theme), ui.WithShadow(render.DefaultShadowOptions()))
	a.canvas = raster.NewCanvas(nil)
	return a
}

// Session returns the live session.
func (a *AppState) Session() *session.Session { return a.session }

// Running reports whether the frame loop should continue.
func (a *AppState) Running() bool { return a.session.Running() }

func (a *AppState) quit(reason string) {
	if !a.session.Running() {
		return
	}
	log.Printf("quit: %s", reason)
	a.session.Quit()
}

// HandleEvent applies one window event. The control panel sees every event
// first. In the points variant every left press adds a point, panel or not;
// in the shapes variant a press captured by a panel widget starts no drag.
func (a *AppState) HandleEvent(e any) {
	captured := a.ui.ProcessEvent(e)
	switch e := e.(type) {
	case lifecycle.Event:
		if e.To == lifecycle.StageDead {
			a.quit("window closed")
		}
	case mouse.Event:
		p := image.Pt(int(e.X), int(e.Y))
		a.cursor = p
		if e.Button != mouse.ButtonLeft {
			return
		}
		switch e.Direction {
		case mouse.DirPress:
			if !captured || a.variant == session.VariantPoints {
				a.session.Press(p)
			}
		case mouse.DirRelease:
			a.session.Release(p)
		}
	}
}

// Frame builds the control panel and draws the scene into dst: background,
// stored points or shapes in insertion order, the optional drag preview and
// finally the panel.
func (a *AppState) Frame(dst *image.RGBA) {
	a.ui.NewFrame()
	a.buildPanel()

	a.canvas.SetTarget(dst)
	a.canvas.SetDrawColor(a.Background.ToRGBA())
	a.canvas.Clear()

	s := a.session
	switch s.Variant {
	case session.VariantPoints:
		raster.DrawPoints(a.canvas, s.Points.All(), s.Color.ToRGBA())
	case session.VariantShapes:
		s.Shapes.Each(func(sh shape.Shape) {
			raster.DrawShape(a.canvas, sh)
		})
		if a.Preview {
			if sh, ok := s.Preview(a.cursor); ok {
				raster.DrawShape(a.canvas, sh)
			}
		}
	}

	a.ui.Render(dst)
}

func (a *AppState) buildPanel() {
	s := a.session
	a.ui.Begin("Controls")
	a.ui.ColorEdit3("Draw Color", &s.Color)
	if s.Variant == session.VariantShapes {
		idx := int(s.Mode)
		if a.ui.Combo("Shape", &idx, shape.ModeNames()) {
			s.Mode = shape.Mode(idx)
		}
		if a.ui.Button("Quit") {
			a.quit("quit button")
		}
	}
	a.ui.End()
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}
