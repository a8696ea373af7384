// Package ui is a small immediate-mode widget toolkit for the control panel.
//
// Widgets are declared every frame between NewFrame and Render. Input is fed
// in beforehand through ProcessEvent, which also reports whether the panel
// claims the event so the canvas can ignore it.
package ui

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/drawpad/internal/render"
	"github.com/example/drawpad/internal/theme"
)

const (
	panelWidth   = 280
	panelPad     = 8
	titleHeight  = 20
	rowHeight    = 20
	itemSpacing  = 4
	itemWidth    = 180
	framePadding = 6
)

type input struct {
	mouse     image.Point
	down      bool
	pressed   bool
	pressAt   image.Point
	released  bool
	releaseAt image.Point
}

// Context holds widget state that survives between frames.
type Context struct {
	theme  *theme.Theme
	face   font.Face
	shadow *render.Shadow
	origin image.Point

	pending input
	in      input
	holding bool

	active    string
	dragFrom  image.Point
	dragValue int
	openCombo string

	windows map[string]*window
	frame   []*window
	cur     *window
	popup   []drawCmd
	item    image.Rectangle
	hot     []image.Rectangle

	// capture areas; rebuilt every frame and consulted by ProcessEvent
	panelRect image.Rectangle
	popupRect image.Rectangle
	popupPrev image.Rectangle

	closed bool
}

// Option configures a Context.
type Option func(*Context)

// WithTheme sets the panel colours.
func WithTheme(t *theme.Theme) Option { return func(c *Context) { c.theme = t } }

// WithShadow sets the drop shadow drawn under panels.
func WithShadow(o render.ShadowOptions) Option {
	return func(c *Context) { c.shadow = render.NewShadow(o) }
}

// New creates a Context.
func New(opts ...Option) *Context {
	c := &Context{
		origin:  image.Pt(10, 10),
		face:    basicfont.Face7x13,
		windows: make(map[string]*window),
	}
	for _, o := range opts {
		o(c)
	}
	if c.theme == nil {
		c.theme = theme.Default()
	}
	if c.shadow == nil {
		c.shadow = render.NewShadow(render.DefaultShadowOptions())
	}
	return c
}

// ProcessEvent records e for the next frame. It returns true when the panel
// captures the event: a left press on a widget, a title bar or an open list,
// or the release that ends such a press. Presses on the bare panel
// background are not captured.
func (c *Context) ProcessEvent(e any) bool {
	me, ok := e.(mouse.Event)
	if !ok || c.closed {
		return false
	}
	p := image.Pt(int(me.X), int(me.Y))
	c.pending.mouse = p
	switch me.Direction {
	case mouse.DirPress:
		if me.Button != mouse.ButtonLeft {
			return c.onWidget(p)
		}
		c.pending.down = true
		c.pending.pressed = true
		c.pending.pressAt = p
		c.holding = c.onWidget(p)
		return c.holding
	case mouse.DirRelease:
		if me.Button != mouse.ButtonLeft {
			return false
		}
		c.pending.down = false
		c.pending.released = true
		c.pending.releaseAt = p
		captured := c.holding
		c.holding = false
		return captured
	}
	return false
}

func (c *Context) onWidget(p image.Point) bool {
	if p.In(c.popupRect) {
		return true
	}
	for _, r := range c.hot {
		if p.In(r) {
			return true
		}
	}
	return false
}

// track marks r as an interactive area of the current frame.
func (c *Context) track(r image.Rectangle) {
	c.hot = append(c.hot, r)
}

// NewFrame starts a frame, consuming the input recorded since the last one.
func (c *Context) NewFrame() {
	c.in = c.pending
	c.pending.pressed = false
	c.pending.released = false
	c.frame = c.frame[:0]
	c.popup = c.popup[:0]
	c.hot = c.hot[:0]
	c.cur = nil
	c.panelRect = image.Rectangle{}
	c.popupPrev = c.popupRect
	c.popupRect = image.Rectangle{}
}

// Begin opens a panel. Panels keep their position across frames and can be
// moved by dragging the title bar.
func (c *Context) Begin(title string) {
	if c.closed {
		return
	}
	w, ok := c.windows[title]
	if !ok {
		w = &window{title: title, pos: c.origin.Add(image.Pt(0, len(c.windows)*titleHeight))}
		c.windows[title] = w
	}
	id := w.id("#title")
	bar := image.Rect(w.pos.X, w.pos.Y, w.pos.X+panelWidth, w.pos.Y+titleHeight)
	c.press(id, bar)
	if c.active == id {
		delta := c.in.mouse.Sub(c.dragFrom)
		w.pos = w.pos.Add(delta)
		c.dragFrom = c.in.mouse
	}
	c.track(image.Rect(w.pos.X, w.pos.Y, w.pos.X+panelWidth, w.pos.Y+titleHeight))
	w.begin()
	c.cur = w
}

// End closes the panel opened by Begin.
func (c *Context) End() {
	w := c.cur
	if w == nil {
		return
	}
	w.end()
	c.frame = append(c.frame, w)
	c.panelRect = c.panelRect.Union(w.rect)
	if !c.in.down {
		c.active = ""
	}
	c.cur = nil
}

// ItemRect returns the bounds of the most recently declared widget.
func (c *Context) ItemRect() image.Rectangle { return c.item }

// PanelRect returns the area covered by the panels of the current frame.
func (c *Context) PanelRect() image.Rectangle { return c.panelRect }

// Render composites the panels declared this frame onto dst, shadows first
// and open lists last.
func (c *Context) Render(dst *image.RGBA) {
	if c.closed {
		return
	}
	t := c.theme
	for _, w := range c.frame {
		c.shadow.Draw(dst, w.rect, t.Shadow)
		fillRect(dst, w.rect, t.PanelBackground)
		bar := image.Rect(w.rect.Min.X, w.rect.Min.Y, w.rect.Max.X, w.rect.Min.Y+titleHeight)
		fillRect(dst, bar, t.TitleBackground)
		drawLabel(dst, c.face, image.Pt(bar.Min.X+panelPad, baseline(c.face, bar)), w.title, t.TitleText)
		strokeRect(dst, w.rect, t.Border)
		for _, cmd := range w.cmds {
			cmd.draw(dst, c.face)
		}
	}
	for _, cmd := range c.popup {
		cmd.draw(dst, c.face)
	}
}

// Close releases the context. Later calls are no-ops.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.windows = nil
	c.frame = nil
	c.popup = nil
	c.hot = nil
	c.cur = nil
	c.shadow = nil
	c.active = ""
	c.panelRect = image.Rectangle{}
	c.popupRect = image.Rectangle{}
}

// press makes id the active widget when the frame's press landed on r.
func (c *Context) press(id string, r image.Rectangle) bool {
	if c.in.pressed && c.active == "" && c.hit(r, c.in.pressAt) {
		c.active = id
		c.dragFrom = c.in.pressAt
		return true
	}
	return false
}

// hit reports whether p targets r. An open list drawn on top shadows
// whatever lies beneath it.
func (c *Context) hit(r image.Rectangle, p image.Point) bool {
	return p.In(r) && !p.In(c.popupPrev)
}

func (c *Context) hovered(id string, r image.Rectangle) bool {
	return c.hit(r, c.in.mouse) && (c.active == "" || c.active == id)
}
