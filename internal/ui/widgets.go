package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/example/drawpad/internal/shape"
)

// widgetColor picks the theme colour for the widget's default, hover or
// pressed state.
func (c *Context) widgetColor(id string, r image.Rectangle) color.RGBA {
	switch {
	case c.active == id:
		return c.theme.WidgetActive
	case c.hovered(id, r):
		return c.theme.WidgetHover
	}
	return c.theme.WidgetBackground
}

// label draws text to the right of a widget row.
func (c *Context) label(row image.Rectangle, s string) {
	if s == "" {
		return
	}
	c.cur.text(image.Pt(row.Max.X+itemSpacing, baseline(c.face, row)), s, c.theme.Text)
}

// Button draws a push button and reports whether it was clicked this frame.
// A click is a press and a release that both land on the button.
func (c *Context) Button(label string) bool {
	w := c.cur
	if w == nil {
		return false
	}
	id := w.id(label)
	r := w.next(textWidth(c.face, label)+2*framePadding, rowHeight)
	c.item = r
	c.track(r)

	c.press(id, r)
	clicked := false
	if c.active == id && c.in.released {
		clicked = c.hit(r, c.in.releaseAt)
		c.active = ""
	}

	w.fill(r, c.widgetColor(id, r))
	w.text(image.Pt(r.Min.X+framePadding, baseline(c.face, r)), label, c.theme.Text)
	return clicked
}

// ColorEdit3 edits the red, green and blue channels of col. Each channel is a
// box that is dragged horizontally, one step per pixel. Alpha is left alone.
// It reports whether col changed this frame.
func (c *Context) ColorEdit3(label string, col *shape.Color) bool {
	w := c.cur
	if w == nil {
		return false
	}
	row := w.next(itemWidth, rowHeight)
	c.item = row

	swatch := image.Rect(row.Max.X-rowHeight, row.Min.Y, row.Max.X, row.Max.Y)
	boxW := (row.Dx() - rowHeight - 3*itemSpacing) / 3
	channels := [3]*float32{&col.R, &col.G, &col.B}
	changed := false
	for i, name := range [3]string{"R", "G", "B"} {
		x := row.Min.X + i*(boxW+itemSpacing)
		r := image.Rect(x, row.Min.Y, x+boxW, row.Max.Y)
		id := w.id(label + "#" + name)
		c.track(r)
		v := channel(*channels[i])
		if c.press(id, r) {
			c.dragValue = v
		}
		if c.active == id {
			nv := clampInt(c.dragValue+c.in.mouse.X-c.dragFrom.X, 0, 255)
			if nv != v {
				*channels[i] = float32(nv) / 255
				v = nv
				changed = true
			}
			if c.in.released {
				c.active = ""
			}
		}
		w.fill(r, c.widgetColor(id, r))
		text := fmt.Sprintf("%s:%d", name, v)
		w.text(image.Pt(r.Min.X+(r.Dx()-textWidth(c.face, text))/2, baseline(c.face, r)), text, c.theme.Text)
	}

	opaque := col.ToRGBA()
	opaque.A = 255
	w.fill(swatch, opaque)
	w.stroke(swatch, c.theme.Border)
	c.label(row, label)
	return changed
}

// Combo shows items[*current] and opens a list to choose another entry.
// It reports whether *current changed this frame.
func (c *Context) Combo(label string, current *int, items []string) bool {
	w := c.cur
	if w == nil {
		return false
	}
	id := w.id(label)
	listID := id + "#list"
	r := w.next(itemWidth, rowHeight)
	c.item = r
	c.track(r)
	list := image.Rect(r.Min.X, r.Max.Y, r.Max.X, r.Max.Y+len(items)*rowHeight)

	open := c.openCombo == id
	if open && c.in.pressed && !c.in.pressAt.In(r) && !c.in.pressAt.In(list) {
		c.openCombo = ""
		open = false
	}

	c.press(id, r)
	if c.active == id && c.in.released {
		c.active = ""
		if c.hit(r, c.in.releaseAt) {
			open = !open
		}
	}

	changed := false
	if open {
		if c.in.pressed && c.active == "" && c.in.pressAt.In(list) {
			c.active = listID
		}
		if c.active == listID && c.in.released {
			c.active = ""
			if c.in.releaseAt.In(list) {
				if i := (c.in.releaseAt.Y - list.Min.Y) / rowHeight; i != *current {
					*current = i
					changed = true
				}
			}
			open = false
		}
	}
	if open {
		c.openCombo = id
	} else if c.openCombo == id {
		c.openCombo = ""
	}

	arrow := image.Rect(r.Max.X-rowHeight, r.Min.Y, r.Max.X, r.Max.Y)
	w.fill(r, c.widgetColor(id, r))
	if *current >= 0 && *current < len(items) {
		w.text(image.Pt(r.Min.X+framePadding, baseline(c.face, r)), items[*current], c.theme.Text)
	}
	w.fill(arrow, c.theme.SliderGrab)
	w.text(image.Pt(arrow.Min.X+(arrow.Dx()-textWidth(c.face, "v"))/2, baseline(c.face, arrow)), "v", c.theme.Text)
	c.label(r, label)

	if open {
		c.popupRect = list
		c.popup = append(c.popup, fillCmd{list, c.theme.PanelBackground})
		for i, item := range items {
			rr := image.Rect(list.Min.X, list.Min.Y+i*rowHeight, list.Max.X, list.Min.Y+(i+1)*rowHeight)
			switch {
			case i == *current:
				c.popup = append(c.popup, fillCmd{rr, c.theme.WidgetActive})
			case c.in.mouse.In(rr):
				c.popup = append(c.popup, fillCmd{rr, c.theme.WidgetHover})
			}
			c.popup = append(c.popup, textCmd{image.Pt(rr.Min.X+framePadding, baseline(c.face, rr)), item, c.theme.Text})
		}
		c.popup = append(c.popup, strokeCmd{list, c.theme.Border})
	}
	return changed
}

func channel(v float32) int {
	return clampInt(int(v*255+0.5), 0, 255)
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
