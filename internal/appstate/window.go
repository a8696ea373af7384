package appstate

import (
	"errors"
	"fmt"
	"image"
	"log"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/lifecycle"
)

// ErrInit is wrapped by every error caused by failing to create the window
// or its drawing surface.
var ErrInit = errors.New("initialization failed")

// Run executes the UI loop using shiny's driver and returns the error that
// ended it, if any.
func (a *AppState) Run() error {
	var err error
	driver.Main(func(s screen.Screen) {
		err = a.Main(s)
	})
	return err
}

// Main opens the window on s and runs frames until the session stops.
func (a *AppState) Main(s screen.Screen) error {
	w, buf, err := a.initialize(s)
	if err != nil {
		log.Printf("%v", err)
		return err
	}
	defer a.shutdown(w, buf)

	events := make(chan any, 64)
	done := make(chan struct{})
	defer close(done)
	go pump(w, events, done)

	ticker := time.NewTicker(a.frameInterval())
	defer ticker.Stop()

	for a.Running() {
		a.drain(events)
		if !a.Running() {
			break
		}
		a.Frame(buf.RGBA())
		w.Upload(image.Point{}, buf, buf.Bounds())
		w.Publish()
		<-ticker.C
	}
	return nil
}

// initialize creates the window and its back buffer. On failure anything
// already created is released.
func (a *AppState) initialize(s screen.Screen) (screen.Window, screen.Buffer, error) {
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Title:  a.Title,
		Width:  a.Width,
		Height: a.Height,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: new window: %w", ErrInit, err)
	}
	buf, err := s.NewBuffer(image.Pt(a.Width, a.Height))
	if err != nil {
		w.Release()
		return nil, nil, fmt.Errorf("%w: new buffer: %w", ErrInit, err)
	}
	return w, buf, nil
}

// shutdown releases the panel, the buffer and the window, in that order.
func (a *AppState) shutdown(w screen.Window, buf screen.Buffer) {
	a.ui.Close()
	buf.Release()
	w.Release()
	a.notifyClose()
}

// drain hands every queued event to HandleEvent without blocking.
func (a *AppState) drain(events <-chan any) {
	for {
		select {
		case e := <-events:
			a.HandleEvent(e)
		default:
			return
		}
	}
}

// pump forwards window events until the window dies or done is closed. It
// never touches application state.
func pump(w screen.Window, events chan<- any, done <-chan struct{}) {
	for {
		e := w.NextEvent()
		select {
		case events <- e:
		case <-done:
			return
		}
		if lc, ok := e.(lifecycle.Event); ok && lc.To == lifecycle.StageDead {
			return
		}
	}
}

// frameInterval is the ticker period for a.FPS, never below one millisecond.
func (a *AppState) frameInterval() time.Duration {
	if a.FPS <= 0 {
		return time.Second / 60
	}
	return max(time.Second/time.Duration(a.FPS), time.Millisecond)
}
