package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/example/drawpad/internal/appstate"
	"github.com/example/drawpad/internal/config"
	"github.com/example/drawpad/internal/session"
	"github.com/example/drawpad/internal/shape"
)

// drawCmd runs one of the two drawing variants.
type drawCmd struct {
	*root
	fs      *flag.FlagSet
	variant session.Variant

	width, height, fps int
	title              string
	color, background  string
	mode               string
	preview            bool

	drawColor shape.Color
	bgColor   shape.Color
	shapeMode shape.Mode
}

func parseShapesCmd(args []string, r *root) (*drawCmd, error) {
	return parseDrawCmd("shapes", session.VariantShapes, args, r)
}

func parsePointsCmd(args []string, r *root) (*drawCmd, error) {
	return parseDrawCmd("points", session.VariantPoints, args, r)
}

func parseDrawCmd(name string, v session.Variant, args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	d := &drawCmd{root: r.subcommand(name), fs: fs, variant: v}
	cfg := r.config
	fs.IntVar(&d.width, "width", cfg.Window.Width, "window width in pixels")
	fs.IntVar(&d.height, "height", cfg.Window.Height, "window height in pixels")
	fs.IntVar(&d.fps, "fps", cfg.Window.FPS, "frames drawn per second")
	fs.StringVar(&d.title, "title", cfg.Window.Title, "window title")
	fs.StringVar(&d.color, "color", cfg.Canvas.Color, "initial draw colour (name or #RRGGBB)")
	fs.StringVar(&d.background, "background", cfg.Canvas.Background, "canvas background colour")
	if v == session.VariantShapes {
		fs.StringVar(&d.mode, "mode", cfg.Canvas.Mode, "initial shape: circle, rectangle or square")
		fs.BoolVar(&d.preview, "preview", cfg.Canvas.Preview, "draw the shape while it is being dragged")
	}
	fs.Usage = usageFunc(d)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: d}
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *drawCmd) validate() error {
	var err error
	if d.width <= 0 || d.height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", d.width, d.height)
	}
	if d.fps <= 0 || d.fps > config.MaxFPS {
		return fmt.Errorf("invalid -fps %d", d.fps)
	}
	if d.drawColor, err = shape.ParseColor(d.color); err != nil {
		return fmt.Errorf("invalid -color: %w", err)
	}
	if d.bgColor, err = shape.ParseColor(d.background); err != nil {
		return fmt.Errorf("invalid -background: %w", err)
	}
	if d.variant == session.VariantShapes {
		if d.shapeMode, err = shape.ParseMode(d.mode); err != nil {
			return fmt.Errorf("invalid -mode: %w", err)
		}
	}
	return nil
}

func (d *drawCmd) options() []appstate.Option {
	return []appstate.Option{
		appstate.WithTitle(d.title),
		appstate.WithSize(d.width, d.height),
		appstate.WithFPS(d.fps),
		appstate.WithBackground(d.bgColor),
		appstate.WithColor(d.drawColor),
		appstate.WithMode(d.shapeMode),
		appstate.WithPreview(d.preview),
		appstate.WithTheme(d.activeTheme),
	}
}

func (d *drawCmd) Run() error {
	var st *appstate.AppState
	opts := append(d.options(), appstate.WithOnClose(func() {
		s := st.Session()
		switch d.variant {
		case session.VariantPoints:
			log.Printf("closed with %d points", s.Points.Len())
		case session.VariantShapes:
			log.Printf("closed with %d shapes", s.Shapes.Len())
		}
	}))
	st = appstate.New(d.variant, opts...)
	return st.Run()
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func (d *drawCmd) Template() string {
	return d.fs.Name() + ".txt"
}
