package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/drawpad/internal/theme"
)

// MaxFPS is the highest frame rate accepted for [window] fps.
const MaxFPS = 1000

// Window holds the [window] section.
type Window struct {
	Title  string
	Width  int
	Height int
	FPS    int
}

// Canvas holds the [canvas] section. Colours and the mode are kept as
// written so that String reproduces the user's spelling.
type Canvas struct {
	Background string
	Color      string
	Mode       string
	Preview    bool
}

// Config holds the application configuration.
type Config struct {
	Theme  string
	Window Window
	Canvas Canvas
	Themes map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // empty lets the env var or built-in default win
		Window: Window{
			Title:  "Drawing App",
			Width:  800,
			Height: 600,
			FPS:    60,
		},
		Canvas: Canvas{
			Background: "#000000",
			Color:      "red",
			Mode:       "circle",
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
		sb.WriteString("\n")
	}

	sb.WriteString("[window]\n")
	fmt.Fprintf(&sb, "title = %s\n", c.Window.Title)
	fmt.Fprintf(&sb, "width = %d\n", c.Window.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Window.Height)
	fmt.Fprintf(&sb, "fps = %d\n", c.Window.FPS)
	sb.WriteString("\n")

	sb.WriteString("[canvas]\n")
	fmt.Fprintf(&sb, "background = %s\n", c.Canvas.Background)
	fmt.Fprintf(&sb, "color = %s\n", c.Canvas.Color)
	fmt.Fprintf(&sb, "mode = %s\n", c.Canvas.Mode)
	fmt.Fprintf(&sb, "preview = %v\n", c.Canvas.Preview)
	sb.WriteString("\n")

	var names []string
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name = %s\n", t.Name)
		t.Fields(func(field string, col color.RGBA) {
			fmt.Fprintf(&sb, "%s = %s\n", field, theme.Hex(col))
		})
		sb.WriteString("\n")
	}

	return sb.String()
}
