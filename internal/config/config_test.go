package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme

[window]
title = "Sketch: scratch"
width = 1024
height: 768
fps = 30

[canvas]
background = #101010
color = dodgerblue
mode = Square
preview = true

[theme.my_custom_theme]
PanelBackground = #111111
Text = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	want := Window{Title: "Sketch: scratch", Width: 1024, Height: 768, FPS: 30}
	if cfg.Window != want {
		t.Errorf("Window = %+v, want %+v", cfg.Window, want)
	}
	if cfg.Canvas.Background != "#101010" || cfg.Canvas.Color != "dodgerblue" || cfg.Canvas.Mode != "Square" {
		t.Errorf("unexpected canvas: %+v", cfg.Canvas)
	}
	if !cfg.Canvas.Preview {
		t.Error("Expected canvas.preview to be true")
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.PanelBackground != (color.RGBA{0x11, 0x11, 0x11, 0xFF}) {
		t.Errorf("Unexpected PanelBackground color: %+v", th.PanelBackground)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader("# nothing here\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Window.Title != "Drawing App" || cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("unexpected window defaults: %+v", cfg.Window)
	}
	if cfg.Canvas.Color != "red" || cfg.Canvas.Mode != "circle" || cfg.Canvas.Preview {
		t.Errorf("unexpected canvas defaults: %+v", cfg.Canvas)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad width", "[window]\nwidth = wide\n"},
		{"zero height", "[window]\nheight = 0\n"},
		{"fps too high", "[window]\nfps = 2000000000\n"},
		{"bad color", "[canvas]\ncolor = notacolor\n"},
		{"bad mode", "[canvas]\nmode = hexagon\n"},
		{"bad bool", "[canvas]\npreview = maybe\n"},
		{"bad theme color", "[theme.x]\nBorder = #12\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}
		})
	}
}

func TestParseThemeSectionKeepsCase(t *testing.T) {
	cfg, err := Parse(strings.NewReader("theme = Mine\n[THEME.Mine]\nBorder = #123456\n[Window]\nfps = 1000\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	th, ok := cfg.Themes["Mine"]
	if !ok {
		t.Fatalf("theme Mine not stored under its own name: %v", cfg.Themes)
	}
	if th.Border != (color.RGBA{0x12, 0x34, 0x56, 0xFF}) {
		t.Errorf("Border = %+v", th.Border)
	}
	if cfg.Window.FPS != MaxFPS {
		t.Errorf("FPS = %d, want %d", cfg.Window.FPS, MaxFPS)
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark

[window]
title = Doodles
width = 640
height = 480
fps = 50

[canvas]
background = #FFFFFF
color = #00FF0080
mode = rectangle
preview = true

[theme.custom]
Name = custom
PanelBackground = #000000
Shadow = #00000040
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	generated := cfg.String()

	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v\n%s", err, generated)
	}

	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.Window != cfg2.Window {
		t.Errorf("Window mismatch: %+v vs %+v", cfg.Window, cfg2.Window)
	}
	if cfg.Canvas != cfg2.Canvas {
		t.Errorf("Canvas mismatch: %+v vs %+v", cfg.Canvas, cfg2.Canvas)
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderOverridePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.rc")
	if err := os.WriteFile(path, []byte("[window]\ntitle = Overridden\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader("v1.0.0", path)
	if got := l.GetConfigPath(); got != path {
		t.Fatalf("GetConfigPath = %q, want %q", got, path)
	}
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "Overridden" {
		t.Fatalf("Title = %q", cfg.Window.Title)
	}
}

func TestLoaderMissingFilesGiveDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	l := NewLoader("v1.0.0", filepath.Join(t.TempDir(), "absent.rc"))
	if got := l.GetConfigPath(); got != "" {
		t.Fatalf("GetConfigPath = %q, want empty", got)
	}
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.FPS != 60 {
		t.Fatalf("FPS = %d", cfg.Window.FPS)
	}
}
