package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/drawpad/internal/config"
	"github.com/example/drawpad/internal/session"
	"github.com/example/drawpad/internal/shape"
	"github.com/example/drawpad/internal/theme"
)

func testRoot(t *testing.T) (*root, *bytes.Buffer) {
	t.Helper()
	t.Setenv("DRAWPAD_THEME", "")
	var out bytes.Buffer
	return newRootWith(config.New(), &out), &out
}

func TestParseDrawCmdUsesConfigDefaults(t *testing.T) {
	r, _ := testRoot(t)
	r.config.Window.Width = 1024
	r.config.Canvas.Mode = "square"
	d, err := parseShapesCmd(nil, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.width != 1024 || d.height != 600 || d.title != "Drawing App" {
		t.Fatalf("unexpected window settings: %dx%d %q", d.width, d.height, d.title)
	}
	if d.shapeMode != shape.ModeSquare {
		t.Fatalf("mode = %v", d.shapeMode)
	}
	if d.drawColor != shape.Red {
		t.Fatalf("color = %v", d.drawColor)
	}
	if d.Program() != "drawpad shapes" {
		t.Fatalf("program = %q", d.Program())
	}
}

func TestParseDrawCmdFlagsOverride(t *testing.T) {
	r, _ := testRoot(t)
	d, err := parseShapesCmd([]string{"-width", "320", "-color", "#00FF00", "-mode", "rect", "-preview"}, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.width != 320 || d.shapeMode != shape.ModeRectangle || !d.preview {
		t.Fatalf("flags not applied: %+v", d)
	}
	if got := d.drawColor.ToRGBA(); got.G != 255 || got.R != 0 {
		t.Fatalf("color = %+v", got)
	}
}

func TestParsePointsCmdHasNoModeFlag(t *testing.T) {
	r, _ := testRoot(t)
	d, err := parsePointsCmd(nil, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.variant != session.VariantPoints {
		t.Fatalf("variant = %v", d.variant)
	}
	if d.fs.Lookup("mode") != nil {
		t.Fatalf("points should not accept -mode")
	}
}

func TestParseDrawCmdRejectsBadValues(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-color", "chartreusey"}, "invalid -color"},
		{[]string{"-background", "#12"}, "invalid -background"},
		{[]string{"-mode", "hexagon"}, "invalid -mode"},
		{[]string{"-height", "0"}, "invalid window size"},
		{[]string{"-fps", "-1"}, "invalid -fps"},
		{[]string{"-fps", "2000000000"}, "invalid -fps"},
	}
	for _, tt := range tests {
		r, _ := testRoot(t)
		_, err := parseShapesCmd(tt.args, r)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("args %v: err = %v, want %q", tt.args, err, tt.want)
		}
	}
}

func TestParseDrawCmdExtraArgs(t *testing.T) {
	r, _ := testRoot(t)
	_, err := parseShapesCmd([]string{"extra"}, r)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if help := uerr.Error(); !strings.Contains(help, "Usage: drawpad shapes") || !strings.Contains(help, "-preview") {
		t.Fatalf("unexpected help:\n%s", help)
	}
}

func TestUnknownCommandIsUsageError(t *testing.T) {
	r, _ := testRoot(t)
	err := r.Run([]string{"paint"})
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if !strings.Contains(uerr.Error(), "shapes") {
		t.Fatalf("root help does not list commands:\n%s", uerr.Error())
	}
}

func TestColorsCommand(t *testing.T) {
	r, out := testRoot(t)
	if err := r.Run([]string{"colors"}); err != nil {
		t.Fatalf("colors: %v", err)
	}
	var redLine string
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.Contains(line, " red ") {
			redLine = line
		}
	}
	if !strings.HasPrefix(redLine, "*") || !strings.Contains(redLine, "#FF0000") {
		t.Fatalf("red not marked as default: %q", redLine)
	}
}

func TestModesCommand(t *testing.T) {
	r, out := testRoot(t)
	r.config.Canvas.Mode = "Square"
	if err := r.Run([]string{"modes"}); err != nil {
		t.Fatalf("modes: %v", err)
	}
	text := out.String()
	for _, m := range shape.ModeNames() {
		if !strings.Contains(text, m) {
			t.Fatalf("missing mode %s in %q", m, text)
		}
	}
	if !strings.Contains(text, "* "+shape.ModeSquare.String()) {
		t.Fatalf("square not marked:\n%s", text)
	}
}

func TestConfigPrintRoundTrips(t *testing.T) {
	r, out := testRoot(t)
	r.config.Window.Title = "Sketch"
	if err := r.Run([]string{"config", "print"}); err != nil {
		t.Fatalf("config print: %v", err)
	}
	cfg, err := config.Parse(strings.NewReader(out.String()))
	if err != nil {
		t.Fatalf("parse printed config: %v", err)
	}
	if cfg.Window != r.config.Window || cfg.Canvas != r.config.Canvas {
		t.Fatalf("printed config differs: %+v %+v", cfg.Window, cfg.Canvas)
	}
}

func TestConfigSaveWritesFile(t *testing.T) {
	r, _ := testRoot(t)
	r.config.Canvas.Color = "gold"
	path := filepath.Join(t.TempDir(), "nested", "drawpad.rc")
	if err := r.Run([]string{"config", "-file", path, "save"}); err != nil {
		t.Fatalf("config save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	cfg, err := config.Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse saved config: %v", err)
	}
	if cfg.Canvas.Color != "gold" {
		t.Fatalf("color = %q", cfg.Canvas.Color)
	}
}

func TestConfigUnknownSubcommand(t *testing.T) {
	r, _ := testRoot(t)
	if err := r.Run([]string{"config", "edit"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestThemePrecedence(t *testing.T) {
	r, _ := testRoot(t)
	custom := theme.Default()
	custom.Name = "mine"
	r.config.Themes["mine"] = custom
	r.config.Theme = "mine"

	if got := r.resolveTheme(); got != custom {
		t.Fatalf("config theme not used: %+v", got)
	}

	t.Setenv("DRAWPAD_THEME", "light")
	if got := r.resolveTheme(); got.Name != "Light" {
		t.Fatalf("env theme not used: %q", got.Name)
	}

	r.themeName = "dark"
	if got := r.resolveTheme(); got.Name != "Dark" {
		t.Fatalf("flag theme not used: %q", got.Name)
	}

	r.themeName = "no-such-theme"
	if got := r.resolveTheme(); got.Name != theme.Default().Name {
		t.Fatalf("fallback = %q", got.Name)
	}
}

func TestThemeFlagMatchesConfigSectionCase(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader("[theme.Mine]\nBorder = #123456\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	t.Setenv("DRAWPAD_THEME", "")
	r := newRootWith(cfg, &bytes.Buffer{})
	r.themeName = "Mine"
	if got := r.resolveTheme(); got != cfg.Themes["Mine"] {
		t.Fatalf("theme Mine from config not used: %+v", got)
	}
}

func TestVersionCommand(t *testing.T) {
	r, out := testRoot(t)
	if err := r.Run([]string{"version"}); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out.String(), "drawpad version dev") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
