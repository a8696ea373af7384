package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/drawpad/internal/shape"
	"github.com/example/drawpad/internal/theme"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var section string
	var current *theme.Theme
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			header := strings.TrimSpace(line[1 : len(line)-1])
			section = strings.ToLower(header)
			current = nil
			if strings.HasPrefix(section, "theme.") {
				// the name keeps its case; missing keys fall back to the default palette
				name := header[len("theme."):]
				current = theme.Default()
				current.Name = name
				cfg.Themes[name] = current
			}
			continue
		}

		key, value, ok := splitKeyValue(line)
		if !ok {
			continue
		}

		var err error
		switch {
		case current != nil:
			err = theme.SetField(current, key, value)
		case section == "":
			err = setRootField(cfg, key, value)
		case section == "window":
			err = setWindowField(&cfg.Window, key, value)
		case section == "canvas":
			err = setCanvasField(&cfg.Canvas, key, value)
		}
		if err != nil {
			if section == "" {
				return nil, fmt.Errorf("line %d: root section: %w", lineNo, err)
			}
			return nil, fmt.Errorf("line %d: section [%s]: %w", lineNo, section, err)
		}
	}

	return cfg, scanner.Err()
}

// splitKeyValue accepts "key = value" and "key: value". The first separator
// wins so hex colours after ":" survive.
func splitKeyValue(line string) (string, string, bool) {
	idx := strings.IndexAny(line, "=:")
	if idx < 0 {
		return "", "", false
	}
	key := strings.TrimSpace(line[:idx])
	value := strings.TrimSpace(line[idx+1:])
	if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	}
	return nil
}

func setWindowField(w *Window, key, value string) error {
	switch strings.ToLower(key) {
	case "title":
		w.Title = value
	case "width":
		return setPositive(&w.Width, key, value)
	case "height":
		return setPositive(&w.Height, key, value)
	case "fps":
		return setFPS(&w.FPS, key, value)
	}
	return nil
}

func setCanvasField(c *Canvas, key, value string) error {
	switch strings.ToLower(key) {
	case "background":
		if _, err := shape.ParseColor(value); err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		c.Background = value
	case "color":
		if _, err := shape.ParseColor(value); err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		c.Color = value
	case "mode":
		if _, err := shape.ParseMode(value); err != nil {
			return err
		}
		c.Mode = value
	case "preview":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for key %s: %w", key, err)
		}
		c.Preview = b
	}
	return nil
}

func setFPS(dst *int, key, value string) error {
	if err := setPositive(dst, key, value); err != nil {
		return err
	}
	if *dst > MaxFPS {
		return fmt.Errorf("%s must be at most %d, got %d", key, MaxFPS, *dst)
	}
	return nil
}

func setPositive(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid integer for key %s: %w", key, err)
	}
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", key, n)
	}
	*dst = n
	return nil
}
