package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/example/drawpad/internal/shape"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	marked  = color.New(color.FgGreen, color.Bold)
)

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r.subcommand("colors"), fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	named := shape.NamedColors()
	if len(named) == 0 {
		fmt.Fprintln(c.stdout, "no colors available")
		return nil
	}
	current := strings.ToLower(c.config.Canvas.Color)
	heading.Fprintln(c.stdout, "available colors (* marks the configured draw color):")
	for _, entry := range named {
		marker := " "
		if entry.Name == current {
			marker = marked.Sprint("*")
		}
		hex := fmt.Sprintf("#%02X%02X%02X", entry.Color.R, entry.Color.G, entry.Color.B)
		swatch := color.BgRGB(int(entry.Color.R), int(entry.Color.G), int(entry.Color.B)).Sprint("  ")
		fmt.Fprintf(c.stdout, "%s %-22s %s %s\n", marker, entry.Name, hex, swatch)
	}
	fmt.Fprintln(c.stdout, "any #RRGGBB or #RRGGBBAA value is accepted too")
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *colorsCmd) Template() string {
	return "colors.txt"
}

type modesCmd struct {
	*root
	fs *flag.FlagSet
}

func parseModesCmd(args []string, r *root) (*modesCmd, error) {
	fs := flag.NewFlagSet("modes", flag.ExitOnError)
	cmd := &modesCmd{root: r.subcommand("modes"), fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *modesCmd) Run() error {
	current, err := shape.ParseMode(c.config.Canvas.Mode)
	if err != nil {
		current = shape.ModeCircle
	}
	heading.Fprintln(c.stdout, "available shape modes (* marks the configured mode):")
	for _, m := range shape.Modes() {
		marker := " "
		if m == current {
			marker = marked.Sprint("*")
		}
		fmt.Fprintf(c.stdout, "%s %s\n", marker, m)
	}
	return nil
}

func (c *modesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *modesCmd) Template() string {
	return "modes.txt"
}
