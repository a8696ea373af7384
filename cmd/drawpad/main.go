package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/drawpad/internal/appstate"
	"github.com/example/drawpad/internal/config"
	"github.com/example/drawpad/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	config      *config.Config
	themeName   string
	activeTheme *theme.Theme
	stdout      io.Writer
}

func (r *root) Program() string {
	return r.program
}

func (r *root) subcommand(name string) *root {
	program := strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &root{
		program:     program,
		config:      r.config,
		themeName:   r.themeName,
		activeTheme: r.activeTheme,
		stdout:      r.stdout,
	}
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	return newRootWith(cfg, os.Stdout)
}

func newRootWith(cfg *config.Config, stdout io.Writer) *root {
	r := &root{
		fs:      flag.NewFlagSet("drawpad", flag.ExitOnError),
		program: "drawpad",
		config:  cfg,
		stdout:  stdout,
	}
	// Precedence: CLI > Env > Config > Default. The flag defaults to "" so
	// the fallbacks can be applied in Run.
	r.fs.StringVar(&r.themeName, "theme", "", "panel theme: "+strings.Join(theme.Embedded(), ", ")+", or a .theme file")
	r.fs.Usage = usageFunc(r)
	return r
}

// resolveTheme picks the panel theme from the flag, DRAWPAD_THEME, the
// config file and finally the built-in default.
func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("DRAWPAD_THEME")
	}
	if name == "" {
		name = r.config.Theme
	}

	if t, ok := r.config.Themes[name]; ok {
		return t
	}
	t, err := theme.NewLoader().Load(name)
	if err != nil {
		if name != "default" {
			fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		}
		return theme.Default()
	}
	return t
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	r.activeTheme = r.resolveTheme()

	cmdName := "shapes"
	var subArgs []string
	if r.fs.NArg() > 0 {
		cmdName = r.fs.Arg(0)
		subArgs = r.fs.Args()[1:]
	}

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "shapes":
		cmd, err = parseShapesCmd(subArgs, r)
	case "points":
		cmd, err = parsePointsCmd(subArgs, r)
	case "colors":
		cmd, err = parseColorsCmd(subArgs, r)
	case "modes":
		cmd, err = parseModesCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		switch {
		case errors.As(err, &uerr):
			fmt.Fprintln(os.Stderr, uerr.Error())
		case errors.Is(err, appstate.ErrInit):
			fmt.Fprintln(os.Stderr, err)
			os.Exit(-1)
		default:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
