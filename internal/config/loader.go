package config

import (
	"os"
	"path/filepath"
)

// Loader locates and reads the rc file.
type Loader struct {
	Version      string // build version; "dev" enables ./.drawpadrc
	OverridePath string // set at link time if needed
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load reads the first config file found, or returns defaults when there is
// none.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// GetConfigPath returns the path to the configuration file, or empty string if not found.
func (l *Loader) GetConfigPath() string {
	for _, p := range l.candidates() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// DefaultPath is where a new config file is written when none exists yet.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "drawpad", "config.rc")
}

func (l *Loader) candidates() []string {
	var paths []string
	if l.OverridePath != "" {
		paths = append(paths, l.OverridePath)
	}
	if l.Version == "dev" {
		wd, _ := os.Getwd()
		paths = append(paths, filepath.Join(wd, ".drawpadrc"))
	}
	home, _ := os.UserHomeDir()
	paths = append(paths,
		filepath.Join(home, ".config", "drawpad", "config.rc"),
		filepath.Join(home, ".config", "drawpad", "drawpad.rc"),
	)
	return paths
}
