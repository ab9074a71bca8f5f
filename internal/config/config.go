package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Name and Version identify the program in the version banner
const (
	Name    = "ebrowse"
	Version = "0.0.0.1a"
)

// Interface names a terminal front end
type Interface string

// InterfaceCurses is the full screen terminal interface, the only one there is
const InterfaceCurses Interface = "ncurses"

// Config is the runtime configuration resolved from the command line.
// Nothing is read from or written to disk.
type Config struct {
	LogFile   string    // append log lines here, empty disables logging
	Debug     bool      // debug verbosity, no effect without LogFile
	Interface Interface // terminal front end
	Root      string    // filesystem root holding var/db/pkg
	IndexPath string    // TOML index used instead of the on-disk database
}

// DefaultConfig returns the configuration used when no flags are given
func DefaultConfig() *Config {
	return &Config{
		Interface: InterfaceCurses,
		Root:      "/",
	}
}

// Banner returns the version line printed by --version
func Banner() string {
	return fmt.Sprintf("%s v%s", Name, Version)
}

// UseIndex reports whether packages come from an index file
func (c *Config) UseIndex() bool {
	return c.IndexPath != ""
}

// Validate checks and normalizes the configuration
func (c *Config) Validate() error {
	if c.Interface == "" {
		return errors.New("no terminal interface selected")
	}
	if c.Interface != InterfaceCurses {
		return fmt.Errorf("unsupported interface %q", c.Interface)
	}

	c.Root = strings.TrimSpace(c.Root)
	if c.Root == "" {
		return errors.New("root directory must not be empty")
	}
	root, err := filepath.Abs(c.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve root %s: %w", c.Root, err)
	}
	c.Root = root

	if c.LogFile != "" {
		path, err := filepath.Abs(c.LogFile)
		if err != nil {
			return fmt.Errorf("failed to resolve log file %s: %w", c.LogFile, err)
		}
		c.LogFile = path
	}
	return nil
}
