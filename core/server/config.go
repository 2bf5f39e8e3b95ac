package server

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrRootNotDirectory is returned when the static root is missing or is a plain file.
var ErrRootNotDirectory = errors.New("static root is not a directory")

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the raw port override. PORT takes precedence over the default.
	Port string `mapstructure:"port" default:"3000"`
	// Root is the directory whose files are served. Relative paths are
	// resolved against the working directory.
	Root string `mapstructure:"root" default:"public"`
}

// ListenPort resolves the configured port to a usable port number.
func (c Config) ListenPort() (int, error) {
	return ResolvePort(c.Port)
}

// StaticRoot returns the absolute static root and verifies it is a directory.
func (c Config) StaticRoot() (string, error) {
	root := c.Root
	if root == "" {
		root = DefaultRoot
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve static root %q: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRootNotDirectory, abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrRootNotDirectory, abs)
	}

	return abs, nil
}
