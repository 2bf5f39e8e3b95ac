package server

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultPort is used when no override is supplied.
	DefaultPort = 3000
	// DefaultRoot is the conventional static root directory name.
	DefaultRoot = "public"

	minPort = 1
	maxPort = 65535
)

// ErrInvalidPort is returned for overrides that are not a port number in 1-65535.
var ErrInvalidPort = errors.New("invalid port")

// ResolvePort parses an optional port override.
// An empty override selects DefaultPort; anything that is not a decimal
// number in the TCP port range is rejected instead of silently ignored.
func ResolvePort(override string) (int, error) {
	override = strings.TrimSpace(override)
	if override == "" {
		return DefaultPort, nil
	}

	port, err := strconv.Atoi(override)
	if err != nil {
		return 0, fmt.Errorf("%w %q: not a number", ErrInvalidPort, override)
	}
	if port < minPort || port > maxPort {
		return 0, fmt.Errorf("%w %q: must be between %d and %d", ErrInvalidPort, override, minPort, maxPort)
	}

	return port, nil
}
