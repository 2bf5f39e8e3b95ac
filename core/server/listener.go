package server

import (
	"fmt"
	"net"
	"strconv"
)

// Listen binds a TCP listener on all interfaces. Port 0 lets the kernel pick one.
func Listen(port int) (net.Listener, error) {
	ln, err := net.Listen("tcp", ":"+strconv.Itoa(port))
	if err != nil {
		return nil, fmt.Errorf("failed to bind port %d: %w", port, err)
	}
	return ln, nil
}

// BoundPort returns the port the listener is actually bound to.
func BoundPort(ln net.Listener) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}
