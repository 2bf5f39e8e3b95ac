// Package server holds the HTTP listener configuration.
//
// The main application entry point wires the Fiber app; this package decides
// where it listens and what it serves from.
//
// # Port selection
//
// ResolvePort turns the optional PORT override into a port number. An empty
// override selects DefaultPort (3000). A value that is not a number in
// 1-65535 is rejected with ErrInvalidPort so a typo fails at startup
// instead of silently binding the default.
//
// # Static root
//
// Config.StaticRoot resolves the served directory to an absolute path once
// at startup and rejects roots that do not exist.
//
// # Usage
//
//	port, err := cfg.Server.ListenPort()
//	ln, err := server.Listen(port)
//	logg.Info("Server listening on port", zap.Int("port", server.BoundPort(ln)))
package server
