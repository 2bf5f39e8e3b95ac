// Package logger provides a structured logging facility based on Zap.
//
// The server only logs its lifecycle: startup (the bound port), warnings
// about the static root, and shutdown. Requests are not logged.
//
// # Configuration
//
//   - Level: debug, info, warn, error (LOG_LEVEL)
//   - Format: console (default, human readable) or json (LOG_FORMAT)
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log = logger.WithInstance(log)
//	log.Info("Server listening on port", zap.Int("port", 3000))
package logger
