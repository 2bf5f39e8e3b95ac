// Package config loads the application configuration.
//
// Values come from environment variables, optionally seeded from a .env
// file. Defaults live in the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: listening port (PORT, default 3000) and static root (default "public")
//   - Log: logging level and format (LOG_LEVEL, LOG_FORMAT)
//   - Storage: S3/MinIO source used by the sync command (STORAGE_*)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	port, err := cfg.Server.ListenPort()
package config
