// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface and mounts its own routes.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager registers features via Register() and mounts the enabled ones
// via LoadAll(). The static file responder is loaded this way and is the
// catch-all for every path, so it must be registered last.
package loader
