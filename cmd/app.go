package cmd

import (
	"static-server/core/config"
	"static-server/core/loader"
	"static-server/feature/static"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewApp builds the fully configured application without binding a port,
// so a hosting process or test harness can mount or serve it itself.
func NewApp(cfg *config.Config, logg *zap.Logger) (*fiber.App, error) {
	root, err := cfg.Server.StaticRoot()
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
	})

	mgr := loader.NewManager(logg)
	// The static feature is a catch-all on "/" and stays last.
	mgr.Register(static.NewFeature(root, logg))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}

	return app, nil
}

// loadConfig applies command line overrides on top of the environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, err
	}
	if rootFlag != "" {
		cfg.Server.Root = rootFlag
	}
	return cfg, nil
}
