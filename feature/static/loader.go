package static

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	root    string
	handler *Handler
	logger  *zap.Logger
}

// NewFeature creates the static file feature for an absolute root.
func NewFeature(root string, logger *zap.Logger) *Feature {
	return &Feature{
		root:    root,
		handler: NewHandler(root),
		logger:  logger,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load inspects the root and mounts the handler.
func (f *Feature) Load(app fiber.Router) error {
	report, err := CheckRoot(f.root)
	if err != nil {
		return err
	}
	if !report.IndexPresent {
		f.logger.Warn("Static root has no index file", zap.String("root", f.root), zap.String("index", IndexFile))
	}

	f.handler.RegisterRoutes(app)
	return nil
}
