package static

import (
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// IndexFile is served for directory requests.
const IndexFile = "index.html"

// Handler mounts the static root on a router.
type Handler struct {
	root  string
	serve fasthttp.RequestHandler
}

// NewHandler creates a handler serving files below root.
func NewHandler(root string) *Handler {
	fs := &fasthttp.FS{
		Root:               root,
		IndexNames:         []string{IndexFile},
		GenerateIndexPages: false,
		AcceptByteRange:    false,
		Compress:           false,

		// Files are replaced under a running server by sync.
		SkipCache: true,

		PathRewrite: func(ctx *fasthttp.RequestCtx) []byte {
			path := ctx.Path()
			if len(path) > 0 && path[len(path)-1] == '/' {
				return path
			}
			return append(append(make([]byte, 0, len(path)+1), path...), '/')
		},
		PathNotFound: func(ctx *fasthttp.RequestCtx) {
			ctx.Response.SetStatusCode(fiber.StatusNotFound)
		},
	}

	return &Handler{root: root, serve: fs.NewRequestHandler()}
}

// RegisterRoutes mounts the root as the catch-all GET/HEAD handler.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/*", h.HandleFile)
}

// HandleFile serves the requested path, handing misses on to the next route.
func (h *Handler) HandleFile(c *fiber.Ctx) error {
	h.serve(c.Context())

	status := c.Response().StatusCode()
	if status != fiber.StatusNotFound && status != fiber.StatusForbidden {
		return nil
	}

	c.Context().SetContentType("")
	c.Response().SetStatusCode(fiber.StatusOK)
	c.Response().SetBodyString("")
	return c.Next()
}
