package static

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	indexBody  = "<!DOCTYPE html><title>home</title>"
	secretBody = "top secret outside the root"
)

// setupSite lays out base/secret.txt next to the root base/public.
func setupSite(t *testing.T) string {
	base := t.TempDir()
	root := filepath.Join(base, "public")

	files := map[string]string{
		"index.html":      indexBody,
		"css/style.css":   "body { color: red; }",
		"data.json":       `{"ok":true}`,
		"docs/index.html": "docs home",
		"empty/.keep":     "",
		"img/logo.bin":    string([]byte{0x00, 0xff, 0x10, 0x80}),
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(base, "secret.txt"), []byte(secretBody), 0o644))

	return root
}

func setupTestApp(t *testing.T) *fiber.App {
	app := fiber.New()
	NewHandler(setupSite(t)).RegisterRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string) (int, string, string) {
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header.Get("Content-Type"), string(body)
}

func TestHandler_ExistingFile(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		name        string
		path        string
		body        string
		contentType string
	}{
		{"Index", "/index.html", indexBody, "text/html"},
		{"Stylesheet", "/css/style.css", "body { color: red; }", "text/css"},
		{"JSON", "/data.json", `{"ok":true}`, "application/json"},
		{"Binary", "/img/logo.bin", string([]byte{0x00, 0xff, 0x10, 0x80}), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, contentType, body := doRequest(t, app, fiber.MethodGet, tt.path)
			assert.Equal(t, fiber.StatusOK, status)
			assert.Equal(t, tt.body, body)
			assert.Contains(t, contentType, tt.contentType)
		})
	}
}

func TestHandler_DirectoryIndex(t *testing.T) {
	app := setupTestApp(t)

	status, _, body := doRequest(t, app, fiber.MethodGet, "/")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, indexBody, body)

	status, _, body = doRequest(t, app, fiber.MethodGet, "/docs/")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "docs home", body)
}

func TestHandler_NotFound(t *testing.T) {
	app := setupTestApp(t)

	for _, path := range []string{"/does-not-exist.xyz", "/css/missing.css", "/empty/"} {
		t.Run(path, func(t *testing.T) {
			status, _, _ := doRequest(t, app, fiber.MethodGet, path)
			assert.Equal(t, fiber.StatusNotFound, status)
		})
	}
}

func TestHandler_Head(t *testing.T) {
	app := setupTestApp(t)

	status, _, body := doRequest(t, app, fiber.MethodHead, "/index.html")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, body)

	status, _, _ = doRequest(t, app, fiber.MethodHead, "/does-not-exist.xyz")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandler_NoCustomHeaders(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/index.html", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Empty(t, resp.Header.Get("Cache-Control"))
	assert.Empty(t, resp.Header.Get("Content-Encoding"))
}

func TestHandler_Traversal(t *testing.T) {
	app := setupTestApp(t)

	paths := []string{
		"/../secret.txt",
		"/../../secret.txt",
		"/css/../../secret.txt",
		"/%2e%2e/secret.txt",
		"/..%2fsecret.txt",
		"/../../etc/passwd",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			status, _, body := doRequest(t, app, fiber.MethodGet, path)
			assert.NotEqual(t, fiber.StatusOK, status)
			assert.NotContains(t, body, secretBody)
			assert.NotContains(t, body, "root:")
		})
	}
}

func TestHandler_Idempotent(t *testing.T) {
	app := setupTestApp(t)

	firstStatus, firstType, firstBody := doRequest(t, app, fiber.MethodGet, "/css/style.css")
	for i := 0; i < 5; i++ {
		status, contentType, body := doRequest(t, app, fiber.MethodGet, "/css/style.css")
		assert.Equal(t, firstStatus, status)
		assert.Equal(t, firstType, contentType)
		assert.Equal(t, firstBody, body)
	}
}

func TestHandler_ServesReplacedFile(t *testing.T) {
	root := setupSite(t)
	app := fiber.New()
	NewHandler(root).RegisterRoutes(app)

	status, _, body := doRequest(t, app, fiber.MethodGet, "/css/style.css")
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "body { color: red; }", body)

	// Same swap the mirror performs: write elsewhere, rename over the live file.
	staged := filepath.Join(t.TempDir(), "style.css")
	require.NoError(t, os.WriteFile(staged, []byte("body { color: blue; }"), 0o644))
	require.NoError(t, os.Rename(staged, filepath.Join(root, "css", "style.css")))

	status, _, body = doRequest(t, app, fiber.MethodGet, "/css/style.css")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "body { color: blue; }", body)
}

func TestHandler_DirectoryWithoutSlash(t *testing.T) {
	app := setupTestApp(t)

	status, _, body := doRequest(t, app, fiber.MethodGet, "/docs")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "docs home", body)
}
