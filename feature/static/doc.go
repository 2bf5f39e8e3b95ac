// Package static serves the files of the static root.
//
// The handler is a thin mount of Fiber's static middleware on "/". Path
// cleaning, MIME detection and directory index lookup are left to Fiber
// (fasthttp's FS), which normalizes ".." segments before touching the disk,
// so no request can read outside the root.
//
// # Behavior
//
//   - Existing file: 200 with the file bytes and an extension-based Content-Type.
//   - Directory: its index.html when present.
//   - Anything else: 404.
//
// No caching headers, compression or byte-range support is added.
package static
