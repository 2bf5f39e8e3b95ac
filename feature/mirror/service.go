package mirror

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"static-server/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Report summarizes a pull.
type Report struct {
	Downloaded []string
	Skipped    []string
	Bytes      int64
}

// Service mirrors a bucket prefix into a local directory.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	root   string
	logger *zap.Logger
}

// NewService creates a new mirror service writing below root.
// A non-empty prefix is treated as a folder: "site" mirrors "site/...", not "sitemap.xml".
func NewService(client storage.Client, bucket, prefix, root string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		prefix: normalizePrefix(prefix),
		root:   root,
		logger: logger,
	}
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimLeft(prefix, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}

// Pull downloads every object under the prefix. It stops at the first
// listing or download error.
func (s *Service) Pull(ctx context.Context) (*Report, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	// Downloads land next to the root, never inside the served tree.
	staging, err := os.MkdirTemp(filepath.Dir(s.root), "."+filepath.Base(s.root)+"-sync-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	// Cancelling stops the lister goroutine if we return early.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	report := &Report{}
	opts := minio.ListObjectsOptions{
		Prefix:    s.prefix,
		Recursive: true,
	}

	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		if !strings.HasPrefix(obj.Key, s.prefix) {
			continue
		}

		rel := strings.TrimPrefix(obj.Key, s.prefix)
		if rel == "" || strings.HasSuffix(rel, "/") {
			continue
		}

		target, ok := s.targetPath(rel)
		if !ok {
			s.logger.Warn("Skipping object outside static root", zap.String("key", obj.Key))
			report.Skipped = append(report.Skipped, obj.Key)
			continue
		}

		n, err := s.download(ctx, obj.Key, staging, target)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("Mirrored object", zap.String("key", obj.Key), zap.String("path", target), zap.Int64("bytes", n))

		report.Downloaded = append(report.Downloaded, rel)
		report.Bytes += n
	}

	return report, nil
}

// targetPath maps an object key to a path below the root.
func (s *Service) targetPath(rel string) (string, bool) {
	rel = strings.TrimPrefix(rel, "/")
	local := filepath.FromSlash(rel)
	if !filepath.IsLocal(local) {
		return "", false
	}
	return filepath.Join(s.root, local), true
}

func (s *Service) download(ctx context.Context, key, staging, target string) (int64, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer obj.Close()

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(staging, "object-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, obj)
	if err != nil {
		tmp.Close()
		return 0, fmt.Errorf("failed to download object %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return 0, fmt.Errorf("failed to set permissions on %s: %w", target, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return 0, fmt.Errorf("failed to move %s into place: %w", target, err)
	}

	return n, nil
}
