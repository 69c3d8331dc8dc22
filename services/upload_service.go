package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/metrics"
)

// ObjectStore stores an image and returns the public URL it is served from.
type ObjectStore interface {
	Upload(ctx context.Context, r io.Reader, name, folder string) (string, error)
}

// UploadFolders are the media folders the admin may upload into.
var UploadFolders = map[string]bool{
	"products":     true,
	"gallery":      true,
	"tech":         true,
	"finishes":     true,
	"applications": true,
	"blog":         true,
	"site":         true,
}

// maxParallelUploads caps concurrent requests to the object store.
const maxParallelUploads = 4

// UploadSource is one file to upload. Open is called once, from the worker
// that uploads it.
type UploadSource struct {
	Name string
	Open func() (io.ReadCloser, error)
}

type UploadService struct {
	store ObjectStore
}

// NewUploadService wraps store. A nil store makes every upload fail with
// ErrStorageUnavailable.
func NewUploadService(store ObjectStore) *UploadService {
	return &UploadService{store: store}
}

// UploadFiles uploads every file in parallel and returns the URLs in input
// order. The first failure cancels the rest.
func (s *UploadService) UploadFiles(ctx context.Context, folder string, files []UploadSource) ([]string, error) {
	if s.store == nil {
		return nil, ErrStorageUnavailable
	}
	if !UploadFolders[folder] {
		return nil, invalidf("unknown upload folder %q", folder)
	}
	if len(files) == 0 {
		return nil, invalidf("no files provided")
	}

	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelUploads)

	for i, f := range files {
		g.Go(func() error {
			rc, err := f.Open()
			if err != nil {
				return fmt.Errorf("open %s: %w", f.Name, err)
			}
			defer rc.Close()

			url, err := s.store.Upload(gctx, rc, publicName(f.Name), folder)
			if err != nil {
				metrics.Uploads.WithLabelValues(folder, "error").Inc()
				return fmt.Errorf("upload %s: %w", f.Name, err)
			}
			metrics.Uploads.WithLabelValues(folder, "ok").Inc()
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		config.Log.Error("[upload] batch failed", zap.String("folder", folder), zap.Error(err))
		return nil, err
	}

	config.Log.Info("[upload] uploaded", zap.String("folder", folder), zap.Int("files", len(urls)))
	return urls, nil
}

// publicName turns "Hex Bolt M8.PNG" into "hex-bolt-m8".
func publicName(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.ToLower(strings.TrimSpace(base))
	return strings.Join(strings.Fields(base), "-")
}
