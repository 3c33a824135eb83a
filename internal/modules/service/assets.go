package service

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/samirchaudhary/portfolio-api/internal/infra/blob"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/apperror"
	"go.uber.org/zap"
)

const (
	projectAssetFolder = "portfolio/projects"
	profileAssetFolder = "portfolio/profiles"
)

// ImageUpload is an in-memory uploaded file, already size/type checked at
// the HTTP boundary.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// AssetManager keeps a record's image field and the stored asset behind it
// consistent: uploads go through the blob store, stale assets are removed
// best-effort when the field changes or the record goes away. Image values
// predating the blob store may still be local /uploads/... paths.
type AssetManager struct {
	store      blob.Store
	uploadsDir string
	log        *zap.Logger
}

func NewAssetManager(store blob.Store, uploadsDir string, log *zap.Logger) *AssetManager {
	return &AssetManager{store: store, uploadsDir: uploadsDir, log: log}
}

// Resolve decides the image value to persist. An uploaded buffer wins and
// is stored first; a differing external URL is taken as-is; otherwise the
// current value is kept. An upload failure aborts with UploadFailed before
// any record write.
func (m *AssetManager) Resolve(ctx context.Context, folder string, file *ImageUpload, externalURL, current string) (string, error) {
	if file != nil {
		up, err := m.store.Upload(ctx, folder, file.Filename, file.ContentType, file.Data)
		if err != nil {
			m.log.Sugar().Errorw("image upload failed", "folder", folder, "err", err)
			return "", apperror.Upload("")
		}
		return up.URL, nil
	}
	if externalURL != "" && externalURL != current {
		return externalURL, nil
	}
	return current, nil
}

// CleanupReplaced removes the previous asset after an image replacement.
// Failures are logged and swallowed; they never fail the parent request.
func (m *AssetManager) CleanupReplaced(ctx context.Context, old string) {
	if old == "" {
		return
	}
	if m.isLocal(old) {
		m.removeFile(m.localPath(old))
		return
	}
	if key, ok := m.store.KeyFromURL(old); ok {
		m.deleteStored(ctx, key)
	}
}

// CleanupDeleted removes the asset of a deleted record. Same best-effort
// rules as CleanupReplaced, plus one fallback: an unrecognized URL's last
// path segment is tried as a stale file under the uploads directory.
func (m *AssetManager) CleanupDeleted(ctx context.Context, old string) {
	if old == "" {
		return
	}
	if m.isLocal(old) {
		m.removeFile(m.localPath(old))
		return
	}
	if key, ok := m.store.KeyFromURL(old); ok {
		m.deleteStored(ctx, key)
		return
	}
	name := path.Base(old)
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	if name != "" && name != "." && name != "/" {
		m.removeFile(filepath.Join(m.uploadsDir, name))
	}
}

func (m *AssetManager) isLocal(v string) bool {
	return strings.HasPrefix(v, "/uploads/") || strings.HasPrefix(v, "uploads/")
}

func (m *AssetManager) localPath(v string) string {
	rel := strings.TrimPrefix(strings.TrimPrefix(v, "/"), "uploads/")
	return filepath.Join(m.uploadsDir, filepath.FromSlash(rel))
}

func (m *AssetManager) removeFile(p string) {
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		m.log.Sugar().Warnw("could not delete local image", "path", p, "err", err)
	}
}

func (m *AssetManager) deleteStored(ctx context.Context, key string) {
	if err := m.store.Delete(ctx, key); err != nil {
		m.log.Sugar().Warnw("could not delete stored image", "key", key, "err", err)
	}
}
