// Package storage persists uploaded product images on the local filesystem,
// served back under the /uploads URL prefix.
package storage

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

const urlPrefix = "/uploads/"

// allowedMimeTypes is the image upload allow-list.
var allowedMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ErrUnsupportedType rejects uploads outside the image allow-list.
var ErrUnsupportedType = fmt.Errorf("invalid file type: only jpeg, png, gif and webp images are allowed")

// ErrFileTooLarge rejects uploads over the configured size cap.
var ErrFileTooLarge = fmt.Errorf("file too large")

// LocalImageStore writes uploads into a flat directory with generated names,
// so original filenames never reach the filesystem.
type LocalImageStore struct {
	dir      string
	maxBytes int64
}

func NewLocalImageStore(dir string, maxBytes int64) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalImageStore{dir: dir, maxBytes: maxBytes}, nil
}

// Dir returns the directory uploads are written to.
func (s *LocalImageStore) Dir() string {
	return s.dir
}

// Save validates and stores one upload, returning its descriptor. The caller
// must Remove the artifact if the surrounding request fails afterwards.
func (s *LocalImageStore) Save(ctx context.Context, file *multipart.FileHeader) (*domain.Image, error) {
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	mimeType := file.Header.Get("Content-Type")
	ext, ok := allowedMimeTypes[mimeType]
	if !ok {
		return nil, ErrUnsupportedType
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := generateFilename(ext)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("close upload file: %w", err)
	}

	return &domain.Image{
		URL:          urlPrefix + name,
		OriginalName: file.Filename,
		MimeType:     mimeType,
		Size:         file.Size,
	}, nil
}

// Remove deletes the artifact behind a previously returned URL. Removing an
// absent file is not an error.
func (s *LocalImageStore) Remove(ctx context.Context, url string) error {
	name := strings.TrimPrefix(url, urlPrefix)
	// Reject anything that could escape the upload directory.
	if name == "" || name != filepath.Base(name) {
		return fmt.Errorf("invalid image url: %s", url)
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

func generateFilename(ext string) string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	}
	return fmt.Sprintf("%d-%x%s", time.Now().Unix(), b, ext)
}
