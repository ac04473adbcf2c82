package ports

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

// ImageStore persists uploaded product images.
type ImageStore interface {
	// Save writes the upload and returns its descriptor. Callers must Remove
	// the artifact if the surrounding request fails afterwards.
	Save(ctx context.Context, file *multipart.FileHeader) (*domain.Image, error)
	// Remove deletes the artifact behind a previously returned URL.
	// Idempotent; removing an absent artifact is not an error.
	Remove(ctx context.Context, url string) error
}

// StatsCache is a small cache-aside facade used by the dashboard.
type StatsCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
