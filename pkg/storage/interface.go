package storage

import (
	"context"
	"time"
)

// UploadResult describes a stored letter image.
type UploadResult struct {
	Key string
	URL string
}

// ObjectStore is the interface for binary image storage.
// Implement this interface to swap the backing store (S3, MinIO, fakes in tests).
type ObjectStore interface {
	// UploadLetterImage stores one image under the letter's key prefix and
	// returns the object key plus a time-limited access URL.
	UploadLetterImage(ctx context.Context, content []byte, letterID, filename, contentType string) (*UploadResult, error)

	// PresignURL returns a time-limited GET URL for an already stored object.
	PresignURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// DeleteLetterImages removes every object stored under the letter's
	// prefix and returns the number of deleted objects.
	DeleteLetterImages(ctx context.Context, letterID string) (int, error)
}
