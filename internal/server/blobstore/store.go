// Package blobstore keeps employee profile pictures in an S3-compatible
// bucket (MinIO in development) and hands out presigned download URLs.
package blobstore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store is the opaque put/get/delete contract used by the employee service.
type Store interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	// URL returns a time-limited link to the object.
	URL(ctx context.Context, key string) (string, error)
}

// NewKey returns a fresh object key under employees/<y>/<m>/<d>/ keeping
// the lower-cased extension of the uploaded file name.
func NewKey(now time.Time, ext string) string {
	return fmt.Sprintf("employees/%d/%d/%d/%v%s", now.Year(), now.Month(), now.Day(), uuid.New(), strings.ToLower(ext))
}
