// Package upload stores listing images. S3 is used when a bucket is
// configured; otherwise files land on the local disk under the public
// uploads directory.
package upload

import (
	"context"
	"io"
)

// MaxFileSize is the upload limit, checked before any write attempt.
const MaxFileSize = 5 * 1024 * 1024 // 5MB

var extByType = map[string]string{
	"image/jpeg":    "jpg",
	"image/jpg":     "jpg",
	"image/png":     "png",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
}

// ExtensionFor maps an accepted image mime type to a file extension.
// The second result is false for rejected types.
func ExtensionFor(contentType string) (string, bool) {
	ext, ok := extByType[contentType]
	return ext, ok
}

// Storage persists uploaded files and returns their public URL.
type Storage interface {
	Save(ctx context.Context, fileName, contentType string, body io.Reader) (url string, err error)
	Delete(ctx context.Context, fileName string) error
}
