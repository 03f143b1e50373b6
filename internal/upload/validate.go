// Package upload validates client-provided images before any network call.
package upload

import (
	"errors"
	"fmt"
	"strings"
)

// MaxImageBytes is the upload size ceiling. A payload of exactly this size is
// accepted; one byte over is rejected.
const MaxImageBytes = 5 * 1024 * 1024

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrTooLarge          = errors.New("image exceeds size limit")
)

var allowedMimeTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/heic": {},
	"image/webp": {},
}

// Validate checks the declared MIME type against the allow-list and the byte
// size against the ceiling. There is no partial acceptance: the first failed
// check rejects the upload.
func Validate(mimeType string, sizeBytes int64) error {
	mime := strings.ToLower(strings.TrimSpace(mimeType))
	if _, ok := allowedMimeTypes[mime]; !ok {
		return fmt.Errorf("%w: %s (supported: JPG, PNG, HEIC, WEBP)", ErrUnsupportedFormat, mimeType)
	}
	if sizeBytes > MaxImageBytes {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, sizeBytes, MaxImageBytes)
	}
	return nil
}

// SupportedMimeTypes returns the allow-list for catalogs and clients.
func SupportedMimeTypes() []string {
	return []string{"image/jpeg", "image/png", "image/heic", "image/webp"}
}
