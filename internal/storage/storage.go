// Package storage persists uploaded images under generated names.
package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// ErrUnsupportedImage is returned for payloads that are not PNG or JPEG.
var ErrUnsupportedImage = errors.New("only PNG and JPG files are allowed")

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
}

// Storage saves and removes named blobs.
type Storage interface {
	Save(ctx context.Context, name string, data []byte) error
	Delete(ctx context.Context, name string) error
}

// DecodeImage decodes a base64 payload and checks it is a supported image.
// It returns the raw bytes and the file extension matching the detected type.
func DecodeImage(encoded string) ([]byte, string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", ErrUnsupportedImage)
	}
	ext, ok := imageExtensions[mimetype.Detect(data).String()]
	if !ok {
		return nil, "", ErrUnsupportedImage
	}
	return data, ext, nil
}

// NewFileName returns a random file name with the given extension.
// Client supplied names are never used.
func NewFileName(ext string) string {
	return uuid.New().String() + ext
}
