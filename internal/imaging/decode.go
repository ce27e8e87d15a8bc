// Package imaging decodes transport-encoded image payloads into raw bytes
// suitable for the embedding model.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrInvalidImage is returned when an image payload is missing, malformed,
// or does not decode to pixel data.
var ErrInvalidImage = errors.New("invalid image payload")

// DecodePayload decodes a base64 image payload into raw image bytes.
// A data-URI style prefix ("data:image/png;base64,...") is stripped before
// decoding when present.
func DecodePayload(payload string) ([]byte, error) {
	s := strings.TrimSpace(payload)
	if s == "" {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidImage)
	}

	if strings.HasPrefix(s, "data:") {
		_, rest, found := strings.Cut(s, ",")
		if !found {
			return nil, fmt.Errorf("%w: data URI without payload", ErrInvalidImage)
		}
		s = rest
	}
	if s == "" {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidImage)
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidImage)
	}
	return data, nil
}

// DecodeImage verifies that raw bytes decode to pixel data.
// JPEG, PNG, GIF, WebP and BMP are recognized.
func DecodeImage(data []byte) error {
	if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: invalid image bytes: %v", ErrInvalidImage, err)
	}
	return nil
}

// DecodeImagePayload combines DecodePayload and DecodeImage: it returns the
// raw image bytes only when they hold a decodable image.
func DecodeImagePayload(payload string) ([]byte, error) {
	data, err := DecodePayload(payload)
	if err != nil {
		return nil, err
	}
	if err := DecodeImage(data); err != nil {
		return nil, err
	}
	return data, nil
}
