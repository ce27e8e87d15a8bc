package faceid

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrMalformedTemplate is returned when a template string does not decode
// to a whole number of float32 components.
var ErrMalformedTemplate = errors.New("malformed embedding template")

// EncodeEmbedding serializes an embedding as base64 over little-endian
// float32 bytes. The same embedding always encodes to the same string.
func EncodeEmbedding(emb []float32) string {
	buf := make([]byte, 4*len(emb))
	for i, x := range emb {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(x))
	}
	return base64.StdEncoding.EncodeToString(buf)
}

// DecodeEmbedding reverses EncodeEmbedding and re-normalizes the result.
// Stored templates are not trusted to still be unit-length.
func DecodeEmbedding(s string) ([]float32, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", ErrMalformedTemplate, err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of 4", ErrMalformedTemplate, len(raw))
	}

	emb := make([]float32, len(raw)/4)
	for i := range emb {
		emb[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return Normalize(emb), nil
}
