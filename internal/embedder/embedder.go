// Package embedder talks to the external face detection and embedding model.
// The model is an opaque collaborator: it takes raw image bytes and returns
// zero or more detections, each with a bounding box and a raw embedding.
package embedder

import (
	"context"

	"github.com/kozaktomas/face-verify/internal/faceid"
)

// Client is the capability handle for the embedding model. It is constructed
// once at process start and is safe to call from concurrent requests.
type Client interface {
	// DetectFaces runs face detection on raw image bytes and returns all
	// detected faces with their raw (not yet normalized) embeddings.
	DetectFaces(ctx context.Context, imageData []byte) ([]faceid.Detection, error)

	// Model returns the identifier of the underlying model, reported back
	// to callers alongside embeddings and verification outcomes.
	Model() string
}
