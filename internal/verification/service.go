// Package verification orchestrates the face verification pipeline:
// image payload decoding, face detection, primary face selection,
// normalization, and template matching.
package verification

import (
	"context"
	"errors"
	"fmt"

	"github.com/kozaktomas/face-verify/internal/embedder"
	"github.com/kozaktomas/face-verify/internal/faceid"
	"github.com/kozaktomas/face-verify/internal/imaging"
)

var (
	// ErrEmptyEmbedding is returned when the selected face carries no
	// usable embedding vector.
	ErrEmptyEmbedding = errors.New("embedding empty")

	// ErrNoTemplates is returned when verify is called without templates.
	ErrNoTemplates = errors.New("no templates")
)

// Service runs the verification pipeline. It holds no per-request state;
// every call is an independent request/response transform.
type Service struct {
	embedder         embedder.Client
	defaultThreshold float64
}

// New creates a verification service around an embedder handle.
// The handle is built once at process start and shared across requests.
func New(client embedder.Client, defaultThreshold float64) *Service {
	return &Service{
		embedder:         client,
		defaultThreshold: defaultThreshold,
	}
}

// EmbedResult is the outcome of computing a single probe template.
type EmbedResult struct {
	Model    string
	Template string
}

// VerifyResult is the outcome of a verification request.
type VerifyResult struct {
	Match        bool
	BestDistance float64
	Threshold    float64
	Model        string
}

// probeEmbedding extracts the normalized embedding of the primary face
// from a transport-encoded image payload.
func (s *Service) probeEmbedding(ctx context.Context, imagePayload string) ([]float32, error) {
	imageData, err := imaging.DecodeImagePayload(imagePayload)
	if err != nil {
		return nil, err
	}

	detections, err := s.embedder.DetectFaces(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("detecting faces: %w", err)
	}

	primary, err := faceid.SelectPrimary(detections)
	if err != nil {
		return nil, err
	}
	if len(primary.Embedding) == 0 {
		return nil, ErrEmptyEmbedding
	}

	return faceid.Normalize(primary.Embedding), nil
}

// Embed computes the encoded probe template for a single image.
func (s *Service) Embed(ctx context.Context, imagePayload string) (*EmbedResult, error) {
	probe, err := s.probeEmbedding(ctx, imagePayload)
	if err != nil {
		return nil, err
	}

	return &EmbedResult{
		Model:    s.embedder.Model(),
		Template: faceid.EncodeEmbedding(probe),
	}, nil
}

// Verify compares the probe face in an image against a set of encoded
// templates. A nil threshold selects the configured default. The template
// check runs before any detection work so an empty set fails fast.
func (s *Service) Verify(ctx context.Context, imagePayload string, templates []string, threshold *float64) (*VerifyResult, error) {
	if len(templates) == 0 {
		return nil, ErrNoTemplates
	}

	thr := s.defaultThreshold
	if threshold != nil {
		thr = *threshold
	}

	probe, err := s.probeEmbedding(ctx, imagePayload)
	if err != nil {
		return nil, err
	}

	decoded := make([][]float32, len(templates))
	for i, tmpl := range templates {
		emb, err := faceid.DecodeEmbedding(tmpl)
		if err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		decoded[i] = emb
	}

	_, best := faceid.BestMatch(probe, decoded)

	return &VerifyResult{
		Match:        faceid.Decide(best, thr),
		BestDistance: best,
		Threshold:    thr,
		Model:        s.embedder.Model(),
	}, nil
}

// IsClientError reports whether an error belongs to the closed taxonomy of
// request failures that are the caller's fault rather than the service's.
func IsClientError(err error) bool {
	return errors.Is(err, imaging.ErrInvalidImage) ||
		errors.Is(err, faceid.ErrNoFace) ||
		errors.Is(err, faceid.ErrMalformedTemplate) ||
		errors.Is(err, ErrEmptyEmbedding) ||
		errors.Is(err, ErrNoTemplates)
}
