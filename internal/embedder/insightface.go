package embedder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/kozaktomas/face-verify/internal/faceid"
)

const (
	defaultServerURL = "http://localhost:8000"
	defaultModel     = "insightface/buffalo_l"
)

// InsightFace is a Client backed by an InsightFace embedding server.
type InsightFace struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewInsightFace creates a client for the embedding server.
// Empty arguments fall back to the local development defaults.
func NewInsightFace(baseURL, model string) *InsightFace {
	if baseURL == "" {
		baseURL = defaultServerURL
	}
	if model == "" {
		model = defaultModel
	}
	return &InsightFace{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		client:  &http.Client{},
	}
}

// faceResponse represents the response from the face embedding endpoint.
type faceResponse struct {
	FacesCount int                `json:"faces_count"`
	Faces      []faceid.Detection `json:"faces"`
	Model      string             `json:"model"`
}

// DetectFaces posts the image to the embedding server and returns all
// detected faces. An image without faces yields an empty slice, not an error.
func (c *InsightFace) DetectFaces(ctx context.Context, imageData []byte) ([]faceid.Detection, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "image.jpg")
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(imageData); err != nil {
		return nil, fmt.Errorf("failed to write image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/embed/face", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding server request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedding server error (status %d): %s", resp.StatusCode, string(body))
	}

	var faceResp faceResponse
	if err := json.Unmarshal(body, &faceResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return faceResp.Faces, nil
}

// Model returns the configured model identifier.
func (c *InsightFace) Model() string {
	return c.model
}
