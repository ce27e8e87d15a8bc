// Package mock provides an in-memory embedder for tests.
package mock

import (
	"context"

	"github.com/kozaktomas/face-verify/internal/faceid"
)

// Client is a mock embedder returning canned detections.
type Client struct {
	Detections  []faceid.Detection
	Err         error
	ModelName   string
	DetectCalls int
}

// NewClient creates a mock embedder with no detections configured.
func NewClient() *Client {
	return &Client{ModelName: "mock/test-model"}
}

// DetectFaces returns the configured detections or error and counts the call.
func (c *Client) DetectFaces(ctx context.Context, imageData []byte) ([]faceid.Detection, error) {
	c.DetectCalls++
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Detections, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.ModelName
}
