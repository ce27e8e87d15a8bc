package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"net/http/httptest"
	"testing"

	"github.com/kozaktomas/face-verify/internal/embedder/mock"
	"github.com/kozaktomas/face-verify/internal/faceid"
	"github.com/kozaktomas/face-verify/internal/verification"
)

// newTestHandler creates a FaceHandler backed by a mock embedder.
func newTestHandler(detections []faceid.Detection) (*FaceHandler, *mock.Client) {
	emb := mock.NewClient()
	emb.Detections = detections
	svc := verification.New(emb, 0.45)
	return NewFaceHandler(svc), emb
}

// testImagePayload returns a valid base64-encoded PNG payload.
func testImagePayload(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

// testDetection builds a single-face detection with a deterministic embedding.
func testDetection(t *testing.T) faceid.Detection {
	t.Helper()
	emb := make([]float32, faceid.Dim)
	for i := range emb {
		emb[i] = float32(i%11) - 5
	}
	return faceid.Detection{Index: 0, BBox: []float64{0, 0, 100, 100}, Embedding: emb}
}

// parseJSONResponse parses a JSON response body into the target type.
func parseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nBody: %s", err, recorder.Body.String())
	}
}

// assertStatusCode checks if the response has the expected status code.
func assertStatusCode(t *testing.T, recorder *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if recorder.Code != expected {
		t.Errorf("expected status %d, got %d\nBody: %s", expected, recorder.Code, recorder.Body.String())
	}
}

// assertContentType checks if the response has the expected content type.
func assertContentType(t *testing.T, recorder *httptest.ResponseRecorder, expected string) {
	t.Helper()
	ct := recorder.Header().Get("Content-Type")
	if ct != expected {
		t.Errorf("expected Content-Type '%s', got '%s'", expected, ct)
	}
}

// assertJSONError checks if the response is a JSON error with the expected message.
func assertJSONError(t *testing.T, recorder *httptest.ResponseRecorder, expectedMessage string) {
	t.Helper()
	var result map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, recorder.Body.String())
	}
	if result["error"] != expectedMessage {
		t.Errorf("expected error '%s', got '%s'", expectedMessage, result["error"])
	}
}
