package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kozaktomas/face-verify/internal/verification"
)

// FaceHandler serves the embed and verify endpoints.
type FaceHandler struct {
	service *verification.Service
}

// NewFaceHandler creates a handler around a verification service.
func NewFaceHandler(svc *verification.Service) *FaceHandler {
	return &FaceHandler{service: svc}
}

// EmbedRequest represents an embed request.
type EmbedRequest struct {
	ImageBase64 string `json:"image_base64"`
}

// EmbedResponse represents an embed response.
type EmbedResponse struct {
	Model        string `json:"model"`
	EmbeddingB64 string `json:"embedding_b64"`
}

// VerifyRequest represents a verify request. Threshold is optional;
// when absent the configured default applies.
type VerifyRequest struct {
	ImageBase64  string   `json:"image_base64"`
	TemplatesB64 []string `json:"templates_b64"`
	Threshold    *float64 `json:"threshold,omitempty"`
}

// VerifyResponse represents a verify response.
type VerifyResponse struct {
	Match        bool    `json:"match"`
	BestDistance float64 `json:"best_distance"`
	Threshold    float64 `json:"threshold"`
	Model        string  `json:"model"`
}

// respondServiceError maps pipeline errors onto HTTP status codes.
// Taxonomy errors are the caller's fault; everything else means the
// embedding backend or the service itself misbehaved.
func respondServiceError(w http.ResponseWriter, err error) {
	if verification.IsClientError(err) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondError(w, http.StatusBadGateway, "embedding backend unavailable")
}

// Embed computes the probe template for a single image.
func (h *FaceHandler) Embed(w http.ResponseWriter, r *http.Request) {
	var req EmbedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	result, err := h.service.Embed(r.Context(), req.ImageBase64)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, EmbedResponse{
		Model:        result.Model,
		EmbeddingB64: result.Template,
	})
}

// Verify compares the probe face against the supplied templates.
func (h *FaceHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	result, err := h.service.Verify(r.Context(), req.ImageBase64, req.TemplatesB64, req.Threshold)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, VerifyResponse{
		Match:        result.Match,
		BestDistance: result.BestDistance,
		Threshold:    result.Threshold,
		Model:        result.Model,
	})
}
