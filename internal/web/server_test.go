package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kozaktomas/face-verify/internal/config"
	"github.com/kozaktomas/face-verify/internal/embedder/mock"
	"github.com/kozaktomas/face-verify/internal/verification"
)

func newTestServer() *Server {
	cfg := &config.Config{}
	svc := verification.New(mock.NewClient(), 0.45)
	return NewServer(cfg, svc, 8080, "127.0.0.1")
}

func TestRoutes_Health(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	recorder := httptest.NewRecorder()
	server.Router().ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", recorder.Code)
	}
}

func TestRoutes_VerbMismatch(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest("GET", "/api/v1/verify", nil)
	recorder := httptest.NewRecorder()
	server.Router().ServeHTTP(recorder, req)

	if recorder.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", recorder.Code)
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest("GET", "/api/v1/unknown", nil)
	recorder := httptest.NewRecorder()
	server.Router().ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", recorder.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest("OPTIONS", "/api/v1/verify", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	recorder := httptest.NewRecorder()
	server.Router().ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected 200 for preflight, got %d", recorder.Code)
	}
	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("expected localhost origin to be allowed, got %q", got)
	}
}

func TestIsOriginAllowed(t *testing.T) {
	allowed := map[string]struct{}{"https://app.example.com": {}}

	tests := []struct {
		name     string
		origin   string
		expected bool
	}{
		{name: "empty origin", origin: "", expected: false},
		{name: "localhost any port", origin: "http://localhost:3000", expected: true},
		{name: "https localhost", origin: "https://localhost:8443", expected: true},
		{name: "whitelisted", origin: "https://app.example.com", expected: true},
		{name: "unknown origin", origin: "https://evil.example.com", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isOriginAllowed(tt.origin, allowed); got != tt.expected {
				t.Errorf("isOriginAllowed(%q) = %v, want %v", tt.origin, got, tt.expected)
			}
		})
	}
}
