package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthFailureMiddleware_CountsUnauthorized(t *testing.T) {
	detector := NewSuspiciousActivityDetector()

	status := http.StatusUnauthorized
	handler := AuthFailureMiddleware(nil, detector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))

	req := httptest.NewRequest("GET", "/users/me", nil)
	req.RemoteAddr = "10.0.0.7:5555"

	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
	status = http.StatusOK
	handler.ServeHTTP(httptest.NewRecorder(), req)

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["10.0.0.7"])
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"direct", "203.0.113.5:4000", "", nil, "203.0.113.5"},
		{"untrusted forwarder ignored", "203.0.113.5:4000", "198.51.100.1", nil, "203.0.113.5"},
		{"trusted proxy", "10.0.0.1:4000", "198.51.100.1, 192.0.2.9", []string{"10.0.0.1"}, "192.0.2.9"},
		{"no port", "203.0.113.5", "", nil, "203.0.113.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	var readErr error
	handler := RequestSizeLimitMiddleware(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 16)
		_, readErr = r.Body.Read(buf)
		for readErr == nil {
			_, readErr = r.Body.Read(buf)
		}
	}))

	req := httptest.NewRequest("POST", "/predictions", strings.NewReader("0123456789"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}
