package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandgrav/catalog-api/internal/constants"
)

// okHandler is a terminal handler that records the request it receives.
func okHandler(captured **http.Request) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			*captured = r
		}
		w.WriteHeader(http.StatusOK)
	})
}

// TestRequestIDGenerated tests that a missing header yields a fresh identifier
func TestRequestIDGenerated(t *testing.T) {
	var captured *http.Request
	handler := RequestID()(okHandler(&captured))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rec.Header().Get(constants.HeaderRequestID)
	require.NotEmpty(t, id)
	assert.Equal(t, id, GetRequestID(captured))
}

// TestRequestIDHonored tests that an incoming identifier survives the hop
func TestRequestIDHonored(t *testing.T) {
	var captured *http.Request
	handler := RequestID()(okHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderRequestID, "upstream-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "upstream-id", rec.Header().Get(constants.HeaderRequestID))
	assert.Equal(t, "upstream-id", GetRequestID(captured))
}

// TestGetRequestIDWithoutMiddleware tests the accessor fallback
func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetRequestID(req))
}

// TestRecovery tests that a panicking handler yields a 500 detail response
func TestRecovery(t *testing.T) {
	handler := Recovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"Internal Server Error"}`, rec.Body.String())
}

// TestRecoveryPassthrough tests that healthy handlers are untouched
func TestRecoveryPassthrough(t *testing.T) {
	handler := Recovery()(okHandler(nil))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestCORS tests origin matching and preflight handling
func TestCORS(t *testing.T) {
	handler := CORS([]string{"https://app.example.com"}, true)(okHandler(nil))

	t.Run("AllowedOrigin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constants.HeaderOrigin, "https://app.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set(constants.HeaderOrigin, "https://app.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("DisallowedOrigin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constants.HeaderOrigin, "https://evil.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Wildcard", func(t *testing.T) {
		wildcard := CORS([]string{"*"}, false)(okHandler(nil))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constants.HeaderOrigin, "https://anywhere.example.com")
		rec := httptest.NewRecorder()
		wildcard.ServeHTTP(rec, req)

		assert.Equal(t, "https://anywhere.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})
}

// TestRequestLoggerStatus tests that the recorder sees the downstream status
func TestRequestLoggerStatus(t *testing.T) {
	handler := RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
