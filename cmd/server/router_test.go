package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storygen/storygen-api/internal/config"
	"github.com/storygen/storygen-api/internal/platform/gemini"
)

func newTestApplication(t *testing.T, cfg *config.Config) *application {
	t.Helper()

	gen, err := gemini.NewGenerator(slog.Default(), cfg.LLM)
	require.NoError(t, err)

	return &application{
		config:    cfg,
		logger:    slog.Default(),
		generator: gen,
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
	}
}

func TestRouterHealthCheck(t *testing.T) {
	router := newTestApplication(t, testConfig()).setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouterPreflight(t *testing.T) {
	router := newTestApplication(t, testConfig()).setupRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/story", nil)
	req.Header.Set("Origin", "https://example.net")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRouterBareOptions(t *testing.T) {
	router := newTestApplication(t, testConfig()).setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/story", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterStoryWithoutCredential(t *testing.T) {
	// No API key configured: the endpoint must answer 500 with a
	// configuration message, not fail at startup.
	router := newTestApplication(t, testConfig()).setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/story",
		strings.NewReader(`{"names": ["Ann"]}`))
	req.Header.Set("Origin", "https://example.net")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Story generation is not configured", body["error"])
	assert.NotEmpty(t, body["trace_id"])
}

func TestRouterStoryValidation(t *testing.T) {
	router := newTestApplication(t, testConfig()).setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/story", strings.NewReader(`{"names": []}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "names must contain at least one name", body["error"])
}

func TestRouterSharedSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.SharedSecret = "s3cret"
	router := newTestApplication(t, cfg).setupRouter()

	t.Run("rejected without secret", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/story",
			strings.NewReader(`{"names": ["Ann"]}`))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("accepted with secret", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/story",
			strings.NewReader(`{"names": ["Ann"]}`))
		req.Header.Set("Authorization", "Bearer s3cret")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		// Passes auth; fails later on the missing credential.
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
