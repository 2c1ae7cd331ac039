package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	h := NewHealthHandler(nil)

	code, body := getJSON(t, h.Health, "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "TTS API Backend", body["service"])
	assert.NotZero(t, body["timestamp"])
}

func TestHealthz(t *testing.T) {
	h := NewHealthHandler(nil)

	code, body := getJSON(t, h.Healthz, "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestReadyz_NoRedisConfigured(t *testing.T) {
	h := NewHealthHandler(nil)

	code, body := getJSON(t, h.Readyz, "/readyz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}
