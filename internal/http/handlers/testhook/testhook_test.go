package testhook

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler() *Handler {
	return New(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})))
}

func TestTestHookHandler(t *testing.T) {
	body := []byte(`{"email":"dana@example.com","plan_duration":7}`)

	req := httptest.NewRequest(http.MethodPost, "/test/webhook", bytes.NewReader(body))
	w := httptest.NewRecorder()

	newHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "test_received", resp["status"])

	payload, ok := resp["payload"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "dana@example.com", payload["email"])
}

func TestTestHookHandler_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test/webhook", bytes.NewReader([]byte("not a json")))
	w := httptest.NewRecorder()

	newHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
}
