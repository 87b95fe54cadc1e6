package crm

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/welforehealth/funnel/internal/config"
	"github.com/welforehealth/funnel/internal/models"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(config.CRM{
		APIURL:     srv.URL + "/v1",
		APIKey:     "test-key",
		LocationID: "loc-1",
		Timeout:    10 * time.Second,
	}, newNoopLogger())
}

func TestLookup_Found(t *testing.T) {
	contactID := uuid.NewString()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/contacts/", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "john.doe@example.com", r.URL.Query().Get("email"))
		assert.Equal(t, "loc-1", r.URL.Query().Get("locationId"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"contacts": []models.Contact{
				{ID: contactID, Email: "john.doe@example.com", Tags: []string{"Freemium-Used"}},
				{ID: uuid.NewString(), Email: "john.doe@example.com"},
			},
		})
	})

	contact, err := client.Lookup(context.Background(), "john.doe@example.com")
	require.NoError(t, err)
	require.NotNil(t, contact)
	// используется первый элемент списка
	assert.Equal(t, contactID, contact.ID)
	assert.True(t, contact.HasTag("Freemium-Used"))
}

func TestLookup_Absent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"contacts": []models.Contact{}})
	})

	contact, err := client.Lookup(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, contact)
}

func TestLookup_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	contact, err := client.Lookup(context.Background(), "john.doe@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Nil(t, contact)
}

func TestCreate_Success(t *testing.T) {
	contactID := uuid.NewString()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/contacts/", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "new@example.com", payload["email"])
		assert.Equal(t, "loc-1", payload["locationId"])
		assert.Equal(t, "Dana", payload["name"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"contact": models.Contact{ID: contactID, Email: "new@example.com"},
		})
	})

	contact, err := client.Create(context.Background(), "new@example.com", "Dana")
	require.NoError(t, err)
	require.NotNil(t, contact)
	assert.Equal(t, contactID, contact.ID)
}

func TestCreate_OmitsEmptyName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_, hasName := payload["name"]
		assert.False(t, hasName)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"contact": models.Contact{ID: uuid.NewString(), Email: "new@example.com"},
		})
	})

	_, err := client.Create(context.Background(), "new@example.com", "")
	require.NoError(t, err)
}

func TestCreate_Failure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	contact, err := client.Create(context.Background(), "new@example.com", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Nil(t, contact)
}

func TestAddTag(t *testing.T) {
	contactID := uuid.NewString()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v1/contacts/"+contactID, r.URL.Path)

		var payload map[string][]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, []string{"Freemium-Used"}, payload["tags"])

		w.WriteHeader(http.StatusOK)
	})

	err := client.AddTag(context.Background(), contactID, "Freemium-Used")
	require.NoError(t, err)
}

func TestAddTag_Failure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := client.AddTag(context.Background(), uuid.NewString(), "Freemium-Used")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestLookup_TransportError(t *testing.T) {
	client := New(config.CRM{
		APIURL:     "http://127.0.0.1:1",
		APIKey:     "k",
		LocationID: "l",
		Timeout:    time.Second,
	}, newNoopLogger())

	_, err := client.Lookup(context.Background(), "john.doe@example.com")
	require.Error(t, err)
}
