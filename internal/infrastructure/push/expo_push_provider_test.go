package push

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpoPushProvider_SendPush(t *testing.T) {
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"status": "ok"}}`))
	}))
	defer server.Close()

	provider := NewExpoPushProviderWithBaseURL(server.URL)
	err := provider.SendPush(context.Background(), "ExponentPushToken[abc]", "milk was found at ACME near you")

	require.NoError(t, err)
	assert.Equal(t, "ExponentPushToken[abc]", gotBody["to"])
	assert.Equal(t, "milk was found at ACME near you", gotBody["body"])
}

func TestExpoPushProvider_TicketError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"status": "error", "message": "device not registered"}}`))
	}))
	defer server.Close()

	provider := NewExpoPushProviderWithBaseURL(server.URL)
	err := provider.SendPush(context.Background(), "bad-token", "hello")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "device not registered")
}

func TestExpoPushProvider_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	provider := NewExpoPushProviderWithBaseURL(server.URL)
	err := provider.SendPush(context.Background(), "token", "hello")

	assert.Error(t, err)
}
