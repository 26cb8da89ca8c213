package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaggingClient_TagItem(t *testing.T) {
	var gotPath, gotItem string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotItem = r.URL.Query().Get("item")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`"bakery"`))
	}))
	defer server.Close()

	client := NewTaggingClient(server.URL)
	tag, err := client.TagItem(context.Background(), "sourdough bread")

	require.NoError(t, err)
	assert.Equal(t, "bakery", tag)
	assert.Equal(t, "/api/tag_item", gotPath)
	assert.Equal(t, "sourdough bread", gotItem)
}

func TestTaggingClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewTaggingClient(server.URL)
	_, err := client.TagItem(context.Background(), "milk")

	assert.Error(t, err)
}

func TestTaggingClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not-json`))
	}))
	defer server.Close()

	client := NewTaggingClient(server.URL)
	_, err := client.TagItem(context.Background(), "milk")

	assert.Error(t, err)
}
