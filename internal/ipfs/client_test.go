package ipfs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tamga/internal/platform/config"
)

func newTestClient(baseURL string) *Client {
	c := New(config.PinataConfig{APIKey: "key", SecretKey: "secret"}, nil)
	c.baseURL = baseURL
	return c
}

func TestUpload_ReturnsGatewayURI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pinning/pinJSONToIPFS", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("pinata_api_key"))
		assert.Equal(t, "secret", r.Header.Get("pinata_secret_api_key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "pinataContent")

		json.NewEncoder(w).Encode(map[string]string{"IpfsHash": "QmRealHash123"})
	}))
	defer srv.Close()

	uri := newTestClient(srv.URL).Upload(context.Background(), map[string]string{"name": "doc"}, "doc")
	assert.Equal(t, "https://gateway.pinata.cloud/ipfs/QmRealHash123", uri)
}

func TestUpload_MissingCredentialsYieldPlaceholder(t *testing.T) {
	c := New(config.PinataConfig{}, nil)

	uri := c.Upload(context.Background(), map[string]string{"name": "doc"}, "doc")
	assert.True(t, strings.HasPrefix(uri, "https://gateway.pinata.cloud/ipfs/QmMockHash"))
}

func TestUpload_ServerErrorYieldsPlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	uri := newTestClient(srv.URL).Upload(context.Background(), map[string]string{"name": "doc"}, "doc")
	assert.True(t, strings.HasPrefix(uri, "https://gateway.pinata.cloud/ipfs/QmMockHash"))
}

func TestUpload_UnreachableServerYieldsPlaceholder(t *testing.T) {
	uri := newTestClient("http://127.0.0.1:1").Upload(context.Background(), nil, "doc")
	assert.True(t, strings.HasPrefix(uri, "https://gateway.pinata.cloud/ipfs/QmMockHash"))
}

func TestPlaceholderURIsAreUnique(t *testing.T) {
	assert.NotEqual(t, placeholderURI(), placeholderURI())
}
