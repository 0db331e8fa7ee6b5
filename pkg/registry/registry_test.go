package registry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	t.Setenv("ACRPIPE_REGISTRY_URL", ts.URL)
	t.Setenv("ACRPIPE_REGISTRY_USERNAME", "netruk44")
	t.Setenv("ACRPIPE_REGISTRY_PASSWORD", "hunter2")

	client, err := NewClient("netruk44")
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresCredentials(t *testing.T) {
	t.Setenv("ACRPIPE_REGISTRY_USERNAME", "")
	t.Setenv("ACRPIPE_REGISTRY_PASSWORD", "")

	_, err := NewClient("netruk44")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ACRPIPE_REGISTRY_USERNAME")
}

func TestNewClientRequiresName(t *testing.T) {
	t.Setenv("ACRPIPE_REGISTRY_USERNAME", "u")
	t.Setenv("ACRPIPE_REGISTRY_PASSWORD", "p")

	_, err := NewClient("  ")
	require.Error(t, err)
}

func TestTagsList(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acr/v1/steamvibes-api/_tags", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "netruk44", user)
		assert.Equal(t, "hunter2", pass)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"registry": "netruk44.azurecr.io",
			"imageName": "steamvibes-api",
			"tags": [
				{"name": "v0.3_x64", "digest": "sha256:abc", "createdTime": "2023-08-01T12:00:00Z"},
				{"name": "v0.2_x64", "digest": "sha256:def", "createdTime": "2023-06-15T09:30:00Z"}
			]
		}`))
	}))

	tags, err := client.Tags.List(context.Background(), "steamvibes-api")
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "v0.3_x64", tags[0].Name)
	assert.Equal(t, "sha256:abc", tags[0].Digest)
	assert.Equal(t, 2023, tags[0].Created.Year())
}

func TestTagsListUnknownRepository(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"code":"NAME_UNKNOWN"}]}`, http.StatusNotFound)
	}))

	_, err := client.Tags.List(context.Background(), "nope")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestRepositoriesList(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acr/v1/_catalog", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"repositories": ["steamvibes-api", "steamvibes-api-base"]}`))
	}))

	repos, err := client.Repositories.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"steamvibes-api", "steamvibes-api-base"}, repos)
}

func TestPathEncodePreservesNamespaces(t *testing.T) {
	assert.Equal(t, "team/steamvibes-api", pathEncode("team/steamvibes-api"))
	assert.Equal(t, "a%20b", pathEncode("a b"))
}
