package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henrique-coder/syncgroove/internal/humanizer"
)

func TestParsePayload(t *testing.T) {
	payload, err := parsePayload([]byte(`{"id":"dQw4w9WgXcQ","formats":[{"format_id":"137"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", payload["id"])

	_, err = parsePayload([]byte(`not json`))
	require.Error(t, err)
	assert.Equal(t, humanizer.CategoryMalformed, humanizer.ErrorCategory(err))

	_, err = parsePayload([]byte(`null`))
	require.Error(t, err)
	assert.Equal(t, humanizer.CategoryMalformed, humanizer.ErrorCategory(err))
}

func TestResolveRejectsInvalidInput(t *testing.T) {
	client := New(Options{Timeout: time.Second})
	_, err := client.Resolve(context.Background(), "https://example.com/nope")
	require.Error(t, err)
	assert.Equal(t, humanizer.CategoryInvalidURL, humanizer.ErrorCategory(err))
}

func TestChannelURLsSelectorValidation(t *testing.T) {
	client := New(Options{Timeout: time.Second})

	_, err := client.ChannelURLs(context.Background(), ChannelSelector{})
	require.Error(t, err)

	_, err = client.ChannelURLs(context.Background(), ChannelSelector{
		ID:       "UCuAXFkgsw1L7xaCfnd5JJOw",
		Username: "RickAstley",
	})
	require.Error(t, err)
}

func TestUploadsPlaylistID(t *testing.T) {
	uploads, err := uploadsPlaylistID("UCuAXFkgsw1L7xaCfnd5JJOw")
	require.NoError(t, err)
	assert.Equal(t, "UUuAXFkgsw1L7xaCfnd5JJOw", uploads)

	_, err = uploadsPlaylistID("PLnope")
	require.Error(t, err)
	assert.Equal(t, humanizer.CategoryInvalidURL, humanizer.ErrorCategory(err))
}

func TestFirstVideoID(t *testing.T) {
	response := map[string]any{
		"contents": map[string]any{
			"sectionList": []any{
				map[string]any{"adRenderer": map[string]any{"adId": "x"}},
				map[string]any{"videoRenderer": map[string]any{"videoId": "dQw4w9WgXcQ"}},
				map[string]any{"videoRenderer": map[string]any{"videoId": "later000000"}},
			},
		},
	}
	assert.Equal(t, "dQw4w9WgXcQ", firstVideoID(response))
	assert.Equal(t, "", firstVideoID(map[string]any{"contents": []any{}}))
}

func TestFromQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"contents":[{"videoRenderer":{"videoId":"dQw4w9WgXcQ"}}]}`))
	}))
	defer server.Close()

	client := New(Options{Timeout: time.Second, HTTPClient: server.Client()})
	// Point the request at the test server by rewriting through a transport.
	client.http = &http.Client{Transport: rewriteHost(server.URL)}

	url, err := client.FromQuery(context.Background(), "never gonna give you up")
	require.NoError(t, err)
	assert.Equal(t, humanizer.WatchURL("dQw4w9WgXcQ"), url)
}

// rewriteHost redirects every request to the test server.
type rewriteHost string

func (h rewriteHost) RoundTrip(req *http.Request) (*http.Response, error) {
	target := string(h) + req.URL.Path
	clone := req.Clone(req.Context())
	parsed, err := clone.URL.Parse(target)
	if err != nil {
		return nil, err
	}
	clone.URL = parsed
	clone.Host = parsed.Host
	return http.DefaultTransport.RoundTrip(clone)
}
