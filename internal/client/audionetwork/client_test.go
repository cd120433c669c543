package audionetwork

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/audionetwork-grabber/internal/config"
)

func newTestClient() Client {
	return NewClient(&config.Config{UserAgent: "TestAgent/1.0"})
}

// TestFetchPage tests fetching page HTML.
func TestFetchPage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "TestAgent/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>page</body></html>"))
	}))
	defer server.Close()

	client := newTestClient()

	html, err := client.FetchPage(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, html, "page")
}

// TestFetchPage_DefaultUserAgent tests the fallback when no User-Agent is configured.
func TestFetchPage_DefaultUserAgent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Mozilla/5.0", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(&config.Config{})

	_, err := client.FetchPage(context.Background(), server.URL)
	require.NoError(t, err)
}

// TestFetchPage_UnexpectedStatus tests that a failure status is reported as a transport error.
func TestFetchPage_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient()

	_, err := client.FetchPage(context.Background(), server.URL)
	require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
}

// TestFetchFile tests fetching binary content.
func TestFetchFile(t *testing.T) {
	t.Parallel()

	payload := []byte{0xFF, 0xFB, 0x90, 0x64}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	client := newTestClient()

	result, err := client.FetchFile(context.Background(), server.URL+"/previews/01.mp3")
	require.NoError(t, err)

	defer result.Body.Close() //nolint:errcheck // Test cleanup, error is not critical.

	contents, err := io.ReadAll(result.Body)
	require.NoError(t, err)
	assert.Equal(t, payload, contents)
	assert.Equal(t, int64(len(payload)), result.TotalBytes)
}

// TestFetchFile_UnexpectedStatus tests that a failure status is reported as a transport error.
func TestFetchFile_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestClient()

	result, err := client.FetchFile(context.Background(), server.URL)
	require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
	assert.Nil(t, result)
}

// TestFetchPage_ContextCancellation tests that a canceled context aborts the request.
func TestFetchPage_ContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchPage(ctx, server.URL)
	require.ErrorIs(t, err, context.Canceled)
}
