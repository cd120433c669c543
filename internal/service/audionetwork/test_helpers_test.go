package audionetwork

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	audionetwork_client "github.com/oshokin/audionetwork-grabber/internal/client/audionetwork"
	"github.com/oshokin/audionetwork-grabber/internal/config"
)

// fakeClient is a canned-response Client for tests. It records every file
// request so tests can assert how many times a URL was fetched.
type fakeClient struct {
	// pages maps page URLs to their HTML responses.
	pages map[string]string
	// files maps file URLs to their binary payloads.
	files map[string][]byte
	// fileErrs maps file URLs to forced fetch errors.
	fileErrs map[string]error
	// fileRequests records every FetchFile call in order.
	fileRequests []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		pages:    make(map[string]string),
		files:    make(map[string][]byte),
		fileErrs: make(map[string]error),
	}
}

func (c *fakeClient) FetchPage(_ context.Context, pageURL string) (string, error) {
	pageHTML, ok := c.pages[pageURL]
	if !ok {
		return "", fmt.Errorf("%w: %d", audionetwork_client.ErrUnexpectedHTTPStatus, 404)
	}

	return pageHTML, nil
}

func (c *fakeClient) FetchFile(_ context.Context, fileURL string) (*audionetwork_client.FetchFileResult, error) {
	c.fileRequests = append(c.fileRequests, fileURL)

	if err, ok := c.fileErrs[fileURL]; ok {
		return nil, err
	}

	payload, ok := c.files[fileURL]
	if !ok {
		return nil, fmt.Errorf("%w: %d", audionetwork_client.ErrUnexpectedHTTPStatus, 404)
	}

	return &audionetwork_client.FetchFileResult{
		Body:       io.NopCloser(bytes.NewReader(payload)),
		TotalBytes: int64(len(payload)),
	}, nil
}

// requestCount returns how many of the recorded file requests hit the given URL.
func (c *fakeClient) requestCount(fileURL string) int {
	var count int

	for _, requested := range c.fileRequests {
		if requested == fileURL {
			count++
		}
	}

	return count
}

// testDownloadSetup encapsulates common test dependencies and configuration.
type testDownloadSetup struct {
	client  *fakeClient
	service Service
	config  *config.Config
	tempDir string
}

// newTestDownloadSetup creates a standard test setup with optional config overrides.
func newTestDownloadSetup(t *testing.T, configOverrides ...func(*config.Config)) *testDownloadSetup {
	t.Helper()

	tempDir := t.TempDir()

	cfg := &config.Config{
		OutputPath: tempDir,
	}

	// Apply overrides.
	for _, override := range configOverrides {
		override(cfg)
	}

	ctx := context.Background()
	client := newFakeClient()
	service := NewService(cfg, client, NewTemplateManager(ctx, cfg), NewTagProcessor())

	return &testDownloadSetup{
		client:  client,
		service: service,
		config:  cfg,
		tempDir: tempDir,
	}
}

// pageHTML wraps page metadata JSON in the page skeleton the parser expects.
func pageHTML(pagePropsJSON string) string {
	return fmt.Sprintf(
		`<html><body><script id="__NEXT_DATA__" type="application/json">{"props":{"pageProps":%s}}</script></body></html>`,
		pagePropsJSON)
}
