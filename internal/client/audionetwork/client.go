package audionetwork

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/oshokin/audionetwork-grabber/internal/config"
	http_transport "github.com/oshokin/audionetwork-grabber/internal/transport/http"
	"github.com/oshokin/audionetwork-grabber/internal/utils"
)

// Client defines the interface for fetching AudioNetwork pages and files.
type Client interface {
	// FetchPage fetches the HTML content of the specified page URL.
	FetchPage(ctx context.Context, pageURL string) (string, error)
	// FetchFile fetches binary content (preview audio, cover art) from the specified URL.
	FetchFile(ctx context.Context, fileURL string) (*FetchFileResult, error)
}

// ClientImpl implements the Client interface.
type ClientImpl struct {
	// httpClient is the HTTP client shared for the lifetime of the run.
	httpClient *http.Client
}

// FetchFileResult contains the response body and size of a fetched file.
type FetchFileResult struct {
	// Body is the response body stream. The caller must close it.
	Body io.ReadCloser
	// TotalBytes is the content length reported by the server, or -1 if unknown.
	TotalBytes int64
}

// Static error definitions for better error handling.
var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
)

// NewClient creates and returns a new instance of ClientImpl.
// The underlying HTTP client reuses connections for the whole run and
// injects the configured User-Agent into every request.
func NewClient(cfg *config.Config) Client {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = http_transport.DefaultUserAgent
	}

	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(http.DefaultTransport, cfg.ParsedMaxLogBodyLength),
			utils.NewSimpleUserAgentProvider(userAgent)),
		Timeout: http_transport.DefaultTimeout,
	}

	return &ClientImpl{httpClient: httpClient}
}

// FetchPage fetches the HTML content of the specified page URL.
func (c *ClientImpl) FetchPage(ctx context.Context, pageURL string) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return "", err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	contents, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	return string(contents), nil
}

// FetchFile fetches binary content from the specified URL.
func (c *ClientImpl) FetchFile(ctx context.Context, fileURL string) (*FetchFileResult, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusPartialContent {
		response.Body.Close() //nolint:errcheck,gosec // Error on close is not critical here.

		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	return &FetchFileResult{
		Body:       response.Body,
		TotalBytes: response.ContentLength,
	}, nil
}
