package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// DefaultUserAgent is the default User-Agent string used for HTTP requests.
	// AudioNetwork serves the embedded page data to any browser-like agent.
	DefaultUserAgent = "Mozilla/5.0"
)
