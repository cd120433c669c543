// Package audionetwork provides a client for AudioNetwork pages:
// fetching page HTML, extracting the embedded page metadata JSON,
// and downloading preview audio and cover art binaries.
package audionetwork
