// Package app wires the client, templates, and download service together
// and runs the download for a page URL.
package app
