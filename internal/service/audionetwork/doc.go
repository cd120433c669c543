// Package audionetwork contains the download orchestration: it turns a parsed
// page into files on disk, naming tracks and album folders from templates and
// fetching cover art at most once per folder.
package audionetwork
