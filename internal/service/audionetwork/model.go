package audionetwork

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	audionetwork_client "github.com/oshokin/audionetwork-grabber/internal/client/audionetwork"
	"github.com/oshokin/audionetwork-grabber/internal/constants"
	"github.com/oshokin/audionetwork-grabber/internal/utils"
)

const (
	// coverFilename is the fixed name of the cover art file inside each folder.
	coverFilename = "folder" + constants.ExtensionJPG

	// unknownAlbumLabel is used in log messages when an album can't be identified.
	unknownAlbumLabel = "Unknown album"

	// trackNumberPadWidth is the zero-padded width of track numbers in filenames.
	trackNumberPadWidth = 2
)

// trackDestination carries where a track is saved and the album metadata
// shared by every track of that download.
type trackDestination struct {
	// folder is the directory the track file is written into.
	folder string
	// albumTitle is the parent album title, if known.
	albumTitle string
	// releaseYear is the album release year, if known.
	releaseYear string
}

// coverResult describes the outcome of a cover art download attempt.
type coverResult uint8

const (
	// coverDownloaded means the cover was fetched and saved.
	coverDownloaded coverResult = iota + 1
	// coverAlreadyExists means a cover file was already present, so nothing was fetched.
	coverAlreadyExists
	// coverMissing means the page carried no cover art URL.
	coverMissing
)

// releaseYear extracts the year from a "YYYY-MM-DD" release date.
// An empty date yields an empty year.
func releaseYear(releaseDate string) string {
	year, _, _ := strings.Cut(releaseDate, "-")

	return year
}

// trackFileExtension derives the file extension from the preview URL path.
// URLs without a recognizable extension fall back to a generic binary one.
func trackFileExtension(previewURL string) string {
	pathPart := previewURL
	if parsed, err := url.Parse(previewURL); err == nil && parsed.Path != "" {
		pathPart = parsed.Path
	}

	extension := path.Ext(pathPart)
	if extension == "" || extension == "." {
		return constants.ExtensionBin
	}

	return extension
}

// fillTrackTagsForTemplating builds the tag map consumed by the track filename template.
func fillTrackTagsForTemplating(track *audionetwork_client.Track) map[string]string {
	return map[string]string{
		"trackTitle":     track.Title,
		"trackNumber":    strconv.FormatInt(track.AlbumTrackNumber, 10),
		"trackNumberPad": fmt.Sprintf("%0*d", trackNumberPadWidth, track.AlbumTrackNumber),
	}
}

// trackFilename renders and sanitizes the on-disk filename for a track,
// appending the extension taken from the preview URL.
func (s *ServiceImpl) trackFilename(ctx context.Context, track *audionetwork_client.Track) string {
	name := s.templateManager.GetTrackFilename(ctx, fillTrackTagsForTemplating(track))

	return utils.SanitizeFilename(name) + trackFileExtension(track.PreviewURL)
}

// albumFolderPath resolves the folder a download is saved into. When both the
// album title and release year are known, tracks go into a dedicated album
// folder; otherwise they fall back to the output root. The second return
// value reports whether a dedicated folder was derived.
func (s *ServiceImpl) albumFolderPath(ctx context.Context, albumTitle, releaseDate string) (string, bool) {
	year := releaseYear(releaseDate)
	if albumTitle == "" || year == "" {
		return s.cfg.OutputPath, false
	}

	folderName := utils.SanitizeFilename(s.templateManager.GetAlbumFolderName(ctx, map[string]string{
		"albumTitle":  albumTitle,
		"releaseYear": year,
	}))

	return filepath.Join(s.cfg.OutputPath, folderName), true
}
