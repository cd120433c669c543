package audionetwork

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	audionetwork_client "github.com/oshokin/audionetwork-grabber/internal/client/audionetwork"
	"github.com/oshokin/audionetwork-grabber/internal/constants"
	"github.com/oshokin/audionetwork-grabber/internal/logger"
)

// File options for overwriting an existing file.
const overwriteFileOptions = os.O_CREATE | os.O_TRUNC | os.O_WRONLY

// downloadSingleTrack saves a single track and makes a best-effort attempt to
// fetch its album cover. Cover failures don't fail the download here.
func (s *ServiceImpl) downloadSingleTrack(ctx context.Context, track *audionetwork_client.Track) error {
	var albumTitle string
	if track.Album != nil {
		albumTitle = track.Album.Name
	}

	folder, _ := s.albumFolderPath(ctx, albumTitle, track.ReleaseDate)

	destination := &trackDestination{
		folder:      folder,
		albumTitle:  albumTitle,
		releaseYear: releaseYear(track.ReleaseDate),
	}

	if err := s.downloadTrack(ctx, track, destination); err != nil {
		return err
	}

	if _, err := s.downloadCover(ctx, track.ArtworkURL(), folder); err != nil {
		logger.Debugf(ctx, "Failed to download cover: %v", err)
	}

	return nil
}

// downloadTrack fetches the track's preview audio and writes it into the
// destination folder, overwriting any previous copy.
func (s *ServiceImpl) downloadTrack(
	ctx context.Context,
	track *audionetwork_client.Track,
	destination *trackDestination,
) error {
	if err := os.MkdirAll(destination.folder, constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create folder '%s': %w", destination.folder, err)
	}

	filename := s.trackFilename(ctx, track)
	trackPath := filepath.Join(destination.folder, filename)

	logger.Infof(ctx, "Downloading %s", filename)

	fetchResult, err := s.client.FetchFile(ctx, track.PreviewURL)
	if err != nil {
		return fmt.Errorf("failed to fetch track: %w", err)
	}

	defer fetchResult.Body.Close() //nolint:errcheck // Error on close is not critical here.

	file, err := os.OpenFile(filepath.Clean(trackPath), overwriteFileOptions, constants.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create file '%s': %w", trackPath, err)
	}

	var writer io.Writer = file

	// The progress bar would clutter debug output, where transport dumps are already verbose.
	if !logger.IsDebugLevel() {
		bar := progressbar.DefaultBytes(fetchResult.TotalBytes, filename)
		writer = io.MultiWriter(file, bar)
	}

	bytesWritten, copyErr := io.Copy(writer, fetchResult.Body)
	closeErr := file.Close()

	if copyErr != nil {
		return fmt.Errorf("failed to save track: %w", copyErr)
	}

	if closeErr != nil {
		return fmt.Errorf("failed to save track: %w", closeErr)
	}

	logger.Infof(ctx, "Saved %s (%s)", filename, humanize.Bytes(uint64(bytesWritten))) //nolint:gosec // Size is non-negative.

	if s.cfg.EmbedTags && strings.EqualFold(filepath.Ext(filename), constants.ExtensionMP3) {
		request := &WriteTagsRequest{
			TrackPath:   trackPath,
			Title:       track.Title,
			Album:       destination.albumTitle,
			TrackNumber: track.AlbumTrackNumber,
			ReleaseYear: destination.releaseYear,
		}

		if err = s.tagProcessor.WriteTags(ctx, request); err != nil {
			return fmt.Errorf("failed to write track tags: %w", err)
		}
	}

	return nil
}
