package audionetwork

import (
	"context"
	"fmt"
	"os"

	audionetwork_client "github.com/oshokin/audionetwork-grabber/internal/client/audionetwork"
	"github.com/oshokin/audionetwork-grabber/internal/constants"
	"github.com/oshokin/audionetwork-grabber/internal/logger"
)

// downloadAlbum saves every track of an album into one folder, sequentially
// and in page order. The cover is fetched before the first track, and a
// missing cover is reported but never fails the album. The first track
// failure aborts the remaining tracks.
func (s *ServiceImpl) downloadAlbum(
	ctx context.Context,
	album *audionetwork_client.Album,
	tracks []*audionetwork_client.Track,
) error {
	var albumTitle, releaseDate string
	if album != nil {
		albumTitle, releaseDate = album.Title, album.ReleaseDate
	}

	folder, hasAlbumFolder := s.albumFolderPath(ctx, albumTitle, releaseDate)

	albumLabel := albumTitle
	if !hasAlbumFolder {
		albumLabel = unknownAlbumLabel
	}

	if err := os.MkdirAll(folder, constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create folder '%s': %w", folder, err)
	}

	result, err := s.downloadCover(ctx, album.ArtworkURL(), folder)

	switch {
	case err != nil:
		logger.Warnf(ctx, "Couldn't download a cover for album %s: %v", albumLabel, err)
	case result == coverMissing:
		logger.Warnf(ctx, "Couldn't find a cover for album %s", albumLabel)
	}

	logger.Infof(ctx, "Downloading %d tracks of album %s", len(tracks), albumLabel)

	destination := &trackDestination{
		folder:      folder,
		albumTitle:  albumTitle,
		releaseYear: releaseYear(releaseDate),
	}

	for _, track := range tracks {
		if err = s.downloadTrack(ctx, track, destination); err != nil {
			return err
		}
	}

	return nil
}
