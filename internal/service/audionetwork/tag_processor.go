package audionetwork

import (
	"context"
	"fmt"
	"strconv"

	"github.com/oshokin/id3v2/v2"

	"github.com/oshokin/audionetwork-grabber/internal/logger"
)

// WriteTagsRequest carries the metadata written into a downloaded MP3 file.
type WriteTagsRequest struct {
	// TrackPath is the path of the MP3 file to tag.
	TrackPath string
	// Title is the track title.
	Title string
	// Album is the parent album title, if known.
	Album string
	// TrackNumber is the track's position within its album.
	TrackNumber int64
	// ReleaseYear is the album release year, if known.
	ReleaseYear string
}

// TagProcessor defines the interface for writing metadata tags into downloaded audio files.
type TagProcessor interface {
	// WriteTags writes ID3v2 tags into the MP3 file described by the request.
	WriteTags(ctx context.Context, request *WriteTagsRequest) error
}

// TagProcessorImpl implements the TagProcessor interface.
type TagProcessorImpl struct{}

// NewTagProcessor creates and returns a new instance of TagProcessorImpl.
func NewTagProcessor() TagProcessor {
	return &TagProcessorImpl{}
}

// WriteTags writes ID3v2 tags into the MP3 file described by the request.
// Empty fields are left out rather than written as empty frames.
func (tp *TagProcessorImpl) WriteTags(ctx context.Context, request *WriteTagsRequest) error {
	tag, err := id3v2.Open(request.TrackPath, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open file for tagging: %w", err)
	}

	defer tag.Close() //nolint:errcheck // Error on close is not critical here.

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	if request.Title != "" {
		tag.SetTitle(request.Title)
	}

	if request.Album != "" {
		tag.SetAlbum(request.Album)
	}

	if request.ReleaseYear != "" {
		tag.SetYear(request.ReleaseYear)
	}

	if request.TrackNumber > 0 {
		tag.AddTextFrame(
			tag.CommonID("Track number/Position in set"),
			tag.DefaultEncoding(),
			strconv.FormatInt(request.TrackNumber, 10))
	}

	if err = tag.Save(); err != nil {
		return fmt.Errorf("failed to save tags: %w", err)
	}

	logger.Debugf(ctx, "Wrote tags to %s", request.TrackPath)

	return nil
}
