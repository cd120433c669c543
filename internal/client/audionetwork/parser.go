package audionetwork

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anaskhan96/soup"
)

// pageDataElementID is the id of the script element carrying the embedded page metadata.
const pageDataElementID = "__NEXT_DATA__"

// Static error definitions for better error handling.
var (
	// ErrDataNotFound indicates that the embedded data segment or an expected JSON path is absent.
	ErrDataNotFound = errors.New("data segment not found")
	// ErrNoTrackInfo indicates that the page metadata matches neither known page layout.
	ErrNoTrackInfo = errors.New("no track info found")
)

// ParsePage extracts the embedded page metadata from raw page HTML and
// dispatches on the page layout: a page carrying a "track" entry describes a
// single track, a page carrying a "tracks" entry describes an album. Any
// other shape fails with ErrNoTrackInfo so that new upstream layouts surface
// as a clean error instead of a crash.
func ParsePage(html string) (*PageData, error) {
	document := soup.HTMLParse(html)

	element := document.Find("script", "id", pageDataElementID)
	if element.Error != nil {
		return nil, ErrDataNotFound
	}

	var data nextData
	if err := json.Unmarshal([]byte(element.FullText()), &data); err != nil {
		return nil, fmt.Errorf("failed to decode page data: %w", err)
	}

	if len(data.Props.PageProps) == 0 {
		return nil, fmt.Errorf("%w: no page info", ErrDataNotFound)
	}

	var props pageProps
	if err := json.Unmarshal(data.Props.PageProps, &props); err != nil {
		return nil, fmt.Errorf("failed to decode page info: %w", err)
	}

	switch {
	case props.Track != nil:
		return parseSinglePage(props.Track)
	case props.Tracks != nil:
		return parseAlbumPage(props.Album, props.Tracks)
	default:
		return nil, ErrNoTrackInfo
	}
}

func parseSinglePage(rawTrack json.RawMessage) (*PageData, error) {
	var track *Track
	if err := json.Unmarshal(rawTrack, &track); err != nil {
		return nil, fmt.Errorf("failed to decode track info: %w", err)
	}

	// A literal null track is key presence without content.
	if track == nil {
		return nil, ErrNoTrackInfo
	}

	return &PageData{
		Kind:  PageKindSingle,
		Track: track,
	}, nil
}

func parseAlbumPage(rawAlbum, rawTracks json.RawMessage) (*PageData, error) {
	var tracks []*Track
	if err := json.Unmarshal(rawTracks, &tracks); err != nil {
		return nil, fmt.Errorf("failed to decode album track list: %w", err)
	}

	var album *Album
	if rawAlbum != nil {
		if err := json.Unmarshal(rawAlbum, &album); err != nil {
			return nil, fmt.Errorf("failed to decode album info: %w", err)
		}
	}

	return &PageData{
		Kind:   PageKindAlbum,
		Album:  album,
		Tracks: tracks,
	}, nil
}
