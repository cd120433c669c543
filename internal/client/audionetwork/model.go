package audionetwork

import "encoding/json"

// PageKind identifies which of the two known page layouts a page uses.
type PageKind uint8

const (
	// PageKindSingle is a page describing one track.
	PageKindSingle PageKind = iota + 1
	// PageKindAlbum is a page describing an album with its track list.
	PageKindAlbum
)

// String returns a human-readable name for the page kind.
func (k PageKind) String() string {
	switch k {
	case PageKindSingle:
		return "single track"
	case PageKindAlbum:
		return "album"
	default:
		return "unknown"
	}
}

// PageData is the tagged result of parsing a page:
// either a single track or an album with its track list.
type PageData struct {
	// Kind selects which fields below are populated.
	Kind PageKind
	// Track is the track described by a single-track page.
	Track *Track
	// Album is the album described by an album page. May be nil if the page omits it.
	Album *Album
	// Tracks is the track list of an album page.
	Tracks []*Track
}

// Track describes one track as embedded in the page metadata.
type Track struct {
	// Title is the track title.
	Title string `json:"title"`
	// PreviewURL is the direct link to the preview audio file.
	PreviewURL string `json:"previewUrl"`
	// AlbumTrackNumber is the track's position within its album.
	AlbumTrackNumber int64 `json:"albumTrackNumber"`
	// ReleaseDate is the release date in "YYYY-MM-DD" form. Optional.
	ReleaseDate string `json:"releaseDate"`
	// Album is the parent album reference. Optional.
	Album *TrackAlbum `json:"album"`
}

// TrackAlbum is the parent album reference carried by a single track.
type TrackAlbum struct {
	// Name is the album name.
	Name string `json:"name"`
	// Artwork is the album cover art reference. Optional.
	Artwork *Artwork `json:"artwork"`
}

// Album describes an album as embedded in an album page.
type Album struct {
	// Title is the album title.
	Title string `json:"title"`
	// ReleaseDate is the release date in "YYYY-MM-DD" form. Optional.
	ReleaseDate string `json:"releaseDate"`
	// Artwork is the album cover art reference. Optional.
	Artwork *Artwork `json:"artwork"`
}

// Artwork holds the cover art location. A JSON null URL decodes to an empty string.
type Artwork struct {
	// URL is the direct link to the cover image.
	URL string `json:"url"`
}

// ArtworkURL returns the track's nested cover art URL, or "" when absent.
func (t *Track) ArtworkURL() string {
	if t == nil || t.Album == nil || t.Album.Artwork == nil {
		return ""
	}

	return t.Album.Artwork.URL
}

// ArtworkURL returns the album's cover art URL, or "" when absent.
func (a *Album) ArtworkURL() string {
	if a == nil || a.Artwork == nil {
		return ""
	}

	return a.Artwork.URL
}

// nextData mirrors the skeleton of the embedded page metadata JSON.
type nextData struct {
	Props struct {
		PageProps json.RawMessage `json:"pageProps"`
	} `json:"props"`
}

// pageProps keeps the dispatch keys raw: the upstream site distinguishes its
// two page layouts by key presence, so an explicit empty track list must
// still select album mode.
type pageProps struct {
	Track  json.RawMessage `json:"track"`
	Album  json.RawMessage `json:"album"`
	Tracks json.RawMessage `json:"tracks"`
}
