package audionetwork

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageHTML(pagePropsJSON string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>AudioNetwork</title></head>
<body>
<div id="__next">player</div>
<script id="__NEXT_DATA__" type="application/json">{"props":{"pageProps":%s}}</script>
</body>
</html>`, pagePropsJSON)
}

// TestParsePage_SingleTrack tests parsing a single-track page.
func TestParsePage_SingleTrack(t *testing.T) {
	t.Parallel()

	html := pageHTML(`{
		"track": {
			"title": "Song",
			"previewUrl": "https://cdn.example.com/previews/05.mp3",
			"albumTrackNumber": 5,
			"releaseDate": "2001-01-01",
			"album": {"name": "Disc", "artwork": {"url": null}}
		}
	}`)

	page, err := ParsePage(html)
	require.NoError(t, err)

	assert.Equal(t, PageKindSingle, page.Kind)
	require.NotNil(t, page.Track)
	assert.Equal(t, "Song", page.Track.Title)
	assert.Equal(t, int64(5), page.Track.AlbumTrackNumber)
	assert.Equal(t, "2001-01-01", page.Track.ReleaseDate)
	assert.Equal(t, "Disc", page.Track.Album.Name)
	assert.Empty(t, page.Track.ArtworkURL())
}

// TestParsePage_Album tests parsing an album page.
func TestParsePage_Album(t *testing.T) {
	t.Parallel()

	html := pageHTML(`{
		"album": {
			"title": "Compilation",
			"releaseDate": "1999-05-20",
			"artwork": {"url": "https://cdn.example.com/art/cover.jpg"}
		},
		"tracks": [
			{"title": "First", "previewUrl": "https://cdn.example.com/previews/01.mp3", "albumTrackNumber": 1},
			{"title": "Second", "previewUrl": "https://cdn.example.com/previews/02.mp3", "albumTrackNumber": 2}
		]
	}`)

	page, err := ParsePage(html)
	require.NoError(t, err)

	assert.Equal(t, PageKindAlbum, page.Kind)
	require.NotNil(t, page.Album)
	assert.Equal(t, "Compilation", page.Album.Title)
	assert.Equal(t, "https://cdn.example.com/art/cover.jpg", page.Album.ArtworkURL())
	require.Len(t, page.Tracks, 2)
	assert.Equal(t, "First", page.Tracks[0].Title)
}

// TestParsePage_EmptyTrackListIsStillAnAlbum tests that key presence drives dispatch.
func TestParsePage_EmptyTrackListIsStillAnAlbum(t *testing.T) {
	t.Parallel()

	html := pageHTML(`{"album": {"title": "Empty"}, "tracks": []}`)

	page, err := ParsePage(html)
	require.NoError(t, err)

	assert.Equal(t, PageKindAlbum, page.Kind)
	assert.Empty(t, page.Tracks)
}

// TestParsePage_Errors tests the parser failure modes.
func TestParsePage_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		html        string
		expectedErr error
	}{
		{
			name:        "data segment missing",
			html:        `<html><body><p>nothing embedded here</p></body></html>`,
			expectedErr: ErrDataNotFound,
		},
		{
			name:        "page info missing",
			html:        `<html><body><script id="__NEXT_DATA__">{"props":{}}</script></body></html>`,
			expectedErr: ErrDataNotFound,
		},
		{
			name:        "unknown page shape",
			html:        pageHTML(`{"artist": {"name": "Somebody"}}`),
			expectedErr: ErrNoTrackInfo,
		},
		{
			name:        "null track",
			html:        pageHTML(`{"track": null}`),
			expectedErr: ErrNoTrackInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page, err := ParsePage(tt.html)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, page)
		})
	}
}

// TestParsePage_MalformedJSON tests that broken embedded JSON surfaces as an error.
func TestParsePage_MalformedJSON(t *testing.T) {
	t.Parallel()

	html := `<html><body><script id="__NEXT_DATA__">{not json}</script></body></html>`

	page, err := ParsePage(html)
	require.Error(t, err)
	assert.Nil(t, page)
}
