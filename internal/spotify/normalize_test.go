package spotify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyAlbumType(t *testing.T) {
	tests := []struct {
		albumType string
		want      string
	}{
		{"album", "album"},
		{"single", "single"},
		{"SINGLE", "single"},
		{"ep", "ep"},
		{"compilation", "album"},
		{"", "album"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ClassifyAlbumType(tt.albumType), "album_type %q", tt.albumType)
	}
}

func TestJoinArtistNames(t *testing.T) {
	require.Equal(t, "", JoinArtistNames(nil))
	require.Equal(t, "Solo", JoinArtistNames([]Artist{{Name: "Solo"}}))
	require.Equal(t, "First, Second, Third", JoinArtistNames([]Artist{
		{Name: "First"}, {Name: "Second"}, {Name: "Third"},
	}))
}

func TestFirstImageURL(t *testing.T) {
	require.Empty(t, FirstImageURL(nil))
	require.Equal(t, "https://img.example.com/large.jpg", FirstImageURL([]Image{
		{URL: "https://img.example.com/large.jpg", Width: 640},
		{URL: "https://img.example.com/small.jpg", Width: 64},
	}))
}

func TestNormalizeAlbum(t *testing.T) {
	album := Album{
		ID:        "alb-1",
		Name:      "First Light",
		AlbumType: "single",
		Artists:   []Artist{{Name: "Artist"}, {Name: "Guest"}},
		Images:    []Image{{URL: "https://img.example.com/a.jpg"}},
		ExternalURLs: ExternalURLs{
			Spotify: "https://open.spotify.com/album/alb-1",
		},
		ReleaseDate: "2025-11-07",
		TotalTracks: 2,
	}

	item := NormalizeAlbum(album)
	require.Equal(t, Item{
		SpotifyID:   "alb-1",
		ItemType:    "single",
		ItemName:    "First Light",
		ArtistNames: "Artist, Guest",
		ImageURL:    "https://img.example.com/a.jpg",
		SpotifyURL:  "https://open.spotify.com/album/alb-1",
		ReleaseDate: "2025-11-07",
		TotalTracks: 2,
	}, item)
}

func TestNormalizeSavedAlbums(t *testing.T) {
	saved := []SavedAlbum{
		{AddedAt: "2026-01-01T00:00:00Z", Album: Album{ID: "alb-1", AlbumType: "album"}},
		{AddedAt: "2026-01-02T00:00:00Z", Album: Album{ID: "alb-2", AlbumType: "single"}},
	}

	items := NormalizeSavedAlbums(saved)
	require.Len(t, items, 2)
	require.Equal(t, "alb-1", items[0].SpotifyID)
	require.Equal(t, "album", items[0].ItemType)
	require.Equal(t, "alb-2", items[1].SpotifyID)
	require.Equal(t, "single", items[1].ItemType)
}
