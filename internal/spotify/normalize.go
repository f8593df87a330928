package spotify

import "strings"

// Item is the uniform representation of a release, regardless of whether
// it came from search results, the user's saved albums, or an artist's
// discography.
type Item struct {
	SpotifyID   string `json:"spotify_id"`
	ItemType    string `json:"item_type"`
	ItemName    string `json:"item_name"`
	ArtistNames string `json:"artist_names"`
	ImageURL    string `json:"image_url"`
	SpotifyURL  string `json:"spotify_url"`
	ReleaseDate string `json:"release_date"`
	TotalTracks int    `json:"total_tracks"`
}

// ClassifyAlbumType maps the provider's album_type to the item type used
// in showcases. The live API reports album, single, or compilation; "ep"
// is accepted for forward compatibility but never synthesized here.
func ClassifyAlbumType(albumType string) string {
	switch strings.ToLower(albumType) {
	case "single":
		return "single"
	case "ep":
		return "ep"
	default:
		return "album"
	}
}

// JoinArtistNames flattens credited artists into a single display string,
// preserving insertion order.
func JoinArtistNames(artists []Artist) string {
	names := make([]string, len(artists))
	for i, artist := range artists {
		names[i] = artist.Name
	}
	return strings.Join(names, ", ")
}

// FirstImageURL returns the first (largest) image URL, or empty when the
// provider sent no images.
func FirstImageURL(images []Image) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

// NormalizeAlbum flattens a provider album into the uniform item shape.
func NormalizeAlbum(album Album) Item {
	return Item{
		SpotifyID:   album.ID,
		ItemType:    ClassifyAlbumType(album.AlbumType),
		ItemName:    album.Name,
		ArtistNames: JoinArtistNames(album.Artists),
		ImageURL:    FirstImageURL(album.Images),
		SpotifyURL:  album.ExternalURLs.Spotify,
		ReleaseDate: album.ReleaseDate,
		TotalTracks: album.TotalTracks,
	}
}

// NormalizeAlbums flattens a list of provider albums.
func NormalizeAlbums(albums []Album) []Item {
	items := make([]Item, len(albums))
	for i, album := range albums {
		items[i] = NormalizeAlbum(album)
	}
	return items
}

// NormalizeSavedAlbums flattens saved-album wrappers.
func NormalizeSavedAlbums(saved []SavedAlbum) []Item {
	items := make([]Item, len(saved))
	for i, entry := range saved {
		items[i] = NormalizeAlbum(entry.Album)
	}
	return items
}
