// Package spotify is a client for the Spotify Web API.
//
// Response types follow https://developer.spotify.com/documentation/web-api/reference/
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

const (
	AuthURL    = "https://accounts.spotify.com/authorize"
	TokenURL   = "https://accounts.spotify.com/api/token"
	APIBaseURL = "https://api.spotify.com/v1"
)

// Scopes requested when connecting a Spotify account.
var Scopes = []string{
	"user-read-private",
	"user-read-email",
	"user-library-read",
	"user-top-read",
}

// Image represents an image resource.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// ExternalURLs holds known external links for a resource.
type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

// User represents a Spotify user profile.
type User struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Email       string  `json:"email"`
	Country     string  `json:"country"`
	Product     string  `json:"product"`
	Images      []Image `json:"images"`
}

// Artist represents a Spotify artist.
type Artist struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Genres       []string     `json:"genres"`
	Images       []Image      `json:"images"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	Popularity   int          `json:"popularity"`
}

// Track represents a track within an album.
type Track struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Artists     []Artist `json:"artists"`
	DurationMS  int      `json:"duration_ms"`
	TrackNumber int      `json:"track_number"`
}

type trackPage struct {
	Items []Track `json:"items"`
	Total int     `json:"total"`
}

// Album represents a Spotify album, single, or EP.
type Album struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	AlbumType    string       `json:"album_type"`
	Artists      []Artist     `json:"artists"`
	Images       []Image      `json:"images"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	ReleaseDate  string       `json:"release_date"`
	TotalTracks  int          `json:"total_tracks"`
	Tracks       trackPage    `json:"tracks"`
}

// SavedAlbum wraps an album saved in the user's library.
type SavedAlbum struct {
	AddedAt string `json:"added_at"`
	Album   Album  `json:"album"`
}

// SavedAlbumsPage is a paginated response from /me/albums.
type SavedAlbumsPage struct {
	Items  []SavedAlbum `json:"items"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

// AlbumsPage is a paginated list of albums (search results or discography).
type AlbumsPage struct {
	Items  []Album `json:"items"`
	Total  int     `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

// ArtistsPage is a paginated list of artists from search.
type ArtistsPage struct {
	Items []Artist `json:"items"`
	Total int      `json:"total"`
}

// Config holds Spotify application credentials and endpoint overrides.
// Zero-value endpoint fields fall back to the public Spotify endpoints;
// tests point them at local servers.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	AuthURL      string
	TokenURL     string
	APIBaseURL   string
}

// Client calls the Spotify Web API on behalf of connected users.
type Client struct {
	oauth      *oauth2.Config
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client from application credentials.
func NewClient(cfg Config) *Client {
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = AuthURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = TokenURL
	}
	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = APIBaseURL
	}

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
			},
		},
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// AuthCodeURL returns the authorization URL to redirect the user to.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("show_dialog", "false"))
}

// Exchange swaps an authorization code for an access/refresh token pair.
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

// Refresh performs a refresh-token grant and returns the new token.
// The returned token carries a rotated refresh token when the provider
// issues one, and an Expiry computed from the reported lifetime.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	source := c.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh access token: %w", err)
	}
	return token, nil
}

// doRequest performs an authenticated GET against the API and decodes the
// JSON response into result.
func (c *Client) doRequest(ctx context.Context, accessToken, endpoint string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("spotify API error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Me retrieves the authenticated user's Spotify profile.
func (c *Client) Me(ctx context.Context, accessToken string) (*User, error) {
	var user User
	if err := c.doRequest(ctx, accessToken, "/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SavedAlbums retrieves the user's saved albums with pagination.
func (c *Client) SavedAlbums(ctx context.Context, accessToken string, limit, offset int) (*SavedAlbumsPage, error) {
	endpoint := fmt.Sprintf("/me/albums?limit=%d&offset=%d", clampLimit(limit), offset)

	var page SavedAlbumsPage
	if err := c.doRequest(ctx, accessToken, endpoint, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ArtistAlbums retrieves an artist's discography with pagination.
func (c *Client) ArtistAlbums(ctx context.Context, accessToken, artistID string, limit, offset int) (*AlbumsPage, error) {
	endpoint := fmt.Sprintf("/artists/%s/albums?include_groups=album,single&limit=%d&offset=%d",
		url.PathEscape(artistID), clampLimit(limit), offset)

	var page AlbumsPage
	if err := c.doRequest(ctx, accessToken, endpoint, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SearchAlbums searches albums by title.
func (c *Client) SearchAlbums(ctx context.Context, accessToken, query string, limit, offset int) (*AlbumsPage, error) {
	endpoint := fmt.Sprintf("/search?type=album&q=%s&limit=%d&offset=%d",
		url.QueryEscape(query), clampLimit(limit), offset)

	var response struct {
		Albums AlbumsPage `json:"albums"`
	}
	if err := c.doRequest(ctx, accessToken, endpoint, &response); err != nil {
		return nil, err
	}
	return &response.Albums, nil
}

// SearchArtists searches artists by name.
func (c *Client) SearchArtists(ctx context.Context, accessToken, query string, limit int) (*ArtistsPage, error) {
	endpoint := fmt.Sprintf("/search?type=artist&q=%s&limit=%d",
		url.QueryEscape(query), clampLimit(limit))

	var response struct {
		Artists ArtistsPage `json:"artists"`
	}
	if err := c.doRequest(ctx, accessToken, endpoint, &response); err != nil {
		return nil, err
	}
	return &response.Artists, nil
}

// AlbumDetails retrieves a single album including its track list.
func (c *Client) AlbumDetails(ctx context.Context, accessToken, albumID string) (*Album, error) {
	var album Album
	endpoint := fmt.Sprintf("/albums/%s", url.PathEscape(albumID))
	if err := c.doRequest(ctx, accessToken, endpoint, &album); err != nil {
		return nil, err
	}
	return &album, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 50 {
		return 50
	}
	return limit
}
