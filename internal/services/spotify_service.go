package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spotlighthub/spotlight-api/internal/models"
	"github.com/spotlighthub/spotlight-api/internal/repository"
	"github.com/spotlighthub/spotlight-api/internal/spotify"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

var (
	ErrSpotifyNotConnected = errors.New("spotify not connected")
	ErrSpotifyExchange     = errors.New("failed to exchange authorization code")
	ErrSpotifyFetch        = errors.New("failed to fetch data from spotify")
)

// SpotifyAPI is the provider surface SpotifyService depends on.
// *spotify.Client satisfies it; tests swap in fakes.
type SpotifyAPI interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
	Me(ctx context.Context, accessToken string) (*spotify.User, error)
	SavedAlbums(ctx context.Context, accessToken string, limit, offset int) (*spotify.SavedAlbumsPage, error)
	ArtistAlbums(ctx context.Context, accessToken, artistID string, limit, offset int) (*spotify.AlbumsPage, error)
	SearchAlbums(ctx context.Context, accessToken, query string, limit, offset int) (*spotify.AlbumsPage, error)
	SearchArtists(ctx context.Context, accessToken, query string, limit int) (*spotify.ArtistsPage, error)
	AlbumDetails(ctx context.Context, accessToken, albumID string) (*spotify.Album, error)
}

// SpotifyService manages per-user OAuth connections and normalized
// provider fetches. Any caller going through ValidAccessToken receives a
// currently valid token or ErrSpotifyNotConnected.
type SpotifyService struct {
	connRepo repository.SpotifyConnectionRepository
	client   SpotifyAPI
	now      func() time.Time
}

// NewSpotifyService creates a new SpotifyService.
func NewSpotifyService(connRepo repository.SpotifyConnectionRepository, client SpotifyAPI) *SpotifyService {
	return &SpotifyService{
		connRepo: connRepo,
		client:   client,
		now:      time.Now,
	}
}

// AuthCodeURL returns the provider authorization URL for the OAuth flow.
func (s *SpotifyService) AuthCodeURL(state string) string {
	return s.client.AuthCodeURL(state)
}

// Connection returns the user's stored connection.
func (s *SpotifyService) Connection(userID uint) (*models.SpotifyConnection, error) {
	conn, err := s.connRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpotifyNotConnected
		}
		return nil, fmt.Errorf("failed to load connection: %w", err)
	}
	return conn, nil
}

// Connected reports whether the user has a stored connection.
func (s *SpotifyService) Connected(userID uint) bool {
	_, err := s.Connection(userID)
	return err == nil
}

// Connect exchanges an authorization code and stores the resulting
// credential pair. Reconnecting updates the existing row in place and
// preserves a previously configured artist ID.
func (s *SpotifyService) Connect(ctx context.Context, userID uint, code string) (*models.SpotifyConnection, error) {
	token, err := s.client.Exchange(ctx, code)
	if err != nil {
		return nil, ErrSpotifyExchange
	}

	info, err := s.client.Me(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: user info", ErrSpotifyFetch)
	}

	now := s.now().UTC()
	expiresAt := token.Expiry.UTC()
	if token.Expiry.IsZero() {
		expiresAt = now.Add(time.Hour)
	}

	conn, err := s.connRepo.FindByUserID(userID)
	switch {
	case err == nil:
		conn.SpotifyUserID = info.ID
		conn.AccessToken = token.AccessToken
		if token.RefreshToken != "" {
			conn.RefreshToken = token.RefreshToken
		}
		conn.TokenExpiresAt = &expiresAt
		if err := s.connRepo.Update(conn); err != nil {
			return nil, fmt.Errorf("failed to save connection: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		conn = &models.SpotifyConnection{
			UserID:         userID,
			SpotifyUserID:  info.ID,
			AccessToken:    token.AccessToken,
			RefreshToken:   token.RefreshToken,
			TokenExpiresAt: &expiresAt,
			ConnectedAt:    now,
		}
		if err := s.connRepo.Create(conn); err != nil {
			return nil, fmt.Errorf("failed to save connection: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to load connection: %w", err)
	}

	return conn, nil
}

// SetArtistID sets or clears the artist ID on the user's connection.
func (s *SpotifyService) SetArtistID(userID uint, artistID *string) (*models.SpotifyConnection, error) {
	conn, err := s.Connection(userID)
	if err != nil {
		return nil, err
	}

	conn.ArtistID = artistID
	if err := s.connRepo.Update(conn); err != nil {
		return nil, fmt.Errorf("failed to update artist ID: %w", err)
	}

	return conn, nil
}

// ValidAccessToken returns a currently valid access token for the user,
// refreshing the stored one when it has expired. A failed refresh is
// reported as not connected. When two requests race on a refresh the
// last write wins; the provider invalidates older tokens server-side, so
// the loser only pays one extra refresh on its next call.
func (s *SpotifyService) ValidAccessToken(ctx context.Context, userID uint) (string, error) {
	conn, err := s.Connection(userID)
	if err != nil {
		return "", err
	}

	if !conn.TokenExpired(s.now().UTC()) {
		return conn.AccessToken, nil
	}

	token, err := s.client.Refresh(ctx, conn.RefreshToken)
	if err != nil {
		return "", ErrSpotifyNotConnected
	}

	conn.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		conn.RefreshToken = token.RefreshToken
	}
	expiresAt := token.Expiry.UTC()
	if token.Expiry.IsZero() {
		expiresAt = s.now().UTC().Add(time.Hour)
	}
	conn.TokenExpiresAt = &expiresAt

	if err := s.connRepo.Update(conn); err != nil {
		return "", fmt.Errorf("failed to persist refreshed token: %w", err)
	}

	return conn.AccessToken, nil
}

// UserAlbums returns the user's releases in the uniform item shape:
// the artist discography when an artist ID is configured, otherwise the
// saved albums from their library.
func (s *SpotifyService) UserAlbums(ctx context.Context, userID uint, limit, offset int) ([]spotify.Item, int, error) {
	accessToken, err := s.ValidAccessToken(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	conn, err := s.Connection(userID)
	if err != nil {
		return nil, 0, err
	}

	if conn.ArtistID != nil && *conn.ArtistID != "" {
		page, err := s.client.ArtistAlbums(ctx, accessToken, *conn.ArtistID, limit, offset)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: artist albums", ErrSpotifyFetch)
		}
		return spotify.NormalizeAlbums(page.Items), page.Total, nil
	}

	page, err := s.client.SavedAlbums(ctx, accessToken, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: saved albums", ErrSpotifyFetch)
	}
	return spotify.NormalizeSavedAlbums(page.Items), page.Total, nil
}

// SearchAlbums searches the provider catalog and normalizes the results.
func (s *SpotifyService) SearchAlbums(ctx context.Context, userID uint, query string, limit, offset int) ([]spotify.Item, int, error) {
	accessToken, err := s.ValidAccessToken(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	page, err := s.client.SearchAlbums(ctx, accessToken, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: album search", ErrSpotifyFetch)
	}
	return spotify.NormalizeAlbums(page.Items), page.Total, nil
}

// SearchArtists searches artists by name.
func (s *SpotifyService) SearchArtists(ctx context.Context, userID uint, query string, limit int) ([]spotify.Artist, int, error) {
	accessToken, err := s.ValidAccessToken(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	page, err := s.client.SearchArtists(ctx, accessToken, query, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: artist search", ErrSpotifyFetch)
	}
	return page.Items, page.Total, nil
}

// AlbumDetails fetches a single album including tracks.
func (s *SpotifyService) AlbumDetails(ctx context.Context, userID uint, albumID string) (*spotify.Album, error) {
	accessToken, err := s.ValidAccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	album, err := s.client.AlbumDetails(ctx, accessToken, albumID)
	if err != nil {
		return nil, fmt.Errorf("%w: album details", ErrSpotifyFetch)
	}
	return album, nil
}
