package dto

import (
	"time"

	"github.com/spotlighthub/spotlight-api/internal/models"
	"github.com/spotlighthub/spotlight-api/internal/services"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileDTO represents a profile in API responses
type ProfileDTO struct {
	ID            uint                 `json:"id"`
	UserID        uint                 `json:"user_id"`
	DisplayName   string               `json:"display_name"`
	Bio           string               `json:"bio"`
	AvatarURL     string               `json:"avatar_url"`
	ThemeSettings models.ThemeSettings `json:"theme_settings"`
	IsPublic      bool                 `json:"is_public"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// SocialLinkDTO represents a social link in API responses
type SocialLinkDTO struct {
	ID          uint   `json:"id"`
	Platform    string `json:"platform"`
	URL         string `json:"url"`
	DisplayText string `json:"display_text"`
	Position    int    `json:"position"`
}

// ShowcaseItemDTO represents a showcase item in API responses
type ShowcaseItemDTO struct {
	ID            uint   `json:"id"`
	SpotifyItemID string `json:"spotify_item_id"`
	ItemType      string `json:"item_type"`
	ItemName      string `json:"item_name"`
	ArtistNames   string `json:"artist_names"`
	ImageURL      string `json:"image_url"`
	SpotifyURL    string `json:"spotify_url"`
	Position      int    `json:"position"`
}

// ConnectionDTO represents a Spotify connection in API responses.
// Token material never leaves the server.
type ConnectionDTO struct {
	Connected     bool      `json:"connected"`
	SpotifyUserID string    `json:"spotify_user_id,omitempty"`
	ArtistID      *string   `json:"artist_id,omitempty"`
	ConnectedAt   time.Time `json:"connected_at,omitempty"`
}

// PublicProfileDTO represents the full public profile page payload
type PublicProfileDTO struct {
	Username         string               `json:"username"`
	DisplayName      string               `json:"display_name"`
	Bio              string               `json:"bio"`
	AvatarURL        string               `json:"avatar_url"`
	ThemeSettings    models.ThemeSettings `json:"theme_settings"`
	SocialLinks      []SocialLinkDTO      `json:"social_links"`
	MusicShowcase    []ShowcaseItemDTO    `json:"music_showcase"`
	SpotifyConnected bool                 `json:"spotify_connected"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users      []UserDTO `json:"users"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalCount int64     `json:"total_count"`
	TotalPages int       `json:"total_pages"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}

// ToProfileDTO converts a UserProfile model to ProfileDTO
func ToProfileDTO(profile models.UserProfile) ProfileDTO {
	return ProfileDTO{
		ID:            profile.ID,
		UserID:        profile.UserID,
		DisplayName:   profile.DisplayName,
		Bio:           profile.Bio,
		AvatarURL:     profile.AvatarURL,
		ThemeSettings: profile.ThemeSettings,
		IsPublic:      profile.IsPublic,
		UpdatedAt:     profile.UpdatedAt,
	}
}

// ToSocialLinkDTO converts a SocialLink model to SocialLinkDTO
func ToSocialLinkDTO(link models.SocialLink) SocialLinkDTO {
	return SocialLinkDTO{
		ID:          link.ID,
		Platform:    link.Platform,
		URL:         link.URL,
		DisplayText: link.DisplayText,
		Position:    link.Position,
	}
}

// ToSocialLinkDTOs converts a slice of SocialLink models
func ToSocialLinkDTOs(links []models.SocialLink) []SocialLinkDTO {
	dtos := make([]SocialLinkDTO, len(links))
	for i, link := range links {
		dtos[i] = ToSocialLinkDTO(link)
	}
	return dtos
}

// ToShowcaseItemDTO converts a MusicShowcase model to ShowcaseItemDTO
func ToShowcaseItemDTO(item models.MusicShowcase) ShowcaseItemDTO {
	return ShowcaseItemDTO{
		ID:            item.ID,
		SpotifyItemID: item.SpotifyItemID,
		ItemType:      string(item.ItemType),
		ItemName:      item.ItemName,
		ArtistNames:   item.ArtistNames,
		ImageURL:      item.ImageURL,
		SpotifyURL:    item.SpotifyURL,
		Position:      item.Position,
	}
}

// ToShowcaseItemDTOs converts a slice of MusicShowcase models
func ToShowcaseItemDTOs(items []models.MusicShowcase) []ShowcaseItemDTO {
	dtos := make([]ShowcaseItemDTO, len(items))
	for i, item := range items {
		dtos[i] = ToShowcaseItemDTO(item)
	}
	return dtos
}

// ToConnectionDTO converts a SpotifyConnection model to ConnectionDTO
func ToConnectionDTO(conn models.SpotifyConnection) ConnectionDTO {
	return ConnectionDTO{
		Connected:     true,
		SpotifyUserID: conn.SpotifyUserID,
		ArtistID:      conn.ArtistID,
		ConnectedAt:   conn.ConnectedAt,
	}
}

// ToPublicProfileDTO converts a resolved public profile page
func ToPublicProfileDTO(page services.PublicProfile) PublicProfileDTO {
	return PublicProfileDTO{
		Username:         page.User.Username,
		DisplayName:      page.Profile.DisplayName,
		Bio:              page.Profile.Bio,
		AvatarURL:        page.Profile.AvatarURL,
		ThemeSettings:    page.Profile.ThemeSettings,
		SocialLinks:      ToSocialLinkDTOs(page.SocialLinks),
		MusicShowcase:    ToShowcaseItemDTOs(page.Showcase),
		SpotifyConnected: page.Connected,
	}
}
