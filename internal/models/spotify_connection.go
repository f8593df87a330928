package models

import "time"

type SpotifyConnection struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	UserID         uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	SpotifyUserID  string     `gorm:"type:varchar(100);not null" json:"spotify_user_id"`
	ArtistID       *string    `gorm:"type:varchar(100)" json:"artist_id"`
	AccessToken    string     `gorm:"type:text;not null" json:"-"`
	RefreshToken   string     `gorm:"type:text;not null" json:"-"`
	TokenExpiresAt *time.Time `json:"-"`
	ConnectedAt    time.Time  `json:"connected_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TokenExpired reports whether the stored access token needs a refresh.
// A connection without an expiry timestamp is treated as expired.
func (c *SpotifyConnection) TokenExpired(now time.Time) bool {
	if c.TokenExpiresAt == nil {
		return true
	}
	return !now.Before(*c.TokenExpiresAt)
}
