package models

import "time"

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Profile           *UserProfile       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	SocialLinks       []SocialLink       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	SpotifyConnection *SpotifyConnection `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ShowcaseItems     []MusicShowcase    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ProfileClicks     []ProfileClick     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
